package formstate_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formtool/pkg/forms"
	"github.com/goliatone/go-formtool/pkg/formstate"
)

func TestStringBindingRoundTrip(t *testing.T) {
	store := formstate.New()
	binding := store.StringBinding("email")

	binding.Set("a@b.com")
	if got := binding.Value.Get(); got != "a@b.com" {
		t.Fatalf("set-then-get mismatch: got %q", got)
	}
	if got := store.Get("email"); got != "a@b.com" {
		t.Fatalf("store view mismatch: got %q", got)
	}
}

func TestSetterOnlyAffectsItsOwnKey(t *testing.T) {
	store := formstate.New().Seed(map[string]string{
		"first":  "Ada",
		"second": "Grace",
	})

	store.StringBinding("first").Set("Edsger")

	want := map[string]string{"first": "Edsger", "second": "Grace"}
	if diff := cmp.Diff(want, store.Values()); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestBoolBinding(t *testing.T) {
	store := formstate.New()
	binding := store.BoolBinding("subscribed")

	if binding.Value.Get() {
		t.Fatal("bool values default to false")
	}
	binding.Set(true)
	if !store.GetBool("subscribed") {
		t.Fatal("bool set did not stick")
	}

	values := store.Values()
	if values["subscribed"] != "true" {
		t.Fatalf("bool serialization mismatch: got %q", values["subscribed"])
	}
}

func TestValidationDefaultsToPending(t *testing.T) {
	store := formstate.New()
	binding := store.StringBinding("email")

	if got := binding.Validation.Get(); !got.IsPending() {
		t.Fatalf("fresh validation state should be pending, got %v", got)
	}

	store.SetValidation("email", forms.Invalid("required"))
	got := binding.Validation.Get()
	if !got.IsInvalid() || got.Message() != "required" {
		t.Fatalf("invalid state not visible through binding: got %v", got)
	}

	store.SetValidation("email", forms.Valid())
	if got := binding.Validation.Get(); !got.IsValid() {
		t.Fatalf("valid state not visible through binding: got %v", got)
	}
	if msg := binding.Validation.Get().Message(); msg != "" {
		t.Fatalf("valid state must not carry a stale message, got %q", msg)
	}
}

func TestNamesSorted(t *testing.T) {
	store := formstate.New()
	store.Set("zeta", "1")
	store.Set("alpha", "2")
	store.SetBool("mid", true)

	want := []string{"alpha", "mid", "zeta"}
	if diff := cmp.Diff(want, store.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}
