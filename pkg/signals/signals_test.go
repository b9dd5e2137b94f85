package signals_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formtool/pkg/signals"
)

func TestStateRoundTrip(t *testing.T) {
	state := signals.NewState("initial")
	if got := state.Get(); got != "initial" {
		t.Fatalf("seed value mismatch: got %q", got)
	}

	set := state.Setter()
	set("updated")
	if got := state.Get(); got != "updated" {
		t.Fatalf("set-then-get mismatch: got %q", got)
	}
}

func TestStaticSignal(t *testing.T) {
	sig := signals.Static(42)
	if got := sig.Get(); got != 42 {
		t.Fatalf("static signal mismatch: got %d", got)
	}
}

func TestFuncSignalReflectsLatest(t *testing.T) {
	current := "a"
	sig := signals.Func[string](func() string { return current })

	current = "b"
	if got := sig.Get(); got != "b" {
		t.Fatalf("func signal should read the latest value, got %q", got)
	}
}

func TestValueUnset(t *testing.T) {
	var v signals.Value[string]
	if v.IsSet() {
		t.Fatal("zero Value must report unset")
	}
	if got := v.Get(); got != "" {
		t.Fatalf("unset Value should yield zero, got %q", got)
	}
	if v.Signal() != nil {
		t.Fatal("unset Value should expose a nil signal")
	}
}

func TestValueStaticAndDynamic(t *testing.T) {
	static := signals.Of("2024-01-01")
	if !static.IsSet() {
		t.Fatal("static Value must report set")
	}
	if diff := cmp.Diff("2024-01-01", static.Get()); diff != "" {
		t.Fatalf("static Value mismatch (-want +got):\n%s", diff)
	}

	cell := signals.NewState("low")
	dynamic := signals.FromSignal[string](cell)
	cell.Set("high")
	if got := dynamic.Get(); got != "high" {
		t.Fatalf("dynamic Value should track the signal, got %q", got)
	}
	if got := dynamic.Signal().Get(); got != "high" {
		t.Fatalf("dynamic Value signal view mismatch: got %q", got)
	}
}

func TestValueFromNilSignal(t *testing.T) {
	v := signals.FromSignal[int](nil)
	if v.IsSet() {
		t.Fatal("nil signal must leave the Value unset")
	}
}
