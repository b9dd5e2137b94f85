package forms_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formtool/pkg/forms"
	"github.com/goliatone/go-formtool/pkg/signals"
)

func TestBuildEmptyConfigurationsUseDefaults(t *testing.T) {
	form, err := forms.New().
		TextInput(func(c *forms.TextInputBuilder) { c.Named("text") }).
		TextArea(func(c *forms.TextAreaBuilder) { c.Named("area") }).
		Date(func(c *forms.DateBuilder) { c.Named("date") }).
		Select(func(c *forms.SelectBuilder) { c.Named("select") }).
		RadioGroup(func(c *forms.RadioGroupBuilder) { c.Named("radio") }).
		Checkbox(func(c *forms.CheckboxBuilder) { c.Named("check") }).
		Slider(func(c *forms.SliderBuilder) { c.Named("slider") }).
		Stepper(func(c *forms.StepperBuilder) { c.Named("stepper") }).
		Heading(nil).
		Spacer(nil).
		Button(nil).
		Submit(nil).
		Hidden(func(c *forms.HiddenBuilder) { c.Named("hidden") }).
		Output(func(c *forms.OutputBuilder) { c.Named("output") }).
		Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	want := []string{
		"text", "area", "date", "select", "radio",
		"check", "slider", "stepper", "hidden", "output",
	}
	if diff := cmp.Diff(want, form.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildRejectsMissingName(t *testing.T) {
	_, err := forms.New().
		TextInput(func(c *forms.TextInputBuilder) { c.Labeled("no key") }).
		Build()
	if err == nil {
		t.Fatal("expected an error for a bound control without a name")
	}
	if !strings.Contains(err.Error(), "requires a name") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBuildRejectsDuplicateNames(t *testing.T) {
	_, err := forms.New().
		TextInput(func(c *forms.TextInputBuilder) { c.Named("email") }).
		Group(func(g *forms.Builder[forms.NoContext]) {
			g.Checkbox(func(c *forms.CheckboxBuilder) { c.Named("email") })
		}).
		Build()
	if err == nil {
		t.Fatal("expected an error for duplicate names across nesting")
	}
	if !strings.Contains(err.Error(), `duplicate control name "email"`) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUnnamedDisplayControlsAreAllowed(t *testing.T) {
	form, err := forms.New().
		Heading(func(c *forms.HeadingBuilder) { c.Text("Title") }).
		Spacer(func(c *forms.SpacerBuilder) { c.Height("2rem") }).
		Submit(func(c *forms.SubmitBuilder) { c.Text("Save") }).
		Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if got := form.Len(); got != 3 {
		t.Fatalf("control count mismatch: got %d", got)
	}
}

func TestDateBoundsLastWriteWins(t *testing.T) {
	dynamicMax := signals.NewState("2025-06-30")

	var data forms.DateData
	forms.New().Date(func(c *forms.DateBuilder) {
		c.Named("due").
			Min("2024-01-01").
			Max("2024-12-31").
			MaxSignal(dynamicMax)
		data = c.Data()
	})

	if got := data.Min.Get(); got != "2024-01-01" {
		t.Fatalf("static min mismatch: got %q", got)
	}
	// The signal variant overrides the earlier static write for that field.
	if got := data.Max.Get(); got != "2025-06-30" {
		t.Fatalf("dynamic max mismatch: got %q", got)
	}

	dynamicMax.Set("2025-12-31")
	if got := data.Max.Get(); got != "2025-12-31" {
		t.Fatalf("dynamic max should track the signal, got %q", got)
	}
}

func TestShowTodayAlsoEnablesButtons(t *testing.T) {
	var data forms.DateData
	forms.New().Date(func(c *forms.DateBuilder) {
		c.Named("due").ShowToday(true)
		data = c.Data()
	})

	if !data.ShowToday.Get() || !data.ShowButtons.Get() {
		t.Fatalf("ShowToday(true) should enable both flags: today=%v buttons=%v",
			data.ShowToday.Get(), data.ShowButtons.Get())
	}
}

func TestBuilderContextIsThreadedToCxVariants(t *testing.T) {
	type formContext struct {
		Prefix string
	}

	form, err := forms.NewBuilder(formContext{Prefix: "user"}).
		TextInputCx(func(c *forms.TextInputBuilder, cx formContext) {
			c.Named(cx.Prefix + ".email")
		}).
		Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if diff := cmp.Diff([]string{"user.email"}, form.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestAmendDecoratesNestedControls(t *testing.T) {
	builder := forms.New().
		TextInput(func(c *forms.TextInputBuilder) { c.Named("title") }).
		Group(func(g *forms.Builder[forms.NoContext]) {
			g.TextInput(func(c *forms.TextInputBuilder) { c.Named("slug") })
		})

	var seen []string
	builder.Amend(func(view forms.ControlView) {
		seen = append(seen, string(view.Kind())+":"+view.Name())
		if view.Name() == "slug" {
			view.SetLabel("Slug")
		}
	})

	want := []string{"text-input:title", "group:", "text-input:slug"}
	if diff := cmp.Diff(want, seen); diff != "" {
		t.Fatalf("amend walk mismatch (-want +got):\n%s", diff)
	}
}

func TestMustBuildPanicsOnError(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected MustBuild to panic on duplicate names")
		}
	}()
	forms.New().
		Hidden(func(c *forms.HiddenBuilder) { c.Named("id") }).
		Output(func(c *forms.OutputBuilder) { c.Named("id") }).
		MustBuild()
}
