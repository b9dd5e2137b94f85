package openapi_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formtool/pkg/forms"
	"github.com/goliatone/go-formtool/pkg/formstate"
	"github.com/goliatone/go-formtool/pkg/openapi"
	"github.com/goliatone/go-formtool/pkg/signals"
)

var userSpec = []byte(`
openapi: 3.0.0
info:
  title: Test API
  version: 1.0.0
paths:
  /users:
    post:
      operationId: createUser
      requestBody:
        content:
          application/json:
            schema:
              type: object
              required: [name, plan]
              properties:
                name:
                  type: string
                  maxLength: 64
                bio:
                  type: string
                  maxLength: 2000
                email:
                  type: string
                  format: email
                birthday:
                  type: string
                  format: date
                age:
                  type: integer
                  minimum: 0
                  maximum: 120
                plan:
                  type: string
                  enum: [free, pro]
                  default: free
                notify:
                  type: boolean
                address:
                  type: object
                  properties:
                    city:
                      type: string
                    zip:
                      type: string
      responses:
        "201":
          description: created
`)

func importResult(t *testing.T, options ...openapi.Option) *openapi.Result {
	t.Helper()
	doc, err := openapi.Load(context.Background(), userSpec)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	result, err := openapi.New(options...).Import(doc, "createUser")
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	return result
}

func TestImportMapsPropertiesToControlKinds(t *testing.T) {
	result := importResult(t)

	var got []string
	result.Builder.Amend(func(view forms.ControlView) {
		got = append(got, string(view.Kind())+" "+view.Name())
	})

	// Properties sort by name; nested objects become groups with dotted names.
	want := []string{
		"group ",
		"text-input address.city",
		"text-input address.zip",
		"stepper age",
		"text-area bio",
		"date birthday",
		"text-input email",
		"text-input name",
		"checkbox notify",
		"select plan",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("control sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestImportCollectsDefaults(t *testing.T) {
	result := importResult(t)

	want := map[string]string{"plan": "free"}
	if diff := cmp.Diff(want, result.Defaults); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
}

// captureStyle records the configuration handed to selected operations so
// tests can check importer output without rendering markup.
type captureStyle struct {
	textInputs []forms.TextInputData
	selects    []forms.SelectData
	steppers   []forms.StepperData
}

func (s *captureStyle) FormFrame(*forms.RenderData[forms.Nodes]) forms.Node { return nil }
func (s *captureStyle) Group(*forms.RenderData[forms.Nodes]) forms.Node     { return nil }
func (s *captureStyle) Spacer(*forms.RenderData[forms.SpacerData]) forms.Node {
	return nil
}
func (s *captureStyle) Heading(*forms.RenderData[forms.HeadingData], signals.Signal[string]) forms.Node {
	return nil
}
func (s *captureStyle) Button(*forms.RenderData[forms.ButtonData], signals.Signal[string]) forms.Node {
	return nil
}
func (s *captureStyle) Submit(*forms.RenderData[forms.SubmitData], signals.Signal[string]) forms.Node {
	return nil
}
func (s *captureStyle) Hidden(*forms.RenderData[forms.HiddenData], signals.Signal[string]) forms.Node {
	return nil
}
func (s *captureStyle) Output(*forms.RenderData[forms.OutputData], signals.Signal[string]) forms.Node {
	return nil
}
func (s *captureStyle) TextInput(control *forms.RenderData[forms.TextInputData], _ forms.Binding[string]) forms.Node {
	s.textInputs = append(s.textInputs, control.Data)
	return nil
}
func (s *captureStyle) TextArea(*forms.RenderData[forms.TextAreaData], forms.Binding[string]) forms.Node {
	return nil
}
func (s *captureStyle) Date(*forms.RenderData[forms.DateData], forms.Binding[string]) forms.Node {
	return nil
}
func (s *captureStyle) Select(control *forms.RenderData[forms.SelectData], _ forms.Binding[string]) forms.Node {
	s.selects = append(s.selects, control.Data)
	return nil
}
func (s *captureStyle) RadioGroup(*forms.RenderData[forms.RadioGroupData], forms.Binding[string]) forms.Node {
	return nil
}
func (s *captureStyle) Slider(*forms.RenderData[forms.SliderData], forms.Binding[string]) forms.Node {
	return nil
}
func (s *captureStyle) Stepper(control *forms.RenderData[forms.StepperData], _ forms.Binding[string]) forms.Node {
	s.steppers = append(s.steppers, control.Data)
	return nil
}
func (s *captureStyle) Checkbox(*forms.RenderData[forms.CheckboxData], forms.Binding[bool]) forms.Node {
	return nil
}

func TestImportControlConfiguration(t *testing.T) {
	form, err := importResult(t).Form()
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	capture := &captureStyle{}
	form.Render(capture, formstate.New())

	var email *forms.TextInputData
	for i := range capture.textInputs {
		if capture.textInputs[i].Name == "email" {
			email = &capture.textInputs[i]
		}
	}
	if email == nil {
		t.Fatal("email control not rendered")
	}
	if email.InputType != "email" {
		t.Fatalf("email input type mismatch: %q", email.InputType)
	}
	if email.Label != "Email" {
		t.Fatalf("email label mismatch: %q", email.Label)
	}

	if len(capture.selects) != 1 {
		t.Fatalf("rendered %d selects, want 1", len(capture.selects))
	}
	plan := capture.selects[0]
	if plan.BlankOption != "" {
		t.Fatalf("required select should have no blank option, got %q", plan.BlankOption)
	}
	wantOptions := []forms.SelectOption{
		{Display: "Free", Value: "free"},
		{Display: "Pro", Value: "pro"},
	}
	if diff := cmp.Diff(wantOptions, plan.Options.Get()); diff != "" {
		t.Fatalf("plan options mismatch (-want +got):\n%s", diff)
	}

	if len(capture.steppers) != 1 {
		t.Fatalf("rendered %d steppers, want 1", len(capture.steppers))
	}
	age := capture.steppers[0]
	if got := age.Min.Get(); got != "0" {
		t.Fatalf("age min mismatch: %q", got)
	}
	if got := age.Max.Get(); got != "120" {
		t.Fatalf("age max mismatch: %q", got)
	}
	if got := age.Step.Get(); got != "1" {
		t.Fatalf("age step mismatch: %q", got)
	}
}

func TestImportCustomKindRegistryWins(t *testing.T) {
	registry := openapi.NewKindRegistry()
	registry.Register(forms.KindSlider, 100, func(field openapi.Field) bool {
		return field.Name == "age"
	})

	result := importResult(t, openapi.WithKindRegistry(registry))

	var kinds []string
	result.Builder.Amend(func(view forms.ControlView) {
		if view.Name() == "age" {
			kinds = append(kinds, string(view.Kind()))
		}
	})
	if len(kinds) != 1 || kinds[0] != "slider" {
		t.Fatalf("custom registry not honored: %v", kinds)
	}
}

func TestImportUnknownOperation(t *testing.T) {
	doc, err := openapi.Load(context.Background(), userSpec)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := openapi.New().Import(doc, "missing"); err == nil {
		t.Fatal("expected error for unknown operation")
	}
}

func TestHumanize(t *testing.T) {
	cases := map[string]string{
		"first_name": "First name",
		"email":      "Email",
		"zip-code":   "Zip code",
	}
	for in, want := range cases {
		if got := openapi.Humanize(in); got != want {
			t.Fatalf("Humanize(%q) = %q, want %q", in, got, want)
		}
	}
}
