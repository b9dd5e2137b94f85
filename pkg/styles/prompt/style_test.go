package prompt_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/goliatone/go-formtool/pkg/forms"
	"github.com/goliatone/go-formtool/pkg/formstate"
	"github.com/goliatone/go-formtool/pkg/styles/prompt"
)

// scriptDriver replays queued answers and records every interaction so tests
// can assert on prompt order and configuration.
type scriptDriver struct {
	answers []any

	calls   []string
	inputs  []prompt.InputConfig
	selects []prompt.SelectConfig
	infos   []string
	err     error
}

func (d *scriptDriver) next() (any, error) {
	if d.err != nil {
		return nil, d.err
	}
	if len(d.answers) == 0 {
		return nil, errors.New("script exhausted")
	}
	answer := d.answers[0]
	d.answers = d.answers[1:]
	return answer, nil
}

func (d *scriptDriver) Input(_ context.Context, cfg prompt.InputConfig) (string, error) {
	d.calls = append(d.calls, "input")
	d.inputs = append(d.inputs, cfg)
	answer, err := d.next()
	if err != nil {
		return "", err
	}
	return answer.(string), nil
}

func (d *scriptDriver) Password(_ context.Context, cfg prompt.InputConfig) (string, error) {
	d.calls = append(d.calls, "password")
	d.inputs = append(d.inputs, cfg)
	answer, err := d.next()
	if err != nil {
		return "", err
	}
	return answer.(string), nil
}

func (d *scriptDriver) Confirm(_ context.Context, cfg prompt.ConfirmConfig) (bool, error) {
	d.calls = append(d.calls, "confirm")
	answer, err := d.next()
	if err != nil {
		return false, err
	}
	return answer.(bool), nil
}

func (d *scriptDriver) Select(_ context.Context, cfg prompt.SelectConfig) (int, error) {
	d.calls = append(d.calls, "select")
	d.selects = append(d.selects, cfg)
	answer, err := d.next()
	if err != nil {
		return 0, err
	}
	return answer.(int), nil
}

func (d *scriptDriver) TextArea(_ context.Context, cfg prompt.TextAreaConfig) (string, error) {
	d.calls = append(d.calls, "textarea")
	answer, err := d.next()
	if err != nil {
		return "", err
	}
	return answer.(string), nil
}

func (d *scriptDriver) Info(_ context.Context, msg string) error {
	d.infos = append(d.infos, msg)
	return nil
}

func runSession(t *testing.T, form *forms.Form, state *formstate.Store, driver *scriptDriver) string {
	t.Helper()
	style := prompt.New(prompt.WithDriver(driver))
	var transcript strings.Builder
	if err := form.Render(style, state).Render(context.Background(), &transcript); err != nil {
		t.Fatalf("session: %v", err)
	}
	return transcript.String()
}

func TestSessionWalksControlsInOrder(t *testing.T) {
	driver := &scriptDriver{answers: []any{"ada@example.com", true, true}}
	state := formstate.New()

	form := forms.New().
		Heading(func(h *forms.HeadingBuilder) { h.Text("Sign up") }).
		TextInput(func(ti *forms.TextInputBuilder) { ti.Named("email").Labeled("Email") }).
		Checkbox(func(cb *forms.CheckboxBuilder) { cb.Named("terms").Labeled("Accept terms") }).
		Submit(func(sb *forms.SubmitBuilder) { sb.Text("Create account") }).
		MustBuild()

	transcript := runSession(t, form, state, driver)

	if got := state.Get("email"); got != "ada@example.com" {
		t.Fatalf("email not committed: %q", got)
	}
	if !state.GetBool("terms") {
		t.Fatal("terms not committed")
	}

	want := "email: ada@example.com\nterms: true\nsubmit: true\n"
	if transcript != want {
		t.Fatalf("transcript mismatch:\n got %q\nwant %q", transcript, want)
	}

	if len(driver.infos) == 0 || driver.infos[0] != "Sign up" {
		t.Fatalf("heading not announced: %v", driver.infos)
	}
	wantCalls := []string{"input", "confirm", "confirm"}
	if fmt.Sprint(driver.calls) != fmt.Sprint(wantCalls) {
		t.Fatalf("call order mismatch: got %v want %v", driver.calls, wantCalls)
	}
}

func TestSelectDefaultsToCurrentValue(t *testing.T) {
	driver := &scriptDriver{answers: []any{0}}
	state := formstate.New().Seed(map[string]string{"plan": "b"})

	form := forms.New().
		Select(func(sb *forms.SelectBuilder) {
			sb.Named("plan").
				Option("Alpha", "a").
				Option("Beta", "b")
		}).
		MustBuild()

	transcript := runSession(t, form, state, driver)

	if len(driver.selects) != 1 {
		t.Fatalf("expected one select prompt, got %d", len(driver.selects))
	}
	if driver.selects[0].DefaultIndex != 1 {
		t.Fatalf("default index should follow current value, got %d", driver.selects[0].DefaultIndex)
	}
	if got := state.Get("plan"); got != "a" {
		t.Fatalf("picked option not committed: %q", got)
	}
	if transcript != "plan: a\n" {
		t.Fatalf("transcript mismatch: %q", transcript)
	}
}

func TestInvalidStateSurfacesBeforePrompt(t *testing.T) {
	driver := &scriptDriver{answers: []any{"fixed"}}
	state := formstate.New()
	state.SetValidation("email", forms.Invalid("required"))

	form := forms.New().
		TextInput(func(ti *forms.TextInputBuilder) { ti.Named("email") }).
		MustBuild()

	runSession(t, form, state, driver)

	if len(driver.infos) != 1 || driver.infos[0] != "! required" {
		t.Fatalf("validation message not surfaced: %v", driver.infos)
	}
	if got := state.Get("email"); got != "fixed" {
		t.Fatalf("answer not committed after re-prompt: %q", got)
	}
}

func TestPasswordInputUsesPasswordPrompt(t *testing.T) {
	driver := &scriptDriver{answers: []any{"hunter2"}}
	state := formstate.New()

	form := forms.New().
		TextInput(func(ti *forms.TextInputBuilder) {
			ti.Named("secret").InputType("password")
		}).
		MustBuild()

	runSession(t, form, state, driver)

	if fmt.Sprint(driver.calls) != "[password]" {
		t.Fatalf("call mismatch: %v", driver.calls)
	}
	if got := state.Get("secret"); got != "hunter2" {
		t.Fatalf("password not committed: %q", got)
	}
}

func TestStepperValidatorEnforcesBounds(t *testing.T) {
	driver := &scriptDriver{answers: []any{"5"}}
	state := formstate.New()

	form := forms.New().
		Stepper(func(sb *forms.StepperBuilder) {
			sb.Named("count").Min("1").Max("10")
		}).
		MustBuild()

	runSession(t, form, state, driver)

	if len(driver.inputs) != 1 || driver.inputs[0].Validator == nil {
		t.Fatal("stepper prompt missing validator")
	}
	validate := driver.inputs[0].Validator
	if err := validate("5"); err != nil {
		t.Fatalf("in-range value rejected: %v", err)
	}
	if err := validate("abc"); err == nil {
		t.Fatal("non-numeric value accepted")
	}
	if err := validate("100"); err == nil {
		t.Fatal("out-of-range value accepted")
	}
}

func TestAbortPropagates(t *testing.T) {
	driver := &scriptDriver{err: prompt.ErrAborted}
	state := formstate.New()

	form := forms.New().
		TextInput(func(ti *forms.TextInputBuilder) { ti.Named("email") }).
		MustBuild()

	style := prompt.New(prompt.WithDriver(driver))
	err := form.Render(style, state).Render(context.Background(), &strings.Builder{})
	if !errors.Is(err, prompt.ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}
