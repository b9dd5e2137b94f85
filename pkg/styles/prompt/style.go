// Package prompt renders forms as an interactive terminal session. Each
// control node, when rendered, runs a prompt through the Driver, commits the
// answer through the control's binding, and writes a transcript line.
package prompt

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goliatone/go-formtool/pkg/forms"
	"github.com/goliatone/go-formtool/pkg/signals"
)

// Option configures the style before use.
type Option func(*Style)

// WithDriver swaps the terminal driver, typically for tests.
func WithDriver(driver Driver) Option {
	return func(s *Style) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// Style renders every control kind as a terminal prompt.
type Style struct {
	driver Driver
}

var _ forms.Style = (*Style)(nil)

// New constructs the prompt style with the survey-backed driver unless an
// option replaces it.
func New(options ...Option) *Style {
	s := &Style{driver: newSurveyDriver()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

func (s *Style) FormFrame(frame *forms.RenderData[forms.Nodes]) forms.Node {
	children := frame.Data
	return forms.NodeFunc(func(ctx context.Context, w io.Writer) error {
		return children.Render(ctx, w)
	})
}

func (s *Style) Group(group *forms.RenderData[forms.Nodes]) forms.Node {
	children := group.Data
	return forms.NodeFunc(func(ctx context.Context, w io.Writer) error {
		return children.Render(ctx, w)
	})
}

func (s *Style) Spacer(*forms.RenderData[forms.SpacerData]) forms.Node {
	return forms.NodeFunc(func(ctx context.Context, _ io.Writer) error {
		return s.driver.Info(ctx, "")
	})
}

func (s *Style) Heading(control *forms.RenderData[forms.HeadingData], value signals.Signal[string]) forms.Node {
	return forms.NodeFunc(func(ctx context.Context, _ io.Writer) error {
		text := signalText(value)
		if text == "" {
			return nil
		}
		return s.driver.Info(ctx, text)
	})
}

func (s *Style) Button(control *forms.RenderData[forms.ButtonData], value signals.Signal[string]) forms.Node {
	action := control.Data.Action
	return forms.NodeFunc(func(ctx context.Context, _ io.Writer) error {
		ok, err := s.driver.Confirm(ctx, ConfirmConfig{Message: signalText(value)})
		if err != nil {
			return fmt.Errorf("prompt: button: %w", err)
		}
		if ok && action != nil {
			action()
		}
		return nil
	})
}

func (s *Style) Submit(control *forms.RenderData[forms.SubmitData], value signals.Signal[string]) forms.Node {
	return forms.NodeFunc(func(ctx context.Context, w io.Writer) error {
		ok, err := s.driver.Confirm(ctx, ConfirmConfig{Message: signalText(value), Default: true})
		if err != nil {
			return fmt.Errorf("prompt: submit: %w", err)
		}
		_, err = fmt.Fprintf(w, "submit: %t\n", ok)
		return err
	})
}

func (s *Style) Hidden(control *forms.RenderData[forms.HiddenData], value signals.Signal[string]) forms.Node {
	// Hidden values pass through without a prompt or transcript line.
	return forms.NodeFunc(func(context.Context, io.Writer) error {
		return nil
	})
}

func (s *Style) Output(control *forms.RenderData[forms.OutputData], value signals.Signal[string]) forms.Node {
	data := control.Data
	return forms.NodeFunc(func(ctx context.Context, _ io.Writer) error {
		return s.driver.Info(ctx, promptMessage(data.Label, data.Name)+": "+signalText(value))
	})
}

func (s *Style) TextInput(control *forms.RenderData[forms.TextInputData], binding forms.Binding[string]) forms.Node {
	data := control.Data
	return forms.NodeFunc(func(ctx context.Context, w io.Writer) error {
		if err := s.showInvalid(ctx, binding.Validation); err != nil {
			return err
		}
		cfg := InputConfig{
			Message: promptMessage(data.Label, data.Name),
			Default: binding.Value.Get(),
			Help:    data.Title,
		}
		ask := s.driver.Input
		if data.InputType == "password" {
			ask = s.driver.Password
		}
		answer, err := ask(ctx, cfg)
		if err != nil {
			return fmt.Errorf("prompt: %s: %w", data.Name, err)
		}
		return commit(w, data.Name, answer, binding.Set)
	})
}

func (s *Style) TextArea(control *forms.RenderData[forms.TextAreaData], binding forms.Binding[string]) forms.Node {
	data := control.Data
	return forms.NodeFunc(func(ctx context.Context, w io.Writer) error {
		if err := s.showInvalid(ctx, binding.Validation); err != nil {
			return err
		}
		answer, err := s.driver.TextArea(ctx, TextAreaConfig{
			Message: promptMessage(data.Label, data.Name),
			Default: binding.Value.Get(),
			Help:    data.Title,
		})
		if err != nil {
			return fmt.Errorf("prompt: %s: %w", data.Name, err)
		}
		return commit(w, data.Name, answer, binding.Set)
	})
}

func (s *Style) Date(control *forms.RenderData[forms.DateData], binding forms.Binding[string]) forms.Node {
	data := control.Data
	return forms.NodeFunc(func(ctx context.Context, w io.Writer) error {
		if err := s.showInvalid(ctx, binding.Validation); err != nil {
			return err
		}
		help := data.Title
		if data.Format != "" {
			help = strings.TrimSpace(help + " (" + data.Format + ")")
		}
		answer, err := s.driver.Input(ctx, InputConfig{
			Message:   promptMessage(data.Label, data.Name),
			Default:   binding.Value.Get(),
			Help:      help,
			Validator: dateBoundsValidator(data.Min, data.Max),
		})
		if err != nil {
			return fmt.Errorf("prompt: %s: %w", data.Name, err)
		}
		return commit(w, data.Name, answer, binding.Set)
	})
}

func (s *Style) Select(control *forms.RenderData[forms.SelectData], binding forms.Binding[string]) forms.Node {
	data := control.Data
	return forms.NodeFunc(func(ctx context.Context, w io.Writer) error {
		options := data.Options.Get()
		if data.BlankOption != "" {
			options = append([]forms.SelectOption{{Display: data.BlankOption, Value: ""}}, options...)
		}
		return s.choose(ctx, w, data.Name, promptMessage(data.Label, data.Name), data.Title, options, binding)
	})
}

func (s *Style) RadioGroup(control *forms.RenderData[forms.RadioGroupData], binding forms.Binding[string]) forms.Node {
	data := control.Data
	return forms.NodeFunc(func(ctx context.Context, w io.Writer) error {
		return s.choose(ctx, w, data.Name, promptMessage(data.Label, data.Name), data.Title, data.Options, binding)
	})
}

func (s *Style) Slider(control *forms.RenderData[forms.SliderData], binding forms.Binding[string]) forms.Node {
	data := control.Data
	return s.numeric(data.Name, promptMessage(data.Label, data.Name), data.Title, data.Min, data.Max, binding)
}

func (s *Style) Stepper(control *forms.RenderData[forms.StepperData], binding forms.Binding[string]) forms.Node {
	data := control.Data
	return s.numeric(data.Name, promptMessage(data.Label, data.Name), data.Title, data.Min, data.Max, binding)
}

func (s *Style) Checkbox(control *forms.RenderData[forms.CheckboxData], binding forms.Binding[bool]) forms.Node {
	data := control.Data
	return forms.NodeFunc(func(ctx context.Context, w io.Writer) error {
		if err := s.showInvalid(ctx, binding.Validation); err != nil {
			return err
		}
		answer, err := s.driver.Confirm(ctx, ConfirmConfig{
			Message: promptMessage(data.Label, data.Name),
			Default: binding.Value.Get(),
			Help:    data.Title,
		})
		if err != nil {
			return fmt.Errorf("prompt: %s: %w", data.Name, err)
		}
		if binding.Set != nil {
			binding.Set(answer)
		}
		_, err = fmt.Fprintf(w, "%s: %t\n", data.Name, answer)
		return err
	})
}

func (s *Style) choose(ctx context.Context, w io.Writer, name, message, help string, options []forms.SelectOption, binding forms.Binding[string]) error {
	if err := s.showInvalid(ctx, binding.Validation); err != nil {
		return err
	}

	displays := make([]string, len(options))
	defaultIndex := -1
	current := binding.Value.Get()
	for i, opt := range options {
		displays[i] = opt.Display
		if opt.Value == current {
			defaultIndex = i
		}
	}

	picked, err := s.driver.Select(ctx, SelectConfig{
		Message:      message,
		Options:      displays,
		DefaultIndex: defaultIndex,
		Help:         help,
	})
	if err != nil {
		return fmt.Errorf("prompt: %s: %w", name, err)
	}
	if picked < 0 || picked >= len(options) {
		return fmt.Errorf("prompt: %s: selection out of range", name)
	}
	return commit(w, name, options[picked].Value, binding.Set)
}

func (s *Style) numeric(name, message, help string, min, max signals.Value[string], binding forms.Binding[string]) forms.Node {
	return forms.NodeFunc(func(ctx context.Context, w io.Writer) error {
		if err := s.showInvalid(ctx, binding.Validation); err != nil {
			return err
		}
		answer, err := s.driver.Input(ctx, InputConfig{
			Message:   message,
			Default:   binding.Value.Get(),
			Help:      help,
			Validator: numericValidator(min, max),
		})
		if err != nil {
			return fmt.Errorf("prompt: %s: %w", name, err)
		}
		return commit(w, name, answer, binding.Set)
	})
}

// showInvalid surfaces a stale validation error before re-prompting.
func (s *Style) showInvalid(ctx context.Context, validation signals.Signal[forms.ValidationState]) error {
	if validation == nil {
		return nil
	}
	state := validation.Get()
	if !state.IsInvalid() {
		return nil
	}
	return s.driver.Info(ctx, "! "+state.Message())
}

func commit(w io.Writer, name, value string, set signals.Setter[string]) error {
	if set != nil {
		set(value)
	}
	_, err := fmt.Fprintf(w, "%s: %s\n", name, value)
	return err
}

func promptMessage(label, name string) string {
	if label != "" {
		return label
	}
	return name
}

func signalText(value signals.Signal[string]) string {
	if value == nil {
		return ""
	}
	return value.Get()
}

func numericValidator(min, max signals.Value[string]) func(string) error {
	return func(raw string) error {
		value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return fmt.Errorf("enter a number")
		}
		if min.IsSet() {
			if bound, err := strconv.ParseFloat(min.Get(), 64); err == nil && value < bound {
				return fmt.Errorf("must be at least %s", min.Get())
			}
		}
		if max.IsSet() {
			if bound, err := strconv.ParseFloat(max.Get(), 64); err == nil && value > bound {
				return fmt.Errorf("must be at most %s", max.Get())
			}
		}
		return nil
	}
}

func dateBoundsValidator(min, max signals.Value[string]) func(string) error {
	if !min.IsSet() && !max.IsSet() {
		return nil
	}
	return func(raw string) error {
		value := strings.TrimSpace(raw)
		if value == "" {
			return nil
		}
		if min.IsSet() && value < min.Get() {
			return fmt.Errorf("date must not be before %s", min.Get())
		}
		if max.IsSet() && value > max.Get() {
			return fmt.Errorf("date must not be after %s", max.Get())
		}
		return nil
	}
}
