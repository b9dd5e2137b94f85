package forms

import "github.com/goliatone/go-formtool/pkg/signals"

// StepperData is the configuration record for a numeric stepper control.
type StepperData struct {
	Name   string
	Label  string
	Title  string
	Min    signals.Value[string]
	Max    signals.Value[string]
	Step   signals.Value[string]
	Policy UpdatePolicy
}

type stepperControl struct {
	rd RenderData[StepperData]
}

func (c *stepperControl) controlKind() Kind { return KindStepper }

func (c *stepperControl) controlName() string { return c.rd.Data.Name }

func (c *stepperControl) needsName() bool { return true }

func (c *stepperControl) setLabel(label string) { c.rd.Data.Label = label }

func (c *stepperControl) setTitle(title string) { c.rd.Data.Title = title }

func (c *stepperControl) appendStyles(attrs []StyleAttr) {
	c.rd.Styles = append(c.rd.Styles, attrs...)
}

func (c *stepperControl) renderControl(s Style, state StateProvider) Node {
	return s.Stepper(&c.rd, state.StringBinding(c.rd.Data.Name))
}

// StepperBuilder accumulates StepperData fields.
type StepperBuilder struct {
	data   StepperData
	styles []StyleAttr
}

// Named sets the binding and serialization key.
func (b *StepperBuilder) Named(name string) *StepperBuilder {
	b.data.Name = name
	return b
}

// Labeled sets the display label.
func (b *StepperBuilder) Labeled(label string) *StepperBuilder {
	b.data.Label = label
	return b
}

// Title sets the tooltip/help text.
func (b *StepperBuilder) Title(title string) *StepperBuilder {
	b.data.Title = title
	return b
}

// Min sets the lower bound as a static value.
func (b *StepperBuilder) Min(min string) *StepperBuilder {
	b.data.Min = signals.Of(min)
	return b
}

// MinSignal sets the lower bound from a signal.
func (b *StepperBuilder) MinSignal(min signals.Signal[string]) *StepperBuilder {
	b.data.Min = signals.FromSignal(min)
	return b
}

// Max sets the upper bound as a static value.
func (b *StepperBuilder) Max(max string) *StepperBuilder {
	b.data.Max = signals.Of(max)
	return b
}

// MaxSignal sets the upper bound from a signal.
func (b *StepperBuilder) MaxSignal(max signals.Signal[string]) *StepperBuilder {
	b.data.Max = signals.FromSignal(max)
	return b
}

// Step sets the increment as a static value.
func (b *StepperBuilder) Step(step string) *StepperBuilder {
	b.data.Step = signals.Of(step)
	return b
}

// StepSignal sets the increment from a signal.
func (b *StepperBuilder) StepSignal(step signals.Signal[string]) *StepperBuilder {
	b.data.Step = signals.FromSignal(step)
	return b
}

// OnInput fires the setter on every interaction. This is the default.
func (b *StepperBuilder) OnInput() *StepperBuilder {
	b.data.Policy = OnInput
	return b
}

// OnChange fires the setter on commit.
func (b *StepperBuilder) OnChange() *StepperBuilder {
	b.data.Policy = OnChange
	return b
}

// OnFocusout fires the setter when the control loses focus.
func (b *StepperBuilder) OnFocusout() *StepperBuilder {
	b.data.Policy = OnFocusout
	return b
}

// Styled appends style attributes to the control.
func (b *StepperBuilder) Styled(attrs ...StyleAttr) *StepperBuilder {
	b.styles = append(b.styles, attrs...)
	return b
}

// Stepper builds a stepper control and appends it to the form.
func (b *Builder[C]) Stepper(fn func(*StepperBuilder)) *Builder[C] {
	cb := &StepperBuilder{}
	if fn != nil {
		fn(cb)
	}
	return b.append(&stepperControl{rd: RenderData[StepperData]{Data: cb.data, Styles: cb.styles}})
}

// StepperCx builds a stepper control using the form's context.
func (b *Builder[C]) StepperCx(fn func(*StepperBuilder, C)) *Builder[C] {
	cb := &StepperBuilder{}
	if fn != nil {
		fn(cb, b.cx)
	}
	return b.append(&stepperControl{rd: RenderData[StepperData]{Data: cb.data, Styles: cb.styles}})
}

// Data snapshots the configuration accumulated so far.
func (b *StepperBuilder) Data() StepperData {
	return b.data
}
