package forms

import "github.com/goliatone/go-formtool/pkg/signals"

// SliderData is the configuration record for a range slider control. Numeric
// bounds use string representation so integer and decimal types share one
// binding shape; each may be static or signal-driven.
type SliderData struct {
	Name   string
	Label  string
	Title  string
	Min    signals.Value[string]
	Max    signals.Value[string]
	Step   signals.Value[string]
	Policy UpdatePolicy
}

type sliderControl struct {
	rd RenderData[SliderData]
}

func (c *sliderControl) controlKind() Kind { return KindSlider }

func (c *sliderControl) controlName() string { return c.rd.Data.Name }

func (c *sliderControl) needsName() bool { return true }

func (c *sliderControl) setLabel(label string) { c.rd.Data.Label = label }

func (c *sliderControl) setTitle(title string) { c.rd.Data.Title = title }

func (c *sliderControl) appendStyles(attrs []StyleAttr) {
	c.rd.Styles = append(c.rd.Styles, attrs...)
}

func (c *sliderControl) renderControl(s Style, state StateProvider) Node {
	return s.Slider(&c.rd, state.StringBinding(c.rd.Data.Name))
}

// SliderBuilder accumulates SliderData fields.
type SliderBuilder struct {
	data   SliderData
	styles []StyleAttr
}

// Named sets the binding and serialization key.
func (b *SliderBuilder) Named(name string) *SliderBuilder {
	b.data.Name = name
	return b
}

// Labeled sets the display label.
func (b *SliderBuilder) Labeled(label string) *SliderBuilder {
	b.data.Label = label
	return b
}

// Title sets the tooltip/help text.
func (b *SliderBuilder) Title(title string) *SliderBuilder {
	b.data.Title = title
	return b
}

// Min sets the lower bound as a static value.
func (b *SliderBuilder) Min(min string) *SliderBuilder {
	b.data.Min = signals.Of(min)
	return b
}

// MinSignal sets the lower bound from a signal.
func (b *SliderBuilder) MinSignal(min signals.Signal[string]) *SliderBuilder {
	b.data.Min = signals.FromSignal(min)
	return b
}

// Max sets the upper bound as a static value.
func (b *SliderBuilder) Max(max string) *SliderBuilder {
	b.data.Max = signals.Of(max)
	return b
}

// MaxSignal sets the upper bound from a signal.
func (b *SliderBuilder) MaxSignal(max signals.Signal[string]) *SliderBuilder {
	b.data.Max = signals.FromSignal(max)
	return b
}

// Step sets the increment as a static value.
func (b *SliderBuilder) Step(step string) *SliderBuilder {
	b.data.Step = signals.Of(step)
	return b
}

// StepSignal sets the increment from a signal.
func (b *SliderBuilder) StepSignal(step signals.Signal[string]) *SliderBuilder {
	b.data.Step = signals.FromSignal(step)
	return b
}

// OnInput fires the setter on every movement. This is the default.
func (b *SliderBuilder) OnInput() *SliderBuilder {
	b.data.Policy = OnInput
	return b
}

// OnChange fires the setter when the handle is released.
func (b *SliderBuilder) OnChange() *SliderBuilder {
	b.data.Policy = OnChange
	return b
}

// OnFocusout fires the setter when the control loses focus.
func (b *SliderBuilder) OnFocusout() *SliderBuilder {
	b.data.Policy = OnFocusout
	return b
}

// Styled appends style attributes to the control.
func (b *SliderBuilder) Styled(attrs ...StyleAttr) *SliderBuilder {
	b.styles = append(b.styles, attrs...)
	return b
}

// Slider builds a slider control and appends it to the form.
func (b *Builder[C]) Slider(fn func(*SliderBuilder)) *Builder[C] {
	cb := &SliderBuilder{}
	if fn != nil {
		fn(cb)
	}
	return b.append(&sliderControl{rd: RenderData[SliderData]{Data: cb.data, Styles: cb.styles}})
}

// SliderCx builds a slider control using the form's context.
func (b *Builder[C]) SliderCx(fn func(*SliderBuilder, C)) *Builder[C] {
	cb := &SliderBuilder{}
	if fn != nil {
		fn(cb, b.cx)
	}
	return b.append(&sliderControl{rd: RenderData[SliderData]{Data: cb.data, Styles: cb.styles}})
}

// Data snapshots the configuration accumulated so far.
func (b *SliderBuilder) Data() SliderData {
	return b.data
}
