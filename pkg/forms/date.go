package forms

import "github.com/goliatone/go-formtool/pkg/signals"

// DateData is the configuration record for a date control. Min and Max may be
// static values or signals; both resolve through the same field.
type DateData struct {
	Name   string
	Label  string
	Title  string
	Format string
	// ShowButtons toggles the picker's navigation buttons.
	ShowButtons signals.Value[bool]
	// ShowToday toggles the picker's today shortcut.
	ShowToday signals.Value[bool]
	Min       signals.Value[string]
	Max       signals.Value[string]
	Policy    UpdatePolicy
}

type dateControl struct {
	rd RenderData[DateData]
}

func (c *dateControl) controlKind() Kind { return KindDate }

func (c *dateControl) controlName() string { return c.rd.Data.Name }

func (c *dateControl) needsName() bool { return true }

func (c *dateControl) setLabel(label string) { c.rd.Data.Label = label }

func (c *dateControl) setTitle(title string) { c.rd.Data.Title = title }

func (c *dateControl) appendStyles(attrs []StyleAttr) {
	c.rd.Styles = append(c.rd.Styles, attrs...)
}

func (c *dateControl) renderControl(s Style, state StateProvider) Node {
	return s.Date(&c.rd, state.StringBinding(c.rd.Data.Name))
}

// DateBuilder accumulates DateData fields.
type DateBuilder struct {
	data   DateData
	styles []StyleAttr
}

// Named sets the binding and serialization key.
func (b *DateBuilder) Named(name string) *DateBuilder {
	b.data.Name = name
	return b
}

// Labeled sets the display label.
func (b *DateBuilder) Labeled(label string) *DateBuilder {
	b.data.Label = label
	return b
}

// Title sets the tooltip/help text.
func (b *DateBuilder) Title(title string) *DateBuilder {
	b.data.Title = title
	return b
}

// Format sets the date display format.
func (b *DateBuilder) Format(format string) *DateBuilder {
	b.data.Format = format
	return b
}

// ShowToday toggles the today shortcut. Enabling it also enables the picker
// buttons.
func (b *DateBuilder) ShowToday(show bool) *DateBuilder {
	b.data.ShowToday = signals.Of(show)
	b.data.ShowButtons = signals.Of(show)
	return b
}

// ShowButtons toggles the picker's navigation buttons.
func (b *DateBuilder) ShowButtons(show bool) *DateBuilder {
	b.data.ShowButtons = signals.Of(show)
	return b
}

// Min sets the minimum date as a static value.
func (b *DateBuilder) Min(min string) *DateBuilder {
	b.data.Min = signals.Of(min)
	return b
}

// MinSignal sets the minimum date from a signal.
func (b *DateBuilder) MinSignal(min signals.Signal[string]) *DateBuilder {
	b.data.Min = signals.FromSignal(min)
	return b
}

// Max sets the maximum date as a static value.
func (b *DateBuilder) Max(max string) *DateBuilder {
	b.data.Max = signals.Of(max)
	return b
}

// MaxSignal sets the maximum date from a signal.
func (b *DateBuilder) MaxSignal(max signals.Signal[string]) *DateBuilder {
	b.data.Max = signals.FromSignal(max)
	return b
}

// OnInput fires the setter on every interaction. This is the default.
func (b *DateBuilder) OnInput() *DateBuilder {
	b.data.Policy = OnInput
	return b
}

// OnChange fires the setter on commit.
func (b *DateBuilder) OnChange() *DateBuilder {
	b.data.Policy = OnChange
	return b
}

// OnFocusout fires the setter when the control loses focus.
func (b *DateBuilder) OnFocusout() *DateBuilder {
	b.data.Policy = OnFocusout
	return b
}

// Styled appends style attributes to the control.
func (b *DateBuilder) Styled(attrs ...StyleAttr) *DateBuilder {
	b.styles = append(b.styles, attrs...)
	return b
}

// Date builds a date control and appends it to the form.
func (b *Builder[C]) Date(fn func(*DateBuilder)) *Builder[C] {
	cb := &DateBuilder{}
	if fn != nil {
		fn(cb)
	}
	return b.append(&dateControl{rd: RenderData[DateData]{Data: cb.data, Styles: cb.styles}})
}

// DateCx builds a date control using the form's context.
func (b *Builder[C]) DateCx(fn func(*DateBuilder, C)) *Builder[C] {
	cb := &DateBuilder{}
	if fn != nil {
		fn(cb, b.cx)
	}
	return b.append(&dateControl{rd: RenderData[DateData]{Data: cb.data, Styles: cb.styles}})
}

// Data snapshots the configuration accumulated so far.
func (b *DateBuilder) Data() DateData {
	return b.data
}
