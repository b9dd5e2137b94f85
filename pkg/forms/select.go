package forms

import "github.com/goliatone/go-formtool/pkg/signals"

// SelectOption is one (display, value) pair of a select or radio group.
type SelectOption struct {
	Display string
	Value   string
}

// SelectData is the configuration record for a dropdown select control. The
// option list may be static or driven by a signal.
type SelectData struct {
	Name    string
	Label   string
	Title   string
	Options signals.Value[[]SelectOption]
	// BlankOption, when non-empty, renders a leading option with an empty
	// value using this display text.
	BlankOption string
	Policy      UpdatePolicy
}

type selectControl struct {
	rd RenderData[SelectData]
}

func (c *selectControl) controlKind() Kind { return KindSelect }

func (c *selectControl) controlName() string { return c.rd.Data.Name }

func (c *selectControl) needsName() bool { return true }

func (c *selectControl) setLabel(label string) { c.rd.Data.Label = label }

func (c *selectControl) setTitle(title string) { c.rd.Data.Title = title }

func (c *selectControl) appendStyles(attrs []StyleAttr) {
	c.rd.Styles = append(c.rd.Styles, attrs...)
}

func (c *selectControl) renderControl(s Style, state StateProvider) Node {
	return s.Select(&c.rd, state.StringBinding(c.rd.Data.Name))
}

// SelectBuilder accumulates SelectData fields.
type SelectBuilder struct {
	data   SelectData
	styles []StyleAttr
}

// Named sets the binding and serialization key.
func (b *SelectBuilder) Named(name string) *SelectBuilder {
	b.data.Name = name
	return b
}

// Labeled sets the display label.
func (b *SelectBuilder) Labeled(label string) *SelectBuilder {
	b.data.Label = label
	return b
}

// Title sets the tooltip/help text.
func (b *SelectBuilder) Title(title string) *SelectBuilder {
	b.data.Title = title
	return b
}

// Options replaces the option list with a static sequence.
func (b *SelectBuilder) Options(options []SelectOption) *SelectBuilder {
	b.data.Options = signals.Of(options)
	return b
}

// OptionsSignal drives the option list from a signal.
func (b *SelectBuilder) OptionsSignal(options signals.Signal[[]SelectOption]) *SelectBuilder {
	b.data.Options = signals.FromSignal(options)
	return b
}

// Option appends one (display, value) pair to a static option list.
func (b *SelectBuilder) Option(display, value string) *SelectBuilder {
	options := append(b.data.Options.Get(), SelectOption{Display: display, Value: value})
	b.data.Options = signals.Of(options)
	return b
}

// BlankOption renders a leading empty-valued option with the given display
// text.
func (b *SelectBuilder) BlankOption(display string) *SelectBuilder {
	b.data.BlankOption = display
	return b
}

// OnInput fires the setter on every interaction.
func (b *SelectBuilder) OnInput() *SelectBuilder {
	b.data.Policy = OnInput
	return b
}

// OnChange fires the setter on selection change.
func (b *SelectBuilder) OnChange() *SelectBuilder {
	b.data.Policy = OnChange
	return b
}

// OnFocusout fires the setter when the control loses focus.
func (b *SelectBuilder) OnFocusout() *SelectBuilder {
	b.data.Policy = OnFocusout
	return b
}

// Styled appends style attributes to the control.
func (b *SelectBuilder) Styled(attrs ...StyleAttr) *SelectBuilder {
	b.styles = append(b.styles, attrs...)
	return b
}

// Select builds a select control and appends it to the form.
func (b *Builder[C]) Select(fn func(*SelectBuilder)) *Builder[C] {
	cb := &SelectBuilder{}
	if fn != nil {
		fn(cb)
	}
	return b.append(&selectControl{rd: RenderData[SelectData]{Data: cb.data, Styles: cb.styles}})
}

// SelectCx builds a select control using the form's context.
func (b *Builder[C]) SelectCx(fn func(*SelectBuilder, C)) *Builder[C] {
	cb := &SelectBuilder{}
	if fn != nil {
		fn(cb, b.cx)
	}
	return b.append(&selectControl{rd: RenderData[SelectData]{Data: cb.data, Styles: cb.styles}})
}

// Data snapshots the configuration accumulated so far.
func (b *SelectBuilder) Data() SelectData {
	return b.data
}
