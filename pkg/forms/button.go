package forms

import "github.com/goliatone/go-formtool/pkg/signals"

// ButtonData is the configuration record for a display-only action button.
// Buttons are never a source of user input error, so they carry no binding.
type ButtonData struct {
	Text signals.Value[string]
	// Action runs when the style reports a click. May be nil.
	Action func()
}

type buttonControl struct {
	rd RenderData[ButtonData]
}

func (c *buttonControl) controlKind() Kind { return KindButton }

func (c *buttonControl) controlName() string { return "" }

func (c *buttonControl) needsName() bool { return false }

func (c *buttonControl) setLabel(label string) { c.rd.Data.Text = signals.Of(label) }

func (c *buttonControl) setTitle(string) {}

func (c *buttonControl) appendStyles(attrs []StyleAttr) {
	c.rd.Styles = append(c.rd.Styles, attrs...)
}

func (c *buttonControl) renderControl(s Style, _ StateProvider) Node {
	return s.Button(&c.rd, c.rd.Data.Text.Signal())
}

// ButtonBuilder accumulates ButtonData fields.
type ButtonBuilder struct {
	data   ButtonData
	styles []StyleAttr
}

// Text sets the button text as a static value.
func (b *ButtonBuilder) Text(text string) *ButtonBuilder {
	b.data.Text = signals.Of(text)
	return b
}

// TextSignal drives the button text from a signal.
func (b *ButtonBuilder) TextSignal(text signals.Signal[string]) *ButtonBuilder {
	b.data.Text = signals.FromSignal(text)
	return b
}

// Action sets the click handler.
func (b *ButtonBuilder) Action(action func()) *ButtonBuilder {
	b.data.Action = action
	return b
}

// Styled appends style attributes to the control.
func (b *ButtonBuilder) Styled(attrs ...StyleAttr) *ButtonBuilder {
	b.styles = append(b.styles, attrs...)
	return b
}

// Button builds an action button and appends it to the form.
func (b *Builder[C]) Button(fn func(*ButtonBuilder)) *Builder[C] {
	cb := &ButtonBuilder{}
	if fn != nil {
		fn(cb)
	}
	return b.append(&buttonControl{rd: RenderData[ButtonData]{Data: cb.data, Styles: cb.styles}})
}

// ButtonCx builds an action button using the form's context.
func (b *Builder[C]) ButtonCx(fn func(*ButtonBuilder, C)) *Builder[C] {
	cb := &ButtonBuilder{}
	if fn != nil {
		fn(cb, b.cx)
	}
	return b.append(&buttonControl{rd: RenderData[ButtonData]{Data: cb.data, Styles: cb.styles}})
}

// Data snapshots the configuration accumulated so far.
func (b *ButtonBuilder) Data() ButtonData {
	return b.data
}
