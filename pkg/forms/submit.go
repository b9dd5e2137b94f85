package forms

import "github.com/goliatone/go-formtool/pkg/signals"

// SubmitData is the configuration record for the form's submit control.
type SubmitData struct {
	Text signals.Value[string]
}

type submitControl struct {
	rd RenderData[SubmitData]
}

func (c *submitControl) controlKind() Kind { return KindSubmit }

func (c *submitControl) controlName() string { return "" }

func (c *submitControl) needsName() bool { return false }

func (c *submitControl) setLabel(label string) { c.rd.Data.Text = signals.Of(label) }

func (c *submitControl) setTitle(string) {}

func (c *submitControl) appendStyles(attrs []StyleAttr) {
	c.rd.Styles = append(c.rd.Styles, attrs...)
}

func (c *submitControl) renderControl(s Style, _ StateProvider) Node {
	return s.Submit(&c.rd, c.rd.Data.Text.Signal())
}

// SubmitBuilder accumulates SubmitData fields.
type SubmitBuilder struct {
	data   SubmitData
	styles []StyleAttr
}

// Text sets the submit text as a static value.
func (b *SubmitBuilder) Text(text string) *SubmitBuilder {
	b.data.Text = signals.Of(text)
	return b
}

// TextSignal drives the submit text from a signal.
func (b *SubmitBuilder) TextSignal(text signals.Signal[string]) *SubmitBuilder {
	b.data.Text = signals.FromSignal(text)
	return b
}

// Styled appends style attributes to the control.
func (b *SubmitBuilder) Styled(attrs ...StyleAttr) *SubmitBuilder {
	b.styles = append(b.styles, attrs...)
	return b
}

// Submit builds a submit control and appends it to the form.
func (b *Builder[C]) Submit(fn func(*SubmitBuilder)) *Builder[C] {
	cb := &SubmitBuilder{}
	if fn != nil {
		fn(cb)
	}
	return b.append(&submitControl{rd: RenderData[SubmitData]{Data: cb.data, Styles: cb.styles}})
}

// SubmitCx builds a submit control using the form's context.
func (b *Builder[C]) SubmitCx(fn func(*SubmitBuilder, C)) *Builder[C] {
	cb := &SubmitBuilder{}
	if fn != nil {
		fn(cb, b.cx)
	}
	return b.append(&submitControl{rd: RenderData[SubmitData]{Data: cb.data, Styles: cb.styles}})
}

// Data snapshots the configuration accumulated so far.
func (b *SubmitBuilder) Data() SubmitData {
	return b.data
}
