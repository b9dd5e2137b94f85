package forms

import "github.com/goliatone/go-formtool/pkg/signals"

// HeadingLevel picks the heading rank a style should render.
type HeadingLevel int

const (
	H1 HeadingLevel = iota + 1
	H2
	H3
	H4
)

// HeadingData is the configuration record for a display-only heading.
type HeadingData struct {
	Level HeadingLevel
	Text  signals.Value[string]
}

type headingControl struct {
	rd RenderData[HeadingData]
}

func (c *headingControl) controlKind() Kind { return KindHeading }

func (c *headingControl) controlName() string { return "" }

func (c *headingControl) needsName() bool { return false }

func (c *headingControl) setLabel(label string) { c.rd.Data.Text = signals.Of(label) }

func (c *headingControl) setTitle(string) {}

func (c *headingControl) appendStyles(attrs []StyleAttr) {
	c.rd.Styles = append(c.rd.Styles, attrs...)
}

func (c *headingControl) renderControl(s Style, _ StateProvider) Node {
	return s.Heading(&c.rd, c.rd.Data.Text.Signal())
}

// HeadingBuilder accumulates HeadingData fields.
type HeadingBuilder struct {
	data   HeadingData
	styles []StyleAttr
}

// Text sets the heading text as a static value.
func (b *HeadingBuilder) Text(text string) *HeadingBuilder {
	b.data.Text = signals.Of(text)
	return b
}

// TextSignal drives the heading text from a signal.
func (b *HeadingBuilder) TextSignal(text signals.Signal[string]) *HeadingBuilder {
	b.data.Text = signals.FromSignal(text)
	return b
}

// Level sets the heading rank. Defaults to H1 when unset.
func (b *HeadingBuilder) Level(level HeadingLevel) *HeadingBuilder {
	b.data.Level = level
	return b
}

// Styled appends style attributes to the control.
func (b *HeadingBuilder) Styled(attrs ...StyleAttr) *HeadingBuilder {
	b.styles = append(b.styles, attrs...)
	return b
}

// Heading builds a heading control and appends it to the form.
func (b *Builder[C]) Heading(fn func(*HeadingBuilder)) *Builder[C] {
	cb := &HeadingBuilder{data: HeadingData{Level: H1}}
	if fn != nil {
		fn(cb)
	}
	return b.append(&headingControl{rd: RenderData[HeadingData]{Data: cb.data, Styles: cb.styles}})
}

// HeadingCx builds a heading control using the form's context.
func (b *Builder[C]) HeadingCx(fn func(*HeadingBuilder, C)) *Builder[C] {
	cb := &HeadingBuilder{data: HeadingData{Level: H1}}
	if fn != nil {
		fn(cb, b.cx)
	}
	return b.append(&headingControl{rd: RenderData[HeadingData]{Data: cb.data, Styles: cb.styles}})
}

// Data snapshots the configuration accumulated so far.
func (b *HeadingBuilder) Data() HeadingData {
	return b.data
}
