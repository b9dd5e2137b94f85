package forms

// TextAreaData is the configuration record for a multi-line text control.
type TextAreaData struct {
	Name        string
	Label       string
	Title       string
	Placeholder string
	// Rows hints the visible line count; zero leaves it to the style.
	Rows   int
	Policy UpdatePolicy
}

type textAreaControl struct {
	rd RenderData[TextAreaData]
}

func (c *textAreaControl) controlKind() Kind { return KindTextArea }

func (c *textAreaControl) controlName() string { return c.rd.Data.Name }

func (c *textAreaControl) needsName() bool { return true }

func (c *textAreaControl) setLabel(label string) { c.rd.Data.Label = label }

func (c *textAreaControl) setTitle(title string) { c.rd.Data.Title = title }

func (c *textAreaControl) appendStyles(attrs []StyleAttr) {
	c.rd.Styles = append(c.rd.Styles, attrs...)
}

func (c *textAreaControl) renderControl(s Style, state StateProvider) Node {
	return s.TextArea(&c.rd, state.StringBinding(c.rd.Data.Name))
}

// TextAreaBuilder accumulates TextAreaData fields.
type TextAreaBuilder struct {
	data   TextAreaData
	styles []StyleAttr
}

// Named sets the binding and serialization key.
func (b *TextAreaBuilder) Named(name string) *TextAreaBuilder {
	b.data.Name = name
	return b
}

// Labeled sets the display label.
func (b *TextAreaBuilder) Labeled(label string) *TextAreaBuilder {
	b.data.Label = label
	return b
}

// Title sets the tooltip/help text.
func (b *TextAreaBuilder) Title(title string) *TextAreaBuilder {
	b.data.Title = title
	return b
}

// Placeholder sets the placeholder text.
func (b *TextAreaBuilder) Placeholder(text string) *TextAreaBuilder {
	b.data.Placeholder = text
	return b
}

// Rows hints the visible line count.
func (b *TextAreaBuilder) Rows(rows int) *TextAreaBuilder {
	b.data.Rows = rows
	return b
}

// OnInput fires the setter on every keystroke. This is the default.
func (b *TextAreaBuilder) OnInput() *TextAreaBuilder {
	b.data.Policy = OnInput
	return b
}

// OnChange fires the setter on commit.
func (b *TextAreaBuilder) OnChange() *TextAreaBuilder {
	b.data.Policy = OnChange
	return b
}

// OnFocusout fires the setter when the control loses focus.
func (b *TextAreaBuilder) OnFocusout() *TextAreaBuilder {
	b.data.Policy = OnFocusout
	return b
}

// Styled appends style attributes to the control.
func (b *TextAreaBuilder) Styled(attrs ...StyleAttr) *TextAreaBuilder {
	b.styles = append(b.styles, attrs...)
	return b
}

// TextArea builds a textarea control and appends it to the form.
func (b *Builder[C]) TextArea(fn func(*TextAreaBuilder)) *Builder[C] {
	cb := &TextAreaBuilder{}
	if fn != nil {
		fn(cb)
	}
	return b.append(&textAreaControl{rd: RenderData[TextAreaData]{Data: cb.data, Styles: cb.styles}})
}

// TextAreaCx builds a textarea control using the form's context.
func (b *Builder[C]) TextAreaCx(fn func(*TextAreaBuilder, C)) *Builder[C] {
	cb := &TextAreaBuilder{}
	if fn != nil {
		fn(cb, b.cx)
	}
	return b.append(&textAreaControl{rd: RenderData[TextAreaData]{Data: cb.data, Styles: cb.styles}})
}

// Data snapshots the configuration accumulated so far.
func (b *TextAreaBuilder) Data() TextAreaData {
	return b.data
}
