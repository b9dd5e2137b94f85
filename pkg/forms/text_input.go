package forms

// TextInputData is the configuration record for a single-line text control.
type TextInputData struct {
	Name        string
	Label       string
	Title       string
	Placeholder string
	// InputType is the html input type ("text", "password", "email", ...).
	// Styles treat empty as "text".
	InputType string
	Policy    UpdatePolicy
}

type textInputControl struct {
	rd RenderData[TextInputData]
}

func (c *textInputControl) controlKind() Kind { return KindTextInput }

func (c *textInputControl) controlName() string { return c.rd.Data.Name }

func (c *textInputControl) needsName() bool { return true }

func (c *textInputControl) setLabel(label string) { c.rd.Data.Label = label }

func (c *textInputControl) setTitle(title string) { c.rd.Data.Title = title }

func (c *textInputControl) appendStyles(attrs []StyleAttr) {
	c.rd.Styles = append(c.rd.Styles, attrs...)
}

func (c *textInputControl) renderControl(s Style, state StateProvider) Node {
	return s.TextInput(&c.rd, state.StringBinding(c.rd.Data.Name))
}

// TextInputBuilder accumulates TextInputData fields through chained,
// order-independent setter calls.
type TextInputBuilder struct {
	data   TextInputData
	styles []StyleAttr
}

// Named sets the binding and serialization key.
func (b *TextInputBuilder) Named(name string) *TextInputBuilder {
	b.data.Name = name
	return b
}

// Labeled sets the display label.
func (b *TextInputBuilder) Labeled(label string) *TextInputBuilder {
	b.data.Label = label
	return b
}

// Title sets the tooltip/help text.
func (b *TextInputBuilder) Title(title string) *TextInputBuilder {
	b.data.Title = title
	return b
}

// Placeholder sets the placeholder text shown while the control is empty.
func (b *TextInputBuilder) Placeholder(text string) *TextInputBuilder {
	b.data.Placeholder = text
	return b
}

// InputType sets the html input type.
func (b *TextInputBuilder) InputType(inputType string) *TextInputBuilder {
	b.data.InputType = inputType
	return b
}

// OnInput fires the setter on every keystroke. This is the default.
func (b *TextInputBuilder) OnInput() *TextInputBuilder {
	b.data.Policy = OnInput
	return b
}

// OnChange fires the setter on commit.
func (b *TextInputBuilder) OnChange() *TextInputBuilder {
	b.data.Policy = OnChange
	return b
}

// OnFocusout fires the setter when the control loses focus.
func (b *TextInputBuilder) OnFocusout() *TextInputBuilder {
	b.data.Policy = OnFocusout
	return b
}

// Styled appends style attributes to the control.
func (b *TextInputBuilder) Styled(attrs ...StyleAttr) *TextInputBuilder {
	b.styles = append(b.styles, attrs...)
	return b
}

// TextInput builds a text input control and appends it to the form.
func (b *Builder[C]) TextInput(fn func(*TextInputBuilder)) *Builder[C] {
	cb := &TextInputBuilder{}
	if fn != nil {
		fn(cb)
	}
	return b.append(&textInputControl{rd: RenderData[TextInputData]{Data: cb.data, Styles: cb.styles}})
}

// TextInputCx builds a text input control using the form's context.
func (b *Builder[C]) TextInputCx(fn func(*TextInputBuilder, C)) *Builder[C] {
	cb := &TextInputBuilder{}
	if fn != nil {
		fn(cb, b.cx)
	}
	return b.append(&textInputControl{rd: RenderData[TextInputData]{Data: cb.data, Styles: cb.styles}})
}

// Data snapshots the configuration accumulated so far.
func (b *TextInputBuilder) Data() TextInputData {
	return b.data
}
