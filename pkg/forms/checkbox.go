package forms

// CheckboxData is the configuration record for a boolean checkbox control.
// Checkbox bindings carry bool values instead of strings.
type CheckboxData struct {
	Name  string
	Label string
	Title string
	Policy UpdatePolicy
}

type checkboxControl struct {
	rd RenderData[CheckboxData]
}

func (c *checkboxControl) controlKind() Kind { return KindCheckbox }

func (c *checkboxControl) controlName() string { return c.rd.Data.Name }

func (c *checkboxControl) needsName() bool { return true }

func (c *checkboxControl) setLabel(label string) { c.rd.Data.Label = label }

func (c *checkboxControl) setTitle(title string) { c.rd.Data.Title = title }

func (c *checkboxControl) appendStyles(attrs []StyleAttr) {
	c.rd.Styles = append(c.rd.Styles, attrs...)
}

func (c *checkboxControl) renderControl(s Style, state StateProvider) Node {
	return s.Checkbox(&c.rd, state.BoolBinding(c.rd.Data.Name))
}

// CheckboxBuilder accumulates CheckboxData fields.
type CheckboxBuilder struct {
	data   CheckboxData
	styles []StyleAttr
}

// Named sets the binding and serialization key.
func (b *CheckboxBuilder) Named(name string) *CheckboxBuilder {
	b.data.Name = name
	return b
}

// Labeled sets the display label. Styles fall back to the control name when
// no label is set.
func (b *CheckboxBuilder) Labeled(label string) *CheckboxBuilder {
	b.data.Label = label
	return b
}

// Title sets the tooltip/help text.
func (b *CheckboxBuilder) Title(title string) *CheckboxBuilder {
	b.data.Title = title
	return b
}

// OnInput fires the setter on every interaction.
func (b *CheckboxBuilder) OnInput() *CheckboxBuilder {
	b.data.Policy = OnInput
	return b
}

// OnChange fires the setter when the checked state commits.
func (b *CheckboxBuilder) OnChange() *CheckboxBuilder {
	b.data.Policy = OnChange
	return b
}

// OnFocusout fires the setter when the control loses focus.
func (b *CheckboxBuilder) OnFocusout() *CheckboxBuilder {
	b.data.Policy = OnFocusout
	return b
}

// Styled appends style attributes to the control.
func (b *CheckboxBuilder) Styled(attrs ...StyleAttr) *CheckboxBuilder {
	b.styles = append(b.styles, attrs...)
	return b
}

// Checkbox builds a checkbox control and appends it to the form.
func (b *Builder[C]) Checkbox(fn func(*CheckboxBuilder)) *Builder[C] {
	cb := &CheckboxBuilder{}
	if fn != nil {
		fn(cb)
	}
	return b.append(&checkboxControl{rd: RenderData[CheckboxData]{Data: cb.data, Styles: cb.styles}})
}

// CheckboxCx builds a checkbox control using the form's context.
func (b *Builder[C]) CheckboxCx(fn func(*CheckboxBuilder, C)) *Builder[C] {
	cb := &CheckboxBuilder{}
	if fn != nil {
		fn(cb, b.cx)
	}
	return b.append(&checkboxControl{rd: RenderData[CheckboxData]{Data: cb.data, Styles: cb.styles}})
}

// Data snapshots the configuration accumulated so far.
func (b *CheckboxBuilder) Data() CheckboxData {
	return b.data
}
