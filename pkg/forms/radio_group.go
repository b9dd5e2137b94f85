package forms

// RadioGroupData is the configuration record for a group of radio buttons.
type RadioGroupData struct {
	Name    string
	Label   string
	Title   string
	Options []SelectOption
	Policy  UpdatePolicy
}

type radioGroupControl struct {
	rd RenderData[RadioGroupData]
}

func (c *radioGroupControl) controlKind() Kind { return KindRadioGroup }

func (c *radioGroupControl) controlName() string { return c.rd.Data.Name }

func (c *radioGroupControl) needsName() bool { return true }

func (c *radioGroupControl) setLabel(label string) { c.rd.Data.Label = label }

func (c *radioGroupControl) setTitle(title string) { c.rd.Data.Title = title }

func (c *radioGroupControl) appendStyles(attrs []StyleAttr) {
	c.rd.Styles = append(c.rd.Styles, attrs...)
}

func (c *radioGroupControl) renderControl(s Style, state StateProvider) Node {
	return s.RadioGroup(&c.rd, state.StringBinding(c.rd.Data.Name))
}

// RadioGroupBuilder accumulates RadioGroupData fields.
type RadioGroupBuilder struct {
	data   RadioGroupData
	styles []StyleAttr
}

// Named sets the binding and serialization key.
func (b *RadioGroupBuilder) Named(name string) *RadioGroupBuilder {
	b.data.Name = name
	return b
}

// Labeled sets the display label.
func (b *RadioGroupBuilder) Labeled(label string) *RadioGroupBuilder {
	b.data.Label = label
	return b
}

// Title sets the tooltip/help text.
func (b *RadioGroupBuilder) Title(title string) *RadioGroupBuilder {
	b.data.Title = title
	return b
}

// Options replaces the option list.
func (b *RadioGroupBuilder) Options(options []SelectOption) *RadioGroupBuilder {
	b.data.Options = options
	return b
}

// Option appends one (display, value) pair.
func (b *RadioGroupBuilder) Option(display, value string) *RadioGroupBuilder {
	b.data.Options = append(b.data.Options, SelectOption{Display: display, Value: value})
	return b
}

// OnInput fires the setter on every interaction.
func (b *RadioGroupBuilder) OnInput() *RadioGroupBuilder {
	b.data.Policy = OnInput
	return b
}

// OnChange fires the setter on selection change.
func (b *RadioGroupBuilder) OnChange() *RadioGroupBuilder {
	b.data.Policy = OnChange
	return b
}

// OnFocusout fires the setter when the group loses focus.
func (b *RadioGroupBuilder) OnFocusout() *RadioGroupBuilder {
	b.data.Policy = OnFocusout
	return b
}

// Styled appends style attributes to the control.
func (b *RadioGroupBuilder) Styled(attrs ...StyleAttr) *RadioGroupBuilder {
	b.styles = append(b.styles, attrs...)
	return b
}

// RadioGroup builds a radio button group and appends it to the form.
func (b *Builder[C]) RadioGroup(fn func(*RadioGroupBuilder)) *Builder[C] {
	cb := &RadioGroupBuilder{}
	if fn != nil {
		fn(cb)
	}
	return b.append(&radioGroupControl{rd: RenderData[RadioGroupData]{Data: cb.data, Styles: cb.styles}})
}

// RadioGroupCx builds a radio button group using the form's context.
func (b *Builder[C]) RadioGroupCx(fn func(*RadioGroupBuilder, C)) *Builder[C] {
	cb := &RadioGroupBuilder{}
	if fn != nil {
		fn(cb, b.cx)
	}
	return b.append(&radioGroupControl{rd: RenderData[RadioGroupData]{Data: cb.data, Styles: cb.styles}})
}

// Data snapshots the configuration accumulated so far.
func (b *RadioGroupBuilder) Data() RadioGroupData {
	return b.data
}
