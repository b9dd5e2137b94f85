package forms

// HiddenData is the configuration record for a hidden field. The field
// carries a serialized value keyed by name but accepts no user input, so it
// receives only a value getter.
type HiddenData struct {
	Name string
}

type hiddenControl struct {
	rd RenderData[HiddenData]
}

func (c *hiddenControl) controlKind() Kind { return KindHidden }

func (c *hiddenControl) controlName() string { return c.rd.Data.Name }

func (c *hiddenControl) needsName() bool { return true }

func (c *hiddenControl) setLabel(string) {}

func (c *hiddenControl) setTitle(string) {}

func (c *hiddenControl) appendStyles(attrs []StyleAttr) {
	c.rd.Styles = append(c.rd.Styles, attrs...)
}

func (c *hiddenControl) renderControl(s Style, state StateProvider) Node {
	return s.Hidden(&c.rd, state.Getter(c.rd.Data.Name))
}

// HiddenBuilder accumulates HiddenData fields.
type HiddenBuilder struct {
	data   HiddenData
	styles []StyleAttr
}

// Named sets the serialization key.
func (b *HiddenBuilder) Named(name string) *HiddenBuilder {
	b.data.Name = name
	return b
}

// Styled appends style attributes to the control.
func (b *HiddenBuilder) Styled(attrs ...StyleAttr) *HiddenBuilder {
	b.styles = append(b.styles, attrs...)
	return b
}

// Hidden builds a hidden field and appends it to the form.
func (b *Builder[C]) Hidden(fn func(*HiddenBuilder)) *Builder[C] {
	cb := &HiddenBuilder{}
	if fn != nil {
		fn(cb)
	}
	return b.append(&hiddenControl{rd: RenderData[HiddenData]{Data: cb.data, Styles: cb.styles}})
}

// HiddenCx builds a hidden field using the form's context.
func (b *Builder[C]) HiddenCx(fn func(*HiddenBuilder, C)) *Builder[C] {
	cb := &HiddenBuilder{}
	if fn != nil {
		fn(cb, b.cx)
	}
	return b.append(&hiddenControl{rd: RenderData[HiddenData]{Data: cb.data, Styles: cb.styles}})
}

// Data snapshots the configuration accumulated so far.
func (b *HiddenBuilder) Data() HiddenData {
	return b.data
}
