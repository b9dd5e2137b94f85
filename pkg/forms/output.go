package forms

// OutputData is the configuration record for a display-only output that
// echoes the current value stored under its name in shared form state.
type OutputData struct {
	Name  string
	Label string
	Title string
}

type outputControl struct {
	rd RenderData[OutputData]
}

func (c *outputControl) controlKind() Kind { return KindOutput }

func (c *outputControl) controlName() string { return c.rd.Data.Name }

func (c *outputControl) needsName() bool { return true }

func (c *outputControl) setLabel(label string) { c.rd.Data.Label = label }

func (c *outputControl) setTitle(title string) { c.rd.Data.Title = title }

func (c *outputControl) appendStyles(attrs []StyleAttr) {
	c.rd.Styles = append(c.rd.Styles, attrs...)
}

func (c *outputControl) renderControl(s Style, state StateProvider) Node {
	return s.Output(&c.rd, state.Getter(c.rd.Data.Name))
}

// OutputBuilder accumulates OutputData fields.
type OutputBuilder struct {
	data   OutputData
	styles []StyleAttr
}

// Named sets the state key whose value the output displays.
func (b *OutputBuilder) Named(name string) *OutputBuilder {
	b.data.Name = name
	return b
}

// Labeled sets the display label.
func (b *OutputBuilder) Labeled(label string) *OutputBuilder {
	b.data.Label = label
	return b
}

// Title sets the tooltip/help text.
func (b *OutputBuilder) Title(title string) *OutputBuilder {
	b.data.Title = title
	return b
}

// Styled appends style attributes to the control.
func (b *OutputBuilder) Styled(attrs ...StyleAttr) *OutputBuilder {
	b.styles = append(b.styles, attrs...)
	return b
}

// Output builds an output control and appends it to the form.
func (b *Builder[C]) Output(fn func(*OutputBuilder)) *Builder[C] {
	cb := &OutputBuilder{}
	if fn != nil {
		fn(cb)
	}
	return b.append(&outputControl{rd: RenderData[OutputData]{Data: cb.data, Styles: cb.styles}})
}

// OutputCx builds an output control using the form's context.
func (b *Builder[C]) OutputCx(fn func(*OutputBuilder, C)) *Builder[C] {
	cb := &OutputBuilder{}
	if fn != nil {
		fn(cb, b.cx)
	}
	return b.append(&outputControl{rd: RenderData[OutputData]{Data: cb.data, Styles: cb.styles}})
}

// Data snapshots the configuration accumulated so far.
func (b *OutputBuilder) Data() OutputData {
	return b.data
}
