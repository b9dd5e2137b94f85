package forms

// SpacerData is the configuration record for a display-only spacer.
type SpacerData struct {
	// Height is a css length; empty leaves the height to the style.
	Height string
}

type spacerControl struct {
	rd RenderData[SpacerData]
}

func (c *spacerControl) controlKind() Kind { return KindSpacer }

func (c *spacerControl) controlName() string { return "" }

func (c *spacerControl) needsName() bool { return false }

func (c *spacerControl) setLabel(string) {}

func (c *spacerControl) setTitle(string) {}

func (c *spacerControl) appendStyles(attrs []StyleAttr) {
	c.rd.Styles = append(c.rd.Styles, attrs...)
}

func (c *spacerControl) renderControl(s Style, _ StateProvider) Node {
	return s.Spacer(&c.rd)
}

// SpacerBuilder accumulates SpacerData fields.
type SpacerBuilder struct {
	data   SpacerData
	styles []StyleAttr
}

// Height sets the spacer height as a css length.
func (b *SpacerBuilder) Height(height string) *SpacerBuilder {
	b.data.Height = height
	return b
}

// Styled appends style attributes to the control.
func (b *SpacerBuilder) Styled(attrs ...StyleAttr) *SpacerBuilder {
	b.styles = append(b.styles, attrs...)
	return b
}

// Spacer builds a spacer control and appends it to the form.
func (b *Builder[C]) Spacer(fn func(*SpacerBuilder)) *Builder[C] {
	cb := &SpacerBuilder{}
	if fn != nil {
		fn(cb)
	}
	return b.append(&spacerControl{rd: RenderData[SpacerData]{Data: cb.data, Styles: cb.styles}})
}

// Data snapshots the configuration accumulated so far.
func (b *SpacerBuilder) Data() SpacerData {
	return b.data
}
