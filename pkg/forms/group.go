package forms

// groupControl nests an ordered sub-sequence of controls. The group is itself
// a control: its children are dispatched identically and the composite runs
// through the style's Group operation. Style attributes apply to the group
// container only.
type groupControl struct {
	children []control
	styles   []StyleAttr
}

func (c *groupControl) controlKind() Kind { return KindGroup }

func (c *groupControl) controlName() string { return "" }

func (c *groupControl) needsName() bool { return false }

func (c *groupControl) setLabel(string) {}

func (c *groupControl) setTitle(string) {}

func (c *groupControl) appendStyles(attrs []StyleAttr) {
	c.styles = append(c.styles, attrs...)
}

func (c *groupControl) renderControl(s Style, state StateProvider) Node {
	return s.Group(&RenderData[Nodes]{
		Data:   renderControls(c.children, s, state),
		Styles: c.styles,
	})
}
