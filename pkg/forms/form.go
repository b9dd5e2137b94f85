package forms

// Form is a sealed, read-only control sequence. One render pass produces one
// node tree; passes may repeat per reactive update, and each pass resolves
// every control's binding freshly against the supplied state provider.
type Form struct {
	controls []control
	styles   []StyleAttr
}

// Len returns the number of top-level controls, counting each group as one.
func (f *Form) Len() int {
	return len(f.controls)
}

// Names returns the names of all named controls in rendering order,
// descending into groups.
func (f *Form) Names() []string {
	var names []string
	collectNames(f.controls, &names)
	return names
}

func collectNames(controls []control, out *[]string) {
	for _, c := range controls {
		if group, ok := c.(*groupControl); ok {
			collectNames(group.children, out)
			continue
		}
		if name := c.controlName(); name != "" {
			*out = append(*out, name)
		}
	}
}

// Render dispatches every control in sequence to its style operation and
// folds the results through the style's FormFrame. Dispatch is total: every
// kind has exactly one operation, so rendering a sealed form cannot fail.
func (f *Form) Render(style Style, state StateProvider) Node {
	nodes := renderControls(f.controls, style, state)
	return style.FormFrame(&RenderData[Nodes]{
		Data:   nodes,
		Styles: f.styles,
	})
}

func renderControls(controls []control, style Style, state StateProvider) Nodes {
	nodes := make(Nodes, 0, len(controls))
	for _, c := range controls {
		nodes = append(nodes, c.renderControl(style, state))
	}
	return nodes
}
