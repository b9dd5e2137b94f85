package forms

// Kind identifies a control type. The set is closed: every kind maps to
// exactly one Style operation and dispatch is total.
type Kind string

const (
	KindTextInput  Kind = "text-input"
	KindTextArea   Kind = "text-area"
	KindDate       Kind = "date"
	KindSelect     Kind = "select"
	KindRadioGroup Kind = "radio-group"
	KindCheckbox   Kind = "checkbox"
	KindSlider     Kind = "slider"
	KindStepper    Kind = "stepper"
	KindHeading    Kind = "heading"
	KindSpacer     Kind = "spacer"
	KindButton     Kind = "button"
	KindSubmit     Kind = "submit"
	KindHidden     Kind = "hidden"
	KindOutput     Kind = "output"
	KindGroup      Kind = "group"
)

// StyleAttr is an opaque, style-defined annotation attached to a control or
// group (width fraction, tooltip, icon markup). The core threads attributes
// through to the rendering style and never interprets them.
type StyleAttr any

// RenderData pairs a control's configuration record with the style attributes
// attached to it during building. Styles receive it read-only.
type RenderData[D any] struct {
	Data   D
	Styles []StyleAttr
}

// control is the internal representation of one appended control. Each kind
// implements renderControl by selecting its operation on the active style,
// so neither side depends on the other's concrete types.
type control interface {
	controlKind() Kind
	controlName() string
	// needsName reports whether the control participates in the flat,
	// form-wide name namespace and therefore must carry a non-empty name.
	needsName() bool
	setLabel(label string)
	setTitle(title string)
	appendStyles(attrs []StyleAttr)
	renderControl(s Style, state StateProvider) Node
}

// ControlView is the limited, mutable view of a control under construction
// exposed to Builder.Amend. Configuration is immutable once the form is
// built; amendments only apply during the building phase.
type ControlView struct {
	c control
}

// Kind returns the control's kind tag.
func (v ControlView) Kind() Kind {
	return v.c.controlKind()
}

// Name returns the control's binding key, empty for unnamed kinds.
func (v ControlView) Name() string {
	return v.c.controlName()
}

// SetLabel overrides the control's display label. No-op for kinds without a
// label.
func (v ControlView) SetLabel(label string) {
	v.c.setLabel(label)
}

// SetTitle overrides the control's tooltip/help text. No-op for kinds without
// a title.
func (v ControlView) SetTitle(title string) {
	v.c.setTitle(title)
}

// Styled appends style attributes to the control.
func (v ControlView) Styled(attrs ...StyleAttr) {
	v.c.appendStyles(attrs)
}
