package forms

// UpdatePolicy governs when during user interaction a control's value setter
// fires. Exactly one policy is attached per editable control; it controls how
// often the setter is invoked, never whether it is invoked.
type UpdatePolicy int

const (
	// OnInput fires the setter on every keystroke or interaction.
	OnInput UpdatePolicy = iota
	// OnChange fires the setter when a value is committed, for example a
	// selection change.
	OnChange
	// OnFocusout fires the setter when the control loses focus.
	OnFocusout
)

// Event returns the DOM event name a style must register the setter under.
// Registering the setter under any other event is a style contract violation.
func (p UpdatePolicy) Event() string {
	switch p {
	case OnChange:
		return "change"
	case OnFocusout:
		return "focusout"
	default:
		return "input"
	}
}

// String implements fmt.Stringer.
func (p UpdatePolicy) String() string {
	switch p {
	case OnChange:
		return "on-change"
	case OnFocusout:
		return "on-focusout"
	default:
		return "on-input"
	}
}
