package forms

import "github.com/goliatone/go-formtool/pkg/signals"

// Binding is the reactive contract a bound control is rendered with: a
// read-only value signal, a write operation into shared form state, and the
// control's validation signal. The setter for a control name must only ever
// affect the value keyed by that name.
type Binding[T any] struct {
	Value      signals.Signal[T]
	Set        signals.Setter[T]
	Validation signals.Signal[ValidationState]
}

// StateProvider is the form-state collaborator. It resolves, for a control
// name, the binding triplet (or a bare getter for display-only controls).
// The core calls it once per control per render pass and never inspects how
// values are stored.
type StateProvider interface {
	// StringBinding resolves the full contract for a string-valued control.
	StringBinding(name string) Binding[string]
	// BoolBinding resolves the full contract for a boolean-valued control.
	BoolBinding(name string) Binding[bool]
	// Getter resolves a read-only view for display-only controls. They can
	// never be a source of user input error, so no setter or validation
	// signal is supplied.
	Getter(name string) signals.Signal[string]
}
