package forms

type validationResult int

const (
	validationPending validationResult = iota
	validationValid
	validationInvalid
)

// ValidationState is the tri-state outcome attached to a bound control. The
// zero value is Pending: validation has not been evaluated yet. The state is
// produced by a caller-supplied validation collaborator; the core and the
// styles only read it. A conforming style renders the message if and only if
// the state is invalid, and never blocks input while pending.
type ValidationState struct {
	result  validationResult
	message string
}

// Valid marks a control as having passed validation.
func Valid() ValidationState {
	return ValidationState{result: validationValid}
}

// Pending marks a control as not yet validated.
func Pending() ValidationState {
	return ValidationState{}
}

// Invalid marks a control as failed with a user-visible message.
func Invalid(message string) ValidationState {
	return ValidationState{result: validationInvalid, message: message}
}

// IsValid reports whether validation passed.
func (v ValidationState) IsValid() bool {
	return v.result == validationValid
}

// IsPending reports whether validation has not been evaluated.
func (v ValidationState) IsPending() bool {
	return v.result == validationPending
}

// IsInvalid reports whether validation failed.
func (v ValidationState) IsInvalid() bool {
	return v.result == validationInvalid
}

// Message returns the failure message. Empty unless the state is invalid.
func (v ValidationState) Message() string {
	if v.result != validationInvalid {
		return ""
	}
	return v.message
}

// String implements fmt.Stringer for debugging output.
func (v ValidationState) String() string {
	switch v.result {
	case validationValid:
		return "valid"
	case validationInvalid:
		return "invalid: " + v.message
	default:
		return "pending"
	}
}
