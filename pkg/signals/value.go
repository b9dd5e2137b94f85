package signals

type valueKind int

const (
	valueUnset valueKind = iota
	valueStatic
	valueDynamic
)

// Value holds an optional control field that is either a static constant or
// backed by a signal producing the value over time. Static and dynamic writes
// resolve to the same field; which one applies is a property of the value,
// and the last write wins.
type Value[T any] struct {
	kind   valueKind
	static T
	signal Signal[T]
}

// Of wraps a static value.
func Of[T any](v T) Value[T] {
	return Value[T]{kind: valueStatic, static: v}
}

// FromSignal wraps a dynamic value. A nil signal leaves the Value unset.
func FromSignal[T any](s Signal[T]) Value[T] {
	if s == nil {
		return Value[T]{}
	}
	return Value[T]{kind: valueDynamic, signal: s}
}

// IsSet reports whether the field was assigned at all.
func (v Value[T]) IsSet() bool {
	return v.kind != valueUnset
}

// Get resolves the current value, reading through the signal for dynamic
// fields. Unset values yield the zero value of T.
func (v Value[T]) Get() T {
	switch v.kind {
	case valueStatic:
		return v.static
	case valueDynamic:
		return v.signal.Get()
	default:
		var zero T
		return zero
	}
}

// Signal exposes the field as a read-only signal. Unset values return nil so
// callers can distinguish "no text" from "empty text".
func (v Value[T]) Signal() Signal[T] {
	switch v.kind {
	case valueStatic:
		return Static(v.static)
	case valueDynamic:
		return v.signal
	default:
		return nil
	}
}
