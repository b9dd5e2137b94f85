// Package signals provides the minimal reactive primitives the form core
// builds on: read-only signals, settable state cells, and static-or-dynamic
// field values. The package is deliberately small; hosts with their own
// reactive runtime only need to satisfy the Signal interface.
package signals

import "sync"

// Signal is a read-only reactive value. Get must reflect the latest committed
// value at the time of the call.
type Signal[T any] interface {
	Get() T
}

// Func adapts a plain function into a Signal.
type Func[T any] func() T

// Get evaluates the function.
func (f Func[T]) Get() T {
	return f()
}

// Static returns a Signal that always yields v.
func Static[T any](v T) Signal[T] {
	return Func[T](func() T { return v })
}

// Setter writes a new value into shared state. When during user interaction a
// setter fires is governed by the control's update policy, not by the setter.
type Setter[T any] func(T)

// State is a settable signal. A write takes effect immediately for subsequent
// reads; there is no deferred propagation step.
type State[T any] struct {
	mu    sync.RWMutex
	value T
}

// NewState creates a State seeded with v.
func NewState[T any](v T) *State[T] {
	return &State[T]{value: v}
}

// Get returns the current value.
func (s *State[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set replaces the current value.
func (s *State[T]) Set(v T) {
	s.mu.Lock()
	s.value = v
	s.mu.Unlock()
}

// Setter returns a Setter bound to this cell and no other.
func (s *State[T]) Setter() Setter[T] {
	return s.Set
}
