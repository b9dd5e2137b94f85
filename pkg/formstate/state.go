// Package formstate provides an in-memory form-state collaborator. It owns
// the shared values a form's controls bind to; controls hold only a
// name-keyed capability into it, never a copy. A setter resolved for one name
// can never touch another name's value.
package formstate

import (
	"sort"
	"strconv"
	"sync"

	"github.com/goliatone/go-formtool/pkg/forms"
	"github.com/goliatone/go-formtool/pkg/signals"
)

// Store implements forms.StateProvider backed by name-keyed signal cells. It
// also plays the validation collaborator: callers push tri-state outcomes in
// through SetValidation and the controls read them out through their binding.
type Store struct {
	mu         sync.Mutex
	strings    map[string]*signals.State[string]
	bools      map[string]*signals.State[bool]
	validation map[string]*signals.State[forms.ValidationState]
}

// New creates an empty store.
func New() *Store {
	return &Store{
		strings:    make(map[string]*signals.State[string]),
		bools:      make(map[string]*signals.State[bool]),
		validation: make(map[string]*signals.State[forms.ValidationState]),
	}
}

// Seed sets initial string values without touching validation state.
func (s *Store) Seed(values map[string]string) *Store {
	for name, value := range values {
		s.stringCell(name).Set(value)
	}
	return s
}

// StringBinding resolves the binding triplet for a string-valued control.
func (s *Store) StringBinding(name string) forms.Binding[string] {
	cell := s.stringCell(name)
	return forms.Binding[string]{
		Value:      cell,
		Set:        cell.Setter(),
		Validation: s.validationCell(name),
	}
}

// BoolBinding resolves the binding triplet for a boolean-valued control.
func (s *Store) BoolBinding(name string) forms.Binding[bool] {
	cell := s.boolCell(name)
	return forms.Binding[bool]{
		Value:      cell,
		Set:        cell.Setter(),
		Validation: s.validationCell(name),
	}
}

// Getter resolves a read-only view for display-only controls.
func (s *Store) Getter(name string) signals.Signal[string] {
	return s.stringCell(name)
}

// Set writes a string value, as the control's setter would.
func (s *Store) Set(name, value string) {
	s.stringCell(name).Set(value)
}

// SetBool writes a boolean value.
func (s *Store) SetBool(name string, value bool) {
	s.boolCell(name).Set(value)
}

// Get reads the current string value for name.
func (s *Store) Get(name string) string {
	return s.stringCell(name).Get()
}

// GetBool reads the current boolean value for name.
func (s *Store) GetBool(name string) bool {
	return s.boolCell(name).Get()
}

// SetValidation records the validation outcome for a control name. The store
// never computes validation itself; outcomes flow in from the caller.
func (s *Store) SetValidation(name string, state forms.ValidationState) {
	s.validationCell(name).Set(state)
}

// Validation reads the current validation outcome for name.
func (s *Store) Validation(name string) forms.ValidationState {
	return s.validationCell(name).Get()
}

// Values snapshots all stored values keyed by control name. Booleans are
// formatted with strconv so the name remains the externally visible key for
// every control's value.
func (s *Store) Values() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]string, len(s.strings)+len(s.bools))
	for name, cell := range s.strings {
		out[name] = cell.Get()
	}
	for name, cell := range s.bools {
		out[name] = strconv.FormatBool(cell.Get())
	}
	return out
}

// Names returns all keys holding a value, sorted for deterministic output.
func (s *Store) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.strings)+len(s.bools))
	for name := range s.strings {
		names = append(names, name)
	}
	for name := range s.bools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *Store) stringCell(name string) *signals.State[string] {
	s.mu.Lock()
	defer s.mu.Unlock()

	cell, ok := s.strings[name]
	if !ok {
		cell = signals.NewState("")
		s.strings[name] = cell
	}
	return cell
}

func (s *Store) boolCell(name string) *signals.State[bool] {
	s.mu.Lock()
	defer s.mu.Unlock()

	cell, ok := s.bools[name]
	if !ok {
		cell = signals.NewState(false)
		s.bools[name] = cell
	}
	return cell
}

func (s *Store) validationCell(name string) *signals.State[forms.ValidationState] {
	s.mu.Lock()
	defer s.mu.Unlock()

	cell, ok := s.validation[name]
	if !ok {
		cell = signals.NewState(forms.Pending())
		s.validation[name] = cell
	}
	return cell
}
