package forms

import "fmt"

// NoContext is the context type for forms built without shared configuration.
type NoContext = struct{}

// Builder accumulates a form's controls in insertion order. Control methods
// return the builder so calls chain; appending never fails. Build is the
// terminal, sealing step and the only place construction errors surface.
//
// The type parameter C is the form's read-only context: form-wide shared
// configuration the *Cx control variants receive to parameterize
// construction. Builders must not mutate it.
type Builder[C any] struct {
	cx       C
	controls []control
	styles   []StyleAttr
}

// New creates a builder for a form without a context.
func New() *Builder[NoContext] {
	return NewBuilder(NoContext{})
}

// NewBuilder creates a builder carrying the given read-only context.
func NewBuilder[C any](cx C) *Builder[C] {
	return &Builder[C]{cx: cx}
}

// Context returns the form's shared context.
func (b *Builder[C]) Context() C {
	return b.cx
}

// Styled appends style attributes to the form-level frame.
func (b *Builder[C]) Styled(attrs ...StyleAttr) *Builder[C] {
	b.styles = append(b.styles, attrs...)
	return b
}

// Group builds a nested control sequence and appends it as a single control.
// The child builder shares the parent's context. Style attributes apply to
// the group container, not to the nested controls.
func (b *Builder[C]) Group(fn func(*Builder[C]), attrs ...StyleAttr) *Builder[C] {
	child := NewBuilder(b.cx)
	if fn != nil {
		fn(child)
	}
	return b.append(&groupControl{
		children: child.controls,
		styles:   attrs,
	})
}

// Amend applies fn to every control appended so far, including controls
// nested in groups. Overlay layers use it to decorate labels, titles, and
// style attributes before the form is sealed.
func (b *Builder[C]) Amend(fn func(ControlView)) *Builder[C] {
	if fn == nil {
		return b
	}
	amendControls(b.controls, fn)
	return b
}

func amendControls(controls []control, fn func(ControlView)) {
	for _, c := range controls {
		fn(ControlView{c: c})
		if group, ok := c.(*groupControl); ok {
			amendControls(group.children, fn)
		}
	}
}

// Build seals the form. Control names form a flat namespace regardless of
// nesting depth: a bound or serialized control without a name, or two
// controls sharing one, is a build error rather than a silent shadow.
func (b *Builder[C]) Build() (*Form, error) {
	seen := make(map[string]Kind)
	if err := checkNames(b.controls, seen); err != nil {
		return nil, err
	}
	return &Form{
		controls: b.controls,
		styles:   b.styles,
	}, nil
}

// MustBuild is Build panicking on error. Useful for static form definitions.
func (b *Builder[C]) MustBuild() *Form {
	form, err := b.Build()
	if err != nil {
		panic(err)
	}
	return form
}

func checkNames(controls []control, seen map[string]Kind) error {
	for _, c := range controls {
		if group, ok := c.(*groupControl); ok {
			if err := checkNames(group.children, seen); err != nil {
				return err
			}
			continue
		}

		name := c.controlName()
		if name == "" {
			if c.needsName() {
				return fmt.Errorf("forms: %s control requires a name", c.controlKind())
			}
			continue
		}
		if prev, ok := seen[name]; ok {
			return fmt.Errorf("forms: duplicate control name %q (%s and %s)", name, prev, c.controlKind())
		}
		seen[name] = c.controlKind()
	}
	return nil
}

func (b *Builder[C]) append(c control) *Builder[C] {
	b.controls = append(b.controls, c)
	return b
}
