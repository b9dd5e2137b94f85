// Package formtool builds typed, stateful forms and renders them through
// pluggable styles. The root package re-exports the core types and wires the
// full pipeline: import an OpenAPI operation, overlay presentation tweaks,
// bind shared state, and render.
package formtool

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/goliatone/go-formtool/pkg/forms"
	"github.com/goliatone/go-formtool/pkg/formstate"
	"github.com/goliatone/go-formtool/pkg/openapi"
	"github.com/goliatone/go-formtool/pkg/overlay"
)

// Form is a sealed control sequence ready to render.
type Form = forms.Form

// Style is the pluggable rendering strategy.
type Style = forms.Style

// Node is one rendered fragment of a form.
type Node = forms.Node

// StateProvider supplies bindings for bound controls.
type StateProvider = forms.StateProvider

// Builder assembles a form without a context payload.
type Builder = forms.Builder[forms.NoContext]

// ValidationState is the tri-state validation result attached to a binding.
type ValidationState = forms.ValidationState

// New starts a form builder without a context payload.
func New() *forms.Builder[forms.NoContext] {
	return forms.New()
}

// NewBuilder starts a form builder carrying a caller-defined context that
// contextual control constructors receive.
func NewBuilder[C any](cx C) *forms.Builder[C] {
	return forms.NewBuilder(cx)
}

// NewState constructs an empty state store.
func NewState() *formstate.Store {
	return formstate.New()
}

// Render renders a form through the style against the provided state and
// returns the output bytes.
func Render(ctx context.Context, form *Form, style Style, state StateProvider) ([]byte, error) {
	if form == nil {
		return nil, errors.New("formtool: form is nil")
	}
	if style == nil {
		return nil, errors.New("formtool: style is nil")
	}
	node := form.Render(style, state)
	if node == nil {
		return nil, errors.New("formtool: style returned no frame")
	}

	var buf bytes.Buffer
	if err := node.Render(ctx, &buf); err != nil {
		return nil, fmt.Errorf("formtool: render form: %w", err)
	}
	return buf.Bytes(), nil
}

// GenerateRequest configures the one-shot document-to-output pipeline.
type GenerateRequest struct {
	// Document is the raw OpenAPI specification, YAML or JSON.
	Document []byte
	// OperationID selects the operation whose request body becomes the form.
	OperationID string
	// Overlays optionally holds overlay documents; the overlay matching the
	// operation id is applied when present.
	Overlays fs.FS
	// State optionally carries pre-seeded values. When nil a fresh store is
	// used. Schema defaults fill names with no committed value.
	State *formstate.Store
	// Style renders the form. Required.
	Style Style
}

// Generate runs the full pipeline: import the operation's request body as a
// form, apply overlays, seed defaults, and render.
func Generate(ctx context.Context, req GenerateRequest, options ...openapi.Option) ([]byte, error) {
	if req.Style == nil {
		return nil, errors.New("formtool: style is required")
	}

	doc, err := openapi.Load(ctx, req.Document)
	if err != nil {
		return nil, err
	}
	result, err := openapi.New(options...).Import(doc, req.OperationID)
	if err != nil {
		return nil, err
	}

	if req.Overlays != nil {
		store, err := overlay.LoadFS(req.Overlays)
		if err != nil {
			return nil, err
		}
		if spec, ok := store.Form(req.OperationID); ok {
			overlay.Apply(result.Builder, spec)
		}
	}

	form, err := result.Builder.Build()
	if err != nil {
		return nil, err
	}

	state := req.State
	if state == nil {
		state = formstate.New()
	}
	for name, value := range result.Defaults {
		if state.Get(name) == "" {
			state.Set(name, value)
		}
	}

	return Render(ctx, form, req.Style, state)
}
