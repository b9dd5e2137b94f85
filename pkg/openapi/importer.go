// Package openapi imports OpenAPI 3 request bodies as form definitions. The
// importer maps each request body property to a control kind through a
// priority registry and hands back a form builder, so callers can amend the
// result before building.
package openapi

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formtool/pkg/forms"
)

// Document wraps a parsed OpenAPI specification.
type Document struct {
	spec *openapi3.T
}

// Load parses an OpenAPI document from raw YAML or JSON.
func Load(ctx context.Context, data []byte) (*Document, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("openapi: document payload is empty")
	}
	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	return &Document{spec: spec}, nil
}

// OperationIDs lists the document's operation identifiers, sorted.
func (d *Document) OperationIDs() []string {
	if d == nil || d.spec == nil || d.spec.Paths == nil {
		return nil
	}
	var ids []string
	for path, item := range d.spec.Paths.Map() {
		if item == nil {
			continue
		}
		for method, op := range item.Operations() {
			if op == nil {
				continue
			}
			ids = append(ids, operationID(op, method, path))
		}
	}
	sort.Strings(ids)
	return ids
}

func (d *Document) requestSchema(id string) (*openapi3.SchemaRef, error) {
	if d == nil || d.spec == nil || d.spec.Paths == nil {
		return nil, fmt.Errorf("openapi: document has no paths")
	}
	for path, item := range d.spec.Paths.Map() {
		if item == nil {
			continue
		}
		for method, op := range item.Operations() {
			if op == nil || operationID(op, method, path) != id {
				continue
			}
			if op.RequestBody == nil || op.RequestBody.Value == nil {
				return nil, fmt.Errorf("openapi: operation %q has no request body", id)
			}
			content := op.RequestBody.Value.Content
			for _, mediaType := range []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"} {
				if mt, ok := content[mediaType]; ok {
					return mt.Schema, nil
				}
			}
			for _, mt := range content {
				return mt.Schema, nil
			}
			return nil, fmt.Errorf("openapi: operation %q request body has no content", id)
		}
	}
	return nil, fmt.Errorf("openapi: operation %q not found", id)
}

func operationID(op *openapi3.Operation, method, path string) string {
	if op.OperationID != "" {
		return op.OperationID
	}
	return strings.ToLower(method) + ":" + path
}

// Labeler derives a display label from a property name.
type Labeler func(name string) string

// Option configures the importer.
type Option func(*Importer)

// WithKindRegistry replaces the kind registry.
func WithKindRegistry(registry *KindRegistry) Option {
	return func(im *Importer) {
		if registry != nil {
			im.registry = registry
		}
	}
}

// WithLabeler replaces the label derivation function.
func WithLabeler(labeler Labeler) Option {
	return func(im *Importer) {
		if labeler != nil {
			im.labeler = labeler
		}
	}
}

// Importer turns a request body schema into a form builder.
type Importer struct {
	registry *KindRegistry
	labeler  Labeler
}

// New constructs an importer with the built-in kind registry and labeler.
func New(options ...Option) *Importer {
	im := &Importer{
		registry: NewKindRegistry(),
		labeler:  Humanize,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(im)
	}
	return im
}

// Result carries the constructed builder plus seed values found in the
// schema defaults, keyed by control name.
type Result struct {
	Builder  *forms.Builder[forms.NoContext]
	Defaults map[string]string
}

// Form builds the form directly, for callers with nothing to amend.
func (r *Result) Form() (*forms.Form, error) {
	return r.Builder.Build()
}

// Import maps the operation's request body to form controls. Nested objects
// become groups; their properties join the flat namespace with dotted names.
func (im *Importer) Import(doc *Document, operationID string) (*Result, error) {
	schemaRef, err := doc.requestSchema(operationID)
	if err != nil {
		return nil, err
	}
	if schemaRef == nil || schemaRef.Value == nil {
		return nil, fmt.Errorf("openapi: operation %q request schema is empty", operationID)
	}

	root := fieldFromSchema("", schemaRef, false)
	if root.Type != "" && root.Type != "object" {
		return nil, fmt.Errorf("openapi: operation %q request body is %s, want object", operationID, root.Type)
	}

	result := &Result{
		Builder:  forms.New(),
		Defaults: make(map[string]string),
	}
	im.addFields(result, result.Builder, "", root.Nested)
	return result, nil
}

func (im *Importer) addFields(result *Result, b *forms.Builder[forms.NoContext], prefix string, fields []Field) {
	for _, field := range fields {
		if field.Type == "object" && len(field.Nested) > 0 {
			nested := field.Nested
			childPrefix := prefix + field.Name + "."
			b.Group(func(gb *forms.Builder[forms.NoContext]) {
				im.addFields(result, gb, childPrefix, nested)
			})
			continue
		}
		im.addControl(result, b, prefix+field.Name, field)
	}
}

func (im *Importer) addControl(result *Result, b *forms.Builder[forms.NoContext], path string, field Field) {
	if field.Default != "" {
		result.Defaults[path] = field.Default
	}
	label := im.labeler(field.Name)

	kind, ok := im.registry.Resolve(field)
	if !ok {
		kind = forms.KindTextInput
	}

	switch kind {
	case forms.KindCheckbox:
		b.Checkbox(func(cb *forms.CheckboxBuilder) {
			cb.Named(path).Labeled(label).Title(field.Description)
		})
	case forms.KindSelect:
		b.Select(func(sb *forms.SelectBuilder) {
			sb.Named(path).Labeled(label).Title(field.Description)
			if !field.Required {
				sb.BlankOption("Select an option")
			}
			for _, value := range field.Enum {
				sb.Option(im.labeler(value), value)
			}
		})
	case forms.KindDate:
		b.Date(func(db *forms.DateBuilder) {
			db.Named(path).Labeled(label).Title(field.Description)
		})
	case forms.KindTextArea:
		b.TextArea(func(tb *forms.TextAreaBuilder) {
			tb.Named(path).Labeled(label).Title(field.Description)
		})
	case forms.KindStepper:
		b.Stepper(func(sb *forms.StepperBuilder) {
			sb.Named(path).Labeled(label).Title(field.Description)
			if field.Minimum != nil {
				sb.Min(formatNumber(*field.Minimum))
			}
			if field.Maximum != nil {
				sb.Max(formatNumber(*field.Maximum))
			}
			if field.Type == "integer" {
				sb.Step("1")
			}
		})
	default:
		b.TextInput(func(tb *forms.TextInputBuilder) {
			tb.Named(path).Labeled(label).Title(field.Description)
			if inputType := inputTypeForFormat(field.Format); inputType != "" {
				tb.InputType(inputType)
			}
		})
	}
}

func inputTypeForFormat(format string) string {
	switch strings.ToLower(format) {
	case "email":
		return "email"
	case "password":
		return "password"
	case "uri", "url":
		return "url"
	case "tel", "phone":
		return "tel"
	default:
		return ""
	}
}

func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// Humanize is the default labeler: it splits on underscores and dashes and
// capitalizes the first word, so "first_name" becomes "First name".
func Humanize(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-'
	})
	if len(parts) == 0 {
		return name
	}
	out := strings.Join(parts, " ")
	return strings.ToUpper(out[:1]) + out[1:]
}
