package openapi

import (
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// Field is the schema-neutral view of one request body property. The kind
// registry matches against it, and the importer turns it into a control.
type Field struct {
	Name        string
	Type        string
	Format      string
	Description string
	Required    bool
	Enum        []string
	Minimum     *float64
	Maximum     *float64
	MaxLength   *int
	Pattern     string
	Default     string
	Nested      []Field
}

func fieldFromSchema(name string, ref *openapi3.SchemaRef, required bool) Field {
	field := Field{Name: name, Required: required}
	if ref == nil || ref.Value == nil {
		return field
	}
	src := ref.Value

	field.Type = firstSchemaType(src.Type)
	field.Format = src.Format
	field.Description = src.Description
	field.Pattern = src.Pattern

	for _, value := range src.Enum {
		field.Enum = append(field.Enum, fmt.Sprint(value))
	}
	if src.Default != nil {
		field.Default = fmt.Sprint(src.Default)
	}
	if src.Min != nil {
		value := *src.Min
		field.Minimum = &value
	}
	if src.Max != nil {
		value := *src.Max
		field.Maximum = &value
	}
	if src.MaxLength != nil {
		value := int(*src.MaxLength)
		field.MaxLength = &value
	}

	if len(src.Properties) > 0 {
		field.Nested = fieldsFromSchemas(src.Properties, src.Required)
	}
	return field
}

// fieldsFromSchemas converts a property map into fields sorted by name, since
// the schema map carries no declaration order.
func fieldsFromSchemas(properties openapi3.Schemas, required []string) []Field {
	names := make([]string, 0, len(properties))
	for name := range properties {
		names = append(names, name)
	}
	sort.Strings(names)

	requiredSet := make(map[string]struct{}, len(required))
	for _, name := range required {
		requiredSet[name] = struct{}{}
	}

	fields := make([]Field, 0, len(names))
	for _, name := range names {
		_, isRequired := requiredSet[name]
		fields = append(fields, fieldFromSchema(name, properties[name], isRequired))
	}
	return fields
}

func firstSchemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	switch len(values) {
	case 0:
		return ""
	case 1:
		return values[0]
	default:
		return strings.Join(values, ",")
	}
}
