package openapi

import (
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-formtool/pkg/forms"
)

// Strings longer than this render as a text area rather than a single line.
const longTextThreshold = 256

// Matcher decides whether a control kind should handle the supplied field.
type Matcher func(field Field) bool

type rule struct {
	kind     forms.Kind
	priority int
	match    Matcher
	order    int
}

// KindRegistry selects the control kind for a field. Higher priority wins;
// ties fall back to registration order. Fields no rule matches fall back to
// a text input in the importer.
type KindRegistry struct {
	mu    sync.RWMutex
	rules []rule
}

// NewKindRegistry constructs a registry with the built-in matchers.
func NewKindRegistry() *KindRegistry {
	reg := &KindRegistry{}
	reg.registerBuiltins()
	return reg
}

// Register adds a matcher for the given kind. Higher priority values take
// precedence over the built-ins.
func (r *KindRegistry) Register(kind forms.Kind, priority int, matcher Matcher) {
	if r == nil || matcher == nil || kind == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, rule{
		kind:     kind,
		priority: priority,
		match:    matcher,
		order:    len(r.rules),
	})
}

// Resolve returns the control kind for a field.
func (r *KindRegistry) Resolve(field Field) (forms.Kind, bool) {
	if r == nil {
		return "", false
	}
	r.mu.RLock()
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()

	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if entry.match(field) {
			return entry.kind, true
		}
	}
	return "", false
}

func (r *KindRegistry) registerBuiltins() {
	r.Register(forms.KindCheckbox, 90, func(field Field) bool {
		return field.Type == "boolean"
	})

	r.Register(forms.KindSelect, 80, func(field Field) bool {
		if field.Type == "array" || field.Type == "object" {
			return false
		}
		return len(field.Enum) > 0
	})

	r.Register(forms.KindDate, 70, func(field Field) bool {
		if field.Type != "string" {
			return false
		}
		format := strings.ToLower(field.Format)
		return format == "date" || format == "date-time"
	})

	r.Register(forms.KindTextArea, 60, func(field Field) bool {
		if field.Type != "string" {
			return false
		}
		format := strings.ToLower(field.Format)
		if format == "textarea" || format == "markdown" {
			return true
		}
		return field.MaxLength != nil && *field.MaxLength > longTextThreshold
	})

	r.Register(forms.KindStepper, 50, func(field Field) bool {
		return field.Type == "integer" || field.Type == "number"
	})
}
