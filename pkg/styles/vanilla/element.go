package vanilla

import (
	"context"
	"html"
	"io"
	"strings"

	"github.com/goliatone/go-formtool/pkg/forms"
)

// Attr is a single rendered HTML attribute. Attribute order is insertion
// order so output stays stable across renders.
type Attr struct {
	Key   string
	Value string
}

// Element is an HTML element node. The style builds an element tree per
// render pass; tests can walk the tree with Find and drive registered event
// handlers with Fire instead of scraping markup.
type Element struct {
	Tag string

	attrs    []Attr
	flags    []string
	children []forms.Node
	handlers map[string]func(value string)
}

// NewElement returns an element with the given tag.
func NewElement(tag string) *Element {
	return &Element{Tag: tag}
}

// Attr sets an attribute, replacing any previous value for the key.
func (e *Element) Attr(key, value string) *Element {
	for i := range e.attrs {
		if e.attrs[i].Key == key {
			e.attrs[i].Value = value
			return e
		}
	}
	e.attrs = append(e.attrs, Attr{Key: key, Value: value})
	return e
}

// AttrValue reports the value of an attribute and whether it is set.
func (e *Element) AttrValue(key string) (string, bool) {
	for _, attr := range e.attrs {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return "", false
}

// Flag sets a boolean attribute such as checked or disabled.
func (e *Element) Flag(key string) *Element {
	for _, flag := range e.flags {
		if flag == key {
			return e
		}
	}
	e.flags = append(e.flags, key)
	return e
}

// HasFlag reports whether a boolean attribute is set.
func (e *Element) HasFlag(key string) bool {
	for _, flag := range e.flags {
		if flag == key {
			return true
		}
	}
	return false
}

// Class appends the non-empty classes to the element's class attribute.
func (e *Element) Class(classes ...string) *Element {
	parts := make([]string, 0, len(classes)+1)
	if current, ok := e.AttrValue("class"); ok && current != "" {
		parts = append(parts, current)
	}
	for _, cls := range classes {
		if strings.TrimSpace(cls) != "" {
			parts = append(parts, cls)
		}
	}
	if len(parts) == 0 {
		return e
	}
	return e.Attr("class", strings.Join(parts, " "))
}

// Text appends an escaped text child.
func (e *Element) Text(text string) *Element {
	e.children = append(e.children, textNode(text))
	return e
}

// Raw appends a child written verbatim. Callers are responsible for
// sanitizing the markup first.
func (e *Element) Raw(markup string) *Element {
	e.children = append(e.children, rawNode(markup))
	return e
}

// Child appends node children, skipping nils.
func (e *Element) Child(nodes ...forms.Node) *Element {
	for _, node := range nodes {
		if node != nil {
			e.children = append(e.children, node)
		}
	}
	return e
}

// On registers an event handler invoked by Fire. The handler receives the
// event payload, typically the control's new value.
func (e *Element) On(event string, handler func(value string)) *Element {
	if handler == nil {
		return e
	}
	if e.handlers == nil {
		e.handlers = make(map[string]func(string))
	}
	e.handlers[event] = handler
	return e
}

// Fire dispatches an event against this element. It reports whether a
// handler was registered for the event name.
func (e *Element) Fire(event, value string) bool {
	handler, ok := e.handlers[event]
	if !ok {
		return false
	}
	handler(value)
	return true
}

// Find walks the element subtree depth first, self included, and returns the
// first element matching the predicate.
func (e *Element) Find(match func(*Element) bool) *Element {
	if match(e) {
		return e
	}
	for _, child := range e.children {
		el, ok := child.(*Element)
		if !ok {
			continue
		}
		if found := el.Find(match); found != nil {
			return found
		}
	}
	return nil
}

// FindAll collects every element in the subtree matching the predicate.
func (e *Element) FindAll(match func(*Element) bool) []*Element {
	var out []*Element
	if match(e) {
		out = append(out, e)
	}
	for _, child := range e.children {
		if el, ok := child.(*Element); ok {
			out = append(out, el.FindAll(match)...)
		}
	}
	return out
}

// FindByAttr returns the first element whose attribute matches the value.
func (e *Element) FindByAttr(key, value string) *Element {
	return e.Find(func(el *Element) bool {
		got, ok := el.AttrValue(key)
		return ok && got == value
	})
}

// FindByName returns the first element whose name attribute matches.
func (e *Element) FindByName(name string) *Element {
	return e.FindByAttr("name", name)
}

var voidElements = map[string]bool{
	"input": true,
	"br":    true,
	"hr":    true,
	"img":   true,
	"link":  true,
	"meta":  true,
}

// Render writes the element and its children as HTML.
func (e *Element) Render(ctx context.Context, w io.Writer) error {
	var sb strings.Builder
	sb.WriteByte('<')
	sb.WriteString(e.Tag)
	for _, attr := range e.attrs {
		sb.WriteByte(' ')
		sb.WriteString(attr.Key)
		sb.WriteString(`="`)
		sb.WriteString(html.EscapeString(attr.Value))
		sb.WriteByte('"')
	}
	for _, flag := range e.flags {
		sb.WriteByte(' ')
		sb.WriteString(flag)
	}
	sb.WriteByte('>')
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return err
	}

	if voidElements[e.Tag] {
		return nil
	}

	for _, child := range e.children {
		if err := child.Render(ctx, w); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "</"+e.Tag+">")
	return err
}

type textNode string

func (n textNode) Render(_ context.Context, w io.Writer) error {
	_, err := io.WriteString(w, html.EscapeString(string(n)))
	return err
}

type rawNode string

func (n rawNode) Render(_ context.Context, w io.Writer) error {
	_, err := io.WriteString(w, string(n))
	return err
}
