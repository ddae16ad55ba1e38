// Package dom is an in-memory rendering target for view trees. Terminal and
// HTML presenters read it; tests drive it directly.
package dom

import (
	"strings"

	"quizzer/internal/view"
)

// Element is a node of the in-memory element tree.
type Element struct {
	tag       string
	ns        view.Namespace
	text      string
	class     string
	attrs     []view.Attr
	children  []*Element
	parent    *Element
	listeners map[view.EventKind][]func(view.Event)
}

// NewRoot creates a detached mount point.
func NewRoot(tag string) *Element {
	if tag == "" {
		tag = "div"
	}
	return &Element{tag: tag, ns: view.NamespaceHTML}
}

// Tag returns the element tag.
func (e *Element) Tag() string { return e.tag }

// Namespace returns the element namespace.
func (e *Element) Namespace() view.Namespace { return e.ns }

// Text returns the element's own text.
func (e *Element) Text() string { return e.text }

// Class returns the raw class string.
func (e *Element) Class() string { return e.class }

// Attrs returns a copy of the attributes in declaration order.
func (e *Element) Attrs() []view.Attr {
	out := make([]view.Attr, len(e.attrs))
	copy(out, e.attrs)
	return out
}

// Children returns the child elements.
func (e *Element) Children() []*Element { return e.children }

// Parent returns the parent element, nil for a root.
func (e *Element) Parent() *Element { return e.parent }

// CreateChild appends a new child element.
func (e *Element) CreateChild(ns view.Namespace, tag string, props view.Props) view.Element {
	child := &Element{
		tag:    tag,
		ns:     ns,
		text:   props.Text,
		class:  normalizeClass(props.Class),
		attrs:  append([]view.Attr(nil), props.Attrs...),
		parent: e,
	}
	e.children = append(e.children, child)
	return child
}

// AddEventListener registers fn for events of kind.
func (e *Element) AddEventListener(kind view.EventKind, fn func(view.Event)) {
	if e.listeners == nil {
		e.listeners = make(map[view.EventKind][]func(view.Event))
	}
	e.listeners[kind] = append(e.listeners[kind], fn)
}

// Empty detaches all children.
func (e *Element) Empty() {
	for _, child := range e.children {
		child.parent = nil
	}
	e.children = nil
}

// Listeners reports how many listeners of kind are registered.
func (e *Element) Listeners(kind view.EventKind) int {
	return len(e.listeners[kind])
}

// Attr returns the value of the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	for _, attr := range e.attrs {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// HasClass reports whether the class list contains token.
func (e *Element) HasClass(token string) bool {
	for _, field := range strings.Fields(e.class) {
		if field == token {
			return true
		}
	}
	return false
}

// Disabled reports whether the element carries a disabled attribute.
func (e *Element) Disabled() bool {
	value, ok := e.Attr("disabled")
	return ok && value != "false"
}

// Hidden reports whether the element carries a hidden attribute.
func (e *Element) Hidden() bool {
	value, ok := e.Attr("hidden")
	return ok && value != "false"
}

// Value returns the current value of an input element.
func (e *Element) Value() string {
	value, _ := e.Attr("value")
	return value
}

// Interactive reports whether the element accepts clicks or input.
func (e *Element) Interactive() bool {
	return e.Listeners(view.EventClick) > 0 || e.Listeners(view.EventInput) > 0
}

func normalizeClass(class string) string {
	return strings.Join(strings.Fields(class), " ")
}
