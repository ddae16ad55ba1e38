package view

// Namespace distinguishes standard markup elements from graphics elements.
type Namespace int

const (
	// NamespaceHTML is the standard element namespace.
	NamespaceHTML Namespace = iota
	// NamespaceSVG is the graphics namespace.
	NamespaceSVG
)

// String returns a short namespace label.
func (ns Namespace) String() string {
	if ns == NamespaceSVG {
		return "svg"
	}
	return "html"
}

// EventKind identifies a raw element event.
type EventKind int

const (
	// EventClick fires when an element is activated.
	EventClick EventKind = iota
	// EventInput fires when an input element's value changes.
	EventInput
)

// Event is a raw event delivered by a rendering target.
type Event struct {
	Kind  EventKind
	Value string
}

// Props are the static properties applied when creating an element.
type Props struct {
	Text  string
	Class string
	Attrs []Attr
}

// Element is the rendering target contract: anything that can create child
// elements, accept event listeners, and drop its children.
type Element interface {
	Tag() string
	Namespace() Namespace
	CreateChild(ns Namespace, tag string, props Props) Element
	AddEventListener(kind EventKind, fn func(Event))
	Empty()
}
