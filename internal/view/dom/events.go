package dom

import "quizzer/internal/view"

// Click fires click listeners. Disabled elements swallow the click, matching
// browser behavior for disabled buttons. It reports whether any listener ran.
func (e *Element) Click() bool {
	if e.Disabled() {
		return false
	}
	return e.fire(view.Event{Kind: view.EventClick})
}

// Input sets an input element's value and fires input listeners.
func (e *Element) Input(value string) bool {
	if e.tag != "input" && e.tag != "textarea" {
		return false
	}
	if e.Disabled() {
		return false
	}
	e.setAttr("value", value)
	return e.fire(view.Event{Kind: view.EventInput, Value: value})
}

func (e *Element) fire(event view.Event) bool {
	handlers := append([]func(view.Event){}, e.listeners[event.Kind]...)
	for _, handler := range handlers {
		handler(event)
	}
	return len(handlers) > 0
}

func (e *Element) setAttr(name, value string) {
	for i := range e.attrs {
		if e.attrs[i].Name == name {
			e.attrs[i].Value = value
			return
		}
	}
	e.attrs = append(e.attrs, view.Attr{Name: name, Value: value})
}
