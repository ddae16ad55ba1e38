package textview

import "quizzer/internal/view/dom"

// ControlKind separates clickable controls from text fields.
type ControlKind int

// Control kinds.
const (
	ControlButton ControlKind = iota
	ControlInput
)

// Control is an element the user can act on.
type Control struct {
	Kind    ControlKind
	Element *dom.Element
}

// Controls lists visible, enabled controls with listeners in document order.
func Controls(root *dom.Element) []Control {
	var out []Control
	for _, child := range root.Children() {
		child.Walk(func(el *dom.Element) bool {
			if el.Hidden() {
				return false
			}
			if !el.Interactive() || el.Disabled() {
				return true
			}
			switch el.Tag() {
			case "input", "textarea":
				out = append(out, Control{Kind: ControlInput, Element: el})
			default:
				out = append(out, Control{Kind: ControlButton, Element: el})
			}
			return false
		})
	}
	return out
}
