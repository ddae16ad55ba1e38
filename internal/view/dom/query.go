package dom

import "strings"

// Walk visits e and its descendants in document order. Returning false from
// fn skips the element's subtree.
func (e *Element) Walk(fn func(*Element) bool) {
	if !fn(e) {
		return
	}
	for _, child := range e.children {
		child.Walk(fn)
	}
}

// FindAll returns descendants matching pred in document order.
func (e *Element) FindAll(pred func(*Element) bool) []*Element {
	var out []*Element
	for _, child := range e.children {
		child.Walk(func(el *Element) bool {
			if pred(el) {
				out = append(out, el)
			}
			return true
		})
	}
	return out
}

// Find returns the first descendant matching pred.
func (e *Element) Find(pred func(*Element) bool) *Element {
	matches := e.FindAll(pred)
	if len(matches) == 0 {
		return nil
	}
	return matches[0]
}

// ByClass returns descendants whose class list contains token.
func (e *Element) ByClass(token string) []*Element {
	return e.FindAll(func(el *Element) bool { return el.HasClass(token) })
}

// ByTag returns descendants with the given tag.
func (e *Element) ByTag(tag string) []*Element {
	return e.FindAll(func(el *Element) bool { return el.tag == tag })
}

// ButtonWithText returns the first button whose text content contains text.
func (e *Element) ButtonWithText(text string) *Element {
	return e.Find(func(el *Element) bool {
		return el.tag == "button" && strings.Contains(el.TextContent(), text)
	})
}

// TextContent concatenates the text of e and all descendants.
func (e *Element) TextContent() string {
	var b strings.Builder
	e.Walk(func(el *Element) bool {
		b.WriteString(el.text)
		return true
	})
	return b.String()
}

// VisibleText concatenates text while skipping hidden subtrees.
func (e *Element) VisibleText() string {
	var b strings.Builder
	e.Walk(func(el *Element) bool {
		if el.Hidden() {
			return false
		}
		b.WriteString(el.text)
		return true
	})
	return b.String()
}
