package view

// Attr is a single element attribute. Attributes keep declaration order so
// rendered output is deterministic.
type Attr struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Node describes one element of a declarative view tree. A Node holds no
// closures; interaction is expressed as Action values resolved by a Dispatcher.
type Node struct {
	Tag      string  `json:"tag"`
	Text     string  `json:"text,omitempty"`
	Class    string  `json:"class,omitempty"`
	Attrs    []Attr  `json:"attrs,omitempty"`
	Children []Node  `json:"children,omitempty"`
	OnClick  *Action `json:"onClick,omitempty"`
	OnInput  *Action `json:"onInput,omitempty"`
}

// Attr returns the value of the named attribute.
func (n Node) Attr(name string) (string, bool) {
	for _, attr := range n.Attrs {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// WithAttr returns a copy of the node with the attribute set.
func (n Node) WithAttr(name, value string) Node {
	attrs := make([]Attr, 0, len(n.Attrs)+1)
	replaced := false
	for _, attr := range n.Attrs {
		if attr.Name == name {
			attr.Value = value
			replaced = true
		}
		attrs = append(attrs, attr)
	}
	if !replaced {
		attrs = append(attrs, Attr{Name: name, Value: value})
	}
	n.Attrs = attrs
	return n
}

// WithAttrIf sets the attribute only when cond holds.
func (n Node) WithAttrIf(cond bool, name, value string) Node {
	if !cond {
		return n
	}
	return n.WithAttr(name, value)
}

// Div builds a div container.
func Div(class string, children ...Node) Node {
	return Node{Tag: "div", Class: class, Children: children}
}

// Span builds an inline text node.
func Span(class, text string) Node {
	return Node{Tag: "span", Class: class, Text: text}
}

// Paragraph builds a paragraph text node.
func Paragraph(class, text string) Node {
	return Node{Tag: "p", Class: class, Text: text}
}

// TextBlock builds a div holding only text.
func TextBlock(class, text string) Node {
	return Node{Tag: "div", Class: class, Text: text}
}

// ListItem builds an li text node.
func ListItem(text string) Node {
	return Node{Tag: "li", Text: text}
}

// Button builds a clickable button. A nil action yields an inert button.
func Button(class string, action *Action, children ...Node) Node {
	return Node{Tag: "button", Class: class, OnClick: action, Children: children}
}
