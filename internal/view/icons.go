package view

// IconAttr marks graphics nodes with a symbolic icon name so text presenters
// can substitute a glyph.
const IconAttr = "data-icon"

func iconFrame(class, name string, paths ...string) Node {
	children := make([]Node, 0, len(paths))
	for _, d := range paths {
		children = append(children, Node{Tag: "path", Attrs: []Attr{{Name: "d", Value: d}}})
	}
	return Node{
		Tag:   "svg",
		Class: class,
		Attrs: []Attr{
			{Name: IconAttr, Value: name},
			{Name: "xmlns", Value: "http://www.w3.org/2000/svg"},
			{Name: "width", Value: "24"},
			{Name: "height", Value: "24"},
			{Name: "viewBox", Value: "0 0 24 24"},
			{Name: "fill", Value: "none"},
			{Name: "stroke", Value: "currentColor"},
			{Name: "stroke-width", Value: "2"},
			{Name: "stroke-linecap", Value: "round"},
			{Name: "stroke-linejoin", Value: "round"},
		},
		Children: children,
	}
}

// CheckIcon draws a check mark.
func CheckIcon(class string) Node {
	return iconFrame(class, "check", "M20 6 9 17l-5-5")
}

// CrossIcon draws an X.
func CrossIcon(class string) Node {
	return iconFrame(class, "cross", "M18 6 6 18", "m6 6 12 12")
}

// BookIcon draws an open book.
func BookIcon(class string) Node {
	return iconFrame(class, "book", "M2 3h6a4 4 0 0 1 4 4v14a3 3 0 0 0-3-3H2z", "M22 3h-6a4 4 0 0 0-4 4v14a3 3 0 0 1 3-3h7z")
}

// PlayIcon draws a play triangle.
func PlayIcon(class string) Node {
	return iconFrame(class, "play", "m6 3 14 9-14 9z")
}

// ArrowIcon draws a right arrow.
func ArrowIcon(class string) Node {
	return iconFrame(class, "arrow", "M5 12h14", "m12 5 7 7-7 7")
}

// ResetIcon draws a circular arrow.
func ResetIcon(class string) Node {
	return iconFrame(class, "reset", "M3 12a9 9 0 1 0 9-9 9.75 9.75 0 0 0-6.74 2.74L3 8", "M3 3v5h5")
}
