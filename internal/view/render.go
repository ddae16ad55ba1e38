package view

var svgTags = map[string]struct{}{
	"svg":      {},
	"path":     {},
	"circle":   {},
	"rect":     {},
	"ellipse":  {},
	"line":     {},
	"polyline": {},
	"polygon":  {},
	"g":        {},
	"defs":     {},
	"use":      {},
	"symbol":   {},
}

// ResolveNamespace picks the namespace for a tag created under a parent.
// Children of graphics elements stay in the graphics namespace, except under
// foreignObject which hosts regular markup again.
func ResolveNamespace(parentNS Namespace, parentTag, tag string) Namespace {
	if parentNS == NamespaceSVG && parentTag != "foreignObject" {
		return NamespaceSVG
	}
	if _, ok := svgTags[tag]; ok {
		return NamespaceSVG
	}
	return NamespaceHTML
}

// Render materializes nodes under parent, binding their actions to d.
func Render(parent Element, nodes []Node, d Dispatcher) {
	for _, node := range nodes {
		renderNode(parent, node, d)
	}
}

// Mount replaces parent's content with nodes.
func Mount(parent Element, nodes []Node, d Dispatcher) {
	parent.Empty()
	Render(parent, nodes, d)
}

func renderNode(parent Element, node Node, d Dispatcher) {
	ns := ResolveNamespace(parent.Namespace(), parent.Tag(), node.Tag)
	el := parent.CreateChild(ns, node.Tag, Props{
		Text:  node.Text,
		Class: node.Class,
		Attrs: node.Attrs,
	})
	if d != nil {
		bindEvents(el, node, d)
	}
	Render(el, node.Children, d)
}

func bindEvents(el Element, node Node, d Dispatcher) {
	if node.OnClick != nil {
		action := *node.OnClick
		el.AddEventListener(EventClick, func(Event) {
			d.Dispatch(action)
		})
	}
	if node.OnInput != nil {
		action := *node.OnInput
		el.AddEventListener(EventInput, func(event Event) {
			next := action
			next.Value = event.Value
			d.Dispatch(next)
		})
	}
}
