package view_test

import (
	"encoding/json"
	"testing"

	"quizzer/internal/view"
	"quizzer/internal/view/dom"
)

type recorder struct {
	actions []view.Action
}

func (r *recorder) Dispatch(action view.Action) {
	r.actions = append(r.actions, action)
}

func TestRenderBuildsTree(t *testing.T) {
	root := dom.NewRoot("div")
	view.Render(root, []view.Node{
		view.Div("card  wide", view.Paragraph("title", "Hello"), view.Span("", "world")).WithAttr("id", "main"),
	}, nil)

	if len(root.Children()) != 1 {
		t.Fatalf("expected one child, got %d", len(root.Children()))
	}
	card := root.Children()[0]
	if card.Class() != "card wide" {
		t.Fatalf("expected normalized class, got %q", card.Class())
	}
	if id, ok := card.Attr("id"); !ok || id != "main" {
		t.Fatalf("expected id attr, got %q", id)
	}
	if got := card.TextContent(); got != "Helloworld" {
		t.Fatalf("unexpected text content %q", got)
	}
}

func TestRenderResolvesGraphicsNamespace(t *testing.T) {
	root := dom.NewRoot("div")
	view.Render(root, []view.Node{
		{Tag: "a", Text: "link"},
		{Tag: "svg", Children: []view.Node{
			{Tag: "a", Children: []view.Node{{Tag: "path"}}},
			{Tag: "foreignObject", Children: []view.Node{{Tag: "div"}}},
		}},
	}, nil)

	link := root.Children()[0]
	if link.Namespace() != view.NamespaceHTML {
		t.Fatalf("expected top-level a to be html, got %s", link.Namespace())
	}
	svg := root.Children()[1]
	if svg.Namespace() != view.NamespaceSVG {
		t.Fatalf("expected svg namespace")
	}
	svgLink := svg.Children()[0]
	if svgLink.Namespace() != view.NamespaceSVG {
		t.Fatalf("expected a inside svg to be svg, got %s", svgLink.Namespace())
	}
	if svgLink.Children()[0].Namespace() != view.NamespaceSVG {
		t.Fatalf("expected nested path to be svg")
	}
	foreign := svg.Children()[1]
	if foreign.Children()[0].Namespace() != view.NamespaceHTML {
		t.Fatalf("expected foreignObject content to be html")
	}
}

func TestRenderBindsActions(t *testing.T) {
	root := dom.NewRoot("div")
	rec := &recorder{}
	view.Render(root, []view.Node{
		view.Button("", view.SelectOption(2), view.Span("", "pick")),
		{Tag: "input", OnInput: view.On(view.ActionInput)},
	}, rec)

	root.Children()[0].Click()
	root.Children()[1].Input("Paris")

	if len(rec.actions) != 2 {
		t.Fatalf("expected two actions, got %d", len(rec.actions))
	}
	if rec.actions[0].Kind != view.ActionSelect || rec.actions[0].Option != 2 {
		t.Fatalf("unexpected click action %+v", rec.actions[0])
	}
	if rec.actions[1].Kind != view.ActionInput || rec.actions[1].Value != "Paris" {
		t.Fatalf("unexpected input action %+v", rec.actions[1])
	}
}

func TestDisabledButtonSwallowsClick(t *testing.T) {
	root := dom.NewRoot("div")
	rec := &recorder{}
	view.Render(root, []view.Node{
		view.Button("", view.On(view.ActionSubmit)).WithAttr("disabled", "true"),
	}, rec)

	if root.Children()[0].Click() {
		t.Fatalf("expected disabled click to be ignored")
	}
	if len(rec.actions) != 0 {
		t.Fatalf("expected no actions, got %d", len(rec.actions))
	}
}

func TestMountReplacesContent(t *testing.T) {
	root := dom.NewRoot("div")
	rec := &recorder{}
	nodes := []view.Node{view.Button("", view.On(view.ActionStart), view.Span("", "Start"))}

	view.Mount(root, nodes, rec)
	view.Mount(root, nodes, rec)

	if len(root.Children()) != 1 {
		t.Fatalf("expected one child after remount, got %d", len(root.Children()))
	}
	if n := root.Children()[0].Listeners(view.EventClick); n != 1 {
		t.Fatalf("expected one click listener, got %d", n)
	}
	root.Children()[0].Click()
	if len(rec.actions) != 1 {
		t.Fatalf("expected a single dispatch, got %d", len(rec.actions))
	}
}

func TestNodeSerializes(t *testing.T) {
	node := view.Button("primary", view.On(view.ActionReset), view.Span("", "Back"))
	data, err := json.Marshal(node)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded view.Node
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.OnClick == nil || decoded.OnClick.Kind != view.ActionReset {
		t.Fatalf("expected reset action, got %+v", decoded.OnClick)
	}
	if len(decoded.Children) != 1 || decoded.Children[0].Text != "Back" {
		t.Fatalf("unexpected children %+v", decoded.Children)
	}
}
