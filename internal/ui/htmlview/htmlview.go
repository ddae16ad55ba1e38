// Package htmlview renders element trees as standalone HTML with templ.
package htmlview

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/a-h/templ"

	"quizzer/internal/view"
	"quizzer/internal/view/dom"
)

var voidElements = map[string]bool{
	"input": true,
	"br":    true,
	"hr":    true,
	"img":   true,
	"meta":  true,
}

var attrName = regexp.MustCompile(`^[a-zA-Z_:][a-zA-Z0-9_:.-]*$`)

// Children renders the children of el.
func Children(el *dom.Element) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, child := range el.Children() {
			if err := Element(child).Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

// Element renders el and its subtree. Text and attribute values are escaped.
// Tag names come from the tree, so this is written by hand rather than
// generated from page.templ.
func Element(el *dom.Element) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteByte('<')
		b.WriteString(el.Tag())
		if el.Class() != "" {
			writeAttr(&b, "class", el.Class())
		}
		for _, attr := range el.Attrs() {
			if !attrName.MatchString(attr.Name) {
				continue
			}
			writeAttr(&b, attr.Name, attr.Value)
		}
		b.WriteByte('>')
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if voidElements[el.Tag()] && el.Namespace() == view.NamespaceHTML {
			return nil
		}
		if _, err := io.WriteString(w, templ.EscapeString(el.Text())); err != nil {
			return err
		}
		if err := Children(el).Render(ctx, w); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, "</%s>", el.Tag())
		return err
	})
}

func writeAttr(b *strings.Builder, name, value string) {
	b.WriteByte(' ')
	b.WriteString(name)
	b.WriteString(`="`)
	b.WriteString(templ.EscapeString(value))
	b.WriteByte('"')
}

// RenderString renders a page into a string.
func RenderString(ctx context.Context, title string, sections ...*dom.Element) (string, error) {
	var builder strings.Builder
	if err := Page(title, sections).Render(ctx, &builder); err != nil {
		return "", err
	}
	return builder.String(), nil
}
