// Package textview renders an in-memory element tree as terminal text.
package textview

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"quizzer/internal/question"
	"quizzer/internal/view"
	"quizzer/internal/view/dom"
)

// Options controls presentation.
type Options struct {
	NoColor bool
	// Focus is highlighted with a cursor marker.
	Focus *dom.Element
	// Numbered prefixes every control with its index in Controls.
	Numbered bool
	// InputView overrides how an input element is drawn; returning false
	// falls back to the default.
	InputView func(el *dom.Element) (string, bool)
}

var iconGlyphs = map[string]string{
	"check": "✓",
	"cross": "✗",
	"book":  "▤",
	"play":  "▶",
	"arrow": "→",
	"reset": "↺",
}

var stateBubbles = map[string]string{
	question.StateIdle:      "( )",
	question.StateSelected:  "(•)",
	question.StateCorrect:   "(✓)",
	question.StateIncorrect: "(✗)",
	question.StateMuted:     "( )",
}

var stateColors = map[string]lipgloss.Color{
	question.StateSelected:  lipgloss.Color("33"),
	question.StateCorrect:   lipgloss.Color("42"),
	question.StateIncorrect: lipgloss.Color("196"),
	question.StateMuted:     lipgloss.Color("244"),
}

var classColors = []struct {
	token string
	color lipgloss.Color
}{
	{"text-green-900", lipgloss.Color("42")},
	{"text-red-900", lipgloss.Color("196")},
	{"text-amber-900", lipgloss.Color("220")},
	{"text-purple-600", lipgloss.Color("33")},
	{"text-gray-600", lipgloss.Color("244")},
}

var widthPattern = regexp.MustCompile(`width:\s*(\d+)%`)

const barCells = 24

type renderer struct {
	opts     Options
	controls map[*dom.Element]int
	lines    []string
	// pending is an icon glyph waiting for the next emitted line.
	pending string
}

// Render draws the visible part of root, one block element per line.
func Render(root *dom.Element, opts Options) string {
	r := &renderer{opts: opts, controls: map[*dom.Element]int{}}
	for i, control := range Controls(root) {
		r.controls[control.Element] = i + 1
	}
	for _, child := range root.Children() {
		r.block(child)
	}
	return strings.Join(r.lines, "\n")
}

func (r *renderer) emit(line string) {
	if strings.TrimSpace(line) == "" {
		return
	}
	if r.pending != "" {
		line = r.pending + " " + line
		r.pending = ""
	}
	r.lines = append(r.lines, line)
}

func (r *renderer) block(el *dom.Element) {
	if el.Hidden() {
		return
	}
	switch el.Tag() {
	case "button":
		r.emit(r.button(el))
		return
	case "input", "textarea":
		r.emit(r.input(el))
		return
	case "svg":
		r.emit(strings.TrimSpace(r.inline(el)))
		return
	}
	if bar, ok := progressBar(el); ok {
		r.emit(bar)
		return
	}
	if isInlineOnly(el) {
		sep := ""
		if el.HasClass("justify-between") {
			sep = "  "
		}
		r.emit(r.styleFor(el, strings.TrimSpace(r.inlineJoin(el, sep))))
		return
	}
	if el.Text() != "" {
		r.emit(r.styleFor(el, el.Text()))
	}
	for _, child := range el.Children() {
		if isIconWrapper(child) && !child.Hidden() {
			r.pending = strings.TrimSpace(r.inline(child))
			continue
		}
		r.block(child)
	}
}

func isInlineOnly(el *dom.Element) bool {
	for _, child := range el.Children() {
		switch {
		case child.Tag() == "span", child.Tag() == "svg", isIconWrapper(child):
			continue
		default:
			return false
		}
	}
	return true
}

// isIconWrapper matches a text-less div holding only graphics.
func isIconWrapper(el *dom.Element) bool {
	if el.Tag() != "div" || el.Text() != "" || len(el.Children()) == 0 {
		return false
	}
	for _, child := range el.Children() {
		if child.Tag() != "svg" {
			return false
		}
	}
	return true
}

func (r *renderer) inlineJoin(el *dom.Element, sep string) string {
	parts := make([]string, 0, len(el.Children())+1)
	if el.Text() != "" {
		parts = append(parts, el.Text())
	}
	for _, child := range el.Children() {
		if child.Hidden() {
			continue
		}
		if text := r.inline(child); text != "" {
			parts = append(parts, r.styleFor(child, text))
		}
	}
	return strings.Join(parts, sep)
}

// inline flattens an element to one line of text, substituting icon glyphs.
func (r *renderer) inline(el *dom.Element) string {
	if el.Hidden() {
		return ""
	}
	if el.Tag() == "svg" {
		name, _ := el.Attr(view.IconAttr)
		return iconGlyphs[name]
	}
	var b strings.Builder
	b.WriteString(el.Text())
	for _, child := range el.Children() {
		text := r.inline(child)
		if text == "" {
			continue
		}
		if b.Len() > 0 && child.Tag() == "svg" {
			b.WriteByte(' ')
		}
		b.WriteString(text)
		if child.Tag() == "svg" {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

func (r *renderer) button(el *dom.Element) string {
	label := strings.TrimSpace(r.inline(el))
	state, isOption := el.Attr(question.StateAttr)
	if isOption {
		label = stateBubbles[state] + " " + label
	} else {
		label = "[ " + label + " ]"
	}
	switch {
	case el.Disabled():
		label = stylize(label, r.opts.NoColor, lipgloss.Color("240"))
	case isOption && stateColors[state] != "":
		label = stylize(label, r.opts.NoColor, stateColors[state])
	}
	return r.prefix(el) + label
}

func (r *renderer) input(el *dom.Element) string {
	if r.opts.InputView != nil {
		if text, ok := r.opts.InputView(el); ok {
			return r.prefix(el) + text
		}
	}
	value := el.Value()
	if value == "" {
		placeholder, _ := el.Attr("placeholder")
		value = stylize(placeholder, r.opts.NoColor, lipgloss.Color("244"))
	}
	line := "> " + value
	if el.Disabled() {
		line = stylize(line, r.opts.NoColor, lipgloss.Color("240"))
	}
	return r.prefix(el) + line
}

func (r *renderer) prefix(el *dom.Element) string {
	var b strings.Builder
	if r.opts.Focus == el {
		b.WriteString(stylize("› ", r.opts.NoColor, lipgloss.Color("33")))
	} else {
		b.WriteString("  ")
	}
	if r.opts.Numbered {
		if n, ok := r.controls[el]; ok {
			b.WriteString(fmt.Sprintf("[%d] ", n))
		} else {
			b.WriteString("    ")
		}
	}
	return b.String()
}

func (r *renderer) styleFor(el *dom.Element, text string) string {
	if el.HasClass("text-3xl") || el.HasClass("text-xl") {
		if r.opts.NoColor {
			return text
		}
		return lipgloss.NewStyle().Bold(true).Render(text)
	}
	for _, entry := range classColors {
		if el.HasClass(entry.token) {
			return stylize(text, r.opts.NoColor, entry.color)
		}
	}
	return text
}

func progressBar(el *dom.Element) (string, bool) {
	if len(el.Children()) != 1 {
		return "", false
	}
	style, ok := el.Children()[0].Attr("style")
	if !ok {
		return "", false
	}
	match := widthPattern.FindStringSubmatch(style)
	if match == nil {
		return "", false
	}
	percent, _ := strconv.Atoi(match[1])
	filled := percent * barCells / 100
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", barCells-filled) + "]", true
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor || text == "" {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
