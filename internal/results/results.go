// Package results summarizes a finished quiz and renders the results screen.
package results

import (
	"fmt"
	"math"

	"quizzer/internal/view"
)

// Labels shown on the results screen.
const (
	HeadingLabel = "Quiz Complete!"
	SubheadLabel = "Here are your results"
	ResetLabel   = "Back to Start"
)

// Row is the verdict for one question in the order it was answered.
type Row struct {
	Number  int
	Correct bool
}

// Label returns the row caption, numbered from one.
func (r Row) Label() string {
	return fmt.Sprintf("Question %d", r.Number)
}

// Summary aggregates a correctness log.
type Summary struct {
	Correct int
	Total   int
	Percent int
	Rows    []Row
}

// Summarize counts correct answers and rounds the percentage half away from
// zero. An empty log yields 0%.
func Summarize(correctness []bool) Summary {
	summary := Summary{Total: len(correctness), Rows: make([]Row, 0, len(correctness))}
	for i, correct := range correctness {
		if correct {
			summary.Correct++
		}
		summary.Rows = append(summary.Rows, Row{Number: i + 1, Correct: correct})
	}
	if summary.Total > 0 {
		summary.Percent = int(math.Round(100 * float64(summary.Correct) / float64(summary.Total)))
	}
	return summary
}

// Score renders "You got X out of Y questions correct".
func (s Summary) Score() string {
	return fmt.Sprintf("You got %d out of %d questions correct", s.Correct, s.Total)
}

// View renders the results screen with a reset affordance.
func View(summary Summary) []view.Node {
	rows := make([]view.Node, 0, len(summary.Rows))
	for _, row := range summary.Rows {
		rows = append(rows, rowNode(row))
	}
	return []view.Node{
		view.Div("text-center mb-8",
			view.Div("w-24 h-24 mx-auto mb-4 bg-purple-100 rounded-full flex items-center justify-center",
				view.CheckIcon("w-12 h-12 text-purple-600"),
			),
			view.TextBlock("text-3xl mb-2 text-gray-900", HeadingLabel),
			view.Paragraph("text-gray-600", SubheadLabel),
		),
		view.Div("bg-gray-50 rounded-lg p-6 mb-8 text-center",
			view.TextBlock("text-5xl mb-2 text-purple-600", fmt.Sprintf("%d%%", summary.Percent)),
			view.Div("text-gray-700",
				view.Span("", "You got "),
				view.Span("text-purple-600", fmt.Sprint(summary.Correct)),
				view.Span("", " out of "),
				view.Span("text-purple-600", fmt.Sprint(summary.Total)),
				view.Span("", " questions correct"),
			),
		),
		view.Div("space-y-2 mb-8", rows...),
		view.Button("cursor-pointer w-full bg-accent hover:bg-accent-dark text-white hover:text-white py-4 rounded-lg flex items-center justify-center gap-2 clickable-icon transition-colors",
			view.On(view.ActionReset),
			view.ResetIcon("w-5 h-5"),
			view.Span("", ResetLabel),
		),
	}
}

func rowNode(row Row) view.Node {
	badge := view.Div("w-6 h-6 rounded-full flex items-center justify-center bg-green-100",
		view.CheckIcon("w-4 h-4 text-green-600"))
	if !row.Correct {
		badge = view.Div("w-6 h-6 rounded-full flex items-center justify-center bg-red-100",
			view.CrossIcon("w-4 h-4 text-red-600"))
	}
	return view.Div("flex items-center gap-3 p-3 bg-gray-50 rounded-lg",
		badge,
		view.Span("text-sm text-gray-700", row.Label()),
	)
}
