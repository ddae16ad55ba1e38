package session

import (
	"fmt"
	"strings"

	"quizzer/internal/results"
	"quizzer/internal/view"
)

// Labels shown outside the question views.
const (
	ErrorsHeading  = "Errors in quiz data:"
	StartLabel     = "Start Quiz"
	Instructions   = "Instructions:"
	QuestionsLabel = "Questions"
)

var instructionLines = []string{
	"• Select the best answer for each question",
	"• Submit to lock in your answer and see feedback",
	"• Move on when you're ready for the next question",
}

// View renders the current state. Validation errors take precedence over
// every phase.
func (s *Session) View() []view.Node {
	if !s.Valid() {
		return s.errorView()
	}
	switch s.phase {
	case PhaseInProgress:
		return s.questionView()
	case PhaseFinished:
		return results.View(s.Summary())
	default:
		return s.startView()
	}
}

func (s *Session) errorView() []view.Node {
	lines := make([]view.Node, 0, len(s.errors)+1)
	lines = append(lines, view.TextBlock("", ErrorsHeading))
	for _, err := range s.errors {
		lines = append(lines, view.TextBlock("", "- "+err.Error()))
	}
	return []view.Node{view.Div("quiz-errors", lines...)}
}

func (s *Session) startView() []view.Node {
	header := []view.Node{
		view.Div("w-16 h-16 mx-auto mb-4 bg-purple-100 rounded-full flex items-center justify-center",
			view.BookIcon("w-8 h-8 text-purple-600"),
		),
		view.TextBlock("text-3xl mb-2 text-gray-900", s.quiz.Title),
	}
	if strings.TrimSpace(s.quiz.Description) != "" {
		header = append(header, view.Paragraph("text-gray-600", s.quiz.Description))
	}
	items := make([]view.Node, 0, len(instructionLines))
	for _, line := range instructionLines {
		items = append(items, view.ListItem(line))
	}
	return []view.Node{
		view.Div("text-center mb-8", header...),
		view.Div("grid gap-4 mb-8",
			view.Div("bg-purple-50 rounded-lg p-4 text-center",
				view.TextBlock("text-2xl text-purple-600", fmt.Sprint(len(s.evaluators))),
				view.TextBlock("text-sm text-gray-600", QuestionsLabel),
			),
		),
		view.Div("bg-gray-50 rounded-lg p-4 mb-8",
			view.TextBlock("mb-2 text-gray-900", Instructions),
			view.Node{Tag: "ul", Class: "space-y-1 text-sm text-gray-700", Children: items},
		),
		view.Button("cursor-pointer w-full bg-accent hover:bg-accent-dark text-white py-4 rounded-lg flex items-center justify-center gap-2 clickable-icon transition-colors",
			view.On(view.ActionStart),
			view.PlayIcon("w-5 h-5"),
			view.Span("", StartLabel),
		),
	}
}

// ProgressText renders "Question i of N" for the active question.
func (s *Session) ProgressText() string {
	return fmt.Sprintf("Question %d of %d", s.index+1, len(s.evaluators))
}

func (s *Session) questionView() []view.Node {
	ev, ok := s.Current()
	if !ok {
		return nil
	}
	percent := 100 * s.index / len(s.evaluators)
	bar := view.Div("h-2 bg-purple-600 rounded-full transition-all").
		WithAttr("style", fmt.Sprintf("width: %d%%", percent))
	header := view.Div("p-4 border-b border-gray-200",
		view.Div("flex justify-between mb-2 text-sm text-gray-600",
			view.Span("", s.quiz.Title),
			view.Span("quiz-progress", s.ProgressText()),
		),
		view.Div("h-2 bg-gray-200 rounded-full", bar),
	)
	return append([]view.Node{header}, ev.View()...)
}
