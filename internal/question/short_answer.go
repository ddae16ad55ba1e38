package question

import (
	"strings"

	"quizzer/internal/quiz"
	"quizzer/internal/view"
)

// InputPlaceholder is shown in an empty answer field.
const InputPlaceholder = "Type your answer here..."

// ReviewLabel heads the feedback for a rejected short answer.
const ReviewLabel = "Your answer was marked incorrect"

// ShortAnswer evaluates free text against the answer and its variations.
type ShortAnswer struct {
	record    quiz.ShortAnswer
	input     string
	submitted bool
	correct   bool
	reported  bool
}

// NewShortAnswer builds an evaluator with empty input.
func NewShortAnswer(record quiz.ShortAnswer) *ShortAnswer {
	return &ShortAnswer{record: record}
}

func (sa *ShortAnswer) Kind() quiz.Kind { return quiz.KindShortAnswer }

func (sa *ShortAnswer) Prompt() string { return sa.record.Question }

func (sa *ShortAnswer) Submitted() bool { return sa.submitted }

// Input returns the current answer text.
func (sa *ShortAnswer) Input() string { return sa.input }

func (sa *ShortAnswer) Reset() {
	sa.input = ""
	sa.submitted = false
	sa.correct = false
	sa.reported = false
}

// Matches reports whether text is an accepted answer. Blank text never is.
func (sa *ShortAnswer) Matches(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	if sa.equal(text, sa.record.Answer) {
		return true
	}
	for _, variation := range sa.record.AcceptableVariations {
		if sa.equal(text, variation) {
			return true
		}
	}
	return false
}

func (sa *ShortAnswer) equal(text, accepted string) bool {
	accepted = strings.TrimSpace(accepted)
	if sa.record.CaseSensitive {
		return text == accepted
	}
	return strings.EqualFold(text, accepted)
}

func (sa *ShortAnswer) ready() bool {
	return strings.TrimSpace(sa.input) != ""
}

func (sa *ShortAnswer) Handle(action view.Action, progress ProgressFunc) bool {
	if sa.reported {
		return false
	}
	switch action.Kind {
	case view.ActionInput:
		if sa.submitted || action.Value == sa.input {
			return false
		}
		sa.input = action.Value
		return true
	case view.ActionSubmit:
		if !sa.ready() {
			return false
		}
		if !sa.submitted {
			sa.submitted = true
			sa.correct = sa.Matches(sa.input)
			return true
		}
		sa.report(progress, sa.correct)
		return false
	case view.ActionOverride:
		if !sa.submitted || sa.correct {
			return false
		}
		sa.report(progress, true)
		return false
	default:
		return false
	}
}

func (sa *ShortAnswer) report(progress ProgressFunc, correct bool) {
	sa.reported = true
	if progress != nil {
		progress(correct)
	}
}

func (sa *ShortAnswer) View() []view.Node {
	input := view.Node{
		Tag:   "input",
		Class: classInput,
		Attrs: []view.Attr{
			{Name: "type", Value: "text"},
			{Name: "value", Value: sa.input},
			{Name: "placeholder", Value: InputPlaceholder},
		},
		OnInput: view.On(view.ActionInput),
	}
	return []view.Node{
		questionBody(sa.record.Question,
			view.Div("mb-6", input.WithAttrIf(sa.submitted, "disabled", "true")),
			sa.feedback(),
		),
		navigation(sa.ready(), sa.submitted),
	}
}

func (sa *ShortAnswer) feedback() view.Node {
	if !sa.submitted {
		return feedbackPanel(toneReview, ReviewLabel, true)
	}
	if sa.correct {
		return feedbackPanel(toneCorrect, CorrectLabel, false)
	}
	override := view.Button("flex items-center gap-2 px-4 py-2 bg-amber-600 hover:bg-amber-700 text-white text-sm rounded-lg transition-colors",
		view.On(view.ActionOverride),
		view.ResetIcon(classIcon),
		view.Span("", OverrideLabel),
	)
	return feedbackPanel(toneReview, ReviewLabel, false,
		view.Div("text-sm text-gray-700 mb-3",
			answerLine("mb-1", "Your answer:", strings.TrimSpace(sa.input)),
			answerLine("", "Correct answer:", sa.record.Answer),
		),
		override,
	)
}

func answerLine(class, label, value string) view.Node {
	return view.Div(class,
		view.Span("text-gray-600", label),
		view.Span("font-medium", " "+value),
	)
}
