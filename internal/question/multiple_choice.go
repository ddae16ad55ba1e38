package question

import (
	"math/rand/v2"

	"quizzer/internal/quiz"
	"quizzer/internal/shuffle"
	"quizzer/internal/view"
)

// MultipleChoice evaluates a pick-one question over shuffled options.
type MultipleChoice struct {
	record    quiz.MultipleChoice
	rng       *rand.Rand
	options   []quiz.Choice
	answer    int
	selected  int
	submitted bool
	reported  bool
}

// NewMultipleChoice shuffles the answer in among the alternatives.
func NewMultipleChoice(record quiz.MultipleChoice, rng *rand.Rand) *MultipleChoice {
	if rng == nil {
		rng = shuffle.New(0)
	}
	mc := &MultipleChoice{record: record, rng: rng, options: record.Options()}
	mc.Reset()
	return mc
}

func (mc *MultipleChoice) Kind() quiz.Kind { return quiz.KindMultipleChoice }

func (mc *MultipleChoice) Prompt() string { return mc.record.Question }

func (mc *MultipleChoice) Submitted() bool { return mc.submitted }

// Options returns the options in display order.
func (mc *MultipleChoice) Options() []quiz.Choice {
	return append([]quiz.Choice(nil), mc.options...)
}

// Selected returns the selected option index, or -1.
func (mc *MultipleChoice) Selected() int { return mc.selected }

// Reset clears the answer state and reshuffles the same options.
func (mc *MultipleChoice) Reset() {
	shuffle.Slice(mc.rng, mc.options)
	mc.answer = -1
	for i, option := range mc.options {
		if option.Label == mc.record.Answer.Label {
			mc.answer = i
			break
		}
	}
	mc.selected = -1
	mc.submitted = false
	mc.reported = false
}

// Correct reports whether the current selection is the answer.
func (mc *MultipleChoice) Correct() bool {
	return mc.selected >= 0 && mc.options[mc.selected].Label == mc.record.Answer.Label
}

func (mc *MultipleChoice) Handle(action view.Action, progress ProgressFunc) bool {
	if mc.reported {
		return false
	}
	switch action.Kind {
	case view.ActionSelect:
		if mc.submitted || action.Option < 0 || action.Option >= len(mc.options) {
			return false
		}
		mc.selected = action.Option
		return true
	case view.ActionSubmit:
		if mc.selected < 0 {
			return false
		}
		if !mc.submitted {
			mc.submitted = true
			return true
		}
		mc.reported = true
		if progress != nil {
			progress(mc.Correct())
		}
		return false
	default:
		return false
	}
}

func (mc *MultipleChoice) View() []view.Node {
	options := make([]view.Node, 0, len(mc.options))
	for i, option := range mc.options {
		state := optionState(i, mc.selected, mc.answer, mc.submitted)
		options = append(options, optionButton(i, option.Label, state, mc.submitted))
	}
	return []view.Node{
		questionBody(mc.record.Question,
			optionList(options...),
			mc.feedback(),
		),
		navigation(mc.selected >= 0, mc.submitted),
	}
}

func (mc *MultipleChoice) feedback() view.Node {
	if !mc.submitted {
		return feedbackPanel(toneCorrect, CorrectLabel, true)
	}
	var details []view.Node
	if mc.selected >= 0 {
		details = explanation(mc.options[mc.selected].Explanation)
	}
	if mc.Correct() {
		return feedbackPanel(toneCorrect, CorrectLabel, false, details...)
	}
	return feedbackPanel(toneIncorrect, WrongLabel, false, details...)
}
