package question

import (
	"quizzer/internal/quiz"
	"quizzer/internal/view"
)

var trueFalseLabels = [2]string{"True", "False"}

// TrueFalse evaluates a statement against a boolean answer. Option 0 is True
// and option 1 is False.
type TrueFalse struct {
	record    quiz.TrueFalse
	selected  int
	submitted bool
	reported  bool
}

// NewTrueFalse builds an evaluator with nothing selected.
func NewTrueFalse(record quiz.TrueFalse) *TrueFalse {
	tf := &TrueFalse{record: record}
	tf.Reset()
	return tf
}

func (tf *TrueFalse) Kind() quiz.Kind { return quiz.KindTrueFalse }

func (tf *TrueFalse) Prompt() string { return tf.record.Question }

func (tf *TrueFalse) Submitted() bool { return tf.submitted }

func (tf *TrueFalse) Reset() {
	tf.selected = -1
	tf.submitted = false
	tf.reported = false
}

// Correct reports whether the selected value equals the answer.
func (tf *TrueFalse) Correct() bool {
	return tf.selected >= 0 && optionValue(tf.selected) == tf.record.Answer.Label
}

func optionValue(index int) bool {
	return index == 0
}

func (tf *TrueFalse) answerIndex() int {
	if tf.record.Answer.Label {
		return 0
	}
	return 1
}

func (tf *TrueFalse) Handle(action view.Action, progress ProgressFunc) bool {
	if tf.reported {
		return false
	}
	switch action.Kind {
	case view.ActionSelect:
		if tf.submitted || action.Option < 0 || action.Option > 1 {
			return false
		}
		tf.selected = action.Option
		return true
	case view.ActionSubmit:
		if tf.selected < 0 {
			return false
		}
		if !tf.submitted {
			tf.submitted = true
			return true
		}
		tf.reported = true
		if progress != nil {
			progress(tf.Correct())
		}
		return false
	default:
		return false
	}
}

func (tf *TrueFalse) View() []view.Node {
	options := make([]view.Node, 0, len(trueFalseLabels))
	for i, label := range trueFalseLabels {
		state := optionState(i, tf.selected, tf.answerIndex(), tf.submitted)
		options = append(options, optionButton(i, label, state, tf.submitted))
	}
	return []view.Node{
		questionBody(tf.record.Question,
			optionList(options...),
			tf.feedback(),
		),
		navigation(tf.selected >= 0, tf.submitted),
	}
}

func (tf *TrueFalse) feedback() view.Node {
	switch {
	case !tf.submitted:
		return feedbackPanel(toneCorrect, CorrectLabel, true)
	case tf.Correct():
		return feedbackPanel(toneCorrect, CorrectLabel, false, explanation(tf.record.Answer.Explanation)...)
	default:
		return feedbackPanel(toneIncorrect, WrongLabel, false, explanation(tf.record.IncorrectExplanation)...)
	}
}
