// Package question implements the per-kind evaluators that render one quiz
// question, track its local answer state and report correctness.
package question

import (
	"math/rand/v2"

	"quizzer/internal/quiz"
	"quizzer/internal/view"
)

// ProgressFunc receives the verdict once the user moves past a question.
type ProgressFunc func(correct bool)

// Evaluator owns one question's interaction state. Handle applies an action
// and reports whether the view changed; it calls progress at most once until
// the next Reset.
type Evaluator interface {
	Kind() quiz.Kind
	Prompt() string
	Reset()
	Submitted() bool
	View() []view.Node
	Handle(action view.Action, progress ProgressFunc) bool
}

// Factory builds an evaluator for one record of its kind.
type Factory func(record quiz.Record, rng *rand.Rand) Evaluator

var factories = map[quiz.Kind]Factory{
	quiz.KindMultipleChoice: func(record quiz.Record, rng *rand.Rand) Evaluator {
		return NewMultipleChoice(record.(quiz.MultipleChoice), rng)
	},
	quiz.KindTrueFalse: func(record quiz.Record, _ *rand.Rand) Evaluator {
		return NewTrueFalse(record.(quiz.TrueFalse))
	},
	quiz.KindShortAnswer: func(record quiz.Record, _ *rand.Rand) Evaluator {
		return NewShortAnswer(record.(quiz.ShortAnswer))
	},
}

// New builds the evaluator for record. It returns false for kinds with no
// registered factory.
func New(record quiz.Record, rng *rand.Rand) (Evaluator, bool) {
	if record == nil {
		return nil, false
	}
	factory, ok := factories[record.Kind()]
	if !ok {
		return nil, false
	}
	return factory(record, rng), true
}

// Render mounts ev into container and re-mounts it after every action that
// changes its view.
func Render(container view.Element, ev Evaluator, onProgress ProgressFunc) {
	var dispatch view.DispatcherFunc
	dispatch = func(action view.Action) {
		if ev.Handle(action, onProgress) {
			view.Mount(container, ev.View(), dispatch)
		}
	}
	view.Mount(container, ev.View(), dispatch)
}
