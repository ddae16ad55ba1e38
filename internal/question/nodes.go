package question

import (
	"strings"

	"quizzer/internal/view"
)

// StateAttr exposes an option's visual state to presenters that cannot read
// utility classes.
const StateAttr = "data-state"

// Option states.
const (
	StateIdle      = "idle"
	StateSelected  = "selected"
	StateCorrect   = "correct"
	StateIncorrect = "incorrect"
	StateMuted     = "muted"
)

// Labels shared by every evaluator.
const (
	SubmitLabel   = "Submit Answer"
	MoveOnLabel   = "Move On"
	CorrectLabel  = "Correct!"
	WrongLabel    = "Incorrect"
	OverrideLabel = "Actually I was Correct"
)

const (
	classQuestionBody = "p-8"
	classPrompt       = "text-xl mb-6 text-gray-900"
	classOptionList   = "space-y-3 mb-6"
	classOptionRow    = "flex items-center gap-3"
	classOptionText   = "text-lg text-gray-900"
	classOptionBase   = "clickable-icon w-full flex justify-start text-center p-4 rounded-lg border-2 transition-all"
	classBubbleBase   = "w-5 h-5 rounded-full border-2 flex items-center justify-center"
	classNavigation   = "p-4 border-t border-gray-200"
	classSubmit       = "clickable-icon w-full flex items-center justify-center gap-2 px-6 py-3 rounded-lg bg-purple-600 hover:bg-purple-700 text-white disabled:opacity-50 disabled:cursor-not-allowed transition-colors"
	classInput        = "clickable-icon cursor-pointer w-full border-2 border-gray-200 rounded-lg focus:border-purple-600 focus:outline-none disabled:bg-gray-50 disabled:cursor-not-allowed text-gray-900"
	classIcon         = "w-4 h-4"
)

var optionClasses = map[string][2]string{
	StateIdle:      {"border-gray-200 hover:border-gray-300 bg-white", "border-gray-300 bg-white"},
	StateSelected:  {"border-purple-600 bg-purple-50", "border-purple-600 bg-purple-600"},
	StateCorrect:   {"border-green-600 bg-green-50", "border-green-600 bg-green-600"},
	StateIncorrect: {"border-red-600 bg-red-50", "border-red-600 bg-red-600"},
	StateMuted:     {"border-gray-200 bg-white opacity-50", "border-gray-300 bg-white"},
}

func optionState(index, selected, answer int, submitted bool) string {
	switch {
	case !submitted && index == selected:
		return StateSelected
	case !submitted:
		return StateIdle
	case index == answer:
		return StateCorrect
	case index == selected:
		return StateIncorrect
	default:
		return StateMuted
	}
}

func optionButton(index int, label, state string, submitted bool) view.Node {
	classes := optionClasses[state]
	var action *view.Action
	if !submitted {
		action = view.SelectOption(index)
	}
	button := view.Button(join(classOptionBase, classes[0]), action,
		view.Div(classOptionRow,
			view.Div(join(classBubbleBase, classes[1])),
			view.Span(classOptionText, label),
		),
	)
	return button.WithAttr(StateAttr, state)
}

func questionBody(prompt string, children ...view.Node) view.Node {
	nodes := append([]view.Node{view.Paragraph(classPrompt, prompt)}, children...)
	return view.Div(classQuestionBody, nodes...)
}

func optionList(options ...view.Node) view.Node {
	return view.Div(classOptionList, options...)
}

// navigation renders the two-phase submit control.
func navigation(enabled, submitted bool) view.Node {
	label := SubmitLabel
	if submitted {
		label = MoveOnLabel
	}
	button := view.Button(classSubmit, view.On(view.ActionSubmit),
		view.ArrowIcon(classIcon),
		view.Span("", label),
	)
	return view.Div(classNavigation, button.WithAttrIf(!enabled, "disabled", "true"))
}

type feedbackTone int

const (
	toneCorrect feedbackTone = iota
	toneIncorrect
	toneReview
)

var toneClasses = map[feedbackTone][3]string{
	toneCorrect:   {"rounded-lg px-4 py-2 mb-2 bg-green-50 border-2 border-green-200", "bg-green-100", "mb-2 text-green-900"},
	toneIncorrect: {"rounded-lg px-4 py-2 mb-2 bg-red-50 border-2 border-red-200", "bg-red-100", "mb-2 text-red-900"},
	toneReview:    {"rounded-lg p-4 mb-6 bg-amber-50 border-2 border-amber-200", "bg-amber-100", "mb-2 text-amber-900"},
}

// feedbackPanel renders the verdict box. It stays in the tree while hidden so
// every phase has the same shape.
func feedbackPanel(tone feedbackTone, heading string, hidden bool, details ...view.Node) view.Node {
	classes := toneClasses[tone]
	icon := view.CheckIcon("w-4 h-4 text-green-600")
	if tone != toneCorrect {
		icon = view.CrossIcon("w-4 h-4 text-red-600")
	}
	body := append([]view.Node{view.TextBlock(classes[2], heading)}, details...)
	panel := view.Div(classes[0],
		view.Div("flex items-start gap-3",
			view.Div(join("w-6 h-6 rounded-full flex items-center justify-center flex-shrink-0", classes[1]), icon),
			view.Div("flex-1", body...),
		),
	)
	return panel.WithAttrIf(hidden, "hidden", "true")
}

func explanation(text string) []view.Node {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return []view.Node{view.TextBlock("text-sm text-gray-700", text)}
}

func join(classes ...string) string {
	return strings.Join(classes, " ")
}
