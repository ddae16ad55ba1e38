package textview

import (
	"strings"
	"testing"

	"quizzer/internal/question"
	"quizzer/internal/quiz"
	"quizzer/internal/results"
	"quizzer/internal/view"
	"quizzer/internal/view/dom"
)

func mountQuestion(t *testing.T) (*dom.Element, question.Evaluator) {
	t.Helper()
	ev := question.NewTrueFalse(quiz.TrueFalse{Question: "Water is wet", Answer: quiz.BoolAnswer{Label: true, Explanation: "Mostly"}})
	root := dom.NewRoot("div")
	question.Render(root, ev, nil)
	return root, ev
}

// TestRenderHidesHiddenElements verifies hidden feedback stays off screen.
func TestRenderHidesHiddenElements(t *testing.T) {
	root, _ := mountQuestion(t)
	out := Render(root, Options{NoColor: true})
	if strings.Contains(out, question.CorrectLabel) {
		t.Fatalf("expected hidden feedback to be omitted:\n%s", out)
	}
	for _, want := range []string{"Water is wet", "( ) True", "( ) False", "[ → Submit Answer ]"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
}

// TestRenderShowsStateAfterSubmit verifies option markers and feedback glyphs.
func TestRenderShowsStateAfterSubmit(t *testing.T) {
	root, _ := mountQuestion(t)
	root.ButtonWithText("True").Click()
	if out := Render(root, Options{NoColor: true}); !strings.Contains(out, "(•) True") {
		t.Fatalf("expected selected marker:\n%s", out)
	}
	root.ButtonWithText(question.SubmitLabel).Click()
	out := Render(root, Options{NoColor: true})
	for _, want := range []string{"(✓) True", "✓ Correct!", "Mostly", "[ → Move On ]"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
}

// TestControlsSkipDisabledAndHidden verifies only actionable elements are listed.
func TestControlsSkipDisabledAndHidden(t *testing.T) {
	root, _ := mountQuestion(t)
	controls := Controls(root)
	if len(controls) != 2 {
		t.Fatalf("expected two option controls before selection, got %d", len(controls))
	}
	root.ButtonWithText("False").Click()
	controls = Controls(root)
	if len(controls) != 3 || !strings.Contains(controls[2].Element.TextContent(), question.SubmitLabel) {
		t.Fatalf("expected submit control after selection, got %d", len(controls))
	}
}

// TestRenderNumberedAndFocus verifies control numbering and the focus cursor.
func TestRenderNumberedAndFocus(t *testing.T) {
	root, _ := mountQuestion(t)
	controls := Controls(root)
	out := Render(root, Options{NoColor: true, Numbered: true, Focus: controls[1].Element})
	if !strings.Contains(out, "  [1] ( ) True") || !strings.Contains(out, "› [2] ( ) False") {
		t.Fatalf("unexpected numbering:\n%s", out)
	}
}

// TestRenderInputAndResults verifies inputs, placeholders and results rows.
func TestRenderInputAndResults(t *testing.T) {
	ev := question.NewShortAnswer(quiz.ShortAnswer{Question: "Name?", Answer: "Ada", CaseSensitive: true})
	root := dom.NewRoot("div")
	question.Render(root, ev, nil)
	if out := Render(root, Options{NoColor: true}); !strings.Contains(out, "> "+question.InputPlaceholder) {
		t.Fatalf("expected placeholder:\n%s", out)
	}
	out := Render(root, Options{NoColor: true, InputView: func(*dom.Element) (string, bool) { return "custom", true }})
	if !strings.Contains(out, "custom") {
		t.Fatalf("expected input override:\n%s", out)
	}

	results := dom.NewRoot("div")
	view.Mount(results, resultsView(), nil)
	out = Render(results, Options{NoColor: true})
	for _, want := range []string{"Quiz Complete!", "50%", "You got 1 out of 2 questions correct", "✓ Question 1", "✗ Question 2"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
}

// TestRenderProgressBar verifies the progress header bar.
func TestRenderProgressBar(t *testing.T) {
	root := dom.NewRoot("div")
	bar := view.Div("h-2").WithAttr("style", "width: 50%")
	view.Mount(root, []view.Node{view.Div("h-2 bg-gray-200", bar)}, nil)
	out := Render(root, Options{NoColor: true})
	if out != "["+strings.Repeat("#", 12)+strings.Repeat("-", 12)+"]" {
		t.Fatalf("unexpected bar %q", out)
	}
}

func resultsView() []view.Node {
	return results.View(results.Summarize([]bool{true, false}))
}
