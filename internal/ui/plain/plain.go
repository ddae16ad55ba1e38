// Package plain drives a quiz session over line-oriented input for terminals
// without full-screen support.
package plain

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"quizzer/internal/session"
	"quizzer/internal/ui/textview"
	"quizzer/internal/view/dom"
)

const help = "Enter a number to choose, \"<number> <text>\" to answer, or q to quit."

// Run renders s after every command read from in. It returns when the user
// quits, input ends or ctx is cancelled.
func Run(ctx context.Context, s *session.Session, in io.Reader, out io.Writer) error {
	root := dom.NewRoot("div")
	s.Render(root)
	scanner := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		controls := textview.Controls(root)
		fmt.Fprintln(out, textview.Render(root, textview.Options{NoColor: true, Numbered: true}))
		fmt.Fprintln(out)
		fmt.Fprintln(out, help)
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "q" || line == "quit" {
			return nil
		}
		if err := apply(controls, line); err != nil {
			fmt.Fprintf(out, "%v\n\n", err)
			continue
		}
		fmt.Fprintln(out)
	}
}

// apply runs one command against the numbered controls.
func apply(controls []textview.Control, line string) error {
	if line == "" {
		return fmt.Errorf("no command given")
	}
	number, text, _ := strings.Cut(line, " ")
	index, err := strconv.Atoi(number)
	if err != nil || index < 1 || index > len(controls) {
		return fmt.Errorf("unknown control %q", number)
	}
	control := controls[index-1]
	switch control.Kind {
	case textview.ControlInput:
		if !control.Element.Input(text) {
			return fmt.Errorf("control %d does not accept text", index)
		}
	default:
		if text != "" {
			return fmt.Errorf("control %d does not take text", index)
		}
		control.Element.Click()
	}
	return nil
}
