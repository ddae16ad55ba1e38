package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"quizzer/internal/session"
	"quizzer/internal/ui/textview"
	"quizzer/internal/view/dom"
)

// runTake builds the handler for the take command.
func runTake(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		var rf runtimeFlags
		rf.register(flags)
		block := flags.Int("block", 1, "Quiz block to take from a markdown document (1-based)")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if flags.NArg() != 1 {
			fmt.Fprintf(stderr, "expected one quiz file, got %d\n", flags.NArg())
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		e, err := rf.load(stderr)
		if err != nil {
			fmt.Fprintf(stderr, "Take failed: %v\n", err)
			return ExitError
		}
		s, err := loadSession(flags.Arg(0), *block, e)
		if err != nil {
			fmt.Fprintf(stderr, "Take failed: %v\n", err)
			return ExitError
		}
		return runSession(s, e, stdout, stderr)
	}
}

// runSession plays s, or prints its errors when the payload was rejected.
func runSession(s *session.Session, e *env, stdout, stderr io.Writer) int {
	if !s.Valid() {
		root := dom.NewRoot("div")
		s.Render(root)
		fmt.Fprintln(stderr, textview.Render(root, textview.Options{NoColor: e.cfg.UI.NoColor}))
		return ExitError
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := play(ctx, s, e, stdout, stderr); err != nil {
		fmt.Fprintf(stderr, "Quiz failed: %v\n", err)
		return ExitError
	}
	if s.Phase() == session.PhaseFinished {
		summary := s.Summary()
		e.logger.Info("quiz finished", "session", s.ID(), "correct", summary.Correct, "total", summary.Total)
	}
	return ExitOK
}

// joinArgs renders leftover arguments for error messages.
func joinArgs(args []string) string {
	return strings.Join(args, " ")
}
