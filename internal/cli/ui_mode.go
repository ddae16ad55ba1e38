package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"quizzer/internal/session"
	"quizzer/internal/ui/live"
	"quizzer/internal/ui/plain"
)

// uiModeDecision captures whether to use the live UI.
type uiModeDecision struct {
	useLive bool
	warning string
}

// isTerminal reports whether a writer is a TTY.
var isTerminal = defaultIsTerminal

// sessionInput is where quiz answers are read from. Tests replace it.
var sessionInput io.Reader = os.Stdin

// resolveUIMode determines whether to enable the live UI. Verbose logging
// writes to stderr while the quiz runs, so it forces plain output.
func resolveUIMode(mode string, verbose bool, stdout io.Writer) (uiModeDecision, error) {
	if verbose {
		return uiModeDecision{useLive: false}, nil
	}
	normalized := strings.ToLower(strings.TrimSpace(mode))
	if normalized == "" {
		normalized = "auto"
	}
	switch normalized {
	case "auto":
		return uiModeDecision{useLive: isTerminal(stdout)}, nil
	case "live":
		if isTerminal(stdout) {
			return uiModeDecision{useLive: true}, nil
		}
		return uiModeDecision{
			useLive: false,
			warning: "Live UI requested but stdout is not a TTY; falling back to plain prompts.",
		}, nil
	case "plain":
		return uiModeDecision{useLive: false}, nil
	default:
		return uiModeDecision{}, fmt.Errorf("invalid ui mode %q (expected auto|live|plain)", mode)
	}
}

// defaultIsTerminal inspects stdout for TTY support.
func defaultIsTerminal(stdout io.Writer) bool {
	if stdout == nil {
		return false
	}
	if file, ok := stdout.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	if fder, ok := stdout.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(fder.Fd()))
	}
	return false
}

// play runs s in the presenter picked by the ui mode.
func play(ctx context.Context, s *session.Session, e *env, stdout, stderr io.Writer) error {
	decision, err := resolveUIMode(e.cfg.UI.Mode, e.verbose, stdout)
	if err != nil {
		return err
	}
	if decision.warning != "" {
		fmt.Fprintln(stderr, decision.warning)
	}
	e.logger.Debug("starting quiz", "session", s.ID(), "questions", s.Total(), "live", decision.useLive)
	if decision.useLive {
		return live.Run(ctx, s, sessionInput, stdout, live.Options{NoColor: e.cfg.UI.NoColor})
	}
	return plain.Run(ctx, s, sessionInput, stdout)
}
