package cli

import (
	"context"
	"flag"
	"fmt"
	"io"

	"quizzer/internal/daily"
	"quizzer/internal/session"
	"quizzer/internal/vault"
)

// runDaily builds the handler for the daily command.
func runDaily(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		var rf runtimeFlags
		rf.register(flags)
		rootFlag := flags.String("root", "", "Notes directory to scan (default from config)")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if flags.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", joinArgs(flags.Args()))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		e, err := rf.load(stderr)
		if err != nil {
			fmt.Fprintf(stderr, "Daily failed: %v\n", err)
			return ExitError
		}
		root := *rootFlag
		if root == "" {
			root = e.resolve(e.cfg.Daily.Root)
		}

		result, err := daily.Collect(context.Background(), vault.New(root, e.cfg.Daily.Flag), daily.Options{
			Language:    e.cfg.Quiz.BlockLanguage,
			Title:       e.cfg.Daily.Title,
			Description: e.cfg.Daily.Description,
			Concurrency: e.cfg.Daily.Concurrency,
			Logger:      e.logger,
		})
		if err != nil {
			fmt.Fprintf(stderr, "Daily failed: %v\n", err)
			return ExitError
		}
		for _, skipped := range result.Skipped {
			fmt.Fprintf(stderr, "Skipped %s\n", skipped)
		}
		if len(result.Quiz.Data) == 0 {
			fmt.Fprintf(stderr, "No daily quiz questions found under %s (%d of %d documents flagged)\n",
				root, result.Flagged, result.Documents)
			return ExitError
		}
		return runSession(session.FromQuiz(result.Quiz, e.sessionOptions()), e, stdout, stderr)
	}
}
