package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"quizzer/internal/question"
	"quizzer/internal/session"
	"quizzer/internal/ui/htmlview"
	"quizzer/internal/ui/textview"
	"quizzer/internal/view/dom"
)

// runExport builds the handler for the export command.
func runExport(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		var rf runtimeFlags
		rf.register(flags)
		outPath := flags.String("out", "", "Write HTML to a file instead of stdout")
		block := flags.Int("block", 1, "Quiz block to export from a markdown document (1-based)")
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
			fmt.Fprintf(stderr, "Export failed: %v\n", err)
			return ExitError
		}
		s, err := loadSession(flags.Arg(0), *block, e)
		if err != nil {
			fmt.Fprintf(stderr, "Export failed: %v\n", err)
			return ExitError
		}
		if !s.Valid() {
			root := dom.NewRoot("div")
			s.Render(root)
			fmt.Fprintln(stderr, textview.Render(root, textview.Options{NoColor: e.cfg.UI.NoColor}))
			return ExitError
		}

		html, err := htmlview.RenderString(context.Background(), s.Quiz().Title, exportSections(s, e)...)
		if err != nil {
			fmt.Fprintf(stderr, "Export failed: %v\n", err)
			return ExitError
		}
		if *outPath == "" {
			fmt.Fprint(stdout, html)
			return ExitOK
		}
		if err := os.WriteFile(*outPath, []byte(html), 0o644); err != nil {
			fmt.Fprintf(stderr, "Export failed: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Wrote %s\n", *outPath)
		return ExitOK
	}
}

// exportSections renders the start menu followed by every question in its
// unanswered state.
func exportSections(s *session.Session, e *env) []*dom.Element {
	start := dom.NewRoot("div")
	s.Render(start)
	sections := []*dom.Element{start}
	for _, record := range s.Quiz().Data {
		ev, ok := question.New(record, e.rng)
		if !ok {
			continue
		}
		root := dom.NewRoot("div")
		question.Render(root, ev, nil)
		sections = append(sections, root)
	}
	return sections
}
