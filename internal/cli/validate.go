package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"quizzer/internal/markdown"
	"quizzer/internal/quiz"
	"quizzer/internal/schema"
)

// runValidate builds the handler for the validate command. Without files it
// checks the config itself.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to config file (default: search for .quizzer/config.yml)")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		if flags.NArg() == 0 {
			return validateConfig(*configPath, stdout, stderr)
		}

		cfg, _, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Config invalid:\n%v\n", err)
			return ExitError
		}
		failed := false
		for _, path := range flags.Args() {
			var ok bool
			if isMarkdown(path) {
				ok = validateDocument(path, cfg.Quiz.BlockLanguage, stdout)
			} else {
				ok = validatePayloadFile(path, stdout)
			}
			failed = failed || !ok
		}
		if failed {
			return ExitError
		}
		return ExitOK
	}
}

func validateConfig(configPath string, stdout, stderr io.Writer) int {
	path, err := resolveConfigPath(configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Config path error: %v\n", err)
		return ExitError
	}
	if _, _, err := loadConfig(path); err != nil {
		fmt.Fprintf(stderr, "Config invalid:\n%v\n", err)
		return ExitError
	}
	fmt.Fprintf(stdout, "Config OK: %s\n", path)
	return ExitOK
}

func validatePayloadFile(path string, out io.Writer) bool {
	raw, err := quiz.ReadPayload(path)
	if err != nil {
		fmt.Fprintf(out, "%s: %v\n", path, err)
		return false
	}
	return printReport(out, path, raw, schema.Validate(raw))
}

func validateDocument(path, language string, out io.Writer) bool {
	text, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(out, "%s: %v\n", path, err)
		return false
	}
	blocks := markdown.BlocksWithLanguage(text, language)
	if len(blocks) == 0 {
		fmt.Fprintf(out, "%s: no %q blocks found\n", path, language)
		return false
	}
	ok := true
	for _, block := range blocks {
		label := fmt.Sprintf("%s:%d", path, block.Line)
		raw, report, err := schema.ValidateJSON([]byte(block.Content))
		if err != nil {
			fmt.Fprintf(out, "%s: %v\n", label, err)
			ok = false
			continue
		}
		ok = printReport(out, label, raw, report) && ok
	}
	return ok
}

// printReport writes one summary line for label plus a line per error.
func printReport(out io.Writer, label string, raw any, report schema.Report) bool {
	if !report.Valid() {
		fmt.Fprintf(out, "%s: %d error(s)\n", label, len(report.Errors))
		for _, err := range report.Errors {
			fmt.Fprintf(out, "  - %s\n", err.Error())
		}
		return false
	}
	decoded, err := quiz.DecodeValue(raw)
	if err != nil {
		fmt.Fprintf(out, "%s: %v\n", label, err)
		return false
	}
	fmt.Fprintf(out, "%s: ok (%d questions)\n", label, len(decoded.Data))
	return true
}
