package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"quizzer/internal/config"
)

const capitalsQuiz = `{"title":"Capitals","data":[{"type":"sa","question":"Capital of Italy?","answer":"Rome","caseSensitive":false}]}`

// writeTestConfig scaffolds a default config under dir and returns its path.
func writeTestConfig(t *testing.T, dir string) string {
	t.Helper()
	path := config.ConfigPath(dir)
	cfg := config.Default()
	cfg.Quiz.Seed = 1
	if err := config.Scaffold(path, cfg); err != nil {
		t.Fatalf("scaffold config: %v", err)
	}
	return path
}

func writeFile(t *testing.T, path, contents string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// withSessionInput feeds scripted answers to quiz commands.
func withSessionInput(t *testing.T, lines ...string) {
	t.Helper()
	original := sessionInput
	sessionInput = strings.NewReader(strings.Join(lines, "\n") + "\n")
	t.Cleanup(func() { sessionInput = original })
}

func TestRootHelp(t *testing.T) {
	var out, err bytes.Buffer
	code := Run([]string{"--help"}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d", ExitOK, code)
	}
	if err.Len() != 0 {
		t.Fatalf("expected no stderr output, got %q", err.String())
	}
	output := out.String()
	if !strings.Contains(output, "Usage:") {
		t.Fatalf("expected usage header, got %q", output)
	}
	for _, cmd := range commands {
		if !strings.Contains(output, cmd.Name) {
			t.Fatalf("expected command %q in output", cmd.Name)
		}
	}
}

func TestNoArgsShowsUsage(t *testing.T) {
	var out, err bytes.Buffer
	code := Run(nil, &out, &err)
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
	if !strings.Contains(out.String(), "Usage:") {
		t.Fatalf("expected usage output, got %q", out.String())
	}
}

func TestUnknownCommand(t *testing.T) {
	var out, err bytes.Buffer
	code := Run([]string{"nope"}, &out, &err)
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no stdout output, got %q", out.String())
	}
	if !strings.Contains(err.String(), "Unknown command") {
		t.Fatalf("expected unknown command error, got %q", err.String())
	}
}

func TestCommandHelp(t *testing.T) {
	for _, cmd := range commands {
		var out, err bytes.Buffer
		code := Run([]string{cmd.Name, "--help"}, &out, &err)
		if code != ExitOK {
			t.Fatalf("%s: expected exit %d, got %d", cmd.Name, ExitOK, code)
		}
		for _, line := range cmd.Usage {
			if !strings.Contains(out.String(), line) {
				t.Fatalf("%s: expected usage line %q", cmd.Name, line)
			}
		}
	}
}

func TestTakePlainQuiz(t *testing.T) {
	dir := t.TempDir()
	configPath := writeTestConfig(t, dir)
	quizPath := writeFile(t, filepath.Join(dir, "capitals.json"), capitalsQuiz)
	withSessionInput(t, "1", "1 rome", "2", "1", "q")

	var out, err bytes.Buffer
	code := Run([]string{"take", "--config", configPath, "--ui", "plain", quizPath}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d: %s", ExitOK, code, err.String())
	}
	for _, want := range []string{"Start Quiz", "Correct!", "Quiz Complete!", "100%"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("expected %q in output:\n%s", want, out.String())
		}
	}
}

func TestTakeMarkdownBlock(t *testing.T) {
	dir := t.TempDir()
	configPath := writeTestConfig(t, dir)
	doc := "# Notes\n\n```quizz\n{not json}\n```\n\n```quizz\n" + capitalsQuiz + "\n```\n"
	docPath := writeFile(t, filepath.Join(dir, "notes.md"), doc)
	withSessionInput(t, "q")

	var out, err bytes.Buffer
	if code := Run([]string{"take", "--config", configPath, "--ui", "plain", "--block", "2", docPath}, &out, &err); code != ExitOK {
		t.Fatalf("expected exit %d, got %d: %s", ExitOK, code, err.String())
	}
	if !strings.Contains(out.String(), "Capitals") {
		t.Fatalf("expected quiz title, got %s", out.String())
	}

	out.Reset()
	err.Reset()
	if code := Run([]string{"take", "--config", configPath, "--ui", "plain", docPath}, &out, &err); code != ExitError {
		t.Fatalf("expected exit %d for invalid block, got %d", ExitError, code)
	}
	if !strings.Contains(err.String(), "Invalid JSON format provided") {
		t.Fatalf("expected invalid json message, got %q", err.String())
	}
}

func TestTakeInvalidQuizPrintsErrors(t *testing.T) {
	dir := t.TempDir()
	configPath := writeTestConfig(t, dir)
	quizPath := writeFile(t, filepath.Join(dir, "bad.json"), `{"title":"Bad","data":[{"type":"sa","question":"Q?"}]}`)

	var out, err bytes.Buffer
	code := Run([]string{"take", "--config", configPath, quizPath}, &out, &err)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(err.String(), "Errors in quiz data:") || !strings.Contains(err.String(), "question 1: answer: is required") {
		t.Fatalf("expected validation errors, got %q", err.String())
	}
}

func TestTakeRequiresOneFile(t *testing.T) {
	var out, err bytes.Buffer
	if code := Run([]string{"take"}, &out, &err); code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
}

func TestDailyMergesFlaggedNotes(t *testing.T) {
	dir := t.TempDir()
	configPath := writeTestConfig(t, dir)
	writeFile(t, filepath.Join(dir, "flagged.md"), "---\ndaily-quiz: true\n---\n```quizz\n"+capitalsQuiz+"\n```\n")
	writeFile(t, filepath.Join(dir, "other.md"), "```quizz\n"+capitalsQuiz+"\n```\n")
	withSessionInput(t, "1", "q")

	var out, err bytes.Buffer
	code := Run([]string{"daily", "--config", configPath, "--ui", "plain"}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d: %s", ExitOK, code, err.String())
	}
	if !strings.Contains(out.String(), "Daily Quiz") || !strings.Contains(out.String(), "Question 1 of 1") {
		t.Fatalf("expected one merged question, got:\n%s", out.String())
	}
}

func TestDailyWithoutQuestions(t *testing.T) {
	dir := t.TempDir()
	configPath := writeTestConfig(t, dir)
	writeFile(t, filepath.Join(dir, "plain.md"), "# nothing here\n")

	var out, err bytes.Buffer
	if code := Run([]string{"daily", "--config", configPath}, &out, &err); code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(err.String(), "No daily quiz questions found") {
		t.Fatalf("expected empty collection message, got %q", err.String())
	}
}

func TestValidateFiles(t *testing.T) {
	dir := t.TempDir()
	configPath := writeTestConfig(t, dir)
	good := writeFile(t, filepath.Join(dir, "good.yaml"), "title: Capitals\ndata:\n  - type: sa\n    question: Capital of Italy?\n    answer: Rome\n")
	bad := writeFile(t, filepath.Join(dir, "bad.md"), "```quizz\n{\"title\":\"\",\"data\":[]}\n```\n")

	var out, err bytes.Buffer
	code := Run([]string{"validate", "--config", configPath, good, bad}, &out, &err)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	output := out.String()
	if !strings.Contains(output, good+": ok (1 questions)") {
		t.Fatalf("expected ok line, got %s", output)
	}
	if !strings.Contains(output, bad+":1: 2 error(s)") || !strings.Contains(output, "  - title: must not be blank") {
		t.Fatalf("expected error report, got %s", output)
	}
}

func TestValidateConfig(t *testing.T) {
	dir := t.TempDir()
	configPath := writeTestConfig(t, dir)

	var out, err bytes.Buffer
	if code := Run([]string{"validate", "--config", configPath}, &out, &err); code != ExitOK {
		t.Fatalf("expected exit %d, got %d: %s", ExitOK, code, err.String())
	}
	if !strings.Contains(out.String(), "Config OK") {
		t.Fatalf("expected ok output, got %q", out.String())
	}

	writeFile(t, configPath, "version: 3\n")
	out.Reset()
	err.Reset()
	if code := Run([]string{"validate", "--config", configPath}, &out, &err); code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(err.String(), "unsupported version 3") {
		t.Fatalf("expected version issue, got %q", err.String())
	}
}

func TestExportWritesHTML(t *testing.T) {
	dir := t.TempDir()
	configPath := writeTestConfig(t, dir)
	quizPath := writeFile(t, filepath.Join(dir, "quiz.json"),
		`{"title":"Q & A","data":[{"type":"tf","question":"Is 1 < 2?","answer":{"label":true,"explanation":"yes"},"incorrectExplanation":"no"},`+
			`{"type":"sa","question":"Capital of Italy?","answer":"Rome"}]}`)
	outPath := filepath.Join(dir, "quiz.html")

	var out, err bytes.Buffer
	if code := Run([]string{"export", "--config", configPath, "--out", outPath, quizPath}, &out, &err); code != ExitOK {
		t.Fatalf("expected exit %d, got %d: %s", ExitOK, code, err.String())
	}
	data, readErr := os.ReadFile(outPath)
	if readErr != nil {
		t.Fatalf("read export: %v", readErr)
	}
	html := string(data)
	for _, want := range []string{"<title>Q &amp; A</title>", "Is 1 &lt; 2?", "Capital of Italy?", "Start Quiz"} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %q in export", want)
		}
	}
	if got := strings.Count(html, `<section class="quiz-section">`); got != 3 {
		t.Fatalf("expected 3 sections, got %d", got)
	}
}

func TestInitCommandCreatesConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".quizzer", "config.yml")
	original := initInput
	initInput = strings.NewReader("y\nnotes\n\n")
	t.Cleanup(func() { initInput = original })

	var out, err bytes.Buffer
	if code := Run([]string{"init", "--config", path}, &out, &err); code != ExitOK {
		t.Fatalf("expected exit %d, got %d: %s", ExitOK, code, err.String())
	}
	if !strings.Contains(out.String(), "Wrote") {
		t.Fatalf("expected write confirmation, got %q", out.String())
	}
	cfg, loadErr := config.Load(path)
	if loadErr != nil {
		t.Fatalf("load written config: %v", loadErr)
	}
	if cfg.Daily.Root != "notes" || cfg.Quiz.BlockLanguage != "quizz" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestInitCommandRefusesOverwrite(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), "config.yml"), "version: 1\n")
	original := initInput
	initInput = io.Reader(strings.NewReader(""))
	t.Cleanup(func() { initInput = original })

	var out, err bytes.Buffer
	if code := Run([]string{"init", "--config", path}, &out, &err); code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no stdout output, got %q", out.String())
	}
	if !strings.Contains(err.String(), "already exists") {
		t.Fatalf("expected overwrite warning, got %q", err.String())
	}
}

func TestInitCommandCancelled(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".quizzer", "config.yml")
	original := initInput
	initInput = strings.NewReader("n\n")
	t.Cleanup(func() { initInput = original })

	var out, err bytes.Buffer
	if code := Run([]string{"init", "--config", path}, &out, &err); code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Fatalf("expected no config file, got %v", statErr)
	}
}
