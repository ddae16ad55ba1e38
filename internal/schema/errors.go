package schema

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidJSON indicates a quiz block that is not well-formed JSON.
var ErrInvalidJSON = errors.New("invalid JSON format provided")

// ValidationError is one structural problem in a quiz payload. A nil
// QuestionIndex marks a quiz-level error; otherwise Path is relative to the
// question at that index.
type ValidationError struct {
	QuestionIndex *int
	Path          string
	Message       string

	segments []string
}

// Error renders the problem on one line.
func (e ValidationError) Error() string {
	var b strings.Builder
	if e.QuestionIndex != nil {
		fmt.Fprintf(&b, "question %d: ", *e.QuestionIndex+1)
	}
	if e.Path != "" {
		b.WriteString(e.Path)
		b.WriteString(": ")
	}
	b.WriteString(e.Message)
	return b.String()
}

// Report is the outcome of validating one payload.
type Report struct {
	Errors []ValidationError
}

// Valid reports whether the payload had no errors.
func (r Report) Valid() bool {
	return len(r.Errors) == 0
}

// Err returns the report as an error, or nil when valid.
func (r Report) Err() error {
	if r.Valid() {
		return nil
	}
	return &ReportError{Report: r}
}

// ReportError wraps an invalid report so it can travel as an error.
type ReportError struct {
	Report Report
}

// Error joins every validation problem.
func (err *ReportError) Error() string {
	lines := make([]string, 0, len(err.Report.Errors))
	for _, item := range err.Report.Errors {
		lines = append(lines, item.Error())
	}
	return fmt.Sprintf("quiz validation failed: %s", strings.Join(lines, "; "))
}

func intPtr(value int) *int {
	return &value
}
