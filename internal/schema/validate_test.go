package schema

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"testing"
)

func mustParse(t *testing.T, text string) any {
	t.Helper()
	var raw any
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return raw
}

const validQuiz = `{
  "title": "Capitals",
  "description": "European capitals",
  "data": [
    {"type": "mc", "question": "Capital of France?", "answer": {"label": "Paris"},
     "alternatives": [{"label": "Lyon"}, {"label": "Nice", "explanation": "Riviera"}]},
    {"type": "true-false", "question": "Berlin is in Germany", "answer": {"label": true}},
    {"type": "sa", "question": "Capital of Spain?", "answer": "Madrid",
     "acceptableVariations": ["madrid"], "caseSensitive": false}
  ]
}`

func TestValidateAcceptsWellFormedQuiz(t *testing.T) {
	report := Validate(mustParse(t, validQuiz))
	if !report.Valid() {
		t.Fatalf("expected valid quiz, got %v", report.Errors)
	}
	if report.Err() != nil {
		t.Fatalf("expected nil error for valid report")
	}
}

func TestValidateMissingTitleIsQuizLevel(t *testing.T) {
	report := Validate(mustParse(t, `{"data":[{"type":"sa","question":"q","answer":"a"}]}`))
	if len(report.Errors) != 1 {
		t.Fatalf("expected one error, got %v", report.Errors)
	}
	got := report.Errors[0]
	if got.QuestionIndex != nil {
		t.Fatalf("expected quiz-level error, got question %d", *got.QuestionIndex)
	}
	if got.Path != "title" || got.Message != "is required" {
		t.Fatalf("unexpected error %+v", got)
	}
}

func TestValidateBlankTitleAndEmptyData(t *testing.T) {
	report := Validate(mustParse(t, `{"title":"","data":[]}`))
	if len(report.Errors) < 2 {
		t.Fatalf("expected at least two errors, got %v", report.Errors)
	}
	if report.Errors[0].Path != "title" || report.Errors[0].Message != "must not be blank" {
		t.Fatalf("expected title error first, got %+v", report.Errors[0])
	}
	if report.Errors[1].Path != "data" || report.Errors[1].Message != "must not be empty" {
		t.Fatalf("expected data error second, got %+v", report.Errors[1])
	}
}

func TestValidateMissingQuestionReportsIndex(t *testing.T) {
	report := Validate(mustParse(t, `{
	  "title": "t",
	  "data": [
	    {"type":"sa","question":"q","answer":"a"},
	    {"type":"tf","question":"q","answer":{"label":false}},
	    {"type":"mc","answer":{"label":"x"},"alternatives":[{"label":"y"}]}
	  ]
	}`))
	if len(report.Errors) != 1 {
		t.Fatalf("expected one error, got %v", report.Errors)
	}
	got := report.Errors[0]
	if got.QuestionIndex == nil || *got.QuestionIndex != 2 {
		t.Fatalf("expected question index 2, got %+v", got)
	}
	if got.Path != "question" {
		t.Fatalf("expected path question, got %q", got.Path)
	}
	if !strings.HasPrefix(got.Error(), "question 3: ") {
		t.Fatalf("expected one-based prefix, got %q", got.Error())
	}
}

func TestValidateUnknownTypeIsQuestionError(t *testing.T) {
	report := Validate(mustParse(t, `{"title":"t","data":[{"type":"essay","question":"q"}]}`))
	if report.Valid() {
		t.Fatalf("expected unknown type to be rejected")
	}
	for _, item := range report.Errors {
		if item.QuestionIndex == nil || *item.QuestionIndex != 0 {
			t.Fatalf("expected error on question 0, got %+v", item)
		}
	}
	if report.Errors[0].Path != "type" {
		t.Fatalf("expected type path, got %q", report.Errors[0].Path)
	}
}

func TestValidateSkipsKindPassForBrokenQuestions(t *testing.T) {
	report := Validate(mustParse(t, `{"title":"t","data":[{"question":"q"}]}`))
	if len(report.Errors) != 1 {
		t.Fatalf("expected only the missing type error, got %v", report.Errors)
	}
	if report.Errors[0].Path != "type" || report.Errors[0].Message != "is required" {
		t.Fatalf("unexpected error %+v", report.Errors[0])
	}
}

func TestValidateOrdersErrors(t *testing.T) {
	report := Validate(mustParse(t, `{
	  "data": [
	    {"type":"mc","question":" ","answer":{"label":""},"alternatives":[{"label":"b"},{}]},
	    {"type":"tf","question":"q","answer":{"label":"yes"}}
	  ]
	}`))
	var got []string
	for _, item := range report.Errors {
		index := -1
		if item.QuestionIndex != nil {
			index = *item.QuestionIndex
		}
		got = append(got, strconv.Itoa(index)+":"+item.Path)
	}
	want := []string{
		"-1:title",
		"0:question",
		"0:answer.label",
		"0:alternatives[1].label",
		"1:answer.label",
	}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("unexpected order\n got: %v\nwant: %v", got, want)
	}
}

func TestValidateRejectsAlternativeMatchingAnswer(t *testing.T) {
	report := Validate(mustParse(t, `{"title":"t","data":[
	  {"type":"mc","question":"q","answer":{"label":"A"},"alternatives":[{"label":"B"},{"label":"A"}]}
	]}`))
	if len(report.Errors) != 1 {
		t.Fatalf("expected one error, got %v", report.Errors)
	}
	if report.Errors[0].Path != "alternatives[1].label" {
		t.Fatalf("unexpected path %q", report.Errors[0].Path)
	}
}

func TestValidateRejectsRepeatedAlternatives(t *testing.T) {
	report := Validate(mustParse(t, `{"title":"t","data":[
	  {"type":"mc","question":"q","answer":{"label":"A"},"alternatives":[{"label":"B"},{"label":"C"},{"label":"B"}]}
	]}`))
	if len(report.Errors) != 1 {
		t.Fatalf("expected one error, got %v", report.Errors)
	}
	got := report.Errors[0]
	if got.Path != "alternatives[2].label" || !strings.Contains(got.Message, "alternatives[0].label") {
		t.Fatalf("unexpected error %v", got)
	}
}

func TestValidateNonObjectPayload(t *testing.T) {
	report := Validate(mustParse(t, `[1,2]`))
	if report.Valid() {
		t.Fatalf("expected array payload to be rejected")
	}
	if report.Errors[0].QuestionIndex != nil {
		t.Fatalf("expected quiz-level error")
	}
}

func TestValidateJSONRejectsMalformedInput(t *testing.T) {
	_, _, err := ValidateJSON([]byte(`{"title":`))
	if !errors.Is(err, ErrInvalidJSON) {
		t.Fatalf("expected ErrInvalidJSON, got %v", err)
	}
	raw, report, err := ValidateJSON([]byte(validQuiz))
	if err != nil || !report.Valid() || raw == nil {
		t.Fatalf("expected valid parse, got raw=%v report=%v err=%v", raw, report.Errors, err)
	}
}

func TestFormatPath(t *testing.T) {
	cases := map[string][]string{
		"":                        nil,
		"title":                   {"title"},
		"alternatives[0].label":   {"alternatives", "0", "label"},
		"acceptableVariations[2]": {"acceptableVariations", "2"},
	}
	for want, segments := range cases {
		if got := formatPath(segments); got != want {
			t.Fatalf("formatPath(%v) = %q, want %q", segments, got, want)
		}
	}
}
