package quiz

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadPayloadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "quiz.yml")
	payload := `title: Numbers
data:
  - type: sa
    question: "2+2?"
    answer: "4"
  - type: tf
    question: Zero is even
    answer:
      label: true
`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write quiz: %v", err)
	}
	raw, err := ReadPayload(path)
	if err != nil {
		t.Fatalf("read payload: %v", err)
	}
	object, ok := raw.(map[string]any)
	if !ok {
		t.Fatalf("expected object, got %T", raw)
	}
	data, ok := object["data"].([]any)
	if !ok || len(data) != 2 {
		t.Fatalf("expected two questions, got %v", object["data"])
	}
	quiz, err := DecodeValue(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if quiz.Title != "Numbers" || len(quiz.Data) != 2 {
		t.Fatalf("unexpected quiz %+v", quiz)
	}
}

func TestReadPayloadJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "quiz.json")
	if err := os.WriteFile(path, []byte(`{"title":"t","data":[]}`), 0o644); err != nil {
		t.Fatalf("write quiz: %v", err)
	}
	raw, err := ReadPayload(path)
	if err != nil {
		t.Fatalf("read payload: %v", err)
	}
	if raw.(map[string]any)["title"] != "t" {
		t.Fatalf("unexpected payload %v", raw)
	}
}

func TestParsePayloadRejectsMultipleDocuments(t *testing.T) {
	_, err := ParsePayload([]byte("title: a\n---\ntitle: b\n"), "quiz.yaml")
	if err == nil || !strings.Contains(err.Error(), "multiple documents") {
		t.Fatalf("expected multiple documents error, got %v", err)
	}
	_, err = ParsePayload([]byte(`{"title":"a"} {"title":"b"}`), "quiz.json")
	if err == nil || !strings.Contains(err.Error(), "multiple documents") {
		t.Fatalf("expected multiple documents error, got %v", err)
	}
}
