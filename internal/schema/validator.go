// Package schema validates untrusted quiz payloads against embedded JSON
// schemas and reports structured, question-indexed errors.
package schema

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"quizzer/internal/quiz"
)

//go:embed schemas/*.json
var schemaFiles embed.FS

const schemaBaseURL = "https://quizzer.local/schemas/"

var kindSchemaFiles = map[quiz.Kind]string{
	quiz.KindMultipleChoice: "multiple-choice.json",
	quiz.KindTrueFalse:      "true-false.json",
	quiz.KindShortAnswer:    "short-answer.json",
}

// Validator holds the compiled quiz and per-kind question schemas.
type Validator struct {
	quiz  *jsonschema.Schema
	kinds map[quiz.Kind]*jsonschema.Schema
}

// NewValidator compiles the embedded schemas.
func NewValidator() (*Validator, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft7
	entries, err := schemaFiles.ReadDir("schemas")
	if err != nil {
		return nil, fmt.Errorf("schema: list embedded schemas: %w", err)
	}
	for _, entry := range entries {
		data, err := schemaFiles.ReadFile("schemas/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("schema: read %s: %w", entry.Name(), err)
		}
		if err := compiler.AddResource(schemaBaseURL+entry.Name(), bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("schema: add %s: %w", entry.Name(), err)
		}
	}
	quizSchema, err := compiler.Compile(schemaBaseURL + "quiz.json")
	if err != nil {
		return nil, fmt.Errorf("schema: compile quiz.json: %w", err)
	}
	v := &Validator{quiz: quizSchema, kinds: make(map[quiz.Kind]*jsonschema.Schema, len(kindSchemaFiles))}
	for kind, name := range kindSchemaFiles {
		compiled, err := compiler.Compile(schemaBaseURL + name)
		if err != nil {
			return nil, fmt.Errorf("schema: compile %s: %w", name, err)
		}
		v.kinds[kind] = compiled
	}
	return v, nil
}

var defaultValidator = sync.OnceValues(NewValidator)

// Default returns the shared validator. The embedded schemas are part of the
// binary, so a compile failure is a build defect and panics.
func Default() *Validator {
	v, err := defaultValidator()
	if err != nil {
		panic(err)
	}
	return v
}

// Validate checks a decoded JSON value with the shared validator.
func Validate(raw any) Report {
	return Default().Validate(raw)
}

// ValidateJSON parses data and validates it with the shared validator. The
// parsed value is returned for reuse; malformed JSON yields ErrInvalidJSON.
func ValidateJSON(data []byte) (any, Report, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, Report{}, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return raw, Validate(raw), nil
}
