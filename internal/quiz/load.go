package quiz

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ReadPayload reads a quiz file and returns its untyped JSON value, ready for
// schema validation. Files ending in .yml or .yaml are parsed as YAML and
// normalized to JSON types; anything else is parsed as JSON.
func ReadPayload(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read quiz: %w", err)
	}
	return ParsePayload(data, path)
}

// ParsePayload parses data using the format implied by name's extension.
func ParsePayload(data []byte, name string) (any, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yml", ".yaml":
		return parseYAMLPayload(data)
	default:
		return parseJSONPayload(data)
	}
}

func parseJSONPayload(data []byte) (any, error) {
	var raw any
	decoder := json.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("parse json: multiple documents are not supported")
		}
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return raw, nil
}

func parseYAMLPayload(data []byte) (any, error) {
	var raw any
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	// YAML yields ints and non-string keys; round-trip through JSON so the
	// value matches what encoding/json would have produced.
	encoded, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return parseJSONPayload(encoded)
}
