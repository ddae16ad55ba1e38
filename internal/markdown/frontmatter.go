package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const frontmatterDelimiter = "---"

// Frontmatter holds the YAML properties at the top of a document.
type Frontmatter map[string]any

// SplitFrontmatter returns the YAML between leading "---" lines and the byte
// offset where the markdown body begins.
func SplitFrontmatter(source []byte) ([]byte, int, bool) {
	first := lineEnd(source, 0)
	if strings.TrimRight(string(source[:first]), " \t\r") != frontmatterDelimiter {
		return nil, 0, false
	}
	pos := first + 1
	for pos <= len(source) {
		end := lineEnd(source, pos)
		line := strings.TrimRight(string(source[pos:end]), " \t\r")
		if line == frontmatterDelimiter || line == "..." {
			body := end
			if body < len(source) {
				body++
			}
			return source[first+1 : pos], body, true
		}
		if end >= len(source) {
			break
		}
		pos = end + 1
	}
	return nil, 0, false
}

// ParseFrontmatter decodes the document's frontmatter. A document without
// frontmatter yields an empty map.
func ParseFrontmatter(source []byte) (Frontmatter, error) {
	front, _, ok := SplitFrontmatter(source)
	if !ok || len(bytes.TrimSpace(front)) == 0 {
		return Frontmatter{}, nil
	}
	var values map[string]any
	if err := yaml.Unmarshal(front, &values); err != nil {
		return nil, fmt.Errorf("parse frontmatter: %w", err)
	}
	if values == nil {
		values = map[string]any{}
	}
	return Frontmatter(values), nil
}

// Flag reports whether key is set to true or the string "true".
func (f Frontmatter) Flag(key string) bool {
	switch value := f[key].(type) {
	case bool:
		return value
	case string:
		return strings.EqualFold(strings.TrimSpace(value), "true")
	default:
		return false
	}
}
