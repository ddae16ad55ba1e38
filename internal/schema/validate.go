package schema

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"quizzer/internal/quiz"
)

// fieldOrder follows the declaration order of the schemas so errors for one
// question read top to bottom.
var fieldOrder = map[string]int{
	"title":                0,
	"description":          1,
	"data":                 2,
	"type":                 10,
	"question":             11,
	"answer":               12,
	"alternatives":         13,
	"incorrectExplanation": 14,
	"acceptableVariations": 15,
	"caseSensitive":        16,
}

// Validate checks raw in two passes: the quiz schema, then a per-kind schema
// for every question the first pass did not already reject.
func (v *Validator) Validate(raw any) Report {
	var errs []ValidationError
	broken := map[int]struct{}{}

	for _, leaf := range leafErrors(v.quiz.Validate(raw)) {
		for _, item := range convert(leaf, nil) {
			if index, rest, ok := splitQuestion(item.segments); ok {
				broken[index] = struct{}{}
				item = relocate(item, index, rest)
			}
			errs = append(errs, item)
		}
	}

	if questions, ok := questionList(raw); ok {
		for index, question := range questions {
			if _, skip := broken[index]; skip {
				continue
			}
			errs = append(errs, v.validateQuestion(index, question)...)
		}
	}

	sortErrors(errs)
	return Report{Errors: errs}
}

func (v *Validator) validateQuestion(index int, question any) []ValidationError {
	object, _ := question.(map[string]any)
	tag, _ := object["type"].(string)
	kind, ok := quiz.ParseKind(tag)
	if !ok {
		return nil
	}
	compiled, ok := v.kinds[kind]
	if !ok {
		return nil
	}
	var errs []ValidationError
	for _, leaf := range leafErrors(compiled.Validate(question)) {
		errs = append(errs, convert(leaf, intPtr(index))...)
	}
	if len(errs) == 0 && kind == quiz.KindMultipleChoice {
		errs = append(errs, duplicateLabels(index, object)...)
	}
	return errs
}

// duplicateLabels rejects alternatives that repeat the answer label or an
// earlier alternative, which would make options ambiguous once shuffled.
func duplicateLabels(index int, question map[string]any) []ValidationError {
	answer, _ := question["answer"].(map[string]any)
	label, _ := answer["label"].(string)
	alternatives, _ := question["alternatives"].([]any)
	seen := map[string]int{}
	var errs []ValidationError
	for i, alt := range alternatives {
		object, _ := alt.(map[string]any)
		altLabel, _ := object["label"].(string)
		var message string
		if altLabel == label {
			message = fmt.Sprintf("duplicates the answer label %q", label)
		} else if first, ok := seen[altLabel]; ok {
			message = fmt.Sprintf("duplicates alternatives[%d].label %q", first, altLabel)
		} else {
			seen[altLabel] = i
			continue
		}
		segments := []string{"alternatives", strconv.Itoa(i), "label"}
		errs = append(errs, ValidationError{
			QuestionIndex: intPtr(index),
			Path:          formatPath(segments),
			Message:       message,
			segments:      segments,
		})
	}
	return errs
}

func questionList(raw any) ([]any, bool) {
	object, ok := raw.(map[string]any)
	if !ok {
		return nil, false
	}
	list, ok := object["data"].([]any)
	return list, ok
}

// leafErrors flattens a jsonschema error tree into its leaf causes.
func leafErrors(err error) []*jsonschema.ValidationError {
	if err == nil {
		return nil
	}
	var root *jsonschema.ValidationError
	if !errors.As(err, &root) {
		return []*jsonschema.ValidationError{{Message: err.Error()}}
	}
	var leaves []*jsonschema.ValidationError
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if len(node.Causes) == 0 {
			leaves = append(leaves, node)
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(root)
	return leaves
}

// convert maps one leaf into one or more ValidationErrors. A required
// failure lists every missing property, so it fans out per property.
func convert(leaf *jsonschema.ValidationError, questionIndex *int) []ValidationError {
	segments := pointerSegments(leaf.InstanceLocation)
	keyword := lastKeyword(leaf.KeywordLocation)
	if keyword == "required" {
		if missing := missingProperties(leaf.Message); len(missing) > 0 {
			out := make([]ValidationError, 0, len(missing))
			for _, name := range missing {
				path := append(slices.Clone(segments), name)
				out = append(out, ValidationError{
					QuestionIndex: questionIndex,
					Path:          formatPath(path),
					Message:       "is required",
					segments:      path,
				})
			}
			return out
		}
	}
	return []ValidationError{{
		QuestionIndex: questionIndex,
		Path:          formatPath(segments),
		Message:       describe(keyword, leaf.Message),
		segments:      segments,
	}}
}

func describe(keyword, message string) string {
	switch keyword {
	case "pattern":
		return "must not be blank"
	case "minItems":
		return "must not be empty"
	default:
		return message
	}
}

// splitQuestion detects locations under data/<n>.
func splitQuestion(segments []string) (int, []string, bool) {
	if len(segments) < 2 || segments[0] != "data" {
		return 0, nil, false
	}
	index, err := strconv.Atoi(segments[1])
	if err != nil {
		return 0, nil, false
	}
	return index, segments[2:], true
}

func relocate(item ValidationError, index int, rest []string) ValidationError {
	item.QuestionIndex = intPtr(index)
	item.segments = rest
	item.Path = formatPath(rest)
	return item
}

func lastKeyword(location string) string {
	if i := strings.LastIndex(location, "/"); i >= 0 {
		return location[i+1:]
	}
	return location
}

// missingProperties extracts quoted names from "missing properties: 'a', 'b'".
func missingProperties(message string) []string {
	_, list, ok := strings.Cut(message, ":")
	if !ok {
		return nil
	}
	var names []string
	for _, part := range strings.Split(list, ",") {
		name := strings.Trim(strings.TrimSpace(part), `'"`)
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

func pointerSegments(pointer string) []string {
	pointer = strings.TrimPrefix(pointer, "#")
	if pointer == "" || pointer == "/" {
		return nil
	}
	parts := strings.Split(strings.TrimPrefix(pointer, "/"), "/")
	for i, part := range parts {
		part = strings.ReplaceAll(part, "~1", "/")
		parts[i] = strings.ReplaceAll(part, "~0", "~")
	}
	return parts
}

// formatPath renders segments as a property path such as alternatives[0].label.
func formatPath(segments []string) string {
	var b strings.Builder
	for _, segment := range segments {
		if _, err := strconv.Atoi(segment); err == nil {
			b.WriteString("[" + segment + "]")
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(segment)
	}
	return b.String()
}

func sortErrors(errs []ValidationError) {
	slices.SortStableFunc(errs, func(a, b ValidationError) int {
		if c := compareIndex(a.QuestionIndex, b.QuestionIndex); c != 0 {
			return c
		}
		return compareSegments(a.segments, b.segments)
	})
}

func compareIndex(a, b *int) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	default:
		return *a - *b
	}
}

func compareSegments(a, b []string) int {
	if len(a) == 0 || len(b) == 0 {
		return len(a) - len(b)
	}
	if c := fieldRank(a[0]) - fieldRank(b[0]); c != 0 {
		return c
	}
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := compareSegment(a[i], b[i]); c != 0 {
			return c
		}
	}
	return len(a) - len(b)
}

func compareSegment(a, b string) int {
	ai, aErr := strconv.Atoi(a)
	bi, bErr := strconv.Atoi(b)
	if aErr == nil && bErr == nil {
		return ai - bi
	}
	return strings.Compare(a, b)
}

func fieldRank(name string) int {
	if rank, ok := fieldOrder[name]; ok {
		return rank
	}
	return len(fieldOrder) + 100
}
