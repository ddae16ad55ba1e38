package quiz

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type wireQuiz struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Data        []json.RawMessage `json:"data"`
}

type wireChoice struct {
	Label       string `json:"label"`
	Explanation string `json:"explanation"`
}

type wireBoolAnswer struct {
	Label       bool   `json:"label"`
	Explanation string `json:"explanation"`
}

type wireRecord struct {
	Type                 string          `json:"type"`
	Question             string          `json:"question"`
	Answer               json.RawMessage `json:"answer"`
	Alternatives         []wireChoice    `json:"alternatives"`
	IncorrectExplanation string          `json:"incorrectExplanation"`
	AcceptableVariations []string        `json:"acceptableVariations"`
	CaseSensitive        *bool           `json:"caseSensitive"`
}

// Decode converts a validated JSON payload into a Quiz. It assumes the
// payload passed schema validation and only reports structural mismatches.
func Decode(data []byte) (Quiz, error) {
	var wire wireQuiz
	if err := json.Unmarshal(data, &wire); err != nil {
		return Quiz{}, fmt.Errorf("decode quiz: %w", err)
	}
	records, err := DecodeRecords(wire.Data)
	if err != nil {
		return Quiz{}, err
	}
	return Quiz{Title: wire.Title, Description: wire.Description, Data: records}, nil
}

// DecodeValue converts an already parsed JSON value into a Quiz.
func DecodeValue(raw any) (Quiz, error) {
	data, err := json.Marshal(raw)
	if err != nil {
		return Quiz{}, fmt.Errorf("encode quiz: %w", err)
	}
	return Decode(data)
}

// DecodeRecords decodes each raw question in order.
func DecodeRecords(raw []json.RawMessage) ([]Record, error) {
	records := make([]Record, 0, len(raw))
	for i, item := range raw {
		record, err := DecodeRecord(item)
		if err != nil {
			return nil, fmt.Errorf("decode question %d: %w", i, err)
		}
		records = append(records, record)
	}
	return records, nil
}

// DecodeRecord decodes one question, dispatching on its type tag.
func DecodeRecord(raw json.RawMessage) (Record, error) {
	var wire wireRecord
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, err
	}
	kind, ok := ParseKind(wire.Type)
	if !ok {
		return Unrecognized{Tag: wire.Type, Question: wire.Question}, nil
	}
	switch kind {
	case KindMultipleChoice:
		var answer wireChoice
		if err := unmarshalAnswer(wire.Answer, &answer); err != nil {
			return nil, err
		}
		alternatives := make([]Choice, 0, len(wire.Alternatives))
		for _, alt := range wire.Alternatives {
			alternatives = append(alternatives, Choice(alt))
		}
		return MultipleChoice{
			Question:     wire.Question,
			Answer:       Choice(answer),
			Alternatives: alternatives,
		}, nil
	case KindTrueFalse:
		var answer wireBoolAnswer
		if err := unmarshalAnswer(wire.Answer, &answer); err != nil {
			return nil, err
		}
		return TrueFalse{
			Question:             wire.Question,
			Answer:               BoolAnswer(answer),
			IncorrectExplanation: wire.IncorrectExplanation,
		}, nil
	default:
		var answer string
		if err := unmarshalAnswer(wire.Answer, &answer); err != nil {
			return nil, err
		}
		caseSensitive := true
		if wire.CaseSensitive != nil {
			caseSensitive = *wire.CaseSensitive
		}
		return ShortAnswer{
			Question:             wire.Question,
			Answer:               answer,
			AcceptableVariations: wire.AcceptableVariations,
			CaseSensitive:        caseSensitive,
		}, nil
	}
}

func unmarshalAnswer(raw json.RawMessage, target any) error {
	if len(bytes.TrimSpace(raw)) == 0 {
		return fmt.Errorf("missing answer")
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("answer: %w", err)
	}
	return nil
}
