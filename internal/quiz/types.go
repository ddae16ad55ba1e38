// Package quiz defines validated quiz data: the quiz container and the closed
// set of question records.
package quiz

// Quiz is the top-level container parsed from a quiz block.
type Quiz struct {
	Title       string
	Description string
	Data        []Record
}

// Record is one question. The set of implementations is closed.
type Record interface {
	Kind() Kind
	Prompt() string
	isRecord()
}

// Choice is a labelled multiple-choice option.
type Choice struct {
	Label       string
	Explanation string
}

// MultipleChoice asks the user to pick the answer among alternatives.
type MultipleChoice struct {
	Question     string
	Answer       Choice
	Alternatives []Choice
}

// Options returns every alternative followed by the answer.
func (mc MultipleChoice) Options() []Choice {
	options := make([]Choice, 0, len(mc.Alternatives)+1)
	options = append(options, mc.Alternatives...)
	options = append(options, mc.Answer)
	return options
}

// BoolAnswer is the expected true/false value.
type BoolAnswer struct {
	Label       bool
	Explanation string
}

// TrueFalse asks the user to decide whether a statement holds.
type TrueFalse struct {
	Question             string
	Answer               BoolAnswer
	IncorrectExplanation string
}

// ShortAnswer asks for free text compared against an answer and variations.
type ShortAnswer struct {
	Question             string
	Answer               string
	AcceptableVariations []string
	CaseSensitive        bool
}

// Unrecognized holds a record whose type tag has no evaluator.
type Unrecognized struct {
	Tag      string
	Question string
}

func (MultipleChoice) Kind() Kind { return KindMultipleChoice }
func (TrueFalse) Kind() Kind      { return KindTrueFalse }
func (ShortAnswer) Kind() Kind    { return KindShortAnswer }
func (Unrecognized) Kind() Kind   { return KindUnknown }

func (mc MultipleChoice) Prompt() string { return mc.Question }
func (tf TrueFalse) Prompt() string      { return tf.Question }
func (sa ShortAnswer) Prompt() string    { return sa.Question }
func (u Unrecognized) Prompt() string    { return u.Question }

func (MultipleChoice) isRecord() {}
func (TrueFalse) isRecord()      {}
func (ShortAnswer) isRecord()    {}
func (Unrecognized) isRecord()   {}
