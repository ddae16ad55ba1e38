package quiz

// Kind discriminates question records.
type Kind int

const (
	// KindUnknown marks a type tag no evaluator handles.
	KindUnknown Kind = iota
	// KindMultipleChoice is a pick-one question.
	KindMultipleChoice
	// KindTrueFalse is a true/false statement.
	KindTrueFalse
	// KindShortAnswer is a free-text question.
	KindShortAnswer
)

var kindAliases = map[string]Kind{
	"multiple-choice": KindMultipleChoice,
	"mc":              KindMultipleChoice,
	"true-false":      KindTrueFalse,
	"tf":              KindTrueFalse,
	"short-answer":    KindShortAnswer,
	"sa":              KindShortAnswer,
}

// ParseKind resolves a type tag, accepting the short aliases.
func ParseKind(tag string) (Kind, bool) {
	kind, ok := kindAliases[tag]
	return kind, ok
}

// Tags returns the accepted type tags for a kind, canonical name first.
func Tags(kind Kind) []string {
	switch kind {
	case KindMultipleChoice:
		return []string{"multiple-choice", "mc"}
	case KindTrueFalse:
		return []string{"true-false", "tf"}
	case KindShortAnswer:
		return []string{"short-answer", "sa"}
	default:
		return nil
	}
}

// String returns the canonical type tag.
func (k Kind) String() string {
	if tags := Tags(k); len(tags) > 0 {
		return tags[0]
	}
	return "unknown"
}
