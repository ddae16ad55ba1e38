// Package daily merges the quiz blocks of every flagged document into one
// "Daily Quiz".
package daily

import (
	"context"

	"quizzer/internal/markdown"
)

// Document identifies one item of a content source.
type Document struct {
	Path string
}

// Flags are the per-document inclusion switches.
type Flags struct {
	DailyQuiz bool
}

// Source is the content provider the collector scans. Implementations must
// be safe for concurrent use.
type Source interface {
	ListDocuments(ctx context.Context) ([]Document, error)
	Flags(ctx context.Context, doc Document) (Flags, error)
	ReadText(ctx context.Context, doc Document) (string, error)
	Blocks(ctx context.Context, doc Document, text string) ([]markdown.Block, error)
}
