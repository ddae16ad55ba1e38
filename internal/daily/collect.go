package daily

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"quizzer/internal/quiz"
	"quizzer/internal/schema"
)

// Defaults for the merged quiz.
const (
	DefaultTitle       = "Daily Quiz"
	DefaultDescription = "A quiz generated from all files with daily-quiz frontmatter"
	DefaultLanguage    = "quizz"
	DefaultConcurrency = 8
)

// ErrNoSource is returned when Collect is called without a source.
var ErrNoSource = errors.New("daily: no content source")

// Options configures a collection run.
type Options struct {
	Language    string
	Title       string
	Description string
	Concurrency int
	Logger      *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.Language == "" {
		o.Language = DefaultLanguage
	}
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.Description == "" {
		o.Description = DefaultDescription
	}
	if o.Concurrency <= 0 {
		o.Concurrency = DefaultConcurrency
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	return o
}

// Skipped records a document or block left out of the merged quiz.
type Skipped struct {
	Path  string
	Line  int
	Stage string
	Err   error
}

func (s Skipped) String() string {
	if s.Line > 0 {
		return fmt.Sprintf("%s:%d: %s: %v", s.Path, s.Line, s.Stage, s.Err)
	}
	return fmt.Sprintf("%s: %s: %v", s.Path, s.Stage, s.Err)
}

// Result is the merged quiz plus what the scan saw.
type Result struct {
	Quiz      quiz.Quiz
	Documents int
	Flagged   int
	Blocks    int
	Skipped   []Skipped
}

type documentResult struct {
	flagged bool
	blocks  int
	records []quiz.Record
	skipped []Skipped
}

// Collect scans every document of src concurrently and merges the questions
// of valid quiz blocks in document order, then block order. A bad document or
// block is skipped and logged; only a listing failure or cancellation fails
// the run.
func Collect(ctx context.Context, src Source, opts Options) (Result, error) {
	if src == nil {
		return Result{}, ErrNoSource
	}
	opts = opts.withDefaults()
	docs, err := src.ListDocuments(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("list documents: %w", err)
	}

	slots := make([]documentResult, len(docs))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(opts.Concurrency)
	for i, doc := range docs {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			slots[i] = collectDocument(groupCtx, src, doc, opts)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return Result{}, err
	}
	// Sources report cancellation as a per-document read error; the run as a
	// whole still failed.
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	result := Result{
		Quiz:      quiz.Quiz{Title: opts.Title, Description: opts.Description},
		Documents: len(docs),
	}
	for _, slot := range slots {
		if slot.flagged {
			result.Flagged++
		}
		result.Blocks += slot.blocks
		result.Quiz.Data = append(result.Quiz.Data, slot.records...)
		result.Skipped = append(result.Skipped, slot.skipped...)
	}
	opts.Logger.Info("daily quiz collected",
		"documents", result.Documents,
		"flagged", result.Flagged,
		"blocks", result.Blocks,
		"questions", len(result.Quiz.Data),
		"skipped", len(result.Skipped),
	)
	return result, nil
}

func collectDocument(ctx context.Context, src Source, doc Document, opts Options) documentResult {
	var out documentResult
	logger := opts.Logger.With("path", doc.Path)
	skip := func(line int, stage string, err error) {
		logger.Warn("skipping quiz content", "line", line, "stage", stage, "error", err)
		out.skipped = append(out.skipped, Skipped{Path: doc.Path, Line: line, Stage: stage, Err: err})
	}

	flags, err := src.Flags(ctx, doc)
	if err != nil {
		skip(0, "flags", err)
		return out
	}
	if !flags.DailyQuiz {
		return out
	}
	out.flagged = true

	text, err := src.ReadText(ctx, doc)
	if err != nil {
		skip(0, "read", err)
		return out
	}
	blocks, err := src.Blocks(ctx, doc, text)
	if err != nil {
		skip(0, "blocks", err)
		return out
	}
	for _, block := range blocks {
		if block.Language != opts.Language {
			continue
		}
		out.blocks++
		records, stage, err := parseBlock(block.Content)
		if err != nil {
			skip(block.Line, stage, err)
			continue
		}
		logger.Debug("quiz block collected", "line", block.Line, "questions", len(records))
		out.records = append(out.records, records...)
	}
	return out
}

func parseBlock(content string) ([]quiz.Record, string, error) {
	raw, report, err := schema.ValidateJSON([]byte(content))
	if err != nil {
		return nil, "parse", err
	}
	if err := report.Err(); err != nil {
		return nil, "validate", err
	}
	decoded, err := quiz.DecodeValue(raw)
	if err != nil {
		return nil, "decode", err
	}
	return decoded.Data, "", nil
}
