// Package vault exposes a directory of markdown notes as a daily quiz source.
package vault

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"quizzer/internal/daily"
	"quizzer/internal/markdown"
)

// DefaultFlag is the frontmatter key that opts a note into the daily quiz.
const DefaultFlag = "daily-quiz"

// Source reads notes under Root. Document paths are slash-separated and
// relative to Root.
type Source struct {
	Root string
	Flag string

	// pending holds the text of flagged notes read by Flags until ReadText
	// takes it, so each note is read from disk once.
	pending sync.Map
}

// readFile is replaced in tests to count disk reads.
var readFile = os.ReadFile

// New returns a source rooted at root using the given frontmatter flag.
func New(root, flag string) *Source {
	if flag == "" {
		flag = DefaultFlag
	}
	return &Source{Root: root, Flag: flag}
}

// ListDocuments returns every markdown note in lexical order, skipping hidden
// directories.
func (s *Source) ListDocuments(ctx context.Context) ([]daily.Document, error) {
	var docs []daily.Document
	err := filepath.WalkDir(s.Root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		name := entry.Name()
		if entry.IsDir() {
			if path != s.Root && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(name), ".md") {
			return nil
		}
		rel, err := filepath.Rel(s.Root, path)
		if err != nil {
			return err
		}
		docs = append(docs, daily.Document{Path: filepath.ToSlash(rel)})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", s.Root, err)
	}
	return docs, nil
}

// Flags reads the note's frontmatter. A flagged note's text is kept for the
// following ReadText.
func (s *Source) Flags(ctx context.Context, doc daily.Document) (daily.Flags, error) {
	text, err := s.read(ctx, doc)
	if err != nil {
		return daily.Flags{}, err
	}
	front, err := markdown.ParseFrontmatter([]byte(text))
	if err != nil {
		return daily.Flags{}, err
	}
	flags := daily.Flags{DailyQuiz: front.Flag(s.Flag)}
	if flags.DailyQuiz {
		s.pending.Store(doc.Path, text)
	}
	return flags, nil
}

// ReadText returns the note's contents.
func (s *Source) ReadText(ctx context.Context, doc daily.Document) (string, error) {
	if text, ok := s.pending.LoadAndDelete(doc.Path); ok {
		return text.(string), nil
	}
	return s.read(ctx, doc)
}

func (s *Source) read(ctx context.Context, doc daily.Document) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := readFile(s.path(doc))
	if err != nil {
		return "", fmt.Errorf("read note: %w", err)
	}
	return string(data), nil
}

// Blocks locates the fenced code blocks of text.
func (s *Source) Blocks(_ context.Context, _ daily.Document, text string) ([]markdown.Block, error) {
	return markdown.FencedBlocks([]byte(text)), nil
}

func (s *Source) path(doc daily.Document) string {
	return filepath.Join(s.Root, filepath.FromSlash(doc.Path))
}
