package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"quizzer/internal/host"
	"quizzer/internal/markdown"
	"quizzer/internal/quiz"
	"quizzer/internal/session"
	"quizzer/internal/view"
	"quizzer/internal/view/dom"
)

// isMarkdown reports whether path names a markdown document.
func isMarkdown(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	default:
		return false
	}
}

// mountedBlock is one quiz block processed out of a markdown document.
type mountedBlock struct {
	block   markdown.Block
	root    *dom.Element
	session *session.Session
}

// mountDocument runs the quiz processor over every matching block of text.
// Blocks whose source is not JSON are kept with a nil session.
func mountDocument(text string, e *env) ([]*mountedBlock, error) {
	var mounted []*mountedBlock
	registry := host.NewRegistry()
	err := registry.RegisterCodeBlockProcessor(e.cfg.Quiz.BlockLanguage, host.QuizProcessor(host.QuizOptions{
		Session: e.sessionOptions(),
		Started: func(s *session.Session) {
			mounted[len(mounted)-1].session = s
		},
	}))
	if err != nil {
		return nil, err
	}
	registry.ProcessDocument(text, func(block markdown.Block) view.Element {
		root := dom.NewRoot("div")
		mounted = append(mounted, &mountedBlock{block: block, root: root})
		return root
	})
	return mounted, nil
}

// loadSession builds the session for a quiz file. For markdown documents,
// block picks the 1-based quiz block to use.
func loadSession(path string, block int, e *env) (*session.Session, error) {
	if !isMarkdown(path) {
		raw, err := quiz.ReadPayload(path)
		if err != nil {
			return nil, err
		}
		return session.New(raw, e.sessionOptions()), nil
	}

	text, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	mounted, err := mountDocument(string(text), e)
	if err != nil {
		return nil, err
	}
	if len(mounted) == 0 {
		return nil, fmt.Errorf("%s: no %q blocks found", path, e.cfg.Quiz.BlockLanguage)
	}
	if block < 1 || block > len(mounted) {
		return nil, fmt.Errorf("%s: block %d out of range (found %d)", path, block, len(mounted))
	}
	picked := mounted[block-1]
	if picked.session == nil {
		return nil, fmt.Errorf("%s:%d: %s", path, picked.block.Line, host.InvalidJSONMessage)
	}
	e.logger.Debug("quiz block mounted", "path", path, "block", block, "line", picked.block.Line)
	return picked.session, nil
}
