// Package host connects quiz rendering to documents: it maps fenced block
// languages to processors that render into a mount point.
package host

import (
	"fmt"
	"sync"

	"quizzer/internal/markdown"
	"quizzer/internal/view"
)

// Processor renders the source of one fenced block into el.
type Processor func(source string, el view.Element)

// Registry holds the code block processors by language.
type Registry struct {
	mu         sync.RWMutex
	processors map[string]Processor
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{processors: map[string]Processor{}}
}

// RegisterCodeBlockProcessor binds a processor to a block language.
func (r *Registry) RegisterCodeBlockProcessor(language string, processor Processor) error {
	if language == "" {
		return fmt.Errorf("register processor: empty language")
	}
	if processor == nil {
		return fmt.Errorf("register processor %q: nil processor", language)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.processors[language]; exists {
		return fmt.Errorf("register processor %q: already registered", language)
	}
	r.processors[language] = processor
	return nil
}

// Process runs the processor registered for language. It reports whether one
// was found.
func (r *Registry) Process(language, source string, el view.Element) bool {
	r.mu.RLock()
	processor, ok := r.processors[language]
	r.mu.RUnlock()
	if !ok {
		return false
	}
	processor(source, el)
	return true
}

// MountFunc supplies the element a block renders into.
type MountFunc func(block markdown.Block) view.Element

// ProcessDocument runs every block of text that has a registered processor
// and returns how many ran.
func (r *Registry) ProcessDocument(text string, mount MountFunc) int {
	processed := 0
	for _, block := range markdown.FencedBlocks([]byte(text)) {
		r.mu.RLock()
		_, ok := r.processors[block.Language]
		r.mu.RUnlock()
		if !ok {
			continue
		}
		if r.Process(block.Language, block.Content, mount(block)) {
			processed++
		}
	}
	return processed
}
