// Package markdown locates fenced code blocks and reads YAML frontmatter in
// markdown documents.
package markdown

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Block is one fenced code region. Start and End are byte offsets of the
// whole region, fences included, in the original document.
type Block struct {
	Language string
	Content  string
	Start    int
	End      int
	Line     int
}

// FencedBlocks returns every fenced code block in document order. Frontmatter
// is skipped so its delimiters are never mistaken for markdown.
func FencedBlocks(source []byte) []Block {
	offset := 0
	if _, bodyStart, ok := SplitFrontmatter(source); ok {
		offset = bodyStart
	}
	body := source[offset:]
	doc := goldmark.DefaultParser().Parse(text.NewReader(body))

	var blocks []Block
	_ = ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		fenced, ok := node.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}
		if block, ok := locate(body, fenced); ok {
			block.Start += offset
			block.End += offset
			block.Line = bytes.Count(source[:block.Start], []byte("\n")) + 1
			blocks = append(blocks, block)
		}
		return ast.WalkSkipChildren, nil
	})
	return blocks
}

// BlocksWithLanguage filters FencedBlocks by info-string language.
func BlocksWithLanguage(source []byte, language string) []Block {
	var out []Block
	for _, block := range FencedBlocks(source) {
		if block.Language == language {
			out = append(out, block)
		}
	}
	return out
}

func locate(source []byte, fenced *ast.FencedCodeBlock) (Block, bool) {
	lines := fenced.Lines()
	var content bytes.Buffer
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		content.Write(segment.Value(source))
	}

	var openStart, contentEnd int
	switch {
	case fenced.Info != nil:
		infoStart := fenced.Info.Segment.Start
		openStart = lineStart(source, infoStart)
		contentEnd = lineEnd(source, infoStart)
		if contentEnd < len(source) {
			contentEnd++
		}
	case lines.Len() > 0:
		first := lines.At(0).Start
		if first == 0 {
			return Block{}, false
		}
		openStart = lineStart(source, first-1)
	default:
		return Block{}, false
	}
	if lines.Len() > 0 {
		contentEnd = lines.At(lines.Len() - 1).Stop
	}

	end := contentEnd
	closeEnd := lineEnd(source, contentEnd)
	closing := strings.TrimSpace(string(source[contentEnd:closeEnd]))
	if strings.HasPrefix(closing, "```") || strings.HasPrefix(closing, "~~~") {
		end = closeEnd
	}

	return Block{
		Language: string(fenced.Language(source)),
		Content:  strings.TrimSuffix(content.String(), "\n"),
		Start:    openStart,
		End:      end,
	}, true
}

func lineStart(source []byte, pos int) int {
	return bytes.LastIndexByte(source[:pos], '\n') + 1
}

func lineEnd(source []byte, pos int) int {
	if pos >= len(source) {
		return len(source)
	}
	if i := bytes.IndexByte(source[pos:], '\n'); i >= 0 {
		return pos + i
	}
	return len(source)
}
