package markdown

import (
	"strings"
	"testing"
)

const note = "---\ndaily-quiz: \"true\"\ntags: [study]\n---\n# Notes\n\n```quizz\n{\"title\": \"A\"}\n```\n\nText between.\n\n```go\nfmt.Println(1)\n```\n\n~~~quizz\n{\"title\": \"B\"}\n~~~\n"

func TestFencedBlocksFindsEveryBlock(t *testing.T) {
	blocks := FencedBlocks([]byte(note))
	if len(blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(blocks))
	}
	want := []struct {
		language string
		content  string
	}{
		{"quizz", `{"title": "A"}`},
		{"go", "fmt.Println(1)"},
		{"quizz", `{"title": "B"}`},
	}
	for i, block := range blocks {
		if block.Language != want[i].language || block.Content != want[i].content {
			t.Fatalf("block %d = %+v, want %+v", i, block, want[i])
		}
	}
}

func TestFencedBlocksOffsetsCoverFences(t *testing.T) {
	blocks := FencedBlocks([]byte(note))
	region := note[blocks[0].Start:blocks[0].End]
	if region != "```quizz\n{\"title\": \"A\"}\n```" {
		t.Fatalf("unexpected region %q", region)
	}
	if blocks[0].Line != 7 {
		t.Fatalf("expected line 7, got %d", blocks[0].Line)
	}
	tilde := note[blocks[2].Start:blocks[2].End]
	if !strings.HasPrefix(tilde, "~~~quizz") || !strings.HasSuffix(tilde, "~~~") {
		t.Fatalf("unexpected tilde region %q", tilde)
	}
}

func TestBlocksWithLanguage(t *testing.T) {
	blocks := BlocksWithLanguage([]byte(note), "quizz")
	if len(blocks) != 2 {
		t.Fatalf("expected 2 quizz blocks, got %d", len(blocks))
	}
	if got := BlocksWithLanguage([]byte("no code here"), "quizz"); len(got) != 0 {
		t.Fatalf("expected no blocks, got %v", got)
	}
}

func TestFencedBlocksUnclosedFence(t *testing.T) {
	source := "```quizz\n{\"a\": 1}\n"
	blocks := FencedBlocks([]byte(source))
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if blocks[0].Content != `{"a": 1}` || blocks[0].Start != 0 {
		t.Fatalf("unexpected block %+v", blocks[0])
	}
}

func TestParseFrontmatterFlags(t *testing.T) {
	front, err := ParseFrontmatter([]byte(note))
	if err != nil {
		t.Fatalf("parse frontmatter: %v", err)
	}
	if !front.Flag("daily-quiz") {
		t.Fatalf("expected string true flag")
	}
	front, err = ParseFrontmatter([]byte("---\ndaily-quiz: true\nother: yes please\n---\nbody\n"))
	if err != nil {
		t.Fatalf("parse frontmatter: %v", err)
	}
	if !front.Flag("daily-quiz") || front.Flag("other") || front.Flag("missing") {
		t.Fatalf("unexpected flags %v", front)
	}
}

func TestParseFrontmatterAbsent(t *testing.T) {
	front, err := ParseFrontmatter([]byte("# Title\n---\n"))
	if err != nil {
		t.Fatalf("parse frontmatter: %v", err)
	}
	if len(front) != 0 {
		t.Fatalf("expected empty frontmatter, got %v", front)
	}
	if _, _, ok := SplitFrontmatter([]byte("---\nunterminated: true\n")); ok {
		t.Fatalf("expected unterminated frontmatter to be ignored")
	}
}

func TestParseFrontmatterInvalidYAML(t *testing.T) {
	if _, err := ParseFrontmatter([]byte("---\nkey: [unclosed\n---\n")); err == nil {
		t.Fatalf("expected yaml error")
	}
}
