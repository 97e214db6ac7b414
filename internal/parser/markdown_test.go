package parser

import (
	"strings"
	"testing"
)

func TestMarkdownParser_SectionsAndHeadings(t *testing.T) {
	input := `## 20 words:

Apple banana cherry.

----------

## 50 words:

Sun-lit *meadow* under a
wide sky.

Second paragraph.
`
	p := &MarkdownParser{}
	got, err := p.Parse(strings.NewReader(input), "words.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "20 words:\n\nApple banana cherry.\n\n----------\n\n50 words:\n\nSun-lit meadow under a\nwide sky.\n\nSecond paragraph."
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestMarkdownParser_ListsBecomeParagraphs(t *testing.T) {
	input := "20 words:\n\n- first item\n- second item\n"
	p := &MarkdownParser{}
	got, err := p.Parse(strings.NewReader(input), "list.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "20 words:\n\nfirst item\n\nsecond item"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestMarkdownParser_CodeBlockKeepsText(t *testing.T) {
	input := "20 words:\n\n```\nGET /api/users\n```\n"
	p := &MarkdownParser{}
	got, err := p.Parse(strings.NewReader(input), "code.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "GET /api/users") {
		t.Errorf("expected code block content, got %q", got)
	}
}

func TestMarkdownParser_EmptyInput(t *testing.T) {
	p := &MarkdownParser{}
	got, err := p.Parse(strings.NewReader(""), "empty.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Errorf("expected empty output, got %q", got)
	}
}

func TestMarkdownParser_DashLineUnderTextIsSetextHeading(t *testing.T) {
	// Plain word-list layout: the dash line sits directly under a paragraph,
	// so Markdown reads it as a heading underline, not a section break.
	input := "20 words:\n\napple banana\n----------\n50 words:\n\nsun\n"
	p := &MarkdownParser{}
	got, err := p.Parse(strings.NewReader(input), "words.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "20 words:\n\napple banana\n\n50 words:\n\nsun"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	if strings.Contains(got, SectionBreak) {
		t.Errorf("expected no section break, got %q", got)
	}
}
