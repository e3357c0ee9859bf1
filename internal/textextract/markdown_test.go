package textextract

import (
	"strings"
	"testing"
)

func TestMarkdownExtractor_HeadingsOnOwnLines(t *testing.T) {
	input := "# 1. Introduction\n\nBody paragraph here.\n\n## 1.1 Scope\n\nMore body."
	e := &MarkdownExtractor{}
	got, err := e.Extract(strings.NewReader(input), "doc.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := nonEmptyLines(got)
	want := []string{"1. Introduction", "Body paragraph here.", "1.1 Scope", "More body."}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(lines), lines)
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line %d: expected %q, got %q", i, w, lines[i])
		}
	}
}

func TestMarkdownExtractor_StripsInlineFormatting(t *testing.T) {
	input := "# The **Complete** Guide\n\nSome *emphasized* text."
	e := &MarkdownExtractor{}
	got, err := e.Extract(strings.NewReader(input), "doc.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(got, "*") || strings.Contains(got, "#") {
		t.Errorf("markdown syntax leaked into output: %q", got)
	}
	if !strings.Contains(got, "The Complete Guide") {
		t.Errorf("expected flattened heading text, got %q", got)
	}
	if n := strings.Count(got, "Some emphasized text."); n != 1 {
		t.Errorf("expected paragraph text exactly once, found %d times in %q", n, got)
	}
}

func TestMarkdownExtractor_NestedInlineEmittedOnce(t *testing.T) {
	input := "A paragraph with **bold**, *italic*, `code` and a [link](https://example.com)."
	e := &MarkdownExtractor{}
	got, err := e.Extract(strings.NewReader(input), "doc.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := nonEmptyLines(got)
	if len(lines) != 1 {
		t.Fatalf("expected a single line, got %d: %q", len(lines), lines)
	}
	want := "A paragraph with bold, italic, code and a link."
	if lines[0] != want {
		t.Errorf("expected %q, got %q", want, lines[0])
	}
}

func TestMarkdownExtractor_ListItemsOnOwnLines(t *testing.T) {
	input := "- First item\n- Second item\n"
	e := &MarkdownExtractor{}
	got, err := e.Extract(strings.NewReader(input), "doc.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := nonEmptyLines(got)
	want := []string{"First item", "Second item"}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(lines), lines)
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line %d: expected %q, got %q", i, w, lines[i])
		}
	}
}

func TestMarkdownExtractor_EmptyDocument(t *testing.T) {
	e := &MarkdownExtractor{}
	got, err := e.Extract(strings.NewReader(""), "doc.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(got) != "" {
		t.Errorf("expected empty output, got %q", got)
	}
}

func nonEmptyLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) != "" {
			out = append(out, strings.TrimSpace(line))
		}
	}
	return out
}
