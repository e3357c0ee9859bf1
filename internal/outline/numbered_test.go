package outline

import (
	"testing"

	"outliner/internal/segment"
)

func TestDetectNumbered_MainSection(t *testing.T) {
	lines := segment.Segment("1. Introduction\nThe opening paragraph follows.")
	cands := DetectNumbered(lines)
	if len(cands) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(cands))
	}

	c := cands[0]
	if c.Level != LevelH1 {
		t.Errorf("expected H1, got %s", c.Level)
	}
	if c.Text != "1. Introduction" {
		t.Errorf("expected %q, got %q", "1. Introduction", c.Text)
	}
	if c.Confidence != 0.9 {
		t.Errorf("expected confidence 0.9, got %v", c.Confidence)
	}
	if c.Position != 0 {
		t.Errorf("expected position 0, got %d", c.Position)
	}
}

func TestDetectNumbered_SubSection(t *testing.T) {
	lines := segment.Segment("1.1 Overview\nBody text starts Here.")
	cands := DetectNumbered(lines)
	if len(cands) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(cands))
	}

	c := cands[0]
	if c.Level != LevelH2 {
		t.Errorf("expected H2, got %s", c.Level)
	}
	if c.Text != "1.1 Overview" {
		t.Errorf("expected %q, got %q", "1.1 Overview", c.Text)
	}
	if c.Confidence != 0.8 {
		t.Errorf("expected confidence 0.8, got %v", c.Confidence)
	}
}

func TestDetectNumbered_CleansTOCArtifacts(t *testing.T) {
	lines := segment.Segment("2. Scope   and Purpose ...... 14\nNext section starts.")
	cands := DetectNumbered(lines)
	if len(cands) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(cands))
	}
	if cands[0].Text != "2. Scope and Purpose" {
		t.Errorf("expected cleaned text, got %q", cands[0].Text)
	}
}

func TestDetectNumbered_PageTaggedFromMarkers(t *testing.T) {
	input := "Page 1 of 3\nIntro text here\nPage 2 of 3\n3. Methods\nShort."
	cands := DetectNumbered(segment.Segment(input))
	if len(cands) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(cands))
	}
	if cands[0].Page != 2 {
		t.Errorf("expected page 2, got %d", cands[0].Page)
	}
}

func TestDetectNumbered_RejectsImplausibleMatch(t *testing.T) {
	// Matched syntactically but surrounded by body text on both sides.
	body := "this line of running prose is longer than twenty characters"
	input := body + "\n4. heading candidate\n" + body
	cands := DetectNumbered(segment.Segment(input))
	if len(cands) != 0 {
		t.Fatalf("expected no candidates, got %d", len(cands))
	}
}

func TestDetectNumbered_SkipsNoiseLines(t *testing.T) {
	// A bare number is noise even though it would not match anyway;
	// a "version" line must not leak through as a heading.
	cands := DetectNumbered(segment.Segment("Version 2. Release\nNext"))
	if len(cands) != 0 {
		t.Fatalf("expected no candidates from noise line, got %d", len(cands))
	}
}

func TestDetectNumbered_IgnoresUnnumberedLines(t *testing.T) {
	cands := DetectNumbered(segment.Segment("Introduction\nBody."))
	if len(cands) != 0 {
		t.Fatalf("expected no candidates, got %d", len(cands))
	}
}
