package outline

import (
	"testing"

	"outliner/internal/segment"
)

func TestResolveTitle_FirstQualifyingLine(t *testing.T) {
	lines := segment.Segment("Advanced Testing Handbook\n1. Introduction\nBody.")
	got := resolveTitle(lines, nil)
	if got != "Advanced Testing Handbook" {
		t.Errorf("expected title from first line, got %q", got)
	}
}

func TestResolveTitle_SkipsShortAndNumberedLines(t *testing.T) {
	input := "Short\n1. Introduction to Everything\nA Practical Guide to Document Analysis"
	got := resolveTitle(segment.Segment(input), nil)
	if got != "A Practical Guide to Document Analysis" {
		t.Errorf("expected third line, got %q", got)
	}
}

func TestResolveTitle_SkipsNoiseAndPageLines(t *testing.T) {
	input := "Copyright © 2020 Example Corp\nPage 1 of 20 introduction\nThe Definitive Reference Manual"
	got := resolveTitle(segment.Segment(input), nil)
	if got != "The Definitive Reference Manual" {
		t.Errorf("expected noise to be skipped, got %q", got)
	}
}

func TestResolveTitle_OnlyScansFirstTenLines(t *testing.T) {
	var input string
	for i := 0; i < 10; i++ {
		input += "w x y\n" // too short to qualify
	}
	input += "A Qualifying Title Beyond The Window"
	got := resolveTitle(segment.Segment(input), nil)
	if got != UnknownTitle {
		t.Errorf("expected scan to stop after 10 lines, got %q", got)
	}
}

func TestResolveTitle_FallsBackToFirstHeading(t *testing.T) {
	lines := segment.Segment("tiny\nalso tiny")
	headings := []Heading{
		{Level: LevelH1, Text: "1. Introduction", Page: 1},
		{Level: LevelH1, Text: "2. Methods", Page: 3},
	}
	got := resolveTitle(lines, headings)
	if got != "1. Introduction" {
		t.Errorf("expected first heading as fallback, got %q", got)
	}
}

func TestResolveTitle_UnknownWhenNothingQualifies(t *testing.T) {
	got := resolveTitle(nil, nil)
	if got != UnknownTitle {
		t.Errorf("expected %q, got %q", UnknownTitle, got)
	}
}

func TestResolveTitle_Deterministic(t *testing.T) {
	lines := segment.Segment("An Unambiguous Document Title\nBody text.")
	first := resolveTitle(lines, nil)
	for i := 0; i < 5; i++ {
		if got := resolveTitle(lines, nil); got != first {
			t.Fatalf("title resolution not deterministic: %q != %q", got, first)
		}
	}
}
