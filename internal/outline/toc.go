package outline

import (
	"regexp"
	"strconv"
	"strings"

	"outliner/internal/segment"
)

// tocState is the scanning state of the table-of-contents detector.
type tocState int

const (
	tocOutside tocState = iota
	tocInside
)

// TOC entry patterns: "1. Introduction 5" and "1.1 Overview 7". The title
// capture is non-greedy so the trailing number is read as the target page.
var (
	tocH1Re = regexp.MustCompile(`^(\d+)\.\s+(.+?)\s+(\d+)$`)
	tocH2Re = regexp.MustCompile(`^(\d+\.\d+)\s+(.+?)\s+(\d+)$`)
)

// Lines that end a contents block: the first real page of content, or one
// of the sections that conventionally follows the TOC.
var tocExitSections = map[string]bool{
	"abstract":         true,
	"introduction":     true,
	"acknowledgements": true,
}

// DetectTOC scans for a contents listing and extracts its entries. A line
// containing "table of contents" enters the scanning state; a "page ..."
// line or a known section name leaves it. Entry pages come from the
// entry's own trailing number, not from the page the TOC is printed on:
// TOC entries describe target pages. No plausibility filter is applied —
// the low confidence weight already marks these as weak proposals.
func DetectTOC(lines []segment.Line) []Candidate {
	var out []Candidate
	state := tocOutside

	for _, ln := range lines {
		lower := strings.ToLower(strings.TrimSpace(ln.Text))

		if strings.Contains(lower, "table of contents") {
			state = tocInside
			continue
		}

		if state == tocInside && (strings.HasPrefix(lower, "page ") || tocExitSections[lower]) {
			state = tocOutside
			continue
		}

		if state != tocInside || ln.Text == "" {
			continue
		}

		if m := tocH1Re.FindStringSubmatch(ln.Text); m != nil {
			page, _ := strconv.Atoi(m[3])
			out = append(out, Candidate{
				Level:      LevelH1,
				Text:       m[1] + " " + m[2],
				Page:       page,
				Position:   ln.Index,
				Confidence: confidenceTOC,
			})
			continue
		}

		if m := tocH2Re.FindStringSubmatch(ln.Text); m != nil {
			page, _ := strconv.Atoi(m[3])
			out = append(out, Candidate{
				Level:      LevelH2,
				Text:       m[1] + " " + m[2],
				Page:       page,
				Position:   ln.Index,
				Confidence: confidenceTOC,
			})
		}
	}

	return out
}
