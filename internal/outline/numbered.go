package outline

import (
	"regexp"

	"outliner/internal/segment"
)

var (
	numberedH1Re = regexp.MustCompile(`^(\d+)\.\s+(.+)$`)
	numberedH2Re = regexp.MustCompile(`^(\d+\.\d+)\s+(.+)$`)
)

// DetectNumbered finds lines with numeric section prefixes: "1. Title"
// becomes an H1 candidate and "1.1 Title" an H2 candidate. A matched line
// that fails the plausibility check produces nothing but does not block
// other detectors from seeing the same line.
func DetectNumbered(lines []segment.Line) []Candidate {
	var out []Candidate

	for _, ln := range lines {
		if isNoise(ln.Text) {
			continue
		}

		if m := numberedH1Re.FindStringSubmatch(ln.Text); m != nil {
			text := cleanHeadingText(m[2])
			if plausibleHeading(text, ln.Index, lines) {
				out = append(out, Candidate{
					Level:      LevelH1,
					Text:       m[1] + ". " + text,
					Page:       ln.Page,
					Position:   ln.Index,
					Confidence: confidenceNumberedH1,
				})
			}
			continue
		}

		if m := numberedH2Re.FindStringSubmatch(ln.Text); m != nil {
			text := cleanHeadingText(m[2])
			if plausibleHeading(text, ln.Index, lines) {
				out = append(out, Candidate{
					Level:      LevelH2,
					Text:       m[1] + " " + text,
					Page:       ln.Page,
					Position:   ln.Index,
					Confidence: confidenceNumberedH2,
				})
			}
		}
	}

	return out
}
