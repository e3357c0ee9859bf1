package outline

import (
	"regexp"
	"strings"

	"outliner/internal/segment"
)

// Fixed vocabulary of structural section names, matched case-insensitively
// against the whole trimmed line. Order matters: the first matching pattern
// wins, so more specific entries come before looser ones within a level.
var structuralPatterns = []struct {
	re    *regexp.Regexp
	level Level
}{
	{regexp.MustCompile(`^(acknowledgements?)$`), LevelH1},
	{regexp.MustCompile(`^(abstract)$`), LevelH1},
	{regexp.MustCompile(`^(introduction)$`), LevelH1},
	{regexp.MustCompile(`^(conclusion)$`), LevelH1},
	{regexp.MustCompile(`^(references?)$`), LevelH1},
	{regexp.MustCompile(`^(revision\s+history)$`), LevelH1},
	{regexp.MustCompile(`^(table\s+of\s+contents?)$`), LevelH1},

	{regexp.MustCompile(`^(intended\s+audience)$`), LevelH2},
	{regexp.MustCompile(`^(career\s+paths?.*)$`), LevelH2},
	{regexp.MustCompile(`^(learning\s+objectives?)$`), LevelH2},
	{regexp.MustCompile(`^(entry\s+requirements?)$`), LevelH2},
	{regexp.MustCompile(`^(business\s+outcomes?)$`), LevelH2},
	{regexp.MustCompile(`^(content)$`), LevelH2},
	{regexp.MustCompile(`^(trademarks?)$`), LevelH2},
}

// DetectStructural matches whole lines against the fixed section
// vocabulary. The emitted candidate keeps the line's original casing.
func DetectStructural(lines []segment.Line) []Candidate {
	var out []Candidate

	for _, ln := range lines {
		if isNoise(ln.Text) {
			continue
		}
		lower := strings.ToLower(strings.TrimSpace(ln.Text))

		for _, sp := range structuralPatterns {
			if !sp.re.MatchString(lower) {
				continue
			}
			if plausibleHeading(ln.Text, ln.Index, lines) {
				out = append(out, Candidate{
					Level:      sp.level,
					Text:       ln.Text,
					Page:       ln.Page,
					Position:   ln.Index,
					Confidence: confidenceStructural,
				})
			}
			break
		}
	}

	return out
}
