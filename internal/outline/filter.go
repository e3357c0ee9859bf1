package outline

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"outliner/internal/segment"
)

// Noise patterns matched against the lower-cased line, anchored at the
// start. A noise line never produces a candidate.
var noisePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^copyright\s*©?`),
	regexp.MustCompile(`^version\s+\d+`),
	regexp.MustCompile(`^page\s+\d+`),
	regexp.MustCompile(`^\d{4}$`), // bare year
	regexp.MustCompile(`^©`),
	regexp.MustCompile(`^\d+$`),    // bare number
	regexp.MustCompile(`^[ivx]+$`), // roman numerals only
	regexp.MustCompile(`^www\.`),
	regexp.MustCompile(`^https?://`),
	regexp.MustCompile(`^\s*$`),
}

// isNoise reports whether a line matches a known non-heading pattern.
func isNoise(line string) bool {
	lower := strings.ToLower(line)
	for _, p := range noisePatterns {
		if p.MatchString(lower) {
			return true
		}
	}
	return false
}

// plausibleHeading applies structural plausibility checks to a candidate
// text after a syntactic match. Length and character-class checks come
// first; then a 0-2 context score decides whether the neighbors look like
// body text. A heading needs a score of at least 1.
func plausibleHeading(text string, index int, lines []segment.Line) bool {
	n := utf8.RuneCountInString(text)
	if n < 3 || n > 200 {
		return false
	}
	if isAllDigits(text) {
		return false
	}

	special := 0
	for _, r := range text {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != ' ' {
			special++
		}
	}
	if float64(special) > float64(n)*0.3 {
		return false
	}

	score := 0

	// A short or absent previous line suggests this line starts a section.
	if index <= 0 {
		score++
	} else if prev := strings.TrimSpace(lines[index-1].Text); utf8.RuneCountInString(prev) < 20 {
		score++
	}

	// A capitalized or absent next line suggests body text follows.
	if index >= len(lines)-1 {
		score++
	} else {
		next := strings.TrimSpace(lines[index+1].Text)
		if next == "" || startsUpper(next) {
			score++
		}
	}

	return score >= 1
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func startsUpper(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}

var (
	whitespaceRunRe = regexp.MustCompile(`\s+`)
	trailingDotsRe  = regexp.MustCompile(`\.+\s*\d*\s*$`)
)

// cleanHeadingText collapses whitespace runs and strips trailing dot
// leaders with optional page numbers left over from TOC formatting.
func cleanHeadingText(text string) string {
	text = whitespaceRunRe.ReplaceAllString(text, " ")
	text = trailingDotsRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}
