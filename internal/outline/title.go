package outline

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"outliner/internal/segment"
)

// UnknownTitle is returned when neither the leading lines nor the resolved
// outline yield a usable document title.
const UnknownTitle = "Unknown Document"

const titleScanLines = 10

var numberedPrefixRe = regexp.MustCompile(`^\d+\.`)

// resolveTitle picks the document title: the first of the leading lines
// that is long enough and is neither a numbered heading, a noise line, nor
// a page marker. Failing that, the first resolved heading; failing that,
// UnknownTitle.
func resolveTitle(lines []segment.Line, headings []Heading) string {
	limit := titleScanLines
	if len(lines) < limit {
		limit = len(lines)
	}

	for _, ln := range lines[:limit] {
		if utf8.RuneCountInString(ln.Text) <= 10 {
			continue
		}
		if numberedPrefixRe.MatchString(ln.Text) {
			continue
		}
		if isNoise(ln.Text) {
			continue
		}
		if strings.HasPrefix(strings.ToLower(ln.Text), "page ") {
			continue
		}
		return ln.Text
	}

	if len(headings) > 0 {
		return headings[0].Text
	}
	return UnknownTitle
}
