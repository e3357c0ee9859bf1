package segment

import (
	"bufio"
	"regexp"
	"strconv"
	"strings"
)

// Line is a single non-blank line of document text with the page number
// in effect at its position.
type Line struct {
	Text  string
	Index int // 0-based index in the filtered line sequence
	Page  int
}

// Upstream extractors emit "Page <p> of <t>" before each page's content.
var pageMarkerRe = regexp.MustCompile(`Page (\d+) of (\d+)`)

// Segment splits raw text into non-blank trimmed lines and tags each with
// the current page. The page counter starts at 1 and advances when a page
// marker is seen; lines without a marker inherit the last-seen page. The
// marker line itself is kept and tagged like any other line.
func Segment(text string) []Line {
	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []Line
	currentPage := 1

	for scanner.Scan() {
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}
		if m := pageMarkerRe.FindStringSubmatch(raw); m != nil {
			if p, err := strconv.Atoi(m[1]); err == nil {
				currentPage = p
			}
		}
		lines = append(lines, Line{
			Text:  raw,
			Index: len(lines),
			Page:  currentPage,
		})
	}

	return lines
}
