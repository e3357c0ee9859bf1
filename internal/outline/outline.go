package outline

import (
	"sync"

	"outliner/internal/segment"
)

// Detector proposes heading candidates from a segmented line sequence.
// Detectors are pure functions over immutable input and may run
// concurrently; resolve imposes a deterministic total order afterward.
type Detector func(lines []segment.Line) []Candidate

var detectors = []Detector{
	DetectNumbered,
	DetectStructural,
	DetectTOC,
}

// Extract builds an outline from raw page-marked document text. It never
// fails: lines that match nothing simply contribute no candidates, and
// empty input yields an empty outline titled UnknownTitle.
func Extract(text string) Outline {
	lines := segment.Segment(text)

	results := make([][]Candidate, len(detectors))
	var wg sync.WaitGroup
	for i, detect := range detectors {
		wg.Add(1)
		go func(i int, detect Detector) {
			defer wg.Done()
			results[i] = detect(lines)
		}(i, detect)
	}
	wg.Wait()

	var candidates []Candidate
	for _, r := range results {
		candidates = append(candidates, r...)
	}

	headings := resolve(candidates)
	return Outline{
		Title:   resolveTitle(lines, headings),
		Outline: headings,
	}
}
