// Package outline reconstructs a document outline (title plus H1/H2
// headings with page numbers) from flat, page-marked text. It works purely
// from line text and position: several independent detectors propose
// candidates, a validity filter rejects noise, and a ranking pass merges
// everything into one ordered, de-duplicated result.
package outline

import "fmt"

// Level is the hierarchy level of a heading.
type Level int

const (
	LevelH1 Level = iota + 1
	LevelH2
)

// String returns the wire representation of the level.
func (l Level) String() string {
	switch l {
	case LevelH1:
		return "H1"
	case LevelH2:
		return "H2"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the level as its "H1"/"H2" string form.
func (l Level) MarshalJSON() ([]byte, error) {
	return []byte(`"` + l.String() + `"`), nil
}

// UnmarshalJSON decodes "H1"/"H2" back into a Level.
func (l *Level) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"H1"`:
		*l = LevelH1
	case `"H2"`:
		*l = LevelH2
	default:
		return fmt.Errorf("unknown heading level %s", data)
	}
	return nil
}

// Candidate is an unconfirmed heading proposal from one detector.
// Position is the index of the source line; Confidence is a fixed
// per-detector constant used only for deduplication tie-breaking.
type Candidate struct {
	Level      Level
	Text       string
	Page       int
	Position   int
	Confidence float64
}

// Per-detector confidence weights. Higher-confidence candidates win when
// two detectors propose the same heading.
const (
	confidenceNumberedH1 = 0.9
	confidenceNumberedH2 = 0.8
	confidenceStructural = 0.6
	confidenceTOC        = 0.5
)

// Heading is a finalized, deduplicated outline entry.
type Heading struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
	Page  int    `json:"page"`
}

// Outline is the externally visible result of an extraction.
type Outline struct {
	Title   string    `json:"title"`
	Outline []Heading `json:"outline"`
}
