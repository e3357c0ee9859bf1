package outline

import (
	"sort"
	"strings"
)

type dedupeKey struct {
	text string
	page int
}

// resolve merges candidates from all detectors into the final heading
// list. Candidates are ranked highest-confidence-first (earliest position
// breaks ties), the first occurrence of each (lower-cased text, page) key
// is kept, and the survivors are re-sorted by their own source position to
// restore document order. When two retained candidates share a position
// the stable sort preserves the confidence ranking.
func resolve(candidates []Candidate) []Heading {
	ranked := make([]Candidate, len(candidates))
	copy(ranked, candidates)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Confidence != ranked[j].Confidence {
			return ranked[i].Confidence > ranked[j].Confidence
		}
		return ranked[i].Position < ranked[j].Position
	})

	seen := make(map[dedupeKey]bool, len(ranked))
	kept := ranked[:0]
	for _, c := range ranked {
		k := dedupeKey{
			text: strings.ToLower(strings.TrimSpace(c.Text)),
			page: c.Page,
		}
		if seen[k] {
			continue
		}
		seen[k] = true
		kept = append(kept, c)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Position < kept[j].Position
	})

	out := make([]Heading, 0, len(kept))
	for _, c := range kept {
		out = append(out, Heading{Level: c.Level, Text: c.Text, Page: c.Page})
	}
	return out
}
