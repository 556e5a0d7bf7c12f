// Package ranker implements the scoring stages of the pipeline: fast lexical
// scoring, optional assisted re-ranking of the top candidates, and refinement
// of the final top-K.
package ranker

import (
	"sort"

	"github.com/mouniksai/Challenge-1b/internal/docmodel"
	"github.com/mouniksai/Challenge-1b/internal/keyword"
)

// Score computes the lexical relevance score of every section and returns a
// new list sorted by descending score. Each keyword counts at most once per
// section, so a single repeated word cannot dominate. This stage never calls
// the assistant.
func Score(sections []docmodel.Section, ks keyword.Set, w keyword.Weights) []docmodel.ScoredSection {
	scored := make([]docmodel.ScoredSection, 0, len(sections))
	for _, sec := range sections {
		tokens := keyword.TokenSet(sec.Title + " " + sec.Body)

		score := w.Persona*distinctMatches(ks.Persona, tokens) +
			w.Job*distinctMatches(ks.Job, tokens) +
			w.Domain*distinctMatches(ks.Domain, tokens) +
			levelBonus(sec.Level)

		scored = append(scored, docmodel.ScoredSection{Section: sec, Score: score})
	}

	SortDeterministic(scored)
	return scored
}

func distinctMatches(group, tokens map[string]struct{}) float64 {
	n := 0
	for tok := range group {
		if _, ok := tokens[tok]; ok {
			n++
		}
	}
	return float64(n)
}

// levelBonus favors top-level headings when the document carried an outline.
func levelBonus(level string) float64 {
	switch level {
	case "H1":
		return 2
	case "H2":
		return 1
	}
	return 0
}

// SortDeterministic orders sections by descending score, breaking ties by
// original document order: earlier document, then earlier page, then earlier
// ordinal. Identical input always produces identical order.
func SortDeterministic(scored []docmodel.ScoredSection) {
	sort.Slice(scored, func(i, j int) bool {
		a, b := scored[i], scored[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.DocIndex != b.DocIndex {
			return a.DocIndex < b.DocIndex
		}
		if a.Page != b.Page {
			return a.Page < b.Page
		}
		return a.Ordinal < b.Ordinal
	})
}

// AssignRanks sets the 1-based importance rank after the final sort.
func AssignRanks(scored []docmodel.ScoredSection) {
	for i := range scored {
		scored[i].Rank = i + 1
	}
}
