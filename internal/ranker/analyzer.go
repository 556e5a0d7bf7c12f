package ranker

import (
	"context"

	"github.com/mouniksai/Challenge-1b/internal/assist"
	"github.com/mouniksai/Challenge-1b/internal/docmodel"
)

// Analyzer judges a section's relevance to the persona. Implementations
// report ok=false when no judgment is available; callers branch only on that
// result, never on the implementation.
type Analyzer interface {
	Analyze(ctx context.Context, sec docmodel.ScoredSection, p docmodel.Persona) (rating float64, ok bool)
}

// Assisted rates sections through one bounded assistant call each.
type Assisted struct {
	Completer      assist.Completer
	MaxPromptChars int
	MaxTokens      int
}

func (a *Assisted) Analyze(ctx context.Context, sec docmodel.ScoredSection, p docmodel.Persona) (float64, bool) {
	prompt := assist.RatingPrompt(p, sec.Title, sec.Body, a.MaxPromptChars)
	reply, err := a.Completer.Complete(ctx, prompt, a.MaxTokens)
	if err != nil {
		return 0, false
	}
	rating, err := assist.ParseRating(reply)
	if err != nil {
		return 0, false
	}
	return rating, true
}

// LexicalOnly never produces a judgment; lexical scores pass through
// unchanged.
type LexicalOnly struct{}

func (LexicalOnly) Analyze(context.Context, docmodel.ScoredSection, docmodel.Persona) (float64, bool) {
	return 0, false
}

// Rerank re-scores the top N sections with the analyzer and re-sorts the full
// list. A section whose analysis is unavailable keeps its lexical score; when
// a judgment arrives, the new score is lexical + weight*rating, monotonic in
// both inputs. Sections outside the top N are untouched.
func Rerank(ctx context.Context, scored []docmodel.ScoredSection, p docmodel.Persona, a Analyzer, topN int, weight float64) []docmodel.ScoredSection {
	out := make([]docmodel.ScoredSection, len(scored))
	copy(out, scored)

	if topN > len(out) {
		topN = len(out)
	}
	for i := 0; i < topN; i++ {
		if rating, ok := a.Analyze(ctx, out[i], p); ok {
			out[i].Score += weight * rating
		}
	}

	SortDeterministic(out)
	return out
}
