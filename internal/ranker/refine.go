package ranker

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/mouniksai/Challenge-1b/internal/assist"
	"github.com/mouniksai/Challenge-1b/internal/docmodel"
)

// Refiner produces the refined excerpt for each final top-K section: the
// representative paragraph, compressed by the assistant when one is
// available, truncated otherwise.
type Refiner struct {
	Completer       assist.Completer // nil means lexical-only operation
	MaxExcerptChars int
	MaxPromptChars  int
	MaxTokens       int
	MinParagraph    int // bodies at or below this length are used whole
}

// Refine builds one RefinedSection per input section, preserving document,
// title, and page reference. Assistant failures degrade that section's
// excerpt to the truncated paragraph; they never drop the section.
func (r *Refiner) Refine(ctx context.Context, secs []docmodel.ScoredSection, p docmodel.Persona) []docmodel.RefinedSection {
	maxChars := r.MaxExcerptChars
	if maxChars <= 0 {
		maxChars = 250
	}
	minPara := r.MinParagraph
	if minPara <= 0 {
		minPara = 300
	}

	refined := make([]docmodel.RefinedSection, 0, len(secs))
	for _, sec := range secs {
		para := RepresentativeParagraph(sec.Body, minPara)
		if para == "" {
			para = sec.Title
		}

		text := r.compress(ctx, p, para, maxChars)
		if text == "" {
			text = truncateExcerpt(para, maxChars)
		}

		refined = append(refined, docmodel.RefinedSection{
			ScoredSection: sec,
			RefinedText:   text,
		})
	}
	return refined
}

func (r *Refiner) compress(ctx context.Context, p docmodel.Persona, para string, maxChars int) string {
	if r.Completer == nil {
		return ""
	}
	prompt := assist.RefinePrompt(p, para, r.MaxPromptChars)
	reply, err := r.Completer.Complete(ctx, prompt, r.MaxTokens)
	if err != nil {
		return ""
	}
	reply = strings.TrimSpace(assist.StripCodeBlock(reply))
	return truncateExcerpt(reply, maxChars)
}

// RepresentativeParagraph picks the longest contiguous non-empty paragraph of
// a section body, or the whole body when it is short enough already.
func RepresentativeParagraph(body string, minLen int) string {
	body = strings.TrimSpace(body)
	if len(body) <= minLen {
		return body
	}

	var best string
	for _, para := range strings.Split(body, "\n\n") {
		para = strings.TrimSpace(para)
		if len(para) > len(best) {
			best = para
		}
	}
	return best
}

// truncateExcerpt cuts s to at most n bytes without splitting a UTF-8
// sequence.
func truncateExcerpt(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return strings.TrimSpace(s[:n])
}
