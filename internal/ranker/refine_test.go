package ranker

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mouniksai/Challenge-1b/internal/docmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepresentativeParagraph_LongestWins(t *testing.T) {
	body := "short intro\n\n" +
		"this is the longest paragraph of the section body by a clear margin, " +
		"full of the detail a reader actually wants\n\n" +
		"closing note"

	para := RepresentativeParagraph(body, 50)
	assert.True(t, strings.HasPrefix(para, "this is the longest paragraph"))
}

func TestRepresentativeParagraph_ShortBodyUsedWhole(t *testing.T) {
	body := "one\n\ntwo"
	assert.Equal(t, body, RepresentativeParagraph(body, 300))
}

func TestRefine_WithoutAssistantTruncatesParagraph(t *testing.T) {
	long := strings.Repeat("relevant detail ", 40) // ~640 bytes
	sec := docmodel.ScoredSection{Section: section(0, 3, 0, "Forms", "intro\n\n"+long), Score: 8}

	r := &Refiner{MaxExcerptChars: 100, MinParagraph: 50}
	out := r.Refine(context.Background(), []docmodel.ScoredSection{sec}, testPersona)

	require.Len(t, out, 1)
	assert.Equal(t, "Forms", out[0].Title)
	assert.Equal(t, 3, out[0].Page)
	assert.LessOrEqual(t, len(out[0].RefinedText), 100)
	assert.True(t, strings.HasPrefix(out[0].RefinedText, "relevant detail"))
}

func TestRefine_AssistantCompressesParagraph(t *testing.T) {
	fc := &fakeCompleter{reply: func(string) (string, error) {
		return "A tight two-sentence summary.", nil
	}}
	sec := docmodel.ScoredSection{Section: section(0, 1, 0, "Forms", strings.Repeat("x ", 300)), Score: 8}

	r := &Refiner{Completer: fc, MaxExcerptChars: 250, MaxPromptChars: 500, MaxTokens: 50}
	out := r.Refine(context.Background(), []docmodel.ScoredSection{sec}, testPersona)

	require.Len(t, out, 1)
	assert.Equal(t, "A tight two-sentence summary.", out[0].RefinedText)
	assert.Equal(t, 1, fc.calls)
}

func TestRefine_AssistantFailureFallsBackPerSection(t *testing.T) {
	fc := &fakeCompleter{reply: func(string) (string, error) { return "", errors.New("down") }}
	body := strings.Repeat("useful content ", 30)
	sec := docmodel.ScoredSection{Section: section(0, 1, 0, "Forms", body), Score: 8}

	r := &Refiner{Completer: fc, MaxExcerptChars: 80, MaxPromptChars: 500, MaxTokens: 50}
	out := r.Refine(context.Background(), []docmodel.ScoredSection{sec}, testPersona)

	require.Len(t, out, 1)
	assert.True(t, strings.HasPrefix(out[0].RefinedText, "useful content"))
	assert.LessOrEqual(t, len(out[0].RefinedText), 80)
}

func TestRefine_EmptyBodyFallsBackToTitle(t *testing.T) {
	sec := docmodel.ScoredSection{Section: section(0, 1, 0, "Only A Title", ""), Score: 1}

	r := &Refiner{MaxExcerptChars: 250}
	out := r.Refine(context.Background(), []docmodel.ScoredSection{sec}, testPersona)

	require.Len(t, out, 1)
	assert.Equal(t, "Only A Title", out[0].RefinedText)
}

func TestRefine_PreservesCount(t *testing.T) {
	secs := scoredList()
	r := &Refiner{MaxExcerptChars: 250}
	out := r.Refine(context.Background(), secs, testPersona)
	assert.Len(t, out, len(secs))
}
