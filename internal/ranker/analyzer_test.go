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

// fakeCompleter answers prompts from a lookup function.
type fakeCompleter struct {
	reply func(prompt string) (string, error)
	calls int
}

func (f *fakeCompleter) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	f.calls++
	return f.reply(prompt)
}

var testPersona = docmodel.Persona{Role: "researcher", Job: "literature review"}

func scoredList() []docmodel.ScoredSection {
	return []docmodel.ScoredSection{
		{Section: section(0, 1, 0, "first", "aaa"), Score: 9},
		{Section: section(0, 2, 1, "second", "bbb"), Score: 6},
		{Section: section(1, 1, 0, "third", "ccc"), Score: 3},
	}
}

func TestRerank_LexicalOnlyIsNoOp(t *testing.T) {
	in := scoredList()
	out := Rerank(context.Background(), in, testPersona, LexicalOnly{}, 10, 2.0)

	require.Len(t, out, 3)
	for i := range in {
		assert.Equal(t, in[i].Title, out[i].Title)
		assert.Equal(t, in[i].Score, out[i].Score)
	}
}

func TestRerank_DoesNotMutateInput(t *testing.T) {
	in := scoredList()
	fc := &fakeCompleter{reply: func(string) (string, error) { return "10", nil }}
	a := &Assisted{Completer: fc, MaxPromptChars: 500, MaxTokens: 50}

	_ = Rerank(context.Background(), in, testPersona, a, 10, 2.0)
	assert.Equal(t, 9.0, in[0].Score, "input slice must stay untouched")
}

func TestRerank_AssistedCombinesScores(t *testing.T) {
	// The weakest lexical section gets the strongest judgment and overtakes.
	fc := &fakeCompleter{reply: func(prompt string) (string, error) {
		if strings.Contains(prompt, "Section: third") {
			return "10", nil
		}
		return "1", nil
	}}
	a := &Assisted{Completer: fc, MaxPromptChars: 500, MaxTokens: 50}

	out := Rerank(context.Background(), scoredList(), testPersona, a, 10, 2.0)
	require.Len(t, out, 3)

	// third: 3 + 2.0*10 = 23, first: 9 + 2 = 11, second: 6 + 2 = 8.
	assert.Equal(t, "third", out[0].Title)
	assert.InDelta(t, 23.0, out[0].Score, 1e-9)
	assert.Equal(t, "first", out[1].Title)
	assert.Equal(t, "second", out[2].Title)
}

func TestRerank_OnlyTopNAnalyzed(t *testing.T) {
	fc := &fakeCompleter{reply: func(string) (string, error) { return "5", nil }}
	a := &Assisted{Completer: fc, MaxPromptChars: 500, MaxTokens: 50}

	out := Rerank(context.Background(), scoredList(), testPersona, a, 2, 2.0)

	assert.Equal(t, 2, fc.calls)
	// The third section keeps its lexical score.
	for _, s := range out {
		if s.Title == "third" {
			assert.InDelta(t, 3.0, s.Score, 1e-9)
		}
	}
}

func TestRerank_FailedCallKeepsLexicalScore(t *testing.T) {
	fc := &fakeCompleter{reply: func(string) (string, error) { return "", errors.New("boom") }}
	a := &Assisted{Completer: fc, MaxPromptChars: 500, MaxTokens: 50}

	in := scoredList()
	out := Rerank(context.Background(), in, testPersona, a, 10, 2.0)

	require.Len(t, out, 3)
	for i := range in {
		assert.Equal(t, in[i].Title, out[i].Title)
		assert.Equal(t, in[i].Score, out[i].Score)
	}
}

func TestRerank_UnparseableReplyKeepsLexicalScore(t *testing.T) {
	fc := &fakeCompleter{reply: func(string) (string, error) { return "no idea, sorry", nil }}
	a := &Assisted{Completer: fc, MaxPromptChars: 500, MaxTokens: 50}

	out := Rerank(context.Background(), scoredList(), testPersona, a, 10, 2.0)
	assert.Equal(t, 9.0, out[0].Score)
}

func TestRerank_Deterministic(t *testing.T) {
	reply := func(string) (string, error) { return "7", nil }
	a1 := &Assisted{Completer: &fakeCompleter{reply: reply}, MaxPromptChars: 500, MaxTokens: 50}
	a2 := &Assisted{Completer: &fakeCompleter{reply: reply}, MaxPromptChars: 500, MaxTokens: 50}

	out1 := Rerank(context.Background(), scoredList(), testPersona, a1, 10, 2.0)
	out2 := Rerank(context.Background(), scoredList(), testPersona, a2, 10, 2.0)
	assert.Equal(t, out1, out2)
}
