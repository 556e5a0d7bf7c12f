// Package keyword builds the weighted keyword model a run scores sections
// against: persona tokens, job tokens, and optional model-suggested domain
// terms.
package keyword

import (
	"strings"
	"unicode"

	"github.com/mouniksai/Challenge-1b/internal/docmodel"
)

// MinTokenLen drops tokens too short to be meaningful keywords. Two-letter
// tokens stay because role abbreviations ("HR", "IT", "QA") matter.
const MinTokenLen = 2

// Weights are the fixed per-group scoring weights. The job-to-be-done weighs
// more than the persona; domain terms are a weak supporting signal.
type Weights struct {
	Persona float64
	Job     float64
	Domain  float64
}

func DefaultWeights() Weights {
	return Weights{Persona: 2, Job: 3, Domain: 1}
}

// Set holds the three disjoint keyword groups. Built once per run, immutable
// afterward.
type Set struct {
	Persona map[string]struct{}
	Job     map[string]struct{}
	Domain  map[string]struct{}
}

// Build derives the keyword set from a persona and optional domain terms.
// Groups are kept disjoint: job tokens win over persona tokens (they carry
// the higher weight), and domain terms already covered by either are dropped.
func Build(p docmodel.Persona, domainTerms []string) Set {
	job := TokenSet(p.Job)

	persona := TokenSet(p.Role)
	for tok := range job {
		delete(persona, tok)
	}

	domain := make(map[string]struct{})
	for _, term := range domainTerms {
		for _, tok := range Tokenize(term) {
			if _, ok := job[tok]; ok {
				continue
			}
			if _, ok := persona[tok]; ok {
				continue
			}
			domain[tok] = struct{}{}
		}
	}

	return Set{Persona: persona, Job: job, Domain: domain}
}

// Tokenize lower-cases text, splits on non-alphanumeric runes, and drops
// stop-words and short tokens.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := fields[:0]
	for _, f := range fields {
		if len(f) < MinTokenLen || stopwords[f] {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// TokenSet is Tokenize with duplicates removed.
func TokenSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range Tokenize(text) {
		set[tok] = struct{}{}
	}
	return set
}

var stopwords = map[string]bool{
	"an": true, "as": true, "at": true, "be": true, "by": true,
	"do": true, "go": true, "if": true, "in": true, "is": true,
	"it": true, "my": true, "no": true, "of": true, "on": true,
	"or": true, "so": true, "to": true, "up": true, "us": true,
	"we": true,
	"the": true, "and": true, "for": true, "are": true, "but": true,
	"not": true, "you": true, "all": true, "can": true, "her": true,
	"was": true, "one": true, "our": true, "out": true, "has": true,
	"have": true, "had": true, "his": true, "how": true, "its": true,
	"may": true, "new": true, "now": true, "old": true, "see": true,
	"two": true, "who": true, "did": true, "get": true, "use": true,
	"with": true, "from": true, "this": true, "that": true, "will": true,
	"each": true, "what": true, "when": true, "where": true, "which": true,
	"their": true, "them": true, "then": true, "there": true, "these": true,
	"they": true, "would": true, "about": true, "into": true, "more": true,
	"other": true, "some": true, "such": true, "than": true, "very": true,
	"also": true, "been": true, "were": true, "your": true, "over": true,
	"only": true, "most": true, "must": true, "should": true, "could": true,
	"doing": true, "being": true, "using": true, "based": true,
}
