package assist

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// MaxDomainTerms caps how many model-suggested terms feed the keyword model.
const MaxDomainTerms = 12

var codeBlockRe = regexp.MustCompile("(?s)^```(?:json|text)?\\s*(.*?)\\s*```$")

// StripCodeBlock removes a surrounding markdown code fence, if any.
func StripCodeBlock(s string) string {
	s = strings.TrimSpace(s)
	if m := codeBlockRe.FindStringSubmatch(s); len(m) > 1 {
		return m[1]
	}
	return s
}

var ratingRe = regexp.MustCompile(`-?\d+(?:\.\d+)?`)

// ParseRating extracts the first number from an assistant reply and clamps it
// to the 1-10 rating scale.
func ParseRating(s string) (float64, error) {
	m := ratingRe.FindString(StripCodeBlock(s))
	if m == "" {
		return 0, fmt.Errorf("no rating in reply: %q", truncate(s, 80))
	}
	r, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, fmt.Errorf("parse rating %q: %w", m, err)
	}
	if r < 1 {
		r = 1
	}
	if r > 10 {
		r = 10
	}
	return r, nil
}

var listMarkerRe = regexp.MustCompile(`^(?:[-*•–]|\d+[.)])\s*`)

// ParseTerms splits an assistant reply into candidate domain terms. Replies
// come back as comma lists, bullet lists, or numbered lines; all are
// accepted.
func ParseTerms(s string) []string {
	s = StripCodeBlock(s)

	var terms []string
	for _, line := range strings.Split(s, "\n") {
		line = listMarkerRe.ReplaceAllString(strings.TrimSpace(line), "")
		for _, part := range strings.Split(line, ",") {
			term := strings.Trim(part, " \t\"'.")
			if term == "" {
				continue
			}
			terms = append(terms, term)
			if len(terms) >= MaxDomainTerms {
				return terms
			}
		}
	}
	return terms
}
