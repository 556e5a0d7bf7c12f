package assist

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mouniksai/Challenge-1b/internal/docmodel"
)

// Prompt builders are pure functions: truncation and rendering are testable
// without any network or process call.

// DomainTermsPrompt asks the assistant for subject-matter vocabulary beyond
// the persona and job wording.
func DomainTermsPrompt(p docmodel.Persona) string {
	var sb strings.Builder
	sb.WriteString("You help rank document sections for a specific reader.\n")
	fmt.Fprintf(&sb, "Reader role: %s\n", p.Role)
	fmt.Fprintf(&sb, "Task: %s\n\n", p.Job)
	sb.WriteString("List up to 10 domain-specific keywords this reader would look for, beyond the words already in the role and task. ")
	sb.WriteString("Respond with ONLY a comma-separated list, no other text.")
	return sb.String()
}

// RatingPrompt asks for a single 1-10 relevance rating of one section.
func RatingPrompt(p docmodel.Persona, title, body string, maxChars int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Rate how relevant this document section is for a %s whose task is: %s\n\n", p.Role, p.Job)
	fmt.Fprintf(&sb, "Section: %s\n", truncate(title, 120))
	fmt.Fprintf(&sb, "Content: %s\n\n", truncate(body, maxChars))
	sb.WriteString("Answer with a single number from 1 (irrelevant) to 10 (essential). Respond with ONLY the number.")
	return sb.String()
}

// RefinePrompt asks for a compressed excerpt of a representative paragraph.
func RefinePrompt(p docmodel.Persona, paragraph string, maxChars int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Condense the following passage for a %s whose task is: %s\n\n", p.Role, p.Job)
	fmt.Fprintf(&sb, "Passage: %s\n\n", truncate(paragraph, maxChars))
	sb.WriteString("Respond with at most two sentences keeping only what matters for the task. No preamble.")
	return sb.String()
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return strings.TrimSpace(s[:n]) + "..."
}
