// Package sectioner turns parsed documents into ordered candidate sections.
//
// Each document is segmented in one of two modes, chosen independently per
// document: outline-driven when an outline is present, or a page-wise layout
// heuristic otherwise.
package sectioner

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mouniksai/Challenge-1b/internal/docmodel"
)

// Config controls segmentation behavior. All heuristic thresholds live here
// so they can be tuned and tested without touching the algorithm.
type Config struct {
	MaxBodyChars   int     // prompt-safety cap on section body length
	TitleFontRatio float64 // line font vs page body font to count as a heading
	MaxTitleLen    int     // headings are short; longer lines are body text
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxBodyChars:   1500,
		TitleFontRatio: 1.15,
		MaxTitleLen:    80,
	}
}

// Extract converts one document into its ordered candidate sections.
// A document with zero pages yields zero sections.
func Extract(doc *docmodel.Document, docIndex int, cfg Config) []docmodel.Section {
	if cfg.MaxBodyChars <= 0 {
		cfg.MaxBodyChars = 1500
	}
	if cfg.TitleFontRatio <= 0 {
		cfg.TitleFontRatio = 1.15
	}
	if cfg.MaxTitleLen <= 0 {
		cfg.MaxTitleLen = 80
	}

	if len(doc.Pages) == 0 {
		return nil
	}
	if len(doc.Outline) > 0 {
		return extractOutline(doc, docIndex, cfg)
	}
	return extractHeuristic(doc, docIndex, cfg)
}

// extractOutline creates one section per outline entry, spanning from the
// entry's target page up to (but excluding) the next entry's target page.
// Entries with out-of-range targets are skipped without breaking the rest.
func extractOutline(doc *docmodel.Document, docIndex int, cfg Config) []docmodel.Section {
	valid := make([]docmodel.OutlineEntry, 0, len(doc.Outline))
	for _, e := range doc.Outline {
		if e.Page >= 1 && e.Page <= len(doc.Pages) {
			valid = append(valid, e)
		}
	}

	var sections []docmodel.Section
	for i, entry := range valid {
		end := len(doc.Pages) + 1
		if i+1 < len(valid) {
			end = valid[i+1].Page
		}
		if end <= entry.Page {
			// Sibling entries on the same page each get that page.
			end = entry.Page + 1
		}

		var body strings.Builder
		for p := entry.Page; p < end; p++ {
			if body.Len() > 0 {
				body.WriteString("\n\n")
			}
			body.WriteString(doc.Pages[p-1].Text)
		}

		sections = append(sections, docmodel.Section{
			DocIndex: docIndex,
			Document: doc.Ref,
			Title:    entry.Title,
			Level:    entry.Level,
			Page:     entry.Page,
			Ordinal:  len(sections),
			Body:     truncateChars(NormalizeWhitespace(body.String()), cfg.MaxBodyChars),
		})
	}
	return sections
}

// extractHeuristic scans pages independently. A page with detectable title
// lines yields one section per title block; otherwise the whole page becomes
// a single section.
func extractHeuristic(doc *docmodel.Document, docIndex int, cfg Config) []docmodel.Section {
	var sections []docmodel.Section

	for _, page := range doc.Pages {
		blocks := titleBlocks(page, cfg)
		if len(blocks) == 0 {
			body := truncateChars(NormalizeWhitespace(page.Text), cfg.MaxBodyChars)
			if body == "" {
				continue
			}
			sections = append(sections, docmodel.Section{
				DocIndex: docIndex,
				Document: doc.Ref,
				Title:    fmt.Sprintf("Page %d", page.Number),
				Page:     page.Number,
				Ordinal:  len(sections),
				Body:     body,
			})
			continue
		}

		for _, b := range blocks {
			sections = append(sections, docmodel.Section{
				DocIndex: docIndex,
				Document: doc.Ref,
				Title:    b.title,
				Page:     page.Number,
				Ordinal:  len(sections),
				Body:     truncateChars(NormalizeWhitespace(b.body), cfg.MaxBodyChars),
			})
		}
	}
	return sections
}

type titleBlock struct {
	title string
	body  string
}

// titleBlocks splits a page into blocks headed by title lines. It returns nil
// when the page carries no usable layout hints or no line classifies as a
// title.
func titleBlocks(page docmodel.Page, cfg Config) []titleBlock {
	bodyFont := bodyFontSize(page.Lines)
	if bodyFont <= 0 {
		return nil
	}

	var blocks []titleBlock
	var preamble []string
	cur := -1

	for _, line := range page.Lines {
		if ClassifyTitle(line, bodyFont, cfg) {
			blocks = append(blocks, titleBlock{title: strings.TrimSpace(line.Text)})
			cur = len(blocks) - 1
			continue
		}
		if cur < 0 {
			preamble = append(preamble, line.Text)
			continue
		}
		blocks[cur].body += line.Text + "\n"
	}

	if len(blocks) == 0 {
		return nil
	}
	// Text above the first detected heading belongs to that heading's block.
	if len(preamble) > 0 {
		blocks[0].body = strings.Join(preamble, "\n") + "\n" + blocks[0].body
	}
	return blocks
}

// ClassifyTitle reports whether a line looks like a section heading: set in a
// larger font than the page's body text, short, containing at least one
// letter, and not ending in sentence punctuation.
func ClassifyTitle(line docmodel.Line, bodyFont float64, cfg Config) bool {
	text := strings.TrimSpace(line.Text)
	if text == "" || utf8.RuneCountInString(text) > cfg.MaxTitleLen {
		return false
	}
	if line.FontSize <= 0 || bodyFont <= 0 {
		return false
	}
	if line.FontSize < bodyFont*cfg.TitleFontRatio {
		return false
	}
	hasLetter := false
	for _, r := range text {
		if unicode.IsLetter(r) {
			hasLetter = true
			break
		}
	}
	if !hasLetter {
		return false
	}
	switch text[len(text)-1] {
	case '.', '!', '?', ',', ';', ':':
		return false
	}
	return true
}

// bodyFontSize estimates the dominant body font of a page as the font size
// covering the most characters.
func bodyFontSize(lines []docmodel.Line) float64 {
	weights := make(map[float64]int)
	for _, line := range lines {
		if line.FontSize > 0 {
			weights[line.FontSize] += utf8.RuneCountInString(line.Text)
		}
	}
	var best float64
	var bestWeight int
	for size, weight := range weights {
		if weight > bestWeight || (weight == bestWeight && size < best) {
			best = size
			bestWeight = weight
		}
	}
	return best
}

// NormalizeWhitespace collapses runs of spaces and tabs, strips control
// characters, and reduces blank-line runs to a single paragraph break.
func NormalizeWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	blankRun := 0
	for _, rawLine := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n") {
		line := strings.Join(strings.FieldsFunc(rawLine, func(r rune) bool {
			return r == ' ' || r == '\t' || (unicode.IsControl(r) && r != '\n')
		}), " ")
		if line == "" {
			blankRun++
			continue
		}
		if b.Len() > 0 {
			if blankRun > 0 {
				b.WriteString("\n\n")
			} else {
				b.WriteString("\n")
			}
		}
		blankRun = 0
		b.WriteString(line)
	}
	return b.String()
}

// truncateChars cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncateChars(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return strings.TrimSpace(s[:n])
}
