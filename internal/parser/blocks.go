package parser

import (
	"strings"

	"github.com/mouniksai/Challenge-1b/internal/docmodel"
)

// block is an intermediate unit for formats with explicit headings
// (markdown, HTML, DOCX): a heading plus the text up to the next heading.
type block struct {
	level int // heading level, 0 for preamble text before the first heading
	title string
	parts []string
}

func (b *block) add(text string) {
	if text != "" {
		b.parts = append(b.parts, text)
	}
}

func levelLabel(level int) string {
	switch {
	case level <= 1:
		return "H1"
	case level == 2:
		return "H2"
	default:
		return "H3"
	}
}

// blocksToDocument maps each heading block to one synthetic page and one
// outline entry, so heading-structured formats flow through the same
// outline-driven segmentation as PDFs with a table of contents.
func blocksToDocument(ref docmodel.DocumentRef, blocks []block) *docmodel.Document {
	doc := &docmodel.Document{Ref: ref}
	for _, b := range blocks {
		text := strings.TrimSpace(strings.Join(b.parts, "\n\n"))
		if b.title == "" && text == "" {
			continue
		}

		pageText := text
		if b.title != "" {
			if text != "" {
				pageText = b.title + "\n\n" + text
			} else {
				pageText = b.title
			}
		}

		doc.Pages = append(doc.Pages, docmodel.Page{
			Number: len(doc.Pages) + 1,
			Text:   pageText,
		})
		if b.title != "" {
			doc.Outline = append(doc.Outline, docmodel.OutlineEntry{
				Level: levelLabel(b.level),
				Title: b.title,
				Page:  len(doc.Pages),
			})
		}
	}
	return doc
}
