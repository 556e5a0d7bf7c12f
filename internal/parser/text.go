package parser

import (
	"io"
	"strings"

	"github.com/mouniksai/Challenge-1b/internal/docmodel"
)

// TextParser handles plain text files. Form feeds separate pages; a file
// without form feeds is a single page. Plain text carries no layout metadata,
// so no line hints are produced.
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader, filename string) (*docmodel.Document, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	doc := &docmodel.Document{
		Ref: docmodel.DocumentRef{
			Filename: filename,
			Title:    trimExt(filename, ".txt"),
		},
	}

	for i, pageText := range strings.Split(string(raw), "\f") {
		if strings.TrimSpace(pageText) == "" && i > 0 {
			continue
		}
		doc.Pages = append(doc.Pages, docmodel.Page{
			Number: len(doc.Pages) + 1,
			Text:   pageText,
		})
	}

	if len(doc.Pages) == 1 && strings.TrimSpace(doc.Pages[0].Text) == "" {
		doc.Pages = nil
	}
	return doc, nil
}
