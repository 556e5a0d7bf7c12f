package parser

import (
	"fmt"
	"io"
	"math"
	"os"
	"sort"

	"github.com/mouniksai/Challenge-1b/internal/docmodel"
	pdflib "github.com/ledongthuc/pdf"
)

// PDFParser handles PDF files. Beyond plain page text it collects per-line
// font sizes so the sectioner can run heading heuristics on documents that
// carry no outline.
type PDFParser struct{}

func (p *PDFParser) Parse(r io.Reader, filename string) (*docmodel.Document, error) {
	// ledongthuc/pdf requires a ReadSeeker+size, so we write to a temp file.
	tmp, err := os.CreateTemp("", "analyzer-pdf-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	f, reader, err := pdflib.Open(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	doc := &docmodel.Document{
		Ref: docmodel.DocumentRef{
			Filename: filename,
			Title:    trimExt(filename, ".pdf"),
		},
	}

	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			doc.Pages = append(doc.Pages, docmodel.Page{Number: i})
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			text = ""
		}
		doc.Pages = append(doc.Pages, docmodel.Page{
			Number: i,
			Text:   text,
			Lines:  pageLines(page),
		})
	}

	return doc, nil
}

// pageLines groups the page's positioned text fragments into visual lines,
// top to bottom, each carrying the largest font size seen on the line.
func pageLines(page pdflib.Page) (lines []docmodel.Line) {
	// Content() can panic on malformed content streams; a page without
	// layout hints still works, it just falls back to whole-page sections.
	defer func() {
		if recover() != nil {
			lines = nil
		}
	}()

	content := page.Content()
	if len(content.Text) == 0 {
		return nil
	}

	// PDF Y grows upward, so larger Y means higher on the page.
	byRow := make(map[int][]pdflib.Text)
	for _, t := range content.Text {
		row := int(math.Round(t.Y))
		byRow[row] = append(byRow[row], t)
	}

	rows := make([]int, 0, len(byRow))
	for row := range byRow {
		rows = append(rows, row)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(rows)))

	for _, row := range rows {
		frags := byRow[row]
		sort.Slice(frags, func(i, j int) bool { return frags[i].X < frags[j].X })

		var text string
		var size float64
		for _, frag := range frags {
			text += frag.S
			if frag.FontSize > size {
				size = frag.FontSize
			}
		}
		lines = append(lines, docmodel.Line{Text: text, FontSize: size})
	}
	return lines
}
