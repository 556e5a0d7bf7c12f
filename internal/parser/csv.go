package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/mouniksai/Challenge-1b/internal/docmodel"
)

// CSVParser handles CSV files. Rows are rendered as "header: value" text and
// grouped into batches, one page per batch.
type CSVParser struct{}

func (p *CSVParser) Parse(r io.Reader, filename string) (*docmodel.Document, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	ref := docmodel.DocumentRef{
		Filename: filename,
		Title:    trimExt(filename, ".csv"),
	}
	if len(records) == 0 {
		return &docmodel.Document{Ref: ref}, nil
	}

	// First row is headers.
	headers := records[0]
	dataRows := records[1:]

	const batchSize = 20
	var blocks []block
	for i := 0; i < len(dataRows); i += batchSize {
		end := i + batchSize
		if end > len(dataRows) {
			end = len(dataRows)
		}

		var text strings.Builder
		for _, row := range dataRows[i:end] {
			for j, cell := range row {
				if j < len(headers) {
					text.WriteString(headers[j] + ": " + cell)
				} else {
					text.WriteString(cell)
				}
				if j < len(row)-1 {
					text.WriteString(", ")
				}
			}
			text.WriteString("\n")
		}

		blocks = append(blocks, block{
			level: 3,
			title: fmt.Sprintf("Rows %d-%d", i+2, end+1), // 1-indexed, skip header
			parts: []string{text.String()},
		})
	}

	return blocksToDocument(ref, blocks), nil
}
