package parser

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mouniksai/Challenge-1b/internal/docmodel"
)

// Sidecar outline files accompany PDFs that have no machine-readable table of
// contents: for "report.pdf" the loader looks for "report.json" with the
// shape {"title": ..., "outline": [{"level": "H1", "text": ..., "page": 3}]}.

type sidecarFile struct {
	Title   string `json:"title"`
	Outline []struct {
		Level string `json:"level"`
		Text  string `json:"text"`
		Page  int    `json:"page"`
	} `json:"outline"`
}

// SidecarPath derives the outline path for a document path.
func SidecarPath(docPath string) string {
	if i := strings.LastIndex(docPath, "."); i > 0 {
		return docPath[:i] + ".json"
	}
	return docPath + ".json"
}

// LoadSidecarOutline reads a sidecar outline file. A missing file is reported
// via os.IsNotExist on the returned error; callers treat that as "no outline".
func LoadSidecarOutline(path string) ([]docmodel.OutlineEntry, string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}

	var sc sidecarFile
	if err := json.Unmarshal(raw, &sc); err != nil {
		return nil, "", fmt.Errorf("parse outline %s: %w", path, err)
	}

	entries := make([]docmodel.OutlineEntry, 0, len(sc.Outline))
	for _, e := range sc.Outline {
		title := strings.TrimSpace(e.Text)
		if title == "" {
			continue
		}
		level := strings.ToUpper(strings.TrimSpace(e.Level))
		switch level {
		case "H1", "H2", "H3":
		default:
			level = "H3"
		}
		entries = append(entries, docmodel.OutlineEntry{
			Level: level,
			Title: title,
			Page:  e.Page,
		})
	}
	return entries, strings.TrimSpace(sc.Title), nil
}
