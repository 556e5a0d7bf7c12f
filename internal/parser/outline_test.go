package parser

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSidecarPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"input/guide.pdf", "input/guide.json"},
		{"guide.pdf", "guide.json"},
		{"noext", "noext.json"},
	}
	for _, tt := range tests {
		if got := SidecarPath(tt.in); got != tt.want {
			t.Errorf("SidecarPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLoadSidecarOutline(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "guide.json")
	content := `{
		"title": "South of France Guide",
		"outline": [
			{"level": "H1", "text": "Cities", "page": 1},
			{"level": "h2", "text": "Nice", "page": 2},
			{"level": "weird", "text": "Cuisine", "page": 5},
			{"level": "H1", "text": "   ", "page": 7}
		]
	}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	entries, title, err := LoadSidecarOutline(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if title != "South of France Guide" {
		t.Errorf("expected title %q, got %q", "South of France Guide", title)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries (blank title dropped), got %d", len(entries))
	}
	if entries[0].Level != "H1" || entries[0].Title != "Cities" || entries[0].Page != 1 {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].Level != "H2" {
		t.Errorf("level should be upper-cased, got %q", entries[1].Level)
	}
	if entries[2].Level != "H3" {
		t.Errorf("unknown level should default to H3, got %q", entries[2].Level)
	}
}

func TestLoadSidecarOutline_Missing(t *testing.T) {
	_, _, err := LoadSidecarOutline(filepath.Join(t.TempDir(), "nope.json"))
	if !os.IsNotExist(err) {
		t.Errorf("expected IsNotExist error, got %v", err)
	}
}

func TestLoadSidecarOutline_Malformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(path, []byte("{broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := LoadSidecarOutline(path); err == nil {
		t.Error("expected error for malformed outline")
	}
}

func TestForFile(t *testing.T) {
	tests := []struct {
		filename string
		ok       bool
	}{
		{"a.pdf", true},
		{"a.txt", true},
		{"a.md", true},
		{"a.html", true},
		{"a.docx", true},
		{"a.csv", true},
		{"a.exe", false},
		{"a", false},
	}
	for _, tt := range tests {
		_, err := ForFile(tt.filename)
		if (err == nil) != tt.ok {
			t.Errorf("ForFile(%q): err = %v, want ok=%v", tt.filename, err, tt.ok)
		}
	}
}
