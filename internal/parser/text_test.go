package parser

import (
	"strings"
	"testing"
)

func TestTextParser_SinglePage(t *testing.T) {
	p := &TextParser{}
	doc, err := p.Parse(strings.NewReader("Hello world.\nSecond line."), "notes.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Ref.Title != "notes" {
		t.Errorf("expected title %q, got %q", "notes", doc.Ref.Title)
	}
	if len(doc.Pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(doc.Pages))
	}
	if doc.Pages[0].Number != 1 {
		t.Errorf("expected page number 1, got %d", doc.Pages[0].Number)
	}
	if !strings.Contains(doc.Pages[0].Text, "Hello world.") {
		t.Errorf("page text mismatch: %q", doc.Pages[0].Text)
	}
}

func TestTextParser_FormFeedSplitsPages(t *testing.T) {
	p := &TextParser{}
	doc, err := p.Parse(strings.NewReader("page one\fpage two\fpage three"), "multi.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Pages) != 3 {
		t.Fatalf("expected 3 pages, got %d", len(doc.Pages))
	}
	for i, page := range doc.Pages {
		if page.Number != i+1 {
			t.Errorf("page[%d]: expected number %d, got %d", i, i+1, page.Number)
		}
	}
	if doc.Pages[2].Text != "page three" {
		t.Errorf("expected %q, got %q", "page three", doc.Pages[2].Text)
	}
}

func TestTextParser_EmptyInput(t *testing.T) {
	p := &TextParser{}
	doc, err := p.Parse(strings.NewReader(""), "empty.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Pages) != 0 {
		t.Errorf("expected 0 pages for empty input, got %d", len(doc.Pages))
	}
}

func TestTextParser_NoOutline(t *testing.T) {
	p := &TextParser{}
	doc, err := p.Parse(strings.NewReader("plain text"), "plain.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Outline) != 0 {
		t.Errorf("plain text must not produce an outline, got %d entries", len(doc.Outline))
	}
}
