package parser

import (
	"strings"
	"testing"
)

func TestMarkdownParser_HeadingsBecomeOutline(t *testing.T) {
	input := `# Introduction

Welcome text.

## Setup

Install the tool.

## Usage

Run the tool.
`
	p := &MarkdownParser{}
	doc, err := p.Parse(strings.NewReader(input), "readme.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Ref.Title != "readme" {
		t.Errorf("expected title %q, got %q", "readme", doc.Ref.Title)
	}
	if len(doc.Outline) != 3 {
		t.Fatalf("expected 3 outline entries, got %d", len(doc.Outline))
	}

	wantTitles := []string{"Introduction", "Setup", "Usage"}
	wantLevels := []string{"H1", "H2", "H2"}
	for i, e := range doc.Outline {
		if e.Title != wantTitles[i] {
			t.Errorf("outline[%d]: expected title %q, got %q", i, wantTitles[i], e.Title)
		}
		if e.Level != wantLevels[i] {
			t.Errorf("outline[%d]: expected level %q, got %q", i, wantLevels[i], e.Level)
		}
		if e.Page != i+1 {
			t.Errorf("outline[%d]: expected page %d, got %d", i, i+1, e.Page)
		}
	}

	if len(doc.Pages) != 3 {
		t.Fatalf("expected 3 pages, got %d", len(doc.Pages))
	}
	if !strings.Contains(doc.Pages[1].Text, "Install the tool.") {
		t.Errorf("setup page text mismatch: %q", doc.Pages[1].Text)
	}
}

func TestMarkdownParser_PreambleBeforeFirstHeading(t *testing.T) {
	input := "Intro paragraph without a heading.\n\n# First\n\nBody.\n"
	p := &MarkdownParser{}
	doc, err := p.Parse(strings.NewReader(input), "doc.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(doc.Pages) != 2 {
		t.Fatalf("expected 2 pages (preamble + heading), got %d", len(doc.Pages))
	}
	if len(doc.Outline) != 1 {
		t.Fatalf("expected 1 outline entry, got %d", len(doc.Outline))
	}
	// The preamble is page 1; the outline entry targets page 2.
	if doc.Outline[0].Page != 2 {
		t.Errorf("expected outline target page 2, got %d", doc.Outline[0].Page)
	}
}

func TestMarkdownParser_NoHeadings(t *testing.T) {
	p := &MarkdownParser{}
	doc, err := p.Parse(strings.NewReader("Just a paragraph.\n\nAnother one.\n"), "flat.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Outline) != 0 {
		t.Errorf("expected no outline, got %d entries", len(doc.Outline))
	}
	if len(doc.Pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(doc.Pages))
	}
}

func TestMarkdownParser_DeepHeadingsClampToH3(t *testing.T) {
	input := "#### Deep Heading\n\nText.\n"
	p := &MarkdownParser{}
	doc, err := p.Parse(strings.NewReader(input), "deep.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Outline) != 1 {
		t.Fatalf("expected 1 outline entry, got %d", len(doc.Outline))
	}
	if doc.Outline[0].Level != "H3" {
		t.Errorf("expected level H3, got %q", doc.Outline[0].Level)
	}
}
