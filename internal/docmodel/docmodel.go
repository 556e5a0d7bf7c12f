// Package docmodel holds the data types flowing through the relevance
// pipeline. Everything here is immutable after creation: each pipeline stage
// produces a new artifact from the previous stage's output.
package docmodel

// Persona describes who the analysis is for and what they are trying to do.
type Persona struct {
	Role string // e.g. "HR professional"
	Job  string // job-to-be-done, e.g. "Create and manage fillable forms"
}

// DocumentRef identifies one input document.
type DocumentRef struct {
	Filename string
	Title    string // display title; may be empty
}

// Line is a single text line with layout hints, used for heuristic title
// detection when no outline is available.
type Line struct {
	Text     string
	FontSize float64 // 0 when the source format carries no font metadata
}

// Page is one page of extracted document text.
type Page struct {
	Number int // 1-based
	Text   string
	Lines  []Line
}

// OutlineEntry is one entry of a document outline / table of contents.
type OutlineEntry struct {
	Level string // "H1", "H2", "H3"
	Title string
	Page  int // 1-based target page
}

// Document is a parsed input document: ordered pages plus an optional outline.
type Document struct {
	Ref     DocumentRef
	Pages   []Page
	Outline []OutlineEntry
}

// Section is a contiguous, titled or inferred unit of document content.
// Sections within a document follow reading order: page ascending, then
// ordinal.
type Section struct {
	DocIndex int // position of the parent document in the input list
	Document DocumentRef
	Title    string
	Level    string // outline level, empty for heuristic sections
	Page     int    // 1-based
	Ordinal  int    // position within the document
	Body     string // whitespace-normalized, length-bounded
}

// ScoredSection is a Section with its relevance score. The score may be
// overwritten by the assisted analyzer; the embedded Section never changes.
type ScoredSection struct {
	Section
	Score float64
	Rank  int // 1-based importance rank, assigned after the final sort
}

// RefinedSection is a top-K ScoredSection with its refined excerpt.
type RefinedSection struct {
	ScoredSection
	RefinedText string
}
