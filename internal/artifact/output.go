package artifact

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mouniksai/Challenge-1b/internal/docmodel"
)

// Metadata echoes the run's inputs plus the processing timestamp.
type Metadata struct {
	InputDocuments      []string `json:"input_documents"`
	Persona             string   `json:"persona"`
	JobToBeDone         string   `json:"job_to_be_done"`
	ProcessingTimestamp string   `json:"processing_timestamp"`
}

// ExtractedSection is one ranked section in the output artifact.
type ExtractedSection struct {
	Document       string `json:"document"`
	SectionTitle   string `json:"section_title"`
	ImportanceRank int    `json:"importance_rank"`
	PageNumber     int    `json:"page_number"`
}

// SubsectionAnalysis is one refined excerpt in the output artifact.
type SubsectionAnalysis struct {
	Document    string `json:"document"`
	RefinedText string `json:"refined_text"`
	PageNumber  int    `json:"page_number"`
}

// Output is the top-level output artifact. Arrays are always present, never
// null, so the schema is stable whether or not the assistant participated.
type Output struct {
	Metadata           Metadata             `json:"metadata"`
	ExtractedSections  []ExtractedSection   `json:"extracted_sections"`
	SubsectionAnalysis []SubsectionAnalysis `json:"subsection_analysis"`
}

// BuildOutput assembles the output artifact from the final ranked sections
// and refined excerpts. The timestamp is a parameter so identical pipeline
// results serialize identically in tests.
func BuildOutput(in *Input, processedDocs []string, top []docmodel.ScoredSection, refined []docmodel.RefinedSection, now time.Time) *Output {
	out := &Output{
		Metadata: Metadata{
			InputDocuments:      processedDocs,
			Persona:             in.Persona.Role,
			JobToBeDone:         in.Persona.JobToBeDone,
			ProcessingTimestamp: now.UTC().Format(time.RFC3339),
		},
		ExtractedSections:  make([]ExtractedSection, 0, len(top)),
		SubsectionAnalysis: make([]SubsectionAnalysis, 0, len(refined)),
	}
	if out.Metadata.InputDocuments == nil {
		out.Metadata.InputDocuments = []string{}
	}

	for i, sec := range top {
		rank := sec.Rank
		if rank == 0 {
			rank = i + 1
		}
		out.ExtractedSections = append(out.ExtractedSections, ExtractedSection{
			Document:       sec.Document.Filename,
			SectionTitle:   sec.Title,
			ImportanceRank: rank,
			PageNumber:     sec.Page,
		})
	}

	for _, ref := range refined {
		out.SubsectionAnalysis = append(out.SubsectionAnalysis, SubsectionAnalysis{
			Document:    ref.Document.Filename,
			RefinedText: ref.RefinedText,
			PageNumber:  ref.Page,
		})
	}

	return out
}

// WriteOutput serializes the output artifact to disk, creating parent
// directories as needed.
func WriteOutput(path string, out *Output) error {
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
