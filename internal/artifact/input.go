// Package artifact defines the run's external JSON contract: the input
// specification and the ranked output object.
package artifact

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mouniksai/Challenge-1b/internal/docmodel"
)

// InputPersona is the persona block of the input artifact.
type InputPersona struct {
	Role        string `json:"role"`
	JobToBeDone string `json:"job_to_be_done"`
}

// InputDocument references one source document by filename.
type InputDocument struct {
	Filename string `json:"filename"`
	Title    string `json:"title"`
}

// Input is the top-level input artifact.
type Input struct {
	ChallengeInfo json.RawMessage `json:"challenge_info,omitempty"`
	Persona       InputPersona    `json:"persona"`
	Documents     []InputDocument `json:"documents"`
}

// PersonaModel converts the input persona to the pipeline's persona type.
func (in *Input) PersonaModel() docmodel.Persona {
	return docmodel.Persona{Role: in.Persona.Role, Job: in.Persona.JobToBeDone}
}

// ParseInput decodes and validates an input artifact. Validation failures are
// fatal for the run and name the missing field. An empty documents array is
// valid; a missing documents field is not.
func ParseInput(raw []byte) (*Input, error) {
	var probe struct {
		ChallengeInfo json.RawMessage  `json:"challenge_info"`
		Persona       *InputPersona    `json:"persona"`
		Documents     *[]InputDocument `json:"documents"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("input artifact: %w", err)
	}

	if probe.Persona == nil {
		return nil, fmt.Errorf("input artifact: missing required field %q", "persona")
	}
	if probe.Persona.Role == "" {
		return nil, fmt.Errorf("input artifact: missing required field %q", "persona.role")
	}
	if probe.Persona.JobToBeDone == "" {
		return nil, fmt.Errorf("input artifact: missing required field %q", "persona.job_to_be_done")
	}
	if probe.Documents == nil {
		return nil, fmt.Errorf("input artifact: missing required field %q", "documents")
	}
	for i, d := range *probe.Documents {
		if d.Filename == "" {
			return nil, fmt.Errorf("input artifact: missing required field %q", fmt.Sprintf("documents[%d].filename", i))
		}
	}

	return &Input{
		ChallengeInfo: probe.ChallengeInfo,
		Persona:       *probe.Persona,
		Documents:     *probe.Documents,
	}, nil
}

// LoadInput reads and validates an input artifact file.
func LoadInput(path string) (*Input, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input artifact: %w", err)
	}
	return ParseInput(raw)
}
