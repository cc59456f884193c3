package report

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/html-autograder/internal/types"
)

// Artifact is the machine-readable form of a grading run
type Artifact struct {
	RunID       string             `json:"run_id"`
	Input       string             `json:"input"`
	InputSHA256 string             `json:"input_sha256,omitempty"`
	Passed      bool               `json:"passed"`
	Report      *types.Report      `json:"report"`
	Diagnostics []types.Diagnostic `json:"diagnostics"`
}

// NewArtifact wraps r with run metadata and the critical diagnostics behind it
func NewArtifact(runID, input string, r *types.Report, critical []types.Diagnostic) *Artifact {
	if critical == nil {
		critical = []types.Diagnostic{}
	}
	return &Artifact{
		RunID:       runID,
		Input:       input,
		Passed:      r.Passed(),
		Report:      r,
		Diagnostics: critical,
	}
}

// JSON renders the artifact as indented JSON
func (a *Artifact) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report artifact: %w", err)
	}
	return data, nil
}
