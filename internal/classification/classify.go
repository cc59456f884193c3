// Package classification assigns a submission one of the four overall states.
package classification

import (
	"github.com/jonathan/html-autograder/internal/document"
	"github.com/jonathan/html-autograder/internal/types"
)

const (
	// UnsubmittedBelow is the visible-text length under which a tagless submission counts as empty
	UnsubmittedBelow = 40
	// DraftAbove is the visible-text length over which tagless prose counts as a draft
	DraftAbove = 60
)

// Signals are the inputs the classifier reads
type Signals struct {
	VisibleLength   int
	HasBlock        bool
	PlacementDefect bool
	CriticalCount   int
}

// SignalsFrom collects classifier inputs from the parsed model and upstream results
func SignalsFrom(m *document.Model, placementDefect bool, critical []types.Diagnostic) Signals {
	return Signals{
		VisibleLength:   m.VisibleLength(),
		HasBlock:        m.HasBlockElement(),
		PlacementDefect: placementDefect,
		CriticalCount:   len(critical),
	}
}

// Classify returns the first matching state in precedence order:
// unsubmitted, draft, syntax broken, normal.
func Classify(s Signals) types.SubmissionState {
	switch {
	case s.VisibleLength < UnsubmittedBelow && !s.HasBlock:
		return types.StateUnsubmitted
	case s.VisibleLength > DraftAbove && !s.HasBlock:
		return types.StateDraft
	case s.PlacementDefect || s.CriticalCount > 0:
		return types.StateSyntaxBroken
	default:
		return types.StateNormal
	}
}
