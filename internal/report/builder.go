// Package report aggregates category scores into a report and renders it.
package report

import "github.com/jonathan/html-autograder/internal/types"

// MsgUnsubmitted is the single row shown when nothing was handed in
const MsgUnsubmitted = "No submission detected: the page is empty or almost empty. Write your page and push again."

// Builder collects report rows in insertion order
type Builder struct {
	state      types.SubmissionState
	categories []types.CategoryScore
	notes      []types.Note
}

// NewBuilder starts a report for a submission in the given state
func NewBuilder(state types.SubmissionState) *Builder {
	return &Builder{state: state}
}

// Add appends a category row
func (b *Builder) Add(score types.CategoryScore) *Builder {
	b.categories = append(b.categories, score)
	return b
}

// Note appends an unscored informational row
func (b *Builder) Note(n types.Note) *Builder {
	b.notes = append(b.notes, n)
	return b
}

// Build sums the earned scores and freezes the report.
// An unsubmitted report always totals 0.
func (b *Builder) Build() *types.Report {
	total := 0
	if b.state != types.StateUnsubmitted {
		for _, c := range b.categories {
			total += c.Earned
		}
	}

	categories := make([]types.CategoryScore, len(b.categories))
	copy(categories, b.categories)
	var notes []types.Note
	if len(b.notes) > 0 {
		notes = make([]types.Note, len(b.notes))
		copy(notes, b.notes)
	}

	return &types.Report{
		State:      b.state,
		Categories: categories,
		Notes:      notes,
		Total:      total,
		Max:        types.MaxScore,
	}
}

// Unsubmitted returns the short-circuit report for an empty submission
func Unsubmitted() *types.Report {
	return NewBuilder(types.StateUnsubmitted).
		Note(types.Note{Label: "Submission", Message: MsgUnsubmitted}).
		Build()
}
