package grading

import (
	"fmt"

	"github.com/jonathan/html-autograder/internal/classification"
	"github.com/jonathan/html-autograder/internal/conformance"
	"github.com/jonathan/html-autograder/internal/document"
	"github.com/jonathan/html-autograder/internal/placement"
	"github.com/jonathan/html-autograder/internal/report"
	"github.com/jonathan/html-autograder/internal/scoring"
	"github.com/jonathan/html-autograder/internal/types"
)

// Options tunes a grading run. The rubric itself is fixed.
type Options struct {
	CommentMode scoring.CommentMode
}

// Result is the report plus the intermediate signals that produced it
type Result struct {
	Report          *types.Report
	Diagnostics     []types.Diagnostic
	Critical        []types.Diagnostic
	PlacementDefect bool
	Signals         classification.Signals
	Facts           scoring.Facts
}

// State returns the submission state the report was built for
func (r *Result) State() types.SubmissionState {
	return r.Report.State
}

// Grade scores raw markup. Malformed markup never fails the run; it is scored.
// Any panic inside the pipeline is returned as *InternalError.
func Grade(raw string, opts Options) (res *Result, err error) {
	defer func() {
		if p := recover(); p != nil {
			res = nil
			err = &InternalError{Message: fmt.Sprint(p)}
		}
	}()

	m, err := document.Parse(raw)
	if err != nil {
		return nil, &InternalError{Message: "failed to build document model", Cause: err}
	}

	diags := conformance.Check(m, conformance.GradingConfig())
	critical := types.Critical(diags)
	placementDefect := placement.Analyze(m)
	signals := classification.SignalsFrom(m, placementDefect, critical)
	state := classification.Classify(signals)

	res = &Result{
		Diagnostics:     diags,
		Critical:        critical,
		PlacementDefect: placementDefect,
		Signals:         signals,
	}

	if state == types.StateUnsubmitted {
		res.Report = report.Unsubmitted()
		return res, nil
	}

	facts, err := scoring.Gather(m, state, placementDefect, critical, opts.CommentMode)
	if err != nil {
		return nil, fmt.Errorf("failed to measure submission: %w", err)
	}
	res.Facts = facts

	// Syntax first: Structure is gated on its outcome
	syntax := scoring.ScoreSyntax(facts)
	structure := scoring.ScoreStructure(facts, syntax)
	hygiene := scoring.ScoreHygiene(facts)
	content := scoring.ScoreContent(facts)

	b := report.NewBuilder(state).
		Add(structure).
		Add(hygiene).
		Add(content).
		Add(syntax)
	if note, ok := scoring.Bonus(facts); ok {
		b.Note(note)
	}

	res.Report = b.Build()
	return res, nil
}
