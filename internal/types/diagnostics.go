// Package types provides type definitions for structured data used throughout the autograder.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Severity is the level attached to a conformance finding
type Severity string

const (
	// SeverityWarning marks an advisory finding that never affects the score
	SeverityWarning Severity = "warning"
	// SeverityError marks a critical finding that the scoring engine reacts to
	SeverityError Severity = "error"
)

// Diagnostic represents a single conformance finding in the submitted markup
type Diagnostic struct {
	Rule     string   `json:"rule"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
	Offset   int      `json:"offset"`
	Line     int      `json:"line"`
	Column   int      `json:"column"`
}

// IsCritical reports whether the diagnostic has error severity
func (d Diagnostic) IsCritical() bool {
	return d.Severity == SeverityError
}

// Critical returns the error-severity subset of diags, preserving order
func Critical(diags []Diagnostic) []Diagnostic {
	out := make([]Diagnostic, 0, len(diags))
	for _, d := range diags {
		if d.IsCritical() {
			out = append(out, d)
		}
	}
	return out
}
