// Package grading runs the scoring pipeline over a single submission.
package grading

import "fmt"

// InternalError is a defect in the engine itself, never a property of the submission
type InternalError struct {
	Message string
	Cause   error
}

func (e *InternalError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("internal grading error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("internal grading error: %s", e.Message)
}

func (e *InternalError) Unwrap() error {
	return e.Cause
}
