// Package document parses submitted markup into a queryable tree with source locations.
package document

import "fmt"

// ParseError represents a failure to read the markup into a tree.
// Malformed markup is never a ParseError; the HTML parser recovers from it.
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
