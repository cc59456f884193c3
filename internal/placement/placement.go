// Package placement detects headings that begin before the document body.
package placement

import (
	"strings"

	"github.com/jonathan/html-autograder/internal/document"
)

const (
	headingTag = "h1"
	regionTag  = "body"
)

// Analyze reports whether the top-level heading starts before the body region.
// It never fails; missing or unknown locations only change which case applies.
func Analyze(m *document.Model) bool {
	if !m.Has(headingTag) {
		return false
	}

	bodyOffset, bodyKnown := m.Locate(regionTag)
	headingOffset, headingKnown := m.Locate(headingTag)

	switch {
	case bodyKnown && headingKnown:
		return headingOffset < bodyOffset
	case m.Has(regionTag) && !bodyKnown:
		// the parser opened the body earlier than the literal tag the author wrote
		return strings.Contains(strings.ToLower(m.Raw()), "<"+regionTag)
	case !m.Has(regionTag):
		// The HTML parser creates a body for everything but framesets, and a frameset
		// drops any heading, so this only guards models built from other parsers.
		return true
	}
	return false
}
