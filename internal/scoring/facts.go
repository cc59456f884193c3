// Package scoring implements the four rubric scorers and the bonus detector.
// Each category is a prioritized rule list; the first matching rule decides the score.
package scoring

import (
	"fmt"
	"regexp"

	"github.com/jonathan/html-autograder/internal/conformance"
	"github.com/jonathan/html-autograder/internal/document"
	"github.com/jonathan/html-autograder/internal/types"
)

// CommentMode selects how comments are detected for the hygiene category
type CommentMode string

const (
	// CommentLexical scans the raw source for a <!-- --> span
	CommentLexical CommentMode = "lexical"
	// CommentToken counts only comment tokens, so delimiters inside script
	// or style text do not count
	CommentToken CommentMode = "token"
)

var commentSpan = regexp.MustCompile(`(?s)<!--.*?-->`)

// Facts are the measurements of one submission that the rubric reads
type Facts struct {
	State           types.SubmissionState
	PlacementDefect bool
	Critical        []types.Diagnostic

	HeadingCount int
	Heading      bool // non-empty h1
	Subheading   bool // non-empty h2 or h3
	Paragraph    bool // non-empty p
	ListItems    bool // ul or ol with at least one direct li
	HasComment   bool
	Title        string
}

// Gather measures m for scoring
func Gather(m *document.Model, state types.SubmissionState, placementDefect bool, critical []types.Diagnostic, mode CommentMode) (Facts, error) {
	hasComment, err := detectComment(m, mode)
	if err != nil {
		return Facts{}, err
	}

	return Facts{
		State:           state,
		PlacementDefect: placementDefect,
		Critical:        critical,
		HeadingCount:    m.Count("h1"),
		Heading:         m.HasContent("h1"),
		Subheading:      m.HasContent("h2, h3"),
		Paragraph:       m.HasContent("p"),
		ListItems:       m.Has("ul > li, ol > li"),
		HasComment:      hasComment,
		Title:           m.Title(),
	}, nil
}

func detectComment(m *document.Model, mode CommentMode) (bool, error) {
	switch mode {
	case CommentLexical, "":
		return commentSpan.MatchString(m.Raw()), nil
	case CommentToken:
		return len(m.Comments()) > 0, nil
	default:
		return false, &UnknownModeError{Mode: string(mode)}
	}
}

// ListContentDefect reports whether a critical diagnostic flags free content inside a list
func (f Facts) ListContentDefect() bool {
	for _, d := range f.Critical {
		if conformance.IsListContent(d) {
			return true
		}
	}
	return false
}

// UnknownModeError is returned for a comment mode the scorer does not implement
type UnknownModeError struct {
	Mode string
}

func (e *UnknownModeError) Error() string {
	return fmt.Sprintf("unknown comment mode: %q", e.Mode)
}
