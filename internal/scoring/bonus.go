package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/html-autograder/internal/types"
)

// placeholderTitles are editor defaults that do not count as a custom title
var placeholderTitles = map[string]bool{
	"":         true,
	"document": true,
	"title":    true,
}

// Bonus returns an unscored note when the page declares a custom title.
// Drafts never get the note.
func Bonus(f Facts) (types.Note, bool) {
	if isDraft(f) {
		return types.Note{}, false
	}
	title := strings.TrimSpace(f.Title)
	if placeholderTitles[strings.ToLower(title)] {
		return types.Note{}, false
	}
	return types.Note{
		Label:   "Bonus",
		Message: fmt.Sprintf("Custom page title: %q", title),
	}, true
}
