package report

import (
	"fmt"
	"strings"

	"github.com/jonathan/html-autograder/internal/format"
	"github.com/jonathan/html-autograder/internal/types"
)

const (
	// Title is the markdown header of every report
	Title = "## 🤖 HTML Autograder Report"

	iconFull    = "✅"
	iconPartial = "⚠️"
	iconLow     = "❌"
	iconNote    = "🌟"
)

// statusIcon maps a category outcome to a traffic light
func statusIcon(c types.CategoryScore) string {
	switch {
	case c.Earned >= c.Max:
		return iconFull
	case c.Earned > c.Max/2:
		return iconPartial
	default:
		return iconLow
	}
}

// Markdown renders r as a markdown document: header, score table and total line
func Markdown(r *types.Report) string {
	tb := format.NewTable(format.Markdown)
	tb.Header("Status", "Category", "Score", "Feedback")

	if r.State == types.StateUnsubmitted {
		for _, n := range r.Notes {
			tb.Row(iconLow, n.Label, fmt.Sprintf("%d / %d", r.Total, r.Max), n.Message)
		}
	} else {
		for _, c := range r.Categories {
			tb.Row(statusIcon(c), c.Name, fmt.Sprintf("%d / %d", c.Earned, c.Max), c.Message)
		}
		for _, n := range r.Notes {
			tb.Row(iconNote, n.Label, "-", n.Message)
		}
	}

	var sb strings.Builder
	sb.WriteString(Title)
	sb.WriteString("\n\n")
	sb.WriteString(tb.String())
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("**Total Score: %d / %d**\n", r.Total, r.Max))
	return sb.String()
}

// Missing renders the summary for a run that found no submission file
func Missing(path string) string {
	return fmt.Sprintf("%s\n\n%s Submission file `%s` was not found. Nothing was graded.\n", Title, iconLow, path)
}
