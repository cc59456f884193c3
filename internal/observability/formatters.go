// Package observability renders boxed summaries of a grading run for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jonathan/html-autograder/internal/classification"
	"github.com/jonathan/html-autograder/internal/types"
	"github.com/mattn/go-runewidth"
)

const (
	// boxWidth is the outer width of every box, borders included
	boxWidth = 72
	// maxItemsToShow caps the diagnostics listed in one box
	maxItemsToShow = 8
)

var (
	passColor    = color.New(color.FgGreen, color.Bold)
	failColor    = color.New(color.FgRed, color.Bold)
	errorColor   = color.New(color.FgRed)
	warningColor = color.New(color.FgYellow)
)

// line is one row of box content with an optional color applied after padding
type line struct {
	text  string
	paint *color.Color
}

func plain(format string, args ...any) line {
	return line{text: fmt.Sprintf(format, args...)}
}

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// fit truncates or pads s to exactly width terminal cells
func fit(s string, width int) string {
	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, "...")
	}
	return runewidth.FillRight(s, width)
}

//nolint:errcheck // verbose output; write errors are not recoverable
func (p *Printer) printBox(title string, lines []line) {
	inner := boxWidth - 4
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", fit(title, inner))
	fmt.Fprintf(p.out, "├%s┤\n", border)
	for _, l := range lines {
		text := fit(l.text, inner)
		if l.paint != nil {
			text = l.paint.Sprint(text)
		}
		fmt.Fprintf(p.out, "│ %s │\n", text)
	}
	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSignals outputs the classifier inputs and the state they produced
func (p *Printer) PrintSignals(s classification.Signals, state types.SubmissionState) {
	p.printBox("SUBMISSION SIGNALS", []line{
		plain("Visible text:      %d characters", s.VisibleLength),
		plain("Block elements:    %t", s.HasBlock),
		plain("Heading placement: %s", placementWord(s.PlacementDefect)),
		plain("Critical errors:   %d", s.CriticalCount),
		plain(""),
		plain("State:             %s", state),
	})
}

func placementWord(defect bool) string {
	if defect {
		return "h1 before body"
	}
	return "ok"
}

// PrintDiagnostics outputs conformance findings, errors first
func (p *Printer) PrintDiagnostics(diags []types.Diagnostic) {
	if len(diags) == 0 {
		p.printBox("CONFORMANCE", []line{{text: "✅ NO DIAGNOSTICS", paint: passColor}})
		return
	}

	ordered := make([]types.Diagnostic, 0, len(diags))
	ordered = append(ordered, types.Critical(diags)...)
	for _, d := range diags {
		if !d.IsCritical() {
			ordered = append(ordered, d)
		}
	}

	critical := len(types.Critical(diags))
	lines := []line{plain("Found %d diagnostics (%d critical):", len(diags), critical), plain("")}

	count := min(len(ordered), maxItemsToShow)
	for i := 0; i < count; i++ {
		d := ordered[i]
		paint := warningColor
		if d.IsCritical() {
			paint = errorColor
		}
		lines = append(lines,
			line{text: fmt.Sprintf("%-7s %d:%d %s", strings.ToUpper(string(d.Severity)), d.Line, d.Column, d.Rule), paint: paint},
			plain("  %s", d.Message),
		)
	}
	if len(ordered) > maxItemsToShow {
		lines = append(lines, plain("... and %d more", len(ordered)-maxItemsToShow))
	}

	p.printBox("CONFORMANCE", lines)
}

// PrintReport outputs the per-category scores and the pass/fail verdict
func (p *Printer) PrintReport(r *types.Report) {
	if r == nil {
		return
	}

	lines := make([]line, 0, len(r.Categories)+3)
	for _, c := range r.Categories {
		lines = append(lines, plain("%-22s %d / %d  [%s]", c.Name, c.Earned, c.Max, c.Rule))
	}
	if len(lines) > 0 {
		lines = append(lines, plain(""))
	}
	lines = append(lines, plain("Total: %d / %d", r.Total, r.Max))
	if r.Passed() {
		lines = append(lines, line{text: "PASS", paint: passColor})
	} else {
		lines = append(lines, line{text: "FAIL", paint: failColor})
	}

	p.printBox("SCORES", lines)
}
