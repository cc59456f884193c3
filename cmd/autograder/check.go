package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jonathan/html-autograder/internal/conformance"
	"github.com/jonathan/html-autograder/internal/document"
	"github.com/jonathan/html-autograder/internal/format"
	"github.com/jonathan/html-autograder/internal/ingestion"
	"github.com/jonathan/html-autograder/internal/types"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "List every conformance finding in the submission",
	Long: `List every conformance finding in the submission, cosmetic warnings included.
Errors are the findings the grader treats as critical. Exits non-zero when any error is found.`,
	RunE: runCheck,
}

var (
	checkInput    string
	checkMarkdown bool
)

func init() {
	checkCmd.Flags().StringVarP(&checkInput, "in", "i", "index.html", "Path to the HTML file to check")
	checkCmd.Flags().BoolVar(&checkMarkdown, "markdown", false, "Render the findings as a markdown table")

	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, _ []string) error {
	mode := format.ASCII
	if checkMarkdown {
		mode = format.Markdown
	}
	return checkSubmission(checkInput, mode, cmd.OutOrStdout())
}

func checkSubmission(path string, mode format.Mode, out io.Writer) error {
	sub, err := ingestion.Load(path)
	if err != nil {
		return err
	}

	m, err := document.Parse(sub.Raw)
	if err != nil {
		return err
	}

	diags := conformance.Check(m, conformance.AuditConfig())
	if len(diags) == 0 {
		_, _ = fmt.Fprintf(out, "%s: no findings\n", path)
		return nil
	}

	_, _ = fmt.Fprintln(out, diagnosticsTable(diags, mode))

	critical := types.Critical(diags)
	_, _ = fmt.Fprintf(out, "%s: %d findings, %d errors\n", path, len(diags), len(critical))
	if len(critical) > 0 {
		return fmt.Errorf("%d critical findings in %s", len(critical), path)
	}
	return nil
}

func diagnosticsTable(diags []types.Diagnostic, mode format.Mode) string {
	tb := format.NewTable(mode)
	tb.Header("Line", "Col", "Severity", "Rule", "Message")
	tb.AlignRight(1, 2)
	for _, d := range diags {
		tb.Row(d.Line, d.Column, severityLabel(d.Severity, mode), d.Rule, d.Message)
	}
	return tb.String()
}

// severityLabel colors the severity for terminals only
func severityLabel(s types.Severity, mode format.Mode) string {
	label := string(s)
	if mode != format.ASCII {
		return label
	}
	if s == types.SeverityError {
		return color.RedString(label)
	}
	return color.YellowString(label)
}
