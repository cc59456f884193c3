// Package publish delivers the rendered report to the CI summary, a report file and stdout.
package publish

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jonathan/html-autograder/internal/config"
	"github.com/jonathan/html-autograder/internal/ingestion"
	"github.com/jonathan/html-autograder/internal/report"
	"github.com/jonathan/html-autograder/internal/schemas"
	schemafiles "github.com/jonathan/html-autograder/schemas"
)

const (
	sinkSummary  = "summary"
	sinkReport   = "report"
	sinkStdout   = "stdout"
	sinkArtifact = "artifact"
)

// Sinks is the set of destinations for one run
type Sinks struct {
	// SummaryPath is the CI summary file; empty when the summary variable is unset
	SummaryPath string
	ReportPath  string
	Stdout      io.Writer
}

// NewSinks resolves the destinations for cfg. The summary sink is enabled only
// when the variable named by cfg.SummaryEnv is set.
func NewSinks(cfg *config.Config, getenv func(string) string, stdout io.Writer) Sinks {
	s := Sinks{ReportPath: cfg.Report, Stdout: stdout}
	if cfg.SummaryEnv != "" {
		s.SummaryPath = getenv(cfg.SummaryEnv)
	}
	return s
}

// Report writes markdown to every sink: appended to the summary, written to the
// report file and echoed to stdout.
func (s Sinks) Report(markdown string) error {
	var errs []error
	if err := s.appendSummary(markdown); err != nil {
		errs = append(errs, err)
	}
	if s.ReportPath != "" {
		if err := os.WriteFile(s.ReportPath, []byte(markdown), 0644); err != nil {
			errs = append(errs, &SinkError{Sink: sinkReport, Message: "failed to write " + s.ReportPath, Cause: err})
		}
	}
	if s.Stdout != nil {
		if _, err := io.WriteString(s.Stdout, markdown); err != nil {
			errs = append(errs, &SinkError{Sink: sinkStdout, Message: "failed to echo report", Cause: err})
		}
	}
	return errors.Join(errs...)
}

// Missing summarizes a fatal missing-input error. Only the summary sink is written.
func (s Sinks) Missing(missing *ingestion.MissingInputError) error {
	return s.appendSummary(report.Missing(missing.Path))
}

func (s Sinks) appendSummary(markdown string) error {
	if s.SummaryPath == "" {
		return nil
	}
	f, err := os.OpenFile(s.SummaryPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return &SinkError{Sink: sinkSummary, Message: "failed to open " + s.SummaryPath, Cause: err}
	}
	defer func() { _ = f.Close() }()

	if _, err := f.WriteString(markdown + "\n"); err != nil {
		return &SinkError{Sink: sinkSummary, Message: "failed to append to " + s.SummaryPath, Cause: err}
	}
	return nil
}

// Artifact writes the JSON report to path. A schema mismatch is printed to warn
// as a warning and does not fail the write.
func Artifact(path string, a *report.Artifact, warn io.Writer) error {
	data, err := a.JSON()
	if err != nil {
		return &SinkError{Sink: sinkArtifact, Message: "failed to encode", Cause: err}
	}

	if err := schemas.ValidateBytes(schemafiles.Report, data); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			_, _ = fmt.Fprintf(warn, "Warning: report artifact does not match %s: %v\n", schemafiles.ReportFile, err)
		} else {
			_, _ = fmt.Fprintf(warn, "Warning: Could not validate report artifact against schema: %v\n", err)
		}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return &SinkError{Sink: sinkArtifact, Message: "failed to create output directory", Cause: err}
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return &SinkError{Sink: sinkArtifact, Message: "failed to write " + path, Cause: err}
	}
	return nil
}
