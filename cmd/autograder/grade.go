package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/jonathan/html-autograder/internal/config"
	"github.com/jonathan/html-autograder/internal/grading"
	"github.com/jonathan/html-autograder/internal/ingestion"
	"github.com/jonathan/html-autograder/internal/observability"
	"github.com/jonathan/html-autograder/internal/publish"
	"github.com/jonathan/html-autograder/internal/report"
	"github.com/jonathan/html-autograder/internal/scoring"
	"github.com/jonathan/html-autograder/internal/types"
	"github.com/spf13/cobra"
)

var gradeCmd = &cobra.Command{
	Use:   "grade",
	Short: "Grade the submission and publish the report",
	Long: `Grade the submission and publish the markdown report to the CI step summary
(when its variable is set), the report file and stdout.

Settings are layered: built-in defaults, then --config, then AUTOGRADER_* environment
variables, then flags. Exits non-zero when the submission is missing, empty, or scores
below the passing threshold.`,
	RunE: runGrade,
}

// gradeFlags holds the raw flag values; empty means "not given"
type gradeFlags struct {
	input       string
	report      string
	jsonReport  string
	configPath  string
	commentMode string
	verbose     bool
}

var gradeOpts gradeFlags

func init() {
	gradeCmd.Flags().StringVarP(&gradeOpts.input, "in", "i", "", "Path to the submitted HTML file (default index.html)")
	gradeCmd.Flags().StringVarP(&gradeOpts.report, "out", "o", "", "Path to the markdown report (default report.md)")
	gradeCmd.Flags().StringVar(&gradeOpts.jsonReport, "json-out", "", "Optional path to a JSON report artifact")
	gradeCmd.Flags().StringVarP(&gradeOpts.configPath, "config", "c", "", "Path to a JSON or YAML config file")
	gradeCmd.Flags().StringVar(&gradeOpts.commentMode, "comment-mode", "", "Comment detection: lexical or token (default lexical)")
	gradeCmd.Flags().BoolVarP(&gradeOpts.verbose, "verbose", "v", false, "Print signals, diagnostics and scores to stderr")

	rootCmd.AddCommand(gradeCmd)
}

func runGrade(cmd *cobra.Command, _ []string) error {
	return gradeSubmission(gradeOpts, os.Getenv, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// resolveConfig layers flags over environment over config file over defaults
func resolveConfig(f gradeFlags, getenv func(string) string) (config.Config, error) {
	cfg := config.Config{
		Input:       f.input,
		Report:      f.report,
		JSONReport:  f.jsonReport,
		CommentMode: f.commentMode,
		Verbose:     f.verbose,
	}
	cfg = cfg.MergeWithDefaults(config.FromEnv(getenv))

	if f.configPath != "" {
		fileCfg, err := config.LoadConfig(f.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}

	cfg = cfg.MergeWithDefaults(config.Defaults())
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func gradeSubmission(f gradeFlags, getenv func(string) string, stdout, stderr io.Writer) error {
	cfg, err := resolveConfig(f, getenv)
	if err != nil {
		return err
	}

	runID := uuid.New().String()
	if cfg.Verbose {
		log.Printf("[VERBOSE] Run %s: grading %s (comment mode %s)", runID, cfg.Input, cfg.CommentMode)
	}

	sinks := publish.NewSinks(&cfg, getenv, stdout)

	sub, err := ingestion.Load(cfg.Input)
	if err != nil {
		var missing *ingestion.MissingInputError
		if errors.As(err, &missing) {
			if serr := sinks.Missing(missing); serr != nil {
				_, _ = fmt.Fprintf(stderr, "Warning: %v\n", serr)
			}
		}
		return err
	}

	res, err := grading.Grade(sub.Raw, grading.Options{CommentMode: scoring.CommentMode(cfg.CommentMode)})
	if err != nil {
		return fmt.Errorf("failed to grade %s: %w", cfg.Input, err)
	}

	if cfg.Verbose {
		log.Printf("[VERBOSE] Run %s: %d diagnostics, %d critical, state %s",
			runID, len(res.Diagnostics), len(res.Critical), res.State())
		printer := observability.NewPrinter(stderr)
		printer.PrintSignals(res.Signals, res.State())
		printer.PrintDiagnostics(res.Diagnostics)
		printer.PrintReport(res.Report)
	}

	if err := sinks.Report(report.Markdown(res.Report)); err != nil {
		return fmt.Errorf("failed to publish report: %w", err)
	}

	if cfg.JSONReport != "" {
		artifact := report.NewArtifact(runID, cfg.Input, res.Report, res.Critical)
		artifact.InputSHA256 = sub.Digest
		if err := publish.Artifact(cfg.JSONReport, artifact, stderr); err != nil {
			return fmt.Errorf("failed to write JSON report: %w", err)
		}
		if cfg.Verbose {
			log.Printf("[VERBOSE] Run %s: JSON report written to %s", runID, cfg.JSONReport)
		}
	}

	switch {
	case res.State() == types.StateUnsubmitted:
		return fmt.Errorf("no submission detected in %s", cfg.Input)
	case !res.Report.Passed():
		return fmt.Errorf("score %d / %d is below the passing threshold of %d",
			res.Report.Total, res.Report.Max, types.PassThreshold)
	}
	return nil
}
