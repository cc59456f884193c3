package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jonathan/html-autograder/internal/config"
	"github.com/jonathan/html-autograder/internal/ingestion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullMarks = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>My Hobby</title>
</head>
<body>
  <!-- page heading -->
  <h1>Title</h1>
  <p>Text</p>
  <ul>
    <li>One</li>
    <li>Two</li>
  </ul>
</body>
</html>`

func env(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

// workspace writes the submission into a temp dir and returns flags pointing at it
func workspace(t *testing.T, html string) (gradeFlags, string) {
	t.Helper()
	dir := t.TempDir()
	input := filepath.Join(dir, "index.html")
	require.NoError(t, os.WriteFile(input, []byte(html), 0644))
	return gradeFlags{input: input, report: filepath.Join(dir, "report.md")}, dir
}

func TestGradeSubmission_PassingRun(t *testing.T) {
	flags, dir := workspace(t, fullMarks)
	summary := filepath.Join(dir, "summary.md")
	flags.jsonReport = filepath.Join(dir, "report.json")

	var stdout, stderr bytes.Buffer
	err := gradeSubmission(flags, env(map[string]string{"GITHUB_STEP_SUMMARY": summary}), &stdout, &stderr)
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), "**Total Score: 12 / 12**")

	written, err := os.ReadFile(flags.report)
	require.NoError(t, err)
	assert.Equal(t, stdout.String(), string(written))

	summarized, err := os.ReadFile(summary)
	require.NoError(t, err)
	assert.Contains(t, string(summarized), "Total Score: 12 / 12")

	data, err := os.ReadFile(flags.jsonReport)
	require.NoError(t, err)
	var artifact map[string]any
	require.NoError(t, json.Unmarshal(data, &artifact))
	assert.Equal(t, true, artifact["passed"])
	assert.Len(t, artifact["run_id"], 36)
	assert.Len(t, artifact["input_sha256"], 64)
	assert.Empty(t, stderr.String(), "valid artifact raises no schema warning")
}

func TestGradeSubmission_BelowThreshold(t *testing.T) {
	flags, _ := workspace(t, "<h1>Only a heading</h1><p>and a short paragraph of text here</p>")

	var stdout bytes.Buffer
	err := gradeSubmission(flags, env(nil), &stdout, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "below the passing threshold")
	assert.Contains(t, stdout.String(), "Total Score", "the report is published before failing")
	assert.FileExists(t, flags.report)
}

func TestGradeSubmission_Unsubmitted(t *testing.T) {
	flags, _ := workspace(t, "<html><title></title><body></body></html>")

	var stdout bytes.Buffer
	err := gradeSubmission(flags, env(nil), &stdout, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no submission detected")
	assert.Contains(t, stdout.String(), "**Total Score: 0 / 12**")
}

func TestGradeSubmission_MissingInput(t *testing.T) {
	dir := t.TempDir()
	summary := filepath.Join(dir, "summary.md")
	flags := gradeFlags{
		input:  filepath.Join(dir, "index.html"),
		report: filepath.Join(dir, "report.md"),
	}

	var stdout bytes.Buffer
	err := gradeSubmission(flags, env(map[string]string{"GITHUB_STEP_SUMMARY": summary}), &stdout, &bytes.Buffer{})

	var missing *ingestion.MissingInputError
	require.ErrorAs(t, err, &missing)
	assert.Empty(t, stdout.String(), "no scorer runs and nothing is echoed")
	assert.NoFileExists(t, flags.report)

	summarized, err := os.ReadFile(summary)
	require.NoError(t, err)
	assert.Contains(t, string(summarized), "was not found")
}

func TestGradeSubmission_VerboseWritesBoxesToStderr(t *testing.T) {
	flags, _ := workspace(t, fullMarks)
	flags.verbose = true

	var stderr bytes.Buffer
	require.NoError(t, gradeSubmission(flags, env(nil), &bytes.Buffer{}, &stderr))

	out := stderr.String()
	assert.Contains(t, out, "SUBMISSION SIGNALS")
	assert.Contains(t, out, "CONFORMANCE")
	assert.Contains(t, out, "SCORES")
}

func TestGradeSubmission_InvalidCommentMode(t *testing.T) {
	flags, _ := workspace(t, fullMarks)
	flags.commentMode = "regex"

	err := gradeSubmission(flags, env(nil), &bytes.Buffer{}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CommentMode")
}

func TestResolveConfig_Precedence(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "autograder.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("input: from-file.html\ncomment_mode: token\nreport: "+filepath.Join(dir, "file.md")+"\n"), 0644))

	getenv := env(map[string]string{config.EnvInput: "from-env.html"})

	cfg, err := resolveConfig(gradeFlags{configPath: cfgPath}, getenv)
	require.NoError(t, err)
	assert.Equal(t, "from-env.html", cfg.Input, "environment beats the config file")
	assert.Equal(t, "token", cfg.CommentMode, "config file beats defaults")
	assert.Equal(t, filepath.Join(dir, "file.md"), cfg.Report)
	assert.Equal(t, "GITHUB_STEP_SUMMARY", cfg.SummaryEnv)

	cfg, err = resolveConfig(gradeFlags{configPath: cfgPath, input: "from-flag.html", commentMode: "lexical"}, getenv)
	require.NoError(t, err)
	assert.Equal(t, "from-flag.html", cfg.Input, "flags beat everything")
	assert.Equal(t, "lexical", cfg.CommentMode)

	cfg, err = resolveConfig(gradeFlags{}, env(nil))
	require.NoError(t, err)
	assert.Equal(t, "index.html", cfg.Input)
	assert.Equal(t, "report.md", cfg.Report)
}

func TestResolveConfig_MissingConfigFile(t *testing.T) {
	_, err := resolveConfig(gradeFlags{configPath: filepath.Join(t.TempDir(), "nope.yaml")}, env(nil))
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "failed to read config file"))
}

func TestGradeCommand_Flags(t *testing.T) {
	for _, name := range []string{"in", "out", "json-out", "config", "comment-mode", "verbose"} {
		assert.NotNil(t, gradeCmd.Flags().Lookup(name), "flag --%s", name)
	}
}
