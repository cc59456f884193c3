package publish

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/html-autograder/internal/config"
	"github.com/jonathan/html-autograder/internal/ingestion"
	"github.com/jonathan/html-autograder/internal/report"
	"github.com/jonathan/html-autograder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func sampleReport() *types.Report {
	return report.NewBuilder(types.StateNormal).
		Add(types.CategoryScore{Name: types.CategoryStructure, Earned: 3, Max: 3, Message: "ok"}).
		Add(types.CategoryScore{Name: types.CategoryHygiene, Earned: 3, Max: 3, Message: "ok"}).
		Add(types.CategoryScore{Name: types.CategoryContent, Earned: 3, Max: 3, Message: "ok"}).
		Add(types.CategoryScore{Name: types.CategorySyntax, Earned: 3, Max: 3, Message: "ok"}).
		Build()
}

func TestNewSinks_SummaryGatedOnEnv(t *testing.T) {
	cfg := config.Defaults()

	s := NewSinks(&cfg, env(nil), nil)
	assert.Empty(t, s.SummaryPath)
	assert.Equal(t, "report.md", s.ReportPath)

	s = NewSinks(&cfg, env(map[string]string{"GITHUB_STEP_SUMMARY": "/tmp/summary.md"}), nil)
	assert.Equal(t, "/tmp/summary.md", s.SummaryPath)

	cfg.SummaryEnv = ""
	s = NewSinks(&cfg, env(map[string]string{"GITHUB_STEP_SUMMARY": "/tmp/summary.md"}), nil)
	assert.Empty(t, s.SummaryPath)
}

func TestReport_WritesEverySink(t *testing.T) {
	dir := t.TempDir()
	summary := filepath.Join(dir, "summary.md")
	require.NoError(t, os.WriteFile(summary, []byte("earlier step\n"), 0644))

	var stdout bytes.Buffer
	s := Sinks{
		SummaryPath: summary,
		ReportPath:  filepath.Join(dir, "report.md"),
		Stdout:      &stdout,
	}

	md := report.Markdown(sampleReport())
	require.NoError(t, s.Report(md))

	written, err := os.ReadFile(s.ReportPath)
	require.NoError(t, err)
	assert.Equal(t, md, string(written))
	assert.Equal(t, md, stdout.String())

	appended, err := os.ReadFile(summary)
	require.NoError(t, err)
	assert.Equal(t, "earlier step\n"+md+"\n", string(appended), "summary is appended, never truncated")
}

func TestReport_WithoutSummary(t *testing.T) {
	dir := t.TempDir()
	var stdout bytes.Buffer
	s := Sinks{ReportPath: filepath.Join(dir, "report.md"), Stdout: &stdout}

	require.NoError(t, s.Report("# hi\n"))
	assert.Equal(t, "# hi\n", stdout.String())
	assert.NoFileExists(t, filepath.Join(dir, "summary.md"))
}

func TestReport_UnwritableReportPath(t *testing.T) {
	var stdout bytes.Buffer
	s := Sinks{ReportPath: filepath.Join(t.TempDir(), "missing-dir", "report.md"), Stdout: &stdout}

	err := s.Report("# hi\n")
	var sinkErr *SinkError
	require.ErrorAs(t, err, &sinkErr)
	assert.Equal(t, sinkReport, sinkErr.Sink)
	assert.Equal(t, "# hi\n", stdout.String(), "stdout is still written")
}

func TestMissing_OnlyTouchesSummary(t *testing.T) {
	dir := t.TempDir()
	var stdout bytes.Buffer
	s := Sinks{
		SummaryPath: filepath.Join(dir, "summary.md"),
		ReportPath:  filepath.Join(dir, "report.md"),
		Stdout:      &stdout,
	}

	require.NoError(t, s.Missing(&ingestion.MissingInputError{Path: "index.html"}))

	summary, err := os.ReadFile(s.SummaryPath)
	require.NoError(t, err)
	assert.Contains(t, string(summary), "`index.html`")
	assert.NoFileExists(t, s.ReportPath)
	assert.Empty(t, stdout.String())

	assert.NoError(t, Sinks{}.Missing(&ingestion.MissingInputError{Path: "index.html"}))
}

func TestArtifact_WritesValidatedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "report.json")
	var warn bytes.Buffer

	a := report.NewArtifact("3f2b8c1e-9a4d-4e6f-8b7a-1c2d3e4f5a6b", "index.html", sampleReport(), nil)
	require.NoError(t, Artifact(path, a, &warn))

	assert.Empty(t, warn.String(), "a well-formed artifact matches the schema")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"run_id": "3f2b8c1e-9a4d-4e6f-8b7a-1c2d3e4f5a6b"`)
}

func TestArtifact_SchemaMismatchOnlyWarns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	var warn bytes.Buffer

	a := report.NewArtifact("not-a-uuid", "index.html", sampleReport(), nil)
	require.NoError(t, Artifact(path, a, &warn))

	assert.Contains(t, warn.String(), "Warning:")
	assert.FileExists(t, path)
}

func TestSinkError(t *testing.T) {
	err := &SinkError{Sink: sinkSummary, Message: "failed", Cause: os.ErrPermission}
	assert.Equal(t, "summary sink: failed: permission denied", err.Error())
	assert.ErrorIs(t, err, os.ErrPermission)
	assert.Equal(t, "report sink: failed", (&SinkError{Sink: sinkReport, Message: "failed"}).Error())
}
