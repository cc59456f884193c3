package report

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/jonathan/html-autograder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func score(name string, earned int) types.CategoryScore {
	return types.CategoryScore{Name: name, Earned: earned, Max: types.CategoryMax, Message: name + " feedback"}
}

func sampleReport() *types.Report {
	return NewBuilder(types.StateNormal).
		Add(score(types.CategoryStructure, 3)).
		Add(score(types.CategoryHygiene, 0)).
		Add(score(types.CategoryContent, 2)).
		Add(score(types.CategorySyntax, 3)).
		Note(types.Note{Label: "Bonus", Message: `Custom page title: "Cats"`}).
		Build()
}

func TestBuilder_SumsAndPreservesOrder(t *testing.T) {
	r := sampleReport()

	assert.Equal(t, 8, r.Total)
	assert.Equal(t, types.MaxScore, r.Max)
	assert.True(t, r.Passed())
	require.Len(t, r.Categories, 4)
	assert.Equal(t, types.CategoryStructure, r.Categories[0].Name)
	assert.Equal(t, types.CategoryHygiene, r.Categories[1].Name)
	assert.Equal(t, types.CategoryContent, r.Categories[2].Name)
	assert.Equal(t, types.CategorySyntax, r.Categories[3].Name)
	require.Len(t, r.Notes, 1)
}

func TestBuilder_BuildIsDetachedFromBuilder(t *testing.T) {
	b := NewBuilder(types.StateNormal).Add(score(types.CategoryStructure, 3))
	r := b.Build()
	b.Add(score(types.CategoryHygiene, 3))

	assert.Len(t, r.Categories, 1)
	assert.Equal(t, 3, r.Total)
}

func TestUnsubmitted(t *testing.T) {
	r := Unsubmitted()

	assert.Equal(t, types.StateUnsubmitted, r.State)
	assert.Equal(t, 0, r.Total)
	assert.Empty(t, r.Categories)
	assert.False(t, r.Passed())
	require.Len(t, r.Notes, 1)
	assert.Equal(t, MsgUnsubmitted, r.Notes[0].Message)
}

func TestMarkdown_Layout(t *testing.T) {
	out := Markdown(sampleReport())

	assert.True(t, strings.HasPrefix(out, Title+"\n"))
	assert.Contains(t, out, "Status")
	assert.Contains(t, out, "Feedback")
	assert.True(t, strings.HasSuffix(out, "**Total Score: 8 / 12**\n"))

	structure := strings.Index(out, types.CategoryStructure)
	hygiene := strings.Index(out, types.CategoryHygiene)
	content := strings.Index(out, types.CategoryContent)
	syntax := strings.Index(out, types.CategorySyntax)
	bonus := strings.Index(out, "Custom page title")
	assert.True(t, structure < hygiene && hygiene < content && content < syntax && syntax < bonus,
		"rows must keep insertion order")
}

func TestMarkdown_StatusIcons(t *testing.T) {
	out := Markdown(sampleReport())
	lines := strings.Split(out, "\n")

	find := func(category string) string {
		for _, l := range lines {
			if strings.Contains(l, category) {
				return l
			}
		}
		t.Fatalf("row for %s not found", category)
		return ""
	}

	assert.Contains(t, find(types.CategoryStructure), iconFull)
	assert.Contains(t, find(types.CategoryHygiene), iconLow)
	assert.Contains(t, find(types.CategoryContent), iconPartial)
	assert.Contains(t, find("Bonus"), iconNote)
	assert.Contains(t, find(types.CategoryStructure), "3 / 3")
}

func TestMarkdown_Unsubmitted(t *testing.T) {
	out := Markdown(Unsubmitted())

	assert.Contains(t, out, MsgUnsubmitted)
	assert.Contains(t, out, "0 / 12")
	assert.NotContains(t, out, types.CategoryStructure)
	assert.True(t, strings.HasSuffix(out, "**Total Score: 0 / 12**\n"))
}

func TestMarkdown_Deterministic(t *testing.T) {
	assert.Equal(t, Markdown(sampleReport()), Markdown(sampleReport()))
}

func TestArtifact_JSON(t *testing.T) {
	a := NewArtifact("run-1", "index.html", sampleReport(), nil)

	data, err := a.JSON()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "run-1", decoded["run_id"])
	assert.Equal(t, true, decoded["passed"])
	assert.Equal(t, []any{}, decoded["diagnostics"])

	rep, ok := decoded["report"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(8), rep["total"])
	assert.Equal(t, "normal", rep["state"])
}

func TestMissing(t *testing.T) {
	out := Missing("index.html")

	assert.True(t, strings.HasPrefix(out, Title))
	assert.Contains(t, out, "`index.html`")
	assert.Contains(t, out, iconLow)
	assert.NotContains(t, out, "Total Score")
}
