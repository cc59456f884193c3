package placement

import (
	"testing"

	"github.com/jonathan/html-autograder/internal/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func analyze(t *testing.T, raw string) bool {
	t.Helper()
	m, err := document.Parse(raw)
	require.NoError(t, err)
	return Analyze(m)
}

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want bool
	}{
		{
			name: "heading inside body",
			raw:  "<!DOCTYPE html><html><head><title>T</title></head><body><h1>Hi</h1></body></html>",
			want: false,
		},
		{
			name: "heading before literal body",
			raw:  "<html><head><title>T</title></head><h1>Hi</h1><body><p>x</p></body></html>",
			want: true,
		},
		{
			name: "heading inside head before body",
			raw:  "<html><head><h1>Hi</h1></head><body><p>x</p></body></html>",
			want: true,
		},
		{
			name: "literal body tag is matched case-insensitively",
			raw:  "<h1>Hi</h1><BODY><p>x</p></BODY>",
			want: true,
		},
		{
			name: "no body tag written at all",
			raw:  "<h1>Hi</h1><p>x</p>",
			want: false,
		},
		{
			name: "prose forces body open before a later heading",
			raw:  "Hello there<body><h1>Hi</h1></body>",
			want: true,
		},
		{
			name: "no heading",
			raw:  "<p>x</p><body></body>",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, analyze(t, tt.raw))
		})
	}
}
