// Package ingestion loads the submitted document from disk.
package ingestion

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/html-autograder/internal/types"
)

// Load reads the submission at path as UTF-8 text.
// A missing file yields *MissingInputError; any other read failure *FileReadError.
func Load(path string) (*types.Submission, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &MissingInputError{Path: path}
		}
		return nil, &FileReadError{
			Message: "failed to read submission " + path,
			Cause:   err,
		}
	}

	raw := strings.TrimPrefix(string(data), "\uFEFF")
	if !utf8.ValidString(raw) {
		raw = strings.ToValidUTF8(raw, "\uFFFD")
	}

	return &types.Submission{Path: path, Raw: raw, Digest: digest(data)}, nil
}
