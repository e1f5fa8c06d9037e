// Package fs provides file-based input and output for htmlconv.
package fs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/fwojciec/htmlconv"
)

// Ensure DocumentReader implements htmlconv.DocumentReader at compile time.
var _ htmlconv.DocumentReader = (*DocumentReader)(nil)

// DocumentReader reads UTF-8 documents from the local filesystem.
type DocumentReader struct{}

// NewDocumentReader creates a new DocumentReader.
func NewDocumentReader() *DocumentReader {
	return &DocumentReader{}
}

// ReadDocument returns the content of the file at path.
// Returns ENOTFOUND if the file does not exist.
func (r *DocumentReader) ReadDocument(path string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", htmlconv.Errorf(htmlconv.ENOTFOUND, "file %q does not exist", path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}
