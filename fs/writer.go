package fs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/htmlconv"
)

// Ensure Writer implements htmlconv.FileWriter at compile time.
var _ htmlconv.FileWriter = (*Writer)(nil)

// Writer writes generated files with atomic replace semantics.
// Content is written to path + ".tmp" and renamed over path, so a failed
// write never leaves a partial program behind.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteFile replaces the file at path with content, creating parent directories.
func (w *Writer) WriteFile(path, content string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
