package mock

import "github.com/fwojciec/htmlconv"

var _ htmlconv.DocumentReader = (*DocumentReader)(nil)

// DocumentReader is a mock implementation of htmlconv.DocumentReader.
type DocumentReader struct {
	ReadDocumentFn func(path string) (string, error)
}

func (r *DocumentReader) ReadDocument(path string) (string, error) {
	return r.ReadDocumentFn(path)
}

var _ htmlconv.FileWriter = (*FileWriter)(nil)

// FileWriter is a mock implementation of htmlconv.FileWriter.
type FileWriter struct {
	WriteFileFn func(path, content string) error
}

func (w *FileWriter) WriteFile(path, content string) error {
	return w.WriteFileFn(path, content)
}
