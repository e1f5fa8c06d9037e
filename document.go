package htmlconv

// DocumentReader reads input documents.
type DocumentReader interface {
	// ReadDocument returns the full text of the document at path.
	// Returns ENOTFOUND if the path does not exist.
	ReadDocument(path string) (string, error)
}

// FileWriter writes generated files.
type FileWriter interface {
	// WriteFile replaces the file at path with content.
	WriteFile(path, content string) error
}
