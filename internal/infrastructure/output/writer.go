package output

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileWriter persists generated sources. Writes go through a temp file
// in the destination directory followed by a rename, so an aborted run
// never leaves a truncated file where the build system expects a
// complete one.
type FileWriter struct{}

// NewFileWriter creates a new FileWriter.
func NewFileWriter() *FileWriter {
	return &FileWriter{}
}

// Write stores content at path atomically.
func (w *FileWriter) Write(path string, content []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %q: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file in %q: %w", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing %q: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file for %q: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("moving %q into place: %w", path, err)
	}
	return nil
}
