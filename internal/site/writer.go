package site

import (
	"os"
	"path/filepath"

	"github.com/catsite/catsite/internal/debug"
)

// Writer writes generated pages to the filesystem.
type Writer interface {
	// WriteFile writes content to a file, creating parent directories.
	WriteFile(path string, content []byte) error

	// Exists checks whether a file or directory exists at the path.
	Exists(path string) bool
}

// FileWriter implements Writer with atomic writes: content goes to a
// temporary file first and is renamed into place, so an aborted build
// never leaves a half-written page behind.
type FileWriter struct{}

// NewFileWriter creates a new FileWriter.
func NewFileWriter() Writer {
	return &FileWriter{}
}

// WriteFile writes content to a file, creating parent directories.
func (w *FileWriter) WriteFile(path string, content []byte) error {
	debug.Debug("[site] Writing output: %s (%d bytes)", path, len(content))

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return newSiteError(WriteFailed, path, "failed to create output directory", err)
		}
	}

	tempFile := path + ".tmp"
	f, err := os.OpenFile(tempFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return newSiteError(WriteFailed, path, "failed to create temporary file", err)
	}

	_, err = f.Write(content)
	closeErr := f.Close()

	if err != nil {
		_ = os.Remove(tempFile)
		return newSiteError(WriteFailed, path, "failed to write output content", err)
	}
	if closeErr != nil {
		_ = os.Remove(tempFile)
		return newSiteError(WriteFailed, path, "failed to close output file", closeErr)
	}

	if err := os.Rename(tempFile, path); err != nil {
		_ = os.Remove(tempFile)
		return newSiteError(WriteFailed, path, "failed to rename temporary file", err)
	}

	return nil
}

// Exists checks whether a file or directory exists at the path.
func (w *FileWriter) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
