package manifest

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// Writer serializes manifests to disk.
type Writer struct {
	fs afero.Fs
}

// NewWriter returns a Writer operating on the OS filesystem.
func NewWriter() *Writer {
	return &Writer{fs: afero.NewOsFs()}
}

// Write renders the manifest as indented JSON with a trailing newline
// and writes it to path, creating or truncating the file. The tool
// runs once per CI release, so no temp-file staging is done; a failed
// run is simply retried.
func (w *Writer) Write(m *Manifest, path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}

	if err := afero.WriteFile(w.fs, path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}

	return nil
}

// Read parses an existing manifest from path.
func Read(fsys afero.Fs, path string) (*Manifest, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return &m, nil
}

// DefaultOutputPath returns the manifest location used when no output
// path is given.
func DefaultOutputPath(buildDir string) string {
	return filepath.Join(buildDir, OutputFileName)
}
