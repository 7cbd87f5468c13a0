package spending

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Channel supplies the document text and persists it back.
type Channel interface {
	Load() (string, error)
	Save(text string) error
}

// File is a Channel backed by a Markdown file on disk.
type File string

// Load reads the document. A missing file is an empty document.
func (f File) Load() (string, error) {
	content, err := os.ReadFile(string(f))
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("could not read ledger file %q: %w", string(f), err)
	}
	return string(content), nil
}

// Save replaces the document content.
//
// The text is written to a temporary file in the same folder, then renamed
// over the ledger file.
func (f File) Save(text string) error {
	name := string(f)
	dir := filepath.Dir(name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create folder %q: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(name)+".*")
	if err != nil {
		return fmt.Errorf("could not create temporary file for %q: %w", name, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(text); err != nil {
		tmp.Close()
		return fmt.Errorf("could not write ledger file %q: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not write ledger file %q: %w", name, err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("could not write ledger file %q: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), name); err != nil {
		return fmt.Errorf("could not replace ledger file %q: %w", name, err)
	}
	return nil
}
