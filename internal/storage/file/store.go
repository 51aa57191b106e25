// Package file persists the catalog document as a JSON file.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dtroode/bookshelf-server/internal/model"
)

var _ model.DocumentStore = (*Store)(nil)

// Store reads and writes the whole document on every call.
type Store struct {
	path string
}

// NewStore creates a file store at path. The parent directory is created
// and an empty document is written if the file does not exist yet.
func NewStore(ctx context.Context, path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	s := &Store{path: path}

	_, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := s.Save(ctx, model.Document{}); err != nil {
			return nil, fmt.Errorf("failed to initialize data file: %w", err)
		}
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to stat data file: %w", err)
	}

	if _, err := s.Load(ctx); err != nil {
		return nil, err
	}

	return s, nil
}

// Load reads and decodes the data file.
func (s *Store) Load(_ context.Context) (model.Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return model.Document{}, fmt.Errorf("failed to read data file: %w", err)
	}

	var doc model.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return model.Document{}, fmt.Errorf("failed to decode data file: %w", err)
	}
	doc.Normalize()

	return doc, nil
}

// Save encodes doc to a temporary file and renames it over the data file,
// so readers never observe a partially written document.
func (s *Store) Save(_ context.Context, doc model.Document) error {
	doc.Normalize()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace data file: %w", err)
	}

	return nil
}

// Path returns the data file location.
func (s *Store) Path() string {
	return s.path
}
