// Package memory keeps the catalog document in process memory.
package memory

import (
	"context"
	"sync"

	"github.com/dtroode/bookshelf-server/internal/model"
)

var _ model.DocumentStore = (*Store)(nil)

// Store holds a private copy of the document. Load and Save copy the
// document so callers mutate their own snapshot, the same way they would
// with a persistent backend.
type Store struct {
	mu  sync.RWMutex
	doc model.Document
}

// NewStore creates a store seeded with doc.
func NewStore(doc model.Document) *Store {
	s := &Store{doc: doc.Clone()}
	s.doc.Normalize()
	return s
}

// Load returns a snapshot of the stored document.
func (s *Store) Load(_ context.Context) (model.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.Clone(), nil
}

// Save replaces the stored document with a copy of doc.
func (s *Store) Save(_ context.Context, doc model.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = doc.Clone()
	s.doc.Normalize()
	return nil
}
