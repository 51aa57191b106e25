// Package sqlite keeps the catalog document in a single SQLite row.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/dtroode/bookshelf-server/database"
	"github.com/dtroode/bookshelf-server/internal/model"
)

// DefaultDocumentID is the row key the catalog document is stored under.
const DefaultDocumentID = "catalog"

const (
	loadQuery = `SELECT body FROM catalog_documents WHERE id = ?`
	saveQuery = `INSERT INTO catalog_documents (id, body, updated_at)
			  VALUES (?, ?, CURRENT_TIMESTAMP)
			  ON CONFLICT(id) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at`
)

// Open opens (or creates) the SQLite database at path and applies migrations.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	// Ensure directory exists so first-run succeeds.
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := database.MigrateSQLite(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

var _ model.DocumentStore = (*Store)(nil)

// Store reads and writes the document row on every call.
type Store struct {
	db *sql.DB
	id string
}

// NewStore creates a store over an open, migrated database.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db, id: DefaultDocumentID}
}

// Load reads the document row. A missing row is an empty document.
func (s *Store) Load(ctx context.Context) (model.Document, error) {
	var body string
	err := s.db.QueryRowContext(ctx, loadQuery, s.id).Scan(&body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			doc := model.Document{}
			doc.Normalize()
			return doc, nil
		}
		return model.Document{}, fmt.Errorf("failed to load document: %w", err)
	}

	var doc model.Document
	if err := json.Unmarshal([]byte(body), &doc); err != nil {
		return model.Document{}, fmt.Errorf("failed to decode document: %w", err)
	}
	doc.Normalize()

	return doc, nil
}

// Save upserts the document row.
func (s *Store) Save(ctx context.Context, doc model.Document) error {
	doc.Normalize()

	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, saveQuery, s.id, string(body)); err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}

	return nil
}
