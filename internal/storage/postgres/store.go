package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dtroode/bookshelf-server/internal/model"
)

// DefaultDocumentID is the row key the catalog document is stored under.
const DefaultDocumentID = "catalog"

const (
	loadQuery = `SELECT body FROM catalog_documents WHERE id = $1`
	saveQuery = `INSERT INTO catalog_documents (id, body, updated_at)
			  VALUES ($1, $2, now())
			  ON CONFLICT (id) DO UPDATE SET body = EXCLUDED.body, updated_at = EXCLUDED.updated_at`
)

// querier is the subset of pgxpool.Pool the store needs.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

var _ model.DocumentStore = (*Store)(nil)

// Store keeps the catalog document as one JSONB row.
type Store struct {
	db querier
	id string
}

// NewStore creates a store over db using DefaultDocumentID.
func NewStore(db querier) *Store {
	return &Store{db: db, id: DefaultDocumentID}
}

// Load reads the document row. A missing row is an empty document.
func (s *Store) Load(ctx context.Context) (model.Document, error) {
	var body []byte
	err := s.db.QueryRow(ctx, loadQuery, s.id).Scan(&body)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			doc := model.Document{}
			doc.Normalize()
			return doc, nil
		}
		return model.Document{}, fmt.Errorf("failed to load document: %w", err)
	}

	var doc model.Document
	if err := json.Unmarshal(body, &doc); err != nil {
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

	if _, err := s.db.Exec(ctx, saveQuery, s.id, string(body)); err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}

	return nil
}
