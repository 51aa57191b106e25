package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/bookshelf-server/internal/model"
)

func TestNewStore_CreatesEmptyDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "db.json")

	s, err := NewStore(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, path, s.Path())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"users": [], "books": []}`, string(data))
}

func TestStore_SaveLoad(t *testing.T) {
	ctx := context.Background()
	s, err := NewStore(ctx, filepath.Join(t.TempDir(), "db.json"))
	require.NoError(t, err)

	owner := uuid.New()
	doc := model.Document{
		Users: []model.User{{
			ID:           owner,
			Identity:     "alice",
			PasswordHash: "$2a$10$hash",
			CreatedAt:    time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		}},
		Books: []model.Book{{
			ID:            uuid.New(),
			Title:         "Dune",
			Author:        "Frank Herbert",
			PublishedYear: 1965,
			OwnerID:       owner,
		}},
	}
	require.NoError(t, s.Save(ctx, doc))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, doc, got)

	entries, err := os.ReadDir(filepath.Dir(s.Path()))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must be renamed away")
}

func TestNewStore_KeepsExistingData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"books":[{"id":"3b241101-e2bb-4255-8caf-4136c566a962","title":"Emma","author":"Jane Austen","published_year":1815}]}`), 0o600))

	s, err := NewStore(context.Background(), path)
	require.NoError(t, err)

	doc, err := s.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, doc.Books, 1)
	assert.Equal(t, "Emma", doc.Books[0].Title)
	assert.Equal(t, uuid.Nil, doc.Books[0].OwnerID)
	assert.NotNil(t, doc.Users)
}

func TestNewStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewStore(context.Background(), path)
	require.Error(t, err)
}
