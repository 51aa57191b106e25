package document

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/bookshelf-server/internal/mocks"
	"github.com/dtroode/bookshelf-server/internal/model"
	"github.com/dtroode/bookshelf-server/internal/storage/memory"
)

func newBook(title string, owner uuid.UUID) model.Book {
	return model.Book{ID: uuid.New(), Title: title, Author: "Someone", PublishedYear: 2001, OwnerID: owner}
}

func TestBookRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewBookRepository(memory.NewStore(model.Document{}))
	owner := uuid.New()

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	book := newBook("Dune", owner)
	created, err := repo.Create(ctx, book)
	require.NoError(t, err)
	assert.Equal(t, book, created)

	got, err := repo.GetByID(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, book, got)

	book.Title = "Dune Messiah"
	updated, err := repo.Update(ctx, book)
	require.NoError(t, err)
	assert.Equal(t, "Dune Messiah", updated.Title)

	list, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Dune Messiah", list[0].Title)

	require.NoError(t, repo.Delete(ctx, book.ID))
	assert.ErrorIs(t, repo.Delete(ctx, book.ID), model.ErrNotFound)

	_, err = repo.GetByID(ctx, book.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)

	_, err = repo.Update(ctx, book)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestBookRepository_StoreErrors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")

	store := mocks.NewDocumentStore(t)
	store.On("Load", mock.Anything).Return(model.Document{}, boom)
	repo := NewBookRepository(store)

	_, err := repo.List(ctx)
	assert.ErrorIs(t, err, boom)
	_, err = repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, boom)
	_, err = repo.Create(ctx, newBook("x", uuid.New()))
	assert.ErrorIs(t, err, boom)
	_, err = repo.Update(ctx, newBook("x", uuid.New()))
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, repo.Delete(ctx, uuid.New()), boom)
}

func TestBookRepository_MutationsSaveWholeDocument(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	kept := newBook("Kept", owner)
	gone := newBook("Gone", owner)
	user := model.User{ID: owner, Identity: "alice"}

	store := mocks.NewDocumentStore(t)
	store.On("Load", mock.Anything).Return(model.Document{Users: []model.User{user}, Books: []model.Book{kept, gone}}, nil).Once()
	store.On("Save", mock.Anything, model.Document{Users: []model.User{user}, Books: []model.Book{kept}}).Return(nil).Once()

	require.NoError(t, NewBookRepository(store).Delete(ctx, gone.ID))
}

// barrierStore lets every Load through only after `parties` loads have
// started, forcing overlapping read-modify-write cycles.
type barrierStore struct {
	inner   model.DocumentStore
	arrived sync.WaitGroup
}

func newBarrierStore(inner model.DocumentStore, parties int) *barrierStore {
	s := &barrierStore{inner: inner}
	s.arrived.Add(parties)
	return s
}

func (s *barrierStore) Load(ctx context.Context) (model.Document, error) {
	doc, err := s.inner.Load(ctx)
	s.arrived.Done()
	s.arrived.Wait()
	return doc, err
}

func (s *barrierStore) Save(ctx context.Context, doc model.Document) error {
	return s.inner.Save(ctx, doc)
}

func TestBookRepository_ConcurrentCreatesLoseUpdate(t *testing.T) {
	ctx := context.Background()
	backing := memory.NewStore(model.Document{})
	repo := NewBookRepository(newBarrierStore(backing, 2))
	owner := uuid.New()

	var wg sync.WaitGroup
	for _, title := range []string{"First", "Second"} {
		wg.Add(1)
		go func(title string) {
			defer wg.Done()
			_, err := repo.Create(ctx, newBook(title, owner))
			assert.NoError(t, err)
		}(title)
	}
	wg.Wait()

	doc, err := backing.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, doc.Books, 1, "both writers loaded an empty document, so the last save wins")
}
