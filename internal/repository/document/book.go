package document

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/dtroode/bookshelf-server/internal/model"
)

var _ model.BookStore = (*BookRepository)(nil)

type BookRepository struct {
	store model.DocumentStore
}

func NewBookRepository(store model.DocumentStore) *BookRepository {
	return &BookRepository{
		store: store,
	}
}

func (r *BookRepository) List(ctx context.Context) ([]model.Book, error) {
	doc, err := r.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load document: %w", err)
	}

	if doc.Books == nil {
		return []model.Book{}, nil
	}
	return doc.Books, nil
}

func (r *BookRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Book, error) {
	doc, err := r.store.Load(ctx)
	if err != nil {
		return model.Book{}, fmt.Errorf("failed to load document: %w", err)
	}

	i := indexOfBook(doc.Books, id)
	if i < 0 {
		return model.Book{}, model.ErrNotFound
	}

	return doc.Books[i], nil
}

func (r *BookRepository) Create(ctx context.Context, book model.Book) (model.Book, error) {
	doc, err := r.store.Load(ctx)
	if err != nil {
		return model.Book{}, fmt.Errorf("failed to load document: %w", err)
	}

	doc.Books = append(doc.Books, book)
	if err := r.store.Save(ctx, doc); err != nil {
		return model.Book{}, fmt.Errorf("failed to save document: %w", err)
	}

	return book, nil
}

// Update replaces the stored book with the same ID.
func (r *BookRepository) Update(ctx context.Context, book model.Book) (model.Book, error) {
	doc, err := r.store.Load(ctx)
	if err != nil {
		return model.Book{}, fmt.Errorf("failed to load document: %w", err)
	}

	i := indexOfBook(doc.Books, book.ID)
	if i < 0 {
		return model.Book{}, model.ErrNotFound
	}

	doc.Books[i] = book
	if err := r.store.Save(ctx, doc); err != nil {
		return model.Book{}, fmt.Errorf("failed to save document: %w", err)
	}

	return book, nil
}

func (r *BookRepository) Delete(ctx context.Context, id uuid.UUID) error {
	doc, err := r.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load document: %w", err)
	}

	i := indexOfBook(doc.Books, id)
	if i < 0 {
		return model.ErrNotFound
	}

	doc.Books = slices.Delete(doc.Books, i, i+1)
	if err := r.store.Save(ctx, doc); err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}

	return nil
}

func indexOfBook(books []model.Book, id uuid.UUID) int {
	return slices.IndexFunc(books, func(b model.Book) bool { return b.ID == id })
}
