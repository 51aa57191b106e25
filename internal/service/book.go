package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dtroode/bookshelf-server/internal/apperr"
	"github.com/dtroode/bookshelf-server/internal/logger"
	"github.com/dtroode/bookshelf-server/internal/model"
)

type Book struct {
	bookStore model.BookStore
	logger    *logger.Logger
}

func NewBook(bookStore model.BookStore, logger *logger.Logger) *Book {
	return &Book{
		bookStore: bookStore,
		logger:    logger,
	}
}

// ListBooks returns every book in the catalog regardless of owner.
func (s *Book) ListBooks(ctx context.Context) ([]model.Book, error) {
	books, err := s.bookStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}

	return books, nil
}

// GetBook returns a book by ID. Reads are not restricted to the owner.
func (s *Book) GetBook(ctx context.Context, id uuid.UUID) (model.Book, error) {
	book, err := s.bookStore.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.Book{}, apperr.NewErrBookNotFound(id)
	}
	if err != nil {
		return model.Book{}, fmt.Errorf("failed to get book by id: %w", err)
	}

	return book, nil
}

func (s *Book) CreateBook(ctx context.Context, ownerID uuid.UUID, params model.CreateBookParams) (model.Book, error) {
	if strings.TrimSpace(params.Title) == "" || strings.TrimSpace(params.Author) == "" || params.PublishedYear == 0 {
		return model.Book{}, apperr.NewErrMissingFields("title, author and published_year")
	}

	book, err := s.bookStore.Create(ctx, model.Book{
		ID:            uuid.New(),
		Title:         params.Title,
		Author:        params.Author,
		PublishedYear: params.PublishedYear,
		OwnerID:       ownerID,
	})
	if err != nil {
		return model.Book{}, fmt.Errorf("failed to create book: %w", err)
	}

	s.logger.Info("Book service: book created",
		"book_id", book.ID,
		"owner_id", ownerID)

	return book, nil
}

// UpdateBook merges the non-nil fields of params over the stored book.
// ID and OwnerID are never changed.
func (s *Book) UpdateBook(ctx context.Context, requesterID, id uuid.UUID, params model.UpdateBookParams) (model.Book, error) {
	if err := validatePatch(params); err != nil {
		return model.Book{}, err
	}

	book, err := s.ownedBook(ctx, requesterID, id)
	if err != nil {
		return model.Book{}, err
	}

	if params.Title != nil {
		book.Title = *params.Title
	}
	if params.Author != nil {
		book.Author = *params.Author
	}
	if params.PublishedYear != nil {
		book.PublishedYear = *params.PublishedYear
	}

	updated, err := s.bookStore.Update(ctx, book)
	if errors.Is(err, model.ErrNotFound) {
		return model.Book{}, apperr.NewErrBookNotFound(id)
	}
	if err != nil {
		return model.Book{}, fmt.Errorf("failed to update book: %w", err)
	}

	s.logger.Info("Book service: book updated",
		"book_id", id,
		"owner_id", requesterID)

	return updated, nil
}

func (s *Book) DeleteBook(ctx context.Context, requesterID, id uuid.UUID) error {
	if _, err := s.ownedBook(ctx, requesterID, id); err != nil {
		return err
	}

	err := s.bookStore.Delete(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return apperr.NewErrBookNotFound(id)
	}
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}

	s.logger.Info("Book service: book deleted",
		"book_id", id,
		"owner_id", requesterID)

	return nil
}

func (s *Book) ownedBook(ctx context.Context, requesterID, id uuid.UUID) (model.Book, error) {
	book, err := s.GetBook(ctx, id)
	if err != nil {
		return model.Book{}, err
	}

	if book.OwnerID != requesterID {
		s.logger.Warn("Book service: modification by non-owner rejected",
			"book_id", id,
			"owner_id", book.OwnerID,
			"requester_id", requesterID)
		return model.Book{}, apperr.NewErrNotBookOwner(id)
	}

	return book, nil
}

func validatePatch(params model.UpdateBookParams) error {
	if params.Title != nil && strings.TrimSpace(*params.Title) == "" {
		return apperr.NewErrValidation("title must not be empty")
	}
	if params.Author != nil && strings.TrimSpace(*params.Author) == "" {
		return apperr.NewErrValidation("author must not be empty")
	}
	if params.PublishedYear != nil && *params.PublishedYear == 0 {
		return apperr.NewErrValidation("published_year must not be zero")
	}
	return nil
}
