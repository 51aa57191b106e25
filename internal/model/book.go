package model

import (
	"context"

	"github.com/google/uuid"
)

// BookStore defines persistence operations for books.
type BookStore interface {
	List(ctx context.Context) ([]Book, error)
	GetByID(ctx context.Context, id uuid.UUID) (Book, error)
	Create(ctx context.Context, book Book) (Book, error)
	Update(ctx context.Context, book Book) (Book, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Book represents a catalog entry owned by a user.
type Book struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	PublishedYear int       `json:"published_year"`
	OwnerID       uuid.UUID `json:"owner_id"`
}

// CreateBookParams contains parameters to create a book.
type CreateBookParams struct {
	Title         string
	Author        string
	PublishedYear int
}

// UpdateBookParams is a partial update. Nil fields keep their stored value.
type UpdateBookParams struct {
	Title         *string
	Author        *string
	PublishedYear *int
}
