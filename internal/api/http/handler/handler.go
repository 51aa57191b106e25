// Package handler implements the HTTP endpoints of the bookshelf API.
package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/dtroode/bookshelf-server/internal/model"
)

// AuthService registers users and opens sessions.
type AuthService interface {
	Register(ctx context.Context, params model.RegisterParams) (model.Session, error)
	Login(ctx context.Context, identity, password string) (model.Session, error)
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
}

// BookService manages catalog entries and enforces ownership.
type BookService interface {
	ListBooks(ctx context.Context) ([]model.Book, error)
	GetBook(ctx context.Context, id uuid.UUID) (model.Book, error)
	CreateBook(ctx context.Context, ownerID uuid.UUID, params model.CreateBookParams) (model.Book, error)
	UpdateBook(ctx context.Context, requesterID, id uuid.UUID, params model.UpdateBookParams) (model.Book, error)
	DeleteBook(ctx context.Context, requesterID, id uuid.UUID) error
}

// UserResponse is the public view of a user. It never carries the
// password hash.
type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Identity string    `json:"identity"`
	Name     string    `json:"name,omitempty"`
}

// SessionResponse is returned by register and login.
type SessionResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func newSessionResponse(session model.Session) SessionResponse {
	return SessionResponse{
		Token: session.Token,
		User: UserResponse{
			ID:       session.User.ID,
			Identity: session.User.Identity,
			Name:     session.User.Name,
		},
	}
}
