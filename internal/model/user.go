package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByIdentity(ctx context.Context, identity string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	Create(ctx context.Context, user User) (User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// User represents a registered account with its password hash.
type User struct {
	ID           uuid.UUID `json:"id"`
	Identity     string    `json:"identity"`
	Name         string    `json:"name,omitempty"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

// RegisterParams contains parameters to register a user.
type RegisterParams struct {
	Identity string
	Password string
	Name     string
}

// Session is the result of a successful registration or login.
type Session struct {
	Token string
	User  User
}
