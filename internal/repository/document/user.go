// Package document implements the user and book stores on top of a
// DocumentStore. Every call loads the whole document, and mutating calls
// save the whole document back. There is no locking between the load and
// the save, so concurrent mutations can overwrite each other.
package document

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/dtroode/bookshelf-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	store model.DocumentStore
}

func NewUserRepository(store model.DocumentStore) *UserRepository {
	return &UserRepository{
		store: store,
	}
}

func (r *UserRepository) GetByIdentity(ctx context.Context, identity string) (model.User, error) {
	doc, err := r.store.Load(ctx)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to load document: %w", err)
	}

	i := slices.IndexFunc(doc.Users, func(u model.User) bool { return u.Identity == identity })
	if i < 0 {
		return model.User{}, model.ErrNotFound
	}

	return doc.Users[i], nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	doc, err := r.store.Load(ctx)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to load document: %w", err)
	}

	i := slices.IndexFunc(doc.Users, func(u model.User) bool { return u.ID == id })
	if i < 0 {
		return model.User{}, model.ErrNotFound
	}

	return doc.Users[i], nil
}

// Create appends user unless its identity is already taken in the freshly
// loaded document.
func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	doc, err := r.store.Load(ctx)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to load document: %w", err)
	}

	if slices.ContainsFunc(doc.Users, func(u model.User) bool { return u.Identity == user.Identity }) {
		return model.User{}, model.ErrDuplicateIdentity
	}

	doc.Users = append(doc.Users, user)
	if err := r.store.Save(ctx, doc); err != nil {
		return model.User{}, fmt.Errorf("failed to save document: %w", err)
	}

	return user, nil
}

// Delete removes the user. Books owned by the user are left in place.
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	doc, err := r.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load document: %w", err)
	}

	i := slices.IndexFunc(doc.Users, func(u model.User) bool { return u.ID == id })
	if i < 0 {
		return model.ErrNotFound
	}

	doc.Users = slices.Delete(doc.Users, i, i+1)
	if err := r.store.Save(ctx, doc); err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}

	return nil
}
