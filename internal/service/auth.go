package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/bookshelf-server/internal/apperr"
	"github.com/dtroode/bookshelf-server/internal/logger"
	"github.com/dtroode/bookshelf-server/internal/model"
)

type Auth struct {
	userStore    model.UserStore
	hasher       model.PasswordHasher
	tokenService *TokenService
	logger       *logger.Logger
	now          func() time.Time
}

func NewAuth(
	userStore model.UserStore,
	hasher model.PasswordHasher,
	tokenService *TokenService,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
		now:          time.Now,
	}
}

// Register creates a user and returns a session for it. The identity check
// and the insert happen in one load/save cycle of the store, but two
// concurrent registrations of the same identity are not serialized.
func (a *Auth) Register(ctx context.Context, params model.RegisterParams) (model.Session, error) {
	a.logger.Debug("Auth service: starting user registration",
		"identity", params.Identity)

	_, err := a.userStore.GetByIdentity(ctx, params.Identity)
	if err == nil {
		a.logger.Info("Auth service: user already exists",
			"identity", params.Identity)
		return model.Session{}, apperr.NewErrIdentityIsTaken(params.Identity)
	}
	if !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get user by identity",
			"identity", params.Identity,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to get user by identity: %w", err)
	}

	hash, err := a.hasher.Hash(params.Password)
	if errors.Is(err, model.ErrPasswordTooLong) {
		return model.Session{}, apperr.NewErrPasswordTooLong()
	}
	if err != nil {
		a.logger.Error("Auth service: failed to hash password",
			"identity", params.Identity,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := a.userStore.Create(ctx, model.User{
		ID:           uuid.New(),
		Identity:     params.Identity,
		Name:         params.Name,
		PasswordHash: hash,
		CreatedAt:    a.now().UTC(),
	})
	if errors.Is(err, model.ErrDuplicateIdentity) {
		return model.Session{}, apperr.NewErrIdentityIsTaken(params.Identity)
	}
	if err != nil {
		a.logger.Error("Auth service: failed to create user",
			"identity", params.Identity,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := a.tokenService.Issue(ctx, user.ID)
	if err != nil {
		return model.Session{}, fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: user registered",
		"identity", user.Identity,
		"user_id", user.ID)

	return model.Session{Token: token, User: user}, nil
}

// Login checks the password and returns a session. Unknown identities and
// wrong passwords produce the same error.
func (a *Auth) Login(ctx context.Context, identity, password string) (model.Session, error) {
	user, err := a.userStore.GetByIdentity(ctx, identity)
	if errors.Is(err, model.ErrNotFound) {
		a.logger.Info("Auth service: login for unknown identity",
			"identity", identity)
		return model.Session{}, apperr.NewErrInvalidCredentials()
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get user by identity",
			"identity", identity,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to get user by identity: %w", err)
	}

	if !a.hasher.Verify(password, user.PasswordHash) {
		a.logger.Info("Auth service: wrong password",
			"user_id", user.ID)
		return model.Session{}, apperr.NewErrInvalidCredentials()
	}

	token, err := a.tokenService.Issue(ctx, user.ID)
	if err != nil {
		return model.Session{}, fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: login completed",
		"user_id", user.ID)

	return model.Session{Token: token, User: user}, nil
}

// DeleteAccount removes the caller's own user record. Their books stay in
// the catalog with an owner that no longer exists.
func (a *Auth) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	err := a.userStore.Delete(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return apperr.NewErrUserNotFound(userID.String())
	}
	if err != nil {
		a.logger.Error("Auth service: failed to delete user",
			"user_id", userID,
			"error", err.Error())
		return fmt.Errorf("failed to delete user: %w", err)
	}

	a.logger.Info("Auth service: user deleted",
		"user_id", userID)

	return nil
}
