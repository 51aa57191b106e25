package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/bookshelf-server/internal/logger"
	"github.com/dtroode/bookshelf-server/internal/model"
)

// TokenService issues access tokens and resolves them back to user IDs.
// Tokens are stateless: nothing is persisted and nothing can be revoked, so
// a token stays valid until it expires even if its user is deleted.
type TokenService struct {
	manager model.TokenManager
	logger  *logger.Logger
}

func NewTokenService(manager model.TokenManager, logger *logger.Logger) *TokenService {
	return &TokenService{manager: manager, logger: logger}
}

func (s *TokenService) Issue(_ context.Context, userID uuid.UUID) (string, error) {
	access, err := s.manager.GenerateAccessToken(userID)
	if err != nil {
		return "", fmt.Errorf("issue access: %w", err)
	}

	return access, nil
}

// GetUserID returns the subject of a valid token. Any failure wraps
// model.ErrInvalidToken.
func (s *TokenService) GetUserID(_ context.Context, token string) (uuid.UUID, error) {
	userID, err := s.manager.ParseAccessToken(token)
	if err != nil {
		s.logger.Debug("Token service: token rejected", "error", err.Error())
		return uuid.Nil, err
	}

	return userID, nil
}
