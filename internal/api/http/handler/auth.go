package handler

import (
	"net/http"

	"github.com/dtroode/bookshelf-server/internal/api/http/response"
	"github.com/dtroode/bookshelf-server/internal/apperr"
	"github.com/dtroode/bookshelf-server/internal/logger"
	"github.com/dtroode/bookshelf-server/internal/model"
)

// Auth serves the /api/auth endpoints.
type Auth struct {
	authService    AuthService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, contextManager model.ContextManager, logger *logger.Logger) *Auth {
	return &Auth{
		authService:    authService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register handles POST /api/auth/register.
func (h *Auth) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := decodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Auth handler: invalid register request", "error", err.Error())
		response.Error(w, err)
		return
	}

	session, err := h.authService.Register(r.Context(), req.params())
	if err != nil {
		h.logFailure("register", err)
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, newSessionResponse(session))
}

// Login handles POST /api/auth/login.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Auth handler: invalid login request", "error", err.Error())
		response.Error(w, err)
		return
	}

	session, err := h.authService.Login(r.Context(), req.Identity, req.Password)
	if err != nil {
		h.logFailure("login", err)
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusOK, newSessionResponse(session))
}

// DeleteAccount handles DELETE /api/auth/user for the authenticated user.
func (h *Auth) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		response.Error(w, apperr.NewErrMissingAuthorizationToken())
		return
	}

	if err := h.authService.DeleteAccount(r.Context(), userID); err != nil {
		h.logFailure("delete account", err)
		response.Error(w, err)
		return
	}

	response.NoContent(w)
}

func (h *Auth) logFailure(op string, err error) {
	if response.StatusOf(err) >= http.StatusInternalServerError {
		h.logger.Error("Auth handler: "+op+" failed", "error", err.Error())
		return
	}
	h.logger.Debug("Auth handler: "+op+" rejected", "error", err.Error())
}
