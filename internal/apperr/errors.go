// Package apperr defines client-visible errors and the HTTP status each one
// maps to.
package apperr

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// Machine-readable error codes.
const (
	CodeValidation      = "validation_error"
	CodeUnauthenticated = "unauthenticated"
	CodeForbidden       = "forbidden"
	CodeNotFound        = "not_found"
	CodeConflict        = "conflict"
	CodeInternal        = "internal_error"
)

// APIError is an error safe to show to the client as is.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

func newAPIError(status int, code, message string) *APIError {
	return &APIError{Status: status, Code: code, Message: message}
}

// NewErrValidation reports incomplete or malformed client input.
func NewErrValidation(message string) *APIError {
	return newAPIError(http.StatusBadRequest, CodeValidation, message)
}

// NewErrMissingFields reports that required request fields are absent.
func NewErrMissingFields(fields string) *APIError {
	return NewErrValidation(fmt.Sprintf("%s are required", fields))
}

// NewErrPasswordTooLong reports a password over the 72-byte hashing limit.
func NewErrPasswordTooLong() *APIError {
	return NewErrValidation("password must be at most 72 bytes")
}

// NewErrMissingAuthorizationToken reports a request without a bearer token.
func NewErrMissingAuthorizationToken() *APIError {
	return newAPIError(http.StatusUnauthorized, CodeUnauthenticated, "no token provided")
}

// NewErrInvalidAuthorizationToken reports a token that failed verification.
func NewErrInvalidAuthorizationToken() *APIError {
	return newAPIError(http.StatusUnauthorized, CodeUnauthenticated, "invalid token")
}

// NewErrInvalidCredentials reports a failed login. It does not reveal which
// of identity or password was wrong.
func NewErrInvalidCredentials() *APIError {
	return newAPIError(http.StatusUnauthorized, CodeUnauthenticated, "invalid identity or password")
}

// NewErrIdentityIsTaken reports a registration with an existing identity.
func NewErrIdentityIsTaken(identity string) *APIError {
	return newAPIError(http.StatusConflict, CodeConflict, fmt.Sprintf("identity %q already exists", identity))
}

// NewErrBookNotFound reports an unknown book id.
func NewErrBookNotFound(id uuid.UUID) *APIError {
	return newAPIError(http.StatusNotFound, CodeNotFound, fmt.Sprintf("book %s not found", id))
}

// NewErrBookNotFoundRaw reports an unknown book id that is not a valid uuid.
func NewErrBookNotFoundRaw(id string) *APIError {
	return newAPIError(http.StatusNotFound, CodeNotFound, fmt.Sprintf("book %s not found", id))
}

// NewErrUserNotFound reports an unknown user id.
func NewErrUserNotFound(id string) *APIError {
	return newAPIError(http.StatusNotFound, CodeNotFound, fmt.Sprintf("user %s not found", id))
}

// NewErrNotBookOwner reports a mutation attempted by someone other than the
// book's owner.
func NewErrNotBookOwner(id uuid.UUID) *APIError {
	return newAPIError(http.StatusForbidden, CodeForbidden, fmt.Sprintf("not allowed to modify book %s", id))
}

// NewErrInternal reports an unexpected server failure without details.
func NewErrInternal() *APIError {
	return newAPIError(http.StatusInternalServerError, CodeInternal, "internal server error")
}
