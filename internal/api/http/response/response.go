// Package response writes JSON bodies and maps errors to HTTP statuses.
package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dtroode/bookshelf-server/internal/apperr"
	"github.com/dtroode/bookshelf-server/internal/model"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// JSON writes v as the response body with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		//nolint:errcheck // the client may already be gone
		json.NewEncoder(w).Encode(v)
	}
}

// NoContent writes an empty 204 response.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Error writes err as an error body. APIError values are passed through,
// model.ErrNotFound becomes 404 and anything else is an opaque 500.
func Error(w http.ResponseWriter, err error) {
	JSON(w, StatusOf(err), bodyOf(err))
}

// StatusOf returns the status Error would write for err.
func StatusOf(err error) int {
	var apiErr *apperr.APIError
	switch {
	case errors.As(err, &apiErr):
		return apiErr.Status
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func bodyOf(err error) ErrorBody {
	var apiErr *apperr.APIError
	switch {
	case errors.As(err, &apiErr):
		return ErrorBody{Code: apiErr.Code, Message: apiErr.Message}
	case errors.Is(err, model.ErrNotFound):
		return ErrorBody{Code: apperr.CodeNotFound, Message: "not found"}
	default:
		internal := apperr.NewErrInternal()
		return ErrorBody{Code: internal.Code, Message: internal.Message}
	}
}
