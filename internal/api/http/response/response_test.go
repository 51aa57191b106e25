package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/bookshelf-server/internal/apperr"
	"github.com/dtroode/bookshelf-server/internal/model"
)

func TestError(t *testing.T) {
	t.Parallel()

	bookID := uuid.New()

	tests := []struct {
		name       string
		in         error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{
			name:       "api error passthrough",
			in:         apperr.NewErrNotBookOwner(bookID),
			wantStatus: http.StatusForbidden,
			wantCode:   apperr.CodeForbidden,
			wantMsg:    apperr.NewErrNotBookOwner(bookID).Message,
		},
		{
			name:       "wrapped api error",
			in:         fmt.Errorf("outer: %w", apperr.NewErrMissingFields("title")),
			wantStatus: http.StatusBadRequest,
			wantCode:   apperr.CodeValidation,
			wantMsg:    "title are required",
		},
		{
			name:       "model not found -> 404",
			in:         fmt.Errorf("lookup: %w", model.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantCode:   apperr.CodeNotFound,
			wantMsg:    "not found",
		},
		{
			name:       "other -> 500 without details",
			in:         errors.New("pq: password authentication failed for user admin"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   apperr.CodeInternal,
			wantMsg:    "internal server error",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			Error(rec, tt.in)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body ErrorBody
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantMsg, body.Message)
		})
	}
}

func TestJSON_NilBody(t *testing.T) {
	rec := httptest.NewRecorder()
	JSON(rec, http.StatusAccepted, nil)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestNoContent(t *testing.T) {
	rec := httptest.NewRecorder()
	NoContent(rec)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}
