package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/dtroode/bookshelf-server/internal/apperr"
	"github.com/dtroode/bookshelf-server/internal/model"
	"github.com/dtroode/bookshelf-server/internal/password"
)

// RegisterRequest is the body of POST /api/auth/register. Username and
// Email are accepted as aliases of Identity.
type RegisterRequest struct {
	Identity string `json:"identity"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

func (r *RegisterRequest) normalize() {
	r.Identity = firstNonEmpty(r.Identity, r.Username, r.Email)
}

// Validate checks the request after alias resolution.
func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Identity, validation.Required),
		validation.Field(&r.Email, is.Email),
		validation.Field(&r.Name, validation.Length(0, 200)),
		validation.Field(&r.Password, validation.Required, validation.By(maxBytes(password.MaxLength))),
	)
}

func (r RegisterRequest) params() model.RegisterParams {
	return model.RegisterParams{
		Identity: r.Identity,
		Password: r.Password,
		Name:     strings.TrimSpace(r.Name),
	}
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Identity string `json:"identity"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) normalize() {
	r.Identity = firstNonEmpty(r.Identity, r.Username, r.Email)
}

// Validate checks the request after alias resolution.
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Identity, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

// CreateBookRequest is the body of POST /api/books.
type CreateBookRequest struct {
	Title         string `json:"title"`
	Author        string `json:"author"`
	PublishedYear int    `json:"published_year"`
}

// Validate requires every field.
func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.Author, validation.Required),
		validation.Field(&r.PublishedYear, validation.Required),
	)
}

func (r CreateBookRequest) params() model.CreateBookParams {
	return model.CreateBookParams{
		Title:         r.Title,
		Author:        r.Author,
		PublishedYear: r.PublishedYear,
	}
}

// UpdateBookRequest is the body of PUT /api/books/{id}. Absent fields are
// left unchanged; present fields must not be empty.
type UpdateBookRequest struct {
	Title         *string `json:"title"`
	Author        *string `json:"author"`
	PublishedYear *int    `json:"published_year"`
}

// Validate rejects present but empty fields.
func (r UpdateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NilOrNotEmpty),
		validation.Field(&r.Author, validation.NilOrNotEmpty),
		validation.Field(&r.PublishedYear, validation.NilOrNotEmpty),
	)
}

func (r UpdateBookRequest) params() model.UpdateBookParams {
	return model.UpdateBookParams{
		Title:         r.Title,
		Author:        r.Author,
		PublishedYear: r.PublishedYear,
	}
}

// decodeAndValidate decodes a JSON body strictly into dst and runs its
// Validate method. Every failure is a 400.
func decodeAndValidate(r *http.Request, dst validation.Validatable) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return decodeFailure(err)
	}
	if decoder.More() {
		return apperr.NewErrValidation("invalid request body: unexpected data after JSON object")
	}

	if n, ok := dst.(interface{ normalize() }); ok {
		n.normalize()
	}

	if err := dst.Validate(); err != nil {
		return apperr.NewErrValidation(err.Error())
	}

	return nil
}

// decodeFailure turns a JSON decoding failure into a client message that
// names request fields, never Go types.
func decodeFailure(err error) error {
	var (
		maxErr    *http.MaxBytesError
		typeErr   *json.UnmarshalTypeError
		syntaxErr *json.SyntaxError
	)
	switch {
	case errors.Is(err, io.EOF):
		return apperr.NewErrValidation("request body is required")
	case errors.As(err, &maxErr):
		return apperr.NewErrValidation("request body is too large")
	case errors.As(err, &typeErr):
		if typeErr.Field == "" {
			return apperr.NewErrValidation("request body must be a JSON object")
		}
		return apperr.NewErrValidation(fmt.Sprintf("%s must be %s", typeErr.Field, jsonKind(typeErr.Type.Kind())))
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return apperr.NewErrValidation("request body is not valid JSON")
	case strings.HasPrefix(err.Error(), "json: unknown field "):
		return apperr.NewErrValidation("unknown field " + strings.TrimPrefix(err.Error(), "json: unknown field "))
	default:
		return apperr.NewErrValidation("invalid request body")
	}
}

func jsonKind(kind reflect.Kind) string {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.String:
		return "a string"
	case reflect.Bool:
		return "a boolean"
	default:
		return "a valid value"
	}
}

func maxBytes(limit int) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if len(s) > limit {
			return fmt.Errorf("must be at most %d bytes", limit)
		}
		return nil
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
