package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpcontext "github.com/dtroode/bookshelf-server/internal/api/http/context"
	"github.com/dtroode/bookshelf-server/internal/api/http/handler"
	"github.com/dtroode/bookshelf-server/internal/api/http/middleware"
	"github.com/dtroode/bookshelf-server/internal/model"
	"github.com/dtroode/bookshelf-server/internal/password"
	"github.com/dtroode/bookshelf-server/internal/repository/document"
	"github.com/dtroode/bookshelf-server/internal/service"
	"github.com/dtroode/bookshelf-server/internal/storage/memory"
	"github.com/dtroode/bookshelf-server/internal/testutil"
	"github.com/dtroode/bookshelf-server/internal/token"
)

type testApp struct {
	handler http.Handler
	store   *memory.Store
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	log := testutil.MakeNoopLogger()
	store := memory.NewStore(model.Document{})
	contextManager := httpcontext.NewManager()
	tokenService := service.NewTokenService(token.NewJWT("router-test-secret"), log)

	authService := service.NewAuth(document.NewUserRepository(store), password.NewBcrypt(password.MinCost), tokenService, log)
	bookService := service.NewBook(document.NewBookRepository(store), log)

	return &testApp{
		handler: New(Dependencies{
			Auth:         handler.NewAuth(authService, contextManager, log),
			Book:         handler.NewBook(bookService, contextManager, log),
			Authenticate: middleware.NewAuthenticate(tokenService, contextManager, log),
			Registry:     prometheus.NewRegistry(),
			Logger:       log,
		}),
		store: store,
	}
}

func (a *testApp) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

func (a *testApp) register(t *testing.T, identity string) handler.SessionResponse {
	t.Helper()

	rec := a.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"identity": identity,
		"password": "correct horse",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var session handler.SessionResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&session))
	return session
}

func (a *testApp) createBook(t *testing.T, token string) model.Book {
	t.Helper()

	rec := a.do(t, http.MethodPost, "/api/books", token, map[string]any{
		"title":          "Dune",
		"author":         "Frank Herbert",
		"published_year": 1965,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var book model.Book
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&book))
	return book
}

func (a *testApp) document(t *testing.T) model.Document {
	t.Helper()
	doc, err := a.store.Load(context.Background())
	require.NoError(t, err)
	return doc
}

func TestRouter_RegisterTwiceIsConflict(t *testing.T) {
	app := newTestApp(t)
	app.register(t, "u1")

	rec := app.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"identity": "u1",
		"password": "another",
	})

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Len(t, app.document(t).Users, 1)
}

func TestRouter_RegisterOverlongPasswordIsValidationError(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"identity": "u1",
		"password": strings.Repeat("a", 73),
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"validation_error"`)
	assert.Empty(t, app.document(t).Users)
}

func TestRouter_LoginIssuesWorkingToken(t *testing.T) {
	app := newTestApp(t)
	registered := app.register(t, "alice")

	rec := app.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "alice",
		"password": "correct horse",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var session handler.SessionResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&session))
	assert.Equal(t, registered.User.ID, session.User.ID)

	list := app.do(t, http.MethodGet, "/api/books", session.Token, nil)
	assert.Equal(t, http.StatusOK, list.Code)
	assert.JSONEq(t, `[]`, list.Body.String())

	wrong := app.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"identity": "alice",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, wrong.Code)
}

func TestRouter_BooksRequireToken(t *testing.T) {
	app := newTestApp(t)

	missing := app.do(t, http.MethodGet, "/api/books", "", nil)
	invalid := app.do(t, http.MethodGet, "/api/books", "garbage", nil)

	assert.Equal(t, http.StatusUnauthorized, missing.Code)
	assert.Equal(t, http.StatusUnauthorized, invalid.Code)
}

func TestRouter_CreateWithoutAuthorLeavesStoreUnchanged(t *testing.T) {
	app := newTestApp(t)
	session := app.register(t, "alice")

	rec := app.do(t, http.MethodPost, "/api/books", session.Token, map[string]any{
		"title":          "Dune",
		"published_year": 1965,
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, app.document(t).Books)
}

func TestRouter_CreateThenGet(t *testing.T) {
	app := newTestApp(t)
	session := app.register(t, "alice")
	created := app.createBook(t, session.Token)

	rec := app.do(t, http.MethodGet, "/api/books/"+created.ID.String(), session.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got model.Book
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, created, got)
	assert.Equal(t, session.User.ID, got.OwnerID)
}

func TestRouter_NonOwnerCannotModify(t *testing.T) {
	app := newTestApp(t)
	owner := app.register(t, "alice")
	other := app.register(t, "bob")
	created := app.createBook(t, owner.Token)
	path := "/api/books/" + created.ID.String()

	update := app.do(t, http.MethodPut, path, other.Token, map[string]any{"title": "Stolen"})
	del := app.do(t, http.MethodDelete, path, other.Token, nil)

	assert.Equal(t, http.StatusForbidden, update.Code)
	assert.Equal(t, http.StatusForbidden, del.Code)

	books := app.document(t).Books
	require.Len(t, books, 1)
	assert.Equal(t, created, books[0])

	// Reads are not scoped to the owner.
	get := app.do(t, http.MethodGet, path, other.Token, nil)
	assert.Equal(t, http.StatusOK, get.Code)
}

func TestRouter_OwnerUpdatesPartially(t *testing.T) {
	app := newTestApp(t)
	session := app.register(t, "alice")
	created := app.createBook(t, session.Token)

	rec := app.do(t, http.MethodPut, "/api/books/"+created.ID.String(), session.Token, map[string]any{
		"published_year": 1966,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var got model.Book
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.Title, got.Title)
	assert.Equal(t, 1966, got.PublishedYear)
}

func TestRouter_DeleteTwice(t *testing.T) {
	app := newTestApp(t)
	session := app.register(t, "alice")
	created := app.createBook(t, session.Token)
	path := "/api/books/" + created.ID.String()

	first := app.do(t, http.MethodDelete, path, session.Token, nil)
	second := app.do(t, http.MethodDelete, path, session.Token, nil)

	assert.Equal(t, http.StatusNoContent, first.Code)
	assert.Equal(t, http.StatusNotFound, second.Code)
}

func TestRouter_UnknownBookID(t *testing.T) {
	app := newTestApp(t)
	session := app.register(t, "alice")

	unknown := app.do(t, http.MethodGet, "/api/books/"+uuid.NewString(), session.Token, nil)
	malformed := app.do(t, http.MethodGet, "/api/books/42", session.Token, nil)

	assert.Equal(t, http.StatusNotFound, unknown.Code)
	assert.Equal(t, http.StatusNotFound, malformed.Code)
}

func TestRouter_DeleteAccount(t *testing.T) {
	app := newTestApp(t)
	session := app.register(t, "alice")

	rec := app.do(t, http.MethodDelete, "/api/auth/user", session.Token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, app.document(t).Users)

	again := app.do(t, http.MethodDelete, "/api/auth/user", session.Token, nil)
	assert.Equal(t, http.StatusNotFound, again.Code)
}

func TestRouter_OperationalEndpoints(t *testing.T) {
	app := newTestApp(t)

	health := app.do(t, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, health.Code)
	assert.JSONEq(t, `{"status":"ok"}`, health.Body.String())

	metrics := app.do(t, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, metrics.Code)
	assert.Contains(t, metrics.Body.String(), "bookshelf_http_requests_total")

	missing := app.do(t, http.MethodGet, "/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, missing.Code)
	assert.JSONEq(t, `{"code":"not_found","message":"route not found"}`, missing.Body.String())

	notAllowed := app.do(t, http.MethodPatch, "/api/auth/login", "", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, notAllowed.Code)
}
