package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dtroode/bookshelf-server/internal/api/http/response"
	"github.com/dtroode/bookshelf-server/internal/apperr"
	"github.com/dtroode/bookshelf-server/internal/logger"
	"github.com/dtroode/bookshelf-server/internal/model"
)

// Book serves the /api/books endpoints. Every route expects an
// authenticated user in the request context.
type Book struct {
	bookService    BookService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewBook creates a new Book handler.
func NewBook(bookService BookService, contextManager model.ContextManager, logger *logger.Logger) *Book {
	return &Book{
		bookService:    bookService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// List handles GET /api/books.
func (h *Book) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.bookService.ListBooks(r.Context())
	if err != nil {
		h.fail(w, "list books", err)
		return
	}

	response.JSON(w, http.StatusOK, books)
}

// Get handles GET /api/books/{id}.
func (h *Book) Get(w http.ResponseWriter, r *http.Request) {
	id, err := bookID(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	book, err := h.bookService.GetBook(r.Context(), id)
	if err != nil {
		h.fail(w, "get book", err)
		return
	}

	response.JSON(w, http.StatusOK, book)
}

// Create handles POST /api/books.
func (h *Book) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req CreateBookRequest
	if err := decodeAndValidate(r, &req); err != nil {
		response.Error(w, err)
		return
	}

	book, err := h.bookService.CreateBook(r.Context(), userID, req.params())
	if err != nil {
		h.fail(w, "create book", err)
		return
	}

	response.JSON(w, http.StatusCreated, book)
}

// Update handles PUT /api/books/{id}.
func (h *Book) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	id, err := bookID(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	var req UpdateBookRequest
	if err := decodeAndValidate(r, &req); err != nil {
		response.Error(w, err)
		return
	}

	book, err := h.bookService.UpdateBook(r.Context(), userID, id, req.params())
	if err != nil {
		h.fail(w, "update book", err)
		return
	}

	response.JSON(w, http.StatusOK, book)
}

// Delete handles DELETE /api/books/{id}.
func (h *Book) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	id, err := bookID(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	if err := h.bookService.DeleteBook(r.Context(), userID, id); err != nil {
		h.fail(w, "delete book", err)
		return
	}

	response.NoContent(w)
}

func (h *Book) userID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		response.Error(w, apperr.NewErrMissingAuthorizationToken())
		return uuid.Nil, false
	}
	return userID, true
}

func (h *Book) fail(w http.ResponseWriter, op string, err error) {
	if response.StatusOf(err) >= http.StatusInternalServerError {
		h.logger.Error("Book handler: failed to "+op, "error", err.Error())
	}
	response.Error(w, err)
}

// bookID parses the {id} URL parameter. Anything that is not a uuid cannot
// name a stored book, so it is reported as not found.
func bookID(r *http.Request) (uuid.UUID, error) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperr.NewErrBookNotFoundRaw(raw)
	}
	return id, nil
}
