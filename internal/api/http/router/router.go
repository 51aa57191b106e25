// Package router wires HTTP handlers and middleware into a chi router.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dtroode/bookshelf-server/internal/api/http/handler"
	"github.com/dtroode/bookshelf-server/internal/api/http/middleware"
	"github.com/dtroode/bookshelf-server/internal/api/http/response"
	"github.com/dtroode/bookshelf-server/internal/apperr"
	"github.com/dtroode/bookshelf-server/internal/logger"
)

// Dependencies holds everything the router mounts.
type Dependencies struct {
	Auth         *handler.Auth
	Book         *handler.Book
	Authenticate *middleware.Authenticate
	Registry     *prometheus.Registry
	Logger       *logger.Logger
}

// New builds the application router.
func New(deps Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.NewLogging(deps.Logger).Handle)
	r.Use(middleware.NewMetrics(deps.Registry).Handle)
	r.Use(middleware.NewRecovery(deps.Logger).Handle)
	r.Use(middleware.LimitBody)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		response.Error(w, &apperr.APIError{Status: http.StatusNotFound, Code: apperr.CodeNotFound, Message: "route not found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		response.JSON(w, http.StatusMethodNotAllowed, response.ErrorBody{Code: "method_not_allowed", Message: "method not allowed"})
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{Registry: deps.Registry}))

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", deps.Auth.Register)
			r.Post("/login", deps.Auth.Login)
			r.With(deps.Authenticate.Handle).Delete("/user", deps.Auth.DeleteAccount)
		})

		r.Route("/books", func(r chi.Router) {
			r.Use(deps.Authenticate.Handle)

			r.Get("/", deps.Book.List)
			r.Post("/", deps.Book.Create)
			r.Get("/{id}", deps.Book.Get)
			r.Put("/{id}", deps.Book.Update)
			r.Delete("/{id}", deps.Book.Delete)
		})
	})

	return r
}
