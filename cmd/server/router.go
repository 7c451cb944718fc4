package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/BennoAlif/cats-social/internal/api"
	apiMiddleware "github.com/BennoAlif/cats-social/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(time.Duration(app.config.Server.RequestTimeoutSeconds) * time.Second))
	r.Use(apiMiddleware.TraceMiddleware)

	userHandler := api.NewUserHandler(app.userStore, app.tokenService, app.hasher, app.logger)
	catHandler := api.NewCatHandler(app.catStore, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.tokenService)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			if _, err := w.Write([]byte("Hello, world!")); err != nil {
				app.logger.Error("Failed to write hello response", "error", err)
			}
		})

		// Authentication endpoints (public)
		r.Post("/user/register", userHandler.Register)
		r.Post("/user/login", userHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/cat", catHandler.List)
			r.Post("/cat", catHandler.Create)
			r.Put("/cat/{id}", catHandler.Update)
		})

		// Deletion requires no token. Matches the published API contract.
		r.Delete("/cat/{id}", catHandler.Delete)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
