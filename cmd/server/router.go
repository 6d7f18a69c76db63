package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/pcmoraesmenezes/design-patterns-lab/internal/api"
	apiMiddleware "github.com/pcmoraesmenezes/design-patterns-lab/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))

	shapeHandler := api.NewShapeHandler(app.galleryService, app.logger)
	notificationHandler := api.NewNotificationHandler(app.notificationService, app.logger)
	patternHandler := api.NewPatternHandler(app.catalog)
	authHandler := api.NewAuthHandler(app.jwtService, app.passwordVerifier, app.config.Auth, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Post("/auth/login", authHandler.Login)

		r.Get("/patterns", patternHandler.List)
		r.Get("/patterns/{slug}", patternHandler.Get)

		r.Post("/shapes", shapeHandler.Create)
		r.Get("/shapes", shapeHandler.List)
		r.Get("/canvas", shapeHandler.Canvas)

		r.Post("/notifications", notificationHandler.Send)

		// Destructive gallery operations require the admin token.
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Delete("/shapes", shapeHandler.Clear)
			r.Delete("/shapes/{id}", shapeHandler.Delete)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
