package app

import (
	"github.com/avc-dev/tinyapp/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// newRouter создает и настраивает роутер приложения
func newRouter(deps *dependencies, logger *zap.Logger) *chi.Mux {
	h := deps.handler

	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.GzipMiddleware(logger))
	r.Use(deps.auth.Authenticate)

	// Public routes
	r.Get("/ping", h.Ping)
	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.Post("/logout", h.Logout)
	r.With(deps.auth.TrackVisitor).Get("/u/{id}", h.Redirect)

	// Маршруты владельца ссылок
	r.Group(func(r chi.Router) {
		r.Use(deps.auth.RequireAuth)

		r.Get("/urls", h.ListLinks)
		r.Post("/urls", h.CreateLink)
		r.Get("/urls/{id}", h.GetLink)
		r.Post("/urls/{id}", h.UpdateLink)
		r.Put("/urls/{id}", h.UpdateLink)
		r.Post("/urls/{id}/delete", h.DeleteLink)
		r.Delete("/urls/{id}", h.DeleteLink)
		r.Delete("/api/user/urls", h.DeleteLinks)
	})

	return r
}
