package client

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pressdeck/pressdeck-api/internal/middleware"
)

// Routes returns client routes, all behind auth. Mutations additionally
// require the manager or admin role; viewers are read-only.
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(authMiddleware)

	manager := middleware.RequireManager()

	r.Get("/", h.List)
	r.With(manager).Post("/", h.Create)
	r.Get("/stats", h.Stats)

	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.GetByID)
		r.With(manager).Patch("/", h.Update)
		r.With(manager).Delete("/", h.Archive)
	})

	return r
}
