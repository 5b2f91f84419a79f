package platform

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pressdeck/pressdeck-api/internal/middleware"
)

// Routes returns platform routes, all behind auth. Mutations additionally
// require the manager or admin role; viewers are read-only.
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(authMiddleware)

	manager := middleware.RequireManager()

	r.Get("/", h.List)
	r.With(manager).Post("/", h.Create)

	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.GetByID)
		r.With(manager).Patch("/", h.Update)
		r.With(manager).Post("/events", h.CreateEvent)
	})

	return r
}

// EventRoutes returns cross-platform event routes, all behind auth.
// Deleting an event requires the manager or admin role.
func (h *Handler) EventRoutes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(authMiddleware)

	r.Get("/", h.ListEvents)
	r.With(middleware.RequireManager()).Delete("/{id}", h.DeleteEvent)

	return r
}
