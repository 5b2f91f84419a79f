package sale

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pressdeck/pressdeck-api/internal/middleware"
)

// Routes returns sale routes, all behind auth. Mutations additionally
// require the manager or admin role; validation is a read-only check and
// stays open to viewers.
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(authMiddleware)

	manager := middleware.RequireManager()

	r.Get("/", h.List)
	r.With(manager).Post("/", h.Create)
	r.Post("/validate", h.Validate)

	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.GetByID)
		r.With(manager).Patch("/", h.Update)
		r.With(manager).Delete("/", h.Delete)
	})

	return r
}

// CalendarRoutes returns the per-game calendar routes, mounted under
// /games/{gameID}/sales/calendar, all behind auth. Previewing is free to
// any role; accepting a variation persists sales and needs manager or
// admin.
func (h *Handler) CalendarRoutes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(authMiddleware)

	r.Post("/", h.PreviewCalendar)
	r.With(middleware.RequireManager()).Post("/accept", h.AcceptCalendar)

	return r
}
