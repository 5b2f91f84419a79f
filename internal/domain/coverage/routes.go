package coverage

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pressdeck/pressdeck-api/internal/middleware"
)

// Routes returns coverage routes, all behind auth. Mutations additionally
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
		r.With(manager).Delete("/", h.Delete)
	})

	return r
}

// SummaryRoutes returns the per-game coverage summary route, mounted under
// /games/{gameID}/coverage, behind auth
func (h *Handler) SummaryRoutes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(authMiddleware)

	r.Get("/summary", h.Summary)

	return r
}
