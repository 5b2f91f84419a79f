package dashboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns dashboard routes, all behind auth
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(authMiddleware)

	r.Get("/summary", h.Summary)

	return r
}
