package dashboard

import (
	"net/http"

	"github.com/pressdeck/pressdeck-api/internal/pkg/response"
)

// Handler handles dashboard HTTP requests
type Handler struct {
	svc *Service
}

// NewHandler creates dashboard handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Summary handles GET /dashboard/summary
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.Summary(r.Context())
	if err != nil {
		response.InternalError(w)
		return
	}

	response.OK(w, summary)
}
