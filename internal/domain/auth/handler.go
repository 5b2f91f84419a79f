package auth

import (
	"encoding/json"
	"net/http"

	"github.com/pressdeck/pressdeck-api/internal/domain/user"
	"github.com/pressdeck/pressdeck-api/internal/middleware"
	"github.com/pressdeck/pressdeck-api/internal/pkg/response"
	"github.com/pressdeck/pressdeck-api/internal/pkg/validator"
)

// Handler handles auth HTTP requests
type Handler struct {
	svc *Service
}

// NewHandler creates auth handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Login handles POST /auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	resp, err := h.svc.Login(r.Context(), &req)
	if err != nil {
		switch err {
		case ErrInvalidCredentials:
			response.Unauthorized(w, "Invalid email or password")
		case ErrAccountInactive:
			response.Forbidden(w, "Account is deactivated")
		default:
			response.InternalError(w)
		}
		return
	}

	response.OK(w, resp)
}

// Me handles GET /auth/me
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	id := middleware.GetUserID(r.Context())

	resp, err := h.svc.Me(r.Context(), id)
	if err != nil {
		if err == user.ErrNotFound {
			response.NotFound(w, "User not found")
			return
		}
		response.InternalError(w)
		return
	}

	response.OK(w, resp)
}
