package game

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pressdeck/pressdeck-api/internal/domain/client"
	"github.com/pressdeck/pressdeck-api/internal/pkg/response"
	"github.com/pressdeck/pressdeck-api/internal/pkg/validator"
)

// Handler handles game HTTP requests
type Handler struct {
	svc *Service
}

// NewHandler creates game handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Create handles POST /games
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	g, err := h.svc.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case client.ErrNotFound:
			response.BadRequest(w, "Unknown client")
		case ErrSlugExists:
			response.Conflict(w, "Game with this slug already exists")
		default:
			response.InternalError(w)
		}
		return
	}

	response.Created(w, ToResponse(g))
}

// List handles GET /games
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	limit := 50
	offset := 0
	if l := r.URL.Query().Get("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 && v <= 100 {
			limit = v
		}
	}
	if o := r.URL.Query().Get("offset"); o != "" {
		if v, err := strconv.Atoi(o); err == nil && v >= 0 {
			offset = v
		}
	}

	var clientID *uuid.UUID
	if c := r.URL.Query().Get("client_id"); c != "" {
		id, err := uuid.Parse(c)
		if err != nil {
			response.BadRequest(w, "Invalid client_id filter")
			return
		}
		clientID = &id
	}

	var status *Status
	if s := r.URL.Query().Get("status"); s != "" {
		st := Status(s)
		status = &st
	}

	games, total, err := h.svc.List(r.Context(), clientID, status, limit, offset)
	if err != nil {
		response.InternalError(w)
		return
	}

	items := make([]*GameResponse, len(games))
	for i, g := range games {
		items[i] = ToResponse(g)
	}

	response.List(w, items, total, limit, offset)
}

// GetByID handles GET /games/{id}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid game ID")
		return
	}

	g, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		if err == ErrNotFound {
			response.NotFound(w, "Game not found")
			return
		}
		response.InternalError(w)
		return
	}

	response.OK(w, ToResponse(g))
}

// Update handles PATCH /games/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid game ID")
		return
	}

	var req UpdateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	g, err := h.svc.Update(r.Context(), id, &req)
	if err != nil {
		if err == ErrNotFound {
			response.NotFound(w, "Game not found")
			return
		}
		response.InternalError(w)
		return
	}

	response.OK(w, ToResponse(g))
}

// Delete handles DELETE /games/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid game ID")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if err == ErrNotFound {
			response.NotFound(w, "Game not found")
			return
		}
		response.InternalError(w)
		return
	}

	response.NoContent(w)
}
