package client

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pressdeck/pressdeck-api/internal/pkg/response"
	"github.com/pressdeck/pressdeck-api/internal/pkg/validator"
)

// Handler handles client HTTP requests
type Handler struct {
	svc *Service
}

// NewHandler creates client handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Create handles POST /clients
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	c, err := h.svc.Create(r.Context(), &req)
	if err != nil {
		if err == ErrEmailExists {
			response.Conflict(w, "Client with this contact email already exists")
			return
		}
		response.InternalError(w)
		return
	}

	response.Created(w, ToResponse(c))
}

// List handles GET /clients
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)

	var status *Status
	if s := r.URL.Query().Get("status"); s != "" {
		st := Status(s)
		status = &st
	}

	clients, total, err := h.svc.List(r.Context(), status, limit, offset)
	if err != nil {
		response.InternalError(w)
		return
	}

	items := make([]*ClientResponse, len(clients))
	for i, c := range clients {
		items[i] = ToResponse(c)
	}

	response.List(w, items, total, limit, offset)
}

// GetByID handles GET /clients/{id}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid client ID")
		return
	}

	c, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		if err == ErrNotFound {
			response.NotFound(w, "Client not found")
			return
		}
		response.InternalError(w)
		return
	}

	response.OK(w, ToResponse(c))
}

// Update handles PATCH /clients/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid client ID")
		return
	}

	var req UpdateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	c, err := h.svc.Update(r.Context(), id, &req)
	if err != nil {
		if err == ErrNotFound {
			response.NotFound(w, "Client not found")
			return
		}
		response.InternalError(w)
		return
	}

	response.OK(w, ToResponse(c))
}

// Archive handles DELETE /clients/{id}
func (h *Handler) Archive(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid client ID")
		return
	}

	if err := h.svc.Archive(r.Context(), id); err != nil {
		if err == ErrNotFound {
			response.NotFound(w, "Client not found")
			return
		}
		response.InternalError(w)
		return
	}

	response.NoContent(w)
}

// Stats handles GET /clients/stats
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		response.InternalError(w)
		return
	}

	response.OK(w, stats)
}

func pagination(r *http.Request) (limit, offset int) {
	limit = 50
	offset = 0

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
	return limit, offset
}
