package platform

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pressdeck/pressdeck-api/internal/pkg/response"
	"github.com/pressdeck/pressdeck-api/internal/pkg/validator"
)

// Handler handles platform HTTP requests
type Handler struct {
	svc *Service
}

// NewHandler creates platform handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Create handles POST /platforms
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreatePlatformRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	p, err := h.svc.Create(r.Context(), &req)
	if err != nil {
		if err == ErrSlugExists {
			response.Conflict(w, "Platform with this slug already exists")
			return
		}
		response.InternalError(w)
		return
	}

	response.Created(w, ToResponse(p))
}

// List handles GET /platforms
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	platforms, err := h.svc.List(r.Context(), activeOnly)
	if err != nil {
		response.InternalError(w)
		return
	}

	items := make([]*PlatformResponse, len(platforms))
	for i, p := range platforms {
		items[i] = ToResponse(p)
	}

	response.OK(w, items)
}

// GetByID handles GET /platforms/{id}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid platform ID")
		return
	}

	p, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		if err == ErrNotFound {
			response.NotFound(w, "Platform not found")
			return
		}
		response.InternalError(w)
		return
	}

	response.OK(w, ToResponse(p))
}

// Update handles PATCH /platforms/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid platform ID")
		return
	}

	var req UpdatePlatformRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	p, err := h.svc.Update(r.Context(), id, &req)
	if err != nil {
		if err == ErrNotFound {
			response.NotFound(w, "Platform not found")
			return
		}
		response.InternalError(w)
		return
	}

	response.OK(w, ToResponse(p))
}

// CreateEvent handles POST /platforms/{id}/events
func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	platformID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid platform ID")
		return
	}

	var req CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	e, err := h.svc.AddEvent(r.Context(), platformID, &req)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.NotFound(w, "Platform not found")
		case ErrInvalidRange:
			response.BadRequest(w, "Event end date must not be before start date")
		default:
			response.InternalError(w)
		}
		return
	}

	response.Created(w, ToEventResponse(e))
}

// ListEvents handles GET /events
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	var platformID *uuid.UUID
	if s := r.URL.Query().Get("platform_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			response.BadRequest(w, "Invalid platform ID")
			return
		}
		platformID = &id
	}

	var from, to *time.Time
	if s := r.URL.Query().Get("from"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			response.BadRequest(w, "Invalid from date, expected YYYY-MM-DD")
			return
		}
		from = &t
	}
	if s := r.URL.Query().Get("to"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			response.BadRequest(w, "Invalid to date, expected YYYY-MM-DD")
			return
		}
		to = &t
	}

	events, err := h.svc.ListEvents(r.Context(), platformID, from, to)
	if err != nil {
		response.InternalError(w)
		return
	}

	items := make([]*EventResponse, len(events))
	for i, e := range events {
		items[i] = ToEventResponse(e)
	}

	response.OK(w, items)
}

// DeleteEvent handles DELETE /events/{id}
func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid event ID")
		return
	}

	if err := h.svc.DeleteEvent(r.Context(), id); err != nil {
		if err == ErrEventNotFound {
			response.NotFound(w, "Event not found")
			return
		}
		response.InternalError(w)
		return
	}

	response.NoContent(w)
}
