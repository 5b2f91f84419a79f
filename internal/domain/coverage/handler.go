package coverage

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pressdeck/pressdeck-api/internal/pkg/response"
	"github.com/pressdeck/pressdeck-api/internal/pkg/validator"
)

// Handler handles coverage HTTP requests
type Handler struct {
	svc *Service
}

// NewHandler creates coverage handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Create handles POST /coverage
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCoverageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	item, err := h.svc.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case ErrGameNotFound:
			response.NotFound(w, "Game not found")
		case ErrOutletNotFound:
			response.NotFound(w, "Outlet not found")
		default:
			response.InternalError(w)
		}
		return
	}

	response.Created(w, ToResponse(item))
}

// List handles GET /coverage
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)

	var filter ListFilter
	if s := r.URL.Query().Get("game_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			response.BadRequest(w, "Invalid game ID")
			return
		}
		filter.GameID = &id
	}
	if s := r.URL.Query().Get("outlet_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			response.BadRequest(w, "Invalid outlet ID")
			return
		}
		filter.OutletID = &id
	}
	if s := r.URL.Query().Get("type"); s != "" {
		ct := Type(s)
		filter.CoverageType = &ct
	}
	if s := r.URL.Query().Get("sentiment"); s != "" {
		sent := Sentiment(s)
		filter.Sentiment = &sent
	}

	items, total, err := h.svc.List(r.Context(), filter, limit, offset)
	if err != nil {
		response.InternalError(w)
		return
	}

	resp := make([]*CoverageResponse, len(items))
	for i, item := range items {
		resp[i] = ToResponse(item)
	}

	response.List(w, resp, total, limit, offset)
}

// GetByID handles GET /coverage/{id}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid coverage ID")
		return
	}

	item, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		if err == ErrNotFound {
			response.NotFound(w, "Coverage item not found")
			return
		}
		response.InternalError(w)
		return
	}

	response.OK(w, ToResponse(item))
}

// Update handles PATCH /coverage/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid coverage ID")
		return
	}

	var req UpdateCoverageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	item, err := h.svc.Update(r.Context(), id, &req)
	if err != nil {
		if err == ErrNotFound {
			response.NotFound(w, "Coverage item not found")
			return
		}
		response.InternalError(w)
		return
	}

	response.OK(w, ToResponse(item))
}

// Delete handles DELETE /coverage/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid coverage ID")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if err == ErrNotFound {
			response.NotFound(w, "Coverage item not found")
			return
		}
		response.InternalError(w)
		return
	}

	response.NoContent(w)
}

// Summary handles GET /games/{gameID}/coverage/summary
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	gameID, err := uuid.Parse(chi.URLParam(r, "gameID"))
	if err != nil {
		response.BadRequest(w, "Invalid game ID")
		return
	}

	summary, err := h.svc.Summary(r.Context(), gameID)
	if err != nil {
		if err == ErrGameNotFound {
			response.NotFound(w, "Game not found")
			return
		}
		response.InternalError(w)
		return
	}

	response.OK(w, summary)
}

func pagination(r *http.Request) (limit, offset int) {
	limit = 20
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
