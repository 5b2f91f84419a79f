package sale

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pressdeck/pressdeck-api/internal/pkg/response"
	"github.com/pressdeck/pressdeck-api/internal/pkg/validator"
)

// Handler handles sale HTTP requests
type Handler struct {
	svc *Service
}

// NewHandler creates sale handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Create handles POST /sales
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	s, err := h.svc.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Created(w, ToResponse(s))
}

// List handles GET /sales
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)

	filter, err := listFilter(r)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	sales, total, err := h.svc.List(r.Context(), filter, limit, offset)
	if err != nil {
		response.InternalError(w)
		return
	}

	items := make([]*SaleResponse, len(sales))
	for i, s := range sales {
		items[i] = ToResponse(s)
	}

	response.List(w, items, total, limit, offset)
}

// GetByID handles GET /sales/{id}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid sale ID")
		return
	}

	s, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.OK(w, ToResponse(s))
}

// Update handles PATCH /sales/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid sale ID")
		return
	}

	var req UpdateSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	s, err := h.svc.Update(r.Context(), id, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.OK(w, ToResponse(s))
}

// Delete handles DELETE /sales/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid sale ID")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	response.NoContent(w)
}

// Validate handles POST /sales/validate
func (h *Handler) Validate(w http.ResponseWriter, r *http.Request) {
	var req ValidateSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	result, err := h.svc.Validate(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.OK(w, result)
}

// PreviewCalendar handles POST /games/{gameID}/sales/calendar
func (h *Handler) PreviewCalendar(w http.ResponseWriter, r *http.Request) {
	gameID, err := uuid.Parse(chi.URLParam(r, "gameID"))
	if err != nil {
		response.BadRequest(w, "Invalid game ID")
		return
	}

	var req PreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	variations, err := h.svc.PreviewCalendar(r.Context(), gameID, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.OK(w, variations)
}

// AcceptCalendar handles POST /games/{gameID}/sales/calendar/accept
func (h *Handler) AcceptCalendar(w http.ResponseWriter, r *http.Request) {
	gameID, err := uuid.Parse(chi.URLParam(r, "gameID"))
	if err != nil {
		response.BadRequest(w, "Invalid game ID")
		return
	}

	var req AcceptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	sales, err := h.svc.AcceptCalendar(r.Context(), gameID, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	items := make([]*SaleResponse, len(sales))
	for i, s := range sales {
		items[i] = ToResponse(s)
	}

	response.Created(w, items)
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch err {
	case ErrNotFound:
		response.NotFound(w, "Sale not found")
	case ErrGameNotFound:
		response.NotFound(w, "Game not found")
	case ErrPlatformNotFound:
		response.NotFound(w, "Platform not found")
	case ErrInvalidRange:
		response.BadRequest(w, "Sale end date must not be before start date")
	case ErrNoPlatforms:
		response.BadRequest(w, "No active platforms to schedule on")
	default:
		response.InternalError(w)
	}
}

func listFilter(r *http.Request) (ListFilter, error) {
	var filter ListFilter

	if s := r.URL.Query().Get("game_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return filter, ErrGameNotFound
		}
		filter.GameID = &id
	}
	if s := r.URL.Query().Get("platform_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return filter, ErrPlatformNotFound
		}
		filter.PlatformID = &id
	}
	if s := r.URL.Query().Get("status"); s != "" {
		st := Status(s)
		filter.Status = &st
	}
	if s := r.URL.Query().Get("from"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return filter, ErrInvalidRange
		}
		filter.From = &t
	}
	if s := r.URL.Query().Get("to"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return filter, ErrInvalidRange
		}
		filter.To = &t
	}

	return filter, nil
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
