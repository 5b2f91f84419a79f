package outlet

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pressdeck/pressdeck-api/internal/pkg/response"
	"github.com/pressdeck/pressdeck-api/internal/pkg/validator"
)

// Handler handles outlet HTTP requests
type Handler struct {
	svc *Service
}

// NewHandler creates outlet handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Create handles POST /outlets
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateOutletRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	o, err := h.svc.Create(r.Context(), &req)
	if err != nil {
		if err == ErrNameExists {
			response.Conflict(w, "Outlet with this name already exists")
			return
		}
		response.InternalError(w)
		return
	}

	response.Created(w, ToResponse(o))
}

// List handles GET /outlets
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)

	var tier *int
	if s := r.URL.Query().Get("tier"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 || v > 3 {
			response.BadRequest(w, "Tier must be 1, 2 or 3")
			return
		}
		tier = &v
	}

	var region *string
	if s := r.URL.Query().Get("region"); s != "" {
		region = &s
	}

	outlets, total, err := h.svc.List(r.Context(), tier, region, limit, offset)
	if err != nil {
		response.InternalError(w)
		return
	}

	items := make([]*OutletResponse, len(outlets))
	for i, o := range outlets {
		items[i] = ToResponse(o)
	}

	response.List(w, items, total, limit, offset)
}

// GetByID handles GET /outlets/{id}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid outlet ID")
		return
	}

	o, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		if err == ErrNotFound {
			response.NotFound(w, "Outlet not found")
			return
		}
		response.InternalError(w)
		return
	}

	response.OK(w, ToResponse(o))
}

// Update handles PATCH /outlets/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid outlet ID")
		return
	}

	var req UpdateOutletRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	o, err := h.svc.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.NotFound(w, "Outlet not found")
		case ErrNameExists:
			response.Conflict(w, "Outlet with this name already exists")
		default:
			response.InternalError(w)
		}
		return
	}

	response.OK(w, ToResponse(o))
}

// Delete handles DELETE /outlets/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid outlet ID")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if err == ErrNotFound {
			response.NotFound(w, "Outlet not found")
			return
		}
		response.InternalError(w)
		return
	}

	response.NoContent(w)
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
