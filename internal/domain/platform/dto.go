package platform

import (
	"time"

	"github.com/google/uuid"
)

// CreatePlatformRequest for registering a storefront
type CreatePlatformRequest struct {
	Name         string `json:"name" validate:"required,min=2,max=100"`
	Slug         string `json:"slug" validate:"required,slug,max=50"`
	Color        string `json:"color,omitempty" validate:"omitempty,hexcolor"`
	CooldownDays int    `json:"cooldown_days" validate:"gte=0,lte=365"`
	MaxSaleDays  int    `json:"max_sale_days" validate:"required,gte=1,lte=90"`
	PartnerCode  string `json:"partner_code,omitempty" validate:"omitempty,max=50"`
}

// UpdatePlatformRequest for editing a storefront
type UpdatePlatformRequest struct {
	Name         string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Color        string `json:"color,omitempty" validate:"omitempty,hexcolor"`
	CooldownDays *int   `json:"cooldown_days,omitempty" validate:"omitempty,gte=0,lte=365"`
	MaxSaleDays  *int   `json:"max_sale_days,omitempty" validate:"omitempty,gte=1,lte=90"`
	PartnerCode  string `json:"partner_code,omitempty" validate:"omitempty,max=50"`
	IsActive     *bool  `json:"is_active,omitempty"`
}

// CreateEventRequest for adding a seasonal event to a platform
type CreateEventRequest struct {
	Name             string `json:"name" validate:"required,min=2,max=255"`
	StartDate        string `json:"start_date" validate:"required,dateonly"`
	EndDate          string `json:"end_date" validate:"required,dateonly"`
	RequiresCooldown *bool  `json:"requires_cooldown,omitempty"`
	IsRecurring      bool   `json:"is_recurring,omitempty"`
}

// PlatformResponse is the API view of a platform
type PlatformResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Color        string    `json:"color,omitempty"`
	CooldownDays int       `json:"cooldown_days"`
	MaxSaleDays  int       `json:"max_sale_days"`
	PartnerCode  string    `json:"partner_code,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    string    `json:"created_at"`
}

// EventResponse is the API view of a platform event
type EventResponse struct {
	ID               uuid.UUID `json:"id"`
	PlatformID       uuid.UUID `json:"platform_id"`
	Name             string    `json:"name"`
	StartDate        string    `json:"start_date"`
	EndDate          string    `json:"end_date"`
	RequiresCooldown bool      `json:"requires_cooldown"`
	IsRecurring      bool      `json:"is_recurring"`
	Source           string    `json:"source"`
}

// ToResponse converts a platform entity to a response
func ToResponse(p *Platform) *PlatformResponse {
	resp := &PlatformResponse{
		ID:           p.ID,
		Name:         p.Name,
		Slug:         p.Slug,
		Color:        p.Color,
		CooldownDays: p.CooldownDays,
		MaxSaleDays:  p.MaxSaleDays,
		IsActive:     p.IsActive,
		CreatedAt:    p.CreatedAt.Format(time.RFC3339),
	}
	if p.PartnerCode.Valid {
		resp.PartnerCode = p.PartnerCode.String
	}
	return resp
}

// ToEventResponse converts an event entity to a response
func ToEventResponse(e *Event) *EventResponse {
	return &EventResponse{
		ID:               e.ID,
		PlatformID:       e.PlatformID,
		Name:             e.Name,
		StartDate:        e.StartDate.Format("2006-01-02"),
		EndDate:          e.EndDate.Format("2006-01-02"),
		RequiresCooldown: e.RequiresCooldown,
		IsRecurring:      e.IsRecurring,
		Source:           string(e.Source),
	}
}
