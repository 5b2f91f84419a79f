package sale

import (
	"time"

	"github.com/google/uuid"
)

// CreateSaleRequest for manually scheduling a single sale
type CreateSaleRequest struct {
	GameID      string `json:"game_id" validate:"required,uuid"`
	PlatformID  string `json:"platform_id" validate:"required,uuid"`
	Name        string `json:"name" validate:"required,min=2,max=255"`
	StartDate   string `json:"start_date" validate:"required,dateonly"`
	EndDate     string `json:"end_date" validate:"required,dateonly"`
	DiscountPct int    `json:"discount_percentage" validate:"required,gte=1,lte=95"`
	SaleType    string `json:"sale_type" validate:"required,sale_type"`
	EventName   string `json:"event_name,omitempty" validate:"omitempty,max=255"`
}

// UpdateSaleRequest for partial updates to a sale
type UpdateSaleRequest struct {
	Name        string `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	StartDate   string `json:"start_date,omitempty" validate:"omitempty,dateonly"`
	EndDate     string `json:"end_date,omitempty" validate:"omitempty,dateonly"`
	DiscountPct *int   `json:"discount_percentage,omitempty" validate:"omitempty,gte=1,lte=95"`
	Status      string `json:"status,omitempty" validate:"omitempty,oneof=planned live ended cancelled"`
}

// PreviewRequest drives one calendar generation run for a game
type PreviewRequest struct {
	LaunchDate  string   `json:"launch_date" validate:"required,dateonly"`
	Months      int      `json:"months,omitempty" validate:"omitempty,gte=1,lte=36"`
	EndDate     string   `json:"end_date,omitempty" validate:"omitempty,dateonly"`
	DiscountPct int      `json:"discount_percentage,omitempty" validate:"omitempty,gte=1,lte=95"`
	PlatformIDs []string `json:"platform_ids,omitempty" validate:"omitempty,dive,uuid"`
}

// AcceptedSale is one entry of a previewed variation chosen for persistence.
// The preview's ephemeral sale IDs are not accepted back.
type AcceptedSale struct {
	PlatformID  string `json:"platform_id" validate:"required,uuid"`
	Name        string `json:"sale_name" validate:"required,max=255"`
	StartDate   string `json:"start_date" validate:"required,dateonly"`
	EndDate     string `json:"end_date" validate:"required,dateonly"`
	DiscountPct int    `json:"discount_percentage" validate:"required,gte=1,lte=95"`
	SaleType    string `json:"sale_type" validate:"required,sale_type"`
	IsEvent     bool   `json:"is_event"`
	EventName   string `json:"event_name,omitempty" validate:"omitempty,max=255"`
}

// AcceptRequest persists a chosen calendar variation
type AcceptRequest struct {
	Strategy string         `json:"strategy" validate:"omitempty,oneof=maximize balanced events_only"`
	Sales    []AcceptedSale `json:"sales" validate:"required,min=1,dive"`
}

// ValidateSaleRequest checks one proposed sale window against the persisted
// schedule for the same game and platform
type ValidateSaleRequest struct {
	GameID        string `json:"game_id" validate:"required,uuid"`
	PlatformID    string `json:"platform_id" validate:"required,uuid"`
	StartDate     string `json:"start_date" validate:"required,dateonly"`
	EndDate       string `json:"end_date" validate:"required,dateonly"`
	ExcludeSaleID string `json:"exclude_sale_id,omitempty" validate:"omitempty,uuid"`
}

// ValidateSaleResponse reports the conflicting sales, if any
type ValidateSaleResponse struct {
	OK        bool            `json:"ok"`
	Conflicts []*SaleResponse `json:"conflicts"`
}

// SaleResponse is the API view of a persisted sale
type SaleResponse struct {
	ID          uuid.UUID `json:"id"`
	GameID      uuid.UUID `json:"game_id"`
	PlatformID  uuid.UUID `json:"platform_id"`
	Name        string    `json:"name"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	DiscountPct int       `json:"discount_percentage"`
	SaleType    string    `json:"sale_type"`
	IsEvent     bool      `json:"is_event"`
	EventName   string    `json:"event_name,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   string    `json:"created_at"`
}

// ToResponse converts a sale entity to a response
func ToResponse(s *Sale) *SaleResponse {
	resp := &SaleResponse{
		ID:          s.ID,
		GameID:      s.GameID,
		PlatformID:  s.PlatformID,
		Name:        s.Name,
		StartDate:   s.StartDate.Format("2006-01-02"),
		EndDate:     s.EndDate.Format("2006-01-02"),
		DiscountPct: s.DiscountPct,
		SaleType:    string(s.SaleType),
		IsEvent:     s.IsEvent,
		Status:      string(s.Status),
		CreatedAt:   s.CreatedAt.Format(time.RFC3339),
	}
	if s.EventName.Valid {
		resp.EventName = s.EventName.String
	}
	return resp
}
