package game

import (
	"time"

	"github.com/google/uuid"
)

// CreateGameRequest for adding a title
type CreateGameRequest struct {
	ClientID           string   `json:"client_id" validate:"required,uuid"`
	Title              string   `json:"title" validate:"required,min=1,max=255"`
	Slug               string   `json:"slug" validate:"required,slug,max=100"`
	Genres             []string `json:"genres,omitempty" validate:"omitempty,max=10,dive,min=1,max=50"`
	ReleaseDate        string   `json:"release_date,omitempty" validate:"omitempty,dateonly"`
	PressKitURL        string   `json:"press_kit_url,omitempty" validate:"omitempty,url"`
	DefaultDiscountPct int      `json:"default_discount_pct,omitempty" validate:"omitempty,gte=0,lte=100"`
}

// UpdateGameRequest for editing a title
type UpdateGameRequest struct {
	Title              string   `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Genres             []string `json:"genres,omitempty" validate:"omitempty,max=10,dive,min=1,max=50"`
	ReleaseDate        string   `json:"release_date,omitempty" validate:"omitempty,dateonly"`
	PressKitURL        string   `json:"press_kit_url,omitempty" validate:"omitempty,url"`
	DefaultDiscountPct *int     `json:"default_discount_pct,omitempty" validate:"omitempty,gte=0,lte=100"`
	Status             string   `json:"status,omitempty" validate:"omitempty,oneof=announced released delisted"`
}

// GameResponse is the API view of a game
type GameResponse struct {
	ID                 uuid.UUID `json:"id"`
	ClientID           uuid.UUID `json:"client_id"`
	Title              string    `json:"title"`
	Slug               string    `json:"slug"`
	Genres             []string  `json:"genres"`
	ReleaseDate        string    `json:"release_date,omitempty"`
	PressKitURL        string    `json:"press_kit_url,omitempty"`
	DefaultDiscountPct int       `json:"default_discount_pct"`
	Status             string    `json:"status"`
	CreatedAt          string    `json:"created_at"`
}

// ToResponse converts entity to response
func ToResponse(g *Game) *GameResponse {
	resp := &GameResponse{
		ID:                 g.ID,
		ClientID:           g.ClientID,
		Title:              g.Title,
		Slug:               g.Slug,
		Genres:             g.Genres,
		DefaultDiscountPct: g.DefaultDiscountPct,
		Status:             string(g.Status),
		CreatedAt:          g.CreatedAt.Format(time.RFC3339),
	}
	if resp.Genres == nil {
		resp.Genres = []string{}
	}
	if g.ReleaseDate.Valid {
		resp.ReleaseDate = g.ReleaseDate.Time.Format("2006-01-02")
	}
	if g.PressKitURL.Valid {
		resp.PressKitURL = g.PressKitURL.String
	}
	return resp
}
