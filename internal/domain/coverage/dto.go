package coverage

import (
	"time"

	"github.com/google/uuid"
)

// CreateCoverageRequest for logging a piece of coverage by hand
type CreateCoverageRequest struct {
	GameID       string `json:"game_id" validate:"required,uuid"`
	OutletID     string `json:"outlet_id" validate:"required,uuid"`
	URL          string `json:"url" validate:"required,url"`
	Headline     string `json:"headline" validate:"required,min=2,max=500"`
	Author       string `json:"author,omitempty" validate:"omitempty,max=255"`
	PublishedAt  string `json:"published_at" validate:"required,dateonly"`
	CoverageType string `json:"coverage_type" validate:"required,oneof=review preview news interview video"`
	Score        *int   `json:"score,omitempty" validate:"omitempty,gte=0,lte=100"`
	Sentiment    string `json:"sentiment,omitempty" validate:"omitempty,oneof=positive neutral negative"`
}

// UpdateCoverageRequest for partial updates
type UpdateCoverageRequest struct {
	URL          string `json:"url,omitempty" validate:"omitempty,url"`
	Headline     string `json:"headline,omitempty" validate:"omitempty,min=2,max=500"`
	Author       string `json:"author,omitempty" validate:"omitempty,max=255"`
	PublishedAt  string `json:"published_at,omitempty" validate:"omitempty,dateonly"`
	CoverageType string `json:"coverage_type,omitempty" validate:"omitempty,oneof=review preview news interview video"`
	Score        *int   `json:"score,omitempty" validate:"omitempty,gte=0,lte=100"`
	Sentiment    string `json:"sentiment,omitempty" validate:"omitempty,oneof=positive neutral negative"`
}

// CoverageResponse is the API view of a coverage item
type CoverageResponse struct {
	ID           uuid.UUID `json:"id"`
	GameID       uuid.UUID `json:"game_id"`
	OutletID     uuid.UUID `json:"outlet_id"`
	URL          string    `json:"url"`
	Headline     string    `json:"headline"`
	Author       string    `json:"author,omitempty"`
	PublishedAt  string    `json:"published_at"`
	CoverageType string    `json:"coverage_type"`
	Score        *int      `json:"score,omitempty"`
	Sentiment    string    `json:"sentiment"`
	Source       string    `json:"source"`
	CreatedAt    string    `json:"created_at"`
}

// ToResponse converts a coverage item to a response
func ToResponse(c *Item) *CoverageResponse {
	resp := &CoverageResponse{
		ID:           c.ID,
		GameID:       c.GameID,
		OutletID:     c.OutletID,
		URL:          c.URL,
		Headline:     c.Headline,
		PublishedAt:  c.PublishedAt.Format("2006-01-02"),
		CoverageType: string(c.CoverageType),
		Sentiment:    string(c.Sentiment),
		Source:       string(c.Source),
		CreatedAt:    c.CreatedAt.Format(time.RFC3339),
	}
	if c.Author.Valid {
		resp.Author = c.Author.String
	}
	if c.Score.Valid {
		score := int(c.Score.Int64)
		resp.Score = &score
	}
	return resp
}
