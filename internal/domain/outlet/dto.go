package outlet

import (
	"time"

	"github.com/google/uuid"
)

// CreateOutletRequest for registering a press outlet
type CreateOutletRequest struct {
	Name         string   `json:"name" validate:"required,min=2,max=255"`
	URL          string   `json:"url" validate:"required,url"`
	Region       string   `json:"region,omitempty" validate:"omitempty,max=100"`
	Tier         int      `json:"tier" validate:"required,gte=1,lte=3"`
	Topics       []string `json:"topics,omitempty" validate:"omitempty,dive,min=1,max=50"`
	ContactEmail string   `json:"contact_email,omitempty" validate:"omitempty,email"`
	ReachScore   int      `json:"reach_score,omitempty" validate:"omitempty,gte=0"`
}

// UpdateOutletRequest for partial updates
type UpdateOutletRequest struct {
	Name         string   `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	URL          string   `json:"url,omitempty" validate:"omitempty,url"`
	Region       string   `json:"region,omitempty" validate:"omitempty,max=100"`
	Tier         *int     `json:"tier,omitempty" validate:"omitempty,gte=1,lte=3"`
	Topics       []string `json:"topics,omitempty" validate:"omitempty,dive,min=1,max=50"`
	ContactEmail string   `json:"contact_email,omitempty" validate:"omitempty,email"`
	ReachScore   *int     `json:"reach_score,omitempty" validate:"omitempty,gte=0"`
}

// OutletResponse is the API view of an outlet
type OutletResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	URL          string    `json:"url"`
	Region       string    `json:"region,omitempty"`
	Tier         int       `json:"tier"`
	Topics       []string  `json:"topics"`
	ContactEmail string    `json:"contact_email,omitempty"`
	ReachScore   int       `json:"reach_score"`
	CreatedAt    string    `json:"created_at"`
}

// ToResponse converts an outlet entity to a response
func ToResponse(o *Outlet) *OutletResponse {
	resp := &OutletResponse{
		ID:         o.ID,
		Name:       o.Name,
		URL:        o.URL,
		Region:     o.Region,
		Tier:       o.Tier,
		Topics:     o.Topics,
		ReachScore: o.ReachScore,
		CreatedAt:  o.CreatedAt.Format(time.RFC3339),
	}
	if resp.Topics == nil {
		resp.Topics = []string{}
	}
	if o.ContactEmail.Valid {
		resp.ContactEmail = o.ContactEmail.String
	}
	return resp
}
