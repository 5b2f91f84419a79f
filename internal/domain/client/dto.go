package client

import (
	"time"

	"github.com/google/uuid"
)

// CreateClientRequest for registering a new client
type CreateClientRequest struct {
	CompanyName  string   `json:"company_name" validate:"required,min=2,max=255"`
	ContactName  string   `json:"contact_name" validate:"required,min=2,max=255"`
	ContactEmail string   `json:"contact_email" validate:"required,email"`
	ContactPhone string   `json:"contact_phone,omitempty" validate:"omitempty,min=7,max=20"`
	Website      string   `json:"website,omitempty" validate:"omitempty,url"`
	Notes        string   `json:"notes,omitempty"`
	Tags         []string `json:"tags,omitempty" validate:"omitempty,max=10,dive,min=1,max=50"`
}

// UpdateClientRequest for editing an existing client
type UpdateClientRequest struct {
	CompanyName  string   `json:"company_name,omitempty" validate:"omitempty,min=2,max=255"`
	ContactName  string   `json:"contact_name,omitempty" validate:"omitempty,min=2,max=255"`
	ContactEmail string   `json:"contact_email,omitempty" validate:"omitempty,email"`
	ContactPhone string   `json:"contact_phone,omitempty" validate:"omitempty,min=7,max=20"`
	Website      string   `json:"website,omitempty" validate:"omitempty,url"`
	Notes        string   `json:"notes,omitempty"`
	Status       string   `json:"status,omitempty" validate:"omitempty,oneof=active paused archived"`
	Tags         []string `json:"tags,omitempty" validate:"omitempty,max=10,dive,min=1,max=50"`
}

// ClientResponse is the API view of a client
type ClientResponse struct {
	ID           uuid.UUID `json:"id"`
	CompanyName  string    `json:"company_name"`
	ContactName  string    `json:"contact_name"`
	ContactEmail string    `json:"contact_email"`
	ContactPhone string    `json:"contact_phone,omitempty"`
	Website      string    `json:"website,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	Status       string    `json:"status"`
	Tags         []string  `json:"tags"`
	CreatedAt    string    `json:"created_at"`
}

// ToResponse converts entity to response
func ToResponse(c *Client) *ClientResponse {
	resp := &ClientResponse{
		ID:           c.ID,
		CompanyName:  c.CompanyName,
		ContactName:  c.ContactName,
		ContactEmail: c.ContactEmail,
		Status:       string(c.Status),
		Tags:         c.Tags,
		CreatedAt:    c.CreatedAt.Format(time.RFC3339),
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	if c.ContactPhone.Valid {
		resp.ContactPhone = c.ContactPhone.String
	}
	if c.Website.Valid {
		resp.Website = c.Website.String
	}
	if c.Notes.Valid {
		resp.Notes = c.Notes.String
	}
	return resp
}
