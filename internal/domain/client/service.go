package client

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Service handles client business logic
type Service struct {
	repo Repository
}

// NewService creates client service
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create registers a new client
func (s *Service) Create(ctx context.Context, req *CreateClientRequest) (*Client, error) {
	existing, err := s.repo.GetByEmail(ctx, req.ContactEmail)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailExists
	}

	now := time.Now()
	c := &Client{
		ID:           uuid.New(),
		CompanyName:  req.CompanyName,
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		ContactPhone: sql.NullString{String: req.ContactPhone, Valid: req.ContactPhone != ""},
		Website:      sql.NullString{String: req.Website, Valid: req.Website != ""},
		Notes:        sql.NullString{String: req.Notes, Valid: req.Notes != ""},
		Status:       StatusActive,
		Tags:         req.Tags,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// GetByID returns a client by ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Client, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrNotFound
	}
	return c, nil
}

// Update applies a partial update to a client
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *UpdateClientRequest) (*Client, error) {
	c, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CompanyName != "" {
		c.CompanyName = req.CompanyName
	}
	if req.ContactName != "" {
		c.ContactName = req.ContactName
	}
	if req.ContactEmail != "" {
		c.ContactEmail = req.ContactEmail
	}
	if req.ContactPhone != "" {
		c.ContactPhone = sql.NullString{String: req.ContactPhone, Valid: true}
	}
	if req.Website != "" {
		c.Website = sql.NullString{String: req.Website, Valid: true}
	}
	if req.Notes != "" {
		c.Notes = sql.NullString{String: req.Notes, Valid: true}
	}
	if req.Status != "" {
		c.Status = Status(req.Status)
	}
	if req.Tags != nil {
		c.Tags = req.Tags
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Archive soft-deletes a client
func (s *Service) Archive(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Archive(ctx, id)
}

// List returns clients with optional status filter
func (s *Service) List(ctx context.Context, status *Status, limit, offset int) ([]*Client, int, error) {
	return s.repo.List(ctx, status, limit, offset)
}

// Stats returns client counts grouped by status
func (s *Service) Stats(ctx context.Context) (map[Status]int, error) {
	return s.repo.CountByStatus(ctx)
}
