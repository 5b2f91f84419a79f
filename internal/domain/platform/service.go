package platform

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Service handles platform business logic
type Service struct {
	repo Repository
}

// NewService creates platform service
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create registers a new platform
func (s *Service) Create(ctx context.Context, req *CreatePlatformRequest) (*Platform, error) {
	existing, err := s.repo.GetBySlug(ctx, req.Slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrSlugExists
	}

	now := time.Now()
	p := &Platform{
		ID:           uuid.New(),
		Name:         req.Name,
		Slug:         req.Slug,
		Color:        req.Color,
		CooldownDays: req.CooldownDays,
		MaxSaleDays:  req.MaxSaleDays,
		PartnerCode:  sql.NullString{String: req.PartnerCode, Valid: req.PartnerCode != ""},
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetByID returns a platform by ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Platform, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

// Update applies a partial update to a platform
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *UpdatePlatformRequest) (*Platform, error) {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		p.Name = req.Name
	}
	if req.Color != "" {
		p.Color = req.Color
	}
	if req.CooldownDays != nil {
		p.CooldownDays = *req.CooldownDays
	}
	if req.MaxSaleDays != nil {
		p.MaxSaleDays = *req.MaxSaleDays
	}
	if req.PartnerCode != "" {
		p.PartnerCode = sql.NullString{String: req.PartnerCode, Valid: true}
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// List returns platforms, optionally active ones only
func (s *Service) List(ctx context.Context, activeOnly bool) ([]*Platform, error) {
	return s.repo.List(ctx, activeOnly)
}

// AddEvent attaches a seasonal event to a platform
func (s *Service) AddEvent(ctx context.Context, platformID uuid.UUID, req *CreateEventRequest) (*Event, error) {
	if _, err := s.GetByID(ctx, platformID); err != nil {
		return nil, err
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, ErrInvalidRange
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, ErrInvalidRange
	}
	if end.Before(start) {
		return nil, ErrInvalidRange
	}

	// Events default to honoring the platform cooldown; waiving it is an
	// explicit choice.
	requiresCooldown := true
	if req.RequiresCooldown != nil {
		requiresCooldown = *req.RequiresCooldown
	}

	now := time.Now()
	e := &Event{
		ID:               uuid.New(),
		PlatformID:       platformID,
		Name:             req.Name,
		StartDate:        start,
		EndDate:          end,
		RequiresCooldown: requiresCooldown,
		IsRecurring:      req.IsRecurring,
		Source:           SourceManual,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.repo.CreateEvent(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// DeleteEvent removes a platform event
func (s *Service) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	e, err := s.repo.GetEventByID(ctx, id)
	if err != nil {
		return err
	}
	if e == nil {
		return ErrEventNotFound
	}
	return s.repo.DeleteEvent(ctx, id)
}

// ListEvents returns events with optional platform and date range filters
func (s *Service) ListEvents(ctx context.Context, platformID *uuid.UUID, from, to *time.Time) ([]*Event, error) {
	return s.repo.ListEvents(ctx, platformID, from, to)
}
