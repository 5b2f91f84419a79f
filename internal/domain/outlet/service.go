package outlet

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Service handles outlet business logic
type Service struct {
	repo Repository
}

// NewService creates outlet service
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create registers a new outlet
func (s *Service) Create(ctx context.Context, req *CreateOutletRequest) (*Outlet, error) {
	existing, err := s.repo.GetByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrNameExists
	}

	now := time.Now()
	o := &Outlet{
		ID:           uuid.New(),
		Name:         req.Name,
		URL:          req.URL,
		Region:       req.Region,
		Tier:         req.Tier,
		Topics:       req.Topics,
		ContactEmail: sql.NullString{String: req.ContactEmail, Valid: req.ContactEmail != ""},
		ReachScore:   req.ReachScore,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// GetByID returns an outlet by ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Outlet, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrNotFound
	}
	return o, nil
}

// Update applies a partial update to an outlet
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *UpdateOutletRequest) (*Outlet, error) {
	o, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" && req.Name != o.Name {
		dup, err := s.repo.GetByName(ctx, req.Name)
		if err != nil {
			return nil, err
		}
		if dup != nil && dup.ID != id {
			return nil, ErrNameExists
		}
		o.Name = req.Name
	}
	if req.URL != "" {
		o.URL = req.URL
	}
	if req.Region != "" {
		o.Region = req.Region
	}
	if req.Tier != nil {
		o.Tier = *req.Tier
	}
	if req.Topics != nil {
		o.Topics = req.Topics
	}
	if req.ContactEmail != "" {
		o.ContactEmail = sql.NullString{String: req.ContactEmail, Valid: true}
	}
	if req.ReachScore != nil {
		o.ReachScore = *req.ReachScore
	}

	if err := s.repo.Update(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// Delete removes an outlet
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// List returns outlets with optional tier and region filters
func (s *Service) List(ctx context.Context, tier *int, region *string, limit, offset int) ([]*Outlet, int, error) {
	return s.repo.List(ctx, tier, region, limit, offset)
}
