package game

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/pressdeck/pressdeck-api/internal/domain/client"
)

// Service handles game business logic
type Service struct {
	repo       Repository
	clientRepo client.Repository
}

// NewService creates game service
func NewService(repo Repository, clientRepo client.Repository) *Service {
	return &Service{repo: repo, clientRepo: clientRepo}
}

// Create registers a new game under a client
func (s *Service) Create(ctx context.Context, req *CreateGameRequest) (*Game, error) {
	clientID, err := uuid.Parse(req.ClientID)
	if err != nil {
		return nil, client.ErrNotFound
	}
	owner, err := s.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, client.ErrNotFound
	}

	existing, err := s.repo.GetBySlug(ctx, req.Slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrSlugExists
	}

	now := time.Now()
	g := &Game{
		ID:                 uuid.New(),
		ClientID:           clientID,
		Title:              req.Title,
		Slug:               req.Slug,
		Genres:             req.Genres,
		PressKitURL:        sql.NullString{String: req.PressKitURL, Valid: req.PressKitURL != ""},
		DefaultDiscountPct: req.DefaultDiscountPct,
		Status:             StatusAnnounced,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if req.ReleaseDate != "" {
		if t, err := time.Parse("2006-01-02", req.ReleaseDate); err == nil {
			g.ReleaseDate = sql.NullTime{Time: t, Valid: true}
		}
	}

	if err := s.repo.Create(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

// GetByID returns a game by ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Game, error) {
	g, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrNotFound
	}
	return g, nil
}

// Update applies a partial update to a game
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *UpdateGameRequest) (*Game, error) {
	g, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		g.Title = req.Title
	}
	if req.Genres != nil {
		g.Genres = req.Genres
	}
	if req.ReleaseDate != "" {
		if t, err := time.Parse("2006-01-02", req.ReleaseDate); err == nil {
			g.ReleaseDate = sql.NullTime{Time: t, Valid: true}
		}
	}
	if req.PressKitURL != "" {
		g.PressKitURL = sql.NullString{String: req.PressKitURL, Valid: true}
	}
	if req.DefaultDiscountPct != nil {
		g.DefaultDiscountPct = *req.DefaultDiscountPct
	}
	if req.Status != "" {
		g.Status = Status(req.Status)
	}

	if err := s.repo.Update(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

// Delete removes a game
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// List returns games with optional client and status filters
func (s *Service) List(ctx context.Context, clientID *uuid.UUID, status *Status, limit, offset int) ([]*Game, int, error) {
	return s.repo.List(ctx, clientID, status, limit, offset)
}
