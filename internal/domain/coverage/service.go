package coverage

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/pressdeck/pressdeck-api/internal/domain/game"
	"github.com/pressdeck/pressdeck-api/internal/domain/outlet"
)

// Service handles coverage business logic
type Service struct {
	repo    Repository
	games   game.Repository
	outlets outlet.Repository
}

// NewService creates coverage service
func NewService(repo Repository, games game.Repository, outlets outlet.Repository) *Service {
	return &Service{repo: repo, games: games, outlets: outlets}
}

// Create logs a piece of coverage
func (s *Service) Create(ctx context.Context, req *CreateCoverageRequest) (*Item, error) {
	gameID, err := uuid.Parse(req.GameID)
	if err != nil {
		return nil, ErrGameNotFound
	}
	outletID, err := uuid.Parse(req.OutletID)
	if err != nil {
		return nil, ErrOutletNotFound
	}

	g, err := s.games.GetByID(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGameNotFound
	}

	o, err := s.outlets.GetByID(ctx, outletID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOutletNotFound
	}

	publishedAt, err := time.Parse("2006-01-02", req.PublishedAt)
	if err != nil {
		return nil, err
	}

	sentiment := Sentiment(req.Sentiment)
	if sentiment == "" {
		sentiment = SentimentNeutral
	}

	now := time.Now()
	item := &Item{
		ID:           uuid.New(),
		GameID:       gameID,
		OutletID:     outletID,
		URL:          req.URL,
		Headline:     req.Headline,
		Author:       sql.NullString{String: req.Author, Valid: req.Author != ""},
		PublishedAt:  publishedAt,
		CoverageType: Type(req.CoverageType),
		Sentiment:    sentiment,
		Source:       SourceManual,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if req.Score != nil {
		item.Score = sql.NullInt64{Int64: int64(*req.Score), Valid: true}
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// GetByID returns a coverage item by ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Item, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrNotFound
	}
	return item, nil
}

// Update applies a partial update to a coverage item
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *UpdateCoverageRequest) (*Item, error) {
	item, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.URL != "" {
		item.URL = req.URL
	}
	if req.Headline != "" {
		item.Headline = req.Headline
	}
	if req.Author != "" {
		item.Author = sql.NullString{String: req.Author, Valid: true}
	}
	if req.PublishedAt != "" {
		t, err := time.Parse("2006-01-02", req.PublishedAt)
		if err != nil {
			return nil, err
		}
		item.PublishedAt = t
	}
	if req.CoverageType != "" {
		item.CoverageType = Type(req.CoverageType)
	}
	if req.Score != nil {
		item.Score = sql.NullInt64{Int64: int64(*req.Score), Valid: true}
	}
	if req.Sentiment != "" {
		item.Sentiment = Sentiment(req.Sentiment)
	}

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes a coverage item
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// List returns coverage items matching the filter
func (s *Service) List(ctx context.Context, filter ListFilter, limit, offset int) ([]*Item, int, error) {
	return s.repo.List(ctx, filter, limit, offset)
}

// Summary aggregates coverage for one game
func (s *Service) Summary(ctx context.Context, gameID uuid.UUID) (*Summary, error) {
	g, err := s.games.GetByID(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGameNotFound
	}
	return s.repo.Summary(ctx, gameID)
}
