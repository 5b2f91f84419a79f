package sale

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/pressdeck/pressdeck-api/internal/calendar"
	"github.com/pressdeck/pressdeck-api/internal/domain/game"
	"github.com/pressdeck/pressdeck-api/internal/domain/platform"
)

const previewCachePrefix = "sale:preview:"

// Service handles sale scheduling and calendar generation
type Service struct {
	repo      Repository
	games     game.Repository
	platforms platform.Repository
	rdb       *redis.Client
	cacheTTL  time.Duration
}

// NewService creates sale service. rdb may be nil; previews are then
// generated fresh on every call.
func NewService(repo Repository, games game.Repository, platforms platform.Repository, rdb *redis.Client, cacheTTL time.Duration) *Service {
	return &Service{
		repo:      repo,
		games:     games,
		platforms: platforms,
		rdb:       rdb,
		cacheTTL:  cacheTTL,
	}
}

// Create schedules a single sale by hand
func (s *Service) Create(ctx context.Context, req *CreateSaleRequest) (*Sale, error) {
	gameID, err := uuid.Parse(req.GameID)
	if err != nil {
		return nil, ErrGameNotFound
	}
	platformID, err := uuid.Parse(req.PlatformID)
	if err != nil {
		return nil, ErrPlatformNotFound
	}

	g, err := s.games.GetByID(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGameNotFound
	}

	p, err := s.platforms.GetByID(ctx, platformID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPlatformNotFound
	}

	start, end, err := parseRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	sale := &Sale{
		ID:          uuid.New(),
		GameID:      gameID,
		PlatformID:  platformID,
		Name:        req.Name,
		StartDate:   start,
		EndDate:     end,
		DiscountPct: req.DiscountPct,
		SaleType:    calendar.SaleType(req.SaleType),
		IsEvent:     false,
		EventName:   sql.NullString{String: req.EventName, Valid: req.EventName != ""},
		Status:      StatusPlanned,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, sale); err != nil {
		return nil, err
	}
	return sale, nil
}

// GetByID returns a sale by ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Sale, error) {
	sale, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, ErrNotFound
	}
	return sale, nil
}

// Update applies a partial update to a sale
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *UpdateSaleRequest) (*Sale, error) {
	sale, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		sale.Name = req.Name
	}
	if req.StartDate != "" {
		t, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			return nil, ErrInvalidRange
		}
		sale.StartDate = t
	}
	if req.EndDate != "" {
		t, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			return nil, ErrInvalidRange
		}
		sale.EndDate = t
	}
	if sale.EndDate.Before(sale.StartDate) {
		return nil, ErrInvalidRange
	}
	if req.DiscountPct != nil {
		sale.DiscountPct = *req.DiscountPct
	}
	if req.Status != "" {
		sale.Status = Status(req.Status)
	}

	if err := s.repo.Update(ctx, sale); err != nil {
		return nil, err
	}
	return sale, nil
}

// Delete removes a sale
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// List returns sales matching the filter
func (s *Service) List(ctx context.Context, filter ListFilter, limit, offset int) ([]*Sale, int, error) {
	return s.repo.List(ctx, filter, limit, offset)
}

// PreviewCalendar generates the three calendar variations for a game.
// Results are cached in Redis keyed by a hash of the full generator input,
// so identical requests within the TTL skip regeneration.
func (s *Service) PreviewCalendar(ctx context.Context, gameID uuid.UUID, req *PreviewRequest) ([]calendar.Variation, error) {
	g, err := s.games.GetByID(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGameNotFound
	}

	launch, err := time.Parse("2006-01-02", req.LaunchDate)
	if err != nil {
		return nil, ErrInvalidRange
	}

	months := req.Months
	if months == 0 {
		months = 12
	}

	var endDate *time.Time
	periodEnd := launch.AddDate(0, months, 0).AddDate(0, 0, -1)
	if req.EndDate != "" {
		t, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			return nil, ErrInvalidRange
		}
		if t.Before(launch) {
			return nil, ErrInvalidRange
		}
		endDate = &t
		periodEnd = t
	}

	platforms, err := s.loadPlatforms(ctx, req.PlatformIDs)
	if err != nil {
		return nil, err
	}
	if len(platforms) == 0 {
		return nil, ErrNoPlatforms
	}

	events, err := s.platforms.ListEvents(ctx, nil, &launch, &periodEnd)
	if err != nil {
		return nil, err
	}

	discount := req.DiscountPct
	if discount == 0 {
		discount = g.DefaultDiscountPct
	}

	input := calendar.Input{
		ProductID:   gameID.String(),
		Platforms:   toCalendarPlatforms(platforms),
		Events:      toCalendarEvents(events),
		LaunchDate:  launch,
		Months:      months,
		EndDate:     endDate,
		DiscountPct: discount,
	}

	key := previewCacheKey(input)
	if cached := s.cachedPreview(ctx, key); cached != nil {
		return cached, nil
	}

	variations := calendar.Generate(input)
	s.cachePreview(ctx, key, variations)
	return variations, nil
}

// AcceptCalendar persists a chosen variation's sales as planned. Preview
// sale IDs are ephemeral and are replaced with fresh ones here.
func (s *Service) AcceptCalendar(ctx context.Context, gameID uuid.UUID, req *AcceptRequest) ([]*Sale, error) {
	g, err := s.games.GetByID(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGameNotFound
	}

	now := time.Now()
	sales := make([]*Sale, 0, len(req.Sales))
	for i := range req.Sales {
		item := &req.Sales[i]

		platformID, err := uuid.Parse(item.PlatformID)
		if err != nil {
			return nil, ErrPlatformNotFound
		}
		start, end, err := parseRange(item.StartDate, item.EndDate)
		if err != nil {
			return nil, err
		}

		sales = append(sales, &Sale{
			ID:          uuid.New(),
			GameID:      gameID,
			PlatformID:  platformID,
			Name:        item.Name,
			StartDate:   start,
			EndDate:     end,
			DiscountPct: item.DiscountPct,
			SaleType:    calendar.SaleType(item.SaleType),
			IsEvent:     item.IsEvent,
			EventName:   sql.NullString{String: item.EventName, Valid: item.EventName != ""},
			Status:      StatusPlanned,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	if err := s.repo.CreateBatch(ctx, sales); err != nil {
		return nil, err
	}

	log.Info().
		Str("game_id", gameID.String()).
		Str("strategy", req.Strategy).
		Int("sales", len(sales)).
		Msg("Calendar variation accepted")
	return sales, nil
}

// Validate checks a proposed sale window against the persisted schedule for
// the same game and platform, using the generator's overlap and cooldown
// rules. The sale being edited can be excluded so moving it does not
// conflict with itself.
func (s *Service) Validate(ctx context.Context, req *ValidateSaleRequest) (*ValidateSaleResponse, error) {
	gameID, err := uuid.Parse(req.GameID)
	if err != nil {
		return nil, ErrGameNotFound
	}
	platformID, err := uuid.Parse(req.PlatformID)
	if err != nil {
		return nil, ErrPlatformNotFound
	}

	p, err := s.platforms.GetByID(ctx, platformID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPlatformNotFound
	}

	start, end, err := parseRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	var excludeID *uuid.UUID
	if req.ExcludeSaleID != "" {
		id, err := uuid.Parse(req.ExcludeSaleID)
		if err != nil {
			return nil, ErrNotFound
		}
		excludeID = &id
	}

	existing, err := s.repo.ListActiveForSchedule(ctx, gameID, platformID, excludeID)
	if err != nil {
		return nil, err
	}

	resp := &ValidateSaleResponse{OK: true, Conflicts: []*SaleResponse{}}
	for _, e := range existing {
		window := []calendar.GeneratedSale{{StartDate: e.StartDate, EndDate: e.EndDate}}
		if calendar.CheckConflict(start, end, window, p.CooldownDays) {
			resp.OK = false
			resp.Conflicts = append(resp.Conflicts, ToResponse(e))
		}
	}
	return resp, nil
}

func (s *Service) loadPlatforms(ctx context.Context, ids []string) ([]*platform.Platform, error) {
	all, err := s.platforms.List(ctx, true)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return all, nil
	}

	wanted := make(map[uuid.UUID]bool, len(ids))
	for _, raw := range ids {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, ErrPlatformNotFound
		}
		wanted[id] = true
	}

	selected := make([]*platform.Platform, 0, len(ids))
	for _, p := range all {
		if wanted[p.ID] {
			selected = append(selected, p)
		}
	}
	return selected, nil
}

func (s *Service) cachedPreview(ctx context.Context, key string) []calendar.Variation {
	if s.rdb == nil {
		return nil
	}

	raw, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Warn().Err(err).Msg("Preview cache read failed")
		}
		return nil
	}

	var variations []calendar.Variation
	if err := json.Unmarshal(raw, &variations); err != nil {
		log.Warn().Err(err).Msg("Preview cache entry corrupted")
		return nil
	}
	return variations
}

func (s *Service) cachePreview(ctx context.Context, key string, variations []calendar.Variation) {
	if s.rdb == nil {
		return
	}

	raw, err := json.Marshal(variations)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, key, raw, s.cacheTTL).Err(); err != nil {
		log.Warn().Err(err).Msg("Preview cache write failed")
	}
}

func previewCacheKey(input calendar.Input) string {
	raw, _ := json.Marshal(input)
	sum := sha256.Sum256(raw)
	return previewCachePrefix + hex.EncodeToString(sum[:])
}

func parseRange(startStr, endStr string) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01-02", startStr)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidRange
	}
	end, err := time.Parse("2006-01-02", endStr)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidRange
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, ErrInvalidRange
	}
	return start, end, nil
}

func toCalendarPlatforms(platforms []*platform.Platform) []calendar.Platform {
	out := make([]calendar.Platform, len(platforms))
	for i, p := range platforms {
		out[i] = calendar.Platform{
			ID:           p.ID,
			Name:         p.Name,
			Color:        p.Color,
			CooldownDays: p.CooldownDays,
			MaxSaleDays:  p.MaxSaleDays,
		}
	}
	return out
}

func toCalendarEvents(events []*platform.Event) []calendar.PlatformEvent {
	out := make([]calendar.PlatformEvent, len(events))
	for i, e := range events {
		out[i] = calendar.PlatformEvent{
			ID:               e.ID,
			PlatformID:       e.PlatformID,
			Name:             e.Name,
			StartDate:        e.StartDate,
			EndDate:          e.EndDate,
			RequiresCooldown: e.RequiresCooldown,
		}
	}
	return out
}
