package sale

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/pressdeck/pressdeck-api/internal/domain/game"
	"github.com/pressdeck/pressdeck-api/internal/domain/platform"
)

type fakeSaleRepo struct {
	sales   []*Sale
	created []*Sale
}

func (f *fakeSaleRepo) Create(ctx context.Context, s *Sale) error {
	f.created = append(f.created, s)
	f.sales = append(f.sales, s)
	return nil
}

func (f *fakeSaleRepo) CreateBatch(ctx context.Context, sales []*Sale) error {
	f.created = append(f.created, sales...)
	f.sales = append(f.sales, sales...)
	return nil
}

func (f *fakeSaleRepo) GetByID(ctx context.Context, id uuid.UUID) (*Sale, error) {
	for _, s := range f.sales {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeSaleRepo) Update(ctx context.Context, s *Sale) error { return nil }

func (f *fakeSaleRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (f *fakeSaleRepo) List(ctx context.Context, filter ListFilter, limit, offset int) ([]*Sale, int, error) {
	return f.sales, len(f.sales), nil
}

func (f *fakeSaleRepo) ListActiveForSchedule(ctx context.Context, gameID, platformID uuid.UUID, excludeID *uuid.UUID) ([]*Sale, error) {
	out := []*Sale{}
	for _, s := range f.sales {
		if s.GameID != gameID || s.PlatformID != platformID || s.Status == StatusCancelled {
			continue
		}
		if excludeID != nil && s.ID == *excludeID {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

type fakeGameRepo struct {
	games map[uuid.UUID]*game.Game
}

func (f *fakeGameRepo) Create(ctx context.Context, g *game.Game) error { return nil }

func (f *fakeGameRepo) GetByID(ctx context.Context, id uuid.UUID) (*game.Game, error) {
	return f.games[id], nil
}

func (f *fakeGameRepo) GetBySlug(ctx context.Context, slug string) (*game.Game, error) {
	return nil, nil
}

func (f *fakeGameRepo) Update(ctx context.Context, g *game.Game) error { return nil }

func (f *fakeGameRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (f *fakeGameRepo) List(ctx context.Context, clientID *uuid.UUID, status *game.Status, limit, offset int) ([]*game.Game, int, error) {
	return nil, 0, nil
}

type fakePlatformRepo struct {
	platforms []*platform.Platform
	events    []*platform.Event
}

func (f *fakePlatformRepo) Create(ctx context.Context, p *platform.Platform) error { return nil }

func (f *fakePlatformRepo) GetByID(ctx context.Context, id uuid.UUID) (*platform.Platform, error) {
	for _, p := range f.platforms {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakePlatformRepo) GetBySlug(ctx context.Context, slug string) (*platform.Platform, error) {
	return nil, nil
}

func (f *fakePlatformRepo) GetByPartnerCode(ctx context.Context, code string) (*platform.Platform, error) {
	return nil, nil
}

func (f *fakePlatformRepo) Update(ctx context.Context, p *platform.Platform) error { return nil }

func (f *fakePlatformRepo) List(ctx context.Context, activeOnly bool) ([]*platform.Platform, error) {
	return f.platforms, nil
}

func (f *fakePlatformRepo) CreateEvent(ctx context.Context, e *platform.Event) error { return nil }

func (f *fakePlatformRepo) GetEventByID(ctx context.Context, id uuid.UUID) (*platform.Event, error) {
	return nil, nil
}

func (f *fakePlatformRepo) GetEventByExternalID(ctx context.Context, externalID string) (*platform.Event, error) {
	return nil, nil
}

func (f *fakePlatformRepo) UpdateEvent(ctx context.Context, e *platform.Event) error { return nil }

func (f *fakePlatformRepo) DeleteEvent(ctx context.Context, id uuid.UUID) error { return nil }

func (f *fakePlatformRepo) ListEvents(ctx context.Context, platformID *uuid.UUID, from, to *time.Time) ([]*platform.Event, error) {
	return f.events, nil
}

func testService(sales *fakeSaleRepo, games *fakeGameRepo, platforms *fakePlatformRepo) *Service {
	return NewService(sales, games, platforms, nil, time.Minute)
}

func testGame(id uuid.UUID) *game.Game {
	return &game.Game{
		ID:                 id,
		ClientID:           uuid.New(),
		Title:              "Starlight Drift",
		Slug:               "starlight-drift",
		DefaultDiscountPct: 25,
		Status:             game.StatusReleased,
	}
}

func testStorefront(id uuid.UUID, cooldown, maxDays int) *platform.Platform {
	return &platform.Platform{
		ID:           id,
		Name:         "Steam",
		Slug:         "steam",
		CooldownDays: cooldown,
		MaxSaleDays:  maxDays,
		IsActive:     true,
	}
}

func TestPreviewCalendarReturnsThreeVariations(t *testing.T) {
	gameID := uuid.New()
	platformID := uuid.New()

	games := &fakeGameRepo{games: map[uuid.UUID]*game.Game{gameID: testGame(gameID)}}
	platforms := &fakePlatformRepo{platforms: []*platform.Platform{testStorefront(platformID, 30, 14)}}
	svc := testService(&fakeSaleRepo{}, games, platforms)

	variations, err := svc.PreviewCalendar(context.Background(), gameID, &PreviewRequest{
		LaunchDate: "2025-01-01",
		Months:     12,
	})
	if err != nil {
		t.Fatalf("PreviewCalendar: %v", err)
	}
	if len(variations) != 3 {
		t.Fatalf("expected 3 variations, got %d", len(variations))
	}
	for _, v := range variations {
		for _, s := range v.Sales {
			if s.DiscountPct != 25 {
				t.Errorf("%s: discount = %d, want game default 25", v.Strategy, s.DiscountPct)
			}
			if s.ProductID != gameID.String() {
				t.Errorf("%s: product ID = %q, want game ID", v.Strategy, s.ProductID)
			}
		}
	}
}

func TestPreviewCalendarUnknownGame(t *testing.T) {
	svc := testService(&fakeSaleRepo{}, &fakeGameRepo{games: map[uuid.UUID]*game.Game{}}, &fakePlatformRepo{})

	_, err := svc.PreviewCalendar(context.Background(), uuid.New(), &PreviewRequest{LaunchDate: "2025-01-01"})
	if err != ErrGameNotFound {
		t.Fatalf("expected ErrGameNotFound, got %v", err)
	}
}

func TestPreviewCalendarNoPlatforms(t *testing.T) {
	gameID := uuid.New()
	games := &fakeGameRepo{games: map[uuid.UUID]*game.Game{gameID: testGame(gameID)}}
	svc := testService(&fakeSaleRepo{}, games, &fakePlatformRepo{})

	_, err := svc.PreviewCalendar(context.Background(), gameID, &PreviewRequest{LaunchDate: "2025-01-01"})
	if err != ErrNoPlatforms {
		t.Fatalf("expected ErrNoPlatforms, got %v", err)
	}
}

func TestPreviewCalendarPlatformFilter(t *testing.T) {
	gameID := uuid.New()
	steamID := uuid.New()
	otherID := uuid.New()

	other := testStorefront(otherID, 14, 7)
	other.Name = "Epic"
	other.Slug = "epic"

	games := &fakeGameRepo{games: map[uuid.UUID]*game.Game{gameID: testGame(gameID)}}
	platforms := &fakePlatformRepo{platforms: []*platform.Platform{
		testStorefront(steamID, 30, 14),
		other,
	}}
	svc := testService(&fakeSaleRepo{}, games, platforms)

	variations, err := svc.PreviewCalendar(context.Background(), gameID, &PreviewRequest{
		LaunchDate:  "2025-01-01",
		PlatformIDs: []string{steamID.String()},
	})
	if err != nil {
		t.Fatalf("PreviewCalendar: %v", err)
	}
	for _, v := range variations {
		for _, s := range v.Sales {
			if s.PlatformID != steamID {
				t.Fatalf("%s: sale scheduled on excluded platform %s", v.Strategy, s.PlatformID)
			}
		}
	}
}

func TestAcceptCalendarMapsToPlannedSales(t *testing.T) {
	gameID := uuid.New()
	platformID := uuid.New()

	repo := &fakeSaleRepo{}
	games := &fakeGameRepo{games: map[uuid.UUID]*game.Game{gameID: testGame(gameID)}}
	svc := testService(repo, games, &fakePlatformRepo{})

	sales, err := svc.AcceptCalendar(context.Background(), gameID, &AcceptRequest{
		Strategy: "maximize",
		Sales: []AcceptedSale{
			{
				PlatformID:  platformID.String(),
				Name:        "Custom Sale 1",
				StartDate:   "2025-01-01",
				EndDate:     "2025-01-14",
				DiscountPct: 25,
				SaleType:    "custom",
			},
			{
				PlatformID:  platformID.String(),
				Name:        "Summer Sale",
				StartDate:   "2025-06-20",
				EndDate:     "2025-07-03",
				DiscountPct: 25,
				SaleType:    "seasonal",
				IsEvent:     true,
				EventName:   "Summer Sale",
			},
		},
	})
	if err != nil {
		t.Fatalf("AcceptCalendar: %v", err)
	}
	if len(repo.created) != 2 {
		t.Fatalf("persisted %d sales, want 2", len(repo.created))
	}

	seen := map[uuid.UUID]bool{}
	for _, s := range sales {
		if s.ID == uuid.Nil {
			t.Error("persisted sale has nil ID")
		}
		if seen[s.ID] {
			t.Errorf("duplicate sale ID %s", s.ID)
		}
		seen[s.ID] = true

		if s.Status != StatusPlanned {
			t.Errorf("sale %q status = %q, want planned", s.Name, s.Status)
		}
		if s.GameID != gameID {
			t.Errorf("sale %q game ID = %s, want %s", s.Name, s.GameID, gameID)
		}
	}

	if sales[0].EventName.Valid {
		t.Error("custom sale should have no event name")
	}
	if !sales[1].EventName.Valid || sales[1].EventName.String != "Summer Sale" {
		t.Errorf("event sale event name = %+v, want Summer Sale", sales[1].EventName)
	}
	if !sales[1].IsEvent {
		t.Error("event sale lost its event flag")
	}
}

func TestAcceptCalendarRejectsInvertedRange(t *testing.T) {
	gameID := uuid.New()
	games := &fakeGameRepo{games: map[uuid.UUID]*game.Game{gameID: testGame(gameID)}}
	repo := &fakeSaleRepo{}
	svc := testService(repo, games, &fakePlatformRepo{})

	_, err := svc.AcceptCalendar(context.Background(), gameID, &AcceptRequest{
		Sales: []AcceptedSale{{
			PlatformID:  uuid.New().String(),
			Name:        "Bad Sale",
			StartDate:   "2025-02-01",
			EndDate:     "2025-01-01",
			DiscountPct: 25,
			SaleType:    "custom",
		}},
	})
	if err != ErrInvalidRange {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
	if len(repo.created) != 0 {
		t.Errorf("nothing should be persisted, got %d sales", len(repo.created))
	}
}

func persistedSale(gameID, platformID uuid.UUID, start, end string, status Status) *Sale {
	s, _ := time.Parse("2006-01-02", start)
	e, _ := time.Parse("2006-01-02", end)
	return &Sale{
		ID:         uuid.New(),
		GameID:     gameID,
		PlatformID: platformID,
		Name:       "Existing Sale",
		StartDate:  s,
		EndDate:    e,
		SaleType:   "custom",
		Status:     status,
	}
}

func TestValidateDetectsOverlapAndCooldown(t *testing.T) {
	gameID := uuid.New()
	platformID := uuid.New()

	repo := &fakeSaleRepo{sales: []*Sale{
		persistedSale(gameID, platformID, "2025-03-01", "2025-03-14", StatusPlanned),
	}}
	platforms := &fakePlatformRepo{platforms: []*platform.Platform{testStorefront(platformID, 30, 14)}}
	svc := testService(repo, &fakeGameRepo{}, platforms)

	cases := []struct {
		name       string
		start, end string
		wantOK     bool
	}{
		{"overlap", "2025-03-10", "2025-03-20", false},
		{"inside cooldown", "2025-03-20", "2025-03-25", false},
		{"on cooldown end", "2025-04-13", "2025-04-20", true},
		{"well clear", "2025-06-01", "2025-06-07", true},
		{"clear before existing", "2025-01-01", "2025-01-07", true},
		{"own cooldown swallows later sale", "2025-01-20", "2025-02-10", false},
		{"ends exactly one cooldown before", "2025-01-24", "2025-01-30", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := svc.Validate(context.Background(), &ValidateSaleRequest{
				GameID:     gameID.String(),
				PlatformID: platformID.String(),
				StartDate:  tc.start,
				EndDate:    tc.end,
			})
			if err != nil {
				t.Fatalf("Validate: %v", err)
			}
			if resp.OK != tc.wantOK {
				t.Errorf("OK = %v, want %v", resp.OK, tc.wantOK)
			}
			if !tc.wantOK && len(resp.Conflicts) == 0 {
				t.Error("conflict reported but no conflicting sales listed")
			}
		})
	}
}

func TestValidateExcludesEditedSale(t *testing.T) {
	gameID := uuid.New()
	platformID := uuid.New()

	existing := persistedSale(gameID, platformID, "2025-03-01", "2025-03-14", StatusPlanned)
	repo := &fakeSaleRepo{sales: []*Sale{existing}}
	platforms := &fakePlatformRepo{platforms: []*platform.Platform{testStorefront(platformID, 30, 14)}}
	svc := testService(repo, &fakeGameRepo{}, platforms)

	// Moving the sale by a few days conflicts with its own old window
	// unless the edited sale is excluded.
	resp, err := svc.Validate(context.Background(), &ValidateSaleRequest{
		GameID:        gameID.String(),
		PlatformID:    platformID.String(),
		StartDate:     "2025-03-05",
		EndDate:       "2025-03-18",
		ExcludeSaleID: existing.ID.String(),
	})
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if !resp.OK {
		t.Errorf("edited sale should not conflict with itself: %+v", resp.Conflicts)
	}
}

func TestValidateIgnoresCancelledSales(t *testing.T) {
	gameID := uuid.New()
	platformID := uuid.New()

	repo := &fakeSaleRepo{sales: []*Sale{
		persistedSale(gameID, platformID, "2025-03-01", "2025-03-14", StatusCancelled),
	}}
	platforms := &fakePlatformRepo{platforms: []*platform.Platform{testStorefront(platformID, 30, 14)}}
	svc := testService(repo, &fakeGameRepo{}, platforms)

	resp, err := svc.Validate(context.Background(), &ValidateSaleRequest{
		GameID:     gameID.String(),
		PlatformID: platformID.String(),
		StartDate:  "2025-03-05",
		EndDate:    "2025-03-10",
	})
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if !resp.OK {
		t.Errorf("cancelled sales should not block scheduling: %+v", resp.Conflicts)
	}
}

func TestValidateUnknownPlatform(t *testing.T) {
	svc := testService(&fakeSaleRepo{}, &fakeGameRepo{}, &fakePlatformRepo{})

	_, err := svc.Validate(context.Background(), &ValidateSaleRequest{
		GameID:     uuid.New().String(),
		PlatformID: uuid.New().String(),
		StartDate:  "2025-03-05",
		EndDate:    "2025-03-10",
	})
	if err != ErrPlatformNotFound {
		t.Fatalf("expected ErrPlatformNotFound, got %v", err)
	}
}
