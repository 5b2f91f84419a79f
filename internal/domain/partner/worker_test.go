package partner

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/pressdeck/pressdeck-api/internal/domain/coverage"
	"github.com/pressdeck/pressdeck-api/internal/domain/game"
	"github.com/pressdeck/pressdeck-api/internal/domain/outlet"
	"github.com/pressdeck/pressdeck-api/internal/domain/platform"
	"github.com/pressdeck/pressdeck-api/internal/pkg/partnerapi"
)

type fakeAPI struct {
	events   []partnerapi.Event
	mentions []partnerapi.Mention
}

func (f *fakeAPI) ListEvents(ctx context.Context, from, to string) ([]partnerapi.Event, error) {
	return f.events, nil
}

func (f *fakeAPI) ListMentions(ctx context.Context, since float64, limit int) ([]partnerapi.Mention, error) {
	out := []partnerapi.Mention{}
	for _, m := range f.mentions {
		if m.Cursor > since {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakePlatformRepo struct {
	platforms []*platform.Platform
	events    []*platform.Event
	updated   []*platform.Event
}

func (f *fakePlatformRepo) Create(ctx context.Context, p *platform.Platform) error { return nil }

func (f *fakePlatformRepo) GetByID(ctx context.Context, id uuid.UUID) (*platform.Platform, error) {
	return nil, nil
}

func (f *fakePlatformRepo) GetBySlug(ctx context.Context, slug string) (*platform.Platform, error) {
	return nil, nil
}

func (f *fakePlatformRepo) GetByPartnerCode(ctx context.Context, code string) (*platform.Platform, error) {
	for _, p := range f.platforms {
		if p.PartnerCode.Valid && p.PartnerCode.String == code {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakePlatformRepo) Update(ctx context.Context, p *platform.Platform) error { return nil }

func (f *fakePlatformRepo) List(ctx context.Context, activeOnly bool) ([]*platform.Platform, error) {
	return f.platforms, nil
}

func (f *fakePlatformRepo) CreateEvent(ctx context.Context, e *platform.Event) error {
	f.events = append(f.events, e)
	return nil
}

func (f *fakePlatformRepo) GetEventByID(ctx context.Context, id uuid.UUID) (*platform.Event, error) {
	return nil, nil
}

func (f *fakePlatformRepo) GetEventByExternalID(ctx context.Context, externalID string) (*platform.Event, error) {
	for _, e := range f.events {
		if e.ExternalID.Valid && e.ExternalID.String == externalID {
			return e, nil
		}
	}
	return nil, nil
}

func (f *fakePlatformRepo) UpdateEvent(ctx context.Context, e *platform.Event) error {
	f.updated = append(f.updated, e)
	return nil
}

func (f *fakePlatformRepo) DeleteEvent(ctx context.Context, id uuid.UUID) error { return nil }

func (f *fakePlatformRepo) ListEvents(ctx context.Context, platformID *uuid.UUID, from, to *time.Time) ([]*platform.Event, error) {
	return f.events, nil
}

type fakeGameRepo struct {
	games []*game.Game
}

func (f *fakeGameRepo) Create(ctx context.Context, g *game.Game) error { return nil }

func (f *fakeGameRepo) GetByID(ctx context.Context, id uuid.UUID) (*game.Game, error) {
	return nil, nil
}

func (f *fakeGameRepo) GetBySlug(ctx context.Context, slug string) (*game.Game, error) {
	for _, g := range f.games {
		if g.Slug == slug {
			return g, nil
		}
	}
	return nil, nil
}

func (f *fakeGameRepo) Update(ctx context.Context, g *game.Game) error { return nil }

func (f *fakeGameRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (f *fakeGameRepo) List(ctx context.Context, clientID *uuid.UUID, status *game.Status, limit, offset int) ([]*game.Game, int, error) {
	return nil, 0, nil
}

type fakeOutletRepo struct {
	outlets []*outlet.Outlet
	created []*outlet.Outlet
}

func (f *fakeOutletRepo) Create(ctx context.Context, o *outlet.Outlet) error {
	f.created = append(f.created, o)
	f.outlets = append(f.outlets, o)
	return nil
}

func (f *fakeOutletRepo) GetByID(ctx context.Context, id uuid.UUID) (*outlet.Outlet, error) {
	return nil, nil
}

func (f *fakeOutletRepo) GetByName(ctx context.Context, name string) (*outlet.Outlet, error) {
	for _, o := range f.outlets {
		if o.Name == name {
			return o, nil
		}
	}
	return nil, nil
}

func (f *fakeOutletRepo) Update(ctx context.Context, o *outlet.Outlet) error { return nil }

func (f *fakeOutletRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (f *fakeOutletRepo) List(ctx context.Context, tier *int, region *string, limit, offset int) ([]*outlet.Outlet, int, error) {
	return f.outlets, len(f.outlets), nil
}

type fakeCoverageRepo struct {
	items []*coverage.Item
}

func (f *fakeCoverageRepo) Create(ctx context.Context, c *coverage.Item) error {
	f.items = append(f.items, c)
	return nil
}

func (f *fakeCoverageRepo) GetByID(ctx context.Context, id uuid.UUID) (*coverage.Item, error) {
	return nil, nil
}

func (f *fakeCoverageRepo) GetByExternalID(ctx context.Context, externalID string) (*coverage.Item, error) {
	for _, c := range f.items {
		if c.ExternalID.Valid && c.ExternalID.String == externalID {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCoverageRepo) Update(ctx context.Context, c *coverage.Item) error { return nil }

func (f *fakeCoverageRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (f *fakeCoverageRepo) List(ctx context.Context, filter coverage.ListFilter, limit, offset int) ([]*coverage.Item, int, error) {
	return f.items, len(f.items), nil
}

func (f *fakeCoverageRepo) Summary(ctx context.Context, gameID uuid.UUID) (*coverage.Summary, error) {
	return &coverage.Summary{}, nil
}

func steamPlatform() *platform.Platform {
	p := &platform.Platform{
		ID:           uuid.New(),
		Name:         "Steam",
		Slug:         "steam",
		CooldownDays: 30,
		MaxSaleDays:  14,
		IsActive:     true,
	}
	p.PartnerCode.String = "steam"
	p.PartnerCode.Valid = true
	return p
}

func testWorker(api API, platforms *fakePlatformRepo, games *fakeGameRepo, outlets *fakeOutletRepo, coverageRepo *fakeCoverageRepo) *Worker {
	return NewWorker(api, platforms, games, outlets, coverageRepo, nil, time.Hour)
}

func TestSyncEventsCreatesAndSkipsUnknownPlatform(t *testing.T) {
	platforms := &fakePlatformRepo{platforms: []*platform.Platform{steamPlatform()}}
	api := &fakeAPI{events: []partnerapi.Event{
		{ExternalID: "ev-1", PlatformCode: "steam", Name: "Summer Sale", StartDate: "2025-06-20", EndDate: "2025-07-03", RequiresCooldown: true},
		{ExternalID: "ev-2", PlatformCode: "gog", Name: "GOG Sale", StartDate: "2025-06-01", EndDate: "2025-06-10"},
	}}
	w := testWorker(api, platforms, &fakeGameRepo{}, &fakeOutletRepo{}, &fakeCoverageRepo{})

	if err := w.syncEvents(context.Background()); err != nil {
		t.Fatalf("syncEvents: %v", err)
	}

	if len(platforms.events) != 1 {
		t.Fatalf("created %d events, want 1", len(platforms.events))
	}
	e := platforms.events[0]
	if e.Source != platform.SourcePartner {
		t.Errorf("source = %q, want partner", e.Source)
	}
	if !e.ExternalID.Valid || e.ExternalID.String != "ev-1" {
		t.Errorf("external ID = %+v, want ev-1", e.ExternalID)
	}
	if !e.RequiresCooldown {
		t.Error("cooldown flag lost in mapping")
	}
}

func TestSyncEventsUpdatesExisting(t *testing.T) {
	platforms := &fakePlatformRepo{platforms: []*platform.Platform{steamPlatform()}}
	api := &fakeAPI{events: []partnerapi.Event{
		{ExternalID: "ev-1", PlatformCode: "steam", Name: "Summer Sale", StartDate: "2025-06-20", EndDate: "2025-07-03"},
	}}
	w := testWorker(api, platforms, &fakeGameRepo{}, &fakeOutletRepo{}, &fakeCoverageRepo{})

	if err := w.syncEvents(context.Background()); err != nil {
		t.Fatalf("first syncEvents: %v", err)
	}

	// Partner moves the window; the second sync must update, not duplicate.
	api.events[0].StartDate = "2025-06-25"
	api.events[0].EndDate = "2025-07-08"

	if err := w.syncEvents(context.Background()); err != nil {
		t.Fatalf("second syncEvents: %v", err)
	}

	if len(platforms.events) != 1 {
		t.Fatalf("have %d events after resync, want 1", len(platforms.events))
	}
	if len(platforms.updated) != 1 {
		t.Fatalf("updated %d events, want 1", len(platforms.updated))
	}
	want, _ := time.Parse("2006-01-02", "2025-06-25")
	if !platforms.events[0].StartDate.Equal(want) {
		t.Errorf("start date = %v, want %v", platforms.events[0].StartDate, want)
	}
}

func TestSyncEventsSkipsBadDates(t *testing.T) {
	platforms := &fakePlatformRepo{platforms: []*platform.Platform{steamPlatform()}}
	api := &fakeAPI{events: []partnerapi.Event{
		{ExternalID: "ev-1", PlatformCode: "steam", Name: "Broken", StartDate: "junk", EndDate: "2025-07-03"},
		{ExternalID: "ev-2", PlatformCode: "steam", Name: "Inverted", StartDate: "2025-07-03", EndDate: "2025-06-20"},
	}}
	w := testWorker(api, platforms, &fakeGameRepo{}, &fakeOutletRepo{}, &fakeCoverageRepo{})

	if err := w.syncEvents(context.Background()); err != nil {
		t.Fatalf("syncEvents: %v", err)
	}
	if len(platforms.events) != 0 {
		t.Fatalf("created %d events from bad input, want 0", len(platforms.events))
	}
}

func TestSyncMentionsIngestsAndAdvancesCursor(t *testing.T) {
	g := &game.Game{ID: uuid.New(), Slug: "starlight-drift", Title: "Starlight Drift"}
	games := &fakeGameRepo{games: []*game.Game{g}}
	outlets := &fakeOutletRepo{}
	coverageRepo := &fakeCoverageRepo{}

	score := 87
	api := &fakeAPI{mentions: []partnerapi.Mention{
		{
			ExternalID:  "m-1",
			ProductSlug: "starlight-drift",
			OutletName:  "Pixel Gazette",
			URL:         "https://pixelgazette.example/reviews/starlight-drift",
			Headline:    "Starlight Drift review",
			Kind:        "review",
			Score:       &score,
			Sentiment:   "positive",
			PublishedAt: "2025-03-01T10:00:00Z",
			Cursor:      101,
		},
		{
			ExternalID:  "m-2",
			ProductSlug: "unknown-game",
			OutletName:  "Pixel Gazette",
			URL:         "https://pixelgazette.example/news/unknown",
			Headline:    "Unknown game news",
			Kind:        "news",
			PublishedAt: "2025-03-02T10:00:00Z",
			Cursor:      102,
		},
	}}
	w := testWorker(api, &fakePlatformRepo{}, games, outlets, coverageRepo)

	if err := w.syncMentions(context.Background()); err != nil {
		t.Fatalf("syncMentions: %v", err)
	}

	if len(coverageRepo.items) != 1 {
		t.Fatalf("ingested %d items, want 1", len(coverageRepo.items))
	}
	item := coverageRepo.items[0]
	if item.GameID != g.ID {
		t.Errorf("game ID = %s, want %s", item.GameID, g.ID)
	}
	if item.Source != coverage.SourcePartner {
		t.Errorf("source = %q, want partner", item.Source)
	}
	if item.CoverageType != coverage.TypeReview {
		t.Errorf("type = %q, want review", item.CoverageType)
	}
	if !item.Score.Valid || item.Score.Int64 != 87 {
		t.Errorf("score = %+v, want 87", item.Score)
	}

	// The unknown outlet is auto-registered at the lowest tier.
	if len(outlets.created) != 1 {
		t.Fatalf("created %d outlets, want 1", len(outlets.created))
	}
	if outlets.created[0].Tier != 3 {
		t.Errorf("auto-created outlet tier = %d, want 3", outlets.created[0].Tier)
	}

	// Cursor covers the skipped mention too, so it is not re-fetched.
	if w.cursor != 102 {
		t.Errorf("cursor = %v, want 102", w.cursor)
	}
}

func TestSyncMentionsSkipsDuplicates(t *testing.T) {
	g := &game.Game{ID: uuid.New(), Slug: "starlight-drift"}
	games := &fakeGameRepo{games: []*game.Game{g}}
	coverageRepo := &fakeCoverageRepo{}

	api := &fakeAPI{mentions: []partnerapi.Mention{
		{
			ExternalID:  "m-1",
			ProductSlug: "starlight-drift",
			OutletName:  "Pixel Gazette",
			URL:         "https://pixelgazette.example/a",
			Headline:    "First look",
			Kind:        "preview",
			PublishedAt: "2025-03-01T10:00:00Z",
			Cursor:      50,
		},
	}}
	w := testWorker(api, &fakePlatformRepo{}, games, &fakeOutletRepo{}, coverageRepo)

	if err := w.syncMentions(context.Background()); err != nil {
		t.Fatalf("first syncMentions: %v", err)
	}

	// Reset the cursor to force a re-fetch of the same mention.
	w.cursor = 0
	if err := w.syncMentions(context.Background()); err != nil {
		t.Fatalf("second syncMentions: %v", err)
	}

	if len(coverageRepo.items) != 1 {
		t.Fatalf("have %d items after resync, want 1", len(coverageRepo.items))
	}
}
