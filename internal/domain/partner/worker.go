package partner

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/pressdeck/pressdeck-api/internal/domain/coverage"
	"github.com/pressdeck/pressdeck-api/internal/domain/game"
	"github.com/pressdeck/pressdeck-api/internal/domain/outlet"
	"github.com/pressdeck/pressdeck-api/internal/domain/platform"
	"github.com/pressdeck/pressdeck-api/internal/pkg/partnerapi"
)

const (
	mentionCursorKey   = "partner:mentions:cursor"
	mentionBatchSize   = 100
	eventHorizonMonths = 12
)

// API is the slice of the partner client the worker uses
type API interface {
	ListEvents(ctx context.Context, from, to string) ([]partnerapi.Event, error)
	ListMentions(ctx context.Context, since float64, limit int) ([]partnerapi.Mention, error)
}

// Worker periodically pulls seasonal events and press mentions from the
// partner API. Events are upserted by external ID; mentions are ingested
// once, resuming from a cursor kept in Redis.
type Worker struct {
	api       API
	platforms platform.Repository
	games     game.Repository
	outlets   outlet.Repository
	coverage  coverage.Repository
	rdb       *redis.Client
	interval  time.Duration
	stopCh    chan struct{}

	// cursor fallback when Redis is unavailable; resets on restart
	cursor float64
}

// NewWorker creates a partner sync worker
func NewWorker(api API, platforms platform.Repository, games game.Repository, outlets outlet.Repository, coverageRepo coverage.Repository, rdb *redis.Client, interval time.Duration) *Worker {
	if interval == 0 {
		interval = 1 * time.Hour
	}
	return &Worker{
		api:       api,
		platforms: platforms,
		games:     games,
		outlets:   outlets,
		coverage:  coverageRepo,
		rdb:       rdb,
		interval:  interval,
		stopCh:    make(chan struct{}),
	}
}

// Start begins the background worker
func (w *Worker) Start() {
	log.Info().Dur("interval", w.interval).Msg("Starting partner sync worker...")
	go w.loop()
}

// Stop gracefully stops the background worker
func (w *Worker) Stop() {
	log.Info().Msg("Stopping partner sync worker...")
	close(w.stopCh)
}

func (w *Worker) loop() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	// Run once immediately on startup
	w.runSync()

	for {
		select {
		case <-ticker.C:
			w.runSync()
		case <-w.stopCh:
			return
		}
	}
}

func (w *Worker) runSync() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	log.Debug().Msg("Starting partner sync...")

	if err := w.syncEvents(ctx); err != nil {
		log.Error().Err(err).Msg("Partner event sync failed")
	}
	if err := w.syncMentions(ctx); err != nil {
		log.Error().Err(err).Msg("Partner mention sync failed")
	}

	log.Debug().Msg("Finished partner sync")
}

func (w *Worker) syncEvents(ctx context.Context) error {
	from := time.Now()
	to := from.AddDate(0, eventHorizonMonths, 0)

	events, err := w.api.ListEvents(ctx, from.Format("2006-01-02"), to.Format("2006-01-02"))
	if err != nil {
		return err
	}

	var created, updated int
	for i := range events {
		ev := &events[i]

		p, err := w.platforms.GetByPartnerCode(ctx, ev.PlatformCode)
		if err != nil {
			return err
		}
		if p == nil {
			log.Debug().Str("platform", ev.PlatformCode).Msg("Skipping event for unknown platform")
			continue
		}

		start, err := time.Parse("2006-01-02", ev.StartDate)
		if err != nil {
			log.Warn().Str("event", ev.ExternalID).Str("start_date", ev.StartDate).Msg("Skipping event with bad start date")
			continue
		}
		end, err := time.Parse("2006-01-02", ev.EndDate)
		if err != nil || end.Before(start) {
			log.Warn().Str("event", ev.ExternalID).Str("end_date", ev.EndDate).Msg("Skipping event with bad end date")
			continue
		}

		existing, err := w.platforms.GetEventByExternalID(ctx, ev.ExternalID)
		if err != nil {
			return err
		}

		if existing != nil {
			existing.Name = ev.Name
			existing.StartDate = start
			existing.EndDate = end
			existing.RequiresCooldown = ev.RequiresCooldown
			existing.UpdatedAt = time.Now()
			if err := w.platforms.UpdateEvent(ctx, existing); err != nil {
				return err
			}
			updated++
			continue
		}

		now := time.Now()
		if err := w.platforms.CreateEvent(ctx, &platform.Event{
			ID:               uuid.New(),
			PlatformID:       p.ID,
			Name:             ev.Name,
			StartDate:        start,
			EndDate:          end,
			RequiresCooldown: ev.RequiresCooldown,
			Source:           platform.SourcePartner,
			ExternalID:       sql.NullString{String: ev.ExternalID, Valid: true},
			CreatedAt:        now,
			UpdatedAt:        now,
		}); err != nil {
			return err
		}
		created++
	}

	if created > 0 || updated > 0 {
		log.Info().Int("created", created).Int("updated", updated).Msg("Synced partner events")
	}
	return nil
}

func (w *Worker) syncMentions(ctx context.Context) error {
	cursor := w.loadCursor(ctx)

	mentions, err := w.api.ListMentions(ctx, cursor, mentionBatchSize)
	if err != nil {
		return err
	}

	var ingested int
	for i := range mentions {
		m := &mentions[i]
		if m.Cursor > cursor {
			cursor = m.Cursor
		}

		existing, err := w.coverage.GetByExternalID(ctx, m.ExternalID)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}

		item, ok, err := w.mapMention(ctx, m)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}

		if err := w.coverage.Create(ctx, item); err != nil {
			return err
		}
		ingested++
	}

	w.storeCursor(ctx, cursor)

	if ingested > 0 {
		log.Info().Int("ingested", ingested).Float64("cursor", cursor).Msg("Synced partner mentions")
	}
	return nil
}

// mapMention resolves a mention against known games and outlets. Mentions
// for unknown games are dropped; unknown outlets are auto-registered at
// tier 3 so the coverage is not lost.
func (w *Worker) mapMention(ctx context.Context, m *partnerapi.Mention) (*coverage.Item, bool, error) {
	g, err := w.games.GetBySlug(ctx, m.ProductSlug)
	if err != nil {
		return nil, false, err
	}
	if g == nil {
		log.Debug().Str("product", m.ProductSlug).Msg("Skipping mention for unknown game")
		return nil, false, nil
	}

	o, err := w.outlets.GetByName(ctx, m.OutletName)
	if err != nil {
		return nil, false, err
	}
	if o == nil {
		now := time.Now()
		o = &outlet.Outlet{
			ID:        uuid.New(),
			Name:      m.OutletName,
			URL:       m.URL,
			Tier:      3,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := w.outlets.Create(ctx, o); err != nil {
			return nil, false, err
		}
	}

	publishedAt, err := time.Parse(time.RFC3339, m.PublishedAt)
	if err != nil {
		publishedAt, err = time.Parse("2006-01-02", m.PublishedAt)
		if err != nil {
			log.Warn().Str("mention", m.ExternalID).Str("published_at", m.PublishedAt).Msg("Skipping mention with bad publish date")
			return nil, false, nil
		}
	}

	coverageType := coverage.Type(m.Kind)
	switch coverageType {
	case coverage.TypeReview, coverage.TypePreview, coverage.TypeNews, coverage.TypeInterview, coverage.TypeVideo:
	default:
		coverageType = coverage.TypeNews
	}

	sentiment := coverage.Sentiment(m.Sentiment)
	switch sentiment {
	case coverage.SentimentPositive, coverage.SentimentNeutral, coverage.SentimentNegative:
	default:
		sentiment = coverage.SentimentNeutral
	}

	now := time.Now()
	item := &coverage.Item{
		ID:           uuid.New(),
		GameID:       g.ID,
		OutletID:     o.ID,
		URL:          m.URL,
		Headline:     m.Headline,
		Author:       sql.NullString{String: m.Author, Valid: m.Author != ""},
		PublishedAt:  publishedAt,
		CoverageType: coverageType,
		Sentiment:    sentiment,
		Source:       coverage.SourcePartner,
		ExternalID:   sql.NullString{String: m.ExternalID, Valid: true},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if m.Score != nil {
		item.Score = sql.NullInt64{Int64: int64(*m.Score), Valid: true}
	}
	return item, true, nil
}

func (w *Worker) loadCursor(ctx context.Context) float64 {
	if w.rdb == nil {
		return w.cursor
	}

	raw, err := w.rdb.Get(ctx, mentionCursorKey).Result()
	if err != nil {
		if err != redis.Nil {
			log.Warn().Err(err).Msg("Failed to load mention cursor, starting from zero")
		}
		return 0
	}

	cursor, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return cursor
}

func (w *Worker) storeCursor(ctx context.Context, cursor float64) {
	w.cursor = cursor

	if w.rdb == nil {
		return
	}
	if err := w.rdb.Set(ctx, mentionCursorKey, strconv.FormatFloat(cursor, 'f', -1, 64), 0).Err(); err != nil {
		log.Warn().Err(err).Msg("Failed to store mention cursor")
	}
}
