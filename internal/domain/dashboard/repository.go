package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Counts are the headline numbers on the dashboard
type Counts struct {
	Clients        int `db:"clients" json:"clients"`
	Games          int `db:"games" json:"games"`
	LiveSales      int `db:"live_sales" json:"live_sales"`
	RecentCoverage int `db:"recent_coverage" json:"recent_coverage"`
}

// UpcomingSale is one row of the upcoming-sales widget
type UpcomingSale struct {
	ID           uuid.UUID `db:"id" json:"id"`
	GameTitle    string    `db:"game_title" json:"game_title"`
	PlatformName string    `db:"platform_name" json:"platform_name"`
	Name         string    `db:"name" json:"name"`
	StartDate    time.Time `db:"start_date" json:"start_date"`
	EndDate      time.Time `db:"end_date" json:"end_date"`
	DiscountPct  int       `db:"discount_pct" json:"discount_percentage"`
}

// RecentCoverage is one row of the latest-coverage widget
type RecentCoverage struct {
	ID          uuid.UUID `db:"id" json:"id"`
	GameTitle   string    `db:"game_title" json:"game_title"`
	OutletName  string    `db:"outlet_name" json:"outlet_name"`
	Headline    string    `db:"headline" json:"headline"`
	URL         string    `db:"url" json:"url"`
	PublishedAt time.Time `db:"published_at" json:"published_at"`
}

// Repository reads the aggregates behind the dashboard summary
type Repository interface {
	Counts(ctx context.Context) (*Counts, error)
	UpcomingSales(ctx context.Context, withinDays, limit int) ([]*UpcomingSale, error)
	LatestCoverage(ctx context.Context, limit int) ([]*RecentCoverage, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates dashboard repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Counts(ctx context.Context) (*Counts, error) {
	var c Counts
	query := `
		SELECT
			(SELECT COUNT(*) FROM clients WHERE status = 'active') AS clients,
			(SELECT COUNT(*) FROM games WHERE status != 'delisted') AS games,
			(SELECT COUNT(*) FROM sales WHERE status = 'live') AS live_sales,
			(SELECT COUNT(*) FROM coverage WHERE published_at >= NOW() - INTERVAL '30 days') AS recent_coverage
	`
	if err := r.db.GetContext(ctx, &c, query); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) UpcomingSales(ctx context.Context, withinDays, limit int) ([]*UpcomingSale, error) {
	query := `
		SELECT s.id, g.title AS game_title, p.name AS platform_name,
			s.name, s.start_date, s.end_date, s.discount_pct
		FROM sales s
		JOIN games g ON g.id = s.game_id
		JOIN platforms p ON p.id = s.platform_id
		WHERE s.status = 'planned'
			AND s.start_date >= CURRENT_DATE
			AND s.start_date <= CURRENT_DATE + $1
		ORDER BY s.start_date ASC
		LIMIT $2
	`
	sales := []*UpcomingSale{}
	if err := r.db.SelectContext(ctx, &sales, query, withinDays, limit); err != nil {
		return nil, err
	}
	return sales, nil
}

func (r *repository) LatestCoverage(ctx context.Context, limit int) ([]*RecentCoverage, error) {
	query := `
		SELECT c.id, g.title AS game_title, o.name AS outlet_name,
			c.headline, c.url, c.published_at
		FROM coverage c
		JOIN games g ON g.id = c.game_id
		JOIN outlets o ON o.id = c.outlet_id
		ORDER BY c.published_at DESC
		LIMIT $1
	`
	items := []*RecentCoverage{}
	if err := r.db.SelectContext(ctx, &items, query, limit); err != nil {
		return nil, err
	}
	return items, nil
}
