package game

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Status tracks where a title is in its release lifecycle
type Status string

const (
	StatusAnnounced Status = "announced"
	StatusReleased  Status = "released"
	StatusDelisted  Status = "delisted"
)

// Game is a title whose PR and sales the dashboard manages
type Game struct {
	ID                 uuid.UUID      `db:"id"`
	ClientID           uuid.UUID      `db:"client_id"`
	Title              string         `db:"title"`
	Slug               string         `db:"slug"`
	Genres             pq.StringArray `db:"genres"`
	ReleaseDate        sql.NullTime   `db:"release_date"`
	PressKitURL        sql.NullString `db:"press_kit_url"`
	DefaultDiscountPct int            `db:"default_discount_pct"`
	Status             Status         `db:"status"`
	CreatedAt          time.Time      `db:"created_at"`
	UpdatedAt          time.Time      `db:"updated_at"`
}
