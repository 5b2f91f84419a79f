package sale

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/pressdeck/pressdeck-api/internal/calendar"
)

// Status tracks a sale through its lifecycle
type Status string

const (
	StatusPlanned   Status = "planned"
	StatusLive      Status = "live"
	StatusEnded     Status = "ended"
	StatusCancelled Status = "cancelled"
)

// Sale is a scheduled or completed discount window for a game on one
// platform. Dates are DATE columns, both ends inclusive.
type Sale struct {
	ID          uuid.UUID         `db:"id"`
	GameID      uuid.UUID         `db:"game_id"`
	PlatformID  uuid.UUID         `db:"platform_id"`
	Name        string            `db:"name"`
	StartDate   time.Time         `db:"start_date"`
	EndDate     time.Time         `db:"end_date"`
	DiscountPct int               `db:"discount_pct"`
	SaleType    calendar.SaleType `db:"sale_type"`
	IsEvent     bool              `db:"is_event"`
	EventName   sql.NullString    `db:"event_name"`
	Status      Status            `db:"status"`
	CreatedAt   time.Time         `db:"created_at"`
	UpdatedAt   time.Time         `db:"updated_at"`
}
