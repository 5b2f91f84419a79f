package platform

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// EventSource records where an event definition came from
type EventSource string

const (
	SourceManual  EventSource = "manual"
	SourcePartner EventSource = "partner"
)

// Platform is a distribution storefront with discount spacing rules.
// CooldownDays is the minimum gap after a sale ends before the next one may
// start; MaxSaleDays caps a single sale's length.
type Platform struct {
	ID           uuid.UUID      `db:"id"`
	Name         string         `db:"name"`
	Slug         string         `db:"slug"`
	Color        string         `db:"color"`
	CooldownDays int            `db:"cooldown_days"`
	MaxSaleDays  int            `db:"max_sale_days"`
	PartnerCode  sql.NullString `db:"partner_code"`
	IsActive     bool           `db:"is_active"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

// Event is a fixed seasonal sale window on a platform. The dates cannot be
// moved; the calendar generator only clamps or drops them.
type Event struct {
	ID               uuid.UUID      `db:"id"`
	PlatformID       uuid.UUID      `db:"platform_id"`
	Name             string         `db:"name"`
	StartDate        time.Time      `db:"start_date"`
	EndDate          time.Time      `db:"end_date"`
	RequiresCooldown bool           `db:"requires_cooldown"`
	IsRecurring      bool           `db:"is_recurring"`
	Source           EventSource    `db:"source"`
	ExternalID       sql.NullString `db:"external_id"`
	CreatedAt        time.Time      `db:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at"`
}
