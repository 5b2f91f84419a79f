package client

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Status tracks the client engagement lifecycle
type Status string

const (
	StatusActive   Status = "active"
	StatusPaused   Status = "paused"
	StatusArchived Status = "archived"
)

// Client is a studio or publisher the agency runs PR for
type Client struct {
	ID           uuid.UUID      `db:"id"`
	CompanyName  string         `db:"company_name"`
	ContactName  string         `db:"contact_name"`
	ContactEmail string         `db:"contact_email"`
	ContactPhone sql.NullString `db:"contact_phone"`
	Website      sql.NullString `db:"website"`
	Notes        sql.NullString `db:"notes"`
	Status       Status         `db:"status"`
	Tags         pq.StringArray `db:"tags"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}
