package outlet

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Outlet is a press outlet or content channel the agency pitches to.
// Tier 1 is the highest-reach bracket.
type Outlet struct {
	ID           uuid.UUID      `db:"id"`
	Name         string         `db:"name"`
	URL          string         `db:"url"`
	Region       string         `db:"region"`
	Tier         int            `db:"tier"`
	Topics       pq.StringArray `db:"topics"`
	ContactEmail sql.NullString `db:"contact_email"`
	ReachScore   int            `db:"reach_score"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}
