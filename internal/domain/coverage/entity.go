package coverage

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Type classifies a piece of coverage
type Type string

const (
	TypeReview    Type = "review"
	TypePreview   Type = "preview"
	TypeNews      Type = "news"
	TypeInterview Type = "interview"
	TypeVideo     Type = "video"
)

// Sentiment is the editorial tone of a piece
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// Source records how a coverage item entered the system
type Source string

const (
	SourceManual  Source = "manual"
	SourcePartner Source = "partner"
)

// Item is one piece of press coverage for a game. Score is only present
// for scored reviews, on a 0-100 scale.
type Item struct {
	ID           uuid.UUID      `db:"id"`
	GameID       uuid.UUID      `db:"game_id"`
	OutletID     uuid.UUID      `db:"outlet_id"`
	URL          string         `db:"url"`
	Headline     string         `db:"headline"`
	Author       sql.NullString `db:"author"`
	PublishedAt  time.Time      `db:"published_at"`
	CoverageType Type           `db:"coverage_type"`
	Score        sql.NullInt64  `db:"score"`
	Sentiment    Sentiment      `db:"sentiment"`
	Source       Source         `db:"source"`
	ExternalID   sql.NullString `db:"external_id"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

// Summary aggregates a game's coverage
type Summary struct {
	Total       int               `json:"total"`
	ByType      map[Type]int      `json:"by_type"`
	AvgScore    *float64          `json:"avg_score,omitempty"`
	Scored      int               `json:"scored"`
	BySentiment map[Sentiment]int `json:"by_sentiment"`
}
