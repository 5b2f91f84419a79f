package calendar

import (
	"time"

	"github.com/google/uuid"
)

// SaleType classifies how a sale entry originated
type SaleType string

const (
	SaleTypeCustom   SaleType = "custom"
	SaleTypeSeasonal SaleType = "seasonal"
	SaleTypeFestival SaleType = "festival"
	SaleTypeSpecial  SaleType = "special"
)

// Platform is the generator's view of a distribution platform.
// Cooldown and max duration are the only scheduling constraints it carries.
type Platform struct {
	ID           uuid.UUID
	Name         string
	Color        string
	CooldownDays int
	MaxSaleDays  int
}

// PlatformEvent is a fixed seasonal sale window negotiated with a platform.
// It cannot be moved, only clamped to the planning period or dropped.
type PlatformEvent struct {
	ID               uuid.UUID
	PlatformID       uuid.UUID
	Name             string
	StartDate        time.Time
	EndDate          time.Time
	RequiresCooldown bool
}

// GeneratedSale is one proposed sale in a calendar variation. The ID is
// ephemeral: it identifies the entry within a single generation call and
// is never persisted.
type GeneratedSale struct {
	ID            uuid.UUID `json:"id"`
	ProductID     string    `json:"product_id"`
	PlatformID    uuid.UUID `json:"platform_id"`
	PlatformName  string    `json:"platform_name"`
	PlatformColor string    `json:"platform_color,omitempty"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	DiscountPct   int       `json:"discount_percentage"`
	Name          string    `json:"sale_name"`
	Type          SaleType  `json:"sale_type"`
	IsEvent       bool      `json:"is_event"`
	EventName     string    `json:"event_name,omitempty"`
}

// Stats summarizes one variation's sale list over the planning period.
type Stats struct {
	TotalSales       int `json:"totalSales"`
	TotalDaysOnSale  int `json:"totalDaysOnSale"`
	PercentageOnSale int `json:"percentageOnSale"`
	EventSales       int `json:"eventSales"`
	CustomSales      int `json:"customSales"`
}

// Variation is one strategy's complete proposed schedule.
type Variation struct {
	Strategy    Strategy        `json:"strategy"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Sales       []GeneratedSale `json:"sales"`
	Stats       Stats           `json:"stats"`
}

// Strategy selects one of the three fixed generation policies.
type Strategy string

const (
	StrategyMaximize   Strategy = "maximize"
	StrategyBalanced   Strategy = "balanced"
	StrategyEventsOnly Strategy = "events_only"
)

// strategyConfig parameterizes the gap-fill loop so all three strategies
// share a single implementation.
type strategyConfig struct {
	name        string
	description string
	// durationFor returns the custom-sale duration for a platform.
	// Zero means the strategy places no gap fillers at all.
	durationFor func(p Platform) int
	// maxCustom caps gap fillers per platform.
	maxCustom int
	// fallbackOnEmpty synthesizes one launch sale when a platform has no
	// events (events-only strategy).
	fallbackOnEmpty bool
}

func configFor(s Strategy) strategyConfig {
	switch s {
	case StrategyMaximize:
		return strategyConfig{
			name:        "Maximum Coverage",
			description: "Fills every available gap with full-length sales for the highest time on sale.",
			durationFor: func(p Platform) int { return p.MaxSaleDays },
			maxCustom:   50,
		}
	case StrategyBalanced:
		return strategyConfig{
			name:        "Balanced",
			description: "Regular week-long sales spaced by each platform's cooldown.",
			durationFor: func(p Platform) int { return minInt(p.MaxSaleDays, 7) },
			maxCustom:   12,
		}
	default:
		return strategyConfig{
			name:            "Events Only",
			description:     "Seasonal platform events only, with a single launch sale where a platform has none.",
			durationFor:     func(p Platform) int { return 0 },
			maxCustom:       0,
			fallbackOnEmpty: true,
		}
	}
}

// strategyOrder is the fixed order variations are produced in.
var strategyOrder = []Strategy{StrategyMaximize, StrategyBalanced, StrategyEventsOnly}

// Input is everything one generation call needs. ProductID is opaque and
// passed through to output unchanged.
type Input struct {
	ProductID  string
	Platforms  []Platform
	Events     []PlatformEvent
	LaunchDate time.Time
	// Months sets the planning horizon from LaunchDate; ignored when
	// EndDate is set. Zero defaults to 12.
	Months      int
	EndDate     *time.Time
	DiscountPct int
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
