package calendar

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
)

// defaultHorizonMonths is the planning horizon when the caller gives
// neither a month count nor an explicit end date.
const defaultHorizonMonths = 12

// launchSaleDays caps the synthesized launch sale for platforms without
// events.
const launchSaleDays = 7

// Generate produces three alternative conflict-free discount schedules for
// one product, one per strategy, always in the same order: maximize,
// balanced, events-only.
//
// The computation is pure: nothing is persisted, identical inputs yield
// identical schedules, and the only state is the owned slices built here.
func Generate(in Input) []Variation {
	periodStart := normalizeDate(in.LaunchDate)
	periodEnd := resolvePeriodEnd(periodStart, in)

	variations := make([]Variation, 0, len(strategyOrder))
	for _, strategy := range strategyOrder {
		cfg := configFor(strategy)

		var all []GeneratedSale
		for _, p := range in.Platforms {
			placed := placeEvents(in, p, periodStart, periodEnd)
			placed = fillGaps(in, p, cfg, placed, periodStart, periodEnd)
			all = append(all, placed...)
		}

		sort.SliceStable(all, func(i, j int) bool {
			return all[i].StartDate.Before(all[j].StartDate)
		})

		variations = append(variations, Variation{
			Strategy:    strategy,
			Name:        cfg.name,
			Description: cfg.description,
			Sales:       all,
			Stats:       calcStats(all, periodStart, periodEnd),
		})
	}

	return variations
}

func resolvePeriodEnd(periodStart time.Time, in Input) time.Time {
	if in.EndDate != nil {
		return normalizeDate(*in.EndDate)
	}
	months := in.Months
	if months <= 0 {
		months = defaultHorizonMonths
	}
	return addDays(periodStart.AddDate(0, months, 0), -1)
}

// placeEvents converts a platform's fixed events inside the planning period
// into scheduled sales. Events are clamped to the period, truncated to the
// platform's maximum sale length, and dropped without report when they
// collide with an event already placed for the platform.
func placeEvents(in Input, p Platform, periodStart, periodEnd time.Time) []GeneratedSale {
	var events []PlatformEvent
	for _, e := range in.Events {
		if e.PlatformID != p.ID {
			continue
		}
		start := normalizeDate(e.StartDate)
		end := normalizeDate(e.EndDate)
		if end.Before(periodStart) || start.After(periodEnd) {
			continue
		}
		e.StartDate = start
		e.EndDate = end
		events = append(events, e)
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].StartDate.Before(events[j].StartDate)
	})

	var placed []GeneratedSale
	for _, e := range events {
		start := maxDate(e.StartDate, periodStart)
		end := minDate(e.EndDate, periodEnd)
		if durationDays(start, end) > p.MaxSaleDays {
			end = addDays(start, p.MaxSaleDays-1)
		}

		cooldown := p.CooldownDays
		if !e.RequiresCooldown {
			cooldown = 0
		}
		if hasConflict(start, end, placed, cooldown, true) {
			continue
		}

		placed = append(placed, GeneratedSale{
			ID:            uuid.New(),
			ProductID:     in.ProductID,
			PlatformID:    p.ID,
			PlatformName:  p.Name,
			PlatformColor: p.Color,
			StartDate:     start,
			EndDate:       end,
			DiscountPct:   in.DiscountPct,
			Name:          e.Name,
			Type:          SaleTypeSeasonal,
			IsEvent:       true,
			EventName:     e.Name,
		})
	}
	return placed
}

// fillGaps greedily inserts custom sales into the platform's remaining gaps
// according to the strategy config. The placed event sales are the initial
// occupied set; a slot that cannot be found is skipped, never an error.
func fillGaps(in Input, p Platform, cfg strategyConfig, placed []GeneratedSale, periodStart, periodEnd time.Time) []GeneratedSale {
	hadEvents := len(placed) > 0

	if cfg.fallbackOnEmpty {
		if hadEvents {
			return placed
		}
		end := minDate(addDays(periodStart, minInt(p.MaxSaleDays, launchSaleDays)-1), periodEnd)
		return append(placed, customSale(in, p, periodStart, end, launchSaleName(p)))
	}

	duration := cfg.durationFor(p)
	if duration <= 0 || cfg.maxCustom <= 0 {
		return placed
	}

	pointer := addDays(periodStart, -1)
	customCount := 0
	for customCount < cfg.maxCustom {
		start, ok := findNextAvailableDate(pointer, placed, p.CooldownDays, periodEnd, duration)
		if !ok {
			break
		}
		end := minDate(addDays(start, duration-1), periodEnd)

		customCount++
		name := fmt.Sprintf("Custom Sale %d", customCount)
		if !hadEvents && customCount == 1 {
			name = launchSaleName(p)
		}

		placed = append(placed, customSale(in, p, start, end, name))
		pointer = addDays(end, p.CooldownDays)
	}
	return placed
}

func customSale(in Input, p Platform, start, end time.Time, name string) GeneratedSale {
	return GeneratedSale{
		ID:            uuid.New(),
		ProductID:     in.ProductID,
		PlatformID:    p.ID,
		PlatformName:  p.Name,
		PlatformColor: p.Color,
		StartDate:     start,
		EndDate:       end,
		DiscountPct:   in.DiscountPct,
		Name:          name,
		Type:          SaleTypeCustom,
	}
}

func launchSaleName(p Platform) string {
	return fmt.Sprintf("%s Launch Sale", p.Name)
}

// calcStats derives summary metrics from a finished variation sale list.
func calcStats(sales []GeneratedSale, periodStart, periodEnd time.Time) Stats {
	totalDays := durationDays(periodStart, periodEnd)

	s := Stats{TotalSales: len(sales)}
	for _, sale := range sales {
		s.TotalDaysOnSale += durationDays(sale.StartDate, sale.EndDate)
		if sale.IsEvent {
			s.EventSales++
		} else {
			s.CustomSales++
		}
	}
	if totalDays > 0 {
		s.PercentageOnSale = int(math.Round(100 * float64(s.TotalDaysOnSale) / float64(totalDays)))
	}
	return s
}
