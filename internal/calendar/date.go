package calendar

import "time"

// All generator arithmetic works on whole calendar days. Dates are
// normalized to UTC midnight so Sub-based math never crosses a DST edge.

// normalizeDate truncates a timestamp to its calendar date in UTC.
func normalizeDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// addDays moves a normalized date forward (or back) by whole days.
func addDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}

// durationDays is the inclusive length of a date range in days.
// Both bounds must be normalized.
func durationDays(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}

func minDate(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

func maxDate(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}
