package calendar

import "time"

// maxSearchIterations bounds the next-slot search so pathological inputs
// terminate instead of looping.
const maxSearchIterations = 400

// hasConflict reports whether a candidate date range collides with any sale
// in existing, given the platform cooldown.
//
// Three cases count as a conflict:
//   - direct overlap of the two inclusive ranges;
//   - the candidate starts inside an existing sale's cooldown window
//     (strictly after its end, strictly before end+cooldown; starting
//     exactly on the cooldown-end day is allowed);
//   - with checkForward, the candidate's own cooldown window would swallow
//     the start of a sale scheduled later. Events are placed before gaps
//     are filled, so "later" sales can already exist while earlier slots
//     are still being searched.
//
// The forward check is deliberately one-sided; making it symmetric changes
// which slots the fill order finds.
func hasConflict(candStart, candEnd time.Time, existing []GeneratedSale, cooldownDays int, checkForward bool) bool {
	for i := range existing {
		e := &existing[i]
		cooldownEnd := addDays(e.EndDate, cooldownDays)

		if !candStart.After(e.EndDate) && !candEnd.Before(e.StartDate) {
			return true
		}

		if candStart.After(e.EndDate) && candStart.Before(cooldownEnd) {
			return true
		}

		if checkForward && !candEnd.After(e.StartDate) {
			prospective := addDays(candEnd, cooldownDays)
			if e.StartDate.After(candEnd) && e.StartDate.Before(prospective) {
				return true
			}
		}
	}
	return false
}

// CheckConflict reports whether a sale over [start, end] would collide with
// any sale in existing under the given cooldown. Dates are normalized before
// comparison. Both cooldown directions apply, exactly as during placement:
// the candidate must not start inside an existing sale's cooldown window,
// and its own cooldown window must not swallow a later sale's start.
func CheckConflict(start, end time.Time, existing []GeneratedSale, cooldownDays int) bool {
	return hasConflict(normalizeDate(start), normalizeDate(end), existing, cooldownDays, true)
}

// findNextAvailableDate returns the earliest start on or after afterDate+1
// that fits a sale of saleDuration days before periodEnd without conflict.
// The second result is false when no such start exists.
//
// Instead of scanning day by day, a blocked candidate jumps one day past
// the latest cooldown end among the sales whose range or cooldown window
// contains it.
func findNextAvailableDate(afterDate time.Time, existing []GeneratedSale, cooldownDays int, periodEnd time.Time, saleDuration int) (time.Time, bool) {
	candidate := addDays(afterDate, 1)

	for i := 0; i < maxSearchIterations; i++ {
		if candidate.After(periodEnd) {
			return time.Time{}, false
		}

		candEnd := minDate(addDays(candidate, saleDuration-1), periodEnd)
		if !hasConflict(candidate, candEnd, existing, cooldownDays, true) {
			return candidate, true
		}

		next := addDays(candidate, 1)
		for j := range existing {
			e := &existing[j]
			cooldownEnd := addDays(e.EndDate, cooldownDays)
			if !candidate.Before(e.StartDate) && (!candidate.After(e.EndDate) || candidate.Before(cooldownEnd)) {
				next = maxDate(next, addDays(cooldownEnd, 1))
			}
		}
		candidate = next
	}

	return time.Time{}, false
}
