package calendar

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sale(start, end time.Time) GeneratedSale {
	return GeneratedSale{ID: uuid.New(), StartDate: start, EndDate: end}
}

func TestHasConflictDirectOverlap(t *testing.T) {
	existing := []GeneratedSale{sale(date(2025, 3, 10), date(2025, 3, 20))}

	cases := []struct {
		name       string
		start, end time.Time
		want       bool
	}{
		{"inside", date(2025, 3, 12), date(2025, 3, 15), true},
		{"spanning", date(2025, 3, 1), date(2025, 3, 31), true},
		{"touching end", date(2025, 3, 20), date(2025, 3, 25), true},
		{"touching start", date(2025, 3, 5), date(2025, 3, 10), true},
		{"before", date(2025, 3, 1), date(2025, 3, 9), false},
	}

	for _, tc := range cases {
		if got := hasConflict(tc.start, tc.end, existing, 0, false); got != tc.want {
			t.Errorf("%s: hasConflict = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestHasConflictBackwardCooldown(t *testing.T) {
	// Sale ends Mar 20, cooldown 10 days, so the cooldown window runs
	// through Mar 29 and a start on Mar 30 is allowed.
	existing := []GeneratedSale{sale(date(2025, 3, 10), date(2025, 3, 20))}

	if !hasConflict(date(2025, 3, 25), date(2025, 3, 28), existing, 10, false) {
		t.Error("start inside cooldown window should conflict")
	}
	if hasConflict(date(2025, 3, 30), date(2025, 4, 5), existing, 10, false) {
		t.Error("start exactly on cooldown end day must be permitted")
	}
	if !hasConflict(date(2025, 3, 29), date(2025, 4, 5), existing, 10, false) {
		t.Error("start one day before cooldown end should conflict")
	}
}

func TestHasConflictForward(t *testing.T) {
	// A sale already scheduled for Mar 10. A candidate ending Mar 5 with a
	// 10-day cooldown would push its window over the later sale's start.
	existing := []GeneratedSale{sale(date(2025, 3, 10), date(2025, 3, 14))}

	if !hasConflict(date(2025, 3, 1), date(2025, 3, 5), existing, 10, true) {
		t.Error("candidate whose cooldown swallows a later start should conflict")
	}
	if hasConflict(date(2025, 3, 1), date(2025, 3, 5), existing, 10, false) {
		t.Error("forward check must be off when checkForward is false")
	}
	// Candidate ending Feb 28: cooldown window runs through Mar 10
	// exclusive, so the later sale starting Mar 10 is fine.
	if hasConflict(date(2025, 2, 22), date(2025, 2, 28), existing, 10, true) {
		t.Error("later sale starting exactly on prospective cooldown end should not conflict")
	}
}

func TestFindNextAvailableDateSkipsOccupied(t *testing.T) {
	existing := []GeneratedSale{sale(date(2025, 1, 1), date(2025, 1, 14))}
	periodEnd := date(2025, 12, 31)

	got, ok := findNextAvailableDate(date(2024, 12, 31), existing, 30, periodEnd, 14)
	if !ok {
		t.Fatal("expected a slot")
	}
	// One day past the Jan 14 + 30d cooldown end.
	if want := date(2025, 2, 14); !got.Equal(want) {
		t.Errorf("got %s, want %s", got.Format("2006-01-02"), want.Format("2006-01-02"))
	}
}

func TestFindNextAvailableDateNone(t *testing.T) {
	existing := []GeneratedSale{sale(date(2025, 1, 1), date(2025, 1, 14))}

	// Period ends inside the cooldown window, nothing can fit.
	if _, ok := findNextAvailableDate(date(2024, 12, 31), existing, 30, date(2025, 2, 10), 14); ok {
		t.Error("expected no slot before period end")
	}
}

func TestFindNextAvailableDateZeroCooldown(t *testing.T) {
	existing := []GeneratedSale{sale(date(2025, 1, 1), date(2025, 1, 5))}

	got, ok := findNextAvailableDate(date(2025, 1, 5), existing, 0, date(2025, 12, 31), 5)
	if !ok {
		t.Fatal("expected a slot")
	}
	if want := date(2025, 1, 6); !got.Equal(want) {
		t.Errorf("zero cooldown should allow back-to-back start, got %s", got.Format("2006-01-02"))
	}
}

func TestFindNextAvailableDateTerminates(t *testing.T) {
	// A wall of back-to-back sales past the iteration cap worth of days.
	var existing []GeneratedSale
	for i := 0; i < 500; i++ {
		d := addDays(date(2025, 1, 1), i)
		existing = append(existing, sale(d, d))
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		findNextAvailableDate(date(2024, 12, 31), existing, 0, date(2030, 12, 31), 1)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("finder did not terminate")
	}
}
