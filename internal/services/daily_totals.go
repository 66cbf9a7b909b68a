package services

import (
	"time"

	"github.com/vtereshina/munch/internal/models"
)

// MacroTotals is the accumulated consumption over some window. Kilocalories
// are always recomputed from the summed macro grams, never summed from
// per-entry calorie fields, so the figure stays consistent with the macro
// arithmetic no matter what was stored.
type MacroTotals struct {
	Kilocalories int
	FatGrams     int
	CarbGrams    int
	ProteinGrams int
	WaterML      int
}

// TotalsInWindow sums water and macro grams over every entry whose creation
// instant falls in [start, end). The entry slice may arrive in any order, and
// an empty window is an ordinary all-zero result.
func TotalsInWindow(entries []models.Entry, start time.Time, end time.Time) MacroTotals {
	totals := MacroTotals{}
	for _, entry := range entries {
		if entry.CreatedAt.Before(start) || !entry.CreatedAt.Before(end) {
			continue
		}
		totals.FatGrams += entry.FatGrams
		totals.CarbGrams += entry.CarbGrams
		totals.ProteinGrams += entry.ProteinGrams
		totals.WaterML += entry.WaterML
	}
	totals.Kilocalories = CaloriesFromMacros(totals.CarbGrams, totals.FatGrams, totals.ProteinGrams)
	return totals
}

// TotalsForDay sums the calendar day containing `now` in the given location.
// This is the reporting window ("what did I eat today").
func TotalsForDay(entries []models.Entry, now time.Time, location *time.Location) MacroTotals {
	start, end := DayRange(now, location)
	return TotalsInWindow(entries, start, end)
}

// ScoringWindowBounds converts the check-in anchored scoring interval
// (lastCheckin, now] into the half-open [start, end) form TotalsInWindow and
// the entry store use. The check-in instant itself is excluded: the entry that
// triggered the previous event was created at exactly that instant and has
// already been scored. The entry triggering this event sits at `now` and must
// be included.
func ScoringWindowBounds(lastCheckin time.Time, now time.Time) (time.Time, time.Time) {
	return lastCheckin.Add(time.Nanosecond), now.Add(time.Nanosecond)
}

// TotalsSince sums the window (since, now]. The scoring flow anchors the
// window at the user's last check-in rather than local midnight.
func TotalsSince(entries []models.Entry, since time.Time, now time.Time) MacroTotals {
	start, end := ScoringWindowBounds(since, now)
	return TotalsInWindow(entries, start, end)
}
