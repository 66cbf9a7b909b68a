package services

import (
	"math"

	"github.com/vtereshina/munch/internal/models"
)

// FallbackScoreDelta is awarded as-is for a logging event whose aggregate
// could not be computed (storage unavailable): a fixed value, exempt from the
// streak multiplier. The event still counts as a check-in; the failure is
// reported, not swallowed.
const FallbackScoreDelta = 50

// DimensionPoints scores one goal dimension from consumed vs. target.
// Progress toward the goal earns round(ratio*100) points, capped at 100 for
// exactly meeting it; overshooting flips the sign, so larger excess is
// penalized harder. A zero (unset) target contributes nothing and is not an
// error.
func DimensionPoints(consumed int, goal int) int {
	if goal <= 0 || consumed <= 0 {
		return 0
	}
	ratio := float64(consumed) / float64(goal)
	points := int(math.Round(ratio * 100))
	if ratio > 1 {
		return -points
	}
	return points
}

// ScoreDelta sums the per-dimension contributions for water, protein, fat and
// carbs against the user's goals.
func ScoreDelta(totals MacroTotals, goals models.Goals) int {
	return DimensionPoints(totals.WaterML, goals.WaterML) +
		DimensionPoints(totals.ProteinGrams, goals.ProteinGrams) +
		DimensionPoints(totals.FatGrams, goals.FatGrams) +
		DimensionPoints(totals.CarbGrams, goals.CarbGrams)
}

// ScaleDeltaByStreak applies the streak bonus policy: the raw delta is
// multiplied by the current consecutive-day streak, rewarding sustained
// engagement. Streaks below one scale by one.
func ScaleDeltaByStreak(delta int, streak int) int {
	if streak < 1 {
		streak = 1
	}
	return delta * streak
}
