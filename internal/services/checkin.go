package services

import "time"

// CheckinTransition classifies a check-in event against the previous one by
// calendar-day distance.
type CheckinTransition int

const (
	// CheckinSameDay: another event on the same local day, streak unchanged.
	CheckinSameDay CheckinTransition = iota
	// CheckinNextDay: first event of the immediately following local day,
	// streak extends.
	CheckinNextDay
	// CheckinStreakBroken: a gap of two or more days, or an event timestamped
	// before the last check-in (clock skew). Streak restarts at one.
	CheckinStreakBroken
)

// ClassifyCheckin compares the previous check-in and the current instant on
// calendar days, not elapsed seconds, so 23:50 followed by 00:05 counts as
// consecutive days.
func ClassifyCheckin(lastCheckin time.Time, now time.Time, location *time.Location) CheckinTransition {
	switch days := CalendarDaysBetween(lastCheckin, now, location); {
	case days == 0:
		return CheckinSameDay
	case days == 1:
		return CheckinNextDay
	default:
		return CheckinStreakBroken
	}
}

// NextStreak returns the consecutive-day streak after a check-in at `now`.
// The result is always at least one.
func NextStreak(currentStreak int, lastCheckin time.Time, now time.Time, location *time.Location) int {
	if currentStreak < 1 {
		currentStreak = 1
	}

	switch ClassifyCheckin(lastCheckin, now, location) {
	case CheckinSameDay:
		return currentStreak
	case CheckinNextDay:
		return currentStreak + 1
	default:
		return 1
	}
}
