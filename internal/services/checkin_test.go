package services

import (
	"testing"
	"time"
)

func TestClassifyCheckin(t *testing.T) {
	tests := []struct {
		name string
		last string
		now  string
		want CheckinTransition
	}{
		{"same morning", "2025-04-07 08:00", "2025-04-07 09:30", CheckinSameDay},
		{"same day far apart", "2025-04-07 00:10", "2025-04-07 23:55", CheckinSameDay},
		{"next day across midnight", "2025-04-07 23:50", "2025-04-08 00:05", CheckinNextDay},
		{"next day full gap", "2025-04-07 09:00", "2025-04-08 21:00", CheckinNextDay},
		{"two days later", "2025-04-07 09:00", "2025-04-09 09:00", CheckinStreakBroken},
		{"a week later", "2025-04-07 09:00", "2025-04-14 09:00", CheckinStreakBroken},
		{"clock skew", "2025-04-08 09:00", "2025-04-07 09:00", CheckinStreakBroken},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := ClassifyCheckin(mustParseStamp(test.last), mustParseStamp(test.now), time.UTC)
			if got != test.want {
				t.Fatalf("ClassifyCheckin(%s, %s) = %d, want %d", test.last, test.now, got, test.want)
			}
		})
	}
}

func TestNextStreak(t *testing.T) {
	tests := []struct {
		name    string
		current int
		last    string
		now     string
		want    int
	}{
		{"same day keeps streak", 4, "2025-04-07 08:00", "2025-04-07 20:00", 4},
		{"consecutive day increments", 4, "2025-04-07 23:50", "2025-04-08 00:05", 5},
		{"gap resets to one", 9, "2025-04-07 09:00", "2025-04-10 09:00", 1},
		{"clock skew resets to one", 9, "2025-04-08 09:00", "2025-04-07 09:00", 1},
		{"corrupt zero streak treated as one", 0, "2025-04-07 08:00", "2025-04-07 20:00", 1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := NextStreak(test.current, mustParseStamp(test.last), mustParseStamp(test.now), time.UTC)
			if got != test.want {
				t.Fatalf("NextStreak(%d, %s, %s) = %d, want %d", test.current, test.last, test.now, got, test.want)
			}
		})
	}
}

func TestCalendarDaysBetweenUsesCalendarDaysNotElapsedTime(t *testing.T) {
	last := mustParseStamp("2025-04-07 23:59")
	now := mustParseStamp("2025-04-08 00:01")

	if got := CalendarDaysBetween(last, now, time.UTC); got != 1 {
		t.Fatalf("two minutes across midnight: got %d days, want 1", got)
	}

	sameDayStart := mustParseStamp("2025-04-07 00:01")
	sameDayEnd := mustParseStamp("2025-04-07 23:59")
	if got := CalendarDaysBetween(sameDayStart, sameDayEnd, time.UTC); got != 0 {
		t.Fatalf("almost 24h within one day: got %d days, want 0", got)
	}
}

func TestCalendarDaysBetweenRespectsLocation(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	// 03:00 and 23:00 UTC on April 8 are 23:00 April 7 and 19:00 April 8 in
	// New York: one calendar day apart there, none in UTC.
	last := mustParseStamp("2025-04-08 03:00")
	now := mustParseStamp("2025-04-08 23:00")

	if got := CalendarDaysBetween(last, now, time.UTC); got != 0 {
		t.Fatalf("UTC days = %d, want 0", got)
	}
	if got := CalendarDaysBetween(last, now, newYork); got != 1 {
		t.Fatalf("New York days = %d, want 1", got)
	}
}
