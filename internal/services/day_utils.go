package services

import (
	"math"
	"time"
)

// DateAtLocation truncates an instant to midnight of its calendar day in the
// given location. A nil location means UTC.
func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

// DayRange returns the half-open [start, end) window of the calendar day the
// instant falls in.
func DayRange(value time.Time, location *time.Location) (time.Time, time.Time) {
	start := DateAtLocation(value, location)
	return start, start.AddDate(0, 0, 1)
}

// CalendarDaysBetween counts whole calendar days from the day containing
// `from` to the day containing `to`, in the given location. The count is
// negative when `to` falls on an earlier day, and zero within one day, so a
// 23:50 to 00:05 pair across midnight yields 1 regardless of elapsed time.
func CalendarDaysBetween(from time.Time, to time.Time, location *time.Location) int {
	fromDay := DateAtLocation(from, location)
	toDay := DateAtLocation(to, location)
	// Rounding keeps DST-shortened or -lengthened days counting as one day.
	return int(math.Round(toDay.Sub(fromDay).Hours() / 24))
}
