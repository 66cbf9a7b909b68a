package services

import "time"

// Period-of-day labels for a logged meal.
const (
	PeriodBreakfast = "breakfast"
	PeriodLunch     = "lunch"
	PeriodDinner    = "dinner"
)

// Boundaries on the 24-hour clock. Dinner wraps past midnight, so the three
// intervals partition the whole day: [03,11) breakfast, [11,15) lunch,
// [15,03) dinner.
const (
	breakfastStartHour = 3
	lunchStartHour     = 11
	dinnerStartHour    = 15
)

// ClassifyMealPeriod maps a timestamp to its period-of-day label using the
// time-of-day component only.
func ClassifyMealPeriod(value time.Time) string {
	hour := value.Hour()
	switch {
	case hour >= breakfastStartHour && hour < lunchStartHour:
		return PeriodBreakfast
	case hour >= lunchStartHour && hour < dinnerStartHour:
		return PeriodLunch
	default:
		return PeriodDinner
	}
}
