package services

import (
	"errors"
	"log"
	"time"

	"github.com/vtereshina/munch/internal/models"
)

// ErrCheckinConflict reports that another logging event updated the user
// record between our read and our write. The caller retries the whole event
// with fresh state.
var ErrCheckinConflict = errors.New("concurrent check-in update conflict")

// TrackerEntryReader supplies a user's entry log for a time window.
type TrackerEntryReader interface {
	ListByUserWindow(userID string, start time.Time, end time.Time) ([]models.Entry, error)
}

// TrackerCheckinWriter persists the outcome of a check-in as one conditional
// read-modify-write: last check-in, streak and score change together or not at
// all. A stale expectedLastCheckin must yield ErrCheckinConflict.
type TrackerCheckinWriter interface {
	ApplyCheckinUpdate(userID string, expectedLastCheckin time.Time, newLastCheckin time.Time, newStreak int, newScore int) error
}

// ScoringFallbackReporter receives aggregate-read failures that degraded a
// scoring pass to the fallback delta.
type ScoringFallbackReporter interface {
	ReportScoringFallback(userID string, err error)
}

// LogFallbackReporter routes degraded-mode scoring to the standard logger.
type LogFallbackReporter struct{}

func (LogFallbackReporter) ReportScoringFallback(userID string, err error) {
	log.Printf("scoring degraded to fallback delta for user %s: %v", userID, err)
}

// CheckinResult is what a logging event did to the user's incentive state.
type CheckinResult struct {
	Score    int
	Streak   int
	Delta    int
	Degraded bool
}

type TrackerService struct {
	entries  TrackerEntryReader
	users    TrackerCheckinWriter
	reporter ScoringFallbackReporter
}

func NewTrackerService(entries TrackerEntryReader, users TrackerCheckinWriter, reporter ScoringFallbackReporter) *TrackerService {
	if reporter == nil {
		reporter = LogFallbackReporter{}
	}
	return &TrackerService{
		entries:  entries,
		users:    users,
		reporter: reporter,
	}
}

// RecordLoggingEvent runs the check-in pipeline for one logged entry:
// aggregate consumption since the last check-in, convert it to a
// goal-adherence delta scaled by the resulting streak, advance the streak, and
// persist all three user fields atomically. The scoring window is
// (last check-in, now]: the entry at exactly the last check-in was scored by
// the previous event.
//
// An aggregate read failure degrades the delta to FallbackScoreDelta and is
// reported; the event itself still succeeds, because the entry was already
// accepted. Only a write failure or conflict propagates.
func (service *TrackerService) RecordLoggingEvent(user models.User, goals models.Goals, now time.Time) (CheckinResult, error) {
	location := user.Location()
	newStreak := NextStreak(user.Streak, user.LastCheckin, now, location)

	var delta int
	degraded := false

	start, end := ScoringWindowBounds(user.LastCheckin, now)
	entries, err := service.entries.ListByUserWindow(user.ID, start, end)
	if err != nil {
		// The fallback is a fixed consolation value; the streak
		// multiplier does not apply to it.
		degraded = true
		delta = FallbackScoreDelta
		service.reporter.ReportScoringFallback(user.ID, err)
	} else {
		totals := TotalsSince(entries, user.LastCheckin, now)
		delta = ScaleDeltaByStreak(ScoreDelta(totals, goals), newStreak)
	}

	newScore := user.Score + delta
	if newScore < 0 {
		newScore = 0
	}

	if err := service.users.ApplyCheckinUpdate(user.ID, user.LastCheckin, now, newStreak, newScore); err != nil {
		return CheckinResult{}, err
	}

	return CheckinResult{
		Score:    newScore,
		Streak:   newStreak,
		Delta:    delta,
		Degraded: degraded,
	}, nil
}

// TotalsForUserDay is the reporting window: everything the user consumed on
// the calendar day containing `now`, in the user's timezone.
func (service *TrackerService) TotalsForUserDay(user models.User, now time.Time) (MacroTotals, error) {
	start, end := DayRange(now, user.Location())
	entries, err := service.entries.ListByUserWindow(user.ID, start, end)
	if err != nil {
		return MacroTotals{}, err
	}
	return TotalsInWindow(entries, start, end), nil
}
