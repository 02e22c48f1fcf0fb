package progression

import (
	"time"

	"github.com/ecoquest-app/ecoquest/internal/domain"
)

// startOfDay truncates t to its UTC calendar day.
func startOfDay(t time.Time) time.Time {
	return t.UTC().Truncate(24 * time.Hour)
}

// daysBetween returns the whole-calendar-day difference from a to b.
func daysBetween(a, b time.Time) int {
	return int(startOfDay(b).Sub(startOfDay(a)) / (24 * time.Hour))
}

// applyStreak advances the streak based on the gap between the last
// recorded activity and now.
// Same day: no change (idempotent). Exactly one day later: extend.
// Gap of 2+ days: reset to 1. LongestStreak never decreases.
func applyStreak(p *domain.PlayerProfile, now time.Time) {
	switch gap := daysBetween(p.LastActiveAt, now); {
	case gap <= 0:
		// Same day (or clock skew) — already counted
	case gap == 1:
		p.CurrentStreak++
	default:
		p.CurrentStreak = 1
	}

	if p.CurrentStreak > p.LongestStreak {
		p.LongestStreak = p.CurrentStreak
	}
	p.LastActiveAt = now
}

// inWeekWindow reports whether now falls inside the 7-day window
// anchored at start.
func inWeekWindow(start, now time.Time) bool {
	end := start.AddDate(0, 0, 7)
	return !now.Before(start) && now.Before(end)
}

// advanceWeeklyTarget counts one completed challenge against the weekly
// target. Outside the current window the window restarts at now with
// progress 1.
func advanceWeeklyTarget(t *domain.WeeklyTarget, now time.Time) {
	if inWeekWindow(t.WeekStartDate, now) {
		t.CurrentWeekProgress++
		return
	}
	t.WeekStartDate = startOfDay(now)
	t.CurrentWeekProgress = 1
}

// startOfWeek returns the most recent Sunday 00:00 UTC at or before t.
// Fresh profiles anchor their weekly target here.
func startOfWeek(t time.Time) time.Time {
	day := startOfDay(t)
	return day.AddDate(0, 0, -int(day.Weekday()))
}
