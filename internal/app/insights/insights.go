// Package insights derives read-only analytics from a GameState
// snapshot: daily activity series, per-category stats, streak history,
// and summary insights. Everything here is a pure function of the
// snapshot and a reference time.
package insights

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/ecoquest-app/ecoquest/internal/domain"
)

// ActivityDay is one day of the activity series.
type ActivityDay struct {
	Date       string `json:"date"` // YYYY-MM-DD, UTC
	Challenges int    `json:"challenges"`
	Quizzes    int    `json:"quizzes"`
	Games      int    `json:"games"`
	XPEarned   int    `json:"xpEarned"`
}

// CategoryStats aggregates completions and XP for one eco category.
// AverageScore is the mean quiz percentage, rounded.
type CategoryStats struct {
	Category     string `json:"category"`
	Completed    int    `json:"completed"`
	TotalXP      int    `json:"totalXP"`
	AverageScore int    `json:"averageScore"`
}

// StreakDay marks whether any activity happened on a date.
type StreakDay struct {
	Date   string `json:"date"`
	Active bool   `json:"active"`
}

// StreakData pairs the live streak counters with the day-by-day
// activity history.
type StreakData struct {
	CurrentStreak int         `json:"currentStreak"`
	LongestStreak int         `json:"longestStreak"`
	History       []StreakDay `json:"streakHistory"`
}

// RecentAchievements summarizes earned badges, newest first.
type RecentAchievements struct {
	Total  int                  `json:"total"`
	Recent []domain.Achievement `json:"recent"`
}

// ProgressInsights is the summary block shown on the analytics view.
type ProgressInsights struct {
	TotalActivities    int                `json:"totalActivities"`
	TotalXPEarned      int                `json:"totalXPEarned"`
	AverageXPPerDay    int                `json:"averageXPPerDay"`
	MostActiveCategory string             `json:"mostActiveCategory"`
	FavoriteActivity   string             `json:"favoriteActivity"` // "challenges", "quizzes", "games"
	ImprovementAreas   []string           `json:"improvementAreas"`
	Achievements       RecentAchievements `json:"achievements"`
}

// WeeklyComparison contrasts the XP earned in the trailing 7 days with
// the 7 days before that. Change is a rounded percentage, zero when
// last week had no XP.
type WeeklyComparison struct {
	ThisWeek int `json:"thisWeek"`
	LastWeek int `json:"lastWeek"`
	Change   int `json:"change"`
}

// dayKey formats a timestamp as its UTC calendar day.
func dayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// ActivityData builds the daily activity series for the `days` days
// ending at now, inclusive. Activity outside the window is dropped.
func ActivityData(state domain.GameState, now time.Time, days int) []ActivityDay {
	if days <= 0 {
		days = 30
	}

	byDay := make(map[string]*ActivityDay, days+1)
	var series []*ActivityDay
	start := now.UTC().AddDate(0, 0, -days)
	for d := start; !d.After(now.UTC()); d = d.AddDate(0, 0, 1) {
		day := &ActivityDay{Date: dayKey(d)}
		byDay[day.Date] = day
		series = append(series, day)
	}

	for _, q := range state.Quests {
		if !q.IsCompleted() || q.CompletedAt == nil {
			continue
		}
		if day, ok := byDay[dayKey(*q.CompletedAt)]; ok {
			day.Challenges++
			day.XPEarned += q.XPReward
		}
	}
	for _, s := range state.QuizSessions {
		if day, ok := byDay[dayKey(s.CompletedAt)]; ok {
			day.Quizzes++
			day.XPEarned += s.XPEarned
		}
	}
	for _, g := range state.MiniGameScores {
		if day, ok := byDay[dayKey(g.PlayedAt)]; ok {
			day.Games++
			day.XPEarned += g.XPEarned
		}
	}

	out := make([]ActivityDay, len(series))
	for i, day := range series {
		out[i] = *day
	}
	return out
}

// CategoryBreakdown aggregates completed quests and quiz sessions per
// eco category. A session counts toward a category when any of its
// questions belongs to it.
func CategoryBreakdown(state domain.GameState) []CategoryStats {
	out := make([]CategoryStats, 0, len(domain.QuestTypes()))
	for _, category := range domain.QuestTypes() {
		stats := CategoryStats{Category: titleCase(string(category))}

		for _, q := range state.Quests {
			if q.Type == category && q.IsCompleted() {
				stats.Completed++
				stats.TotalXP += q.XPReward
			}
		}

		var scoreSum float64
		var scored int
		for _, s := range state.QuizSessions {
			if !sessionTouches(s, category) {
				continue
			}
			stats.Completed++
			stats.TotalXP += s.XPEarned
			if len(s.Questions) > 0 {
				scoreSum += float64(s.Score) / float64(len(s.Questions)) * 100
				scored++
			}
		}
		if scored > 0 {
			stats.AverageScore = int(math.Round(scoreSum / float64(scored)))
		}

		out = append(out, stats)
	}
	return out
}

func sessionTouches(s domain.QuizSession, category domain.QuestType) bool {
	for _, q := range s.Questions {
		if q.Category == category {
			return true
		}
	}
	return false
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// StreakHistory annotates the activity series with active/inactive
// flags alongside the live streak counters.
func StreakHistory(state domain.GameState, activity []ActivityDay) StreakData {
	history := make([]StreakDay, len(activity))
	for i, day := range activity {
		history[i] = StreakDay{
			Date:   day.Date,
			Active: day.Challenges > 0 || day.Quizzes > 0 || day.Games > 0,
		}
	}
	return StreakData{
		CurrentStreak: state.Player.CurrentStreak,
		LongestStreak: state.Player.LongestStreak,
		History:       history,
	}
}

// Progress computes the summary insights block from the snapshot and a
// prebuilt activity series.
func Progress(state domain.GameState, activity []ActivityDay) ProgressInsights {
	completed := state.CompletedQuests()
	totalActivities := len(completed) + len(state.QuizSessions) + len(state.MiniGameScores)

	activeDays := 0
	for _, day := range activity {
		if day.XPEarned > 0 {
			activeDays++
		}
	}
	avgXP := 0
	if activeDays > 0 {
		avgXP = int(math.Round(float64(state.Player.TotalXP) / float64(activeDays)))
	}

	categories := CategoryBreakdown(state)
	mostActive := categories[0]
	for _, c := range categories[1:] {
		if c.Completed > mostActive.Completed {
			mostActive = c
		}
	}

	favorite := "challenges"
	if len(state.QuizSessions) > len(completed) && len(state.QuizSessions) > len(state.MiniGameScores) {
		favorite = "quizzes"
	} else if len(state.MiniGameScores) > len(completed) && len(state.MiniGameScores) > len(state.QuizSessions) {
		favorite = "games"
	}

	areas := []string{}
	if state.Player.CurrentStreak < 3 {
		areas = append(areas, "Build a longer daily streak")
	}
	for _, c := range categories {
		if c.Completed == 0 {
			areas = append(areas, "Try activities in all categories")
			break
		}
	}
	if len(state.QuizSessions) < 5 {
		areas = append(areas, "Take more quizzes to test knowledge")
	}
	if len(state.MiniGameScores) < 3 {
		areas = append(areas, "Play more mini-games for fun learning")
	}

	unlocked := state.UnlockedAchievements()
	recent := make([]domain.Achievement, 0, len(unlocked))
	for _, a := range unlocked {
		if a.UnlockedAt != nil {
			recent = append(recent, a)
		}
	}
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].UnlockedAt.After(*recent[j].UnlockedAt)
	})
	if len(recent) > 3 {
		recent = recent[:3]
	}

	return ProgressInsights{
		TotalActivities:    totalActivities,
		TotalXPEarned:      state.Player.TotalXP,
		AverageXPPerDay:    avgXP,
		MostActiveCategory: mostActive.Category,
		FavoriteActivity:   favorite,
		ImprovementAreas:   areas,
		Achievements: RecentAchievements{
			Total:  len(unlocked),
			Recent: recent,
		},
	}
}

// WeekOverWeek sums XP for the trailing 7 days versus the 7 days
// before, using the activity series dates.
func WeekOverWeek(activity []ActivityDay, now time.Time) WeeklyComparison {
	thisWeekStart := dayKey(now.AddDate(0, 0, -7))
	lastWeekStart := dayKey(now.AddDate(0, 0, -14))

	var thisWeek, lastWeek int
	for _, day := range activity {
		switch {
		case day.Date >= thisWeekStart:
			thisWeek += day.XPEarned
		case day.Date >= lastWeekStart:
			lastWeek += day.XPEarned
		}
	}

	change := 0
	if lastWeek > 0 {
		change = int(math.Round(float64(thisWeek-lastWeek) / float64(lastWeek) * 100))
	}
	return WeeklyComparison{ThisWeek: thisWeek, LastWeek: lastWeek, Change: change}
}

// Report bundles every insight view for one snapshot. This is what the
// analytics endpoint and the export command serve.
type Report struct {
	Activity   []ActivityDay    `json:"activity"`
	Categories []CategoryStats  `json:"categories"`
	Streak     StreakData       `json:"streak"`
	Progress   ProgressInsights `json:"progress"`
	Weekly     WeeklyComparison `json:"weekly"`
}

// BuildReport assembles the full analytics report over a `days`-day
// activity window ending at now.
func BuildReport(state domain.GameState, now time.Time, days int) Report {
	activity := ActivityData(state, now, days)
	return Report{
		Activity:   activity,
		Categories: CategoryBreakdown(state),
		Streak:     StreakHistory(state, activity),
		Progress:   Progress(state, activity),
		Weekly:     WeekOverWeek(activity, now),
	}
}
