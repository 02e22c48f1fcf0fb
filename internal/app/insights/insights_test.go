package insights

import (
	"testing"
	"time"

	"github.com/ecoquest-app/ecoquest/internal/domain"
)

var now = time.Date(2025, 3, 20, 15, 0, 0, 0, time.UTC)

func at(daysAgo int) time.Time {
	return now.AddDate(0, 0, -daysAgo)
}

func completedQuest(questType domain.QuestType, xp int, daysAgo int) domain.Quest {
	done := at(daysAgo)
	return domain.Quest{
		ID:          "q-" + string(questType),
		Type:        questType,
		XPReward:    xp,
		Status:      domain.QuestCompleted,
		CompletedAt: &done,
	}
}

func quizSession(category domain.QuestType, score, total, xp int, daysAgo int) domain.QuizSession {
	questions := make([]domain.QuizQuestion, total)
	for i := range questions {
		questions[i] = domain.QuizQuestion{Category: category}
	}
	return domain.QuizSession{
		Questions:   questions,
		Score:       score,
		XPEarned:    xp,
		CompletedAt: at(daysAgo),
	}
}

func TestActivityData_BucketsByDay(t *testing.T) {
	state := domain.GameState{
		Quests: []domain.Quest{
			completedQuest(domain.QuestWaste, 100, 2),
		},
		QuizSessions: []domain.QuizSession{
			quizSession(domain.QuestWater, 3, 5, 60, 2),
		},
		MiniGameScores: []domain.MiniGameScore{
			{XPEarned: 25, PlayedAt: at(1)},
		},
	}

	activity := ActivityData(state, now, 7)
	if len(activity) != 8 {
		t.Fatalf("series length = %d, want 8 (window inclusive of both ends)", len(activity))
	}

	byDate := map[string]ActivityDay{}
	for _, day := range activity {
		byDate[day.Date] = day
	}

	twoAgo := byDate[at(2).Format("2006-01-02")]
	if twoAgo.Challenges != 1 || twoAgo.Quizzes != 1 || twoAgo.XPEarned != 160 {
		t.Errorf("two days ago = %+v, want 1 challenge, 1 quiz, 160 XP", twoAgo)
	}
	oneAgo := byDate[at(1).Format("2006-01-02")]
	if oneAgo.Games != 1 || oneAgo.XPEarned != 25 {
		t.Errorf("one day ago = %+v, want 1 game, 25 XP", oneAgo)
	}
}

func TestActivityData_DropsOutsideWindow(t *testing.T) {
	state := domain.GameState{
		Quests: []domain.Quest{
			completedQuest(domain.QuestWaste, 100, 40),
		},
	}
	for _, day := range ActivityData(state, now, 7) {
		if day.Challenges != 0 || day.XPEarned != 0 {
			t.Errorf("activity from outside the window leaked into %s", day.Date)
		}
	}
}

func TestCategoryBreakdown(t *testing.T) {
	state := domain.GameState{
		Quests: []domain.Quest{
			completedQuest(domain.QuestWaste, 100, 1),
			{ID: "open", Type: domain.QuestWaste, XPReward: 50, Status: domain.QuestAvailable},
		},
		QuizSessions: []domain.QuizSession{
			quizSession(domain.QuestWaste, 4, 5, 80, 1),
		},
	}

	stats := CategoryBreakdown(state)
	if len(stats) != 5 {
		t.Fatalf("got %d categories, want 5", len(stats))
	}

	waste := stats[0]
	if waste.Category != "Waste" {
		t.Errorf("first category = %s, want Waste", waste.Category)
	}
	if waste.Completed != 2 {
		t.Errorf("waste completed = %d, want 2 (quest + quiz, open quest excluded)", waste.Completed)
	}
	if waste.TotalXP != 180 {
		t.Errorf("waste XP = %d, want 180", waste.TotalXP)
	}
	if waste.AverageScore != 80 {
		t.Errorf("waste average score = %d, want 80", waste.AverageScore)
	}
}

func TestProgress_FavoriteAndImprovements(t *testing.T) {
	state := domain.GameState{
		Player: domain.PlayerProfile{TotalXP: 300, CurrentStreak: 1},
		QuizSessions: []domain.QuizSession{
			quizSession(domain.QuestWater, 5, 5, 100, 1),
			quizSession(domain.QuestWater, 4, 5, 80, 2),
		},
	}

	activity := ActivityData(state, now, 30)
	progress := Progress(state, activity)

	if progress.FavoriteActivity != "quizzes" {
		t.Errorf("favorite = %s, want quizzes", progress.FavoriteActivity)
	}
	if progress.TotalActivities != 2 {
		t.Errorf("totalActivities = %d, want 2", progress.TotalActivities)
	}
	if progress.AverageXPPerDay != 150 {
		t.Errorf("averageXPPerDay = %d, want 150 (300 XP over 2 active days)", progress.AverageXPPerDay)
	}

	// Short streak, empty categories, few quizzes, no games: all flagged.
	if len(progress.ImprovementAreas) != 4 {
		t.Errorf("improvement areas = %v, want 4 entries", progress.ImprovementAreas)
	}
}

func TestProgress_RecentAchievementsNewestFirst(t *testing.T) {
	older := at(5)
	newer := at(1)
	mid := at(3)
	state := domain.GameState{
		Achievements: []domain.Achievement{
			{ID: "a", Unlocked: true, UnlockedAt: &older},
			{ID: "b", Unlocked: true, UnlockedAt: &newer},
			{ID: "c", Unlocked: true, UnlockedAt: &mid},
			{ID: "locked"},
		},
	}

	progress := Progress(state, nil)
	if progress.Achievements.Total != 3 {
		t.Errorf("total unlocked = %d, want 3", progress.Achievements.Total)
	}
	got := progress.Achievements.Recent
	if len(got) != 3 || got[0].ID != "b" || got[1].ID != "c" || got[2].ID != "a" {
		t.Errorf("recent order = %v, want [b c a]", ids(got))
	}
}

func ids(achievements []domain.Achievement) []string {
	out := make([]string, len(achievements))
	for i, a := range achievements {
		out[i] = a.ID
	}
	return out
}

func TestWeekOverWeek(t *testing.T) {
	state := domain.GameState{
		Quests: []domain.Quest{
			completedQuest(domain.QuestWaste, 100, 2),  // this week
			completedQuest(domain.QuestWater, 200, 10), // last week
		},
	}
	activity := ActivityData(state, now, 30)

	weekly := WeekOverWeek(activity, now)
	if weekly.ThisWeek != 100 {
		t.Errorf("thisWeek = %d, want 100", weekly.ThisWeek)
	}
	if weekly.LastWeek != 200 {
		t.Errorf("lastWeek = %d, want 200", weekly.LastWeek)
	}
	if weekly.Change != -50 {
		t.Errorf("change = %d%%, want -50%%", weekly.Change)
	}
}

func TestWeekOverWeek_NoBaseline(t *testing.T) {
	weekly := WeekOverWeek(nil, now)
	if weekly.Change != 0 {
		t.Errorf("change with no history = %d, want 0", weekly.Change)
	}
}

func TestBuildReport(t *testing.T) {
	state := domain.GameState{
		Player: domain.PlayerProfile{CurrentStreak: 2, LongestStreak: 4},
		Quests: []domain.Quest{completedQuest(domain.QuestEnergy, 75, 1)},
	}

	report := BuildReport(state, now, 7)
	if len(report.Activity) != 8 {
		t.Errorf("activity length = %d, want 8", len(report.Activity))
	}
	if report.Streak.CurrentStreak != 2 || report.Streak.LongestStreak != 4 {
		t.Errorf("streak = %+v, want 2/4", report.Streak)
	}
	active := 0
	for _, day := range report.Streak.History {
		if day.Active {
			active++
		}
	}
	if active != 1 {
		t.Errorf("active days = %d, want 1", active)
	}
}
