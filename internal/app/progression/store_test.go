package progression

import (
	"errors"
	"testing"
	"time"

	"github.com/ecoquest-app/ecoquest/internal/domain"
	"github.com/ecoquest-app/ecoquest/internal/infra/catalog"
)

// memSaver is an in-memory Saver for store tests.
type memSaver struct {
	saved   *domain.GameState
	saves   int
	failing bool
}

func (m *memSaver) SaveState(state domain.GameState) error {
	if m.failing {
		return errors.New("disk full")
	}
	m.saved = &state
	m.saves++
	return nil
}

func (m *memSaver) LoadState() (*domain.GameState, error) {
	return m.saved, nil
}

func (m *memSaver) ClearState() error {
	m.saved = nil
	return nil
}

var day0 = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC) // a Monday

func testStore(t *testing.T) (*Store, *memSaver) {
	t.Helper()
	saver := &memSaver{}
	store := NewStore(saver)
	if err := store.InitializeAt(day0); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	return store, saver
}

func addQuest(store *Store, id string, questType domain.QuestType, xp int) {
	store.AddQuest(domain.Quest{
		ID:       id,
		Title:    "quest " + id,
		Type:     questType,
		XPReward: xp,
		Status:   domain.QuestAvailable,
	})
}

func TestInitialize_FreshState(t *testing.T) {
	store, saver := testStore(t)

	state := store.State()
	if state.Player.ID == "" {
		t.Error("fresh player has no id")
	}
	if state.Player.Level != 1 || state.Player.TotalXP != 0 {
		t.Errorf("fresh player level/xp = %d/%d, want 1/0", state.Player.Level, state.Player.TotalXP)
	}
	if got, want := len(state.Achievements), len(catalog.Achievements()); got != want {
		t.Errorf("fresh state has %d achievements, want full catalog of %d", got, want)
	}
	for _, a := range state.Achievements {
		if a.Unlocked {
			t.Errorf("achievement %s starts unlocked", a.ID)
		}
	}
	if state.Player.WeeklyTarget.ChallengesPerWeek != 3 {
		t.Errorf("weekly target = %d, want default 3", state.Player.WeeklyTarget.ChallengesPerWeek)
	}
	if saver.saved == nil {
		t.Error("fresh state was not persisted")
	}
}

func TestInitialize_LoadsSavedState(t *testing.T) {
	store, saver := testStore(t)
	addQuest(store, "q1", domain.QuestWaste, 950)
	store.CompleteQuestAt("q1", day0)
	wantID := store.Player().ID

	reloaded := NewStore(saver)
	if err := reloaded.InitializeAt(day0.AddDate(0, 0, 1)); err != nil {
		t.Fatalf("initialize from snapshot: %v", err)
	}
	player := reloaded.Player()
	if player.ID != wantID {
		t.Errorf("reloaded player id = %s, want %s", player.ID, wantID)
	}
	if player.TotalXP != 950 {
		t.Errorf("reloaded XP = %d, want 950", player.TotalXP)
	}
}

func TestInitialize_MergesNewBadges(t *testing.T) {
	_, saver := testStore(t)

	// Simulate an older snapshot missing most of the current catalog.
	saver.saved.Achievements = saver.saved.Achievements[:2]

	store := NewStore(saver)
	if err := store.InitializeAt(day0); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	if got, want := len(store.State().Achievements), len(catalog.Achievements()); got != want {
		t.Errorf("merged catalog has %d achievements, want %d", got, want)
	}
}

func TestCompleteQuest_CreditsXPAndLevels(t *testing.T) {
	store, _ := testStore(t)
	addQuest(store, "q1", domain.QuestWaste, 950)
	addQuest(store, "q2", domain.QuestWater, 100)

	store.CompleteQuestAt("q1", day0)
	player := store.Player()
	if player.TotalXP != 950 || player.Level != 1 {
		t.Errorf("after q1: xp/level = %d/%d, want 950/1", player.TotalXP, player.Level)
	}

	store.CompleteQuestAt("q2", day0)
	player = store.Player()
	if player.TotalXP != 1050 || player.Level != 2 {
		t.Errorf("after q2: xp/level = %d/%d, want 1050/2", player.TotalXP, player.Level)
	}
	if got := store.Progress(); got != 0.05 {
		t.Errorf("progress = %v, want 0.05", got)
	}
	if player.Stats.ChallengesCompleted != 2 {
		t.Errorf("challengesCompleted = %d, want 2", player.Stats.ChallengesCompleted)
	}
	if player.Stats.CO2Saved != 5.0 {
		t.Errorf("co2Saved = %v, want 5.0", player.Stats.CO2Saved)
	}
}

func TestCompleteQuest_Idempotent(t *testing.T) {
	store, _ := testStore(t)
	addQuest(store, "q1", domain.QuestWaste, 100)

	if !store.CompleteQuestAt("q1", day0) {
		t.Fatal("first completion reported false")
	}
	if store.CompleteQuestAt("q1", day0) {
		t.Error("second completion reported true")
	}
	player := store.Player()
	if player.TotalXP != 100 {
		t.Errorf("double-completion xp = %d, want 100", player.TotalXP)
	}
	if player.Stats.ChallengesCompleted != 1 {
		t.Errorf("challengesCompleted = %d, want 1", player.Stats.ChallengesCompleted)
	}
}

func TestCompleteQuest_UnknownID(t *testing.T) {
	store, _ := testStore(t)
	if store.CompleteQuestAt("no-such-quest", day0) {
		t.Error("unknown quest id reported completed")
	}
	if xp := store.Player().TotalXP; xp != 0 {
		t.Errorf("xp = %d, want 0", xp)
	}
}

func TestCompleteQuest_AdvancesWeeklyTarget(t *testing.T) {
	store, _ := testStore(t)
	addQuest(store, "q1", domain.QuestWaste, 50)
	addQuest(store, "q2", domain.QuestWaste, 50)

	store.CompleteQuestAt("q1", day0)
	if got := store.Player().WeeklyTarget.CurrentWeekProgress; got != 1 {
		t.Errorf("week progress = %d, want 1", got)
	}

	// Next completion lands past the 7-day window: fresh window, progress 1.
	later := day0.AddDate(0, 0, 9)
	store.CompleteQuestAt("q2", later)
	target := store.Player().WeeklyTarget
	if target.CurrentWeekProgress != 1 {
		t.Errorf("week progress after lapse = %d, want 1", target.CurrentWeekProgress)
	}
	if !target.WeekStartDate.Equal(startOfDay(later)) {
		t.Errorf("week start = %v, want %v", target.WeekStartDate, startOfDay(later))
	}
}

func TestCompleteQuest_UnlocksCategoryBadge(t *testing.T) {
	store, _ := testStore(t)
	for i := 0; i < 5; i++ {
		id := "w" + string(rune('0'+i))
		addQuest(store, id, domain.QuestWaste, 50)
		store.CompleteQuestAt(id, day0)
	}

	unlocked := store.UnlockedAchievements()
	found := false
	for _, a := range unlocked {
		if a.ID == "waste-warrior-1" {
			found = true
		}
	}
	if !found {
		t.Fatal("waste-warrior-1 not unlocked after 5 waste quests")
	}
	if got := store.Player().Stats.BadgesEarned; got != len(unlocked) {
		t.Errorf("badgesEarned = %d, want %d", got, len(unlocked))
	}
}

func TestAchievementXP_NotCredited(t *testing.T) {
	store, _ := testStore(t)
	for i := 0; i < 5; i++ {
		id := "w" + string(rune('0'+i))
		addQuest(store, id, domain.QuestWaste, 50)
		store.CompleteQuestAt(id, day0)
	}

	// 5 quests x 50 XP; the unlocked badge's own reward stays out of the total.
	if xp := store.Player().TotalXP; xp != 250 {
		t.Errorf("xp = %d, want 250", xp)
	}
}

func TestAddQuizSession_CreditsXP(t *testing.T) {
	store, _ := testStore(t)
	questions := []domain.QuizQuestion{
		{ID: "a", CorrectAnswer: 0},
		{ID: "b", CorrectAnswer: 1},
		{ID: "c", CorrectAnswer: 2},
	}

	session := NewQuizSession(questions, []int{0, 1, 0}, day0)
	if session.Score != 2 || session.XPEarned != 40 {
		t.Fatalf("session score/xp = %d/%d, want 2/40", session.Score, session.XPEarned)
	}

	store.AddQuizSessionAt(session, day0)
	player := store.Player()
	if player.TotalXP != 40 {
		t.Errorf("xp = %d, want 40", player.TotalXP)
	}
	if player.Stats.QuizzesCompleted != 1 {
		t.Errorf("quizzesCompleted = %d, want 1", player.Stats.QuizzesCompleted)
	}
}

func TestAddMiniGameScore_CreditsProportionalXP(t *testing.T) {
	store, _ := testStore(t)
	game := domain.MiniGame{ID: "waste-sorting", Title: "Waste Sorting", MaxScore: 1000, XPReward: 50}

	score := NewGameScore(game, 500, day0)
	if score.XPEarned != 25 {
		t.Fatalf("xp for half max score = %d, want 25", score.XPEarned)
	}

	store.AddMiniGameScoreAt(score, day0)
	player := store.Player()
	if player.TotalXP != 25 {
		t.Errorf("xp = %d, want 25", player.TotalXP)
	}
	if player.Stats.MiniGamesPlayed != 1 {
		t.Errorf("miniGamesPlayed = %d, want 1", player.Stats.MiniGamesPlayed)
	}
}

func TestUpdateStreak_ConsecutiveDays(t *testing.T) {
	store, _ := testStore(t)

	store.UpdateStreakAt(day0.AddDate(0, 0, 1))
	store.UpdateStreakAt(day0.AddDate(0, 0, 2))
	store.UpdateStreakAt(day0.AddDate(0, 0, 2).Add(4 * time.Hour)) // same day again

	player := store.Player()
	if player.CurrentStreak != 2 {
		t.Errorf("streak = %d, want 2", player.CurrentStreak)
	}
	if player.LongestStreak != 2 {
		t.Errorf("longest = %d, want 2", player.LongestStreak)
	}
}

func TestUpdateStreak_UnlocksStreakBadge(t *testing.T) {
	store, _ := testStore(t)
	for i := 1; i <= 7; i++ {
		store.UpdateStreakAt(day0.AddDate(0, 0, i))
	}

	found := false
	for _, a := range store.UnlockedAchievements() {
		if a.ID == "consistent-learner" {
			found = true
		}
	}
	if !found {
		t.Error("consistent-learner not unlocked after 7-day streak")
	}
}

func TestUpdateQuest_StatusTransitions(t *testing.T) {
	store, _ := testStore(t)
	addQuest(store, "q1", domain.QuestWaste, 50)

	inProgress := domain.QuestInProgress
	store.UpdateQuest("q1", domain.QuestUpdate{Status: &inProgress})
	if got := store.State().Quests[0].Status; got != domain.QuestInProgress {
		t.Errorf("status = %s, want in-progress", got)
	}

	// Completion never happens through UpdateQuest.
	completed := domain.QuestCompleted
	store.UpdateQuest("q1", domain.QuestUpdate{Status: &completed})
	if got := store.State().Quests[0].Status; got != domain.QuestInProgress {
		t.Errorf("status = %s, want in-progress after rejected completion", got)
	}
	if xp := store.Player().TotalXP; xp != 0 {
		t.Errorf("xp = %d, want 0", xp)
	}

	// Completed quests are frozen.
	store.CompleteQuestAt("q1", day0)
	available := domain.QuestAvailable
	store.UpdateQuest("q1", domain.QuestUpdate{Status: &available})
	if got := store.State().Quests[0].Status; got != domain.QuestCompleted {
		t.Errorf("status = %s, want completed to stay terminal", got)
	}
}

func TestUpdatePlayer_ShallowMerge(t *testing.T) {
	store, _ := testStore(t)
	name := "Asha"
	done := true
	store.UpdatePlayerAt(domain.PlayerUpdate{Name: &name, IsOnboardingComplete: &done}, day0)

	player := store.Player()
	if player.Name != "Asha" {
		t.Errorf("name = %q, want Asha", player.Name)
	}
	if !player.IsOnboardingComplete {
		t.Error("onboarding flag not set")
	}
	// Untouched fields survive the merge.
	if player.WeeklyTarget.ChallengesPerWeek != 3 {
		t.Errorf("weekly target = %d, want unchanged 3", player.WeeklyTarget.ChallengesPerWeek)
	}
}

func TestResetGame_FreshIdentity(t *testing.T) {
	store, _ := testStore(t)
	addQuest(store, "q1", domain.QuestWaste, 500)
	store.CompleteQuestAt("q1", day0)
	oldID := store.Player().ID

	store.ResetGameAt(day0.AddDate(0, 0, 1))
	state := store.State()
	if state.Player.ID == oldID {
		t.Error("reset kept the old player id")
	}
	if state.Player.TotalXP != 0 || state.Player.Level != 1 {
		t.Errorf("reset xp/level = %d/%d, want 0/1", state.Player.TotalXP, state.Player.Level)
	}
	if len(state.Quests) != 0 {
		t.Errorf("reset kept %d quests", len(state.Quests))
	}
	for _, a := range state.Achievements {
		if a.Unlocked {
			t.Errorf("reset kept achievement %s unlocked", a.ID)
		}
	}
}

func TestPersist_FailureKeepsStateAuthoritative(t *testing.T) {
	store, saver := testStore(t)
	addQuest(store, "q1", domain.QuestWaste, 100)

	saver.failing = true
	store.CompleteQuestAt("q1", day0)
	if xp := store.Player().TotalXP; xp != 100 {
		t.Errorf("xp after failed save = %d, want 100", xp)
	}

	// Next successful mutation carries the earlier change along.
	saver.failing = false
	addQuest(store, "q2", domain.QuestWater, 50)
	if saver.saved == nil || saver.saved.Player.TotalXP != 100 {
		t.Error("recovered snapshot missing earlier mutation")
	}
}

func TestState_ReturnsCopy(t *testing.T) {
	store, _ := testStore(t)
	addQuest(store, "q1", domain.QuestWaste, 50)

	state := store.State()
	state.Quests[0].XPReward = 9999
	state.Player.TotalXP = 9999

	if got := store.State().Quests[0].XPReward; got != 50 {
		t.Errorf("mutating a returned copy changed the store (xp reward %d)", got)
	}
	if got := store.Player().TotalXP; got != 0 {
		t.Errorf("mutating a returned copy changed the store (total xp %d)", got)
	}
}

func TestState_CopyHasOwnPlayerSlices(t *testing.T) {
	store, _ := testStore(t)
	interests := []domain.QuestType{domain.QuestWater}
	goals := []string{"save water"}
	store.UpdatePlayerAt(domain.PlayerUpdate{
		Preferences: &domain.Preferences{
			Interests:       interests,
			ExperienceLevel: domain.ExperienceBeginner,
			AvailableTime:   domain.Time10To20,
			PrimaryGoals:    []string{"reduce_waste"},
		},
		PersonalGoals: &goals,
	}, day0)

	player := store.Player()
	player.Preferences.Interests[0] = domain.QuestTransport
	player.Preferences.PrimaryGoals[0] = "changed"
	player.PersonalGoals[0] = "changed"

	fresh := store.Player()
	if fresh.Preferences.Interests[0] != domain.QuestWater {
		t.Errorf("interests = %v, copy shares backing array with the store", fresh.Preferences.Interests)
	}
	if fresh.Preferences.PrimaryGoals[0] != "reduce_waste" {
		t.Errorf("primary goals = %v, copy shares backing array with the store", fresh.Preferences.PrimaryGoals)
	}
	if fresh.PersonalGoals[0] != "save water" {
		t.Errorf("personal goals = %v, copy shares backing array with the store", fresh.PersonalGoals)
	}

	state := store.State()
	state.Player.PersonalGoals[0] = "changed"
	if got := store.Player().PersonalGoals[0]; got != "save water" {
		t.Errorf("personal goals via state copy = %q, want unchanged", got)
	}
}
