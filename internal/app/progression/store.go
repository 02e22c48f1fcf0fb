package progression

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ecoquest-app/ecoquest/internal/domain"
	"github.com/ecoquest-app/ecoquest/internal/infra/catalog"
	"github.com/ecoquest-app/ecoquest/internal/infra/metrics"
)

// Saver is the persistence contract the store depends on. LoadState
// returns (nil, nil) when no snapshot exists; SaveState failures are
// absorbed by the store as best-effort.
type Saver interface {
	SaveState(domain.GameState) error
	LoadState() (*domain.GameState, error)
	ClearState() error
}

// Store owns the one mutable GameState. All mutations run under the
// lock to completion, so no caller ever observes a partially-updated
// state; readers get deep copies. Construct it once at the composition
// root and pass it down — it is not a package-level global.
type Store struct {
	mu    sync.Mutex
	state domain.GameState
	saver Saver
}

// NewStore creates a store backed by the given persistence adapter.
// Call Initialize before use.
func NewStore(saver Saver) *Store {
	return &Store{saver: saver}
}

// NewGameState constructs a fresh default state: new identity, zeroed
// stats, the full achievement catalog locked, empty activity lists, and
// the weekly target anchored at the start of the current week.
func NewGameState(now time.Time) domain.GameState {
	return domain.GameState{
		Player: domain.PlayerProfile{
			ID:            uuid.NewString(),
			Level:         1,
			JoinedAt:      now,
			LastActiveAt:  now,
			Preferences:   domain.DefaultPreferences(),
			PersonalGoals: []string{},
			WeeklyTarget: domain.WeeklyTarget{
				ChallengesPerWeek: 3,
				WeekStartDate:     startOfWeek(now),
			},
		},
		Quests:         []domain.Quest{},
		Achievements:   catalog.Achievements(),
		QuizSessions:   []domain.QuizSession{},
		MiniGameScores: []domain.MiniGameScore{},
		LastUpdated:    now,
	}
}

// Initialize loads the saved snapshot, or constructs and persists a
// fresh default state when none exists. Loaded states get any badge
// definitions added since the save merged in, then a re-evaluation so
// newly-added achievements can unlock against old progress.
func (s *Store) Initialize() error {
	return s.InitializeAt(time.Now())
}

// InitializeAt is Initialize with an injectable clock for tests.
func (s *Store) InitializeAt(now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved, err := s.saver.LoadState()
	if err != nil || saved == nil {
		if err != nil {
			log.Printf("[progression] load failed, starting fresh: %v", err)
		}
		s.state = NewGameState(now)
		s.persist(now)
		return nil
	}

	s.state = *saved
	s.state.Achievements = mergeCatalog(s.state.Achievements)
	s.reevaluate(now)
	metrics.PlayerLevel.Set(float64(s.state.Player.Level))
	return nil
}

// mergeCatalog appends catalog badges missing from the saved list,
// preserving existing unlock status.
func mergeCatalog(saved []domain.Achievement) []domain.Achievement {
	known := make(map[string]bool, len(saved))
	for _, a := range saved {
		known[a.ID] = true
	}
	for _, def := range catalog.Achievements() {
		if !known[def.ID] {
			saved = append(saved, def)
		}
	}
	return saved
}

// ─── Mutations ──────────────────────────────────────────────────────────────

// CompleteQuest marks the quest completed and credits its reward.
// Unknown ids and already-completed quests are silent no-ops. Returns
// whether the quest transitioned on this call.
func (s *Store) CompleteQuest(id string) bool {
	return s.CompleteQuestAt(id, time.Now())
}

// CompleteQuestAt is CompleteQuest with an injectable clock.
func (s *Store) CompleteQuestAt(id string, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.state.Quests {
		if s.state.Quests[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 || s.state.Quests[idx].IsCompleted() {
		return false
	}

	quest := &s.state.Quests[idx]
	completedAt := now
	quest.Status = domain.QuestCompleted
	quest.CompletedAt = &completedAt

	player := &s.state.Player
	player.TotalXP += quest.XPReward
	recomputeLevel(player)
	player.LastActiveAt = now
	player.Stats.ChallengesCompleted++

	impact := ImpactMetrics(len(s.state.CompletedQuests()))
	player.Stats.CO2Saved = impact.CO2Saved
	player.Stats.MoneySaved = impact.MoneySaved
	player.Stats.TreesEquivalent = impact.TreesEquivalent

	advanceWeeklyTarget(&player.WeeklyTarget, now)

	s.reevaluate(now)

	metrics.QuestsCompleted.WithLabelValues(string(quest.Type)).Inc()
	metrics.XPEarned.WithLabelValues("quest").Add(float64(quest.XPReward))
	metrics.PlayerLevel.Set(float64(player.Level))

	s.persist(now)
	return true
}

// AddQuest appends a quest to the board.
func (s *Store) AddQuest(quest domain.Quest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Quests = append(s.state.Quests, quest)
	s.persist(time.Now())
}

// UpdateQuest applies a partial edit to a quest. Unknown ids are a
// no-op. Status edits only switch between available and in-progress;
// completion goes through CompleteQuest and is never reverted here.
func (s *Store) UpdateQuest(id string, update domain.QuestUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Quests {
		q := &s.state.Quests[i]
		if q.ID != id {
			continue
		}
		if update.Title != nil {
			q.Title = *update.Title
		}
		if update.Description != nil {
			q.Description = *update.Description
		}
		if update.Status != nil && !q.IsCompleted() && *update.Status != domain.QuestCompleted {
			q.Status = *update.Status
		}
		s.persist(time.Now())
		return
	}
}

// NewQuizSession grades answers against questions and builds the
// immutable session record.
func NewQuizSession(questions []domain.QuizQuestion, answers []int, now time.Time) domain.QuizSession {
	score, xp := domain.ScoreQuiz(questions, answers)
	return domain.QuizSession{
		ID:          uuid.NewString(),
		Questions:   questions,
		Answers:     answers,
		Score:       score,
		XPEarned:    xp,
		CompletedAt: now,
	}
}

// AddQuizSession appends the session and credits its XP.
func (s *Store) AddQuizSession(session domain.QuizSession) {
	s.AddQuizSessionAt(session, time.Now())
}

// AddQuizSessionAt is AddQuizSession with an injectable clock.
func (s *Store) AddQuizSessionAt(session domain.QuizSession, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.QuizSessions = append(s.state.QuizSessions, session)

	player := &s.state.Player
	player.TotalXP += session.XPEarned
	recomputeLevel(player)
	player.LastActiveAt = now
	player.Stats.QuizzesCompleted++

	s.reevaluate(now)

	metrics.QuizSessions.Inc()
	metrics.XPEarned.WithLabelValues("quiz").Add(float64(session.XPEarned))
	metrics.PlayerLevel.Set(float64(player.Level))

	s.persist(now)
}

// NewGameScore builds the immutable play record for a raw game score,
// deriving XP from the game's score ceiling.
func NewGameScore(game domain.MiniGame, score int, now time.Time) domain.MiniGameScore {
	return domain.MiniGameScore{
		ID:       uuid.NewString(),
		GameID:   game.ID,
		GameName: game.Title,
		Score:    score,
		XPEarned: game.XPForScore(score),
		PlayedAt: now,
	}
}

// AddMiniGameScore appends the play record and credits its XP.
func (s *Store) AddMiniGameScore(score domain.MiniGameScore) {
	s.AddMiniGameScoreAt(score, time.Now())
}

// AddMiniGameScoreAt is AddMiniGameScore with an injectable clock.
func (s *Store) AddMiniGameScoreAt(score domain.MiniGameScore, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.MiniGameScores = append(s.state.MiniGameScores, score)

	player := &s.state.Player
	player.TotalXP += score.XPEarned
	recomputeLevel(player)
	player.LastActiveAt = now
	player.Stats.MiniGamesPlayed++

	s.reevaluate(now)

	metrics.MiniGamePlays.Inc()
	metrics.XPEarned.WithLabelValues("game").Add(float64(score.XPEarned))
	metrics.PlayerLevel.Set(float64(player.Level))

	s.persist(now)
}

// UpdateStreak advances the daily streak from the gap between the last
// activity and now. Idempotent within one calendar day.
func (s *Store) UpdateStreak() {
	s.UpdateStreakAt(time.Now())
}

// UpdateStreakAt is UpdateStreak with an injectable clock.
func (s *Store) UpdateStreakAt(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	applyStreak(&s.state.Player, now)
	s.reevaluate(now)
	s.persist(now)
}

// UpdatePlayer shallow-merges a partial profile edit. Used by profile
// edits and onboarding completion.
func (s *Store) UpdatePlayer(update domain.PlayerUpdate) {
	s.UpdatePlayerAt(update, time.Now())
}

// UpdatePlayerAt is UpdatePlayer with an injectable clock.
func (s *Store) UpdatePlayerAt(update domain.PlayerUpdate, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	player := &s.state.Player
	if update.Name != nil {
		player.Name = *update.Name
	}
	if update.DisplayName != nil {
		player.DisplayName = *update.DisplayName
	}
	if update.IsOnboardingComplete != nil {
		player.IsOnboardingComplete = *update.IsOnboardingComplete
	}
	if update.Preferences != nil {
		player.Preferences = *update.Preferences
	}
	if update.PersonalGoals != nil {
		player.PersonalGoals = *update.PersonalGoals
	}
	if update.WeeklyTarget != nil {
		player.WeeklyTarget = *update.WeeklyTarget
	}
	player.LastActiveAt = now

	s.persist(now)
}

// ResetGame discards everything and replaces it with a fresh default
// state under a new identity.
func (s *Store) ResetGame() {
	s.ResetGameAt(time.Now())
}

// ResetGameAt is ResetGame with an injectable clock.
func (s *Store) ResetGameAt(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = NewGameState(now)
	metrics.PlayerLevel.Set(1)
	s.persist(now)
}

// ClearSaved drops the durable snapshot entirely (reset flows that do
// not want to leave an overwritten copy behind).
func (s *Store) ClearSaved() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saver.ClearState()
}

// ─── Derived Reads ──────────────────────────────────────────────────────────

// State returns a deep copy of the current state.
func (s *Store) State() domain.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Player returns a copy of the current player profile.
func (s *Store) Player() domain.PlayerProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Player.Clone()
}

// Level returns the current level derived from total XP.
func (s *Store) Level() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return LevelForXP(s.state.Player.TotalXP)
}

// XPForNext returns the cumulative XP needed for the next level.
func (s *Store) XPForNext() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return XPForNextLevel(s.state.Player.TotalXP)
}

// Progress returns progress through the current level in [0, 1].
func (s *Store) Progress() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ProgressToNextLevel(s.state.Player.TotalXP)
}

// AvailableQuests returns quests still open to start.
func (s *Store) AvailableQuests() []domain.Quest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.AvailableQuests()
}

// CompletedQuests returns quests in terminal state.
func (s *Store) CompletedQuests() []domain.Quest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.CompletedQuests()
}

// UnlockedAchievements returns the player's earned badges.
func (s *Store) UnlockedAchievements() []domain.Achievement {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.UnlockedAchievements()
}

// PersonalizedQuests runs the personalization ranking over the
// available quests.
func (s *Store) PersonalizedQuests() []domain.Quest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return PersonalizedQuests(s.state.AvailableQuests(), s.state.Player)
}

// ─── Internals ──────────────────────────────────────────────────────────────

// reevaluate re-runs achievement evaluation against the current
// aggregates and keeps the badge counter in sync. Caller holds the lock.
func (s *Store) reevaluate(now time.Time) {
	before := countUnlocked(s.state.Achievements)
	s.state.Achievements = EvaluateAchievements(
		s.state.Achievements,
		s.state.Player,
		s.state.Quests,
		s.state.QuizSessions,
		s.state.MiniGameScores,
		now,
	)
	after := countUnlocked(s.state.Achievements)
	s.state.Player.Stats.BadgesEarned = after
	if after > before {
		metrics.AchievementsUnlocked.Add(float64(after - before))
	}
}

// persist writes the snapshot best-effort. A failed save is logged and
// absorbed: in-memory state stays authoritative and the next mutation
// retries naturally. Caller holds the lock.
func (s *Store) persist(now time.Time) {
	s.state.LastUpdated = now
	if err := s.saver.SaveState(s.state.Clone()); err != nil {
		metrics.SnapshotSaveFailures.Inc()
		log.Printf("[progression] save state: %v", err)
		return
	}
	metrics.SnapshotSaves.Inc()
}
