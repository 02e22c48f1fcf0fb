package domain

import "time"

// ─── Aggregate Root ─────────────────────────────────────────────────────────

// GameState is the unit of persistence: the player plus every quest,
// achievement (always the full catalog with per-player unlock status),
// quiz session, and mini-game score.
type GameState struct {
	Player         PlayerProfile   `json:"player"`
	Quests         []Quest         `json:"quests"`
	Achievements   []Achievement   `json:"achievements"`
	QuizSessions   []QuizSession   `json:"quizSessions"`
	MiniGameScores []MiniGameScore `json:"miniGameScores"`
	LastUpdated    time.Time       `json:"lastUpdated"`
}

// CompletedQuests returns the quests in terminal state, in order.
func (s GameState) CompletedQuests() []Quest {
	var out []Quest
	for _, q := range s.Quests {
		if q.IsCompleted() {
			out = append(out, q)
		}
	}
	return out
}

// AvailableQuests returns the quests still open to start.
func (s GameState) AvailableQuests() []Quest {
	var out []Quest
	for _, q := range s.Quests {
		if q.Status == QuestAvailable {
			out = append(out, q)
		}
	}
	return out
}

// UnlockedAchievements returns the badges the player has earned.
func (s GameState) UnlockedAchievements() []Achievement {
	var out []Achievement
	for _, a := range s.Achievements {
		if a.Unlocked {
			out = append(out, a)
		}
	}
	return out
}

// Clone returns a deep copy. Handed to readers so nothing outside the
// store can mutate the authoritative state.
func (s GameState) Clone() GameState {
	out := s
	out.Player = s.Player.Clone()
	out.Quests = append([]Quest(nil), s.Quests...)
	out.Achievements = append([]Achievement(nil), s.Achievements...)
	out.QuizSessions = append([]QuizSession(nil), s.QuizSessions...)
	out.MiniGameScores = append([]MiniGameScore(nil), s.MiniGameScores...)
	return out
}
