package progression

import (
	"time"

	"github.com/ecoquest-app/ecoquest/internal/domain"
)

// EvaluateAchievements checks every still-locked achievement against
// the current aggregates and returns a new list. Inputs are never
// mutated. Unlocks are monotonic: an already-unlocked achievement
// passes through untouched and is never re-evaluated or revoked.
//
// Unlocking does NOT credit the achievement's own XPReward into the
// player's total — badges are trophies, not an XP source.
func EvaluateAchievements(
	achievements []domain.Achievement,
	player domain.PlayerProfile,
	quests []domain.Quest,
	sessions []domain.QuizSession,
	scores []domain.MiniGameScore,
	now time.Time,
) []domain.Achievement {
	out := make([]domain.Achievement, len(achievements))
	for i, a := range achievements {
		if a.Unlocked {
			out[i] = a
			continue
		}
		if requirementMet(a.Requirement, player, quests, sessions, scores) {
			unlockedAt := now
			a.Unlocked = true
			a.UnlockedAt = &unlockedAt
		}
		out[i] = a
	}
	return out
}

// requirementMet computes the aggregate for one requirement kind and
// compares it to the threshold. Unknown kinds never unlock.
func requirementMet(
	req domain.Requirement,
	player domain.PlayerProfile,
	quests []domain.Quest,
	sessions []domain.QuizSession,
	scores []domain.MiniGameScore,
) bool {
	switch req.Kind {
	case domain.ReqQuestCount:
		count := 0
		for _, q := range quests {
			if q.IsCompleted() && (req.Category == "" || q.Type == req.Category) {
				count++
			}
		}
		return count >= req.Value

	case domain.ReqStreakDays:
		return player.CurrentStreak >= req.Value

	case domain.ReqQuizScore:
		perfect := 0
		for _, s := range sessions {
			if s.IsPerfect() {
				perfect++
			}
		}
		return perfect >= req.Value

	case domain.ReqGameScore:
		return len(scores) >= req.Value

	case domain.ReqXPTotal:
		return player.TotalXP >= req.Value

	default:
		return false
	}
}

// countUnlocked returns how many achievements are unlocked.
func countUnlocked(achievements []domain.Achievement) int {
	n := 0
	for _, a := range achievements {
		if a.Unlocked {
			n++
		}
	}
	return n
}
