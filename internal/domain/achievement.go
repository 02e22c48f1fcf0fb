package domain

import "time"

// ─── Achievement Types ──────────────────────────────────────────────────────

// RequirementKind selects which aggregate an achievement is checked
// against. The evaluator dispatches on this tag exhaustively, so adding
// a kind is a compile-time-visible change.
type RequirementKind string

const (
	ReqQuestCount RequirementKind = "quest_count" // completed quests, optional category filter
	ReqStreakDays RequirementKind = "streak_days" // current streak length
	ReqQuizScore  RequirementKind = "quiz_score"  // perfect-score quiz sessions
	ReqGameScore  RequirementKind = "game_score"  // mini-game plays
	ReqXPTotal    RequirementKind = "xp_total"    // lifetime XP
)

// Requirement is the threshold condition for one achievement.
// Category is only meaningful for ReqQuestCount; empty means any type.
type Requirement struct {
	Kind     RequirementKind `json:"type"`
	Value    int             `json:"value"`
	Category QuestType       `json:"category,omitempty"`
}

// Achievement is one badge, duplicated from the static catalog into
// player state so unlock status is tracked per player. Unlocked is
// monotonic: once true it never reverts, and UnlockedAt is set exactly
// once.
type Achievement struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Icon        string      `json:"icon"`
	Category    string      `json:"category"`
	Requirement Requirement `json:"requirement"`
	XPReward    int         `json:"xpReward"`
	Unlocked    bool        `json:"unlocked"`
	UnlockedAt  *time.Time  `json:"unlockedAt,omitempty"`
}
