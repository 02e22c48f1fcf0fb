package domain

import "time"

// ─── Mini-Game Types ────────────────────────────────────────────────────────

// MiniGame is one catalog entry describing a playable mini-game.
type MiniGame struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Category      QuestType  `json:"category"`
	Difficulty    Difficulty `json:"difficulty"`
	EstimatedTime int        `json:"estimatedTime"` // minutes
	MaxScore      int        `json:"maxScore"`
	XPReward      int        `json:"xpReward"`
	Instructions  []string   `json:"instructions"`
	Icon          string     `json:"icon"`
}

// XPForScore derives the XP earned for a raw game score:
// floor(score / maxScore * xpReward), clamped to [0, xpReward].
func (g MiniGame) XPForScore(score int) int {
	if g.MaxScore <= 0 || score <= 0 {
		return 0
	}
	if score > g.MaxScore {
		score = g.MaxScore
	}
	return score * g.XPReward / g.MaxScore
}

// MiniGameScore is the immutable record of one completed play.
type MiniGameScore struct {
	ID       string    `json:"id"`
	GameID   string    `json:"gameId"`
	GameName string    `json:"gameName"`
	Score    int       `json:"score"`
	XPEarned int       `json:"xpEarned"`
	PlayedAt time.Time `json:"playedAt"`
}
