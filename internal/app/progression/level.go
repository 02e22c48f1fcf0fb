// Package progression implements the EcoQuest progression engine: the
// game-state store, XP/level math, daily streaks, achievement
// evaluation, and quest personalization.
// Design rule: the store owns the one mutable GameState; everything
// else in this package is a pure function over snapshots.
package progression

import "github.com/ecoquest-app/ecoquest/internal/domain"

// XPPerLevel is the flat XP cost of each level.
const XPPerLevel = 1000

// LevelForXP returns the level for a given XP total.
// Linear curve: floor(xp/1000)+1, floor level is 1.
func LevelForXP(totalXP int) int {
	if totalXP < 0 {
		return 1
	}
	return totalXP/XPPerLevel + 1
}

// XPForNextLevel returns the cumulative XP at which the next level is
// reached.
func XPForNextLevel(totalXP int) int {
	return LevelForXP(totalXP) * XPPerLevel
}

// ProgressToNextLevel returns progress through the current level as a
// fraction in [0, 1].
func ProgressToNextLevel(totalXP int) float64 {
	level := LevelForXP(totalXP)
	progress := float64(totalXP-(level-1)*XPPerLevel) / float64(XPPerLevel)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

// recomputeLevel re-derives the stored level from TotalXP. Called after
// every XP mutation so the persisted level can never drift from the
// canonical formula.
func recomputeLevel(p *domain.PlayerProfile) {
	p.Level = LevelForXP(p.TotalXP)
}
