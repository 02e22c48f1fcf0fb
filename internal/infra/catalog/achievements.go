package catalog

import "github.com/ecoquest-app/ecoquest/internal/domain"

// Achievements returns a fresh, fully-locked copy of the badge catalog.
// Every GameState carries its own copy so unlock status is per player;
// callers must not share the returned slice between states.
func Achievements() []domain.Achievement {
	return []domain.Achievement{
		// ── Waste Management ───────────────────────────────────────────
		{
			ID:          "waste-warrior-1",
			Title:       "Waste Warrior",
			Description: "Complete 5 waste management challenges",
			Icon:        "♻️",
			Category:    "waste",
			Requirement: domain.Requirement{Kind: domain.ReqQuestCount, Value: 5, Category: domain.QuestWaste},
			XPReward:    100,
		},
		{
			ID:          "waste-master",
			Title:       "Waste Master",
			Description: "Complete 15 waste management challenges",
			Icon:        "🗂️",
			Category:    "waste",
			Requirement: domain.Requirement{Kind: domain.ReqQuestCount, Value: 15, Category: domain.QuestWaste},
			XPReward:    250,
		},

		// ── Water Conservation ─────────────────────────────────────────
		{
			ID:          "jal-rakshak",
			Title:       "Jal Rakshak",
			Description: "Complete 5 water conservation challenges",
			Icon:        "💧",
			Category:    "water",
			Requirement: domain.Requirement{Kind: domain.ReqQuestCount, Value: 5, Category: domain.QuestWater},
			XPReward:    100,
		},
		{
			ID:          "water-guardian",
			Title:       "Water Guardian",
			Description: "Complete 15 water conservation challenges",
			Icon:        "🌊",
			Category:    "water",
			Requirement: domain.Requirement{Kind: domain.ReqQuestCount, Value: 15, Category: domain.QuestWater},
			XPReward:    250,
		},

		// ── Biodiversity ───────────────────────────────────────────────
		{
			ID:          "biodiversity-scout",
			Title:       "Biodiversity Scout",
			Description: "Complete 5 biodiversity challenges",
			Icon:        "🌱",
			Category:    "biodiversity",
			Requirement: domain.Requirement{Kind: domain.ReqQuestCount, Value: 5, Category: domain.QuestBiodiversity},
			XPReward:    100,
		},
		{
			ID:          "nature-protector",
			Title:       "Nature Protector",
			Description: "Complete 15 biodiversity challenges",
			Icon:        "🌳",
			Category:    "biodiversity",
			Requirement: domain.Requirement{Kind: domain.ReqQuestCount, Value: 15, Category: domain.QuestBiodiversity},
			XPReward:    250,
		},

		// ── Energy / Transport ─────────────────────────────────────────
		{
			ID:          "energy-saver",
			Title:       "Energy Saver",
			Description: "Complete 5 energy conservation challenges",
			Icon:        "⚡",
			Category:    "energy",
			Requirement: domain.Requirement{Kind: domain.ReqQuestCount, Value: 5, Category: domain.QuestEnergy},
			XPReward:    100,
		},
		{
			ID:          "green-commuter",
			Title:       "Green Commuter",
			Description: "Complete 5 sustainable transport challenges",
			Icon:        "🚲",
			Category:    "transport",
			Requirement: domain.Requirement{Kind: domain.ReqQuestCount, Value: 5, Category: domain.QuestTransport},
			XPReward:    100,
		},

		// ── Streaks ────────────────────────────────────────────────────
		{
			ID:          "consistent-learner",
			Title:       "Consistent Learner",
			Description: "Maintain a 7-day streak",
			Icon:        "🔥",
			Category:    "streak",
			Requirement: domain.Requirement{Kind: domain.ReqStreakDays, Value: 7},
			XPReward:    150,
		},
		{
			ID:          "dedication-master",
			Title:       "Dedication Master",
			Description: "Maintain a 30-day streak",
			Icon:        "🏆",
			Category:    "streak",
			Requirement: domain.Requirement{Kind: domain.ReqStreakDays, Value: 30},
			XPReward:    500,
		},

		// ── Quiz / Games ───────────────────────────────────────────────
		{
			ID:          "quiz-champion",
			Title:       "Quiz Champion",
			Description: "Score 100% on 5 quizzes",
			Icon:        "🧠",
			Category:    "quiz",
			Requirement: domain.Requirement{Kind: domain.ReqQuizScore, Value: 5},
			XPReward:    200,
		},
		{
			ID:          "game-master",
			Title:       "Game Master",
			Description: "Play 10 mini-games",
			Icon:        "🎮",
			Category:    "game",
			Requirement: domain.Requirement{Kind: domain.ReqGameScore, Value: 10},
			XPReward:    150,
		},
	}
}
