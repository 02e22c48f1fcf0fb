package progression

import (
	"math"
	"sort"

	"github.com/ecoquest-app/ecoquest/internal/domain"
)

// ─── Quest Ranking ──────────────────────────────────────────────────────────

// goalTypeMap maps onboarding primary goals to the quest category they
// advance.
var goalTypeMap = map[string]domain.QuestType{
	"reduce_waste":          domain.QuestWaste,
	"save_energy":           domain.QuestEnergy,
	"conserve_water":        domain.QuestWater,
	"sustainable_transport": domain.QuestTransport,
	"protect_nature":        domain.QuestBiodiversity,
}

// difficultyScore is the experience/difficulty alignment bonus.
var difficultyScore = map[domain.ExperienceLevel]map[domain.Difficulty]int{
	domain.ExperienceBeginner:     {domain.DifficultyEasy: 5, domain.DifficultyMedium: 0, domain.DifficultyHard: -5},
	domain.ExperienceIntermediate: {domain.DifficultyEasy: 2, domain.DifficultyMedium: 5, domain.DifficultyHard: 2},
	domain.ExperienceAdvanced:     {domain.DifficultyEasy: 0, domain.DifficultyMedium: 3, domain.DifficultyHard: 5},
}

// allowedDifficulties gates quest difficulty by experience level.
var allowedDifficulties = map[domain.ExperienceLevel][]domain.Difficulty{
	domain.ExperienceBeginner:     {domain.DifficultyEasy},
	domain.ExperienceIntermediate: {domain.DifficultyEasy, domain.DifficultyMedium},
	domain.ExperienceAdvanced:     {domain.DifficultyEasy, domain.DifficultyMedium, domain.DifficultyHard},
}

// timeLimit caps how many quests each available-time bucket gets.
var timeLimit = map[domain.AvailableTime]int{
	domain.Time5To10:  2,
	domain.Time10To20: 4,
	domain.Time20To30: 6,
	domain.Time30Plus: 10,
}

// PersonalizedQuests filters quests to the player's interests and
// permitted difficulties, orders them by relevance (stable on ties),
// and truncates to the available-time cap.
func PersonalizedQuests(quests []domain.Quest, player domain.PlayerProfile) []domain.Quest {
	prefs := player.Preferences

	var filtered []domain.Quest
	for _, q := range quests {
		if len(prefs.Interests) > 0 && !containsType(prefs.Interests, q.Type) {
			continue
		}
		if !difficultyAllowed(prefs.ExperienceLevel, q.Difficulty) {
			continue
		}
		filtered = append(filtered, q)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return relevanceScore(filtered[i], player) > relevanceScore(filtered[j], player)
	})

	limit, ok := timeLimit[prefs.AvailableTime]
	if !ok {
		limit = timeLimit[domain.Time10To20]
	}
	if len(filtered) > limit {
		filtered = filtered[:limit]
	}
	return filtered
}

// relevanceScore ranks one quest for one player: +10 for a declared
// interest, +15 per primary goal mapping to the quest's category, plus
// the difficulty alignment bonus.
func relevanceScore(q domain.Quest, player domain.PlayerProfile) int {
	prefs := player.Preferences
	score := 0

	if containsType(prefs.Interests, q.Type) {
		score += 10
	}
	for _, goal := range prefs.PrimaryGoals {
		if goalTypeMap[goal] == q.Type {
			score += 15
		}
	}
	if table, ok := difficultyScore[prefs.ExperienceLevel]; ok {
		score += table[q.Difficulty]
	}
	return score
}

func containsType(types []domain.QuestType, t domain.QuestType) bool {
	for _, v := range types {
		if v == t {
			return true
		}
	}
	return false
}

func difficultyAllowed(level domain.ExperienceLevel, d domain.Difficulty) bool {
	allowed, ok := allowedDifficulties[level]
	if !ok {
		allowed = allowedDifficulties[domain.ExperienceBeginner]
	}
	for _, v := range allowed {
		if v == d {
			return true
		}
	}
	return false
}

// ─── Impact Metrics ─────────────────────────────────────────────────────────

// Impact rough-averages per completed quest: 2.5 kg CO2, $5, 0.1 trees.
const (
	co2PerQuest   = 2.5
	moneyPerQuest = 5.0
	treesPerQuest = 0.1
)

// Impact is the derived environmental-equivalence summary.
type Impact struct {
	CO2Saved        float64 `json:"co2Saved"`
	MoneySaved      float64 `json:"moneySaved"`
	TreesEquivalent float64 `json:"treesEquivalent"`
}

// ImpactMetrics recomputes impact from scratch from the current number
// of completed quests. Idempotent — never accumulated incrementally.
func ImpactMetrics(completedCount int) Impact {
	n := float64(completedCount)
	return Impact{
		CO2Saved:        n * co2PerQuest,
		MoneySaved:      n * moneyPerQuest,
		TreesEquivalent: math.Round(n*treesPerQuest*10) / 10,
	}
}

// ─── Achievement Filtering & Tips ───────────────────────────────────────────

// PersonalizedAchievements hides category badges outside the player's
// declared interests. General badges (streak, quiz, game) always show.
func PersonalizedAchievements(achievements []domain.Achievement, player domain.PlayerProfile) []domain.Achievement {
	interests := player.Preferences.Interests
	var out []domain.Achievement
	for _, a := range achievements {
		switch a.Category {
		case "streak", "quiz", "game":
			out = append(out, a)
		default:
			if len(interests) == 0 || containsType(interests, domain.QuestType(a.Category)) {
				out = append(out, a)
			}
		}
	}
	return out
}

// PersonalizedTips returns up to three tips keyed off the player's
// climate, interests, and motivations.
func PersonalizedTips(player domain.PlayerProfile) []string {
	prefs := player.Preferences
	var tips []string

	if prefs.Location != nil {
		switch prefs.Location.Climate {
		case "tropical":
			tips = append(tips, "💧 In tropical climates, collect rainwater for plants during the wet season")
		case "arid":
			tips = append(tips, "🌵 Use drought-resistant plants to reduce water usage in dry climates")
		case "polar":
			tips = append(tips, "🏠 Proper insulation can reduce heating costs by up to 30% in cold climates")
		}
	}

	if containsType(prefs.Interests, domain.QuestEnergy) {
		tips = append(tips, "💡 LED bulbs use 75% less energy than incandescent bulbs")
	}
	if containsType(prefs.Interests, domain.QuestWater) {
		tips = append(tips, "🚿 A 5-minute shower uses about 25 gallons less water than a bath")
	}
	if containsType(prefs.Interests, domain.QuestWaste) {
		tips = append(tips, "♻️ Composting food scraps can reduce household waste by up to 30%")
	}

	for _, m := range prefs.Motivations {
		if m == "save_money" {
			tips = append(tips, "💰 Unplugging electronics when not in use can save $100+ per year")
			break
		}
	}

	if len(tips) > 3 {
		tips = tips[:3]
	}
	return tips
}

// NextRecommendedAction suggests what the player should do next based
// on their preferred activities.
func NextRecommendedAction(player domain.PlayerProfile, availableQuests []domain.Quest) string {
	prefs := player.Preferences.PreferredActivities

	if len(availableQuests) > 0 && containsString(prefs, "challenges") {
		return "Complete your next eco-challenge"
	}
	if containsString(prefs, "quizzes") {
		return "Take a quick sustainability quiz"
	}
	if containsString(prefs, "games") {
		return "Play an eco-friendly mini-game"
	}
	return "Explore new environmental activities"
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
