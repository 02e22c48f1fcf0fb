// Package catalog holds EcoQuest's built-in content tables: the
// challenge library, the quiz question bank, the mini-game list, and
// the achievement definitions. Everything here is static and
// side-effect-free; quests and achievements are instantiated from these
// entries into mutable game state elsewhere.
package catalog

import (
	"math/rand"

	"github.com/ecoquest-app/ecoquest/internal/domain"
)

// Challenges is the built-in eco-challenge library: four challenges per
// category. The generator service returns entries of the same shape.
var Challenges = []domain.QuestTemplate{
	// ── Waste Management ───────────────────────────────────────────────
	{
		Title:       "Plastic-Free Day Challenge",
		Description: "Go an entire day without using any single-use plastic items. Document alternatives you used and share your experience.",
		Type:        domain.QuestWaste,
		Difficulty:  domain.DifficultyMedium,
		XPReward:    150,
		Realm:       "Waste Warrior Realm",
	},
	{
		Title:       "Waste Audit Adventure",
		Description: "Conduct a waste audit of your household for one week. Categorize and weigh different types of waste, then create an action plan to reduce it.",
		Type:        domain.QuestWaste,
		Difficulty:  domain.DifficultyHard,
		XPReward:    200,
		Realm:       "Waste Warrior Realm",
	},
	{
		Title:       "Upcycling Creation",
		Description: "Transform at least 3 items that would normally be thrown away into something useful or decorative. Share photos of your creations.",
		Type:        domain.QuestWaste,
		Difficulty:  domain.DifficultyMedium,
		XPReward:    175,
		Realm:       "Waste Warrior Realm",
	},
	{
		Title:       "Zero Waste Lunch Week",
		Description: "Pack waste-free lunches for an entire school/work week using reusable containers, utensils, and napkins.",
		Type:        domain.QuestWaste,
		Difficulty:  domain.DifficultyEasy,
		XPReward:    100,
		Realm:       "Waste Warrior Realm",
	},

	// ── Water Conservation ─────────────────────────────────────────────
	{
		Title:       "Water Usage Tracker",
		Description: "Track your daily water usage for a week and implement 3 water-saving techniques. Calculate how much water you saved.",
		Type:        domain.QuestWater,
		Difficulty:  domain.DifficultyMedium,
		XPReward:    150,
		Realm:       "Aqua Guardian Realm",
	},
	{
		Title:       "Rainwater Harvesting Setup",
		Description: "Set up a simple rainwater collection system at home or school. Use the collected water for plants or cleaning.",
		Type:        domain.QuestWater,
		Difficulty:  domain.DifficultyHard,
		XPReward:    200,
		Realm:       "Aqua Guardian Realm",
	},
	{
		Title:       "Shower Timer Challenge",
		Description: "Reduce your shower time to 5 minutes or less for two weeks. Track your water savings and share tips with others.",
		Type:        domain.QuestWater,
		Difficulty:  domain.DifficultyEasy,
		XPReward:    100,
		Realm:       "Aqua Guardian Realm",
	},
	{
		Title:       "Greywater Garden Project",
		Description: "Create a simple greywater system to reuse water from sinks or washing machines for watering plants.",
		Type:        domain.QuestWater,
		Difficulty:  domain.DifficultyHard,
		XPReward:    225,
		Realm:       "Aqua Guardian Realm",
	},

	// ── Energy Conservation ────────────────────────────────────────────
	{
		Title:       "Energy Detective Mission",
		Description: "Identify and eliminate 5 energy vampires in your home (devices that consume power when not in use).",
		Type:        domain.QuestEnergy,
		Difficulty:  domain.DifficultyEasy,
		XPReward:    100,
		Realm:       "Power Saver Realm",
	},
	{
		Title:       "Solar Cooking Experiment",
		Description: "Build a simple solar cooker and use it to prepare a meal. Document the process and cooking time.",
		Type:        domain.QuestEnergy,
		Difficulty:  domain.DifficultyHard,
		XPReward:    200,
		Realm:       "Power Saver Realm",
	},
	{
		Title:       "LED Light Conversion",
		Description: "Replace all incandescent bulbs in one room with LED bulbs. Calculate the energy and cost savings over a year.",
		Type:        domain.QuestEnergy,
		Difficulty:  domain.DifficultyMedium,
		XPReward:    150,
		Realm:       "Power Saver Realm",
	},
	{
		Title:       "Unplugged Day Challenge",
		Description: "Spend an entire day using minimal electricity - no TV, computer, or unnecessary lights. Find alternative activities.",
		Type:        domain.QuestEnergy,
		Difficulty:  domain.DifficultyMedium,
		XPReward:    175,
		Realm:       "Power Saver Realm",
	},

	// ── Sustainable Transport ──────────────────────────────────────────
	{
		Title:       "Car-Free Week",
		Description: "Use only sustainable transportation (walking, cycling, public transport) for one week. Track your carbon footprint reduction.",
		Type:        domain.QuestTransport,
		Difficulty:  domain.DifficultyMedium,
		XPReward:    150,
		Realm:       "Green Mobility Realm",
	},
	{
		Title:       "Bike Commute Challenge",
		Description: "Cycle to school or work for 10 days. Calculate the distance covered and emissions avoided.",
		Type:        domain.QuestTransport,
		Difficulty:  domain.DifficultyEasy,
		XPReward:    125,
		Realm:       "Green Mobility Realm",
	},
	{
		Title:       "Public Transport Explorer",
		Description: "Use only public transportation for two weeks. Create a guide of the most efficient routes in your area.",
		Type:        domain.QuestTransport,
		Difficulty:  domain.DifficultyEasy,
		XPReward:    100,
		Realm:       "Green Mobility Realm",
	},
	{
		Title:       "Carpooling Coordinator",
		Description: "Organize a carpooling system for your school or workplace. Get at least 5 people to participate for one month.",
		Type:        domain.QuestTransport,
		Difficulty:  domain.DifficultyHard,
		XPReward:    200,
		Realm:       "Green Mobility Realm",
	},

	// ── Biodiversity ───────────────────────────────────────────────────
	{
		Title:       "Native Plant Garden",
		Description: "Create a small garden with at least 5 native plant species. Research their benefits to local wildlife.",
		Type:        domain.QuestBiodiversity,
		Difficulty:  domain.DifficultyMedium,
		XPReward:    175,
		Realm:       "Nature Guardian Realm",
	},
	{
		Title:       "Wildlife Habitat Builder",
		Description: "Build and install 3 different wildlife habitats (bird house, bee hotel, butterfly garden) in your area.",
		Type:        domain.QuestBiodiversity,
		Difficulty:  domain.DifficultyHard,
		XPReward:    225,
		Realm:       "Nature Guardian Realm",
	},
	{
		Title:       "Species Documentation Project",
		Description: "Document 20 different species (plants, birds, insects) in your local area with photos and descriptions.",
		Type:        domain.QuestBiodiversity,
		Difficulty:  domain.DifficultyMedium,
		XPReward:    150,
		Realm:       "Nature Guardian Realm",
	},
	{
		Title:       "Pollinator Garden Challenge",
		Description: "Plant a pollinator-friendly garden with at least 8 different flowering plants that bloom throughout the season.",
		Type:        domain.QuestBiodiversity,
		Difficulty:  domain.DifficultyEasy,
		XPReward:    125,
		Realm:       "Nature Guardian Realm",
	},
}

// FilterChallenges returns library entries matching the given filters.
// Empty filter values match everything.
func FilterChallenges(questType domain.QuestType, difficulty domain.Difficulty) []domain.QuestTemplate {
	var out []domain.QuestTemplate
	for _, c := range Challenges {
		if questType != "" && c.Type != questType {
			continue
		}
		if difficulty != "" && c.Difficulty != difficulty {
			continue
		}
		out = append(out, c)
	}
	return out
}

// RandomChallenge uniformly samples the library under the given
// filters, falling back to the full library when nothing matches.
func RandomChallenge(r *rand.Rand, questType domain.QuestType, difficulty domain.Difficulty) domain.QuestTemplate {
	pool := FilterChallenges(questType, difficulty)
	if len(pool) == 0 {
		pool = Challenges
	}
	return pool[r.Intn(len(pool))]
}
