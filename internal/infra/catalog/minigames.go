package catalog

import "github.com/ecoquest-app/ecoquest/internal/domain"

// MiniGames is the built-in mini-game list. XP earned for a play is
// derived from the raw score against MaxScore, not stored here.
var MiniGames = []domain.MiniGame{
	{
		ID:            "waste-sorting",
		Title:         "Waste Sorting Challenge",
		Description:   "Sort different items into the correct recycling bins as quickly as possible!",
		Category:      domain.QuestWaste,
		Difficulty:    domain.DifficultyEasy,
		EstimatedTime: 3,
		MaxScore:      1000,
		XPReward:      50,
		Instructions: []string{
			"Items will appear on the screen",
			"Drag each item to the correct bin",
			"Green bin: Compostable items",
			"Blue bin: Recyclable items",
			"Gray bin: General waste",
			"Speed and accuracy both matter!",
		},
		Icon: "♻️",
	},
	{
		ID:            "water-drops",
		Title:         "Save the Water Drops",
		Description:   "Catch falling water drops to prevent waste and learn about conservation!",
		Category:      domain.QuestWater,
		Difficulty:    domain.DifficultyMedium,
		EstimatedTime: 4,
		MaxScore:      1500,
		XPReward:      75,
		Instructions: []string{
			"Water drops are falling from leaky faucets",
			"Move your bucket to catch them",
			"Each drop saved earns points",
			"Avoid catching polluted drops (dark colored)",
			"Bonus points for catching multiple drops in a row",
		},
		Icon: "💧",
	},
	{
		ID:            "energy-saver",
		Title:         "Energy Saver House",
		Description:   "Turn off lights and appliances to save energy in this virtual house!",
		Category:      domain.QuestEnergy,
		Difficulty:    domain.DifficultyEasy,
		EstimatedTime: 3,
		MaxScore:      800,
		XPReward:      60,
		Instructions: []string{
			"Click on lights and appliances to turn them off",
			"Each item turned off saves energy points",
			"Some items use more energy than others",
			"Complete all rooms to finish the game",
			"Faster completion = bonus points",
		},
		Icon: "⚡",
	},
	{
		ID:            "carbon-footprint",
		Title:         "Carbon Footprint Race",
		Description:   "Choose the most eco-friendly transportation options to reduce your carbon footprint!",
		Category:      domain.QuestTransport,
		Difficulty:    domain.DifficultyMedium,
		EstimatedTime: 5,
		MaxScore:      1200,
		XPReward:      80,
		Instructions: []string{
			"You need to travel to different destinations",
			"Choose from various transport options",
			"Each choice affects your carbon footprint",
			"Lower emissions = higher score",
			"Balance speed, cost, and environmental impact",
		},
		Icon: "🚲",
	},
	{
		ID:            "pollinator-garden",
		Title:         "Build a Pollinator Garden",
		Description:   "Plant the right flowers to attract bees, butterflies, and other pollinators!",
		Category:      domain.QuestBiodiversity,
		Difficulty:    domain.DifficultyHard,
		EstimatedTime: 6,
		MaxScore:      2000,
		XPReward:      100,
		Instructions: []string{
			"Different pollinators prefer different flowers",
			"Plant flowers that bloom in different seasons",
			"Consider flower colors and shapes",
			"Create a balanced ecosystem",
			"Watch your garden come to life!",
		},
		Icon: "🌸",
	},
}

// GameByID returns the mini-game with the given id, or nil.
func GameByID(id string) *domain.MiniGame {
	for i := range MiniGames {
		if MiniGames[i].ID == id {
			return &MiniGames[i]
		}
	}
	return nil
}

// GamesByCategory returns the mini-games in one eco category.
func GamesByCategory(category domain.QuestType) []domain.MiniGame {
	var out []domain.MiniGame
	for _, g := range MiniGames {
		if g.Category == category {
			out = append(out, g)
		}
	}
	return out
}

// GamesByDifficulty returns the mini-games at one difficulty.
func GamesByDifficulty(difficulty domain.Difficulty) []domain.MiniGame {
	var out []domain.MiniGame
	for _, g := range MiniGames {
		if g.Difficulty == difficulty {
			out = append(out, g)
		}
	}
	return out
}
