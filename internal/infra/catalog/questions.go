package catalog

import (
	"math/rand"

	"github.com/ecoquest-app/ecoquest/internal/domain"
)

// Questions is the built-in quiz bank: four questions per category.
var Questions = []domain.QuizQuestion{
	// ── Waste Management ───────────────────────────────────────────────
	{
		ID:            "waste-001",
		Question:      "How long does it take for a plastic bottle to decompose in a landfill?",
		Options:       []string{"50 years", "100 years", "450 years", "1000 years"},
		CorrectAnswer: 2,
		Explanation:   "Plastic bottles can take up to 450 years to decompose in landfills, which is why recycling and reducing plastic use is so important.",
		Category:      domain.QuestWaste,
		Difficulty:    domain.DifficultyEasy,
	},
	{
		ID:            "waste-002",
		Question:      "What percentage of plastic waste is actually recycled globally?",
		Options:       []string{"Less than 10%", "About 25%", "Around 50%", "Over 75%"},
		CorrectAnswer: 0,
		Explanation:   "Less than 10% of plastic waste is actually recycled globally. Most plastic ends up in landfills, oceans, or is incinerated.",
		Category:      domain.QuestWaste,
		Difficulty:    domain.DifficultyMedium,
	},
	{
		ID:            "waste-003",
		Question:      "Which of these materials can be composted?",
		Options:       []string{"Banana peels", "Plastic bags", "Glass bottles", "Aluminum cans"},
		CorrectAnswer: 0,
		Explanation:   "Banana peels are organic matter that can be composted. Plastic, glass, and aluminum should be recycled through different processes.",
		Category:      domain.QuestWaste,
		Difficulty:    domain.DifficultyEasy,
	},
	{
		ID:            "waste-004",
		Question:      "What is the concept of 'circular economy' in waste management?",
		Options:       []string{"Throwing waste in circular bins", "Reusing and recycling materials to minimize waste", "Burning waste in circular furnaces", "Burying waste in circular patterns"},
		CorrectAnswer: 1,
		Explanation:   "A circular economy focuses on reusing, recycling, and regenerating materials to keep them in use for as long as possible, minimizing waste.",
		Category:      domain.QuestWaste,
		Difficulty:    domain.DifficultyHard,
	},

	// ── Water Conservation ─────────────────────────────────────────────
	{
		ID:            "water-001",
		Question:      "What percentage of Earth's water is fresh water available for human use?",
		Options:       []string{"30%", "10%", "3%", "Less than 1%"},
		CorrectAnswer: 3,
		Explanation:   "Less than 1% of Earth's water is fresh water available for human use. Most water is saltwater in oceans or frozen in ice caps.",
		Category:      domain.QuestWater,
		Difficulty:    domain.DifficultyMedium,
	},
	{
		ID:            "water-002",
		Question:      "How much water does a typical 5-minute shower use?",
		Options:       []string{"10 gallons", "25 gallons", "50 gallons", "100 gallons"},
		CorrectAnswer: 1,
		Explanation:   "A typical 5-minute shower uses about 25 gallons of water. Reducing shower time is an easy way to conserve water.",
		Category:      domain.QuestWater,
		Difficulty:    domain.DifficultyEasy,
	},
	{
		ID:            "water-003",
		Question:      "Which activity uses the most water in an average household?",
		Options:       []string{"Showering", "Toilet flushing", "Washing clothes", "Washing dishes"},
		CorrectAnswer: 1,
		Explanation:   "Toilet flushing typically uses the most water in an average household, accounting for about 30% of indoor water use.",
		Category:      domain.QuestWater,
		Difficulty:    domain.DifficultyMedium,
	},
	{
		ID:            "water-004",
		Question:      "What is greywater?",
		Options:       []string{"Dirty rainwater", "Water from sinks, showers, and washing machines", "Water mixed with concrete", "Polluted groundwater"},
		CorrectAnswer: 1,
		Explanation:   "Greywater is wastewater from sinks, showers, and washing machines that can be reused for irrigation and other non-potable uses.",
		Category:      domain.QuestWater,
		Difficulty:    domain.DifficultyHard,
	},

	// ── Energy Conservation ────────────────────────────────────────────
	{
		ID:            "energy-001",
		Question:      "Which type of light bulb is most energy-efficient?",
		Options:       []string{"Incandescent", "Halogen", "CFL (Compact Fluorescent)", "LED"},
		CorrectAnswer: 3,
		Explanation:   "LED bulbs are the most energy-efficient, using up to 80% less energy than incandescent bulbs and lasting much longer.",
		Category:      domain.QuestEnergy,
		Difficulty:    domain.DifficultyEasy,
	},
	{
		ID:            "energy-002",
		Question:      "What are 'phantom loads' or 'vampire power'?",
		Options:       []string{"Solar power at night", "Energy used by devices when turned off but plugged in", "Power from wind turbines", "Energy stored in batteries"},
		CorrectAnswer: 1,
		Explanation:   "Phantom loads refer to energy consumed by electronic devices when they're turned off but still plugged in, which can account for 5-10% of home energy use.",
		Category:      domain.QuestEnergy,
		Difficulty:    domain.DifficultyMedium,
	},
	{
		ID:            "energy-003",
		Question:      "Which renewable energy source is most widely used globally?",
		Options:       []string{"Solar", "Wind", "Hydroelectric", "Geothermal"},
		CorrectAnswer: 2,
		Explanation:   "Hydroelectric power is the most widely used renewable energy source globally, providing about 16% of the world's electricity.",
		Category:      domain.QuestEnergy,
		Difficulty:    domain.DifficultyMedium,
	},
	{
		ID:            "energy-004",
		Question:      "What is the most effective way to reduce home energy consumption?",
		Options:       []string{"Using energy-efficient appliances", "Improving insulation", "Using renewable energy", "All of the above"},
		CorrectAnswer: 3,
		Explanation:   "The most effective approach combines energy-efficient appliances, proper insulation, and renewable energy sources to minimize overall consumption.",
		Category:      domain.QuestEnergy,
		Difficulty:    domain.DifficultyHard,
	},

	// ── Sustainable Transport ──────────────────────────────────────────
	{
		ID:            "transport-001",
		Question:      "Which mode of transport produces the least CO2 emissions per passenger?",
		Options:       []string{"Car", "Bus", "Train", "Bicycle"},
		CorrectAnswer: 3,
		Explanation:   "Bicycles produce zero direct emissions and are the most environmentally friendly mode of transport for short to medium distances.",
		Category:      domain.QuestTransport,
		Difficulty:    domain.DifficultyEasy,
	},
	{
		ID:            "transport-002",
		Question:      "How much can carpooling reduce individual carbon emissions from commuting?",
		Options:       []string{"10-20%", "25-35%", "45-55%", "65-75%"},
		CorrectAnswer: 2,
		Explanation:   "Carpooling can reduce individual carbon emissions by 45-55% by sharing the environmental cost among multiple passengers.",
		Category:      domain.QuestTransport,
		Difficulty:    domain.DifficultyMedium,
	},
	{
		ID:            "transport-003",
		Question:      "What is the main environmental benefit of electric vehicles?",
		Options:       []string{"They're completely emission-free", "They reduce local air pollution", "They're always powered by renewable energy", "They never need maintenance"},
		CorrectAnswer: 1,
		Explanation:   "Electric vehicles reduce local air pollution and can have lower overall emissions, especially when powered by clean electricity sources.",
		Category:      domain.QuestTransport,
		Difficulty:    domain.DifficultyMedium,
	},
	{
		ID:            "transport-004",
		Question:      "What does 'active transportation' refer to?",
		Options:       []string{"Electric vehicles", "Public transportation", "Walking and cycling", "Ride-sharing services"},
		CorrectAnswer: 2,
		Explanation:   "Active transportation refers to human-powered transport like walking and cycling, which provides health benefits while producing zero emissions.",
		Category:      domain.QuestTransport,
		Difficulty:    domain.DifficultyEasy,
	},

	// ── Biodiversity ───────────────────────────────────────────────────
	{
		ID:            "biodiversity-001",
		Question:      "What percentage of known species are currently threatened with extinction?",
		Options:       []string{"5%", "15%", "25%", "40%"},
		CorrectAnswer: 2,
		Explanation:   "Approximately 25% of known plant and animal species are currently threatened with extinction due to human activities and climate change.",
		Category:      domain.QuestBiodiversity,
		Difficulty:    domain.DifficultyMedium,
	},
	{
		ID:            "biodiversity-002",
		Question:      "Which of these is most important for supporting local biodiversity?",
		Options:       []string{"Planting exotic species", "Using pesticides", "Creating native plant gardens", "Building more roads"},
		CorrectAnswer: 2,
		Explanation:   "Native plant gardens provide food and habitat for local wildlife and are adapted to local climate conditions, supporting biodiversity.",
		Category:      domain.QuestBiodiversity,
		Difficulty:    domain.DifficultyEasy,
	},
	{
		ID:            "biodiversity-003",
		Question:      "What are pollinators essential for?",
		Options:       []string{"Cleaning the air", "Food production", "Water purification", "Soil formation"},
		CorrectAnswer: 1,
		Explanation:   "Pollinators like bees, butterflies, and birds are essential for food production, as they help plants reproduce by transferring pollen.",
		Category:      domain.QuestBiodiversity,
		Difficulty:    domain.DifficultyEasy,
	},
	{
		ID:            "biodiversity-004",
		Question:      "What is habitat fragmentation?",
		Options:       []string{"Animals moving to new areas", "Breaking up large habitats into smaller, isolated pieces", "Creating new habitats for wildlife", "Protecting endangered species"},
		CorrectAnswer: 1,
		Explanation:   "Habitat fragmentation occurs when large, continuous habitats are broken into smaller, isolated pieces, making it difficult for wildlife to survive and reproduce.",
		Category:      domain.QuestBiodiversity,
		Difficulty:    domain.DifficultyHard,
	},
}

// FilterQuestions returns bank entries matching the given filters.
// Empty filter values match everything.
func FilterQuestions(category domain.QuestType, difficulty domain.Difficulty) []domain.QuizQuestion {
	var out []domain.QuizQuestion
	for _, q := range Questions {
		if category != "" && q.Category != category {
			continue
		}
		if difficulty != "" && q.Difficulty != difficulty {
			continue
		}
		out = append(out, q)
	}
	return out
}

// SampleQuestions shuffles the filtered bank and returns up to count
// questions. When no entry matches the filters it samples the full bank.
func SampleQuestions(r *rand.Rand, count int, category domain.QuestType, difficulty domain.Difficulty) []domain.QuizQuestion {
	if count <= 0 {
		return nil
	}
	pool := FilterQuestions(category, difficulty)
	if len(pool) == 0 {
		pool = append([]domain.QuizQuestion(nil), Questions...)
	}
	shuffled := append([]domain.QuizQuestion(nil), pool...)
	r.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if count > len(shuffled) {
		count = len(shuffled)
	}
	return shuffled[:count]
}
