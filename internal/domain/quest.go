package domain

import "time"

// ─── Quest Types ────────────────────────────────────────────────────────────

// QuestType is the eco category a quest belongs to.
type QuestType string

const (
	QuestWaste        QuestType = "waste"
	QuestWater        QuestType = "water"
	QuestEnergy       QuestType = "energy"
	QuestTransport    QuestType = "transport"
	QuestBiodiversity QuestType = "biodiversity"
)

// QuestTypes lists every category in canonical order.
func QuestTypes() []QuestType {
	return []QuestType{QuestWaste, QuestWater, QuestEnergy, QuestTransport, QuestBiodiversity}
}

// Difficulty grades a quest, question, or mini-game.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// QuestStatus is the quest lifecycle state.
// available → in-progress → available is reversible (pause);
// available|in-progress → completed is terminal.
type QuestStatus string

const (
	QuestAvailable  QuestStatus = "available"
	QuestInProgress QuestStatus = "in-progress"
	QuestCompleted  QuestStatus = "completed"
)

// Quest is one instantiated eco-challenge.
type Quest struct {
	ID            string      `json:"id"`
	Title         string      `json:"title"`
	Description   string      `json:"description"`
	Type          QuestType   `json:"type"`
	Difficulty    Difficulty  `json:"difficulty"`
	XPReward      int         `json:"xpReward"`
	Realm         string      `json:"realm"`
	Status        QuestStatus `json:"status"`
	CompletedAt   *time.Time  `json:"completedAt,omitempty"`
	CreatedAt     time.Time   `json:"createdAt"`
	IsAIGenerated bool        `json:"isAIGenerated"`
}

// IsCompleted reports whether the quest reached its terminal state.
func (q Quest) IsCompleted() bool {
	return q.Status == QuestCompleted
}

// QuestTemplate is a catalog or generator entry a Quest is instantiated
// from. It carries everything but lifecycle fields.
type QuestTemplate struct {
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Type          QuestType  `json:"type"`
	Difficulty    Difficulty `json:"difficulty"`
	XPReward      int        `json:"xpReward"`
	Realm         string     `json:"realm"`
	IsAIGenerated bool       `json:"isAIGenerated"`
}

// Instantiate copies the template into a fresh available Quest.
func (t QuestTemplate) Instantiate(id string, now time.Time) Quest {
	return Quest{
		ID:            id,
		Title:         t.Title,
		Description:   t.Description,
		Type:          t.Type,
		Difficulty:    t.Difficulty,
		XPReward:      t.XPReward,
		Realm:         t.Realm,
		Status:        QuestAvailable,
		CreatedAt:     now,
		IsAIGenerated: t.IsAIGenerated,
	}
}

// QuestUpdate is a partial quest edit applied by UpdateQuest.
type QuestUpdate struct {
	Title       *string      `json:"title,omitempty"`
	Description *string      `json:"description,omitempty"`
	Status      *QuestStatus `json:"status,omitempty"`
}
