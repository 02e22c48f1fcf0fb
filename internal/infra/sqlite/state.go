package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/ecoquest-app/ecoquest/internal/domain"
)

// SaveState writes the full game state snapshot, replacing any
// previous one.
func (d *DB) SaveState(state domain.GameState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	_, err = d.db.Exec(
		`INSERT INTO game_state (id, payload, saved_at) VALUES (1, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET payload=excluded.payload, saved_at=excluded.saved_at`,
		string(payload), time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	return nil
}

// LoadState reads the saved snapshot. Returns (nil, nil) when no save
// exists, and also when the payload is unreadable: a corrupt save is
// logged and treated as absent rather than wedging startup.
func (d *DB) LoadState() (*domain.GameState, error) {
	var payload string
	err := d.db.QueryRow(`SELECT payload FROM game_state WHERE id = 1`).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read state: %w", err)
	}

	var snap snapshot
	if err := json.Unmarshal([]byte(payload), &snap); err != nil {
		log.Printf("[sqlite] corrupt state snapshot, discarding: %v", err)
		return nil, nil
	}

	state := snap.toState()
	return &state, nil
}

// ClearState removes the saved snapshot.
func (d *DB) ClearState() error {
	_, err := d.db.Exec(`DELETE FROM game_state WHERE id = 1`)
	return err
}

// ─── Snapshot Decoding ──────────────────────────────────────────────────────

// playerSnapshot shadows the optional profile sections with pointers so
// saves written before those sections existed load with sane defaults.
type playerSnapshot struct {
	domain.PlayerProfile
	Preferences   *domain.Preferences  `json:"preferences"`
	PersonalGoals *[]string            `json:"personalGoals"`
	Stats         *domain.PlayerStats  `json:"stats"`
	WeeklyTarget  *domain.WeeklyTarget `json:"weeklyTarget"`
}

type snapshot struct {
	Player         playerSnapshot         `json:"player"`
	Quests         []domain.Quest         `json:"quests"`
	Achievements   []domain.Achievement   `json:"achievements"`
	QuizSessions   []domain.QuizSession   `json:"quizSessions"`
	MiniGameScores []domain.MiniGameScore `json:"miniGameScores"`
	LastUpdated    time.Time              `json:"lastUpdated"`
}

func (s snapshot) toState() domain.GameState {
	player := s.Player.PlayerProfile

	if s.Player.Preferences != nil {
		player.Preferences = *s.Player.Preferences
	} else {
		player.Preferences = domain.DefaultPreferences()
	}
	if s.Player.PersonalGoals != nil {
		player.PersonalGoals = *s.Player.PersonalGoals
	} else {
		player.PersonalGoals = []string{}
	}
	if s.Player.Stats != nil {
		player.Stats = *s.Player.Stats
	}
	if s.Player.WeeklyTarget != nil {
		player.WeeklyTarget = *s.Player.WeeklyTarget
	} else {
		player.WeeklyTarget = domain.WeeklyTarget{
			ChallengesPerWeek: 3,
			WeekStartDate:     time.Now().UTC().Truncate(24 * time.Hour),
		}
	}

	state := domain.GameState{
		Player:         player,
		Quests:         s.Quests,
		Achievements:   s.Achievements,
		QuizSessions:   s.QuizSessions,
		MiniGameScores: s.MiniGameScores,
		LastUpdated:    s.LastUpdated,
	}
	if state.Quests == nil {
		state.Quests = []domain.Quest{}
	}
	if state.Achievements == nil {
		state.Achievements = []domain.Achievement{}
	}
	if state.QuizSessions == nil {
		state.QuizSessions = []domain.QuizSession{}
	}
	if state.MiniGameScores == nil {
		state.MiniGameScores = []domain.MiniGameScore{}
	}
	return state
}
