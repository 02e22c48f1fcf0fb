// Package domain holds the EcoQuest data model.
// The progression engine mutates one GameState aggregate; everything in
// this package is plain data with small derived helpers.
package domain

import "time"

// ─── Player Types ───────────────────────────────────────────────────────────

// ExperienceLevel is the player's self-declared comfort level.
type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceAdvanced     ExperienceLevel = "advanced"
)

// AvailableTime buckets how much time the player has per session.
type AvailableTime string

const (
	Time5To10  AvailableTime = "5-10min"
	Time10To20 AvailableTime = "10-20min"
	Time20To30 AvailableTime = "20-30min"
	Time30Plus AvailableTime = "30min+"
)

// Location is optional onboarding data used for climate-specific tips.
type Location struct {
	City    string `json:"city,omitempty"`
	Climate string `json:"climate,omitempty"` // "tropical", "arid", "temperate", "polar"
}

// Preferences captures what the player declared during onboarding.
// Set once by the onboarding flow, mutable afterward via UpdatePlayer.
type Preferences struct {
	Interests           []QuestType     `json:"interests"`
	ExperienceLevel     ExperienceLevel `json:"experienceLevel"`
	PrimaryGoals        []string        `json:"primaryGoals"`
	AvailableTime       AvailableTime   `json:"availableTime"`
	PreferredActivities []string        `json:"preferredActivities"`
	Location            *Location       `json:"location,omitempty"`
	Motivations         []string        `json:"motivations"`
}

// DefaultPreferences returns the preferences a fresh (or pre-onboarding)
// profile starts with.
func DefaultPreferences() Preferences {
	return Preferences{
		Interests:           []QuestType{},
		ExperienceLevel:     ExperienceBeginner,
		PrimaryGoals:        []string{},
		AvailableTime:       Time10To20,
		PreferredActivities: []string{},
		Motivations:         []string{},
	}
}

// PlayerStats holds lifetime activity counters plus derived impact
// numbers. Impact fields are recomputed from the completed-quest count,
// never accumulated incrementally.
type PlayerStats struct {
	ChallengesCompleted int     `json:"challengesCompleted"`
	QuizzesCompleted    int     `json:"quizzesCompleted"`
	MiniGamesPlayed     int     `json:"miniGamesPlayed"`
	BadgesEarned        int     `json:"badgesEarned"`
	CO2Saved            float64 `json:"co2Saved"`        // kg
	MoneySaved          float64 `json:"moneySaved"`      // dollars
	TreesEquivalent     float64 `json:"treesEquivalent"` // trees planted equivalent
}

// WeeklyTarget tracks progress against the player's weekly challenge goal.
// The week window is [WeekStartDate, WeekStartDate+7d).
type WeeklyTarget struct {
	ChallengesPerWeek   int       `json:"challengesPerWeek"`
	CurrentWeekProgress int       `json:"currentWeekProgress"`
	WeekStartDate       time.Time `json:"weekStartDate"`
}

// PlayerProfile is the per-installation player record.
// Invariants: LongestStreak >= CurrentStreak, and Level always equals
// the recomputation from TotalXP (the store re-derives it on every XP
// mutation).
type PlayerProfile struct {
	ID                   string          `json:"id"`
	Name                 string          `json:"name"`
	DisplayName          string          `json:"displayName,omitempty"`
	Level                int             `json:"level"`
	TotalXP              int             `json:"totalXP"`
	CurrentStreak        int             `json:"currentStreak"`
	LongestStreak        int             `json:"longestStreak"`
	JoinedAt             time.Time       `json:"joinedAt"`
	LastActiveAt         time.Time       `json:"lastActiveAt"`
	IsOnboardingComplete bool            `json:"isOnboardingComplete"`
	Preferences          Preferences     `json:"preferences"`
	PersonalGoals        []string        `json:"personalGoals"`
	Stats                PlayerStats     `json:"stats"`
	WeeklyTarget         WeeklyTarget    `json:"weeklyTarget"`
}

// Clone returns a deep copy, including the optional location.
func (p Preferences) Clone() Preferences {
	out := p
	out.Interests = append([]QuestType(nil), p.Interests...)
	out.PrimaryGoals = append([]string(nil), p.PrimaryGoals...)
	out.PreferredActivities = append([]string(nil), p.PreferredActivities...)
	out.Motivations = append([]string(nil), p.Motivations...)
	if p.Location != nil {
		loc := *p.Location
		out.Location = &loc
	}
	return out
}

// Clone returns a deep copy of the profile.
func (p PlayerProfile) Clone() PlayerProfile {
	out := p
	out.Preferences = p.Preferences.Clone()
	out.PersonalGoals = append([]string(nil), p.PersonalGoals...)
	return out
}

// PlayerUpdate is a partial profile edit applied by UpdatePlayer.
// Nil fields are left untouched (shallow merge).
type PlayerUpdate struct {
	Name                 *string       `json:"name,omitempty"`
	DisplayName          *string       `json:"displayName,omitempty"`
	IsOnboardingComplete *bool         `json:"isOnboardingComplete,omitempty"`
	Preferences          *Preferences  `json:"preferences,omitempty"`
	PersonalGoals        *[]string     `json:"personalGoals,omitempty"`
	WeeklyTarget         *WeeklyTarget `json:"weeklyTarget,omitempty"`
}
