// Package metrics provides Prometheus metrics for EcoQuest: counters
// and gauges for progression activity and snapshot persistence.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ─── Progression ────────────────────────────────────────────────────────────

// QuestsCompleted tracks completed quests by eco category.
var QuestsCompleted = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "ecoquest",
	Name:      "quests_completed_total",
	Help:      "Total completed quests.",
}, []string{"type"})

// XPEarned tracks XP credited by source.
var XPEarned = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "ecoquest",
	Name:      "xp_earned_total",
	Help:      "Total XP earned.",
}, []string{"source"})

// QuizSessions tracks completed quiz sessions.
var QuizSessions = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "ecoquest",
	Name:      "quiz_sessions_total",
	Help:      "Total completed quiz sessions.",
})

// MiniGamePlays tracks completed mini-game plays.
var MiniGamePlays = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "ecoquest",
	Name:      "minigame_plays_total",
	Help:      "Total mini-game plays recorded.",
})

// AchievementsUnlocked tracks badge unlocks.
var AchievementsUnlocked = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "ecoquest",
	Name:      "achievements_unlocked_total",
	Help:      "Total achievements unlocked.",
})

// PlayerLevel tracks the current player level.
var PlayerLevel = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "ecoquest",
	Name:      "player_level",
	Help:      "Current player level.",
})

// ─── Persistence ────────────────────────────────────────────────────────────

// SnapshotSaves tracks successful state snapshot writes.
var SnapshotSaves = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "ecoquest",
	Name:      "snapshot_saves_total",
	Help:      "Total successful game-state snapshot writes.",
})

// SnapshotSaveFailures tracks failed snapshot writes. Failures are
// logged and absorbed; in-memory state stays authoritative.
var SnapshotSaveFailures = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "ecoquest",
	Name:      "snapshot_save_failures_total",
	Help:      "Total failed game-state snapshot writes.",
})

// ─── Generator ──────────────────────────────────────────────────────────────

// GeneratorFallbacks tracks remote-generator failures that fell back to
// the static catalog.
var GeneratorFallbacks = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "ecoquest",
	Name:      "generator_fallbacks_total",
	Help:      "Total generator calls served from the static catalog after a remote failure.",
})
