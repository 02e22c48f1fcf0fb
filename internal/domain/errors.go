package domain

import "errors"

// ─── Sentinel Errors ────────────────────────────────────────────────────────
// Domain errors are pure — no infrastructure dependency.
// Store mutations absorb unknown ids as silent no-ops; these sentinels
// exist for callers (API, CLI) that need to tell "nothing happened"
// apart from success.

var (
	ErrQuestNotFound = errors.New("quest not found")
	ErrGameNotFound  = errors.New("mini-game not found")
	ErrEmptyCatalog  = errors.New("no catalog entries match the given filters")
)
