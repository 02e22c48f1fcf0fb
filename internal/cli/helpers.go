package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ecoquest-app/ecoquest/internal/app/progression"
	"github.com/ecoquest-app/ecoquest/internal/daemon"
	"github.com/ecoquest-app/ecoquest/internal/infra/sqlite"
)

// openStore opens the local game state for direct CLI use, without
// going through the HTTP API. Caller must invoke the returned cleanup.
func openStore() (*progression.Store, func(), error) {
	cfg, err := daemon.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	dataDir := cfg.Data.Dir
	if dataDir == "" {
		dataDir = filepath.Join(daemon.EcoquestHome(), "data")
	}

	db, err := sqlite.Open(dataDir)
	if err != nil {
		return nil, nil, fmt.Errorf("open game state: %w", err)
	}

	store := progression.NewStore(db)
	if err := store.Initialize(); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("initialize game state: %w", err)
	}

	return store, func() { db.Close() }, nil
}

// levelBar renders progress through the current level as a fixed-width
// bar: [=========>....................].
func levelBar(progress float64, width int) string {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}

	filled := int(progress * float64(width))
	if filled >= width {
		return "[" + strings.Repeat("=", width) + "]"
	}
	if filled > 0 {
		return "[" + strings.Repeat("=", filled-1) + ">" + strings.Repeat(".", width-filled) + "]"
	}
	return "[" + strings.Repeat(".", width) + "]"
}
