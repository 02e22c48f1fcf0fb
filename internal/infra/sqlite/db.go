// Package sqlite provides SQLite-based persistent storage for EcoQuest.
// Uses WAL mode for concurrent reads and crash-safe writes. The game
// state is stored as a single JSON snapshot in a one-row table; the
// store mutates in memory and writes the whole aggregate after every
// change.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver (no CGO required)
)

// DB wraps a SQLite connection with WAL mode and migrations.
type DB struct {
	db *sql.DB
}

// Open creates or opens the SQLite database at dir/state.db.
// Enables WAL mode and a 5-second busy timeout.
func Open(dir string) (*DB, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dir, "state.db")
	dsn := dbPath + "?_journal_mode=WAL&_busy_timeout=5000"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	// Connection pool settings for SQLite
	db.SetMaxOpenConns(1) // SQLite is single-writer
	db.SetMaxIdleConns(1)

	d := &DB{db: db}
	if err := d.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return d, nil
}

// Close cleanly shuts down the database.
func (d *DB) Close() error {
	return d.db.Close()
}

// Ping checks database connectivity.
func (d *DB) Ping() error {
	return d.db.Ping()
}

// migrate runs idempotent schema migrations.
func (d *DB) migrate() error {
	migrations := []string{
		// Single-slot game state snapshot
		`CREATE TABLE IF NOT EXISTS game_state (
			id       INTEGER PRIMARY KEY CHECK (id = 1),
			payload  TEXT NOT NULL,
			saved_at INTEGER NOT NULL
		)`,

		// Installation metadata (schema version, instance id)
		`CREATE TABLE IF NOT EXISTS app_info (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
	}

	for _, m := range migrations {
		if _, err := d.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\nSQL: %s", err, m)
		}
	}
	return nil
}

// ─── App Info ───────────────────────────────────────────────────────────────

// SetAppInfo stores a key-value pair in app_info.
func (d *DB) SetAppInfo(key, value string) error {
	_, err := d.db.Exec(
		`INSERT INTO app_info (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value=excluded.value`,
		key, value,
	)
	return err
}

// GetAppInfo retrieves a value from app_info. Missing keys return "".
func (d *DB) GetAppInfo(key string) (string, error) {
	var value string
	err := d.db.QueryRow(`SELECT value FROM app_info WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return value, err
}
