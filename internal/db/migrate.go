package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Every statement is idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	// Single-slot table: the CHECK on slot keeps at most one running session.
	`CREATE TABLE IF NOT EXISTS current_session (
		slot       INTEGER PRIMARY KEY CHECK(slot = 1),
		date       TEXT NOT NULL,
		start      TEXT NOT NULL,
		task       TEXT NOT NULL,
		tag        TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS sessions (
		seq        INTEGER PRIMARY KEY AUTOINCREMENT,
		id         TEXT NOT NULL UNIQUE,
		date       TEXT NOT NULL,
		start      TEXT NOT NULL,
		task       TEXT NOT NULL,
		tag        TEXT NOT NULL,
		end_time   TEXT NOT NULL,
		duration   TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_sessions_date ON sessions(date)`,
}
