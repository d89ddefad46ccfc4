package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/luanbartole/kairos/internal/db"
	"github.com/luanbartole/kairos/internal/domain"
)

// NewTestDB creates an in-memory SQLite database with the session schema
// applied. The database is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewTestUoW creates a UnitOfWork backed by the given test database.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}

// SeedLoggedSessions inserts completed sessions straight into the sessions
// table, bypassing the store, in the order given.
func SeedLoggedSessions(t *testing.T, conn db.DBTX, sessions ...domain.Session) {
	t.Helper()
	const insert = `INSERT INTO sessions (id, date, start, task, tag, end_time, duration, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, datetime('now'))`
	for _, s := range sessions {
		_, err := conn.ExecContext(context.Background(), insert,
			uuid.New().String(), s.Date, s.Start, s.Task, s.Tag, s.End, s.Duration)
		if err != nil {
			t.Fatalf("seeding session %q: %v", s.Task, err)
		}
	}
}

// SeedRunningSession fills the current-session slot directly.
func SeedRunningSession(t *testing.T, conn db.DBTX, s domain.Session) {
	t.Helper()
	_, err := conn.ExecContext(context.Background(),
		`INSERT INTO current_session (slot, date, start, task, tag) VALUES (1, ?, ?, ?, ?)`,
		s.Date, s.Start, s.Task, s.Tag)
	if err != nil {
		t.Fatalf("seeding running session %q: %v", s.Task, err)
	}
}
