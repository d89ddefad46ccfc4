package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/luanbartole/kairos/internal/db"
	"github.com/luanbartole/kairos/internal/domain"
)

const listSessionsQuery = `SELECT date, start, task, tag, end_time, duration FROM sessions ORDER BY seq`

// SQLiteSessionStore implements SessionStore using a SQLite database.
type SQLiteSessionStore struct {
	db  db.DBTX
	uow db.UnitOfWork
}

// NewSQLiteSessionStore creates a SQLiteSessionStore. Complete runs inside uow.
func NewSQLiteSessionStore(conn db.DBTX, uow db.UnitOfWork) *SQLiteSessionStore {
	return &SQLiteSessionStore{db: conn, uow: uow}
}

func (r *SQLiteSessionStore) Current(ctx context.Context) (*domain.Session, error) {
	query := `SELECT date, start, task, tag FROM current_session WHERE slot = 1`
	var s domain.Session
	err := r.db.QueryRowContext(ctx, query).Scan(&s.Date, &s.Start, &s.Task, &s.Tag)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("current session: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning current session: %w", err)
	}
	return &s, nil
}

func (r *SQLiteSessionStore) SaveCurrent(ctx context.Context, s *domain.Session) error {
	query := `INSERT INTO current_session (slot, date, start, task, tag) VALUES (1, ?, ?, ?, ?)
		ON CONFLICT(slot) DO UPDATE SET date = excluded.date, start = excluded.start,
			task = excluded.task, tag = excluded.tag`
	if _, err := r.db.ExecContext(ctx, query, s.Date, s.Start, s.Task, s.Tag); err != nil {
		return fmt.Errorf("saving current session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionStore) Complete(ctx context.Context, s *domain.Session) error {
	return r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		insert := `INSERT INTO sessions (id, date, start, task, tag, end_time, duration, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
		_, err := tx.ExecContext(ctx, insert,
			uuid.New().String(),
			s.Date,
			s.Start,
			s.Task,
			s.Tag,
			s.End,
			s.Duration,
			nowUTC(),
		)
		if err != nil {
			return fmt.Errorf("inserting session: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM current_session WHERE slot = 1`); err != nil {
			return fmt.Errorf("clearing current session: %w", err)
		}
		return nil
	})
}

func (r *SQLiteSessionStore) List(ctx context.Context) ([]domain.Session, error) {
	rows, err := r.db.QueryContext(ctx, listSessionsQuery)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	defer rows.Close()

	sessions := []domain.Session{}
	for rows.Next() {
		s, err := scanLoggedSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning session row: %w", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}
	return sessions, nil
}
