package repository

import (
	"context"
	"errors"

	"github.com/luanbartole/kairos/internal/domain"
)

// ErrNotFound indicates the requested record does not exist.
var ErrNotFound = errors.New("not found")

// SessionStore persists the single current-session slot and the
// append-only log of completed sessions.
type SessionStore interface {
	// Current returns the running session, or ErrNotFound when the slot is
	// empty. A malformed record is treated as an empty slot.
	Current(ctx context.Context) (*domain.Session, error)
	// SaveCurrent overwrites the current-session slot.
	SaveCurrent(ctx context.Context, s *domain.Session) error
	// Complete appends s to the log and clears the current-session slot.
	Complete(ctx context.Context, s *domain.Session) error
	// List returns the log in insertion order. A missing or malformed log
	// yields an empty slice, never an error.
	List(ctx context.Context) ([]domain.Session, error)
}
