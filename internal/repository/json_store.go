package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/luanbartole/kairos/internal/domain"
)

// JSONFileStore keeps the current session and the session log as two
// pretty-printed JSON files. Writes are plain overwrites with no locking.
type JSONFileStore struct {
	currentPath string
	logPath     string
	logger      *slog.Logger
}

// JSONStoreOption configures a JSONFileStore.
type JSONStoreOption func(*JSONFileStore)

// WithLogger reports malformed files to logger instead of discarding them.
func WithLogger(logger *slog.Logger) JSONStoreOption {
	return func(s *JSONFileStore) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewJSONFileStore creates a store over the given current-session and log files.
func NewJSONFileStore(currentPath, logPath string, opts ...JSONStoreOption) *JSONFileStore {
	s := &JSONFileStore{
		currentPath: currentPath,
		logPath:     logPath,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *JSONFileStore) Current(ctx context.Context) (*domain.Session, error) {
	data, err := os.ReadFile(s.currentPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("current session: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("reading current session: %w", err)
	}

	var session domain.Session
	if err := json.Unmarshal(data, &session); err != nil || session.Start == "" {
		s.malformed(ctx, s.currentPath, err)
		return nil, fmt.Errorf("current session: %w", ErrNotFound)
	}
	return &session, nil
}

func (s *JSONFileStore) SaveCurrent(ctx context.Context, session *domain.Session) error {
	if err := writeJSON(s.currentPath, session); err != nil {
		return fmt.Errorf("saving current session: %w", err)
	}
	return nil
}

// Complete appends session to the log and clears the current slot. Records
// already in the log are written back verbatim, including ones List skips.
func (s *JSONFileStore) Complete(ctx context.Context, session *domain.Session) error {
	records, err := s.readLog(ctx)
	if err != nil {
		return err
	}

	record, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	records = append(records, record)

	if err := writeJSON(s.logPath, records); err != nil {
		return fmt.Errorf("appending to session log: %w", err)
	}
	if err := os.Remove(s.currentPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing current session: %w", err)
	}
	return nil
}

// List decodes the log record by record. Records that do not fit a
// Session are skipped and logged; they stay in the file.
func (s *JSONFileStore) List(ctx context.Context) ([]domain.Session, error) {
	records, err := s.readLog(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrMalformedStore) {
			s.malformed(ctx, s.logPath, err)
			return []domain.Session{}, nil
		}
		return nil, err
	}

	sessions := make([]domain.Session, 0, len(records))
	for i, record := range records {
		var session domain.Session
		if err := json.Unmarshal(record, &session); err != nil {
			s.logger.WarnContext(ctx, "skipping session log record",
				"path", s.logPath, "index", i, "cause", err.Error())
			continue
		}
		sessions = append(sessions, session)
	}
	return sessions, nil
}

// readLog returns the raw log records. A missing, empty, or syntactically
// broken file reads as no records. Valid JSON that is not an array wraps
// domain.ErrMalformedStore so Complete never overwrites it.
func (s *JSONFileStore) readLog(ctx context.Context) ([]json.RawMessage, error) {
	data, err := os.ReadFile(s.logPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading session log: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	if !json.Valid(data) {
		s.malformed(ctx, s.logPath, nil)
		return nil, nil
	}

	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("session log %s is not a list: %w", s.logPath, domain.ErrMalformedStore)
	}
	return records, nil
}

func (s *JSONFileStore) malformed(ctx context.Context, path string, cause error) {
	attrs := []any{"path", path, "error", domain.ErrMalformedStore.Error()}
	if cause != nil {
		attrs = append(attrs, "cause", cause.Error())
	}
	s.logger.WarnContext(ctx, "treating store file as empty", attrs...)
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", filepath.Base(path), err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}
