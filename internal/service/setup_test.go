package service

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/luanbartole/kairos/internal/domain"
	"github.com/luanbartole/kairos/internal/repository"
	"github.com/stretchr/testify/require"
)

// monday09 is Monday 2025-06-16 09:00 local time.
var monday09 = time.Date(2025, 6, 16, 9, 0, 0, 0, time.Local)

func newJSONStore(t *testing.T) *repository.JSONFileStore {
	t.Helper()
	dir := t.TempDir()
	return repository.NewJSONFileStore(filepath.Join(dir, "current_session.json"), filepath.Join(dir, "sessions.json"))
}

// seedLog appends completed sessions straight into the store.
func seedLog(t *testing.T, store repository.SessionStore, sessions ...domain.Session) {
	t.Helper()
	for i := range sessions {
		require.NoError(t, store.Complete(context.Background(), &sessions[i]))
	}
}

// staticSource is a SessionSource over a fixed slice.
type staticSource []domain.Session

func (s staticSource) Sessions(context.Context) ([]domain.Session, error) {
	return s, nil
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, event)
}

func (o *recordingObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.events[len(o.events)-1]
}
