package service

import (
	"context"

	"github.com/luanbartole/kairos/internal/domain"
)

// TrackerService drives the session lifecycle.
type TrackerService interface {
	Start(ctx context.Context, task, tag string) (string, error)
	Stop(ctx context.Context) (string, error)
	Status(ctx context.Context) (*Status, error)
	Sessions(ctx context.Context) ([]domain.Session, error)
}

type SummaryService interface {
	Today(ctx context.Context) (*DailySummary, error)
	Weekly(ctx context.Context) (*WeeklySummary, error)
}

type ExportService interface {
	Export(ctx context.Context, format domain.ExportFormat, outputPath string) (string, error)
}

// SessionSource supplies the completed-session log. TrackerService
// satisfies it.
type SessionSource interface {
	Sessions(ctx context.Context) ([]domain.Session, error)
}
