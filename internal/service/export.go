package service

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/luanbartole/kairos/internal/domain"
)

type exportService struct {
	sessions      SessionSource
	defaultFormat domain.ExportFormat
	observer      UseCaseObserver
}

// NewExportService creates the exporter. An empty defaultFormat means JSON.
func NewExportService(sessions SessionSource, defaultFormat domain.ExportFormat, observers ...UseCaseObserver) ExportService {
	if defaultFormat == "" {
		defaultFormat = domain.ExportJSON
	}
	return &exportService{
		sessions:      sessions,
		defaultFormat: defaultFormat,
		observer:      useCaseObserverOrNoop(observers),
	}
}

// Export writes the full session log to outputPath. An empty format uses the
// default; an empty path uses the format's default filename. A missing
// parent directory is reported as *domain.DirectoryMissingError and nothing
// is created: the caller decides whether to create it and call again.
func (s *exportService) Export(ctx context.Context, format domain.ExportFormat, outputPath string) (msg string, err error) {
	fields := map[string]any{}
	defer observe(ctx, s.observer, "export", time.Now(), fields, &err)

	if format == "" {
		format = s.defaultFormat
	}
	if format, err = domain.ParseExportFormat(string(format)); err != nil {
		return "", err
	}
	fields["format"] = string(format)

	sessions, err := s.sessions.Sessions(ctx)
	if err != nil {
		return "", err
	}
	if len(sessions) == 0 {
		return "", domain.ErrNothingToExport
	}

	path, err := resolveExportPath(format, outputPath)
	if err != nil {
		return "", err
	}
	fields["path"] = path
	fields["sessions"] = len(sessions)

	switch format {
	case domain.ExportCSV:
		err = writeCSV(path, sessions)
	default:
		err = writeJSON(path, sessions)
	}
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Exported %d sessions as %s to %s", len(sessions), strings.ToUpper(string(format)), path), nil
}

func resolveExportPath(format domain.ExportFormat, outputPath string) (string, error) {
	if outputPath == "" {
		return format.DefaultFilename(), nil
	}
	if info, err := os.Stat(outputPath); err == nil && info.IsDir() {
		return filepath.Join(outputPath, format.DefaultFilename()), nil
	}

	dir := filepath.Dir(outputPath)
	if _, err := os.Stat(dir); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", &domain.DirectoryMissingError{Dir: dir}
		}
		return "", fmt.Errorf("checking export directory: %w", err)
	}
	return outputPath, nil
}

// writeCSV uses the first record's persisted keys as the header. Later rows
// are written in that column order.
func writeCSV(path string, sessions []domain.Session) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating csv export: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing csv export: %w", cerr)
		}
	}()

	w := csv.NewWriter(f)
	header := sessions[0].Fields()
	if err := w.Write(header); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, session := range sessions {
		if err := w.Write(session.Values(header)); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing csv export: %w", err)
	}
	return nil
}

func writeJSON(path string, sessions []domain.Session) error {
	data, err := json.MarshalIndent(sessions, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding json export: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing json export: %w", err)
	}
	return nil
}
