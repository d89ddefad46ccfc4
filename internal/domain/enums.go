package domain

import (
	"fmt"
	"strings"
)

type ExportFormat string

const (
	ExportJSON ExportFormat = "json"
	ExportCSV  ExportFormat = "csv"
)

// ParseExportFormat accepts "csv" or "json" in any case.
func ParseExportFormat(s string) (ExportFormat, error) {
	switch f := ExportFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case ExportJSON, ExportCSV:
		return f, nil
	default:
		return "", fmt.Errorf("%q: %w (want csv or json)", s, ErrUnsupportedFormat)
	}
}

// DefaultFilename is the export filename used when no output path is given.
func (f ExportFormat) DefaultFilename() string {
	return "session_export." + string(f)
}
