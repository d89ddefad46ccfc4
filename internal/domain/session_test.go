package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2025, 6, 16, 9, 0, 0, 0, time.UTC)

func TestNewSession_StampsDateAndStart(t *testing.T) {
	s := NewSession("Write report", "Work", DefaultTag, testNow)
	assert.Equal(t, "2025-06-16", s.Date)
	assert.Equal(t, "09:00", s.Start)
	assert.Equal(t, "Write report", s.Task)
	assert.Equal(t, "work", s.Tag)
	assert.Empty(t, s.End)
	assert.Empty(t, s.Duration)
	assert.False(t, s.Completed())
}

func TestNormalizeTag(t *testing.T) {
	cases := []struct {
		tag, fallback, want string
	}{
		{"Work", "general", "work"},
		{"  Deep Work ", "general", "deep work"},
		{"", "general", "general"},
		{"   ", "Misc", "misc"},
		{"", "", DefaultTag},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeTag(tc.tag, tc.fallback), "tag=%q fallback=%q", tc.tag, tc.fallback)
	}
}

func TestFinish_SetsEndAndDuration(t *testing.T) {
	s := NewSession("Write report", "work", "", testNow)
	s.Finish(testNow.Add(90*time.Minute + 40*time.Second))

	assert.Equal(t, "10:30", s.End)
	assert.Equal(t, "01:30", s.Duration)
	assert.True(t, s.Completed())
}

func TestFinish_AcrossMidnightIsNegative(t *testing.T) {
	s := &Session{Date: "2025-06-16", Start: "23:45", Task: "late", Tag: "general"}
	s.Finish(time.Date(2025, 6, 17, 0, 15, 0, 0, time.UTC))

	assert.Equal(t, "00:15", s.End)
	assert.Equal(t, "-23:30", s.Duration)
}

func TestFieldsAndValuesAlign(t *testing.T) {
	s := Session{Date: "2025-06-16", Start: "09:00", Task: "t", Tag: "g", End: "10:00", Duration: "01:00"}
	assert.Equal(t, []string{"date", "start", "task", "tag", "end", "duration"}, s.Fields())
	assert.Equal(t, []string{"2025-06-16", "09:00", "t", "g", "10:00", "01:00"}, s.Values(s.Fields()))
}

func TestFieldsFollowPersistedKeys(t *testing.T) {
	running := Session{Date: "2025-06-16", Start: "09:00", Task: "t", Tag: "g"}
	assert.Equal(t, []string{"date", "start", "task", "tag"}, running.Fields())

	done := Session{Date: "2025-06-16", Start: "09:00", Task: "t", Tag: "g", End: "10:00", Duration: "01:00"}
	assert.Equal(t, []string{"2025-06-16", "t"}, done.Values([]string{"date", "task"}))
	assert.Equal(t, []string{""}, done.Values([]string{"note"}))
}

func TestParseExportFormat(t *testing.T) {
	f, err := ParseExportFormat("CSV")
	assert.NoError(t, err)
	assert.Equal(t, ExportCSV, f)
	assert.Equal(t, "session_export.csv", f.DefaultFilename())

	_, err = ParseExportFormat("xml")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestDirectoryMissingError(t *testing.T) {
	var err error = &DirectoryMissingError{Dir: "out/reports"}
	assert.ErrorIs(t, err, ErrDirectoryMissing)
	assert.Contains(t, err.Error(), "out/reports")
}
