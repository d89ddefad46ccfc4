package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/luanbartole/kairos/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points KAIROS_CONFIG at a path that does not exist and clears
// every override so the host environment cannot leak into a test.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("KAIROS_CONFIG", filepath.Join(dir, "missing.yaml"))
	for _, k := range []string{"KAIROS_DATA_DIR", "KAIROS_STORE", "KAIROS_DEFAULT_TAG", "KAIROS_EXPORT_FORMAT", "KAIROS_LOG_CALLS"} {
		t.Setenv(k, "")
	}
	return dir
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, ".", cfg.DataDir)
	assert.Equal(t, StoreJSON, cfg.Store)
	assert.Equal(t, "general", cfg.DefaultTag)
	assert.Equal(t, domain.ExportJSON, cfg.ExportFormat)
	assert.False(t, cfg.LogCalls)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_ReadsYAMLFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data_dir: /tmp/kairos\nstore: sqlite\ndefault_tag: misc\nexport_format: csv\nlog_calls: true\n"), 0o644))
	t.Setenv("KAIROS_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/kairos", cfg.DataDir)
	assert.Equal(t, StoreSQLite, cfg.Store)
	assert.Equal(t, "misc", cfg.DefaultTag)
	assert.Equal(t, domain.ExportCSV, cfg.ExportFormat)
	assert.True(t, cfg.LogCalls)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("store: sqlite\ndefault_tag: misc\n"), 0o644))
	t.Setenv("KAIROS_CONFIG", path)
	t.Setenv("KAIROS_STORE", "json")
	t.Setenv("KAIROS_DATA_DIR", dir)
	t.Setenv("KAIROS_LOG_CALLS", "1")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StoreJSON, cfg.Store)
	assert.Equal(t, "misc", cfg.DefaultTag)
	assert.Equal(t, dir, cfg.DataDir)
	assert.True(t, cfg.LogCalls)
	assert.Equal(t, filepath.Join(dir, "sessions.json"), cfg.SessionLogPath())
	assert.Equal(t, filepath.Join(dir, "current_session.json"), cfg.CurrentSessionPath())
	assert.Equal(t, filepath.Join(dir, "kairos.db"), cfg.DatabasePath())
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("store: [unterminated\n"), 0o644))
	t.Setenv("KAIROS_CONFIG", path)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config file")
}

func TestLoad_RejectsUnknownValues(t *testing.T) {
	isolate(t)
	t.Setenv("KAIROS_STORE", "postgres")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("KAIROS_STORE", "")
	t.Setenv("KAIROS_EXPORT_FORMAT", "xml")
	_, err = Load()
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}
