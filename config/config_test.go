package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "{}\n"))
	require.NoError(t, err)

	assert.Equal(t, 80.0, cfg.Pricing.BaseRate)
	assert.Equal(t, 0.95, cfg.Pricing.FloorRatio)
	assert.Equal(t, 5.0, cfg.Pricing.NoiseAmplitude)
	assert.Equal(t, 5, cfg.Scenarios.Count)
	assert.Equal(t, 0, cfg.Scenarios.Workers)
	assert.Equal(t, 365, cfg.Projection.HorizonDays)
	assert.Equal(t, 10, cfg.Projection.ShowDays)
	assert.Equal(t, "https://www.booking.com/searchresults.html", cfg.Competitor.SearchURL)
	assert.Equal(t, 45*time.Second, cfg.ScrapeTimeout())
	assert.Equal(t, 3*time.Second, cfg.RenderWait())
	assert.Equal(t, 6, cfg.Competitor.RequestsPerMinute)
	assert.Equal(t, 2, cfg.Competitor.MaxRetries)
	assert.False(t, cfg.Inputs.Strict)
	assert.False(t, cfg.Storage.Enabled)
	assert.Equal(t, "ratepilot.db", cfg.Storage.DSN)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_FileValues(t *testing.T) {
	path := writeConfig(t, `
pricing:
  base_rate: 95
  floor_ratio: 0.9
  noise_amplitude: 2.5
scenarios:
  count: 8
  workers: 3
projection:
  horizon_days: 90
  show_days: 7
inputs:
  strict: true
storage:
  enabled: true
  dsn: ":memory:"
log:
  level: debug
  format: json
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 95.0, cfg.Pricing.BaseRate)
	assert.Equal(t, 0.9, cfg.Pricing.FloorRatio)
	assert.Equal(t, 2.5, cfg.Pricing.NoiseAmplitude)
	assert.Equal(t, 8, cfg.Scenarios.Count)
	assert.Equal(t, 3, cfg.Scenarios.Workers)
	assert.Equal(t, 90, cfg.Projection.HorizonDays)
	assert.Equal(t, 7, cfg.Projection.ShowDays)
	assert.True(t, cfg.Inputs.Strict)
	assert.True(t, cfg.Storage.Enabled)
	assert.Equal(t, ":memory:", cfg.Storage.DSN)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("RATEPILOT_DB_DSN", "/tmp/runs.db")
	t.Setenv("RATEPILOT_SEARCH_URL", "https://example.com/search")

	cfg, err := Load(writeConfig(t, "log:\n  level: debug\n"))
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "/tmp/runs.db", cfg.Storage.DSN)
	assert.Equal(t, "https://example.com/search", cfg.Competitor.SearchURL)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "pricing: [unclosed\n"))
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	t.Setenv("RATEPILOT_DB_DSN", "env.db")

	cfg := Default()
	assert.Equal(t, 80.0, cfg.Pricing.BaseRate)
	assert.Equal(t, "env.db", cfg.Storage.DSN)
}
