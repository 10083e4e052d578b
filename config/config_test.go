package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/workday-engine/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, "server:\n  db_path: ':memory:'\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, ":memory:", cfg.Server.DBPath)
	assert.Equal(t, "08:00", cfg.Workday.Start)
	assert.Equal(t, "16:00", cfg.Workday.Stop)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
  db_path: ./data/workday.db
log:
  file: ./workdayd.log
  level: debug
workday:
  start: "09:30"
  stop: "17:30"
holidays:
  dates: ["2024-07-04"]
  recurring: ["12-25"]
  presets: ["norway-fixed"]
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "09:30", cfg.Workday.Start)
	assert.Equal(t, []string{"2024-07-04"}, cfg.Holidays.Dates)
	assert.Equal(t, []string{"12-25"}, cfg.Holidays.Recurring)
	assert.Equal(t, []string{"norway-fixed"}, cfg.Holidays.Presets)
}

func TestLoad_RejectsBadPort(t *testing.T) {
	path := writeConfig(t, "server:\n  port: -1\n")

	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingExplicitFileFails(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
