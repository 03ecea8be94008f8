package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, ":8080", cfg.Server.Listen)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 4, cfg.Batch.Workers)
	assert.Empty(t, cfg.Query.Options())
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lvroute.yaml")
	body := `
log:
  level: debug
server:
  listen: 127.0.0.1:9090
  request_timeout: 250ms
query:
  max_distance: 100
batch:
  workers: 2
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	t.Setenv("LVROUTE_BATCH_WORKERS", "8")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Listen)
	assert.Equal(t, 250*time.Millisecond, cfg.Server.RequestTimeout)
	assert.Equal(t, 100.0, cfg.Query.MaxDistance)
	assert.Equal(t, 8, cfg.Batch.Workers, "environment overrides the file")
	assert.Len(t, cfg.Query.Options(), 1)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lvroute.yaml")
	require.NoError(t, os.WriteFile(path, []byte("batch:\n  workers: 0\nquery:\n  max_distance: -1\n"), 0o600))

	_, err := config.Load(path)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}
