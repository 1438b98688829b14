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
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 500*time.Millisecond, cfg.Computer.MoveDelay)
	assert.Equal(t, "tic-tac-toe", cfg.Telemetry.ServiceName)
	assert.Empty(t, cfg.Telemetry.OTLPEndpoint)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
log-level: debug
log-file: /tmp/ttt.log
computer:
  move-delay: 1s
telemetry:
  otlp-endpoint: collector:4317
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/ttt.log", cfg.LogFile)
	assert.Equal(t, time.Second, cfg.Computer.MoveDelay)
	assert.Equal(t, "collector:4317", cfg.Telemetry.OTLPEndpoint)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "log-level: debug\n")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("COMPUTER_MOVE_DELAY", "0s")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Zero(t, cfg.Computer.MoveDelay)
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("unknown log level", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "chatty")
		_, err := Load("")
		require.Error(t, err)
	})

	t.Run("negative delay", func(t *testing.T) {
		t.Setenv("COMPUTER_MOVE_DELAY", "-1s")
		_, err := Load("")
		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
		require.Error(t, err)
	})

	t.Run("MustLoad panics", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "chatty")
		assert.Panics(t, func() { MustLoad("") })
	})
}
