package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.False(t, cfg.Orders.RestockOnCancel)
	assert.Equal(t, "*/5 * * * * *", cfg.Outbox.Schedule)
	assert.Equal(t, time.Minute, cfg.Outbox.Lease)
	assert.Equal(t, 30*time.Minute, cfg.Bot.SessionTTL)
	assert.Equal(t, int64(5<<20), cfg.Uploads.MaxBytes)
}

func TestLoadConfig_FileAndEnvironment(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	file := filepath.Join(dir, "pharmacy.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
http:
  port: 9090
orders:
  restock_on_cancel: true
outbox:
  batch_size: 50
`), 0o600))
	t.Setenv("PHARMACY_OUTBOX_BATCH_SIZE", "7")
	t.Setenv("PHARMACY_AUTH_JWT_SECRET", "from-the-environment")

	cfg, err := LoadConfig(file)

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.True(t, cfg.Orders.RestockOnCancel)
	assert.Equal(t, 7, cfg.Outbox.BatchSize)
	assert.Equal(t, "from-the-environment", cfg.Auth.JWTSecret)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile(".env", []byte("PHARMACY_REDIS_ADDR=cache:6380\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("PHARMACY_REDIS_ADDR") })

	cfg, err := LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, "cache:6380", cfg.Redis.Addr)
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := LoadConfig("does-not-exist.yaml")

	assert.Error(t, err)
}

func TestSetupLogging_Level(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	setupLogging(LoggingConfig{Level: "debug", Format: "console"})
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	setupLogging(LoggingConfig{Level: "loud"})
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (stand-in for testing.T.Chdir on older toolchains).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
