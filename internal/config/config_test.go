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
	path := filepath.Join(t.TempDir(), "skillsim.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadSimulatorMissingFile(t *testing.T) {
	cfg, err := LoadSimulator(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSimulator(), cfg)
}

func TestLoadSimulatorFile(t *testing.T) {
	path := writeConfig(t, `
log_level: debug
locale: ja
seed: 42
database:
  host: db
  port: 6543
growth:
  max_propagation_depth: 2
cache:
  ttl: 30s
`)

	cfg, err := LoadSimulator(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "ja", cfg.Locale)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, "postgres://skillgrowth:skillgrowth@db:6543/skillgrowth?sslmode=disable", cfg.Database.DSN())
	assert.Equal(t, 2, cfg.Growth.MaxPropagationDepth)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
	assert.Equal(t, 1024, cfg.Cache.Size, "unset fields keep defaults")
}

func TestLoadSimulatorEnvOverrides(t *testing.T) {
	path := writeConfig(t, "log_level: debug\n")
	t.Setenv("SKILLGROWTH_LOG_LEVEL", "warn")
	t.Setenv("SKILLGROWTH_DB_HOST", "pg.internal")
	t.Setenv("SKILLGROWTH_GROWTH_LOW_YIELD_AREA", "true")
	t.Setenv("SKILLGROWTH_CACHE_TTL", "1m")

	cfg, err := LoadSimulator(path)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "pg.internal", cfg.Database.Host)
	assert.True(t, cfg.Growth.LowYieldArea)
	assert.Equal(t, time.Minute, cfg.Cache.TTL)
}

func TestLoadSimulatorErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad yaml", "log_level: [\n"},
		{"bad log level", "log_level: loud\n"},
		{"bad depth", "growth:\n  max_propagation_depth: 0\n"},
		{"bad port", "database:\n  port: 70000\n"},
		{"bad metrics addr", "metrics_addr: nope\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSimulator(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestPath(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	assert.Equal(t, DefaultConfigPath, Path())

	t.Setenv(EnvConfigPath, "/etc/skillsim.yaml")
	assert.Equal(t, "/etc/skillsim.yaml", Path())
}

func TestResolveSeed(t *testing.T) {
	s := DefaultSimulator()
	s.Seed = 7
	seed, err := s.ResolveSeed()
	require.NoError(t, err)
	assert.Equal(t, int64(7), seed)

	s.Seed = 0
	_, err = s.ResolveSeed()
	assert.NoError(t, err)
}
