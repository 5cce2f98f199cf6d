package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 265.0, cfg.Defaults.StartValue)
	assert.Equal(t, 2030, cfg.Defaults.EndYear)
}

func TestLoad_YAMLThenEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	path := writeFile(t, dir, "growth.yaml", `
addr: ":9090"
redis_addr: "localhost:6379"
cache_ttl: 2h
rate_limit: 5
log_level: debug
defaults:
  start_value: 100
  end_value: 400
  start_year: 2000
  end_year: 2002
`)
	t.Setenv("GROWTH_ADDR", ":7070")
	t.Setenv("GROWTH_RATE_WINDOW", "30s")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Addr)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 2*time.Hour, cfg.CacheTTL)
	assert.Equal(t, 5, cfg.RateLimit)
	assert.Equal(t, 30*time.Second, cfg.RateWindow)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 100.0, cfg.Defaults.StartValue)
	assert.Equal(t, 2002, cfg.Defaults.EndYear)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	writeFile(t, dir, ".env", "GROWTH_RATE_LIMIT=3\nGROWTH_CACHE_DISABLED=yes\n")
	t.Cleanup(func() {
		os.Unsetenv("GROWTH_RATE_LIMIT")
		os.Unsetenv("GROWTH_CACHE_DISABLED")
	})

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.RateLimit)
	assert.True(t, cfg.CacheDisabled)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := writeFile(t, dir, "bad.yaml", "rate_limit: [")
	_, err = Load(bad)
	assert.Error(t, err)

	t.Setenv("GROWTH_RATE_LIMIT", "many")
	_, err = Load("")
	assert.Error(t, err)
}

func TestLoad_InvalidDuration(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("GROWTH_CACHE_TTL", "forever")

	_, err := Load("")
	assert.ErrorContains(t, err, "GROWTH_CACHE_TTL")
}

func TestValidate(t *testing.T) {
	mutate := func(f func(*Config)) Config {
		cfg := Default()
		f(&cfg)
		return cfg
	}

	require.NoError(t, Default().Validate())
	assert.Error(t, mutate(func(c *Config) { c.Addr = " " }).Validate())
	assert.Error(t, mutate(func(c *Config) { c.RateLimit = 0 }).Validate())
	assert.Error(t, mutate(func(c *Config) { c.RateWindow = 0 }).Validate())
	assert.Error(t, mutate(func(c *Config) { c.CacheTTL = -time.Second }).Validate())
	assert.Error(t, mutate(func(c *Config) { c.ShutdownTimeout = 0 }).Validate())
	assert.Error(t, mutate(func(c *Config) { c.LogLevel = "loud" }).Validate())
	assert.Error(t, mutate(func(c *Config) { c.LogFormat = "xml" }).Validate())
	assert.Error(t, mutate(func(c *Config) { c.Defaults.EndYear = c.Defaults.StartYear }).Validate())
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := Default()
	cfg.LogFormat = "json"
	cfg.LogLevel = "warn"

	logger := cfg.NewLogger(&buf)
	logger.Info("hidden")
	logger.Warn("shown", slog.Int("n", 1))

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"n":1`)
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	level, err = ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)

	_, err = ParseLevel("verbose")
	assert.Error(t, err)
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains: it changes
// the working directory for the duration of the test and restores it on cleanup.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
