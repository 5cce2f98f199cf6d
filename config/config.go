// Package config loads process settings from an optional YAML file, a .env
// file and GROWTH_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"growth-projector/domain"
	"growth-projector/service"
)

type Config struct {
	Addr            string        `yaml:"addr"`
	RedisAddr       string        `yaml:"redis_addr"`
	CacheDisabled   bool          `yaml:"cache_disabled"`
	CacheTTL        time.Duration `yaml:"cache_ttl"`
	RateLimit       int           `yaml:"rate_limit"`
	RateWindow      time.Duration `yaml:"rate_window"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	LogLevel        string        `yaml:"log_level"`
	LogFormat       string        `yaml:"log_format"`
	Defaults        Defaults      `yaml:"defaults"`
}

// Defaults are the projection inputs used when query parameters are
// missing or unparsable.
type Defaults struct {
	StartValue float64 `yaml:"start_value"`
	EndValue   float64 `yaml:"end_value"`
	StartYear  int     `yaml:"start_year"`
	EndYear    int     `yaml:"end_year"`
}

func (d Defaults) Input() domain.GrowthInput {
	return domain.GrowthInput{
		StartValue: d.StartValue,
		EndValue:   d.EndValue,
		StartYear:  d.StartYear,
		EndYear:    d.EndYear,
	}
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Addr:            ":8080",
		CacheTTL:        service.DefaultCacheTTL,
		RateLimit:       60,
		RateWindow:      time.Minute,
		ShutdownTimeout: 10 * time.Second,
		LogLevel:        "info",
		LogFormat:       "text",
		Defaults: Defaults{
			StartValue: service.DefaultStartValue,
			EndValue:   service.DefaultEndValue,
			StartYear:  service.DefaultStartYear,
			EndYear:    service.DefaultEndYear,
		},
	}
}

// Load builds a Config. path may be empty; a missing .env file is ignored.
func Load(path string) (Config, error) {
	cfg := Default()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	cfg.Addr = envDefault("GROWTH_ADDR", cfg.Addr)
	cfg.RedisAddr = envDefault("GROWTH_REDIS_ADDR", cfg.RedisAddr)
	cfg.LogLevel = envDefault("GROWTH_LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = envDefault("GROWTH_LOG_FORMAT", cfg.LogFormat)
	if raw := strings.TrimSpace(os.Getenv("GROWTH_CACHE_DISABLED")); raw != "" {
		cfg.CacheDisabled = isTruthy(raw)
	}

	durations := []struct {
		key string
		dst *time.Duration
	}{
		{"GROWTH_CACHE_TTL", &cfg.CacheTTL},
		{"GROWTH_RATE_WINDOW", &cfg.RateWindow},
		{"GROWTH_SHUTDOWN_TIMEOUT", &cfg.ShutdownTimeout},
	}
	for _, d := range durations {
		raw := strings.TrimSpace(os.Getenv(d.key))
		if raw == "" {
			continue
		}
		v, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("%s must be a duration such as 30s or 1h: %w", d.key, err)
		}
		*d.dst = v
	}

	if raw := strings.TrimSpace(os.Getenv("GROWTH_RATE_LIMIT")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("GROWTH_RATE_LIMIT must be an integer")
		}
		cfg.RateLimit = n
	}
	return nil
}

// Validate checks basic constraints.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return errors.New("addr must not be empty")
	}
	if c.RateLimit <= 0 {
		return fmt.Errorf("rate_limit must be positive, got %d", c.RateLimit)
	}
	if c.RateWindow <= 0 {
		return fmt.Errorf("rate_window must be positive, got %s", c.RateWindow)
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("cache_ttl must not be negative, got %s", c.CacheTTL)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown_timeout must be positive, got %s", c.ShutdownTimeout)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("log_format must be text or json, got %q", c.LogFormat)
	}
	if _, err := service.Project(c.Defaults.Input()); err != nil {
		return fmt.Errorf("defaults: %w", err)
	}
	return nil
}

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func isTruthy(value string) bool {
	value = strings.TrimSpace(strings.ToLower(value))
	return value == "1" || value == "true" || value == "yes"
}
