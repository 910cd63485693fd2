package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Rate input conventions for the upstream inflation feed. See the domain
// package doc for the ambiguity this resolves.
const (
	RateInputPercent  = "percent"
	RateInputFraction = "fraction"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Upstream indicator source configuration.
	SourceBaseURL string
	SourceAPIKey  string
	SourceTimeout time.Duration
	CacheSize     int
	CacheTTL      time.Duration

	// RateInput selects the inflation normalization convention:
	// "percent" (pass-through, default) or "fraction" (×100).
	RateInput string

	// Countries selectable for comparison. The first entry doubles as the
	// readiness probe target.
	Countries []string
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	sourceTimeout, err := parseDuration("SOURCE_TIMEOUT", "5s")
	if err != nil {
		return nil, err
	}

	cacheTTL, err := parseDuration("CACHE_TTL", "15m")
	if err != nil {
		return nil, err
	}

	cacheSize, err := parsePositiveInt("CACHE_SIZE", 100)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		SourceBaseURL: envOrDefault("SOURCE_BASE_URL", "https://api.tradingeconomics.com"),
		SourceAPIKey:  envOrDefault("SOURCE_API_KEY", "guest:guest"),
		SourceTimeout: sourceTimeout,
		CacheSize:     cacheSize,
		CacheTTL:      cacheTTL,

		RateInput: envOrDefault("RATE_INPUT", RateInputPercent),

		// The guest API key exposes exactly these four countries.
		Countries: parseList(envOrDefault("COUNTRIES", "Mexico,New Zealand,Sweden,Thailand")),
	}

	if cfg.SourceBaseURL == "" {
		return nil, fmt.Errorf("SOURCE_BASE_URL is required")
	}
	if cfg.SourceAPIKey == "" {
		return nil, fmt.Errorf("SOURCE_API_KEY is required")
	}
	if cfg.RateInput != RateInputPercent && cfg.RateInput != RateInputFraction {
		return nil, fmt.Errorf("invalid RATE_INPUT %q: must be %q or %q", cfg.RateInput, RateInputPercent, RateInputFraction)
	}
	if len(cfg.Countries) < 2 {
		return nil, fmt.Errorf("COUNTRIES must list at least two countries")
	}

	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDuration(key, def string) (time.Duration, error) {
	s := envOrDefault(key, def)
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a positive duration", key, s)
	}
	return d, nil
}

func parsePositiveInt(key string, def int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a positive integer", key, s)
	}
	return n, nil
}

func parseList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
