package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "https://api.tradingeconomics.com", cfg.SourceBaseURL)
	assert.Equal(t, "guest:guest", cfg.SourceAPIKey)
	assert.Equal(t, 5*time.Second, cfg.SourceTimeout)
	assert.Equal(t, 100, cfg.CacheSize)
	assert.Equal(t, 15*time.Minute, cfg.CacheTTL)
	assert.Equal(t, RateInputPercent, cfg.RateInput)
	assert.Equal(t, []string{"Mexico", "New Zealand", "Sweden", "Thailand"}, cfg.Countries)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("SOURCE_BASE_URL", "https://example.test")
	t.Setenv("SOURCE_API_KEY", "secret-key")
	t.Setenv("SOURCE_TIMEOUT", "10s")
	t.Setenv("CACHE_SIZE", "500")
	t.Setenv("CACHE_TTL", "1h")
	t.Setenv("RATE_INPUT", "fraction")
	t.Setenv("COUNTRIES", "Sweden, Norway ,Denmark")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "https://example.test", cfg.SourceBaseURL)
	assert.Equal(t, "secret-key", cfg.SourceAPIKey)
	assert.Equal(t, 10*time.Second, cfg.SourceTimeout)
	assert.Equal(t, 500, cfg.CacheSize)
	assert.Equal(t, time.Hour, cfg.CacheTTL)
	assert.Equal(t, RateInputFraction, cfg.RateInput)
	assert.Equal(t, []string{"Sweden", "Norway", "Denmark"}, cfg.Countries)
}

func TestLoad_InvalidShutdownTimeout(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "not-a-duration")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}

func TestLoad_NegativeSourceTimeout(t *testing.T) {
	t.Setenv("SOURCE_TIMEOUT", "-1s")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SOURCE_TIMEOUT")
}

func TestLoad_InvalidCacheSize(t *testing.T) {
	t.Setenv("CACHE_SIZE", "0")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CACHE_SIZE")
}

func TestLoad_InvalidRateInput(t *testing.T) {
	t.Setenv("RATE_INPUT", "basis-points")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RATE_INPUT")
}

func TestLoad_TooFewCountries(t *testing.T) {
	t.Setenv("COUNTRIES", "Sweden")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "COUNTRIES")
}
