package config_test

import (
	"testing"
	"time"

	"glassboard/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := config.Load()

	assert.Equal(t, "http://localhost:3000", cfg.APIBaseURL)
	assert.Equal(t, "default", cfg.BoardID)
	assert.Equal(t, 5*time.Minute, cfg.RefreshInterval)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.LogJSON)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://boards.example.com")
	t.Setenv("API_TOKEN", "tok-123")
	t.Setenv("BOARD_ID", "b42")
	t.Setenv("REFRESH_INTERVAL", "30s")
	t.Setenv("LOG_JSON", "true")

	cfg := config.Load()

	assert.Equal(t, "https://boards.example.com", cfg.APIBaseURL)
	assert.Equal(t, "tok-123", cfg.APIToken)
	assert.Equal(t, "b42", cfg.BoardID)
	assert.Equal(t, 30*time.Second, cfg.RefreshInterval)
	assert.True(t, cfg.LogJSON)
}

func TestLoad_InvalidDurationFallsBack(t *testing.T) {
	t.Setenv("REFRESH_INTERVAL", "sometimes")

	cfg := config.Load()

	assert.Equal(t, 5*time.Minute, cfg.RefreshInterval)
}
