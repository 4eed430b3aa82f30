package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("API_KEY", "test-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, BackendFile, cfg.DataBackend)
	assert.Equal(t, 100, cfg.DailyReward)
	assert.Equal(t, 2.0, cfg.MaxStreakMultiplier)
	assert.Equal(t, 5*time.Minute, cfg.SnapshotInterval)
}

func TestLoadRequiresAPIKey(t *testing.T) {
	t.Setenv("API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API_KEY")
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"non-numeric port", "PORT", "not-a-port"},
		{"unknown backend", "DATA_BACKEND", "postgres"},
		{"zero daily reward", "DAILY_REWARD", "0"},
		{"multiplier below 1", "MAX_STREAK_MULTIPLIER", "0.5"},
		{"bad interval", "SNAPSHOT_INTERVAL", "five minutes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("API_KEY", "test-key")
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("API_KEY", "test-key")
	t.Setenv("DATA_BACKEND", "sqlite")
	t.Setenv("SNAPSHOT_INTERVAL", "30s")
	t.Setenv("DAILY_REWARD", "250")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, BackendSQLite, cfg.DataBackend)
	assert.Equal(t, 30*time.Second, cfg.SnapshotInterval)
	assert.Equal(t, 250, cfg.DailyReward)
}
