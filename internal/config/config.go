package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Backend selection values for DATA_BACKEND.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Config holds the application configuration
type Config struct {
	Port        int
	APIKey      string
	ServiceName string
	Version     string
	Environment string
	LogLevel    string
	LogFormat   string

	// Persistence
	DataBackend      string // "file" or "sqlite"
	DataFile         string // snapshot path for the file backend
	SQLitePath       string // database path for the sqlite backend
	SnapshotInterval time.Duration
	FlushWorkers     int
	FlushQueueSize   int

	// Economy
	CatalogPath         string
	DailyReward         int
	MaxStreakMultiplier float64
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:      getEnv("API_KEY", ""),
		ServiceName: getEnv("SERVICE_NAME", "tally-bot"),
		Version:     getEnv("VERSION", "dev"),
		Environment: getEnv("ENVIRONMENT", "dev"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		DataBackend: strings.ToLower(getEnv("DATA_BACKEND", BackendFile)),
		DataFile:    getEnv("DATA_FILE", "data/ledger.json"),
		SQLitePath:  getEnv("SQLITE_PATH", "data/ledger.db"),
		CatalogPath: getEnv("CATALOG_PATH", "configs/giftcards.yaml"),
	}

	var err error
	if cfg.Port, err = getEnvInt("PORT", 8080); err != nil {
		return nil, err
	}
	if cfg.DailyReward, err = getEnvInt("DAILY_REWARD", 100); err != nil {
		return nil, err
	}
	if cfg.FlushWorkers, err = getEnvInt("FLUSH_WORKERS", 1); err != nil {
		return nil, err
	}
	if cfg.FlushQueueSize, err = getEnvInt("FLUSH_QUEUE_SIZE", 16); err != nil {
		return nil, err
	}
	if cfg.MaxStreakMultiplier, err = getEnvFloat("MAX_STREAK_MULTIPLIER", 2.0); err != nil {
		return nil, err
	}
	if cfg.SnapshotInterval, err = getEnvDuration("SNAPSHOT_INTERVAL", 5*time.Minute); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("API_KEY environment variable must be set for security")
	}
	if c.DataBackend != BackendFile && c.DataBackend != BackendSQLite {
		return fmt.Errorf("invalid DATA_BACKEND value: %s (want %q or %q)", c.DataBackend, BackendFile, BackendSQLite)
	}
	if c.DailyReward <= 0 {
		return fmt.Errorf("DAILY_REWARD must be positive, got %d", c.DailyReward)
	}
	if c.MaxStreakMultiplier < 1.0 {
		return fmt.Errorf("MAX_STREAK_MULTIPLIER must be at least 1.0, got %g", c.MaxStreakMultiplier)
	}
	if c.SnapshotInterval <= 0 {
		return fmt.Errorf("SNAPSHOT_INTERVAL must be positive, got %s", c.SnapshotInterval)
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return n, nil
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return f, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return d, nil
}
