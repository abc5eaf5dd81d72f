package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	BotToken        string        `envconfig:"BOT_TOKEN"`
	DefaultLanguage string        `envconfig:"DEFAULT_LANGUAGE" default:"en"`
	Currency        string        `envconfig:"CURRENCY" default:"RWF"`
	DeliveryFee     int64         `envconfig:"DELIVERY_FEE" default:"2000"`
	PageSize        int           `envconfig:"PAGE_SIZE" default:"6"`
	PollTimeout     time.Duration `envconfig:"POLL_TIMEOUT" default:"10s"`
	TrackerInterval time.Duration `envconfig:"TRACKER_INTERVAL" default:"45s"`
	LocationDelay   time.Duration `envconfig:"LOCATION_DELAY" default:"1500ms"`
}

// Load reads configuration from the environment, with .env as a fallback.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.DeliveryFee < 0 {
		return nil, fmt.Errorf("DELIVERY_FEE must not be negative")
	}
	if cfg.PageSize < 1 {
		return nil, fmt.Errorf("PAGE_SIZE must be at least 1")
	}

	return &cfg, nil
}
