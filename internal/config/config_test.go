package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnv(t *testing.T, key, value string) {
	t.Helper()
	original, had := os.LookupEnv(key)
	require.NoError(t, os.Setenv(key, value))
	t.Cleanup(func() {
		if had {
			os.Setenv(key, original)
		} else {
			os.Unsetenv(key)
		}
	})
}

func unsetEnv(t *testing.T, key string) {
	t.Helper()
	original, had := os.LookupEnv(key)
	require.NoError(t, os.Unsetenv(key))
	t.Cleanup(func() {
		if had {
			os.Setenv(key, original)
		}
	})
}

func TestLoad_MissingBotToken(t *testing.T) {
	unsetEnv(t, "BOT_TOKEN")

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "BOT_TOKEN")
}

func TestLoad_WithDefaults(t *testing.T) {
	setEnv(t, "BOT_TOKEN", "test_token")
	unsetEnv(t, "DEFAULT_LANGUAGE")
	unsetEnv(t, "DELIVERY_FEE")
	unsetEnv(t, "PAGE_SIZE")
	unsetEnv(t, "TRACKER_INTERVAL")

	cfg, err := Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "test_token", cfg.BotToken)
	assert.Equal(t, "en", cfg.DefaultLanguage)
	assert.Equal(t, "RWF", cfg.Currency)
	assert.Equal(t, int64(2000), cfg.DeliveryFee)
	assert.Equal(t, 6, cfg.PageSize)
	assert.Equal(t, 45*time.Second, cfg.TrackerInterval)
	assert.Equal(t, 1500*time.Millisecond, cfg.LocationDelay)
}

func TestLoad_Overrides(t *testing.T) {
	setEnv(t, "BOT_TOKEN", "test_token")
	setEnv(t, "DELIVERY_FEE", "1500")
	setEnv(t, "DEFAULT_LANGUAGE", "rw")
	setEnv(t, "TRACKER_INTERVAL", "2m")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, int64(1500), cfg.DeliveryFee)
	assert.Equal(t, "rw", cfg.DefaultLanguage)
	assert.Equal(t, 2*time.Minute, cfg.TrackerInterval)
}

func TestLoad_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "negative delivery fee", key: "DELIVERY_FEE", value: "-1"},
		{name: "zero page size", key: "PAGE_SIZE", value: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnv(t, "BOT_TOKEN", "test_token")
			setEnv(t, tt.key, tt.value)

			cfg, err := Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}
