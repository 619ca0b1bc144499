package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("API_ID", "")
	t.Setenv("API_HASH", "")
	t.Setenv("BOT_TOKEN", "")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, 5000, cfg.Server.Port)
	require.False(t, cfg.Redis.Enabled)
	require.Equal(t, 5*time.Minute, cfg.Redis.ResolveTTL)
	require.Equal(t, 20*time.Second, cfg.Telegram.RequestTimeout)
	require.EqualValues(t, 4, cfg.Telegram.MaxConcurrent)
	require.False(t, cfg.Lookup.FallbackToDemoOnNotFound)
	require.True(t, cfg.Lookup.DemoOnUnavailable)
	require.Equal(t, "static/photos", cfg.Lookup.PhotoDir)
	require.False(t, cfg.HasTelegramCredentials())
}

func TestLoad_Credentials(t *testing.T) {
	t.Setenv("API_ID", "12345")
	t.Setenv("API_HASH", "abcdef")
	t.Setenv("BOT_TOKEN", "1:token")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("REDIS_PORT", "6380")

	cfg, err := Load()
	require.NoError(t, err)
	require.True(t, cfg.HasTelegramCredentials())
	require.Equal(t, 12345, cfg.Telegram.APIID)
	require.Equal(t, "cache:6380", cfg.RedisAddr())
}

func TestLoad_PartialCredentials(t *testing.T) {
	t.Setenv("API_ID", "12345")
	t.Setenv("API_HASH", "")
	t.Setenv("BOT_TOKEN", "1:token")

	cfg, err := Load()
	require.NoError(t, err)
	require.False(t, cfg.HasTelegramCredentials())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "non numeric api id", key: "API_ID", value: "abc"},
		{name: "zero concurrency", key: "TELEGRAM_MAX_CONCURRENT", value: "0"},
		{name: "port out of range", key: "PORT", value: "70000"},
		{name: "bad duration", key: "TELEGRAM_REQUEST_TIMEOUT", value: "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			require.Error(t, err)
		})
	}
}
