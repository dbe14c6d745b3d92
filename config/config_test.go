package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tazhate/hoabot/internal/clock"
)

func TestParseShiftEnd(t *testing.T) {
	assert.Equal(t, clock.TimeOfDay{Hour: 17, Minute: 30}, ParseShiftEnd("17:30"))
	assert.Equal(t, clock.TimeOfDay{Hour: 20}, ParseShiftEnd(""))
	assert.Equal(t, clock.TimeOfDay{Hour: 20}, ParseShiftEnd("5pm"))
	assert.Equal(t, clock.TimeOfDay{Hour: 20}, ParseShiftEnd("24:00"))
}

func TestLoad(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("TIMEZONE", "")
	t.Setenv("SHIFT_END", "oops")
	t.Setenv("WEBHOOK_URL", "https://example.com/")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "123:abc", cfg.TelegramToken)
	assert.Equal(t, DefaultTimezone, cfg.Timezone.String())
	assert.Equal(t, clock.TimeOfDay{Hour: 20}, cfg.ShiftEnd)
	assert.Equal(t, "https://example.com", cfg.WebhookURL)
	assert.True(t, cfg.UseWebhook())
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoad_Errors(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("TIMEZONE", "Mars/Olympus_Mons")
	_, err = Load()
	assert.Error(t, err)

	t.Setenv("TIMEZONE", "")
	t.Setenv("LOG_LEVEL", "loud")
	_, err = Load()
	assert.Error(t, err)
}
