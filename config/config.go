package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/tazhate/hoabot/internal/clock"
)

const (
	DefaultTimezone = "Asia/Ho_Chi_Minh"
	DefaultShiftEnd = "20:00"
)

type Config struct {
	TelegramToken string
	Timezone      *time.Location
	ShiftEnd      clock.TimeOfDay
	WebhookURL    string
	ServerPort    string
	LogLevel      slog.Level
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present; real environment variables win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN is required")
	}

	tzName := getEnv("TIMEZONE", DefaultTimezone)
	tz, err := time.LoadLocation(tzName)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE: %w", err)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	return &Config{
		TelegramToken: token,
		Timezone:      tz,
		ShiftEnd:      ParseShiftEnd(os.Getenv("SHIFT_END")),
		WebhookURL:    strings.TrimSuffix(os.Getenv("WEBHOOK_URL"), "/"),
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		LogLevel:      level,
	}, nil
}

// ParseShiftEnd parses a SHIFT_END value. Empty or malformed input falls
// back to DefaultShiftEnd instead of failing.
func ParseShiftEnd(value string) clock.TimeOfDay {
	if tod, err := clock.ParseTimeOfDay(value); err == nil {
		return tod
	}
	tod, _ := clock.ParseTimeOfDay(DefaultShiftEnd)
	return tod
}

// UseWebhook reports whether updates arrive by webhook rather than polling.
func (c *Config) UseWebhook() bool {
	return c.WebhookURL != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
