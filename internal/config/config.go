package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

type TelegramConfig struct {
	BotToken string
	ChatID   string
}

type Config struct {
	DBPath   string
	Timezone string
	LogLevel slog.Level
	Telegram TelegramConfig
}

// Enabled reports whether a Telegram channel is configured.
func (telegram TelegramConfig) Enabled() bool {
	return telegram.BotToken != "" && telegram.ChatID != ""
}

// Load reads configuration from the environment, with an optional .env file.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("load .env failed", "error", err)
	}

	return &Config{
		DBPath:   getEnvOrDefault("DB_PATH", filepath.Join("data", "flowbro.db")),
		Timezone: getEnvOrDefault("TZ", "UTC"),
		LogLevel: parseLogLevel(getEnvOrDefault("LOG_LEVEL", "info")),
		Telegram: TelegramConfig{
			BotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
			ChatID:   os.Getenv("TELEGRAM_CHAT_ID"),
		},
	}
}

func getEnvOrDefault(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
