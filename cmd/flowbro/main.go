package main

import (
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/flowbro-app/flowbro/internal/cli"
	"github.com/flowbro-app/flowbro/internal/config"
	"github.com/flowbro-app/flowbro/internal/db"
	"github.com/flowbro-app/flowbro/internal/delivery"
)

func main() {
	cfg := config.Load()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	})))

	location := mustLoadLocation(cfg.Timezone)
	time.Local = location

	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	var sender delivery.Sender = delivery.NewLogSender()
	if cfg.Telegram.Enabled() {
		sender = delivery.NewTelegramSender(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
	}

	app := cli.NewApp(database, sender)
	if err := app.Run(os.Args[1:]); err != nil {
		log.Fatalf("%v", err)
	}
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Fatalf("load timezone %q failed: %v", name, err)
	}
	return location
}
