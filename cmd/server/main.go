package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/JonMunkholm/northwind/internal/cli"
	"github.com/JonMunkholm/northwind/internal/config"
	"github.com/JonMunkholm/northwind/internal/logging"
	"github.com/joho/godotenv"
)

func main() {
	// Overload: .env values replace variables already set
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	if err := cli.Serve(context.Background(), cfg); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
