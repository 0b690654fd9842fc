package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"budget/internal/cli"
)

func main() {
	// Load .env file for local development (ignore errors in production)
	cli.LoadEnvFile()

	logger := cli.SetupLogger(slog.LevelInfo)
	cfg := cli.LoadAndValidateConfig(logger)
	logger = cli.SetupLogger(cfg.SlogLevel())

	store := cli.OpenStateStore(logger, cfg)
	defer store.Close()

	app := cli.NewApp(cfg, logger, store)
	app.Session.Initialize()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := cli.Run(ctx, app, os.Args[1:], os.Stdout); err != nil {
		logger.Debug("Command failed", "error", err)
		os.Exit(1)
	}
}
