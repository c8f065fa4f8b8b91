// Command cleanup-accounts deletes accounts whose activation keys expired
// without ever being used. It runs the sweep once and exits, so it can be
// scheduled from cron. The sweep is idempotent; overlapping or repeated runs
// delete nothing extra.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/tendant/simple-signup-slim/internal/config"
	"github.com/tendant/simple-signup-slim/internal/registration"
	"github.com/tendant/simple-signup-slim/internal/repository"
)

func main() {
	// Load .env file if present (ignore error if not found)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	db, err := repository.NewDB(repository.Config{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
		SSLMode:  cfg.DBSSLMode,
	})
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	service := registration.NewService(registration.Config{
		ActivationWindow: cfg.ActivationWindow,
		AppBaseURL:       cfg.AppBaseURL,
	}, repository.NewStore(db), nil, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	deleted, err := service.DeleteExpired(ctx)
	if err != nil {
		logger.Error("sweep failed", "error", err, "deleted", deleted)
		os.Exit(1)
	}

	logger.Info("sweep completed", "deleted", deleted)
}
