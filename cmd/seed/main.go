package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/leetreview/backend/internal/infrastructure/config"
	"github.com/leetreview/backend/internal/seed"
	"github.com/leetreview/backend/internal/store"
)

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db, err := store.NewSQLite(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := seed.Populate(context.Background(), db, logger, time.Now().UTC()); err != nil {
		logger.Error("seeding failed", "error", err)
		os.Exit(1)
	}
}
