package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"classboard/internal/config"
	"classboard/internal/repository/postgres"
	"classboard/internal/seed"
	"classboard/internal/service/bulletin"
	"classboard/internal/service/timetable"
)

func main() {
	file := flag.String("file", "scripts/seed.yaml", "path to the seed YAML file")
	flag.Parse()

	_ = godotenv.Load()

	cfg := config.Load()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	data, err := seed.Load(*file)
	if err != nil {
		log.Fatalf("Failed to load seed file: %v", err)
	}

	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	tables := postgres.NewTableNames(cfg.TablePrefix)
	if err := postgres.EnsureSchema(ctx, pool, tables); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}

	timetableService := timetable.NewService(postgres.NewTimetableRepository(repoConfig), logger)
	bulletinService := bulletin.NewService(
		postgres.NewAnnouncementRepository(repoConfig),
		postgres.NewNotificationRepository(repoConfig),
		logger,
	)

	if err := seed.Apply(ctx, data, timetableService, bulletinService, logger); err != nil {
		log.Fatalf("Failed to apply seed: %v", err)
	}
}
