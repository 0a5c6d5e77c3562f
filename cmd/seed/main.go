package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/news-board-api/internal/config"
	"github.com/news-board-api/internal/database"
	"github.com/news-board-api/internal/repository"
	"github.com/news-board-api/internal/service"
	"github.com/news-board-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New(config.LogConfig{Level: "info"})
		bootLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	dir := flag.String("dir", cfg.Seed.Dir, "directory holding the NDJSON seed files")
	reset := flag.Bool("reset", true, "drop and recreate the schema before loading")
	flag.Parse()

	log := logger.New(cfg.Log)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	db, err := database.New(&cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	if *reset {
		err = db.ResetSchema()
	} else {
		err = db.RunMigrations()
	}
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to prepare schema")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	services := service.NewServices(repository.New(db), log)
	report, err := services.Seed.Seed(ctx, *dir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", *dir).Msg("Seed failed")
	}

	log.Info().
		Int("topics", report.Topics).
		Int("users", report.Users).
		Int("articles", report.Articles).
		Int("comments", report.Comments).
		Msg("Database seeded")
}
