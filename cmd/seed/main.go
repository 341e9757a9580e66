package main

import (
	"context"
	"flag"
	"os"

	"namematch-backend/internal/config"
	"namematch-backend/internal/repository"
	"namematch-backend/internal/services"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Seeds the baby_names catalog from a CSV file (local path or s3://bucket/key).
// Columns: name, gender, origin, meaning, popularity.
func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	source := flag.String("source", "", "CSV source: local path or s3://bucket/key")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if *source == "" {
		log.Fatal().Msg("-source is required")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	ctx := context.Background()

	db, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	nameRepo := repository.NewNameRepository(db)
	catalog, err := services.NewCatalogService(nameRepo, cfg.AWS)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create catalog service")
	}

	imported, err := catalog.Import(ctx, *source)
	if err != nil {
		log.Fatal().Err(err).Int("imported", imported).Msg("Import failed")
	}

	log.Info().Int("imported", imported).Str("source", *source).Msg("Catalog import complete")
}
