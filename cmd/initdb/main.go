package main

import (
	"context"
	"flag"
	"os"
	"time"

	"visit-map-api/internal/config"
	"visit-map-api/internal/logging"
	"visit-map-api/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

func main() {
	seed := flag.Bool("seed", true, "Insert sample data into empty tables")
	configDir := flag.String("config", "configs", "Directory holding app.env")
	flag.Parse()

	logging.Setup("info", "console", os.Stderr)

	cfg, err := config.LoadDatabaseConfig(*configDir)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer pool.Close()

	repo := repository.NewRepository(pool)
	if err := repo.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("cannot apply schema")
	}
	log.Info().Msg("schema applied")

	if !*seed {
		return
	}
	if err := repo.SeedIfEmpty(ctx, time.Now()); err != nil {
		log.Fatal().Err(err).Msg("cannot seed sample data")
	}
	log.Info().Msg("sample data seeded")
}
