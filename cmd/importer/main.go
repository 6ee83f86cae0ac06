package main

import (
	"context"
	"flag"
	"os"

	"visit-map-api/internal/config"
	"visit-map-api/internal/logging"
	"visit-map-api/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

func main() {
	file := flag.String("file", "", "Path to the customers CSV file to import")
	configDir := flag.String("config", "configs", "Directory holding app.env")
	flag.Parse()

	logging.Setup("info", "console", os.Stderr)

	if *file == "" {
		log.Fatal().Msg("--file flag is required")
	}

	log.Info().Str("file", *file).Msg("starting import")

	f, err := os.Open(*file)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot open file")
	}
	defer f.Close()

	customers, err := parseCSV(f)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot parse CSV")
	}
	log.Info().Int("records", len(customers)).Msg("parsed")

	cfg, err := config.LoadDatabaseConfig(*configDir)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer pool.Close()

	repo := repository.NewRepository(pool)
	if err := repo.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("cannot apply schema")
	}

	before, err := repo.CountCustomers(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot count customers")
	}

	copied, err := repo.ImportCustomers(ctx, customers)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot insert records")
	}

	after, err := repo.CountCustomers(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot count customers")
	}
	if after-before != len(customers) {
		log.Fatal().
			Int("expected", len(customers)).
			Int("got", after-before).
			Msg("record count mismatch")
	}

	log.Info().Int64("imported", copied).Int("total", after).Msg("import finished")
}
