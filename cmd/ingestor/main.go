package main

import (
	"context"
	"database/sql"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"lombok_paradise/internal/adapters/fuseki"
	"lombok_paradise/internal/adapters/observability"
	redisad "lombok_paradise/internal/adapters/redis"
	"lombok_paradise/internal/app"
	"lombok_paradise/internal/domain"
	"lombok_paradise/internal/shared"
	mysqlrepo "lombok_paradise/internal/storage/mysql"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	// Missing endpoint is a configuration error, distinct from any
	// connectivity failure later on.
	if cfg.SparqlEndpoint == "" {
		log.Fatal().Err(domain.ErrMissingEndpoint).Msg("set SPARQL_ENDPOINT")
	}

	log.Info().
		Str("endpoint", cfg.SparqlEndpoint).
		Int("workers", cfg.Workers).
		Msg("ingestor starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)

	client, err := fuseki.New(cfg.SparqlEndpoint, 5)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize Fuseki client")
	}
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	ing := app.NewIngestionService(client, repo, cache)

	stats, err := ing.IngestCatalog(ctx, cfg.Workers)
	if err != nil {
		log.Fatal().Err(err).Msg("ingestion failed")
	}
	observability.ObserveIngest("ingested", stats.Ingested)
	observability.ObserveIngest("skipped", stats.Skipped)

	log.Info().
		Int("fetched", stats.Fetched).
		Int("ingested", stats.Ingested).
		Int("skipped", stats.Skipped).
		Msg("ingestion completed")
}
