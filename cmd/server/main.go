package main

import (
	"context"
	"fmt"

	"github.com/bishtbros/ledger/internal/config"
	"github.com/bishtbros/ledger/internal/handler/http"
	"github.com/bishtbros/ledger/internal/hash"
	"github.com/bishtbros/ledger/internal/logger"
	"github.com/bishtbros/ledger/internal/server"
	"github.com/bishtbros/ledger/internal/service"
	"github.com/bishtbros/ledger/internal/session"
	"github.com/bishtbros/ledger/internal/store"
	"github.com/bishtbros/ledger/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("ledger-server")

	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.DB.Close()

	hasher, err := hash.New(cfg.App.HashScheme, cfg.App.HashSalt)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating credential hasher")
	}

	sessions := session.NewStore(cfg.App.TokenSecret, cfg.App.SessionTTL)

	services := service.NewServices(storages, hasher, cfg.App, log)

	if err := services.LegacyMigrator.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("error migrating legacy data")
	}

	workers.NewWorkers(
		workers.NewSessionSweeper(ctx, sessions, cfg.App.SweepInterval, log),
	).Run()

	handlers := http.NewHandler(services, sessions, storages.DB, log)

	srv, err := server.NewServer(handlers.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
