package main

import (
	"context"
	"fmt"

	"github.com/Killjoy99/eNtweniBooking/internal/config"
	"github.com/Killjoy99/eNtweniBooking/internal/handler"
	"github.com/Killjoy99/eNtweniBooking/internal/logger"
	"github.com/Killjoy99/eNtweniBooking/internal/server"
	"github.com/Killjoy99/eNtweniBooking/internal/service"
	"github.com/Killjoy99/eNtweniBooking/internal/store"
	"github.com/Killjoy99/eNtweniBooking/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("entwenibooking-auth")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services := service.NewServices(storages, cfg, log)

	appWorkers := workers.NewWorkers(storages, cfg.Workers, log)
	appWorkers.Run()
	defer appWorkers.Stop()

	handlers, err := handler.NewHandlers(services, appWorkers.LastLoginRecorder, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
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
