package main

import (
	"fmt"

	"github.com/Supreeth450/KodjobsSupreeth/internal/adapter"
	"github.com/Supreeth450/KodjobsSupreeth/internal/bus"
	"github.com/Supreeth450/KodjobsSupreeth/internal/config"
	"github.com/Supreeth450/KodjobsSupreeth/internal/handler"
	"github.com/Supreeth450/KodjobsSupreeth/internal/logger"
	"github.com/Supreeth450/KodjobsSupreeth/internal/server"
	"github.com/Supreeth450/KodjobsSupreeth/internal/service"
	"github.com/Supreeth450/KodjobsSupreeth/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("kodjobs-proxy")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	kv, err := store.NewFileStore(cfg.Storage.StatePath, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating state store")
	}

	events := bus.New()
	repos := store.NewRepositories(kv, events, log)

	jobsAPI := adapter.NewJobsClient(adapter.JobsClientConfig{
		BaseURL: cfg.Jobs.BaseURL,
		Timeout: cfg.Jobs.Timeout,
	})

	services := service.NewServices(repos, events, jobsAPI, *cfg, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
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
