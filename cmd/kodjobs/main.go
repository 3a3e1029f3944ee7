package main

import (
	"fmt"

	"github.com/Supreeth450/KodjobsSupreeth/internal/adapter"
	"github.com/Supreeth450/KodjobsSupreeth/internal/bus"
	"github.com/Supreeth450/KodjobsSupreeth/internal/client"
	"github.com/Supreeth450/KodjobsSupreeth/internal/config"
	"github.com/Supreeth450/KodjobsSupreeth/internal/logger"
	"github.com/Supreeth450/KodjobsSupreeth/internal/service"
	"github.com/Supreeth450/KodjobsSupreeth/internal/store"
	"github.com/Supreeth450/KodjobsSupreeth/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("kodjobs-client")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	kv, err := store.NewFileStore(cfg.Storage.StatePath, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating state store")
	}

	events := bus.New()
	watcher := bus.NewWatcher(kv, log)
	repos := store.NewRepositories(kv, events, log)

	jobsAPI := adapter.NewJobsClient(adapter.JobsClientConfig{
		BaseURL: cfg.Jobs.BaseURL,
		Timeout: cfg.Jobs.Timeout,
	})

	services := service.NewServices(repos, events, jobsAPI, *cfg, log)
	ui := tui.New(services, events, cfg.Workers, log)

	app, err := client.NewApp(services, events, watcher, ui, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
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
