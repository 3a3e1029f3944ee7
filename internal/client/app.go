package client

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/Supreeth450/KodjobsSupreeth/internal/bus"
	"github.com/Supreeth450/KodjobsSupreeth/internal/config"
	"github.com/Supreeth450/KodjobsSupreeth/internal/logger"
	"github.com/Supreeth450/KodjobsSupreeth/internal/service"
	"github.com/Supreeth450/KodjobsSupreeth/internal/store"
)

var errAppNotAssembled = errors.New("client app is missing a dependency")

type App struct {
	services *service.Services
	events   *bus.Bus
	watcher  *bus.Watcher
	ui       UI
	cfg      *config.StructuredConfig
	logger   *logger.Logger
}

func NewApp(
	services *service.Services,
	events *bus.Bus,
	watcher *bus.Watcher,
	ui UI,
	cfg *config.StructuredConfig,
	logger *logger.Logger,
) (*App, error) {
	if services == nil || events == nil || watcher == nil || ui == nil || cfg == nil {
		return nil, errAppNotAssembled
	}

	return &App{
		services: services,
		events:   events,
		watcher:  watcher,
		ui:       ui,
		cfg:      cfg,
		logger:   logger,
	}, nil
}

// Run starts the cross-process watcher, records the app-open visit and
// blocks in the UI until the user quits.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cancels := a.bridgeForeignWrites()
	defer func() {
		for _, c := range cancels {
			c()
		}
	}()

	a.watcher.Start(ctx, a.cfg.Workers.WatchInterval)
	defer a.watcher.Stop()
	// Catch up on writes made while no process was running.
	a.watcher.Sync()

	if err := a.services.Visitors.RecordVisit(ctx, "home", userAgent(a.cfg.App.Version)); err != nil {
		a.logger.Warn().Err(err).Msg("record visit failed")
	}

	return a.ui.Run(ctx)
}

// bridgeForeignWrites republishes watcher key events as the same bus
// topics in-process writes produce, so screens observe local and
// foreign changes through one subscription.
func (a *App) bridgeForeignWrites() []func() {
	bridge := map[string]bus.Topic{
		store.KeyUsers:          bus.TopicLocalStorageUpdated,
		store.KeyContactQueries: bus.TopicMessagesUpdated,
		store.KeySiteVisitors:   bus.TopicVisitorUpdated,

		store.KeyIsLoggedIn:      bus.TopicLocalStorageUpdated,
		store.KeyUserName:        bus.TopicLocalStorageUpdated,
		store.KeyUserEmail:       bus.TopicLocalStorageUpdated,
		store.KeyIsAdminLoggedIn: bus.TopicLocalStorageUpdated,
		store.KeyUserAvatar:      bus.TopicLocalStorageUpdated,
	}

	cancels := make([]func(), 0, len(bridge))
	for key, topic := range bridge {
		topic := topic
		cancels = append(cancels, a.watcher.SubscribeKey(key, func() {
			a.events.Publish(topic)
		}))
	}
	return cancels
}

func userAgent(version string) string {
	if version == "" {
		version = "dev"
	}
	return fmt.Sprintf("kodjobs-terminal/%s (%s; %s)", version, runtime.GOOS, runtime.GOARCH)
}
