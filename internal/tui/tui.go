// Package tui is the terminal front end of the kodjobs client. One
// Bubble Tea program hosts every screen; change notifications from the
// bus and the cross-process watcher are forwarded into the program as
// messages so mounted screens re-read their repositories.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Supreeth450/KodjobsSupreeth/internal/bus"
	"github.com/Supreeth450/KodjobsSupreeth/internal/config"
	"github.com/Supreeth450/KodjobsSupreeth/internal/logger"
	"github.com/Supreeth450/KodjobsSupreeth/internal/service"
	"github.com/Supreeth450/KodjobsSupreeth/internal/workers"
)

type TUI struct {
	services  *service.Services
	events    *bus.Bus
	intervals config.Workers
	logger    *logger.Logger
}

func New(services *service.Services, events *bus.Bus, intervals config.Workers, logger *logger.Logger) *TUI {
	return &TUI{
		services:  services,
		events:    events,
		intervals: intervals,
		logger:    logger,
	}
}

// Run starts the program and blocks until the user quits. While it
// runs, every bus topic is forwarded into the program, and two backstop
// pollers tick the mailbox and the admin dashboard in case a
// notification was missed.
func (t *TUI) Run(ctx context.Context) error {
	program := tea.NewProgram(newAppModel(ctx, t.services, t.logger), tea.WithAltScreen())

	topics := []bus.Topic{
		bus.TopicVisitorUpdated,
		bus.TopicMessagesUpdated,
		bus.TopicUserLoggedOut,
		bus.TopicUserLoggedIn,
		bus.TopicProfileUpdated,
		bus.TopicLocalStorageUpdated,
	}
	cancels := make([]func(), 0, len(topics))
	for _, topic := range topics {
		topic := topic
		cancels = append(cancels, t.events.Subscribe(topic, func() {
			program.Send(storeChangedMsg{topic: topic})
		}))
	}
	defer func() {
		for _, cancel := range cancels {
			cancel()
		}
	}()

	mailboxPoll := workers.NewPoller(func() {
		program.Send(mailboxPollMsg{})
	})
	mailboxPoll.Start(ctx, t.intervals.MailboxPollInterval)
	defer mailboxPoll.Stop()

	adminPoll := workers.NewPoller(func() {
		program.Send(adminPollMsg{})
	})
	adminPoll.Start(ctx, t.intervals.AdminPollInterval)
	defer adminPoll.Stop()

	_, err := program.Run()
	return err
}
