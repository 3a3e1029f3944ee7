package store

import (
	"github.com/Supreeth450/KodjobsSupreeth/internal/bus"
	"github.com/Supreeth450/KodjobsSupreeth/internal/logger"
)

// Repositories groups the collection repositories into a single value
// for injection into the service layer. Constructed once per process;
// components never reach for a global store.
type Repositories struct {
	Users    UserRepository
	Queries  QueryRepository
	Visitors VisitorRepository
	Session  SessionRepository
}

// NewRepositories wires every repository to the same store and change
// bus.
func NewRepositories(kv KeyValueStore, b *bus.Bus, logger *logger.Logger) *Repositories {
	logger.Info().Msg("creating repositories...")
	return &Repositories{
		Users:    NewUserRepository(kv, b, logger),
		Queries:  NewQueryRepository(kv, b, logger),
		Visitors: NewVisitorRepository(kv, b, logger),
		Session:  NewSessionRepository(kv, logger),
	}
}
