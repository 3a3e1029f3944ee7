package service

import (
	"github.com/Supreeth450/KodjobsSupreeth/internal/adapter"
	"github.com/Supreeth450/KodjobsSupreeth/internal/bus"
	"github.com/Supreeth450/KodjobsSupreeth/internal/config"
	"github.com/Supreeth450/KodjobsSupreeth/internal/logger"
	"github.com/Supreeth450/KodjobsSupreeth/internal/store"
	"github.com/Supreeth450/KodjobsSupreeth/internal/validators"
)

// Services groups every application service for injection into the
// views and handlers.
type Services struct {
	Auth     AuthService
	Contact  ContactService
	Profile  ProfileService
	Visitors VisitorService
	Jobs     JobsService
	Admin    AdminService
	Chat     ChatService
}

// NewServices wires the services to the repositories, the change bus
// and the upstream jobs API.
func NewServices(
	repos *store.Repositories,
	events *bus.Bus,
	jobsAPI adapter.JobsAPI,
	cfg config.StructuredConfig,
	log *logger.Logger,
) *Services {
	validator := validators.NewInputValidator()
	return &Services{
		Auth:     NewAuthService(repos.Users, repos.Session, events, validator, cfg.App.AdminEmail, cfg.App.AdminPassword, log),
		Contact:  NewContactService(repos.Queries, validator, log),
		Profile:  NewProfileService(repos.Users, repos.Session, events, validator, log),
		Visitors: NewVisitorService(repos.Visitors, repos.Session, log),
		Jobs:     NewJobsService(jobsAPI, log),
		Admin:    NewAdminService(repos.Users, repos.Queries, repos.Visitors, repos.Session, cfg.App.AdminEmail, log),
		Chat:     NewChatService(),
	}
}
