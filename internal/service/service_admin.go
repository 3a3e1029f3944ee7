package service

import (
	"context"
	"strings"
	"time"

	"github.com/Supreeth450/KodjobsSupreeth/internal/logger"
	"github.com/Supreeth450/KodjobsSupreeth/internal/store"
	"github.com/Supreeth450/KodjobsSupreeth/internal/validators"
	"github.com/Supreeth450/KodjobsSupreeth/models"
)

type adminService struct {
	users    store.UserRepository
	queries  store.QueryRepository
	visitors store.VisitorRepository
	session  store.SessionRepository

	adminEmail string

	logger *logger.Logger
}

// NewAdminService builds the dashboard service.
func NewAdminService(
	users store.UserRepository,
	queries store.QueryRepository,
	visitors store.VisitorRepository,
	session store.SessionRepository,
	adminEmail string,
	log *logger.Logger,
) AdminService {
	return &adminService{
		users:      users,
		queries:    queries,
		visitors:   visitors,
		session:    session,
		adminEmail: adminEmail,
		logger:     log,
	}
}

// requireAdmin gates every dashboard operation on the admin flag.
func (s *adminService) requireAdmin() error {
	if !s.session.Current().AdminLoggedIn {
		return ErrNotAdmin
	}
	return nil
}

func (s *adminService) Users(ctx context.Context) ([]models.User, error) {
	if err := s.requireAdmin(); err != nil {
		return nil, err
	}
	return s.users.List(), nil
}

func (s *adminService) ToggleBlock(ctx context.Context, email string) (models.User, error) {
	if err := s.requireAdmin(); err != nil {
		return models.User{}, err
	}

	var toggled models.User
	if err := s.users.UpdateByEmail(email, func(u *models.User) {
		u.IsBlocked = !u.IsBlocked
		toggled = *u
	}); err != nil {
		return models.User{}, err
	}

	s.logger.Info().Str("email", email).Bool("isBlocked", toggled.IsBlocked).Msg("user block flag toggled")
	return toggled, nil
}

func (s *adminService) DeleteUser(ctx context.Context, email string) error {
	if err := s.requireAdmin(); err != nil {
		return err
	}
	if strings.EqualFold(email, s.adminEmail) {
		return ErrCannotDeleteAdmin
	}

	if err := s.users.DeleteByEmail(email); err != nil {
		return err
	}
	s.logger.Info().Str("email", email).Msg("user deleted")
	return nil
}

func (s *adminService) Queries(ctx context.Context) ([]models.ContactQuery, error) {
	if err := s.requireAdmin(); err != nil {
		return nil, err
	}
	return s.queries.List(), nil
}

func (s *adminService) Respond(ctx context.Context, id, response string) error {
	if err := s.requireAdmin(); err != nil {
		return err
	}
	if strings.TrimSpace(response) == "" {
		return validators.ErrEmptyAdminResponse
	}

	if err := s.queries.Respond(id, response, time.Now()); err != nil {
		return err
	}
	s.logger.Info().Str("id", id).Msg("query resolved")
	return nil
}

func (s *adminService) VisitorStats(ctx context.Context) (models.VisitorStats, error) {
	if err := s.requireAdmin(); err != nil {
		return models.VisitorStats{}, err
	}
	return s.visitors.Stats(), nil
}
