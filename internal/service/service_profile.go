package service

import (
	"context"

	"github.com/Supreeth450/KodjobsSupreeth/internal/bus"
	"github.com/Supreeth450/KodjobsSupreeth/internal/logger"
	"github.com/Supreeth450/KodjobsSupreeth/internal/store"
	"github.com/Supreeth450/KodjobsSupreeth/internal/validators"
	"github.com/Supreeth450/KodjobsSupreeth/models"
)

type profileService struct {
	users     store.UserRepository
	session   store.SessionRepository
	events    *bus.Bus
	validator validators.Validator
	logger    *logger.Logger
}

// NewProfileService builds the profile service for the signed-in user.
func NewProfileService(
	users store.UserRepository,
	session store.SessionRepository,
	events *bus.Bus,
	validator validators.Validator,
	log *logger.Logger,
) ProfileService {
	return &profileService{
		users:     users,
		session:   session,
		events:    events,
		validator: validator,
		logger:    log,
	}
}

// currentEmail resolves the signed-in user's e-mail from the session
// flags.
func (s *profileService) currentEmail() (string, error) {
	session := s.session.Current()
	if !session.LoggedIn || session.UserEmail == "" {
		return "", ErrNotLoggedIn
	}
	return session.UserEmail, nil
}

func (s *profileService) Load(ctx context.Context) (models.User, error) {
	email, err := s.currentEmail()
	if err != nil {
		return models.User{}, err
	}
	return s.users.FindByEmail(email)
}

func (s *profileService) Update(ctx context.Context, update ProfileUpdate) (models.User, error) {
	email, err := s.currentEmail()
	if err != nil {
		return models.User{}, err
	}
	if update.Name == "" {
		return models.User{}, validators.ErrEmptyName
	}

	if err := s.users.UpdateByEmail(email, func(u *models.User) {
		u.Name = update.Name
		u.Bio = update.Bio
		u.Skills = update.Skills
		u.AcademicDetails = update.AcademicDetails
	}); err != nil {
		return models.User{}, err
	}

	// The navigation bar shows the session name, keep it in step.
	if err := s.session.SetUserName(update.Name); err != nil {
		return models.User{}, err
	}
	s.events.Publish(bus.TopicProfileUpdated)

	s.logger.Info().Str("email", email).Msg("profile updated")
	return s.users.FindByEmail(email)
}

func (s *profileService) SetProfilePicture(ctx context.Context, dataURI string) error {
	email, err := s.currentEmail()
	if err != nil {
		return err
	}

	if err := s.users.UpdateByEmail(email, func(u *models.User) {
		u.ProfilePicture = dataURI
	}); err != nil {
		return err
	}
	// Cached separately so the navigation bar avatar survives a
	// profile reload.
	if err := s.session.SetAvatar(dataURI); err != nil {
		return err
	}
	s.events.Publish(bus.TopicProfileUpdated)
	return nil
}

func (s *profileService) SetResume(ctx context.Context, dataURI string) error {
	email, err := s.currentEmail()
	if err != nil {
		return err
	}

	if err := s.users.UpdateByEmail(email, func(u *models.User) {
		u.Resume = dataURI
	}); err != nil {
		return err
	}
	s.events.Publish(bus.TopicProfileUpdated)
	return nil
}
