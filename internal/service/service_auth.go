package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/Supreeth450/KodjobsSupreeth/internal/bus"
	"github.com/Supreeth450/KodjobsSupreeth/internal/logger"
	"github.com/Supreeth450/KodjobsSupreeth/internal/store"
	"github.com/Supreeth450/KodjobsSupreeth/internal/validators"
	"github.com/Supreeth450/KodjobsSupreeth/models"
)

type authService struct {
	users     store.UserRepository
	session   store.SessionRepository
	events    *bus.Bus
	validator validators.Validator

	adminEmail    string
	adminPassword string

	logger *logger.Logger
}

// NewAuthService builds the authentication service on top of the user
// and session repositories.
func NewAuthService(
	users store.UserRepository,
	session store.SessionRepository,
	events *bus.Bus,
	validator validators.Validator,
	adminEmail, adminPassword string,
	log *logger.Logger,
) AuthService {
	return &authService{
		users:         users,
		session:       session,
		events:        events,
		validator:     validator,
		adminEmail:    adminEmail,
		adminPassword: adminPassword,
		logger:        log,
	}
}

func (s *authService) Register(ctx context.Context, name, email, password, confirm string) (models.User, error) {
	if password != confirm {
		return models.User{}, validators.ErrPasswordsDoNotMatch
	}

	user := models.User{
		ID:           strconv.FormatInt(time.Now().UnixMilli(), 10),
		Name:         name,
		Email:        email,
		Password:     password,
		RegisteredAt: time.Now(),
	}
	if err := s.validator.Validate(ctx, user); err != nil {
		return models.User{}, err
	}

	if err := s.users.Insert(user); err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			s.logger.Info().Str("email", email).Msg("registration rejected: email already registered")
		}
		return models.User{}, err
	}

	// A successful registration signs the new user in right away.
	if err := s.session.SetUser(user.Name, user.Email); err != nil {
		return models.User{}, err
	}
	s.events.Publish(bus.TopicUserLoggedIn)

	s.logger.Info().Str("email", email).Msg("user registered")
	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (models.User, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, err
	}
	if user.Password != password {
		return models.User{}, ErrInvalidCredentials
	}
	if user.IsBlocked {
		s.logger.Info().Str("email", email).Msg("blocked user denied login")
		return models.User{}, ErrUserBlocked
	}

	now := time.Now()
	if err := s.users.UpdateByEmail(email, func(u *models.User) {
		u.LastLogin = &now
	}); err != nil {
		return models.User{}, err
	}
	user.LastLogin = &now

	// A fresh login always drops a stale admin flag first.
	if err := s.session.ClearAdmin(); err != nil {
		return models.User{}, err
	}
	if err := s.session.SetUser(displayName(user), user.Email); err != nil {
		return models.User{}, err
	}
	if email == s.adminEmail && password == s.adminPassword {
		if err := s.session.SetAdmin(); err != nil {
			return models.User{}, err
		}
	}
	s.events.Publish(bus.TopicUserLoggedIn)

	s.logger.Info().Str("email", email).Msg("user logged in")
	return user, nil
}

func (s *authService) Logout(ctx context.Context) error {
	if err := s.session.Clear(); err != nil {
		return err
	}
	s.events.Publish(bus.TopicUserLoggedOut)
	s.logger.Info().Msg("user logged out")
	return nil
}

func (s *authService) AdminLogin(ctx context.Context, email, password string) error {
	if email != s.adminEmail || password != s.adminPassword {
		s.logger.Info().Str("email", email).Msg("admin login rejected")
		return ErrInvalidCredentials
	}
	if err := s.session.SetAdmin(); err != nil {
		return err
	}
	s.logger.Info().Msg("admin logged in")
	return nil
}

func (s *authService) AdminLogout(ctx context.Context) error {
	return s.session.ClearAdmin()
}

func (s *authService) ResetPassword(ctx context.Context, email, password, confirm string) error {
	if password != confirm {
		return validators.ErrPasswordsDoNotMatch
	}
	if password == "" {
		return validators.ErrEmptyPassword
	}
	if len(password) < validators.MinPasswordLength {
		return validators.ErrPasswordTooShort
	}

	if _, err := s.users.FindByEmail(email); err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return ErrNoAccountForEmail
		}
		return err
	}

	if err := s.users.UpdateByEmail(email, func(u *models.User) {
		u.Password = password
	}); err != nil {
		return err
	}

	s.logger.Info().Str("email", email).Msg("password reset")
	return nil
}

func (s *authService) Session(ctx context.Context) (models.Session, error) {
	return s.session.Current(), nil
}

// displayName prefers the stored name and falls back to the part of
// the e-mail address before the @.
func displayName(user models.User) string {
	if user.Name != "" {
		return user.Name
	}
	name, _, _ := strings.Cut(user.Email, "@")
	return name
}
