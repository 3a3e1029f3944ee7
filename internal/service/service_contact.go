package service

import (
	"context"
	"strconv"
	"time"

	"github.com/Supreeth450/KodjobsSupreeth/internal/logger"
	"github.com/Supreeth450/KodjobsSupreeth/internal/store"
	"github.com/Supreeth450/KodjobsSupreeth/internal/validators"
	"github.com/Supreeth450/KodjobsSupreeth/models"
)

type contactService struct {
	queries   store.QueryRepository
	validator validators.Validator
	logger    *logger.Logger
}

// NewContactService builds the support query service on top of the
// query repository.
func NewContactService(queries store.QueryRepository, validator validators.Validator, log *logger.Logger) ContactService {
	return &contactService{
		queries:   queries,
		validator: validator,
		logger:    log,
	}
}

func (s *contactService) Submit(ctx context.Context, query models.ContactQuery) (models.ContactQuery, error) {
	if err := s.validator.Validate(ctx, query); err != nil {
		return models.ContactQuery{}, err
	}

	query.ID = strconv.FormatInt(time.Now().UnixMilli(), 10)
	query.Timestamp = time.Now()
	query.Status = models.QueryPending
	query.AdminResponse = ""
	query.ResponseTimestamp = nil
	query.Read = false

	if err := s.queries.Append(query); err != nil {
		return models.ContactQuery{}, err
	}

	s.logger.Info().Str("id", query.ID).Str("email", query.Email).Msg("support query submitted")
	return query, nil
}

func (s *contactService) Mailbox(ctx context.Context, email string) ([]models.ContactQuery, error) {
	if email == "" {
		return nil, ErrNotLoggedIn
	}
	return s.queries.ListByEmail(email), nil
}

func (s *contactService) OpenMailbox(ctx context.Context, email string) ([]models.ContactQuery, error) {
	if email == "" {
		return nil, ErrNotLoggedIn
	}
	// Opening the mailbox counts as reading everything in it.
	if err := s.queries.MarkAllRead(email); err != nil {
		return nil, err
	}
	return s.queries.ListByEmail(email), nil
}

func (s *contactService) MarkRead(ctx context.Context, id string) error {
	return s.queries.MarkRead(id)
}

func (s *contactService) UnreadCount(ctx context.Context, email string) (int, error) {
	if email == "" {
		return 0, nil
	}
	return s.queries.UnreadCount(email), nil
}
