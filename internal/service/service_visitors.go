package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Supreeth450/KodjobsSupreeth/internal/logger"
	"github.com/Supreeth450/KodjobsSupreeth/internal/store"
	"github.com/Supreeth450/KodjobsSupreeth/internal/validators"
	"github.com/Supreeth450/KodjobsSupreeth/models"
)

type visitorService struct {
	visitors store.VisitorRepository
	session  store.SessionRepository
	logger   *logger.Logger
}

// NewVisitorService builds the visit tracking service.
func NewVisitorService(visitors store.VisitorRepository, session store.SessionRepository, log *logger.Logger) VisitorService {
	return &visitorService{
		visitors: visitors,
		session:  session,
		logger:   log,
	}
}

func (s *visitorService) VisitorID(ctx context.Context) (string, error) {
	if id, ok := s.session.VisitorID(); ok && id != "" {
		return id, nil
	}

	// Minted once per installation, then reused for every visit.
	id := "visitor_" + uuid.NewString()
	if err := s.session.SetVisitorID(id); err != nil {
		return "", err
	}
	s.logger.Info().Str("visitorId", id).Msg("assigned new visitor id")
	return id, nil
}

func (s *visitorService) RecordVisit(ctx context.Context, page, userAgent string) error {
	if page == "" {
		return validators.ErrEmptyPage
	}
	id, err := s.VisitorID(ctx)
	if err != nil {
		return err
	}

	return s.visitors.Record(models.Visitor{
		Timestamp: time.Now(),
		Page:      page,
		UserAgent: userAgent,
		ID:        id,
	})
}

func (s *visitorService) Stats(ctx context.Context) (models.VisitorStats, error) {
	return s.visitors.Stats(), nil
}

func (s *visitorService) Visits(ctx context.Context) ([]models.Visitor, error) {
	return s.visitors.List(), nil
}
