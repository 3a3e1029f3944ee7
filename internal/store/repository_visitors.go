package store

import (
	"github.com/Supreeth450/KodjobsSupreeth/internal/bus"
	"github.com/Supreeth450/KodjobsSupreeth/internal/logger"
	"github.com/Supreeth450/KodjobsSupreeth/models"
)

// visitorRepository is the append-only "siteVisitors" log. Records are
// never updated or removed; Record publishes visitorUpdated so mounted
// dashboards re-read.
type visitorRepository struct {
	kv     KeyValueStore
	bus    *bus.Bus
	logger *logger.Logger
}

func NewVisitorRepository(kv KeyValueStore, b *bus.Bus, logger *logger.Logger) VisitorRepository {
	logger.Debug().Msg("creating visitor repository")
	return &visitorRepository{kv: kv, bus: b, logger: logger}
}

func (r *visitorRepository) List() []models.Visitor {
	return readCollection[models.Visitor](r.kv, KeySiteVisitors)
}

func (r *visitorRepository) Record(visit models.Visitor) error {
	visits := r.List()
	if err := writeCollection(r.kv, KeySiteVisitors, append(visits, visit)); err != nil {
		return err
	}
	r.bus.Publish(bus.TopicVisitorUpdated)
	return nil
}

func (r *visitorRepository) Stats() models.VisitorStats {
	visits := r.List()

	unique := make(map[string]struct{}, len(visits))
	for _, v := range visits {
		unique[v.ID] = struct{}{}
	}

	return models.VisitorStats{
		TotalVisits:    len(visits),
		UniqueVisitors: len(unique),
	}
}
