package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Supreeth450/KodjobsSupreeth/internal/bus"
	"github.com/Supreeth450/KodjobsSupreeth/internal/logger"
	"github.com/Supreeth450/KodjobsSupreeth/models"
)

func TestVisitorRepository_RecordAppends(t *testing.T) {
	kv, b := newTestStore(t)
	repo := NewVisitorRepository(kv, b, logger.Nop())
	visits := countPublishes(b, bus.TopicVisitorUpdated)

	require.NoError(t, repo.Record(models.Visitor{Timestamp: time.Now(), Page: "/", ID: "visitor_a"}))
	require.NoError(t, repo.Record(models.Visitor{Timestamp: time.Now(), Page: "/jobs", ID: "visitor_a"}))

	all := repo.List()
	require.Len(t, all, 2)
	assert.Equal(t, "/", all[0].Page)
	assert.Equal(t, "/jobs", all[1].Page)
	assert.Equal(t, 2, *visits)
}

func TestVisitorRepository_Stats(t *testing.T) {
	kv, b := newTestStore(t)
	repo := NewVisitorRepository(kv, b, logger.Nop())

	assert.Equal(t, models.VisitorStats{}, repo.Stats())

	now := time.Now()
	require.NoError(t, repo.Record(models.Visitor{Timestamp: now, Page: "/", ID: "visitor_a"}))
	require.NoError(t, repo.Record(models.Visitor{Timestamp: now, Page: "/", ID: "visitor_b"}))
	require.NoError(t, repo.Record(models.Visitor{Timestamp: now, Page: "/jobs", ID: "visitor_a"}))

	stats := repo.Stats()
	assert.Equal(t, 3, stats.TotalVisits)
	assert.Equal(t, 2, stats.UniqueVisitors)
}
