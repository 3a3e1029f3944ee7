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

func pendingQuery(id, email string) models.ContactQuery {
	return models.ContactQuery{
		ID:        id,
		Name:      "Asha",
		Email:     email,
		Message:   "help",
		Timestamp: time.Now(),
		Status:    models.QueryPending,
	}
}

func TestQueryRepository_AppendAndListByEmail(t *testing.T) {
	kv, b := newTestStore(t)
	repo := NewQueryRepository(kv, b, logger.Nop())
	messages := countPublishes(b, bus.TopicMessagesUpdated)

	require.NoError(t, repo.Append(pendingQuery("1", "asha@example.com")))
	require.NoError(t, repo.Append(pendingQuery("2", "ben@example.com")))

	assert.Len(t, repo.List(), 2)
	mine := repo.ListByEmail("asha@example.com")
	require.Len(t, mine, 1)
	assert.Equal(t, "1", mine[0].ID)
	assert.Equal(t, 2, *messages)
}

func TestQueryRepository_Respond(t *testing.T) {
	kv, b := newTestStore(t)
	repo := NewQueryRepository(kv, b, logger.Nop())
	require.NoError(t, repo.Append(pendingQuery("1", "asha@example.com")))

	at := time.Now()
	require.NoError(t, repo.Respond("1", "Try again now.", at))

	all := repo.List()
	require.Len(t, all, 1)
	got := all[0]
	assert.Equal(t, models.QueryResolved, got.Status)
	assert.Equal(t, "Try again now.", got.AdminResponse)
	require.NotNil(t, got.ResponseTimestamp)
	assert.WithinDuration(t, at, *got.ResponseTimestamp, time.Second)
	assert.False(t, got.Read)
	assert.True(t, got.Unread())
}

func TestQueryRepository_Respond_Rejections(t *testing.T) {
	kv, b := newTestStore(t)
	repo := NewQueryRepository(kv, b, logger.Nop())
	require.NoError(t, repo.Append(pendingQuery("1", "asha@example.com")))

	assert.ErrorIs(t, repo.Respond("missing", "text", time.Now()), ErrQueryNotFound)

	require.NoError(t, repo.Respond("1", "first", time.Now()))
	assert.ErrorIs(t, repo.Respond("1", "second", time.Now()), ErrQueryAlreadyResolved)

	// The original response survives the rejected second attempt.
	assert.Equal(t, "first", repo.List()[0].AdminResponse)
}

func TestQueryRepository_Respond_ResetsReadFlag(t *testing.T) {
	kv, b := newTestStore(t)
	repo := NewQueryRepository(kv, b, logger.Nop())

	// A query the user already saw before it was answered.
	seen := pendingQuery("1", "asha@example.com")
	seen.Read = true
	require.NoError(t, repo.Append(seen))

	require.NoError(t, repo.Respond("1", "answer", time.Now()))
	assert.False(t, repo.List()[0].Read)
	assert.Equal(t, 1, repo.UnreadCount("asha@example.com"))
}

func TestQueryRepository_MarkRead(t *testing.T) {
	kv, b := newTestStore(t)
	repo := NewQueryRepository(kv, b, logger.Nop())
	require.NoError(t, repo.Append(pendingQuery("1", "asha@example.com")))

	// Pending: silent no-op, nothing published.
	messages := countPublishes(b, bus.TopicMessagesUpdated)
	require.NoError(t, repo.MarkRead("1"))
	assert.False(t, repo.List()[0].Read)
	assert.Zero(t, *messages)

	require.NoError(t, repo.Respond("1", "answer", time.Now()))
	require.NoError(t, repo.MarkRead("1"))
	assert.True(t, repo.List()[0].Read)
}

func TestQueryRepository_MarkAllRead_OnlyOwnQueries(t *testing.T) {
	kv, b := newTestStore(t)
	repo := NewQueryRepository(kv, b, logger.Nop())
	require.NoError(t, repo.Append(pendingQuery("1", "asha@example.com")))
	require.NoError(t, repo.Append(pendingQuery("2", "ben@example.com")))
	require.NoError(t, repo.Respond("1", "for asha", time.Now()))
	require.NoError(t, repo.Respond("2", "for ben", time.Now()))

	require.NoError(t, repo.MarkAllRead("asha@example.com"))

	assert.Zero(t, repo.UnreadCount("asha@example.com"))
	assert.Equal(t, 1, repo.UnreadCount("ben@example.com"))
}

func TestQueryRepository_UnreadCount(t *testing.T) {
	kv, b := newTestStore(t)
	repo := NewQueryRepository(kv, b, logger.Nop())

	assert.Zero(t, repo.UnreadCount("asha@example.com"))

	require.NoError(t, repo.Append(pendingQuery("1", "asha@example.com")))
	require.NoError(t, repo.Append(pendingQuery("2", "asha@example.com")))
	assert.Zero(t, repo.UnreadCount("asha@example.com"))

	require.NoError(t, repo.Respond("1", "answer", time.Now()))
	assert.Equal(t, 1, repo.UnreadCount("asha@example.com"))
}
