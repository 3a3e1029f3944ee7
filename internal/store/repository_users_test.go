package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Supreeth450/KodjobsSupreeth/internal/bus"
	"github.com/Supreeth450/KodjobsSupreeth/internal/logger"
	"github.com/Supreeth450/KodjobsSupreeth/models"
)

func newTestStore(t *testing.T) (KeyValueStore, *bus.Bus) {
	t.Helper()
	kv, err := NewFileStore(":memory:", logger.Nop())
	require.NoError(t, err)
	return kv, bus.New()
}

func countPublishes(b *bus.Bus, topic bus.Topic) *int {
	var n int
	b.Subscribe(topic, func() { n++ })
	return &n
}

func TestUserRepository_ListDegradesToEmpty(t *testing.T) {
	kv, b := newTestStore(t)
	repo := NewUserRepository(kv, b, logger.Nop())

	// Missing collection.
	assert.Empty(t, repo.List())

	// Corrupt collection.
	require.NoError(t, kv.Write(KeyUsers, "{broken"))
	assert.Empty(t, repo.List())
}

func TestUserRepository_InsertAndFind(t *testing.T) {
	kv, b := newTestStore(t)
	repo := NewUserRepository(kv, b, logger.Nop())
	updated := countPublishes(b, bus.TopicLocalStorageUpdated)

	require.NoError(t, repo.Insert(models.User{ID: "1", Name: "Asha", Email: "asha@example.com"}))

	found, err := repo.FindByEmail("asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Asha", found.Name)
	assert.Equal(t, 1, *updated)

	_, err = repo.FindByEmail("nobody@example.com")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestUserRepository_InsertRejectsDuplicateEmail(t *testing.T) {
	kv, b := newTestStore(t)
	repo := NewUserRepository(kv, b, logger.Nop())
	require.NoError(t, repo.Insert(models.User{ID: "1", Email: "asha@example.com"}))

	err := repo.Insert(models.User{ID: "2", Email: "asha@example.com"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	assert.Len(t, repo.List(), 1)
}

func TestUserRepository_UpsertIsIdempotent(t *testing.T) {
	kv, b := newTestStore(t)
	repo := NewUserRepository(kv, b, logger.Nop())

	user := models.User{ID: "1", Name: "Asha", Email: "asha@example.com"}
	require.NoError(t, repo.Upsert(user))
	require.NoError(t, repo.Upsert(user))
	assert.Len(t, repo.List(), 1)

	user.Name = "Asha K"
	require.NoError(t, repo.Upsert(user))

	all := repo.List()
	require.Len(t, all, 1)
	assert.Equal(t, "Asha K", all[0].Name)
}

func TestUserRepository_UpdateByEmail(t *testing.T) {
	kv, b := newTestStore(t)
	repo := NewUserRepository(kv, b, logger.Nop())
	require.NoError(t, repo.Insert(models.User{ID: "1", Name: "Asha", Email: "asha@example.com"}))

	require.NoError(t, repo.UpdateByEmail("asha@example.com", func(u *models.User) {
		u.Bio = "Frontend developer"
	}))

	found, err := repo.FindByEmail("asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Frontend developer", found.Bio)
	assert.Equal(t, "Asha", found.Name)

	err = repo.UpdateByEmail("nobody@example.com", func(u *models.User) {})
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestUserRepository_DeleteByEmail(t *testing.T) {
	kv, b := newTestStore(t)
	repo := NewUserRepository(kv, b, logger.Nop())
	require.NoError(t, repo.Insert(models.User{ID: "1", Email: "asha@example.com"}))
	require.NoError(t, repo.Insert(models.User{ID: "2", Email: "ben@example.com"}))

	require.NoError(t, repo.DeleteByEmail("asha@example.com"))

	all := repo.List()
	require.Len(t, all, 1)
	assert.Equal(t, "ben@example.com", all[0].Email)

	assert.ErrorIs(t, repo.DeleteByEmail("asha@example.com"), ErrNoUserWasFound)
}
