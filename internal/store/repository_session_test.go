package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Supreeth450/KodjobsSupreeth/internal/logger"
)

func TestSessionRepository_EmptyStoreIsAnonymous(t *testing.T) {
	kv, _ := newTestStore(t)
	repo := NewSessionRepository(kv, logger.Nop())

	session := repo.Current()
	assert.True(t, session.Anonymous())
	assert.Empty(t, session.UserName)
	assert.Empty(t, session.UserEmail)
}

func TestSessionRepository_SetUserWritesIndividualFlags(t *testing.T) {
	kv, _ := newTestStore(t)
	repo := NewSessionRepository(kv, logger.Nop())

	require.NoError(t, repo.SetUser("Asha", "asha@example.com"))

	// The flags live under their own keys.
	flag, _ := kv.Read(KeyIsLoggedIn)
	assert.Equal(t, "true", flag)
	name, _ := kv.Read(KeyUserName)
	assert.Equal(t, "Asha", name)
	email, _ := kv.Read(KeyUserEmail)
	assert.Equal(t, "asha@example.com", email)

	session := repo.Current()
	assert.True(t, session.LoggedIn)
	assert.False(t, session.AdminLoggedIn)
}

func TestSessionRepository_AdminFlag(t *testing.T) {
	kv, _ := newTestStore(t)
	repo := NewSessionRepository(kv, logger.Nop())

	require.NoError(t, repo.SetAdmin())
	assert.True(t, repo.Current().AdminLoggedIn)

	require.NoError(t, repo.ClearAdmin())
	assert.False(t, repo.Current().AdminLoggedIn)
	_, ok := kv.Read(KeyIsAdminLoggedIn)
	assert.False(t, ok)
}

func TestSessionRepository_ClearRemovesWholeFlagGroup(t *testing.T) {
	kv, _ := newTestStore(t)
	repo := NewSessionRepository(kv, logger.Nop())
	require.NoError(t, repo.SetUser("Asha", "asha@example.com"))
	require.NoError(t, repo.SetAdmin())

	require.NoError(t, repo.Clear())

	assert.True(t, repo.Current().Anonymous())
	for _, key := range []string{KeyIsLoggedIn, KeyUserName, KeyUserEmail, KeyIsAdminLoggedIn} {
		_, ok := kv.Read(key)
		assert.False(t, ok, "key %s should be gone", key)
	}
}

func TestSessionRepository_ClearKeepsVisitorIDAndAvatar(t *testing.T) {
	kv, _ := newTestStore(t)
	repo := NewSessionRepository(kv, logger.Nop())
	require.NoError(t, repo.SetVisitorID("visitor_9"))
	require.NoError(t, repo.SetAvatar("data:image/png;base64,AAAA"))
	require.NoError(t, repo.SetUser("Asha", "asha@example.com"))

	require.NoError(t, repo.Clear())

	id, ok := repo.VisitorID()
	require.True(t, ok)
	assert.Equal(t, "visitor_9", id)
	avatar, ok := repo.Avatar()
	require.True(t, ok)
	assert.NotEmpty(t, avatar)
}

func TestSessionRepository_SetUserName(t *testing.T) {
	kv, _ := newTestStore(t)
	repo := NewSessionRepository(kv, logger.Nop())
	require.NoError(t, repo.SetUser("Asha", "asha@example.com"))

	require.NoError(t, repo.SetUserName("Asha K"))
	assert.Equal(t, "Asha K", repo.Current().UserName)
}
