package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Supreeth450/KodjobsSupreeth/internal/bus"
	"github.com/Supreeth450/KodjobsSupreeth/internal/logger"
	"github.com/Supreeth450/KodjobsSupreeth/internal/store"
	"github.com/Supreeth450/KodjobsSupreeth/internal/validators"
)

const (
	testAdminEmail    = "admin@kodjobs.com"
	testAdminPassword = "admin123"
)

// testDeps bundles the backing repositories and bus for assertions.
type testDeps struct {
	repos  *store.Repositories
	events *bus.Bus
}

// newTestRepos builds real repositories over an in-memory store, so
// service tests exercise the full read-modify-write path instead of a
// mock.
func newTestRepos(t *testing.T) (*store.Repositories, *bus.Bus) {
	t.Helper()

	kv, err := store.NewFileStore(":memory:", logger.Nop())
	require.NoError(t, err)

	events := bus.New()
	return store.NewRepositories(kv, events, logger.Nop()), events
}

func newTestAuth(t *testing.T) (AuthService, *store.Repositories, *bus.Bus) {
	t.Helper()

	repos, events := newTestRepos(t)
	auth := NewAuthService(repos.Users, repos.Session, events, validators.NewInputValidator(),
		testAdminEmail, testAdminPassword, logger.Nop())
	return auth, repos, events
}

// countTopic subscribes a counter to a topic and returns a pointer to
// the count.
func countTopic(events *bus.Bus, topic bus.Topic) *int {
	var n int
	events.Subscribe(topic, func() { n++ })
	return &n
}

// registerTestUser registers an account through the service so the
// stored record matches what production writes.
func registerTestUser(t *testing.T, auth AuthService, name, email, password string) {
	t.Helper()
	_, err := auth.Register(context.Background(), name, email, password, password)
	require.NoError(t, err)
}
