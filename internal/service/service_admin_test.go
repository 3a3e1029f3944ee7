package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Supreeth450/KodjobsSupreeth/internal/logger"
	"github.com/Supreeth450/KodjobsSupreeth/internal/store"
	"github.com/Supreeth450/KodjobsSupreeth/internal/validators"
	"github.com/Supreeth450/KodjobsSupreeth/models"
)

func newTestAdmin(t *testing.T) (AdminService, *testDeps) {
	t.Helper()
	repos, events := newTestRepos(t)
	svc := NewAdminService(repos.Users, repos.Queries, repos.Visitors, repos.Session,
		testAdminEmail, logger.Nop())
	require.NoError(t, repos.Session.SetAdmin())
	return svc, &testDeps{repos: repos, events: events}
}

func TestAdminService_RequiresAdminSession(t *testing.T) {
	repos, _ := newTestRepos(t)
	svc := NewAdminService(repos.Users, repos.Queries, repos.Visitors, repos.Session,
		testAdminEmail, logger.Nop())
	ctx := context.Background()

	_, err := svc.Users(ctx)
	assert.ErrorIs(t, err, ErrNotAdmin)
	_, err = svc.Queries(ctx)
	assert.ErrorIs(t, err, ErrNotAdmin)
	_, err = svc.ToggleBlock(ctx, "asha@example.com")
	assert.ErrorIs(t, err, ErrNotAdmin)
	assert.ErrorIs(t, svc.DeleteUser(ctx, "asha@example.com"), ErrNotAdmin)
	assert.ErrorIs(t, svc.Respond(ctx, "1", "hi"), ErrNotAdmin)
	_, err = svc.VisitorStats(ctx)
	assert.ErrorIs(t, err, ErrNotAdmin)
}

func TestAdminService_ToggleBlock_FlipsFlag(t *testing.T) {
	svc, deps := newTestAdmin(t)
	require.NoError(t, deps.repos.Users.Insert(models.User{ID: "1", Name: "Asha", Email: "asha@example.com"}))

	blocked, err := svc.ToggleBlock(context.Background(), "asha@example.com")
	require.NoError(t, err)
	assert.True(t, blocked.IsBlocked)

	unblocked, err := svc.ToggleBlock(context.Background(), "asha@example.com")
	require.NoError(t, err)
	assert.False(t, unblocked.IsBlocked)
}

func TestAdminService_ToggleBlock_UnknownUser(t *testing.T) {
	svc, _ := newTestAdmin(t)

	_, err := svc.ToggleBlock(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestAdminService_DeleteUser(t *testing.T) {
	svc, deps := newTestAdmin(t)
	require.NoError(t, deps.repos.Users.Insert(models.User{ID: "1", Name: "Asha", Email: "asha@example.com"}))
	require.NoError(t, deps.repos.Users.Insert(models.User{ID: "2", Name: "Admin", Email: testAdminEmail}))

	require.NoError(t, svc.DeleteUser(context.Background(), "asha@example.com"))
	_, err := deps.repos.Users.FindByEmail("asha@example.com")
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestAdminService_DeleteUser_RefusesAdminAccount(t *testing.T) {
	svc, deps := newTestAdmin(t)
	require.NoError(t, deps.repos.Users.Insert(models.User{ID: "2", Name: "Admin", Email: testAdminEmail}))

	assert.ErrorIs(t, svc.DeleteUser(context.Background(), testAdminEmail), ErrCannotDeleteAdmin)
	assert.ErrorIs(t, svc.DeleteUser(context.Background(), "ADMIN@KODJOBS.COM"), ErrCannotDeleteAdmin)

	_, err := deps.repos.Users.FindByEmail(testAdminEmail)
	assert.NoError(t, err)
}

func TestAdminService_Respond_ResolvesPendingQuery(t *testing.T) {
	svc, deps := newTestAdmin(t)
	require.NoError(t, deps.repos.Queries.Append(models.ContactQuery{
		ID: "100", Name: "Asha", Email: "asha@example.com",
		Message: "help", Timestamp: time.Now(), Status: models.QueryPending,
	}))

	require.NoError(t, svc.Respond(context.Background(), "100", "Fixed now."))

	stored := deps.repos.Queries.List()
	require.Len(t, stored, 1)
	assert.Equal(t, models.QueryResolved, stored[0].Status)
	assert.Equal(t, "Fixed now.", stored[0].AdminResponse)
	require.NotNil(t, stored[0].ResponseTimestamp)
	assert.False(t, stored[0].Read)
}

func TestAdminService_Respond_Rejections(t *testing.T) {
	svc, deps := newTestAdmin(t)
	require.NoError(t, deps.repos.Queries.Append(models.ContactQuery{
		ID: "100", Name: "Asha", Email: "asha@example.com",
		Message: "help", Timestamp: time.Now(), Status: models.QueryPending,
	}))
	ctx := context.Background()

	assert.ErrorIs(t, svc.Respond(ctx, "100", "   "), validators.ErrEmptyAdminResponse)
	assert.ErrorIs(t, svc.Respond(ctx, "missing", "hi"), store.ErrQueryNotFound)

	require.NoError(t, svc.Respond(ctx, "100", "first answer"))
	assert.ErrorIs(t, svc.Respond(ctx, "100", "second answer"), store.ErrQueryAlreadyResolved)
}

func TestAdminService_VisitorStats(t *testing.T) {
	svc, deps := newTestAdmin(t)
	now := time.Now()
	require.NoError(t, deps.repos.Visitors.Record(models.Visitor{Timestamp: now, Page: "/", ID: "visitor_a"}))
	require.NoError(t, deps.repos.Visitors.Record(models.Visitor{Timestamp: now, Page: "/jobs", ID: "visitor_a"}))
	require.NoError(t, deps.repos.Visitors.Record(models.Visitor{Timestamp: now, Page: "/", ID: "visitor_b"}))

	stats, err := svc.VisitorStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalVisits)
	assert.Equal(t, 2, stats.UniqueVisitors)
}
