package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Supreeth450/KodjobsSupreeth/internal/logger"
	"github.com/Supreeth450/KodjobsSupreeth/internal/validators"
	"github.com/Supreeth450/KodjobsSupreeth/models"
)

func newTestContact(t *testing.T) (ContactService, *testDeps) {
	t.Helper()
	repos, events := newTestRepos(t)
	svc := NewContactService(repos.Queries, validators.NewInputValidator(), logger.Nop())
	return svc, &testDeps{repos: repos, events: events}
}

func TestContactService_Submit_AssignsIdentityAndPendingStatus(t *testing.T) {
	svc, deps := newTestContact(t)

	query, err := svc.Submit(context.Background(), models.ContactQuery{
		Name:    "Asha",
		Email:   "asha@example.com",
		Subject: "Login trouble",
		Message: "I cannot sign in from my laptop.",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, query.ID)
	assert.Equal(t, models.QueryPending, query.Status)
	assert.False(t, query.Timestamp.IsZero())
	assert.Empty(t, query.AdminResponse)
	assert.Nil(t, query.ResponseTimestamp)
	assert.False(t, query.Read)

	stored := deps.repos.Queries.List()
	require.Len(t, stored, 1)
	assert.Equal(t, query.ID, stored[0].ID)
}

func TestContactService_Submit_StripsCallerSuppliedResolution(t *testing.T) {
	svc, _ := newTestContact(t)

	now := time.Now()
	query, err := svc.Submit(context.Background(), models.ContactQuery{
		Name:              "Asha",
		Email:             "asha@example.com",
		Message:           "help",
		Status:            models.QueryResolved,
		AdminResponse:     "forged",
		ResponseTimestamp: &now,
		Read:              true,
	})
	require.NoError(t, err)

	assert.Equal(t, models.QueryPending, query.Status)
	assert.Empty(t, query.AdminResponse)
	assert.Nil(t, query.ResponseTimestamp)
	assert.False(t, query.Read)
}

func TestContactService_Submit_ValidatesInput(t *testing.T) {
	svc, _ := newTestContact(t)
	ctx := context.Background()

	_, err := svc.Submit(ctx, models.ContactQuery{Email: "a@b.co", Message: "hi"})
	assert.ErrorIs(t, err, validators.ErrEmptyName)

	_, err = svc.Submit(ctx, models.ContactQuery{Name: "A", Email: "bad", Message: "hi"})
	assert.ErrorIs(t, err, validators.ErrInvalidEmail)

	_, err = svc.Submit(ctx, models.ContactQuery{Name: "A", Email: "a@b.co"})
	assert.ErrorIs(t, err, validators.ErrEmptyMessage)
}

func TestContactService_Mailbox_FiltersByEmail(t *testing.T) {
	svc, _ := newTestContact(t)
	ctx := context.Background()

	_, err := svc.Submit(ctx, models.ContactQuery{Name: "Asha", Email: "asha@example.com", Message: "one"})
	require.NoError(t, err)
	_, err = svc.Submit(ctx, models.ContactQuery{Name: "Ben", Email: "ben@example.com", Message: "two"})
	require.NoError(t, err)

	mine, err := svc.Mailbox(ctx, "asha@example.com")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "one", mine[0].Message)

	_, err = svc.Mailbox(ctx, "")
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestContactService_UnreadLifecycle(t *testing.T) {
	svc, deps := newTestContact(t)
	ctx := context.Background()

	query, err := svc.Submit(ctx, models.ContactQuery{Name: "Asha", Email: "asha@example.com", Message: "help"})
	require.NoError(t, err)

	// A pending query never counts as unread.
	n, err := svc.UnreadCount(ctx, "asha@example.com")
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, deps.repos.Queries.Respond(query.ID, "Try resetting your password.", time.Now()))

	n, err = svc.UnreadCount(ctx, "asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// Opening the mailbox drains the badge.
	mailbox, err := svc.OpenMailbox(ctx, "asha@example.com")
	require.NoError(t, err)
	require.Len(t, mailbox, 1)
	assert.True(t, mailbox[0].Read)

	n, err = svc.UnreadCount(ctx, "asha@example.com")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestContactService_MarkRead_PendingIsNoOp(t *testing.T) {
	svc, deps := newTestContact(t)
	ctx := context.Background()

	query, err := svc.Submit(ctx, models.ContactQuery{Name: "Asha", Email: "asha@example.com", Message: "help"})
	require.NoError(t, err)

	require.NoError(t, svc.MarkRead(ctx, query.ID))

	stored := deps.repos.Queries.List()
	require.Len(t, stored, 1)
	assert.False(t, stored[0].Read)
}
