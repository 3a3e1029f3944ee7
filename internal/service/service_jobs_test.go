package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Supreeth450/KodjobsSupreeth/internal/logger"
	"github.com/Supreeth450/KodjobsSupreeth/internal/validators"
	"github.com/Supreeth450/KodjobsSupreeth/models"
)

// stubJobsAPI returns a fixed page or error.
type stubJobsAPI struct {
	page models.JobPage
	err  error
}

func (s *stubJobsAPI) FetchPage(_ context.Context, _ int) (models.JobPage, error) {
	return s.page, s.err
}

func TestJobsService_Listings_PassesThroughUpstreamPage(t *testing.T) {
	upstream := models.JobPage{
		Jobs:       []models.Job{{ID: "42", Title: "Go Developer", Company: "Acme"}},
		Page:       3,
		TotalPages: 99,
	}
	svc := NewJobsService(&stubJobsAPI{page: upstream}, logger.Nop())

	page, err := svc.Listings(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, upstream, page)
	assert.False(t, page.Fallback)
}

func TestJobsService_Listings_FallsBackWhenUpstreamFails(t *testing.T) {
	svc := NewJobsService(&stubJobsAPI{err: errors.New("connection refused")}, logger.Nop())

	page, err := svc.Listings(context.Background(), 1)
	require.NoError(t, err)

	assert.True(t, page.Fallback)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 1, page.TotalPages)
	require.Len(t, page.Jobs, 6)
	assert.Equal(t, "Frontend Developer", page.Jobs[0].Title)
	assert.Equal(t, "Wipro", page.Jobs[0].Company)
	for _, job := range page.Jobs {
		assert.Equal(t, "The Muse", job.Source)
	}
}

func TestJobsService_Listings_RejectsNonPositivePage(t *testing.T) {
	svc := NewJobsService(&stubJobsAPI{}, logger.Nop())

	_, err := svc.Listings(context.Background(), 0)
	assert.ErrorIs(t, err, validators.ErrNonPositivePageIndex)
}

func TestJobsService_Filter(t *testing.T) {
	svc := NewJobsService(&stubJobsAPI{}, logger.Nop())
	page := models.JobPage{Jobs: []models.Job{
		{ID: "1", Title: "Frontend Developer", Company: "Wipro", Snippet: "React and TypeScript"},
		{ID: "2", Title: "Data Scientist", Company: "Microsoft", Snippet: "machine learning"},
		{ID: "3", Title: "DevOps Engineer", Company: "Amazon", Snippet: "AWS infrastructure"},
	}}

	t.Run("empty term keeps everything", func(t *testing.T) {
		assert.Len(t, svc.Filter(page, "   "), 3)
	})

	t.Run("matches title case-insensitively", func(t *testing.T) {
		got := svc.Filter(page, "FRONTEND")
		require.Len(t, got, 1)
		assert.Equal(t, "1", got[0].ID)
	})

	t.Run("matches company and snippet", func(t *testing.T) {
		assert.Len(t, svc.Filter(page, "microsoft"), 1)
		assert.Len(t, svc.Filter(page, "aws"), 1)
	})

	t.Run("any word of a multi-word term matches", func(t *testing.T) {
		got := svc.Filter(page, "react learning")
		assert.Len(t, got, 2)
	})

	t.Run("no match returns empty", func(t *testing.T) {
		assert.Empty(t, svc.Filter(page, "haskell"))
	})
}
