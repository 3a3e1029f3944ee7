// Package adapter holds clients for external collaborators. The only
// one today is the public jobs API, which the application treats as an
// opaque read-only listing source.
package adapter

import (
	"context"

	"github.com/Supreeth450/KodjobsSupreeth/models"
)

// JobsAPI fetches one page of job listings. Implementations return the
// mapped listings together with the upstream page count; any transport,
// status, or decode problem surfaces as an error for the caller to
// handle (the service layer falls back to a static list).
type JobsAPI interface {
	FetchPage(ctx context.Context, page int) (models.JobPage, error)
}
