package service

import (
	"context"
	"strings"
	"time"

	"github.com/Supreeth450/KodjobsSupreeth/internal/adapter"
	"github.com/Supreeth450/KodjobsSupreeth/internal/logger"
	"github.com/Supreeth450/KodjobsSupreeth/internal/validators"
	"github.com/Supreeth450/KodjobsSupreeth/models"
)

type jobsService struct {
	api    adapter.JobsAPI
	logger *logger.Logger
}

// NewJobsService builds the job listings service on top of the
// upstream API client.
func NewJobsService(api adapter.JobsAPI, log *logger.Logger) JobsService {
	return &jobsService{
		api:    api,
		logger: log,
	}
}

func (s *jobsService) Listings(ctx context.Context, page int) (models.JobPage, error) {
	if page < 1 {
		return models.JobPage{}, validators.ErrNonPositivePageIndex
	}

	fetched, err := s.api.FetchPage(ctx, page)
	if err != nil {
		// The upstream being down is not fatal, degrade to the
		// built-in listings and let the view flag them as such.
		s.logger.Warn().Err(err).Int("page", page).Msg("job listings fetch failed, serving fallback")
		return fallbackPage(), nil
	}
	return fetched, nil
}

// Filter keeps jobs where any whitespace-separated word of the term
// occurs in the title, company or snippet, case-insensitively. An
// empty term keeps everything.
func (s *jobsService) Filter(page models.JobPage, term string) []models.Job {
	terms := strings.Fields(strings.ToLower(term))
	if len(terms) == 0 {
		return page.Jobs
	}

	var matched []models.Job
	for _, job := range page.Jobs {
		title := strings.ToLower(job.Title)
		company := strings.ToLower(job.Company)
		snippet := strings.ToLower(job.Snippet)
		for _, t := range terms {
			if strings.Contains(title, t) || strings.Contains(company, t) || strings.Contains(snippet, t) {
				matched = append(matched, job)
				break
			}
		}
	}
	return matched
}

// fallbackPage is the static single page served when the upstream API
// is unreachable.
func fallbackPage() models.JobPage {
	return models.JobPage{
		Jobs:       fallbackJobs(),
		Page:       1,
		TotalPages: 1,
		Fallback:   true,
	}
}

func fallbackJobs() []models.Job {
	daysAgo := func(days int) time.Time {
		return time.Now().AddDate(0, 0, -days)
	}
	return []models.Job{
		{
			ID:       "1001",
			Title:    "Frontend Developer",
			Company:  "Wipro",
			Location: "Manila, Philippines",
			Type:     "Full-time",
			Salary:   "$80,000 - $100,000",
			Link:     "#",
			Snippet:  "We are looking for a skilled Frontend Developer with experience in React, TypeScript, and Material-UI to join our team.",
			Updated:  daysAgo(22),
			Source:   "The Muse",
		},
		{
			ID:       "1002",
			Title:    "Snowflake Data Engineer",
			Company:  "EPAM Systems",
			Location: "Bangalore, India",
			Type:     "Full-time",
			Link:     "#",
			Snippet:  "Join our team as a Snowflake Data Engineer to design and implement data solutions using Snowflake, SQL, and Python.",
			Updated:  daysAgo(101),
			Source:   "The Muse",
		},
		{
			ID:       "1003",
			Title:    "Legal Counsel - Cyber & Product Security",
			Company:  "Schneider Electric",
			Location: "Puteaux, France",
			Type:     "Full-time",
			Link:     "#",
			Snippet:  "We are seeking a Legal Counsel specialized in Cyber & Product Security to join our legal team in Europe.",
			Updated:  daysAgo(20),
			Source:   "The Muse",
		},
		{
			ID:       "1004",
			Title:    "UX/UI Designer",
			Company:  "Google",
			Location: "Mountain View, CA",
			Type:     "Full-time",
			Link:     "#",
			Snippet:  "Design user experiences for Google products that are simple, useful, and delightful.",
			Updated:  daysAgo(5),
			Source:   "The Muse",
		},
		{
			ID:       "1005",
			Title:    "Data Scientist",
			Company:  "Microsoft",
			Location: "Redmond, WA",
			Type:     "Full-time",
			Link:     "#",
			Snippet:  "Apply machine learning and statistical techniques to solve complex business problems.",
			Updated:  daysAgo(10),
			Source:   "The Muse",
		},
		{
			ID:       "1006",
			Title:    "DevOps Engineer",
			Company:  "Amazon",
			Location: "Seattle, WA",
			Type:     "Full-time",
			Link:     "#",
			Snippet:  "Build and maintain infrastructure for high-traffic web services using AWS technologies.",
			Updated:  daysAgo(15),
			Source:   "The Muse",
		},
	}
}
