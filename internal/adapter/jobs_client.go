package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/Supreeth450/KodjobsSupreeth/models"
)

// JobsClientConfig configures the jobs API client.
type JobsClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

// museJob and museResponse mirror the wire shape of The Muse public
// jobs API; only the consumed fields are declared.
type museJob struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Type            string `json:"type"`
	PublicationDate string `json:"publication_date"`
	Company         struct {
		Name string `json:"name"`
	} `json:"company"`
	Locations []struct {
		Name string `json:"name"`
	} `json:"locations"`
	Contents string `json:"contents"`
	Refs     struct {
		LandingPage string `json:"landing_page"`
	} `json:"refs"`
}

type museResponse struct {
	Results   []museJob `json:"results"`
	PageCount int       `json:"page_count"`
}

type museJobsClient struct {
	client *resty.Client
}

// NewJobsClient constructs a JobsAPI backed by The Muse public API.
func NewJobsClient(cfg JobsClientConfig) JobsAPI {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.themuse.com/api/public"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &museJobsClient{client: cli}
}

func (c *museJobsClient) FetchPage(ctx context.Context, page int) (models.JobPage, error) {
	if page < 1 {
		page = 1
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("page", strconv.Itoa(page)).
		SetQueryParam("descending", "true").
		Get("/jobs")
	if err != nil {
		return models.JobPage{}, fmt.Errorf("jobs page request: %w", err)
	}
	if resp.IsError() {
		return models.JobPage{}, fmt.Errorf("%w: %s", ErrUpstreamStatus, resp.Status())
	}

	var payload museResponse
	if err = json.Unmarshal(resp.Body(), &payload); err != nil {
		return models.JobPage{}, fmt.Errorf("%w: %s", ErrDecodeResponse, err)
	}

	jobs := make([]models.Job, 0, len(payload.Results))
	for _, j := range payload.Results {
		jobs = append(jobs, mapMuseJob(j))
	}

	return models.JobPage{
		Jobs:       jobs,
		Page:       page,
		TotalPages: payload.PageCount,
	}, nil
}

// tagPattern strips HTML markup from the description snippet.
var tagPattern = regexp.MustCompile(`<[^>]*>`)

const snippetLength = 200

func mapMuseJob(j museJob) models.Job {
	job := models.Job{
		ID:      strconv.Itoa(j.ID),
		Title:   j.Name,
		Company: j.Company.Name,
		Type:    j.Type,
		Link:    j.Refs.LandingPage,
		Source:  "The Muse",
	}

	if job.Title == "" {
		job.Title = "Job Title Not Available"
	}
	if job.Company == "" {
		job.Company = "Company Not Available"
	}
	if job.Type == "" {
		job.Type = "Full-time"
	}
	if job.Link == "" {
		job.Link = "#"
	}

	if len(j.Locations) > 0 {
		job.Location = j.Locations[0].Name
	} else {
		job.Location = "Location Not Available"
	}

	job.Snippet = makeSnippet(j.Contents)

	if ts, err := time.Parse(time.RFC3339, j.PublicationDate); err == nil {
		job.Updated = ts
	} else {
		job.Updated = time.Now()
	}

	return job
}

func makeSnippet(contents string) string {
	if contents == "" {
		return "No description available"
	}

	clipped := contents
	if len(clipped) > snippetLength {
		clipped = clipped[:snippetLength]
	}
	return tagPattern.ReplaceAllString(clipped, "") + "..."
}
