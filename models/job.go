package models

import "time"

// Job is one listing shown on the jobs screen, already mapped from the
// upstream API representation into display form.
type Job struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Company  string    `json:"company"`
	Location string    `json:"location"`
	Salary   string    `json:"salary,omitempty"`
	Type     string    `json:"type,omitempty"`
	Link     string    `json:"link"`
	Snippet  string    `json:"snippet"`
	Updated  time.Time `json:"updated"`
	Source   string    `json:"source,omitempty"`
}

// JobPage is one page of listings together with the upstream page count.
type JobPage struct {
	Jobs       []Job `json:"jobs"`
	Page       int   `json:"page"`
	TotalPages int   `json:"totalPages"`

	// Fallback is set when the upstream API failed and the static
	// listing set is served instead.
	Fallback bool `json:"fallback,omitempty"`
}
