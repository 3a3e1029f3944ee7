package models

import "time"

// Visitor is one entry of the append-only "siteVisitors" log. The ID is a
// per-installation identifier generated once and reused for every visit; it
// is not tied to a User account.
type Visitor struct {
	Timestamp time.Time `json:"timestamp"`
	Page      string    `json:"page"`
	UserAgent string    `json:"userAgent"`
	ID        string    `json:"id"`
}

// VisitorStats summarises the visitor log for the admin dashboard.
type VisitorStats struct {
	TotalVisits    int
	UniqueVisitors int
}
