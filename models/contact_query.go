package models

import "time"

// QueryStatus is the lifecycle state of a support query. The only legal
// transition is Pending → Resolved, performed by the admin responder.
type QueryStatus string

const (
	QueryPending  QueryStatus = "pending"
	QueryResolved QueryStatus = "resolved"
)

// ContactQuery is one support request submitted from the contact form,
// stored in the "contactQueries" collection.
//
// Read transitions false → true only once the query is resolved and carries
// a non-empty AdminResponse; marking a still-pending query as read is a
// no-op.
type ContactQuery struct {
	// ID is a millisecond-timestamp string assigned at submission.
	ID string `json:"id"`

	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message"`

	// Timestamp is the submission time.
	Timestamp time.Time `json:"timestamp"`

	Status QueryStatus `json:"status"`

	// AdminResponse is set together with Status=resolved.
	AdminResponse     string     `json:"adminResponse,omitempty"`
	ResponseTimestamp *time.Time `json:"responseTimestamp,omitempty"`

	// Read is reset to false when the admin responds, so the response
	// shows up as unread even for a query the user had seen before.
	Read bool `json:"read"`
}

// Unread reports whether the query should count towards the owner's unread
// badge: resolved, answered, and not yet opened.
func (q ContactQuery) Unread() bool {
	return q.Status == QueryResolved && q.AdminResponse != "" && !q.Read
}
