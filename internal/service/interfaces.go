package service

import (
	"context"

	"github.com/Supreeth450/KodjobsSupreeth/models"
)

// AuthService manages account registration, sign-in and the session
// flags persisted in the state file.
type AuthService interface {
	// Register creates an account, signs the new user in and returns
	// the stored record.
	Register(ctx context.Context, name, email, password, confirm string) (models.User, error)
	// Login checks the credentials and establishes a session. The
	// configured admin credentials additionally set the admin flag.
	Login(ctx context.Context, email, password string) (models.User, error)
	// Logout clears every session flag and announces the sign-out.
	Logout(ctx context.Context) error
	// AdminLogin checks the credentials against the configured admin
	// account and sets the admin flag only.
	AdminLogin(ctx context.Context, email, password string) error
	// AdminLogout clears the admin flag, leaving any user session intact.
	AdminLogout(ctx context.Context) error
	// ResetPassword replaces the password of an existing account.
	ResetPassword(ctx context.Context, email, password, confirm string) error
	// Session reports the current session flags.
	Session(ctx context.Context) (models.Session, error)
}

// ContactService manages the support queries a user files and the
// per-user mailbox built from them.
type ContactService interface {
	// Submit files a new query with a generated id and a pending status.
	Submit(ctx context.Context, query models.ContactQuery) (models.ContactQuery, error)
	// Mailbox lists every query filed under the given e-mail.
	Mailbox(ctx context.Context, email string) ([]models.ContactQuery, error)
	// OpenMailbox marks every answered query read and returns the
	// mailbox contents.
	OpenMailbox(ctx context.Context, email string) ([]models.ContactQuery, error)
	// MarkRead marks a single answered query read.
	MarkRead(ctx context.Context, id string) error
	// UnreadCount reports answered-but-unread queries for the badge.
	UnreadCount(ctx context.Context, email string) (int, error)
}

// ProfileUpdate carries the editable profile fields. Identity and
// credential fields are managed elsewhere and cannot be patched here.
type ProfileUpdate struct {
	Name            string
	Bio             string
	Skills          string
	AcademicDetails *models.AcademicDetails
}

// ProfileService reads and edits the signed-in user's profile.
type ProfileService interface {
	// Load returns the profile of the signed-in user.
	Load(ctx context.Context) (models.User, error)
	// Update patches the editable fields and announces the change.
	Update(ctx context.Context, update ProfileUpdate) (models.User, error)
	// SetProfilePicture stores an image data URI on the profile and
	// caches it under the avatar key for the navigation bar.
	SetProfilePicture(ctx context.Context, dataURI string) error
	// SetResume stores a document data URI on the profile.
	SetResume(ctx context.Context, dataURI string) error
}

// VisitorService assigns the per-installation visitor id and records
// page visits for the admin dashboard.
type VisitorService interface {
	// VisitorID returns the persisted visitor id, generating and
	// storing one on first use.
	VisitorID(ctx context.Context) (string, error)
	// RecordVisit appends a visit entry for the given page.
	RecordVisit(ctx context.Context, page, userAgent string) error
	// Stats aggregates total and unique visit counts.
	Stats(ctx context.Context) (models.VisitorStats, error)
	// Visits lists the raw visit log, newest last.
	Visits(ctx context.Context) ([]models.Visitor, error)
}

// JobsService serves job listings, falling back to a built-in set when
// the upstream API is unreachable.
type JobsService interface {
	// Listings returns one page of jobs. Upstream failures degrade to
	// the built-in fallback page instead of an error.
	Listings(ctx context.Context, page int) (models.JobPage, error)
	// Filter narrows a fetched page to jobs matching the search term.
	Filter(page models.JobPage, term string) []models.Job
}

// AdminService exposes the dashboard operations. Callers must hold the
// admin session flag.
type AdminService interface {
	// Users lists every registered account.
	Users(ctx context.Context) ([]models.User, error)
	// ToggleBlock flips the blocked flag on an account.
	ToggleBlock(ctx context.Context, email string) (models.User, error)
	// DeleteUser removes an account. The admin account is refused.
	DeleteUser(ctx context.Context, email string) error
	// Queries lists every support query across all users.
	Queries(ctx context.Context) ([]models.ContactQuery, error)
	// Respond resolves a pending query with the given response text.
	Respond(ctx context.Context, id, response string) error
	// VisitorStats aggregates the visit log for the dashboard.
	VisitorStats(ctx context.Context) (models.VisitorStats, error)
}

// ChatService produces the scripted assistant replies.
type ChatService interface {
	// Reply returns the canned response for a user message.
	Reply(message string) string
}
