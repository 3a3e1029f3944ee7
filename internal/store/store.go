// Package store implements the durable key-value substrate and the
// typed collection repositories on top of it.
//
// Every collection is one JSON array persisted under a fixed key.
// Mutations are whole-collection read-modify-write cycles: re-read,
// apply, write everything back, then publish a change notification.
// The store has no partial-update primitive and no compare-and-swap;
// concurrent writers from other processes are last-write-wins at
// collection granularity.
package store

import "errors"

// Persisted key names. These are the compatibility contract with
// previously stored state and must not be renamed.
const (
	KeyUsers          = "users"
	KeyContactQueries = "contactQueries"
	KeySiteVisitors   = "siteVisitors"

	KeyIsLoggedIn      = "isLoggedIn"
	KeyUserName        = "userName"
	KeyUserEmail       = "userEmail"
	KeyIsAdminLoggedIn = "isAdminLoggedIn"
	KeyVisitorID       = "visitorId"
	KeyUserAvatar      = "userAvatar"
)

// KeyValueStore is the synchronous persistence substrate. Read returns
// the raw string under key, or false when absent. Write and Delete
// persist immediately; a failed persist surfaces as an error to the
// initiating action, never silently.
type KeyValueStore interface {
	Read(key string) (string, bool)
	Write(key, value string) error
	Delete(key string) error
	Keys() []string

	// Reload re-reads the backing file, picking up writes made by
	// other processes. Snapshot returns a copy of the loaded state;
	// both exist for the cross-process watcher.
	Reload() error
	Snapshot() map[string]string
}

var (
	// ErrWriteFailed wraps persistence failures (quota, I/O). Callers
	// must surface it to the user as a failed save.
	ErrWriteFailed = errors.New("state write failed")

	// ErrNoUserWasFound is returned by user lookups that match nothing.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrEmailAlreadyExists is returned when an insert would duplicate
	// the users collection's natural key.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrQueryNotFound is returned when a contact query id matches
	// nothing.
	ErrQueryNotFound = errors.New("contact query was not found")

	// ErrQueryAlreadyResolved is returned when a response targets a
	// query that already left the pending state.
	ErrQueryAlreadyResolved = errors.New("contact query already resolved")
)
