package store

import (
	"time"

	"github.com/Supreeth450/KodjobsSupreeth/models"
)

// UserRepository is typed CRUD over the "users" collection. List never
// fails: a missing or corrupt collection reads as empty.
type UserRepository interface {
	List() []models.User
	FindByEmail(email string) (models.User, error)
	Insert(user models.User) error
	Upsert(user models.User) error
	UpdateByEmail(email string, patch func(*models.User)) error
	DeleteByEmail(email string) error
}

// QueryRepository is typed CRUD over the "contactQueries" collection.
type QueryRepository interface {
	List() []models.ContactQuery
	ListByEmail(email string) []models.ContactQuery
	Append(query models.ContactQuery) error
	Respond(id, response string, at time.Time) error
	MarkRead(id string) error
	MarkAllRead(email string) error
	UnreadCount(email string) int
}

// VisitorRepository is the append-only "siteVisitors" log.
type VisitorRepository interface {
	List() []models.Visitor
	Record(visit models.Visitor) error
	Stats() models.VisitorStats
}

// SessionRepository manages the scalar session flags and the other
// scalar keys (visitorId, userAvatar).
type SessionRepository interface {
	Current() models.Session
	SetUser(name, email string) error
	SetUserName(name string) error
	SetAdmin() error
	ClearAdmin() error
	Clear() error
	VisitorID() (string, bool)
	SetVisitorID(id string) error
	Avatar() (string, bool)
	SetAvatar(dataURI string) error
}
