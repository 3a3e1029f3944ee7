package store

import (
	"github.com/Supreeth450/KodjobsSupreeth/internal/logger"
	"github.com/Supreeth450/KodjobsSupreeth/models"
)

// sessionRepository manages the scalar flags: login state, identity
// strings, admin flag, visitor id, cached avatar.
//
// Flags are individual keys written one at a time, exactly like the
// legacy storage layout. SetUser is therefore three separate writes; a
// reader in another process notified mid-sequence can observe a partial
// login state. Known race, kept on purpose — collapsing the flags into
// one atomic record would change observable behaviour.
//
// The repository does not publish: login-state topics (userLoggedIn,
// userLoggedOut) belong to the auth service, which publishes them after
// the whole flag group is written.
type sessionRepository struct {
	kv     KeyValueStore
	logger *logger.Logger
}

func NewSessionRepository(kv KeyValueStore, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{kv: kv, logger: logger}
}

func (r *sessionRepository) Current() models.Session {
	loggedIn, _ := r.kv.Read(KeyIsLoggedIn)
	name, _ := r.kv.Read(KeyUserName)
	email, _ := r.kv.Read(KeyUserEmail)
	admin, _ := r.kv.Read(KeyIsAdminLoggedIn)

	return models.Session{
		LoggedIn:      loggedIn == "true",
		UserName:      name,
		UserEmail:     email,
		AdminLoggedIn: admin == "true",
	}
}

func (r *sessionRepository) SetUser(name, email string) error {
	if err := r.kv.Write(KeyIsLoggedIn, "true"); err != nil {
		return err
	}
	if err := r.kv.Write(KeyUserName, name); err != nil {
		return err
	}
	return r.kv.Write(KeyUserEmail, email)
}

func (r *sessionRepository) SetUserName(name string) error {
	return r.kv.Write(KeyUserName, name)
}

func (r *sessionRepository) SetAdmin() error {
	return r.kv.Write(KeyIsAdminLoggedIn, "true")
}

func (r *sessionRepository) ClearAdmin() error {
	return r.kv.Delete(KeyIsAdminLoggedIn)
}

// Clear removes the whole flag group, again as sequential deletes.
func (r *sessionRepository) Clear() error {
	for _, key := range []string{KeyIsLoggedIn, KeyUserName, KeyUserEmail, KeyIsAdminLoggedIn} {
		if err := r.kv.Delete(key); err != nil {
			return err
		}
	}
	return nil
}

func (r *sessionRepository) VisitorID() (string, bool) {
	return r.kv.Read(KeyVisitorID)
}

func (r *sessionRepository) SetVisitorID(id string) error {
	return r.kv.Write(KeyVisitorID, id)
}

func (r *sessionRepository) Avatar() (string, bool) {
	return r.kv.Read(KeyUserAvatar)
}

func (r *sessionRepository) SetAvatar(dataURI string) error {
	return r.kv.Write(KeyUserAvatar, dataURI)
}
