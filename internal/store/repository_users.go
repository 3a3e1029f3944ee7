package store

import (
	"github.com/Supreeth450/KodjobsSupreeth/internal/bus"
	"github.com/Supreeth450/KodjobsSupreeth/internal/logger"
	"github.com/Supreeth450/KodjobsSupreeth/models"
)

// userRepository is the "users" collection repository. Email is the
// natural key: lookups and updates always match on it, never on slice
// position, because position is unstable across reads.
//
// Every mutation re-reads the full collection, applies the change,
// writes the full collection back and publishes localStorageUpdated —
// the same topic the profile views already re-read on.
type userRepository struct {
	kv     KeyValueStore
	bus    *bus.Bus
	logger *logger.Logger
}

// NewUserRepository constructs a UserRepository over kv, publishing
// change notifications on b.
func NewUserRepository(kv KeyValueStore, b *bus.Bus, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{kv: kv, bus: b, logger: logger}
}

func (r *userRepository) List() []models.User {
	return readCollection[models.User](r.kv, KeyUsers)
}

func (r *userRepository) FindByEmail(email string) (models.User, error) {
	for _, u := range r.List() {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, ErrNoUserWasFound
}

// Insert appends a new account, refusing a duplicate email.
func (r *userRepository) Insert(user models.User) error {
	users := r.List()
	for _, u := range users {
		if u.Email == user.Email {
			return ErrEmailAlreadyExists
		}
	}

	if err := writeCollection(r.kv, KeyUsers, append(users, user)); err != nil {
		return err
	}
	r.bus.Publish(bus.TopicLocalStorageUpdated)
	return nil
}

// Upsert replaces the record whose email matches user.Email, or appends
// when absent. Re-applying the identical upsert is a no-op on the final
// collection.
func (r *userRepository) Upsert(user models.User) error {
	users := r.List()

	replaced := false
	for i, u := range users {
		if u.Email == user.Email {
			users[i] = user
			replaced = true
			break
		}
	}
	if !replaced {
		users = append(users, user)
	}

	if err := writeCollection(r.kv, KeyUsers, users); err != nil {
		return err
	}
	r.bus.Publish(bus.TopicLocalStorageUpdated)
	return nil
}

// UpdateByEmail applies patch to the matching record, merging fields in
// place rather than replacing the record wholesale.
func (r *userRepository) UpdateByEmail(email string, patch func(*models.User)) error {
	users := r.List()

	found := false
	for i := range users {
		if users[i].Email == email {
			patch(&users[i])
			found = true
		}
	}
	if !found {
		return ErrNoUserWasFound
	}

	if err := writeCollection(r.kv, KeyUsers, users); err != nil {
		return err
	}
	r.bus.Publish(bus.TopicLocalStorageUpdated)
	return nil
}

func (r *userRepository) DeleteByEmail(email string) error {
	users := r.List()

	kept := users[:0]
	for _, u := range users {
		if u.Email != email {
			kept = append(kept, u)
		}
	}
	if len(kept) == len(users) {
		return ErrNoUserWasFound
	}

	if err := writeCollection(r.kv, KeyUsers, kept); err != nil {
		return err
	}
	r.bus.Publish(bus.TopicLocalStorageUpdated)
	return nil
}
