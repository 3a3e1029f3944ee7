package store

import (
	"time"

	"github.com/Supreeth450/KodjobsSupreeth/internal/bus"
	"github.com/Supreeth450/KodjobsSupreeth/internal/logger"
	"github.com/Supreeth450/KodjobsSupreeth/models"
)

// queryRepository is the "contactQueries" collection repository.
//
// It enforces the two lifecycle invariants of a support query: status
// moves pending → resolved exactly once (via Respond), and read moves
// false → true only for a resolved query with a non-empty response.
// Mutations publish messagesUpdated.
type queryRepository struct {
	kv     KeyValueStore
	bus    *bus.Bus
	logger *logger.Logger
}

func NewQueryRepository(kv KeyValueStore, b *bus.Bus, logger *logger.Logger) QueryRepository {
	logger.Debug().Msg("creating contact query repository")
	return &queryRepository{kv: kv, bus: b, logger: logger}
}

func (r *queryRepository) List() []models.ContactQuery {
	return readCollection[models.ContactQuery](r.kv, KeyContactQueries)
}

func (r *queryRepository) ListByEmail(email string) []models.ContactQuery {
	all := r.List()
	mine := make([]models.ContactQuery, 0, len(all))
	for _, q := range all {
		if q.Email == email {
			mine = append(mine, q)
		}
	}
	return mine
}

func (r *queryRepository) Append(query models.ContactQuery) error {
	queries := r.List()
	if err := writeCollection(r.kv, KeyContactQueries, append(queries, query)); err != nil {
		return err
	}
	r.bus.Publish(bus.TopicMessagesUpdated)
	return nil
}

// Respond resolves the pending query with the given id: sets the
// response text and timestamp and resets read to false so the answer
// shows up as unread. Responding to an already-resolved query is
// rejected, not overwritten.
func (r *queryRepository) Respond(id, response string, at time.Time) error {
	queries := r.List()

	found := false
	for i := range queries {
		if queries[i].ID != id {
			continue
		}
		if queries[i].Status != models.QueryPending {
			return ErrQueryAlreadyResolved
		}

		ts := at
		queries[i].Status = models.QueryResolved
		queries[i].AdminResponse = response
		queries[i].ResponseTimestamp = &ts
		queries[i].Read = false
		found = true
	}
	if !found {
		return ErrQueryNotFound
	}

	if err := writeCollection(r.kv, KeyContactQueries, queries); err != nil {
		return err
	}
	r.bus.Publish(bus.TopicMessagesUpdated)
	return nil
}

// MarkRead flips the read flag of one query. Only a resolved query with
// a response is eligible; marking anything else is a silent no-op and
// writes nothing.
func (r *queryRepository) MarkRead(id string) error {
	queries := r.List()

	changed := false
	for i := range queries {
		if queries[i].ID == id && queries[i].Unread() {
			queries[i].Read = true
			changed = true
		}
	}
	if !changed {
		return nil
	}

	if err := writeCollection(r.kv, KeyContactQueries, queries); err != nil {
		return err
	}
	r.bus.Publish(bus.TopicMessagesUpdated)
	return nil
}

// MarkAllRead marks every unread answered query of the given user as
// read. Opening the mailbox calls this.
func (r *queryRepository) MarkAllRead(email string) error {
	queries := r.List()

	changed := false
	for i := range queries {
		if queries[i].Email == email && queries[i].Unread() {
			queries[i].Read = true
			changed = true
		}
	}
	if !changed {
		return nil
	}

	if err := writeCollection(r.kv, KeyContactQueries, queries); err != nil {
		return err
	}
	r.bus.Publish(bus.TopicMessagesUpdated)
	return nil
}

// UnreadCount is the badge number: resolved, answered, unread queries
// owned by email.
func (r *queryRepository) UnreadCount(email string) int {
	count := 0
	for _, q := range r.List() {
		if q.Email == email && q.Unread() {
			count++
		}
	}
	return count
}
