// Package bus implements the change notification layer of the local
// state store.
//
// Two channels exist, and correct views need both:
//
//   - Bus is the same-process channel: synchronous, fire-and-forget,
//     no payload. A publish means "this collection changed, go re-read
//     it"; subscribers run their own repository read.
//   - Watcher is the cross-process channel: it polls the shared state
//     file and fires per-key handlers in every process except the one
//     that wrote, mirroring how browser storage events are delivered
//     to other tabs only.
package bus

import "sync"

// Topic names one logical change class. The string values are the
// synchronisation contract with stored-state consumers and must not be
// renamed.
type Topic string

const (
	TopicVisitorUpdated      Topic = "visitorUpdated"
	TopicMessagesUpdated     Topic = "messagesUpdated"
	TopicUserLoggedOut       Topic = "userLoggedOut"
	TopicUserLoggedIn        Topic = "userLoggedIn"
	TopicProfileUpdated      Topic = "profileUpdated"
	TopicLocalStorageUpdated Topic = "localStorageUpdated"
)

type subscription struct {
	id int
	fn func()
}

// Bus is the in-process publish/subscribe hub. The zero value is not
// usable; construct with New.
type Bus struct {
	mu   sync.Mutex
	next int
	subs map[Topic][]subscription
}

func New() *Bus {
	return &Bus{subs: make(map[Topic][]subscription)}
}

// Subscribe registers fn for topic and returns a cancel function that
// must be called when the subscribing view unmounts. Handlers for one
// topic run in registration order.
func (b *Bus) Subscribe(topic Topic, fn func()) (cancel func()) {
	b.mu.Lock()
	b.next++
	id := b.next
	b.subs[topic] = append(b.subs[topic], subscription{id: id, fn: fn})
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		list := b.subs[topic]
		for i, s := range list {
			if s.id == id {
				b.subs[topic] = append(list[:i:i], list[i+1:]...)
				return
			}
		}
	}
}

// Publish synchronously invokes every handler registered for topic.
// It carries no payload; publishers must have already persisted the
// change, so a subscriber re-reading the store sees the new value.
func (b *Bus) Publish(topic Topic) {
	b.mu.Lock()
	list := make([]subscription, len(b.subs[topic]))
	copy(list, b.subs[topic])
	b.mu.Unlock()

	// handlers run outside the lock so a handler may publish or
	// subscribe without deadlocking
	for _, s := range list {
		s.fn()
	}
}
