package bus

import (
	"context"
	"sync"
	"time"

	"github.com/Supreeth450/KodjobsSupreeth/internal/logger"
)

// Snapshotter is the slice of the key-value store the watcher needs:
// re-reading the backing file and exposing the loaded key set.
type Snapshotter interface {
	Reload() error
	Snapshot() map[string]string
}

// Watcher is the cross-process half of the notification layer. It polls
// the shared state file, reloads the store, and fires the handlers of
// every key whose raw value changed since the previous tick.
//
// A process never observes its own writes here: writing through the
// store updates the in-memory state that the next diff is taken
// against, so only foreign writes produce a non-empty diff. Delivery is
// asynchronous and may coalesce several foreign writes into one event,
// which subscribers tolerate because handlers only re-read.
type Watcher struct {
	store  Snapshotter
	logger *logger.Logger

	mu     sync.Mutex
	next   int
	subs   map[string][]subscription
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewWatcher creates a Watcher over store. It is idle until Start.
func NewWatcher(store Snapshotter, logger *logger.Logger) *Watcher {
	return &Watcher{
		store:  store,
		logger: logger,
		subs:   make(map[string][]subscription),
	}
}

// SubscribeKey registers fn to run whenever the value under key is
// changed by another process. Returns a cancel function; views call it
// on unmount.
func (w *Watcher) SubscribeKey(key string, fn func()) (cancel func()) {
	w.mu.Lock()
	w.next++
	id := w.next
	w.subs[key] = append(w.subs[key], subscription{id: id, fn: fn})
	w.mu.Unlock()

	return func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		list := w.subs[key]
		for i, s := range list {
			if s.id == id {
				w.subs[key] = append(list[:i:i], list[i+1:]...)
				return
			}
		}
	}
}

// Start stops any previous run, then launches the poll loop. If
// interval is zero or negative it defaults to one second. The loop
// exits when ctx is cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Second
	}

	w.Stop()

	w.mu.Lock()
	loopCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-loopCtx.Done():
				return
			case <-t.C:
				w.tick()
			}
		}
	}()
}

// Stop cancels the poll loop and blocks until it has exited. Safe to
// call when the watcher is not running.
func (w *Watcher) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

func (w *Watcher) tick() {
	// The diff baseline is the store's own in-memory state: a write made
	// through this process is already in memory, so it never shows up as
	// a change here. Only foreign writes arrive via Reload.
	previous := w.store.Snapshot()

	if err := w.store.Reload(); err != nil {
		w.logger.Warn().Err(err).Msg("state file reload failed")
		return
	}
	current := w.store.Snapshot()

	w.mu.Lock()
	var fire []func()
	for key, value := range current {
		if previous[key] != value {
			for _, s := range w.subs[key] {
				fire = append(fire, s.fn)
			}
		}
	}
	for key := range previous {
		if _, ok := current[key]; !ok {
			for _, s := range w.subs[key] {
				fire = append(fire, s.fn)
			}
		}
	}
	w.mu.Unlock()

	for _, fn := range fire {
		fn()
	}
}

// Sync runs one poll pass immediately. Used by views right after
// subscribing so a write that happened before Start is not missed, and
// by tests to avoid timing on the ticker.
func (w *Watcher) Sync() {
	w.tick()
}
