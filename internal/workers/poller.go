package workers

import (
	"context"
	"sync"
	"time"
)

// poller calls fn on a ticker. Views use it as the backstop for missed
// change notifications: the tick handler performs the same repository
// re-read as the notification handler, so the two paths converge and
// an extra tick is harmless.
type poller struct {
	fn func()

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewPoller creates a PollJob invoking fn every interval once started.
// Idle until Start.
func NewPoller(fn func()) PollJob {
	return &poller{fn: fn}
}

// Start stops any previous run, then launches the poll goroutine. If
// interval is zero or negative it defaults to 5 seconds. The goroutine
// exits when ctx is cancelled or Stop is called.
func (p *poller) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Second
	}

	p.Stop()

	p.mu.Lock()
	loopCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.wg.Add(1)
	p.mu.Unlock()

	go func() {
		defer p.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-loopCtx.Done():
				return
			case <-t.C:
				p.fn()
			}
		}
	}()
}

// Stop cancels the poll goroutine and blocks until it has fully
// exited. Safe to call when the poller is not running.
func (p *poller) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	p.wg.Wait()
}
