// Package workers provides the background worker abstractions of the
// application: the Worker interface, a Workers aggregate, and the
// Poller used as the re-read backstop behind the notification bus.
package workers

import (
	"context"
	"time"
)

// Worker is implemented by any background worker. Run starts the
// worker; implementations either block or spawn goroutines internally.
type Worker interface {
	Run()
}

// PollJob is a periodic re-read job with a scoped lifetime: started on
// view mount, stopped on unmount. Stop blocks until the loop has
// exited, so no tick can run against torn-down view state.
type PollJob interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
}
