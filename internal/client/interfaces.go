package client

import "context"

// UI is the terminal front end run by the App. It blocks until the
// user quits or ctx is cancelled.
type UI interface {
	Run(ctx context.Context) error
}
