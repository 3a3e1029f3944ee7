package tui

import (
	"github.com/Supreeth450/KodjobsSupreeth/internal/bus"
	"github.com/Supreeth450/KodjobsSupreeth/models"
)

// storeChangedMsg is forwarded from the notification bus and the
// cross-process watcher. The topic tells the mounted screen which
// collection to re-read.
type storeChangedMsg struct {
	topic bus.Topic
}

// mailboxPollMsg and adminPollMsg are the backstop poller ticks. They
// are ignored unless the matching screen is mounted.
type mailboxPollMsg struct{}

type adminPollMsg struct{}

type sessionLoadedMsg struct {
	session models.Session
	unread  int
	err     error
}

type authDoneMsg struct {
	err error
}

type loggedOutMsg struct {
	err error
}

type resetDoneMsg struct {
	err error
}

type jobsLoadedMsg struct {
	page models.JobPage
	err  error
}

type querySubmittedMsg struct {
	err error
}

type mailboxLoadedMsg struct {
	queries []models.ContactQuery
	err     error
}

type profileLoadedMsg struct {
	user models.User
	err  error
}

type profileSavedMsg struct {
	user models.User
	err  error
}

type chatReplyMsg struct {
	reply string
}

type adminUsersMsg struct {
	users []models.User
	err   error
}

type adminQueriesMsg struct {
	queries []models.ContactQuery
	err     error
}

type adminStatsMsg struct {
	stats models.VisitorStats
	err   error
}

type adminActionMsg struct {
	err error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
