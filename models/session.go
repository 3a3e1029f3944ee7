package models

// Session is a point-in-time snapshot of the scalar login flags. The flags
// are persisted as independent keys and written one at a time, so a reader
// racing a login can observe a partially populated snapshot. That matches
// the legacy storage layout and is deliberately not papered over with an
// atomic group write.
type Session struct {
	LoggedIn      bool
	UserName      string
	UserEmail     string
	AdminLoggedIn bool
}

// Anonymous reports whether neither a user nor an admin is logged in.
func (s Session) Anonymous() bool {
	return !s.LoggedIn && !s.AdminLoggedIn
}
