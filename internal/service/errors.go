package service

import "errors"

// Sentinel errors surfaced to the views. Matched with errors.Is.
var (
	// ErrInvalidCredentials is returned for an unknown email or a wrong
	// password. The two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUserBlocked is returned when the account exists, the password
	// matches, and the account has been blocked by an administrator.
	ErrUserBlocked = errors.New("your account has been blocked, please contact support")

	// ErrNotLoggedIn is returned by operations that need a user session
	// when none is present.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrNotAdmin is returned by admin operations when the admin flag is
	// not set.
	ErrNotAdmin = errors.New("admin session required")

	// ErrCannotDeleteAdmin protects the admin account from deletion.
	ErrCannotDeleteAdmin = errors.New("the admin account cannot be deleted")

	// ErrNoAccountForEmail is returned by the password reset flow when
	// the e-mail matches no account.
	ErrNoAccountForEmail = errors.New("no account found with this email address")
)
