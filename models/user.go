package models

import "time"

// User represents a registered job-seeker account. Accounts live in the
// "users" collection of the local state store; Email is the natural key and
// every lookup or update goes through it, never through a slice index.
//
// Password is stored and compared in plaintext: the application has no
// backend, so the local store is the trust boundary.
type User struct {
	// ID is a millisecond-timestamp string assigned at registration.
	ID string `json:"id"`

	// Name is the display name shown in the status bar and admin tables.
	Name string `json:"name"`

	// Email uniquely identifies the account.
	Email string `json:"email"`

	// Password is the plaintext credential checked at login.
	Password string `json:"password"`

	// IsBlocked prevents login when set by an administrator.
	IsBlocked bool `json:"isBlocked"`

	// RegisteredAt is the account creation time.
	RegisteredAt time.Time `json:"registeredAt"`

	// LastLogin is updated on every successful login.
	LastLogin *time.Time `json:"lastLogin,omitempty"`

	Bio    string `json:"bio,omitempty"`
	Skills string `json:"skills,omitempty"`

	AcademicDetails *AcademicDetails `json:"academicDetails,omitempty"`

	// ProfilePicture and Resume are data URIs uploaded from the profile
	// editor.
	ProfilePicture string `json:"profilePicture,omitempty"`
	Resume         string `json:"resume,omitempty"`
}

// AcademicDetails groups the education fields of the profile editor.
// All fields are free-form strings, as entered by the user.
type AcademicDetails struct {
	InstituteName string `json:"instituteName"`
	CGPA          string `json:"cgpa"`
	YearOfPassing string `json:"yearOfPassing"`
	PUCollegeName string `json:"puCollegeName"`
	PUPercentage  string `json:"puPercentage"`
}
