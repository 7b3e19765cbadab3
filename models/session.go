package models

import "time"

// Session is the server-side record of a successful login, referenced by an
// opaque bearer token. The (Mobile, Role, Name) triple is a snapshot taken at
// login time: a later role change does not affect already-issued sessions
// until the user logs in again.
type Session struct {
	// Mobile is the identity the session is bound to.
	Mobile string `json:"mobile"`

	// Role is the role the account held at login time.
	Role string `json:"role"`

	// Name is the display name of the account at login time.
	Name string `json:"name"`

	// CreatedAt is the instant the session was issued. Expiry is computed
	// from this value; sessions do not slide.
	CreatedAt time.Time `json:"-"`
}
