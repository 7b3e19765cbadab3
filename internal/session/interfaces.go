// Package session implements the in-memory session store backing login
// tokens. Sessions live for a fixed TTL from creation (no sliding
// expiration), are looked up on every authenticated request, and do not
// survive a process restart.
package session

import "github.com/bishtbros/ledger/models"

// Store is the session store contract. Implementations must be safe for
// concurrent use: every inbound request may read, insert, or delete sessions
// in parallel with others.
type Store interface {
	// Create issues a new session bound to the given identity snapshot and
	// returns its opaque token. Tokens are unguessable and unique per call.
	Create(mobile, role, name string) string

	// Lookup returns the live session for token. Expired or unknown tokens
	// report ok == false; an expired-but-unswept entry is never returned.
	Lookup(token string) (models.Session, bool)

	// Destroy removes the session for token. Destroying an absent or
	// already-expired token is a no-op.
	Destroy(token string)

	// Authorize reports whether token belongs to a live session bound to
	// exactly the claimed mobile with exactly the required role. Every
	// failure mode (missing token, unknown token, identity mismatch, role
	// mismatch) is indistinguishable from the others.
	Authorize(mobile, token, requiredRole string) bool

	// Sweep removes all expired sessions and returns how many were removed.
	Sweep() int
}
