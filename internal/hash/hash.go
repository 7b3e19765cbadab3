// Package hash implements credential hashing for the ledger application.
//
// The historical scheme is an unsalted-per-user SHA-256 digest over the
// secret concatenated with a single fixed salt. It is kept as the default for
// behavioural compatibility with existing stored credentials, but it is
// isolated behind the Hasher interface so deployments can switch to the
// Argon2id scheme without touching callers.
package hash

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
)

// Scheme names accepted by New.
const (
	SchemeSaltedSHA256 = "sha256"
	SchemeArgon2id     = "argon2id"
)

// Hasher is the credential hashing contract. Implementations are pure: the
// same inputs always yield the same result for Matches, and Hash never fails.
type Hasher interface {
	// Hash transforms a plaintext secret into its storable digest.
	Hash(secret string) string

	// Matches reports whether secret corresponds to the stored digest.
	Matches(secret, digest string) bool

	// IsDigest reports whether s already looks like a digest produced by
	// this hasher. Used by the legacy migration to avoid double-hashing.
	IsDigest(s string) bool
}

// New constructs a Hasher for the named scheme. fixedSalt is only used by the
// salted-SHA256 scheme; the Argon2id scheme generates a random salt per call.
func New(scheme, fixedSalt string) (Hasher, error) {
	switch scheme {
	case SchemeSaltedSHA256, "":
		return NewSaltedSHA256(fixedSalt), nil
	case SchemeArgon2id:
		return NewArgon2id(), nil
	default:
		return nil, fmt.Errorf("unknown hash scheme: %q", scheme)
	}
}

// saltedSHA256 is the compatibility hasher: hex(SHA-256(secret || salt)).
// Identical secrets across accounts produce identical digests because the
// salt is global, not per-account.
type saltedSHA256 struct {
	salt string
}

// NewSaltedSHA256 constructs the fixed-salt SHA-256 hasher.
func NewSaltedSHA256(salt string) Hasher {
	return &saltedSHA256{salt: salt}
}

func (h *saltedSHA256) Hash(secret string) string {
	sum := sha256.Sum256([]byte(secret + h.salt))
	return hex.EncodeToString(sum[:])
}

func (h *saltedSHA256) Matches(secret, digest string) bool {
	computed := h.Hash(secret)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(digest)) == 1
}

// IsDigest reports whether s is a 64-character lowercase hex string, the
// exact shape of a SHA-256 digest produced by this hasher.
func (h *saltedSHA256) IsDigest(s string) bool {
	if len(s) != sha256.Size*2 {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}
