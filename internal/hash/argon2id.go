package hash

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

const argon2idPrefix = "argon2id$"

// argon2idHasher derives a per-credential-salted Argon2id digest. Digests are
// self-describing: "argon2id$<base64 salt>$<base64 key>", so Matches can
// re-derive the key from the embedded salt.
type argon2idHasher struct {
	time    uint32
	memory  uint32
	threads uint8
	keyLen  uint32
}

// NewArgon2id constructs an Argon2id hasher with the parameters recommended
// by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewArgon2id() Hasher {
	return &argon2idHasher{
		time:    1,
		memory:  64 * 1024, // 64 MiB
		threads: 4,
		keyLen:  32, // 256 bits
	}
}

func (h *argon2idHasher) Hash(secret string) string {
	salt := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		// rand.Reader failing means the OS CSPRNG is broken; there is no
		// meaningful recovery for a credential hasher.
		panic(err)
	}

	key := argon2.IDKey([]byte(secret), salt, h.time, h.memory, h.threads, h.keyLen)

	enc := base64.RawStdEncoding
	return argon2idPrefix + enc.EncodeToString(salt) + "$" + enc.EncodeToString(key)
}

func (h *argon2idHasher) Matches(secret, digest string) bool {
	rest, ok := strings.CutPrefix(digest, argon2idPrefix)
	if !ok {
		return false
	}

	parts := strings.SplitN(rest, "$", 2)
	if len(parts) != 2 {
		return false
	}

	enc := base64.RawStdEncoding
	salt, err := enc.DecodeString(parts[0])
	if err != nil {
		return false
	}
	want, err := enc.DecodeString(parts[1])
	if err != nil {
		return false
	}

	got := argon2.IDKey([]byte(secret), salt, h.time, h.memory, h.threads, h.keyLen)
	return subtle.ConstantTimeCompare(got, want) == 1
}

func (h *argon2idHasher) IsDigest(s string) bool {
	return strings.HasPrefix(s, argon2idPrefix)
}
