package session

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"sync"
	"time"

	"github.com/bishtbros/ledger/models"
)

// DefaultTTL is the fixed session lifetime measured from creation.
const DefaultTTL = 8 * time.Hour

// memoryStore is the process-wide Store implementation: a mutex-guarded map
// from token to session snapshot. There is one instance per process,
// constructed in main and injected into the handler layer.
type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string]models.Session

	secret string
	ttl    time.Duration

	// now is swappable for tests.
	now func() time.Time
}

// NewStore constructs a memory-backed Store. secret is mixed into every
// token derivation; ttl of zero falls back to DefaultTTL.
func NewStore(secret string, ttl time.Duration) Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &memoryStore{
		sessions: make(map[string]models.Session),
		secret:   secret,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create derives the token as hex(SHA-256(mobile || nanos || secret)). The
// high-resolution creation instant makes tokens unique per call; the server
// secret makes them unguessable to third parties.
func (s *memoryStore) Create(mobile, role, name string) string {
	now := s.now()

	sum := sha256.Sum256([]byte(mobile + strconv.FormatInt(now.UnixNano(), 10) + s.secret))
	token := hex.EncodeToString(sum[:])

	s.mu.Lock()
	s.sessions[token] = models.Session{
		Mobile:    mobile,
		Role:      role,
		Name:      name,
		CreatedAt: now,
	}
	s.mu.Unlock()

	return token
}

func (s *memoryStore) Lookup(token string) (models.Session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok || s.expired(sess) {
		return models.Session{}, false
	}
	return sess, true
}

func (s *memoryStore) Destroy(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

func (s *memoryStore) Authorize(mobile, token, requiredRole string) bool {
	if token == "" {
		return false
	}

	sess, ok := s.Lookup(token)
	if !ok {
		return false
	}

	return sess.Mobile == mobile && sess.Role == requiredRole
}

// Sweep deletes every expired entry in one pass under the write lock. It is
// called periodically by the background sweeper; correctness does not depend
// on it because Lookup re-checks expiry.
func (s *memoryStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for token, sess := range s.sessions {
		if s.expired(sess) {
			delete(s.sessions, token)
			removed++
		}
	}
	return removed
}

func (s *memoryStore) expired(sess models.Session) bool {
	return s.now().Sub(sess.CreatedAt) >= s.ttl
}
