package memory

import (
	"context"
	"sync"
	"time"

	"github.com/sustainalink/platform/internal/core/domain"
)

type resetEntry struct {
	userID    string
	expiresAt time.Time
}

// ResetTokenStore keeps reset digests in memory. Expired entries are dropped
// lazily on access and on every Save.
type ResetTokenStore struct {
	mu      sync.Mutex
	entries map[string]resetEntry
	now     func() time.Time
}

func NewResetTokenStore() *ResetTokenStore {
	return &ResetTokenStore{entries: make(map[string]resetEntry), now: time.Now}
}

// Save stores digest for ttl. An existing live digest is never overwritten.
func (s *ResetTokenStore) Save(ctx context.Context, digest, userID string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for k, e := range s.entries {
		if !now.Before(e.expiresAt) {
			delete(s.entries, k)
		}
	}
	if _, live := s.entries[digest]; live {
		return nil
	}
	s.entries[digest] = resetEntry{userID: userID, expiresAt: now.Add(ttl)}
	return nil
}

func (s *ResetTokenStore) Consume(ctx context.Context, digest string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[digest]
	delete(s.entries, digest)
	if !ok || !s.now().Before(e.expiresAt) {
		return "", domain.ErrResetTokenInvalid
	}
	return e.userID, nil
}
