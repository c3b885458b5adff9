package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sustainalink/platform/internal/core/domain"
)

// ResetTokenStore keeps password reset digests in Redis.
// Key format: reset:<sha256 hex digest>
type ResetTokenStore struct {
	client *redis.Client
}

func NewResetTokenStore(client *redis.Client) *ResetTokenStore {
	return &ResetTokenStore{client: client}
}

// Save records digest for ttl. SET NX keeps a live digest from being replaced.
func (s *ResetTokenStore) Save(ctx context.Context, digest, userID string, ttl time.Duration) error {
	if err := s.client.SetNX(ctx, s.key(digest), userID, ttl).Err(); err != nil {
		return fmt.Errorf("save reset token: %w", err)
	}
	return nil
}

// Consume atomically reads and deletes the digest with GETDEL.
func (s *ResetTokenStore) Consume(ctx context.Context, digest string) (string, error) {
	userID, err := s.client.GetDel(ctx, s.key(digest)).Result()
	if errors.Is(err, redis.Nil) {
		return "", domain.ErrResetTokenInvalid
	}
	if err != nil {
		return "", fmt.Errorf("consume reset token: %w", err)
	}
	return userID, nil
}

func (s *ResetTokenStore) key(digest string) string {
	return "reset:" + digest
}
