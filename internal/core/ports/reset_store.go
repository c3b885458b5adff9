package ports

import (
	"context"
	"time"
)

// ResetTokenStore keeps password reset token digests for a limited time.
// Consume is atomic: a digest can be redeemed once, after which it returns
// domain.ErrResetTokenInvalid like an unknown or expired digest.
type ResetTokenStore interface {
	Save(ctx context.Context, digest, userID string, ttl time.Duration) error
	Consume(ctx context.Context, digest string) (string, error)
}
