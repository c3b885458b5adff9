package ports

import (
	"context"

	"github.com/sustainalink/platform/internal/core/domain"
)

type RewardFilter struct {
	Type   domain.RewardType // optional
	Rarity domain.Rarity     // optional
	Active *bool             // optional
}

type RewardRepository interface {
	Create(ctx context.Context, r *domain.Reward) error
	List(ctx context.Context, filter RewardFilter) ([]*domain.Reward, error)
}

type RewardService interface {
	Create(ctx context.Context, r *domain.Reward) (*domain.Reward, error)
	List(ctx context.Context, filter RewardFilter) ([]*domain.Reward, error)
	Stats(ctx context.Context, userID string) (*domain.RewardStats, error)
}
