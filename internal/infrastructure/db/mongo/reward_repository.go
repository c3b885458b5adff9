package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sustainalink/platform/internal/core/domain"
	"github.com/sustainalink/platform/internal/core/ports"
)

const collectionRewards = "rewards"

type RewardRepository struct {
	col *mongo.Collection
}

func NewRewardRepository(db *mongo.Database) *RewardRepository {
	return &RewardRepository{col: db.Collection(collectionRewards)}
}

func (r *RewardRepository) Create(ctx context.Context, reward *domain.Reward) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if reward.ID == "" {
		reward.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.col.InsertOne(ctx, reward); err != nil {
		return fmt.Errorf("insert reward: %w", err)
	}
	return nil
}

func rewardFilter(f ports.RewardFilter) bson.M {
	filter := bson.M{}
	if f.Type != "" {
		filter["type"] = f.Type
	}
	if f.Rarity != "" {
		filter["rarity"] = f.Rarity
	}
	if f.Active != nil {
		filter["is_active"] = *f.Active
	}
	return filter
}

func (r *RewardRepository) List(ctx context.Context, f ports.RewardFilter) ([]*domain.Reward, error) {
	sort := bson.D{{Key: "requirements.min_points", Value: 1}, {Key: "name", Value: 1}}
	items, _, err := findPage[domain.Reward](ctx, r.col, rewardFilter(f), sort, domain.Page{})
	if err != nil {
		return nil, fmt.Errorf("list rewards: %w", err)
	}
	return items, nil
}
