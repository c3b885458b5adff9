package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/sustainalink/platform/internal/core/domain"
	"github.com/sustainalink/platform/internal/core/ports"
)

type RewardService struct {
	rewards ports.RewardRepository
	users   ports.CredentialStore
	log     zerolog.Logger
}

func NewRewardService(rewards ports.RewardRepository, users ports.CredentialStore, log zerolog.Logger) *RewardService {
	return &RewardService{rewards: rewards, users: users, log: log}
}

func (s *RewardService) Create(ctx context.Context, r *domain.Reward) (*domain.Reward, error) {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)
	if r.Rarity == "" {
		r.Rarity = domain.RarityCommon
	}

	switch {
	case r.Name == "" || len(r.Name) > 100:
		return nil, fmt.Errorf("%w: reward name is required and cannot exceed 100 characters", domain.ErrValidation)
	case r.Description == "" || len(r.Description) > 500:
		return nil, fmt.Errorf("%w: description is required and cannot exceed 500 characters", domain.ErrValidation)
	case !r.Type.Valid():
		return nil, fmt.Errorf("%w: type must be one of: badge nft points discount certification", domain.ErrValidation)
	case !r.Rarity.Valid():
		return nil, fmt.Errorf("%w: rarity must be one of: common rare epic legendary", domain.ErrValidation)
	case r.Requirements.MinPoints < 0 || r.Value.Points < 0 || r.Value.MonetaryValue < 0:
		return nil, fmt.Errorf("%w: points and values cannot be negative", domain.ErrValidation)
	case r.Requirements.MinSustainabilityScore < 0 || r.Requirements.MinSustainabilityScore > 100:
		return nil, fmt.Errorf("%w: minimum sustainability score must be between 0 and 100", domain.ErrValidation)
	case r.Value.DiscountPercentage < 0 || r.Value.DiscountPercentage > 100:
		return nil, fmt.Errorf("%w: discount percentage must be between 0 and 100", domain.ErrValidation)
	}

	now := time.Now().UTC()
	r.ID = ""
	r.IsActive = true
	r.CreatedAt = now
	r.UpdatedAt = now

	if err := s.rewards.Create(ctx, r); err != nil {
		return nil, err
	}
	s.log.Info().Str("reward_id", r.ID).Str("type", string(r.Type)).Msg("reward created")
	return r, nil
}

// List returns active rewards unless the filter says otherwise.
func (s *RewardService) List(ctx context.Context, filter ports.RewardFilter) ([]*domain.Reward, error) {
	if filter.Type != "" && !filter.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown reward type %q", domain.ErrValidation, filter.Type)
	}
	if filter.Rarity != "" && !filter.Rarity.Valid() {
		return nil, fmt.Errorf("%w: unknown rarity %q", domain.ErrValidation, filter.Rarity)
	}
	if filter.Active == nil {
		active := true
		filter.Active = &active
	}
	return s.rewards.List(ctx, filter)
}

// Stats reports the user's reward standing and the rewards they qualify for.
func (s *RewardService) Stats(ctx context.Context, userID string) (*domain.RewardStats, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	active := true
	rewards, err := s.rewards.List(ctx, ports.RewardFilter{Active: &active})
	if err != nil {
		return nil, err
	}

	eligible := make([]*domain.Reward, 0, len(rewards))
	for _, r := range rewards {
		if r.EligibleFor(user) {
			eligible = append(eligible, r)
		}
	}

	return &domain.RewardStats{
		Points:          user.Rewards.Points,
		Level:           user.Rewards.Level,
		Badges:          nonNil(user.Rewards.Badges),
		NFTs:            nonNil(user.Rewards.NFTs),
		ESGScore:        user.ESGMetrics.SustainabilityScore,
		EligibleRewards: eligible,
	}, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
