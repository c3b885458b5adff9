package domain

import "time"

type RewardType string

const (
	RewardBadge         RewardType = "badge"
	RewardNFT           RewardType = "nft"
	RewardPoints        RewardType = "points"
	RewardDiscount      RewardType = "discount"
	RewardCertification RewardType = "certification"
)

func (t RewardType) Valid() bool {
	switch t {
	case RewardBadge, RewardNFT, RewardPoints, RewardDiscount, RewardCertification:
		return true
	}
	return false
}

type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

func (r Rarity) Valid() bool {
	switch r {
	case RarityCommon, RarityRare, RarityEpic, RarityLegendary:
		return true
	}
	return false
}

type RewardRequirements struct {
	MinSustainabilityScore float64  `json:"minSustainabilityScore" bson:"min_sustainability_score"`
	MinPoints              int      `json:"minPoints" bson:"min_points"`
	SpecificActions        []string `json:"specificActions,omitempty" bson:"specific_actions,omitempty"`
	Timeframe              string   `json:"timeframe,omitempty" bson:"timeframe,omitempty"`
}

type RewardValue struct {
	Points             int     `json:"points,omitempty" bson:"points,omitempty"`
	DiscountPercentage float64 `json:"discountPercentage,omitempty" bson:"discount_percentage,omitempty"`
	MonetaryValue      float64 `json:"monetaryValue,omitempty" bson:"monetary_value,omitempty"`
}

type Reward struct {
	ID           string             `json:"id" bson:"_id"`
	Name         string             `json:"name" bson:"name"`
	Description  string             `json:"description" bson:"description"`
	Type         RewardType         `json:"type" bson:"type"`
	Requirements RewardRequirements `json:"requirements" bson:"requirements"`
	Value        RewardValue        `json:"value" bson:"value"`
	ImageURL     string             `json:"imageUrl,omitempty" bson:"image_url,omitempty"`
	Rarity       Rarity             `json:"rarity" bson:"rarity"`
	IsActive     bool               `json:"isActive" bson:"is_active"`
	CreatedAt    time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updated_at"`
}

// EligibleFor reports whether u meets the reward's point and score thresholds.
func (r *Reward) EligibleFor(u *User) bool {
	return r.IsActive &&
		u.Rewards.Points >= r.Requirements.MinPoints &&
		u.ESGMetrics.SustainabilityScore >= r.Requirements.MinSustainabilityScore
}

// RewardStats summarises a user's reward standing.
type RewardStats struct {
	Points          int       `json:"points"`
	Level           int       `json:"level"`
	Badges          []string  `json:"badges"`
	NFTs            []string  `json:"nfts"`
	ESGScore        float64   `json:"esgScore"`
	EligibleRewards []*Reward `json:"eligibleRewards"`
}
