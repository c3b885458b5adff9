package domain

import (
	"strings"
	"time"
)

// Role is the closed set of roles an identity can hold.
type Role string

const (
	RoleConsumer Role = "consumer"
	RoleSupplier Role = "supplier"
	RoleAdmin    Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleConsumer, RoleSupplier, RoleAdmin:
		return true
	}
	return false
}

// RoleSet is an allow-list of roles for an operation.
type RoleSet map[Role]struct{}

func NewRoleSet(roles ...Role) RoleSet {
	s := make(RoleSet, len(roles))
	for _, r := range roles {
		s[r] = struct{}{}
	}
	return s
}

// Contains reports whether r is permitted by the set.
func (s RoleSet) Contains(r Role) bool {
	_, ok := s[r]
	return ok
}

// Permit returns ErrInsufficientRole when r is not in the set.
func (s RoleSet) Permit(r Role) error {
	if !s.Contains(r) {
		return ErrInsufficientRole
	}
	return nil
}

// NotificationPreferences controls which messages a user opts into.
type NotificationPreferences struct {
	Email bool `json:"email" bson:"email"`
	Push  bool `json:"push" bson:"push"`
}

type Preferences struct {
	SustainabilityGoals []string                `json:"sustainabilityGoals" bson:"sustainability_goals"`
	Notifications       NotificationPreferences `json:"notifications" bson:"notifications"`
}

type Profile struct {
	Avatar      string      `json:"avatar,omitempty" bson:"avatar,omitempty"`
	Bio         string      `json:"bio,omitempty" bson:"bio,omitempty"`
	Location    string      `json:"location,omitempty" bson:"location,omitempty"`
	Preferences Preferences `json:"preferences" bson:"preferences"`
}

// UserESGMetrics tracks a user's personal sustainability footprint.
type UserESGMetrics struct {
	CarbonFootprint     float64 `json:"carbonFootprint" bson:"carbon_footprint"`
	SustainabilityScore float64 `json:"sustainabilityScore" bson:"sustainability_score"`
	WasteReduction      float64 `json:"wasteReduction" bson:"waste_reduction"`
}

type UserRewards struct {
	Points int      `json:"points" bson:"points"`
	Level  int      `json:"level" bson:"level"`
	Badges []string `json:"badges" bson:"badges"`
	NFTs   []string `json:"nfts" bson:"nfts"`
}

// User is the stored identity. PasswordHash never leaves the process.
type User struct {
	ID           string         `json:"id"`
	Email        string         `json:"email"`
	PasswordHash string         `json:"-"`
	FirstName    string         `json:"firstName"`
	LastName     string         `json:"lastName"`
	Role         Role           `json:"role"`
	Profile      Profile        `json:"profile"`
	ESGMetrics   UserESGMetrics `json:"esgMetrics"`
	Rewards      UserRewards    `json:"rewards"`
	IsActive     bool           `json:"isActive"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// NormalizeEmail is the canonical form used for uniqueness checks.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NewRewards returns the starting reward state for a fresh account.
func NewRewards() UserRewards {
	return UserRewards{Level: 1, Badges: []string{}, NFTs: []string{}}
}
