// Package seed loads the demo dataset used for local development.
package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/sustainalink/platform/internal/core/domain"
	"github.com/sustainalink/platform/internal/core/ports"
)

const (
	DemoEmail     = "demo@sustainalink.com"
	DemoPassword  = "password"
	AdminEmail    = "admin@sustainalink.com"
	AdminPassword = "admin123"
)

type Stores struct {
	Users     ports.CredentialStore
	Products  ports.ProductRepository
	Suppliers ports.SupplierRepository
	Rewards   ports.RewardRepository
}

// Run seeds s unless the demo account already exists.
func Run(ctx context.Context, s Stores, bcryptCost int, log zerolog.Logger) error {
	if _, err := s.Users.FindByEmail(ctx, DemoEmail); err == nil {
		log.Debug().Msg("demo data already present")
		return nil
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return fmt.Errorf("seed: check demo user: %w", err)
	}

	now := time.Now().UTC()

	for _, u := range []struct {
		user     domain.User
		password string
	}{
		{demoUser(now), DemoPassword},
		{adminUser(now), AdminPassword},
	} {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcryptCost)
		if err != nil {
			return fmt.Errorf("seed: hash password: %w", err)
		}
		user := u.user
		user.PasswordHash = string(hash)
		if _, err := s.Users.Create(ctx, &user); err != nil && !errors.Is(err, domain.ErrUserExists) {
			return fmt.Errorf("seed: create user %s: %w", user.Email, err)
		}
	}

	supplierIDs := make([]string, 0, 2)
	for _, sup := range suppliers(now) {
		sup.Score()
		err := s.Suppliers.Create(ctx, sup)
		if errors.Is(err, domain.ErrDuplicate) {
			continue
		}
		if err != nil {
			return fmt.Errorf("seed: create supplier %s: %w", sup.CompanyName, err)
		}
		supplierIDs = append(supplierIDs, sup.ID)
	}

	for _, p := range products(now, supplierIDs) {
		if err := s.Products.Create(ctx, p); err != nil && !errors.Is(err, domain.ErrDuplicate) {
			return fmt.Errorf("seed: create product %s: %w", p.Name, err)
		}
	}

	for _, r := range rewards(now) {
		if err := s.Rewards.Create(ctx, r); err != nil {
			return fmt.Errorf("seed: create reward %s: %w", r.Name, err)
		}
	}

	log.Info().
		Int("users", 2).
		Int("suppliers", len(supplierIDs)).
		Int("products", 2).
		Int("rewards", 3).
		Msg("demo data seeded")
	return nil
}

func demoUser(now time.Time) domain.User {
	return domain.User{
		Email:     DemoEmail,
		FirstName: "Demo",
		LastName:  "User",
		Role:      domain.RoleConsumer,
		Profile: domain.Profile{
			Bio:      "Environmentally conscious consumer interested in sustainable products",
			Location: "San Francisco, CA",
			Preferences: domain.Preferences{
				SustainabilityGoals: []string{"reduce_carbon", "waste_reduction"},
				Notifications:       domain.NotificationPreferences{Email: true, Push: true},
			},
		},
		ESGMetrics: domain.UserESGMetrics{CarbonFootprint: 8.5, SustainabilityScore: 75, WasteReduction: 65},
		Rewards: domain.UserRewards{
			Points: 1250,
			Level:  3,
			Badges: []string{"eco-warrior", "carbon-reducer"},
			NFTs:   []string{"green-pioneer-nft"},
		},
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func adminUser(now time.Time) domain.User {
	return domain.User{
		Email:     AdminEmail,
		FirstName: "Admin",
		LastName:  "User",
		Role:      domain.RoleAdmin,
		Profile: domain.Profile{
			Bio:      "Platform administrator",
			Location: "Remote",
			Preferences: domain.Preferences{
				SustainabilityGoals: []string{"reduce_carbon", "renewable_energy", "waste_reduction"},
				Notifications:       domain.NotificationPreferences{Email: true},
			},
		},
		ESGMetrics: domain.UserESGMetrics{CarbonFootprint: 5, SustainabilityScore: 95, WasteReduction: 90},
		Rewards: domain.UserRewards{
			Points: 5000,
			Level:  10,
			Badges: []string{"admin", "sustainability-champion"},
			NFTs:   []string{"admin-badge-nft"},
		},
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func suppliers(now time.Time) []*domain.Supplier {
	return []*domain.Supplier{
		{
			CompanyName: "EcoTech Manufacturing",
			Industry:    "Manufacturing",
			ContactInfo: domain.ContactInfo{
				Email:   "contact@ecotech.com",
				Phone:   "+1-201-555-0123",
				Website: "https://ecotech.com",
				Address: domain.SupplierAddress{
					Street: "123 Green Street", City: "San Francisco", State: "California", Country: "USA", ZipCode: "94102",
				},
			},
			Certifications: []domain.Certification{
				{Name: "ISO 14001", IssuedBy: "ISO", ValidUntil: date(2027, time.December, 31)},
				{Name: "Fair Trade Certified", IssuedBy: "Fair Trade USA", ValidUntil: date(2027, time.June, 30)},
			},
			ESGMetrics: domain.SupplierESGMetrics{
				Environmental: domain.EnvironmentalScores{CarbonEmissions: 85, WaterUsage: 90, WasteManagement: 88, RenewableEnergyUsage: 75, BiodiversityImpact: 80},
				Social:        domain.SocialScores{EmployeeSafety: 95, LaborPractices: 92, CommunityEngagement: 85, DiversityInclusion: 78, HumanRights: 90},
				Governance:    domain.GovernanceScores{BusinessEthics: 88, Transparency: 85, BoardDiversity: 70, RiskManagement: 82, Compliance: 95},
			},
			SupplyChainTier: 1,
			IsVerified:      true,
			IsActive:        true,
			LastAuditDate:   date(2026, time.January, 15),
			NextAuditDate:   date(2027, time.January, 15),
			CreatedAt:       now,
			UpdatedAt:       now,
		},
		{
			CompanyName: "Sustainable Textiles Co.",
			Industry:    "Textiles",
			ContactInfo: domain.ContactInfo{
				Email:   "info@sustextiles.com",
				Phone:   "+1-512-555-0456",
				Website: "https://sustextiles.com",
				Address: domain.SupplierAddress{
					Street: "456 Organic Avenue", City: "Austin", State: "Texas", Country: "USA", ZipCode: "73301",
				},
			},
			Certifications: []domain.Certification{
				{Name: "GOTS Certified", IssuedBy: "Global Organic Textile Standard", ValidUntil: date(2027, time.August, 31)},
			},
			ESGMetrics: domain.SupplierESGMetrics{
				Environmental: domain.EnvironmentalScores{CarbonEmissions: 78, WaterUsage: 82, WasteManagement: 85, RenewableEnergyUsage: 65, BiodiversityImpact: 75},
				Social:        domain.SocialScores{EmployeeSafety: 88, LaborPractices: 85, CommunityEngagement: 90, DiversityInclusion: 85, HumanRights: 92},
				Governance:    domain.GovernanceScores{BusinessEthics: 85, Transparency: 80, BoardDiversity: 75, RiskManagement: 78, Compliance: 88},
			},
			SupplyChainTier: 2,
			IsVerified:      true,
			IsActive:        true,
			LastAuditDate:   date(2026, time.March, 20),
			NextAuditDate:   date(2027, time.March, 20),
			CreatedAt:       now,
			UpdatedAt:       now,
		},
	}
}

func products(now time.Time, supplierIDs []string) []*domain.Product {
	supplier := func(i int) string {
		if i < len(supplierIDs) {
			return supplierIDs[i]
		}
		return ""
	}
	return []*domain.Product{
		{
			Name:        "Eco-Friendly Water Bottle",
			Description: "Made from 100% recycled materials with zero plastic waste",
			Category:    domain.CategoryHome,
			Brand:       "EcoTech",
			Barcode:     "1234567890123",
			QRCode:      "ECO-BOTTLE-001",
			SustainabilityMetrics: domain.SustainabilityMetrics{
				CarbonFootprint: 2.5, RecyclabilityScore: 95, SustainabilityRating: 4.8,
				Certifications: []string{"Cradle to Cradle", "Carbon Neutral"},
			},
			SupplyChain: domain.SupplyChain{
				SupplierID: supplier(0), OriginCountry: "USA", TransportationMode: domain.TransportLand,
				ManufacturingDate: date(2026, time.June, 15), Intermediaries: []string{"Green Logistics"},
			},
			ESGData:      domain.ProductESGData{WaterUsage: 50, EnergyConsumption: 75, RenewableEnergyPercentage: 80, FairTrade: true, EthicalSourcing: true},
			Price:        domain.Price{Amount: 24.99, Currency: "USD"},
			Availability: domain.Availability{InStock: true, Quantity: 1500},
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			Name:        "Organic Cotton T-Shirt",
			Description: "Sustainably sourced organic cotton with fair trade certification",
			Category:    domain.CategoryClothing,
			Brand:       "Sustainable Textiles",
			Barcode:     "2345678901234",
			QRCode:      "ORGANIC-TSHIRT-001",
			SustainabilityMetrics: domain.SustainabilityMetrics{
				CarbonFootprint: 3.2, RecyclabilityScore: 88, SustainabilityRating: 4.6,
				Certifications: []string{"GOTS", "Fair Trade", "Organic"},
			},
			SupplyChain: domain.SupplyChain{
				SupplierID: supplier(1), OriginCountry: "India", TransportationMode: domain.TransportSea,
				ManufacturingDate: date(2026, time.May, 10), Intermediaries: []string{"Fair Trade Distributors"},
			},
			ESGData:      domain.ProductESGData{WaterUsage: 200, EnergyConsumption: 120, RenewableEnergyPercentage: 60, FairTrade: true, EthicalSourcing: true},
			Price:        domain.Price{Amount: 32.99, Currency: "USD"},
			Availability: domain.Availability{InStock: true, Quantity: 850},
			IsActive:     true,
			CreatedAt:    now.Add(time.Second),
			UpdatedAt:    now.Add(time.Second),
		},
	}
}

func rewards(now time.Time) []*domain.Reward {
	rs := []*domain.Reward{
		{
			Name:         "Eco Warrior Badge",
			Description:  "Awarded for achieving 50+ sustainability score",
			Type:         domain.RewardBadge,
			Requirements: domain.RewardRequirements{MinSustainabilityScore: 50},
			Value:        domain.RewardValue{Points: 100},
			Rarity:       domain.RarityCommon,
		},
		{
			Name:         "20% Green Discount",
			Description:  "Discount on sustainable products",
			Type:         domain.RewardDiscount,
			Requirements: domain.RewardRequirements{MinPoints: 500},
			Value:        domain.RewardValue{DiscountPercentage: 20},
			Rarity:       domain.RarityCommon,
		},
		{
			Name:         "Sustainability Champion",
			Description:  "Ultimate badge for achieving 90+ sustainability score",
			Type:         domain.RewardBadge,
			Requirements: domain.RewardRequirements{MinSustainabilityScore: 90, MinPoints: 5000},
			Value:        domain.RewardValue{Points: 1000},
			Rarity:       domain.RarityLegendary,
		},
	}
	for _, r := range rs {
		r.IsActive = true
		r.CreatedAt = now
		r.UpdatedAt = now
	}
	return rs
}
