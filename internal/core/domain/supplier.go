package domain

import (
	"math"
	"time"
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

type SupplierAddress struct {
	Street  string `json:"street" bson:"street"`
	City    string `json:"city" bson:"city"`
	State   string `json:"state" bson:"state"`
	Country string `json:"country" bson:"country"`
	ZipCode string `json:"zipCode" bson:"zip_code"`
}

type ContactInfo struct {
	Email   string          `json:"email" bson:"email"`
	Phone   string          `json:"phone" bson:"phone"`
	Website string          `json:"website,omitempty" bson:"website,omitempty"`
	Address SupplierAddress `json:"address" bson:"address"`
}

type Certification struct {
	Name       string     `json:"name" bson:"name"`
	IssuedBy   string     `json:"issuedBy" bson:"issued_by"`
	ValidUntil *time.Time `json:"validUntil,omitempty" bson:"valid_until,omitempty"`
}

type EnvironmentalScores struct {
	CarbonEmissions      float64 `json:"carbonEmissions" bson:"carbon_emissions"`
	WaterUsage           float64 `json:"waterUsage" bson:"water_usage"`
	WasteManagement      float64 `json:"wasteManagement" bson:"waste_management"`
	RenewableEnergyUsage float64 `json:"renewableEnergyUsage" bson:"renewable_energy_usage"`
	BiodiversityImpact   float64 `json:"biodiversityImpact" bson:"biodiversity_impact"`
}

func (e EnvironmentalScores) values() []float64 {
	return []float64{e.CarbonEmissions, e.WaterUsage, e.WasteManagement, e.RenewableEnergyUsage, e.BiodiversityImpact}
}

type SocialScores struct {
	EmployeeSafety      float64 `json:"employeeSafety" bson:"employee_safety"`
	LaborPractices      float64 `json:"laborPractices" bson:"labor_practices"`
	CommunityEngagement float64 `json:"communityEngagement" bson:"community_engagement"`
	DiversityInclusion  float64 `json:"diversityInclusion" bson:"diversity_inclusion"`
	HumanRights         float64 `json:"humanRights" bson:"human_rights"`
}

func (s SocialScores) values() []float64 {
	return []float64{s.EmployeeSafety, s.LaborPractices, s.CommunityEngagement, s.DiversityInclusion, s.HumanRights}
}

type GovernanceScores struct {
	BusinessEthics float64 `json:"businessEthics" bson:"business_ethics"`
	Transparency   float64 `json:"transparency" bson:"transparency"`
	BoardDiversity float64 `json:"boardDiversity" bson:"board_diversity"`
	RiskManagement float64 `json:"riskManagement" bson:"risk_management"`
	Compliance     float64 `json:"compliance" bson:"compliance"`
}

func (g GovernanceScores) values() []float64 {
	return []float64{g.BusinessEthics, g.Transparency, g.BoardDiversity, g.RiskManagement, g.Compliance}
}

// SupplierESGMetrics holds the fifteen 0..100 sub-scores.
type SupplierESGMetrics struct {
	Environmental EnvironmentalScores `json:"environmental" bson:"environmental"`
	Social        SocialScores        `json:"social" bson:"social"`
	Governance    GovernanceScores    `json:"governance" bson:"governance"`
}

// InRange reports whether every sub-score lies in 0..100.
func (m SupplierESGMetrics) InRange() bool {
	for _, group := range [][]float64{m.Environmental.values(), m.Social.values(), m.Governance.values()} {
		for _, v := range group {
			if v < 0 || v > 100 {
				return false
			}
		}
	}
	return true
}

// OverallScore is the rounded mean of the three category averages.
func (m SupplierESGMetrics) OverallScore() int {
	total := mean(m.Environmental.values()) + mean(m.Social.values()) + mean(m.Governance.values())
	return int(math.Round(total / 3))
}

// RiskLevelFor maps an overall score onto a risk band.
func RiskLevelFor(score int) RiskLevel {
	switch {
	case score >= 75:
		return RiskLow
	case score >= 50:
		return RiskMedium
	default:
		return RiskHigh
	}
}

func mean(vs []float64) float64 {
	if len(vs) == 0 {
		return 0
	}
	var sum float64
	for _, v := range vs {
		sum += v
	}
	return sum / float64(len(vs))
}

type Supplier struct {
	ID              string             `json:"id" bson:"_id"`
	CompanyName     string             `json:"companyName" bson:"company_name"`
	ContactInfo     ContactInfo        `json:"contactInfo" bson:"contact_info"`
	Industry        string             `json:"industry,omitempty" bson:"industry,omitempty"`
	Certifications  []Certification    `json:"certifications" bson:"certifications"`
	ESGMetrics      SupplierESGMetrics `json:"esgMetrics" bson:"esg_metrics"`
	OverallESGScore int                `json:"overallESGScore" bson:"overall_esg_score"`
	SupplyChainTier int                `json:"supplyChainTier" bson:"supply_chain_tier"`
	RiskLevel       RiskLevel          `json:"riskLevel" bson:"risk_level"`
	IsVerified      bool               `json:"isVerified" bson:"is_verified"`
	IsActive        bool               `json:"isActive" bson:"is_active"`
	LastAuditDate   *time.Time         `json:"lastAuditDate,omitempty" bson:"last_audit_date,omitempty"`
	NextAuditDate   *time.Time         `json:"nextAuditDate,omitempty" bson:"next_audit_date,omitempty"`
	CreatedAt       time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt       time.Time          `json:"updatedAt" bson:"updated_at"`
}

// Score recomputes OverallESGScore and RiskLevel from the sub-metrics.
func (s *Supplier) Score() {
	s.OverallESGScore = s.ESGMetrics.OverallScore()
	s.RiskLevel = RiskLevelFor(s.OverallESGScore)
}
