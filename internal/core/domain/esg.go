package domain

import (
	"math"
	"time"
)

type ReportStatus string

const (
	ReportDraft     ReportStatus = "draft"
	ReportPublished ReportStatus = "published"
	ReportArchived  ReportStatus = "archived"
)

func (s ReportStatus) Valid() bool {
	switch s {
	case ReportDraft, ReportPublished, ReportArchived:
		return true
	}
	return false
}

type ReportPeriod struct {
	StartDate time.Time `json:"startDate" bson:"start_date"`
	EndDate   time.Time `json:"endDate" bson:"end_date"`
	Quarter   string    `json:"quarter,omitempty" bson:"quarter,omitempty"`
	Year      int       `json:"year" bson:"year"`
}

type CarbonEmissions struct {
	Scope1 float64 `json:"scope1" bson:"scope1"`
	Scope2 float64 `json:"scope2" bson:"scope2"`
	Scope3 float64 `json:"scope3" bson:"scope3"`
	Total  float64 `json:"total" bson:"total"`
	Unit   string  `json:"unit" bson:"unit"`
}

type ResourceUsage struct {
	Total    float64 `json:"total" bson:"total"`
	Recycled float64 `json:"recycled" bson:"recycled"`
	Unit     string  `json:"unit" bson:"unit"`
}

type WasteManagement struct {
	TotalGenerated float64 `json:"totalGenerated" bson:"total_generated"`
	Recycled       float64 `json:"recycled" bson:"recycled"`
	Landfill       float64 `json:"landfill" bson:"landfill"`
	Unit           string  `json:"unit" bson:"unit"`
}

type EnergyConsumption struct {
	Total     float64 `json:"total" bson:"total"`
	Renewable float64 `json:"renewable" bson:"renewable"`
	Unit      string  `json:"unit" bson:"unit"`
}

type EnvironmentalMetrics struct {
	CarbonEmissions   CarbonEmissions   `json:"carbonEmissions" bson:"carbon_emissions"`
	WaterUsage        ResourceUsage     `json:"waterUsage" bson:"water_usage"`
	WasteManagement   WasteManagement   `json:"wasteManagement" bson:"waste_management"`
	EnergyConsumption EnergyConsumption `json:"energyConsumption" bson:"energy_consumption"`
}

type Workforce struct {
	TotalEmployees  int     `json:"totalEmployees" bson:"total_employees"`
	DiversityRatio  float64 `json:"diversityRatio" bson:"diversity_ratio"`
	TurnoverRate    float64 `json:"turnoverRate" bson:"turnover_rate"`
	SafetyIncidents int     `json:"safetyIncidents" bson:"safety_incidents"`
}

type CommunityImpact struct {
	InvestmentAmount float64  `json:"investmentAmount" bson:"investment_amount"`
	Beneficiaries    int      `json:"beneficiaries" bson:"beneficiaries"`
	Programs         []string `json:"programs" bson:"programs"`
}

type LaborPractices struct {
	FairWageCompliance     bool `json:"fairWageCompliance" bson:"fair_wage_compliance"`
	WorkingHoursCompliance bool `json:"workingHoursCompliance" bson:"working_hours_compliance"`
	ChildLaborCompliance   bool `json:"childLaborCompliance" bson:"child_labor_compliance"`
}

type SocialMetrics struct {
	Workforce       Workforce       `json:"workforce" bson:"workforce"`
	CommunityImpact CommunityImpact `json:"communityImpact" bson:"community_impact"`
	LaborPractices  LaborPractices  `json:"laborPractices" bson:"labor_practices"`
}

type BoardComposition struct {
	TotalMembers       int `json:"totalMembers" bson:"total_members"`
	IndependentMembers int `json:"independentMembers" bson:"independent_members"`
	WomenMembers       int `json:"womenMembers" bson:"women_members"`
}

type Transparency struct {
	PublicReporting       bool   `json:"publicReporting" bson:"public_reporting"`
	AuditFrequency        string `json:"auditFrequency,omitempty" bson:"audit_frequency,omitempty"`
	StakeholderEngagement bool   `json:"stakeholderEngagement" bson:"stakeholder_engagement"`
}

type Ethics struct {
	CodeOfConduct          bool `json:"codeOfConduct" bson:"code_of_conduct"`
	WhistleblowerPolicy    bool `json:"whistleblowerPolicy" bson:"whistleblower_policy"`
	AnticorruptionTraining bool `json:"anticorruptionTraining" bson:"anticorruption_training"`
}

type GovernanceMetrics struct {
	BoardComposition BoardComposition `json:"boardComposition" bson:"board_composition"`
	Transparency     Transparency     `json:"transparency" bson:"transparency"`
	Ethics           Ethics           `json:"ethics" bson:"ethics"`
}

type ESGReport struct {
	ID                   string               `json:"id" bson:"_id"`
	SupplierID           string               `json:"supplierId" bson:"supplier_id"`
	ReportPeriod         ReportPeriod         `json:"reportPeriod" bson:"report_period"`
	ExecutiveSummary     string               `json:"executiveSummary" bson:"executive_summary"`
	EnvironmentalMetrics EnvironmentalMetrics `json:"environmentalMetrics" bson:"environmental_metrics"`
	SocialMetrics        SocialMetrics        `json:"socialMetrics" bson:"social_metrics"`
	GovernanceMetrics    GovernanceMetrics    `json:"governanceMetrics" bson:"governance_metrics"`
	Certifications       []Certification      `json:"certifications,omitempty" bson:"certifications,omitempty"`
	OverallScore         int                  `json:"overallScore" bson:"overall_score"`
	GeneratedBy          string               `json:"generatedBy" bson:"generated_by"`
	Status               ReportStatus         `json:"status" bson:"status"`
	CreatedAt            time.Time            `json:"createdAt" bson:"created_at"`
	UpdatedAt            time.Time            `json:"updatedAt" bson:"updated_at"`
}

// Score computes OverallScore as the rounded mean of the three pillar scores.
func (r *ESGReport) Score() {
	total := r.EnvironmentalMetrics.score() + r.SocialMetrics.score() + r.GovernanceMetrics.score()
	r.OverallScore = clampScore(int(math.Round(total / 3)))
}

func (m EnvironmentalMetrics) score() float64 {
	var s float64
	if m.CarbonEmissions.Total > 0 {
		s += 25
	}
	s += 25 * ratio(m.WaterUsage.Recycled, m.WaterUsage.Total)
	s += 25 * ratio(m.WasteManagement.Recycled, m.WasteManagement.TotalGenerated)
	s += 25 * ratio(m.EnergyConsumption.Renewable, m.EnergyConsumption.Total)
	return s
}

func (m SocialMetrics) score() float64 {
	s := 0.3 * bounded(m.Workforce.DiversityRatio)
	s += 0.2 * (100 - bounded(m.Workforce.TurnoverRate))
	for _, ok := range []bool{m.LaborPractices.FairWageCompliance, m.LaborPractices.WorkingHoursCompliance, m.LaborPractices.ChildLaborCompliance} {
		if ok {
			s += 10
		}
	}
	if len(m.CommunityImpact.Programs) > 0 {
		s += 10
	}
	if m.CommunityImpact.InvestmentAmount > 0 {
		s += 10
	}
	return s
}

func (m GovernanceMetrics) score() float64 {
	board := m.BoardComposition
	s := 30 * ratio(float64(board.IndependentMembers), float64(board.TotalMembers))
	s += 20 * ratio(float64(board.WomenMembers), float64(board.TotalMembers))
	for _, ok := range []bool{
		m.Transparency.PublicReporting, m.Transparency.StakeholderEngagement,
		m.Ethics.CodeOfConduct, m.Ethics.WhistleblowerPolicy, m.Ethics.AnticorruptionTraining,
	} {
		if ok {
			s += 10
		}
	}
	return s
}

// ratio returns part/whole clamped to 0..1; zero when whole is not positive.
func ratio(part, whole float64) float64 {
	if whole <= 0 || part <= 0 {
		return 0
	}
	return math.Min(part/whole, 1)
}

func bounded(v float64) float64 {
	return math.Max(0, math.Min(v, 100))
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
