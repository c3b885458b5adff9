package domain

import (
	"math"
	"testing"
)

func TestRoleSet_Permit(t *testing.T) {
	set := NewRoleSet(RoleSupplier, RoleAdmin)

	if err := set.Permit(RoleAdmin); err != nil {
		t.Fatalf("admin should be permitted, got %v", err)
	}
	if err := set.Permit(RoleConsumer); err != ErrInsufficientRole {
		t.Fatalf("expected ErrInsufficientRole, got %v", err)
	}
	if NewRoleSet().Contains(RoleAdmin) {
		t.Fatalf("empty set must not contain any role")
	}
}

func TestRole_Valid(t *testing.T) {
	for _, r := range []Role{RoleConsumer, RoleSupplier, RoleAdmin} {
		if !r.Valid() {
			t.Fatalf("%s should be valid", r)
		}
	}
	if Role("root").Valid() {
		t.Fatalf("unknown role reported valid")
	}
}

func TestNewPage_Clamps(t *testing.T) {
	cases := []struct {
		page, limit     int
		wantPage, wantL int
	}{
		{0, 0, 1, DefaultPageLimit},
		{-3, 500, 1, MaxPageLimit},
		{4, 25, 4, 25},
	}
	for _, tc := range cases {
		p := NewPage(tc.page, tc.limit)
		if p.Number != tc.wantPage || p.Limit != tc.wantL {
			t.Fatalf("NewPage(%d,%d) = %+v", tc.page, tc.limit, p)
		}
	}
	huge := NewPage(math.MaxInt, 10)
	if huge.Number != math.MaxInt/10 || huge.Offset() < 0 {
		t.Fatalf("NewPage(MaxInt,10) = %+v, offset %d", huge, huge.Offset())
	}
	if got := NewPage(3, 10).Offset(); got != 20 {
		t.Fatalf("expected offset 20, got %d", got)
	}
	if got := NewPage(1, 10).Pages(21); got != 3 {
		t.Fatalf("expected 3 pages, got %d", got)
	}
}

func TestSupplier_Score(t *testing.T) {
	s := &Supplier{ESGMetrics: SupplierESGMetrics{
		Environmental: EnvironmentalScores{85, 90, 88, 75, 80},
		Social:        SocialScores{95, 92, 85, 78, 90},
		Governance:    GovernanceScores{88, 85, 70, 82, 95},
	}}
	s.Score()

	// env 83.6, soc 88, gov 84 -> 85.2
	if s.OverallESGScore != 85 {
		t.Fatalf("expected 85, got %d", s.OverallESGScore)
	}
	if s.RiskLevel != RiskLow {
		t.Fatalf("expected low risk, got %s", s.RiskLevel)
	}
}

func TestRiskLevelFor(t *testing.T) {
	cases := map[int]RiskLevel{100: RiskLow, 75: RiskLow, 74: RiskMedium, 50: RiskMedium, 49: RiskHigh, 0: RiskHigh}
	for score, want := range cases {
		if got := RiskLevelFor(score); got != want {
			t.Fatalf("RiskLevelFor(%d) = %s, want %s", score, got, want)
		}
	}
}

func TestESGReport_ScoreHandlesEmptyMetrics(t *testing.T) {
	r := &ESGReport{}
	r.Score()
	// only the low-turnover component contributes: 20/3
	if r.OverallScore != 7 {
		t.Fatalf("expected 7, got %d", r.OverallScore)
	}
}

func TestESGReport_ScoreFullMarks(t *testing.T) {
	r := &ESGReport{
		EnvironmentalMetrics: EnvironmentalMetrics{
			CarbonEmissions:   CarbonEmissions{Total: 10},
			WaterUsage:        ResourceUsage{Total: 10, Recycled: 10},
			WasteManagement:   WasteManagement{TotalGenerated: 5, Recycled: 5},
			EnergyConsumption: EnergyConsumption{Total: 100, Renewable: 100},
		},
		SocialMetrics: SocialMetrics{
			Workforce:       Workforce{DiversityRatio: 100, TurnoverRate: 0},
			CommunityImpact: CommunityImpact{InvestmentAmount: 1, Programs: []string{"schools"}},
			LaborPractices:  LaborPractices{true, true, true},
		},
		GovernanceMetrics: GovernanceMetrics{
			BoardComposition: BoardComposition{TotalMembers: 4, IndependentMembers: 4, WomenMembers: 4},
			Transparency:     Transparency{PublicReporting: true, StakeholderEngagement: true},
			Ethics:           Ethics{true, true, true},
		},
	}
	r.Score()
	if r.OverallScore != 100 {
		t.Fatalf("expected 100, got %d", r.OverallScore)
	}
}

func TestReward_EligibleFor(t *testing.T) {
	u := &User{Rewards: UserRewards{Points: 200}, ESGMetrics: UserESGMetrics{SustainabilityScore: 60}}
	r := &Reward{IsActive: true, Requirements: RewardRequirements{MinPoints: 100, MinSustainabilityScore: 50}}
	if !r.EligibleFor(u) {
		t.Fatalf("expected eligible")
	}
	r.Requirements.MinPoints = 500
	if r.EligibleFor(u) {
		t.Fatalf("expected not eligible with insufficient points")
	}
}
