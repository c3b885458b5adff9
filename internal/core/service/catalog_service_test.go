package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/sustainalink/platform/internal/core/domain"
	"github.com/sustainalink/platform/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubProductRepo struct {
	items     map[string]*domain.Product
	lastQuery ports.ProductFilter
}

func (r *stubProductRepo) Create(_ context.Context, p *domain.Product) error {
	if r.items == nil {
		r.items = map[string]*domain.Product{}
	}
	for _, existing := range r.items {
		if p.Barcode != "" && existing.Barcode == p.Barcode {
			return domain.ErrDuplicate
		}
	}
	p.ID = "p" + strconv.Itoa(len(r.items)+1)
	r.items[p.ID] = p
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	if p, ok := r.items[id]; ok {
		return p, nil
	}
	return nil, domain.ErrProductNotFound
}

func (r *stubProductRepo) FindByBarcode(_ context.Context, code string) (*domain.Product, error) {
	for _, p := range r.items {
		if p.Barcode == code {
			return p, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (r *stubProductRepo) FindByQRCode(_ context.Context, code string) (*domain.Product, error) {
	for _, p := range r.items {
		if p.QRCode == code {
			return p, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (r *stubProductRepo) List(_ context.Context, f ports.ProductFilter) ([]*domain.Product, int64, error) {
	r.lastQuery = f
	return nil, 0, nil
}

type stubSupplierRepo struct {
	items map[string]*domain.Supplier
}

func (r *stubSupplierRepo) Create(_ context.Context, s *domain.Supplier) error {
	if r.items == nil {
		r.items = map[string]*domain.Supplier{}
	}
	s.ID = "s" + strconv.Itoa(len(r.items)+1)
	r.items[s.ID] = s
	return nil
}

func (r *stubSupplierRepo) FindByID(_ context.Context, id string) (*domain.Supplier, error) {
	if s, ok := r.items[id]; ok {
		return s, nil
	}
	return nil, domain.ErrSupplierNotFound
}

func (r *stubSupplierRepo) List(_ context.Context, _ ports.SupplierFilter) ([]*domain.Supplier, int64, error) {
	return nil, 0, nil
}

type stubReportRepo struct {
	created   []*domain.ESGReport
	lastQuery ports.ESGReportFilter
}

func (r *stubReportRepo) Create(_ context.Context, rep *domain.ESGReport) error {
	rep.ID = "r" + strconv.Itoa(len(r.created)+1)
	r.created = append(r.created, rep)
	return nil
}

func (r *stubReportRepo) List(_ context.Context, f ports.ESGReportFilter) ([]*domain.ESGReport, int64, error) {
	r.lastQuery = f
	return r.created, int64(len(r.created)), nil
}

type stubRewardRepo struct {
	items      []*domain.Reward
	lastFilter ports.RewardFilter
}

func (r *stubRewardRepo) Create(_ context.Context, rw *domain.Reward) error {
	rw.ID = "w" + strconv.Itoa(len(r.items)+1)
	r.items = append(r.items, rw)
	return nil
}

func (r *stubRewardRepo) List(_ context.Context, f ports.RewardFilter) ([]*domain.Reward, error) {
	r.lastFilter = f
	out := make([]*domain.Reward, 0, len(r.items))
	for _, rw := range r.items {
		if f.Active == nil || rw.IsActive == *f.Active {
			out = append(out, rw)
		}
	}
	return out, nil
}

func validProduct() *domain.Product {
	return &domain.Product{
		Name:        " Bamboo Toothbrush ",
		Description: "Compostable handle",
		Category:    domain.CategoryBeauty,
		Brand:       "GreenSmile",
		Barcode:     "123",
		SustainabilityMetrics: domain.SustainabilityMetrics{
			CarbonFootprint:      0.2,
			RecyclabilityScore:   90,
			SustainabilityRating: 4.5,
		},
		SupplyChain: domain.SupplyChain{TransportationMode: domain.TransportSea},
		Price:       domain.Price{Amount: 4.99},
	}
}

// ---------------------------------------------------------------------------
// Products
// ---------------------------------------------------------------------------

func TestProductService_Create(t *testing.T) {
	repo := &stubProductRepo{}
	svc := NewProductService(repo, zerolog.Nop())
	actor := &domain.User{ID: "sup-1", Role: domain.RoleSupplier}

	p, err := svc.Create(context.Background(), actor, validProduct())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if p.ID == "" || p.Name != "Bamboo Toothbrush" || p.CreatedBy != "sup-1" || !p.IsActive {
		t.Fatalf("unexpected product: %+v", p)
	}
	if p.Price.Currency != "USD" {
		t.Fatalf("expected default currency, got %q", p.Price.Currency)
	}

	if _, err := svc.Create(context.Background(), actor, validProduct()); err != domain.ErrDuplicate {
		t.Fatalf("expected ErrDuplicate for repeated barcode, got %v", err)
	}
}

func TestProductService_Create_Validation(t *testing.T) {
	svc := NewProductService(&stubProductRepo{}, zerolog.Nop())
	actor := &domain.User{ID: "a"}

	mutations := map[string]func(p *domain.Product){
		"no name":        func(p *domain.Product) { p.Name = "" },
		"bad category":   func(p *domain.Product) { p.Category = "toys" },
		"no brand":       func(p *domain.Product) { p.Brand = " " },
		"rating":         func(p *domain.Product) { p.SustainabilityMetrics.SustainabilityRating = 6 },
		"recyclability":  func(p *domain.Product) { p.SustainabilityMetrics.RecyclabilityScore = -1 },
		"transport mode": func(p *domain.Product) { p.SupplyChain.TransportationMode = "teleport" },
		"negative price": func(p *domain.Product) { p.Price.Amount = -1 },
	}
	for name, mutate := range mutations {
		p := validProduct()
		mutate(p)
		if _, err := svc.Create(context.Background(), actor, p); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("%s: expected ErrValidation, got %v", name, err)
		}
	}
}

func TestProductService_List_NormalisesPage(t *testing.T) {
	repo := &stubProductRepo{}
	svc := NewProductService(repo, zerolog.Nop())

	if _, _, err := svc.List(context.Background(), ports.ProductFilter{Search: "  soap ", Page: domain.Page{Number: 0, Limit: 1000}}); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if repo.lastQuery.Search != "soap" || repo.lastQuery.Page.Number != 1 || repo.lastQuery.Page.Limit != domain.MaxPageLimit {
		t.Fatalf("unexpected filter: %+v", repo.lastQuery)
	}
	if _, _, err := svc.List(context.Background(), ports.ProductFilter{Category: "toys"}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Suppliers
// ---------------------------------------------------------------------------

func TestSupplierService_Create_ScoresSupplier(t *testing.T) {
	svc := NewSupplierService(&stubSupplierRepo{}, zerolog.Nop())

	s, err := svc.Create(context.Background(), &domain.Supplier{
		CompanyName:     "Green Threads",
		ContactInfo:     domain.ContactInfo{Email: "Hello@GreenThreads.io"},
		SupplyChainTier: 2,
		ESGMetrics: domain.SupplierESGMetrics{
			Environmental: domain.EnvironmentalScores{CarbonEmissions: 60, WaterUsage: 60, WasteManagement: 60, RenewableEnergyUsage: 60, BiodiversityImpact: 60},
			Social:        domain.SocialScores{EmployeeSafety: 50, LaborPractices: 50, CommunityEngagement: 50, DiversityInclusion: 50, HumanRights: 50},
			Governance:    domain.GovernanceScores{BusinessEthics: 55, Transparency: 55, BoardDiversity: 55, RiskManagement: 55, Compliance: 55},
		},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if s.OverallESGScore != 55 || s.RiskLevel != domain.RiskMedium {
		t.Fatalf("unexpected score: %d %s", s.OverallESGScore, s.RiskLevel)
	}
	if s.ContactInfo.Email != "hello@greenthreads.io" {
		t.Fatalf("expected normalised contact email, got %q", s.ContactInfo.Email)
	}
}

func TestSupplierService_Create_Validation(t *testing.T) {
	svc := NewSupplierService(&stubSupplierRepo{}, zerolog.Nop())
	base := func() *domain.Supplier {
		return &domain.Supplier{CompanyName: "X", ContactInfo: domain.ContactInfo{Email: "x@y.z"}, SupplyChainTier: 1}
	}

	tier := base()
	tier.SupplyChainTier = 5
	if _, err := svc.Create(context.Background(), tier); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for tier, got %v", err)
	}

	metrics := base()
	metrics.ESGMetrics.Governance.Compliance = 101
	if _, err := svc.Create(context.Background(), metrics); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for metric range, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// ESG reports
// ---------------------------------------------------------------------------

func validReport(supplierID string) *domain.ESGReport {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return &domain.ESGReport{
		SupplierID:       supplierID,
		ExecutiveSummary: "Quarterly disclosure",
		ReportPeriod:     domain.ReportPeriod{StartDate: start, EndDate: start.AddDate(0, 3, 0), Quarter: "Q1", Year: 2026},
		EnvironmentalMetrics: domain.EnvironmentalMetrics{
			CarbonEmissions: domain.CarbonEmissions{Scope1: 10, Scope2: 5},
		},
	}
}

func TestESGReportService_Create(t *testing.T) {
	suppliers := &stubSupplierRepo{items: map[string]*domain.Supplier{"s1": {ID: "s1"}}}
	reports := &stubReportRepo{}
	svc := NewESGReportService(reports, suppliers, zerolog.Nop())
	actor := &domain.User{ID: "author"}

	r, err := svc.Create(context.Background(), actor, validReport("s1"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if r.GeneratedBy != "author" || r.Status != domain.ReportDraft {
		t.Fatalf("unexpected report: %+v", r)
	}
	if r.EnvironmentalMetrics.CarbonEmissions.Total != 15 || r.EnvironmentalMetrics.CarbonEmissions.Unit != "tCO2e" {
		t.Fatalf("expected derived carbon total and unit, got %+v", r.EnvironmentalMetrics.CarbonEmissions)
	}
	if r.OverallScore <= 0 {
		t.Fatalf("expected positive score, got %d", r.OverallScore)
	}

	if _, err := svc.Create(context.Background(), actor, validReport("missing")); err != domain.ErrSupplierNotFound {
		t.Fatalf("expected ErrSupplierNotFound, got %v", err)
	}

	bad := validReport("s1")
	bad.ReportPeriod.EndDate = bad.ReportPeriod.StartDate
	if _, err := svc.Create(context.Background(), actor, bad); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for empty period, got %v", err)
	}

	status := validReport("s1")
	status.Status = "final"
	if _, err := svc.Create(context.Background(), actor, status); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for status, got %v", err)
	}
}

func TestESGReportService_ListBySupplier(t *testing.T) {
	suppliers := &stubSupplierRepo{items: map[string]*domain.Supplier{"s1": {ID: "s1"}}}
	reports := &stubReportRepo{}
	svc := NewESGReportService(reports, suppliers, zerolog.Nop())

	if _, _, err := svc.ListBySupplier(context.Background(), "s1", domain.Page{}); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if reports.lastQuery.SupplierID != "s1" || reports.lastQuery.Page.Limit != domain.DefaultPageLimit {
		t.Fatalf("unexpected filter: %+v", reports.lastQuery)
	}
	if _, _, err := svc.ListBySupplier(context.Background(), "nope", domain.Page{}); err != domain.ErrSupplierNotFound {
		t.Fatalf("expected ErrSupplierNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Rewards
// ---------------------------------------------------------------------------

func TestRewardService_CreateAndList(t *testing.T) {
	rewards := &stubRewardRepo{}
	svc := NewRewardService(rewards, newStubCredentialStore(), zerolog.Nop())

	r, err := svc.Create(context.Background(), &domain.Reward{Name: "Eco Starter", Description: "First steps", Type: domain.RewardBadge})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if r.Rarity != domain.RarityCommon || !r.IsActive {
		t.Fatalf("unexpected defaults: %+v", r)
	}

	if _, err := svc.Create(context.Background(), &domain.Reward{Name: "x", Description: "y", Type: "coupon"}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}

	if _, err := svc.List(context.Background(), ports.RewardFilter{}); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if rewards.lastFilter.Active == nil || !*rewards.lastFilter.Active {
		t.Fatalf("list should default to active rewards")
	}
}

func TestRewardService_Stats(t *testing.T) {
	users := newStubCredentialStore()
	_, _ = users.Create(context.Background(), &domain.User{
		ID:         "u1",
		Email:      "u1@example.com",
		Rewards:    domain.UserRewards{Points: 150, Level: 2},
		ESGMetrics: domain.UserESGMetrics{SustainabilityScore: 70},
	})
	rewards := &stubRewardRepo{items: []*domain.Reward{
		{ID: "cheap", IsActive: true, Requirements: domain.RewardRequirements{MinPoints: 100}},
		{ID: "pricey", IsActive: true, Requirements: domain.RewardRequirements{MinPoints: 1000}},
		{ID: "retired", IsActive: false},
	}}
	svc := NewRewardService(rewards, users, zerolog.Nop())

	stats, err := svc.Stats(context.Background(), "u1")
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.Points != 150 || stats.Level != 2 || stats.ESGScore != 70 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if stats.Badges == nil || stats.NFTs == nil {
		t.Fatalf("badges and nfts must serialise as arrays")
	}
	if len(stats.EligibleRewards) != 1 || stats.EligibleRewards[0].ID != "cheap" {
		t.Fatalf("unexpected eligible rewards: %+v", stats.EligibleRewards)
	}

	if _, err := svc.Stats(context.Background(), "ghost"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
