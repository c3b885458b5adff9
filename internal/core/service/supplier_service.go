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

type SupplierService struct {
	repo ports.SupplierRepository
	log  zerolog.Logger
}

func NewSupplierService(repo ports.SupplierRepository, log zerolog.Logger) *SupplierService {
	return &SupplierService{repo: repo, log: log}
}

// Create scores the supplier from its ESG sub-metrics before storing it.
func (s *SupplierService) Create(ctx context.Context, sup *domain.Supplier) (*domain.Supplier, error) {
	sup.CompanyName = strings.TrimSpace(sup.CompanyName)
	sup.ContactInfo.Email = domain.NormalizeEmail(sup.ContactInfo.Email)

	switch {
	case sup.CompanyName == "" || len(sup.CompanyName) > 200:
		return nil, fmt.Errorf("%w: company name is required and must be less than 200 characters", domain.ErrValidation)
	case sup.ContactInfo.Email == "":
		return nil, fmt.Errorf("%w: please provide a valid email", domain.ErrValidation)
	case sup.SupplyChainTier < 1 || sup.SupplyChainTier > 4:
		return nil, fmt.Errorf("%w: supply chain tier must be between 1 and 4", domain.ErrValidation)
	case !sup.ESGMetrics.InRange():
		return nil, fmt.Errorf("%w: esg metrics must be between 0 and 100", domain.ErrValidation)
	}

	now := time.Now().UTC()
	sup.ID = ""
	sup.IsActive = true
	sup.CreatedAt = now
	sup.UpdatedAt = now
	if sup.Certifications == nil {
		sup.Certifications = []domain.Certification{}
	}
	sup.Score()

	if err := s.repo.Create(ctx, sup); err != nil {
		return nil, err
	}
	s.log.Info().
		Str("supplier_id", sup.ID).
		Int("overall_esg_score", sup.OverallESGScore).
		Str("risk_level", string(sup.RiskLevel)).
		Msg("supplier created")
	return sup, nil
}

func (s *SupplierService) Get(ctx context.Context, id string) (*domain.Supplier, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *SupplierService) List(ctx context.Context, filter ports.SupplierFilter) ([]*domain.Supplier, int64, error) {
	switch filter.RiskLevel {
	case "", domain.RiskLow, domain.RiskMedium, domain.RiskHigh:
	default:
		return nil, 0, fmt.Errorf("%w: risk level must be one of: low medium high", domain.ErrValidation)
	}
	if filter.Tier < 0 || filter.Tier > 4 {
		return nil, 0, fmt.Errorf("%w: tier must be between 1 and 4", domain.ErrValidation)
	}
	filter.Search = strings.TrimSpace(filter.Search)
	filter.Page = domain.NewPage(filter.Page.Number, filter.Page.Limit)
	return s.repo.List(ctx, filter)
}
