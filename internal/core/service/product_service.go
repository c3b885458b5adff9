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

type ProductService struct {
	repo ports.ProductRepository
	log  zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, log zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, log: log}
}

// Create validates and stores a product listed by actor.
func (s *ProductService) Create(ctx context.Context, actor *domain.User, p *domain.Product) (*domain.Product, error) {
	if err := validateProduct(p); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	p.ID = ""
	p.CreatedBy = actor.ID
	p.IsActive = true
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Price.Currency == "" {
		p.Price.Currency = "USD"
	}
	if p.SustainabilityMetrics.Certifications == nil {
		p.SustainabilityMetrics.Certifications = []string{}
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	s.log.Info().Str("product_id", p.ID).Str("created_by", actor.ID).Msg("product created")
	return p, nil
}

func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProductService) GetByBarcode(ctx context.Context, barcode string) (*domain.Product, error) {
	return s.repo.FindByBarcode(ctx, barcode)
}

func (s *ProductService) GetByQRCode(ctx context.Context, code string) (*domain.Product, error) {
	return s.repo.FindByQRCode(ctx, code)
}

func (s *ProductService) List(ctx context.Context, filter ports.ProductFilter) ([]*domain.Product, int64, error) {
	if filter.Category != "" && !filter.Category.Valid() {
		return nil, 0, fmt.Errorf("%w: please select a valid category", domain.ErrValidation)
	}
	filter.Search = strings.TrimSpace(filter.Search)
	filter.Page = domain.NewPage(filter.Page.Number, filter.Page.Limit)
	return s.repo.List(ctx, filter)
}

func validateProduct(p *domain.Product) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Description = strings.TrimSpace(p.Description)
	p.Brand = strings.TrimSpace(p.Brand)

	m := p.SustainabilityMetrics
	switch {
	case p.Name == "" || len(p.Name) > 200:
		return fmt.Errorf("%w: product name is required and must be less than 200 characters", domain.ErrValidation)
	case p.Description == "" || len(p.Description) > 2000:
		return fmt.Errorf("%w: description is required and must be less than 2000 characters", domain.ErrValidation)
	case !p.Category.Valid():
		return fmt.Errorf("%w: please select a valid category", domain.ErrValidation)
	case p.Brand == "":
		return fmt.Errorf("%w: brand is required", domain.ErrValidation)
	case m.CarbonFootprint < 0:
		return fmt.Errorf("%w: carbon footprint cannot be negative", domain.ErrValidation)
	case m.RecyclabilityScore < 0 || m.RecyclabilityScore > 100:
		return fmt.Errorf("%w: recyclability score must be between 0 and 100", domain.ErrValidation)
	case m.SustainabilityRating < 0 || m.SustainabilityRating > 5:
		return fmt.Errorf("%w: sustainability rating must be between 0 and 5", domain.ErrValidation)
	case p.SupplyChain.TransportationMode != "" && !p.SupplyChain.TransportationMode.Valid():
		return fmt.Errorf("%w: transportation mode must be one of: air sea land rail", domain.ErrValidation)
	case p.Price.Amount < 0:
		return fmt.Errorf("%w: price cannot be negative", domain.ErrValidation)
	case p.ESGData.RenewableEnergyPercentage < 0 || p.ESGData.RenewableEnergyPercentage > 100:
		return fmt.Errorf("%w: renewable energy percentage must be between 0 and 100", domain.ErrValidation)
	}
	return nil
}
