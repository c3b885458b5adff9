package ports

import (
	"context"

	"github.com/sustainalink/platform/internal/core/domain"
)

type SupplierFilter struct {
	RiskLevel domain.RiskLevel // optional
	Verified  *bool            // optional
	Tier      int              // optional: 1..4
	Search    string           // optional: company name or industry
	Page      domain.Page
}

// SupplierRepository persists suppliers. Company names are unique.
type SupplierRepository interface {
	Create(ctx context.Context, s *domain.Supplier) error
	FindByID(ctx context.Context, id string) (*domain.Supplier, error)
	List(ctx context.Context, filter SupplierFilter) ([]*domain.Supplier, int64, error)
}

type SupplierService interface {
	Create(ctx context.Context, s *domain.Supplier) (*domain.Supplier, error)
	Get(ctx context.Context, id string) (*domain.Supplier, error)
	List(ctx context.Context, filter SupplierFilter) ([]*domain.Supplier, int64, error)
}
