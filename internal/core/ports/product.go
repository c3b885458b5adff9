package ports

import (
	"context"

	"github.com/sustainalink/platform/internal/core/domain"
)

// ProductFilter carries list query parameters for products.
type ProductFilter struct {
	Category  domain.ProductCategory // optional
	Search    string                 // optional: case-insensitive match on name, brand or description
	MinRating float64                // optional: sustainability rating floor
	Page      domain.Page
}

// ProductRepository persists products. Barcode and QR code are unique when set;
// Create returns domain.ErrDuplicate on collision.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) error
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	FindByBarcode(ctx context.Context, barcode string) (*domain.Product, error)
	FindByQRCode(ctx context.Context, code string) (*domain.Product, error)
	List(ctx context.Context, filter ProductFilter) ([]*domain.Product, int64, error)
}

type ProductService interface {
	Create(ctx context.Context, actor *domain.User, p *domain.Product) (*domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	GetByBarcode(ctx context.Context, barcode string) (*domain.Product, error)
	GetByQRCode(ctx context.Context, code string) (*domain.Product, error)
	List(ctx context.Context, filter ProductFilter) ([]*domain.Product, int64, error)
}
