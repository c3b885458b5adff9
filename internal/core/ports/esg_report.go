package ports

import (
	"context"

	"github.com/sustainalink/platform/internal/core/domain"
)

type ESGReportFilter struct {
	SupplierID string              // optional
	Status     domain.ReportStatus // optional
	Year       int                 // optional
	Page       domain.Page
}

type ESGReportRepository interface {
	Create(ctx context.Context, r *domain.ESGReport) error
	List(ctx context.Context, filter ESGReportFilter) ([]*domain.ESGReport, int64, error)
}

type ESGReportService interface {
	Create(ctx context.Context, actor *domain.User, r *domain.ESGReport) (*domain.ESGReport, error)
	List(ctx context.Context, filter ESGReportFilter) ([]*domain.ESGReport, int64, error)
	ListBySupplier(ctx context.Context, supplierID string, page domain.Page) ([]*domain.ESGReport, int64, error)
}
