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

const maxSummaryLength = 2000

type ESGReportService struct {
	reports   ports.ESGReportRepository
	suppliers ports.SupplierRepository
	log       zerolog.Logger
}

func NewESGReportService(reports ports.ESGReportRepository, suppliers ports.SupplierRepository, log zerolog.Logger) *ESGReportService {
	return &ESGReportService{reports: reports, suppliers: suppliers, log: log}
}

// Create files a report for an existing supplier and computes its overall score.
func (s *ESGReportService) Create(ctx context.Context, actor *domain.User, r *domain.ESGReport) (*domain.ESGReport, error) {
	r.ExecutiveSummary = strings.TrimSpace(r.ExecutiveSummary)
	period := r.ReportPeriod

	switch {
	case r.SupplierID == "":
		return nil, fmt.Errorf("%w: supplier id is required", domain.ErrValidation)
	case r.ExecutiveSummary == "" || len(r.ExecutiveSummary) > maxSummaryLength:
		return nil, fmt.Errorf("%w: executive summary is required and cannot exceed %d characters", domain.ErrValidation, maxSummaryLength)
	case period.StartDate.IsZero() || period.EndDate.IsZero() || !period.StartDate.Before(period.EndDate):
		return nil, fmt.Errorf("%w: report period start must be before its end", domain.ErrValidation)
	case period.Year <= 0:
		return nil, fmt.Errorf("%w: report year is required", domain.ErrValidation)
	}

	if r.Status == "" {
		r.Status = domain.ReportDraft
	}
	if !r.Status.Valid() {
		return nil, fmt.Errorf("%w: status must be one of: draft published archived", domain.ErrValidation)
	}

	if _, err := s.suppliers.FindByID(ctx, r.SupplierID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	r.ID = ""
	r.GeneratedBy = actor.ID
	r.CreatedAt = now
	r.UpdatedAt = now
	defaultUnits(r)
	r.Score()

	if err := s.reports.Create(ctx, r); err != nil {
		return nil, err
	}
	s.log.Info().
		Str("report_id", r.ID).
		Str("supplier_id", r.SupplierID).
		Int("overall_score", r.OverallScore).
		Msg("esg report created")
	return r, nil
}

func (s *ESGReportService) List(ctx context.Context, filter ports.ESGReportFilter) ([]*domain.ESGReport, int64, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, 0, fmt.Errorf("%w: status must be one of: draft published archived", domain.ErrValidation)
	}
	filter.Page = domain.NewPage(filter.Page.Number, filter.Page.Limit)
	return s.reports.List(ctx, filter)
}

func (s *ESGReportService) ListBySupplier(ctx context.Context, supplierID string, page domain.Page) ([]*domain.ESGReport, int64, error) {
	if _, err := s.suppliers.FindByID(ctx, supplierID); err != nil {
		return nil, 0, err
	}
	return s.reports.List(ctx, ports.ESGReportFilter{
		SupplierID: supplierID,
		Page:       domain.NewPage(page.Number, page.Limit),
	})
}

func defaultUnits(r *domain.ESGReport) {
	env := &r.EnvironmentalMetrics
	if env.CarbonEmissions.Unit == "" {
		env.CarbonEmissions.Unit = "tCO2e"
	}
	if env.CarbonEmissions.Total == 0 {
		env.CarbonEmissions.Total = env.CarbonEmissions.Scope1 + env.CarbonEmissions.Scope2 + env.CarbonEmissions.Scope3
	}
	if env.WaterUsage.Unit == "" {
		env.WaterUsage.Unit = "liters"
	}
	if env.WasteManagement.Unit == "" {
		env.WasteManagement.Unit = "kg"
	}
	if env.EnergyConsumption.Unit == "" {
		env.EnergyConsumption.Unit = "kWh"
	}
}
