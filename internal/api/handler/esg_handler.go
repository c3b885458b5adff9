package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sustainalink/platform/internal/core/domain"
	"github.com/sustainalink/platform/internal/core/ports"
)

type ESGHandler struct {
	service ports.ESGReportService
}

func NewESGHandler(service ports.ESGReportService) *ESGHandler {
	return &ESGHandler{service: service}
}

type createReportRequest struct {
	SupplierID           string                      `json:"supplierId" validate:"required"`
	ReportPeriod         domain.ReportPeriod         `json:"reportPeriod"`
	ExecutiveSummary     string                      `json:"executiveSummary" validate:"required,max=2000"`
	EnvironmentalMetrics domain.EnvironmentalMetrics `json:"environmentalMetrics"`
	SocialMetrics        domain.SocialMetrics        `json:"socialMetrics"`
	GovernanceMetrics    domain.GovernanceMetrics    `json:"governanceMetrics"`
	Certifications       []domain.Certification      `json:"certifications"`
	Status               string                      `json:"status" validate:"omitempty,oneof=draft published archived"`
}

func (r createReportRequest) report() *domain.ESGReport {
	return &domain.ESGReport{
		SupplierID:           r.SupplierID,
		ReportPeriod:         r.ReportPeriod,
		ExecutiveSummary:     r.ExecutiveSummary,
		EnvironmentalMetrics: r.EnvironmentalMetrics,
		SocialMetrics:        r.SocialMetrics,
		GovernanceMetrics:    r.GovernanceMetrics,
		Certifications:       r.Certifications,
		Status:               domain.ReportStatus(r.Status),
	}
}

// List handles GET /api/esg.
//
// @Summary      List ESG reports
// @Tags         esg
// @Produce      json
// @Param        supplierId  query     string  false  "Filter by supplier"
// @Param        status      query     string  false  "draft, published or archived"
// @Param        year        query     int     false  "Reporting year"
// @Param        page        query     int     false  "Page number (default 1)"
// @Param        limit       query     int     false  "Page size (default 10, max 100)"
// @Success      200         {object}  listResponse
// @Failure      400         {object}  messageResponse
// @Router       /esg [get]
func (h *ESGHandler) List(c echo.Context) error {
	page, err := bindPage(c)
	if err != nil {
		return err
	}

	filter := ports.ESGReportFilter{
		SupplierID: c.QueryParam("supplierId"),
		Status:     domain.ReportStatus(c.QueryParam("status")),
		Page:       page,
	}
	if err := echo.QueryParamsBinder(c).Int("year", &filter.Year).BindError(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "year must be an integer")
	}

	reports, total, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return respondPage(c, reports, total, page)
}

// ListBySupplier handles GET /api/esg/supplier/:supplierId.
//
// @Summary      List a supplier's ESG reports
// @Tags         esg
// @Produce      json
// @Param        supplierId  path      string  true   "Supplier id"
// @Param        page        query     int     false  "Page number (default 1)"
// @Param        limit       query     int     false  "Page size (default 10, max 100)"
// @Success      200         {object}  listResponse
// @Failure      404         {object}  messageResponse
// @Router       /esg/supplier/{supplierId} [get]
func (h *ESGHandler) ListBySupplier(c echo.Context) error {
	page, err := bindPage(c)
	if err != nil {
		return err
	}
	reports, total, err := h.service.ListBySupplier(c.Request().Context(), c.Param("supplierId"), page)
	if err != nil {
		return err
	}
	return respondPage(c, reports, total, page)
}

// Create handles POST /api/esg.
//
// @Summary      File an ESG report
// @Tags         esg
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createReportRequest  true  "Report contents"
// @Success      201   {object}  dataResponse
// @Failure      400   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /esg [post]
func (h *ESGHandler) Create(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	var req createReportRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	report, err := h.service.Create(c.Request().Context(), actor, req.report())
	if err != nil {
		return err
	}
	return respondData(c, http.StatusCreated, report)
}
