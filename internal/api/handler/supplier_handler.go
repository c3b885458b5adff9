package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sustainalink/platform/internal/core/domain"
	"github.com/sustainalink/platform/internal/core/ports"
)

type SupplierHandler struct {
	service ports.SupplierService
}

func NewSupplierHandler(service ports.SupplierService) *SupplierHandler {
	return &SupplierHandler{service: service}
}

type contactInfoRequest struct {
	Email   string                 `json:"email" validate:"required,email"`
	Phone   string                 `json:"phone" validate:"omitempty,phone"`
	Website string                 `json:"website" validate:"omitempty,url"`
	Address domain.SupplierAddress `json:"address"`
}

type createSupplierRequest struct {
	CompanyName     string                    `json:"companyName" validate:"required,max=200"`
	ContactInfo     contactInfoRequest        `json:"contactInfo"`
	Industry        string                    `json:"industry" validate:"max=100"`
	Certifications  []domain.Certification    `json:"certifications" validate:"omitempty,dive"`
	ESGMetrics      domain.SupplierESGMetrics `json:"esgMetrics"`
	SupplyChainTier int                       `json:"supplyChainTier" validate:"required,gte=1,lte=4"`
	IsVerified      bool                      `json:"isVerified"`
}

func (r createSupplierRequest) supplier() *domain.Supplier {
	return &domain.Supplier{
		CompanyName: r.CompanyName,
		ContactInfo: domain.ContactInfo{
			Email:   r.ContactInfo.Email,
			Phone:   r.ContactInfo.Phone,
			Website: r.ContactInfo.Website,
			Address: r.ContactInfo.Address,
		},
		Industry:        r.Industry,
		Certifications:  r.Certifications,
		ESGMetrics:      r.ESGMetrics,
		SupplyChainTier: r.SupplyChainTier,
		IsVerified:      r.IsVerified,
	}
}

// List handles GET /api/suppliers.
//
// @Summary      List suppliers
// @Tags         suppliers
// @Produce      json
// @Param        riskLevel  query     string  false  "low, medium or high"
// @Param        verified   query     bool    false  "Filter by verification"
// @Param        tier       query     int     false  "Supply chain tier (1-4)"
// @Param        search     query     string  false  "Match company name or industry"
// @Param        page       query     int     false  "Page number (default 1)"
// @Param        limit      query     int     false  "Page size (default 10, max 100)"
// @Success      200        {object}  listResponse
// @Failure      400        {object}  messageResponse
// @Router       /suppliers [get]
func (h *SupplierHandler) List(c echo.Context) error {
	page, err := bindPage(c)
	if err != nil {
		return err
	}
	verified, err := optionalBool(c, "verified")
	if err != nil {
		return err
	}

	filter := ports.SupplierFilter{
		RiskLevel: domain.RiskLevel(c.QueryParam("riskLevel")),
		Verified:  verified,
		Search:    c.QueryParam("search"),
		Page:      page,
	}
	if err := echo.QueryParamsBinder(c).Int("tier", &filter.Tier).BindError(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "tier must be an integer")
	}

	suppliers, total, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return respondPage(c, suppliers, total, page)
}

// Get handles GET /api/suppliers/:id.
//
// @Summary      Get a supplier
// @Tags         suppliers
// @Produce      json
// @Param        id   path      string  true  "Supplier id"
// @Success      200  {object}  dataResponse
// @Failure      404  {object}  messageResponse
// @Router       /suppliers/{id} [get]
func (h *SupplierHandler) Get(c echo.Context) error {
	supplier, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, supplier)
}

// Create handles POST /api/suppliers.
//
// @Summary      Create a supplier
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createSupplierRequest  true  "Supplier details"
// @Success      201   {object}  dataResponse
// @Failure      400   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Failure      409   {object}  messageResponse
// @Router       /suppliers [post]
func (h *SupplierHandler) Create(c echo.Context) error {
	var req createSupplierRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	supplier, err := h.service.Create(c.Request().Context(), req.supplier())
	if err != nil {
		return err
	}
	return respondData(c, http.StatusCreated, supplier)
}
