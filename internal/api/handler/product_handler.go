package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sustainalink/platform/internal/core/domain"
	"github.com/sustainalink/platform/internal/core/ports"
)

// ProductHandler handles HTTP requests for the product catalogue.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

type createProductRequest struct {
	Name                  string                       `json:"name" validate:"required,max=200"`
	Description           string                       `json:"description" validate:"required,max=2000"`
	Category              string                       `json:"category" validate:"required,oneof=food clothing electronics home beauty automotive industrial other"`
	Brand                 string                       `json:"brand" validate:"required,max=100"`
	Barcode               string                       `json:"barcode" validate:"omitempty,max=64"`
	QRCode                string                       `json:"qrCode" validate:"omitempty,max=256"`
	Images                []string                     `json:"images" validate:"omitempty,dive,url"`
	SustainabilityMetrics domain.SustainabilityMetrics `json:"sustainabilityMetrics"`
	SupplyChain           domain.SupplyChain           `json:"supplyChain"`
	ESGData               domain.ProductESGData        `json:"esgData"`
	Price                 domain.Price                 `json:"price"`
	Availability          domain.Availability          `json:"availability"`
}

func (r createProductRequest) product() *domain.Product {
	return &domain.Product{
		Name:                  r.Name,
		Description:           r.Description,
		Category:              domain.ProductCategory(r.Category),
		Brand:                 r.Brand,
		Barcode:               r.Barcode,
		QRCode:                r.QRCode,
		Images:                r.Images,
		SustainabilityMetrics: r.SustainabilityMetrics,
		SupplyChain:           r.SupplyChain,
		ESGData:               r.ESGData,
		Price:                 r.Price,
		Availability:          r.Availability,
	}
}

// List handles GET /api/products.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Param        category   query     string  false  "Filter by category"
// @Param        search     query     string  false  "Match name, brand or description"
// @Param        minRating  query     number  false  "Minimum sustainability rating (0-5)"
// @Param        page       query     int     false  "Page number (default 1)"
// @Param        limit      query     int     false  "Page size (default 10, max 100)"
// @Success      200        {object}  listResponse
// @Failure      400        {object}  messageResponse
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	page, err := bindPage(c)
	if err != nil {
		return err
	}

	filter := ports.ProductFilter{
		Category: domain.ProductCategory(c.QueryParam("category")),
		Search:   c.QueryParam("search"),
		Page:     page,
	}
	if err := echo.QueryParamsBinder(c).Float64("minRating", &filter.MinRating).BindError(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "minRating must be a number")
	}

	products, total, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return respondPage(c, products, total, page)
}

// Get handles GET /api/products/:id.
//
// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  dataResponse
// @Failure      404  {object}  messageResponse
// @Router       /products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, product)
}

// GetByBarcode handles GET /api/products/barcode/:barcode.
//
// @Summary      Look up a product by barcode
// @Tags         products
// @Produce      json
// @Param        barcode  path      string  true  "Barcode"
// @Success      200      {object}  dataResponse
// @Failure      404      {object}  messageResponse
// @Router       /products/barcode/{barcode} [get]
func (h *ProductHandler) GetByBarcode(c echo.Context) error {
	product, err := h.service.GetByBarcode(c.Request().Context(), c.Param("barcode"))
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, product)
}

// GetByQRCode handles GET /api/products/qr/:qrCode.
//
// @Summary      Look up a product by QR code
// @Tags         products
// @Produce      json
// @Param        qrCode  path      string  true  "QR code payload"
// @Success      200     {object}  dataResponse
// @Failure      404     {object}  messageResponse
// @Router       /products/qr/{qrCode} [get]
func (h *ProductHandler) GetByQRCode(c echo.Context) error {
	product, err := h.service.GetByQRCode(c.Request().Context(), c.Param("qrCode"))
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, product)
}

// Create handles POST /api/products.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProductRequest  true  "Product details"
// @Success      201   {object}  dataResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Failure      409   {object}  messageResponse
// @Router       /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	var req createProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	product, err := h.service.Create(c.Request().Context(), actor, req.product())
	if err != nil {
		return err
	}
	return respondData(c, http.StatusCreated, product)
}
