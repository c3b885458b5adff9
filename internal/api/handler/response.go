package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sustainalink/platform/internal/api/middleware"
	"github.com/sustainalink/platform/internal/core/domain"
)

// dataResponse is the success envelope for single resources.
type dataResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Pages int `json:"pages"`
}

// listResponse is the success envelope for paginated collections.
type listResponse struct {
	Success    bool        `json:"success"`
	Count      int         `json:"count"`
	Total      int64       `json:"total"`
	Pagination *pagination `json:"pagination,omitempty"`
	Data       any         `json:"data"`
}

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// authResponse is returned by every endpoint that hands out a token.
type authResponse struct {
	Success   bool         `json:"success"`
	Token     string       `json:"token"`
	ExpiresIn int64        `json:"expiresIn"` // seconds
	User      *domain.User `json:"user"`
}

func respondData(c echo.Context, status int, data any) error {
	return c.JSON(status, dataResponse{Success: true, Data: data})
}

func respondPage[T any](c echo.Context, items []T, total int64, page domain.Page) error {
	if items == nil {
		items = []T{}
	}
	return c.JSON(http.StatusOK, listResponse{
		Success:    true,
		Count:      len(items),
		Total:      total,
		Pagination: &pagination{Page: page.Number, Limit: page.Limit, Pages: page.Pages(total)},
		Data:       items,
	})
}

func respondList[T any](c echo.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	return c.JSON(http.StatusOK, listResponse{
		Success: true,
		Count:   len(items),
		Total:   int64(len(items)),
		Data:    items,
	})
}

func respondMessage(c echo.Context, status int, message string) error {
	return c.JSON(status, messageResponse{Success: true, Message: message})
}

// bindAndValidate decodes the request body into req and runs the registered validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if c.Echo().Validator == nil {
		return nil
	}
	return c.Validate(req)
}

// bindPage reads the page and limit query parameters; bad values are a validation error.
func bindPage(c echo.Context) (domain.Page, error) {
	var number, limit int
	err := echo.QueryParamsBinder(c).
		Int("page", &number).
		Int("limit", &limit).
		BindError()
	if err != nil {
		return domain.Page{}, echo.NewHTTPError(http.StatusBadRequest, "page and limit must be integers")
	}
	return domain.NewPage(number, limit), nil
}

// currentUser returns the identity attached by the auth middleware. Handlers
// mounted behind the Authenticator always have one.
func currentUser(c echo.Context) (*domain.User, error) {
	user := middleware.IdentityFrom(c)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Not authorized to access this route")
	}
	return user, nil
}

// optionalBool parses a boolean query parameter, returning nil when it is absent.
func optionalBool(c echo.Context, name string) (*bool, error) {
	if c.QueryParam(name) == "" {
		return nil, nil
	}
	var v bool
	if err := echo.QueryParamsBinder(c).Bool(name, &v).BindError(); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, name+" must be a boolean")
	}
	return &v, nil
}
