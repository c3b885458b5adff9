package middleware

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sustainalink/platform/internal/api/metrics"
	"github.com/sustainalink/platform/internal/core/domain"
)

// Authorize permits the request only when the authenticated identity holds
// one of roles. It must run after the Authenticator.
func Authorize(roles ...domain.Role) echo.MiddlewareFunc {
	allowed := domain.NewRoleSet(roles...)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := IdentityFrom(c)
			if user == nil {
				return fmt.Errorf("%w: authorizer reached without an authenticated identity", domain.ErrConfiguration)
			}
			if err := allowed.Permit(user.Role); err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues("insufficient_role").Inc()
				return reject(c, http.StatusForbidden,
					fmt.Sprintf("User role %s is not authorized to access this route", user.Role))
			}
			return next(c)
		}
	}
}
