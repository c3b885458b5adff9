package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/sustainalink/platform/internal/core/domain"
)

const identityKey = "identity"

func SetIdentity(c echo.Context, user *domain.User) {
	c.Set(identityKey, user)
}

// IdentityFrom returns the identity attached by the Authenticator, or nil.
func IdentityFrom(c echo.Context) *domain.User {
	user, _ := c.Get(identityKey).(*domain.User)
	return user
}
