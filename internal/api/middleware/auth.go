package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/sustainalink/platform/internal/api/metrics"
	"github.com/sustainalink/platform/internal/core/domain"
	"github.com/sustainalink/platform/internal/core/ports"
)

// UnauthorizedMessage is returned for every authentication failure so callers
// cannot tell which step rejected them.
const UnauthorizedMessage = "Not authorized to access this route"

// TokenVerifier returns the subject id of a valid token.
type TokenVerifier interface {
	Verify(raw string) (string, error)
}

// Authenticator resolves the bearer token of a request to an active identity.
type Authenticator struct {
	verifier TokenVerifier
	store    ports.CredentialStore
	log      zerolog.Logger
}

func NewAuthenticator(verifier TokenVerifier, store ports.CredentialStore, log zerolog.Logger) *Authenticator {
	return &Authenticator{verifier: verifier, store: store, log: log}
}

// Resolve walks the authentication states for a raw Authorization header.
// Expected rejections are returned as domain.ErrMissingCredential,
// ErrInvalidToken, ErrUnknownSubject or ErrDeactivated; any other error is a
// store fault.
func (a *Authenticator) Resolve(ctx context.Context, header string) (*domain.User, error) {
	raw, ok := bearerToken(header)
	if !ok {
		return nil, domain.ErrMissingCredential
	}

	subject, err := a.verifier.Verify(raw)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	user, err := a.store.FindByID(ctx, subject)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnknownSubject
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, domain.ErrDeactivated
	}
	return user, nil
}

// Middleware authenticates the request and stores the identity on the context.
func (a *Authenticator) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			user, err := a.Resolve(ctx, c.Request().Header.Get(echo.HeaderAuthorization))
			if err != nil {
				reason, expected := rejectionReason(err)
				if !expected {
					return err
				}
				a.log.Debug().
					Str("reason", reason).
					Str("path", c.Path()).
					Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
					Msg("request not authenticated")
				metrics.AuthRejectionsTotal.WithLabelValues(reason).Inc()
				return reject(c, http.StatusUnauthorized, UnauthorizedMessage)
			}

			// The client went away during the store lookup.
			if ctx.Err() != nil {
				return nil
			}

			SetIdentity(c, user)
			return next(c)
		}
	}
}

// Require builds the chain for a protected route: authentication alone when
// no roles are given, authentication followed by role authorization otherwise.
func (a *Authenticator) Require(roles ...domain.Role) []echo.MiddlewareFunc {
	chain := []echo.MiddlewareFunc{a.Middleware()}
	if len(roles) > 0 {
		chain = append(chain, Authorize(roles...))
	}
	return chain
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	raw := strings.TrimSpace(parts[1])
	return raw, raw != ""
}

func rejectionReason(err error) (string, bool) {
	switch {
	case errors.Is(err, domain.ErrMissingCredential):
		return "missing_credential", true
	case errors.Is(err, domain.ErrInvalidToken):
		return "invalid_or_expired", true
	case errors.Is(err, domain.ErrUnknownSubject):
		return "unknown_subject", true
	case errors.Is(err, domain.ErrDeactivated):
		return "deactivated", true
	}
	return "", false
}

type rejection struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func reject(c echo.Context, status int, message string) error {
	return c.JSON(status, rejection{Success: false, Message: message})
}
