package ports

import (
	"context"
	"time"

	"github.com/sustainalink/platform/internal/core/domain"
)

// TokenIssuer signs identity tokens for a subject id. TTL is the lifetime of
// every token it issues.
type TokenIssuer interface {
	Issue(subjectID string) (string, error)
	TTL() time.Duration
}

type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      domain.Role
}

// AuthResult is returned by every operation that hands out a fresh token.
type AuthResult struct {
	Token     string
	ExpiresIn time.Duration
	User      *domain.User
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Me(ctx context.Context, userID string) (*domain.User, error)
	UpdatePassword(ctx context.Context, userID, currentPassword, newPassword string) (*AuthResult, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) (*AuthResult, error)
}
