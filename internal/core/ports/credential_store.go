package ports

import (
	"context"

	"github.com/sustainalink/platform/internal/core/domain"
)

// UserUpdate carries a partial update. Nil fields are left untouched.
type UserUpdate struct {
	FirstName    *string
	LastName     *string
	Profile      *domain.Profile
	PasswordHash *string
	Role         *domain.Role
	IsActive     *bool
}

// Empty reports whether the update changes nothing.
func (u UserUpdate) Empty() bool {
	return u.FirstName == nil && u.LastName == nil && u.Profile == nil &&
		u.PasswordHash == nil && u.Role == nil && u.IsActive == nil
}

// UserFilter narrows administrative listings.
type UserFilter struct {
	Role   domain.Role
	Active *bool
	Page   domain.Page
}

// CredentialStore persists identities. Lookups by email are case-insensitive.
// FindByID and Update return domain.ErrUserNotFound for unknown ids; Create
// returns domain.ErrUserExists when the email is already registered.
type CredentialStore interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, id string, update UserUpdate) (*domain.User, error)
	List(ctx context.Context, filter UserFilter) ([]*domain.User, int64, error)
}
