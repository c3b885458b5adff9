package ports

import (
	"context"

	"github.com/sustainalink/platform/internal/core/domain"
)

// UpdateUserInput is the mutable subset exposed over HTTP.
type UpdateUserInput struct {
	FirstName *string
	LastName  *string
	Profile   *domain.Profile
	Role      *domain.Role
	IsActive  *bool
}

type UserService interface {
	Get(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context, filter UserFilter) ([]*domain.User, int64, error)
	Update(ctx context.Context, actor *domain.User, id string, input UpdateUserInput) (*domain.User, error)
	Deactivate(ctx context.Context, id string) (*domain.User, error)
}
