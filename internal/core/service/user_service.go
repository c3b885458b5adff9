package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/sustainalink/platform/internal/core/domain"
	"github.com/sustainalink/platform/internal/core/ports"
)

const maxBioLength = 500

type UserService struct {
	users ports.CredentialStore
	log   zerolog.Logger
}

func NewUserService(users ports.CredentialStore, log zerolog.Logger) *UserService {
	return &UserService{users: users, log: log}
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *UserService) List(ctx context.Context, filter ports.UserFilter) ([]*domain.User, int64, error) {
	if filter.Role != "" && !filter.Role.Valid() {
		return nil, 0, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, filter.Role)
	}
	filter.Page = domain.NewPage(filter.Page.Number, filter.Page.Limit)
	return s.users.List(ctx, filter)
}

// Update applies a profile change on behalf of actor. Users may edit their own
// names and profile; role and activation changes are reserved for admins.
func (s *UserService) Update(ctx context.Context, actor *domain.User, id string, input ports.UpdateUserInput) (*domain.User, error) {
	isAdmin := actor.Role == domain.RoleAdmin
	if actor.ID != id && !isAdmin {
		return nil, domain.ErrForbidden
	}
	if (input.Role != nil || input.IsActive != nil) && !isAdmin {
		return nil, domain.ErrForbidden
	}

	update := ports.UserUpdate{Profile: input.Profile, IsActive: input.IsActive}
	if input.FirstName != nil {
		v := strings.TrimSpace(*input.FirstName)
		if v == "" || len(v) > maxNameLength {
			return nil, fmt.Errorf("%w: first name is required and must be less than %d characters", domain.ErrValidation, maxNameLength)
		}
		update.FirstName = &v
	}
	if input.LastName != nil {
		v := strings.TrimSpace(*input.LastName)
		if v == "" || len(v) > maxNameLength {
			return nil, fmt.Errorf("%w: last name is required and must be less than %d characters", domain.ErrValidation, maxNameLength)
		}
		update.LastName = &v
	}
	if input.Profile != nil && len(input.Profile.Bio) > maxBioLength {
		return nil, fmt.Errorf("%w: bio cannot exceed %d characters", domain.ErrValidation, maxBioLength)
	}
	if input.Role != nil {
		if !input.Role.Valid() {
			return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, *input.Role)
		}
		update.Role = input.Role
	}
	if update.Empty() {
		return s.users.FindByID(ctx, id)
	}

	updated, err := s.users.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", id).Str("actor_id", actor.ID).Msg("user updated")
	return updated, nil
}

// Deactivate clears the active flag; identities are never deleted.
func (s *UserService) Deactivate(ctx context.Context, id string) (*domain.User, error) {
	inactive := false
	updated, err := s.users.Update(ctx, id, ports.UserUpdate{IsActive: &inactive})
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", id).Msg("user deactivated")
	return updated, nil
}
