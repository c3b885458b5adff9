// Package memory provides process-local implementations of the repository
// ports. Every store is safe for concurrent use and hands out copies, so
// callers can never mutate stored state without going through the store.
package memory

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sustainalink/platform/internal/core/domain"
	"github.com/sustainalink/platform/internal/core/ports"
)

type UserStore struct {
	mu      sync.RWMutex
	byID    map[string]*domain.User
	byEmail map[string]string
	now     func() time.Time
}

func NewUserStore() *UserStore {
	return &UserStore{
		byID:    make(map[string]*domain.User),
		byEmail: make(map[string]string),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (s *UserStore) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[domain.NormalizeEmail(email)]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(s.byID[id]), nil
}

func (s *UserStore) FindByID(ctx context.Context, id string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (s *UserStore) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := domain.NormalizeEmail(user.Email)
	if _, taken := s.byEmail[email]; taken {
		return nil, domain.ErrUserExists
	}

	u := cloneUser(user)
	u.Email = email
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = s.now()
	}
	u.UpdatedAt = u.CreatedAt

	s.byID[u.ID] = u
	s.byEmail[email] = u.ID
	return cloneUser(u), nil
}

func (s *UserStore) Update(ctx context.Context, id string, update ports.UserUpdate) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if update.Empty() {
		return cloneUser(u), nil
	}

	if update.FirstName != nil {
		u.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		u.LastName = *update.LastName
	}
	if update.Profile != nil {
		u.Profile = *update.Profile
		u.Profile.Preferences.SustainabilityGoals = slices.Clone(update.Profile.Preferences.SustainabilityGoals)
	}
	if update.PasswordHash != nil {
		u.PasswordHash = *update.PasswordHash
	}
	if update.Role != nil {
		u.Role = *update.Role
	}
	if update.IsActive != nil {
		u.IsActive = *update.IsActive
	}
	u.UpdatedAt = s.now()
	return cloneUser(u), nil
}

// List returns users newest first.
func (s *UserStore) List(ctx context.Context, filter ports.UserFilter) ([]*domain.User, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []*domain.User
	for _, u := range s.byID {
		if filter.Role != "" && u.Role != filter.Role {
			continue
		}
		if filter.Active != nil && u.IsActive != *filter.Active {
			continue
		}
		matched = append(matched, u)
	}
	sort.Slice(matched, func(i, j int) bool {
		return newer(matched[i].CreatedAt, matched[j].CreatedAt, matched[i].ID, matched[j].ID)
	})

	window := paginate(matched, filter.Page)
	out := make([]*domain.User, len(window))
	for i, u := range window {
		out[i] = cloneUser(u)
	}
	return out, int64(len(matched)), nil
}

func cloneUser(u *domain.User) *domain.User {
	c := *u
	c.Profile.Preferences.SustainabilityGoals = slices.Clone(u.Profile.Preferences.SustainabilityGoals)
	c.Rewards.Badges = slices.Clone(u.Rewards.Badges)
	c.Rewards.NFTs = slices.Clone(u.Rewards.NFTs)
	return &c
}

// newer orders by creation time descending, breaking ties on id.
func newer(a, b time.Time, idA, idB string) bool {
	if !a.Equal(b) {
		return a.After(b)
	}
	return idA < idB
}

// paginate slices items to the requested page. A zero Page returns everything.
func paginate[T any](items []T, page domain.Page) []T {
	if page.Limit <= 0 {
		return items
	}
	start := page.Offset()
	if start < 0 || start >= len(items) {
		return nil
	}
	end := min(start+page.Limit, len(items))
	return items[start:end]
}
