package memory

import (
	"context"
	"slices"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/sustainalink/platform/internal/core/domain"
	"github.com/sustainalink/platform/internal/core/ports"
)

type ReportStore struct {
	mu    sync.RWMutex
	items map[string]*domain.ESGReport
}

func NewReportStore() *ReportStore {
	return &ReportStore{items: make(map[string]*domain.ESGReport)}
}

func (s *ReportStore) Create(ctx context.Context, r *domain.ESGReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	s.items[r.ID] = cloneReport(r)
	return nil
}

// List returns reports matching filter, most recent period first.
func (s *ReportStore) List(ctx context.Context, filter ports.ESGReportFilter) ([]*domain.ESGReport, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []*domain.ESGReport
	for _, r := range s.items {
		if filter.SupplierID != "" && r.SupplierID != filter.SupplierID {
			continue
		}
		if filter.Status != "" && r.Status != filter.Status {
			continue
		}
		if filter.Year != 0 && r.ReportPeriod.Year != filter.Year {
			continue
		}
		matched = append(matched, r)
	}
	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i].ReportPeriod.EndDate, matched[j].ReportPeriod.EndDate
		return newer(a, b, matched[i].ID, matched[j].ID)
	})

	window := paginate(matched, filter.Page)
	out := make([]*domain.ESGReport, len(window))
	for i, r := range window {
		out[i] = cloneReport(r)
	}
	return out, int64(len(matched)), nil
}

func cloneReport(r *domain.ESGReport) *domain.ESGReport {
	c := *r
	c.Certifications = slices.Clone(r.Certifications)
	c.SocialMetrics.CommunityImpact.Programs = slices.Clone(r.SocialMetrics.CommunityImpact.Programs)
	return &c
}

type RewardStore struct {
	mu    sync.RWMutex
	items map[string]*domain.Reward
}

func NewRewardStore() *RewardStore {
	return &RewardStore{items: make(map[string]*domain.Reward)}
}

func (s *RewardStore) Create(ctx context.Context, r *domain.Reward) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	s.items[r.ID] = cloneReward(r)
	return nil
}

// List returns rewards matching filter, ordered by point requirement.
func (s *RewardStore) List(ctx context.Context, filter ports.RewardFilter) ([]*domain.Reward, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*domain.Reward
	for _, r := range s.items {
		if filter.Type != "" && r.Type != filter.Type {
			continue
		}
		if filter.Rarity != "" && r.Rarity != filter.Rarity {
			continue
		}
		if filter.Active != nil && r.IsActive != *filter.Active {
			continue
		}
		out = append(out, cloneReward(r))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Requirements.MinPoints != out[j].Requirements.MinPoints {
			return out[i].Requirements.MinPoints < out[j].Requirements.MinPoints
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func cloneReward(r *domain.Reward) *domain.Reward {
	c := *r
	c.Requirements.SpecificActions = slices.Clone(r.Requirements.SpecificActions)
	return &c
}
