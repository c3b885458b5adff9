package memory

import (
	"context"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/sustainalink/platform/internal/core/domain"
	"github.com/sustainalink/platform/internal/core/ports"
)

type ProductStore struct {
	mu    sync.RWMutex
	items map[string]*domain.Product
}

func NewProductStore() *ProductStore {
	return &ProductStore{items: make(map[string]*domain.Product)}
}

func (s *ProductStore) Create(ctx context.Context, p *domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.items {
		if p.Barcode != "" && existing.Barcode == p.Barcode {
			return domain.ErrDuplicate
		}
		if p.QRCode != "" && existing.QRCode == p.QRCode {
			return domain.ErrDuplicate
		}
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	s.items[p.ID] = cloneProduct(p)
	return nil
}

func (s *ProductStore) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	return s.findOne(func(p *domain.Product) bool { return p.ID == id })
}

func (s *ProductStore) FindByBarcode(ctx context.Context, barcode string) (*domain.Product, error) {
	return s.findOne(func(p *domain.Product) bool { return barcode != "" && p.Barcode == barcode })
}

func (s *ProductStore) FindByQRCode(ctx context.Context, code string) (*domain.Product, error) {
	return s.findOne(func(p *domain.Product) bool { return code != "" && p.QRCode == code })
}

func (s *ProductStore) findOne(match func(*domain.Product) bool) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.items {
		if match(p) {
			return cloneProduct(p), nil
		}
	}
	return nil, domain.ErrProductNotFound
}

// List returns active products matching filter, newest first.
func (s *ProductStore) List(ctx context.Context, filter ports.ProductFilter) ([]*domain.Product, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	search := strings.ToLower(filter.Search)
	var matched []*domain.Product
	for _, p := range s.items {
		if !p.IsActive {
			continue
		}
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if p.SustainabilityMetrics.SustainabilityRating < filter.MinRating {
			continue
		}
		if search != "" && !containsFold(search, p.Name, p.Brand, p.Description) {
			continue
		}
		matched = append(matched, p)
	}
	sort.Slice(matched, func(i, j int) bool {
		return newer(matched[i].CreatedAt, matched[j].CreatedAt, matched[i].ID, matched[j].ID)
	})

	window := paginate(matched, filter.Page)
	out := make([]*domain.Product, len(window))
	for i, p := range window {
		out[i] = cloneProduct(p)
	}
	return out, int64(len(matched)), nil
}

func cloneProduct(p *domain.Product) *domain.Product {
	c := *p
	c.Images = slices.Clone(p.Images)
	c.SustainabilityMetrics.Certifications = slices.Clone(p.SustainabilityMetrics.Certifications)
	c.SupplyChain.Intermediaries = slices.Clone(p.SupplyChain.Intermediaries)
	return &c
}

type SupplierStore struct {
	mu    sync.RWMutex
	items map[string]*domain.Supplier
}

func NewSupplierStore() *SupplierStore {
	return &SupplierStore{items: make(map[string]*domain.Supplier)}
}

func (s *SupplierStore) Create(ctx context.Context, sup *domain.Supplier) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.items {
		if strings.EqualFold(existing.CompanyName, sup.CompanyName) {
			return domain.ErrDuplicate
		}
	}
	if sup.ID == "" {
		sup.ID = uuid.NewString()
	}
	s.items[sup.ID] = cloneSupplier(sup)
	return nil
}

func (s *SupplierStore) FindByID(ctx context.Context, id string) (*domain.Supplier, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sup, ok := s.items[id]
	if !ok {
		return nil, domain.ErrSupplierNotFound
	}
	return cloneSupplier(sup), nil
}

// List returns active suppliers matching filter, best ESG score first.
func (s *SupplierStore) List(ctx context.Context, filter ports.SupplierFilter) ([]*domain.Supplier, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	search := strings.ToLower(filter.Search)
	var matched []*domain.Supplier
	for _, sup := range s.items {
		if !sup.IsActive {
			continue
		}
		if filter.RiskLevel != "" && sup.RiskLevel != filter.RiskLevel {
			continue
		}
		if filter.Verified != nil && sup.IsVerified != *filter.Verified {
			continue
		}
		if filter.Tier != 0 && sup.SupplyChainTier != filter.Tier {
			continue
		}
		if search != "" && !containsFold(search, sup.CompanyName, sup.Industry) {
			continue
		}
		matched = append(matched, sup)
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].OverallESGScore != matched[j].OverallESGScore {
			return matched[i].OverallESGScore > matched[j].OverallESGScore
		}
		return matched[i].CompanyName < matched[j].CompanyName
	})

	window := paginate(matched, filter.Page)
	out := make([]*domain.Supplier, len(window))
	for i, sup := range window {
		out[i] = cloneSupplier(sup)
	}
	return out, int64(len(matched)), nil
}

func cloneSupplier(s *domain.Supplier) *domain.Supplier {
	c := *s
	c.Certifications = slices.Clone(s.Certifications)
	return &c
}

// containsFold reports whether any field contains the lower-cased needle.
func containsFold(needle string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}
