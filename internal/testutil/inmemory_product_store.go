package testutil

import (
	"context"
	"strings"

	"github.com/agencyhub/agencyhub/internal/domain/product"
	ierr "github.com/agencyhub/agencyhub/internal/errors"
	"github.com/agencyhub/agencyhub/internal/types"
	"github.com/samber/lo"
)

// InMemoryProductStore implements product.Repository
type InMemoryProductStore struct {
	*InMemoryStore[*product.Product]
}

// NewInMemoryProductStore creates a new in-memory product store
func NewInMemoryProductStore() *InMemoryProductStore {
	return &InMemoryProductStore{
		InMemoryStore: NewInMemoryStore[*product.Product](),
	}
}

func copyProduct(p *product.Product) *product.Product {
	if p == nil {
		return nil
	}
	out := *p
	out.PredefinedTasks = append(product.PredefinedTasks{}, p.PredefinedTasks...)
	return &out
}

func (s *InMemoryProductStore) Create(ctx context.Context, p *product.Product) error {
	if err := s.InMemoryStore.Create(ctx, p.ID, copyProduct(p)); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create product").
			Mark(ierr.ErrAlreadyExists)
	}
	return nil
}

func (s *InMemoryProductStore) Get(ctx context.Context, id string) (*product.Product, error) {
	p, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, ierr.NewError("product not found").
			WithHint("Product does not exist").
			Mark(ierr.ErrNotFound)
	}
	return copyProduct(p), nil
}

func (s *InMemoryProductStore) List(ctx context.Context, filter *types.ProductFilter) ([]*product.Product, error) {
	items, err := s.InMemoryStore.List(ctx, filter, productFilterFn, productSortFn)
	if err != nil {
		return nil, err
	}
	return lo.Map(items, func(p *product.Product, _ int) *product.Product {
		return copyProduct(p)
	}), nil
}

func (s *InMemoryProductStore) Count(ctx context.Context, filter *types.ProductFilter) (int, error) {
	return s.InMemoryStore.Count(ctx, filter, productFilterFn)
}

func (s *InMemoryProductStore) Update(ctx context.Context, p *product.Product) error {
	if err := s.InMemoryStore.Update(ctx, p.ID, copyProduct(p)); err != nil {
		return ierr.NewError("product not found").
			WithHint("Product does not exist").
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (s *InMemoryProductStore) Delete(ctx context.Context, id string) error {
	if err := s.InMemoryStore.Delete(ctx, id); err != nil {
		return ierr.NewError("product not found").
			WithHint("Product does not exist").
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func productFilterFn(ctx context.Context, p *product.Product, filter interface{}) bool {
	f, ok := filter.(*types.ProductFilter)
	if !ok {
		return true
	}
	if p.AgencyID != types.GetAgencyID(ctx) {
		return false
	}
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.IsActive != nil && p.IsActive != *f.IsActive {
		return false
	}
	if f.Search != "" {
		search := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			return false
		}
	}
	return true
}

func productSortFn(i, j *product.Product) bool {
	return i.CreatedAt.After(j.CreatedAt)
}
