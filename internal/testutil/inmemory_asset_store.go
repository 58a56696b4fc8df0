package testutil

import (
	"context"
	"time"

	"github.com/agencyhub/agencyhub/internal/domain/asset"
	ierr "github.com/agencyhub/agencyhub/internal/errors"
	"github.com/agencyhub/agencyhub/internal/types"
	"github.com/samber/lo"
)

// InMemoryAssetStore implements asset.Repository
type InMemoryAssetStore struct {
	*InMemoryStore[*asset.Asset]
}

// NewInMemoryAssetStore creates a new in-memory asset store
func NewInMemoryAssetStore() *InMemoryAssetStore {
	return &InMemoryAssetStore{
		InMemoryStore: NewInMemoryStore[*asset.Asset](),
	}
}

func copyAsset(a *asset.Asset) *asset.Asset {
	if a == nil {
		return nil
	}
	out := *a
	if a.RenewalDate != nil {
		renewalDate := *a.RenewalDate
		out.RenewalDate = &renewalDate
	}
	return &out
}

func (s *InMemoryAssetStore) Create(ctx context.Context, a *asset.Asset) error {
	if err := s.InMemoryStore.Create(ctx, a.ID, copyAsset(a)); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create asset").
			Mark(ierr.ErrAlreadyExists)
	}
	return nil
}

func (s *InMemoryAssetStore) Get(ctx context.Context, id string) (*asset.Asset, error) {
	a, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, ierr.NewError("asset not found").
			WithHint("Asset does not exist").
			Mark(ierr.ErrNotFound)
	}
	return copyAsset(a), nil
}

func (s *InMemoryAssetStore) List(ctx context.Context, filter *types.AssetFilter) ([]*asset.Asset, error) {
	items, err := s.InMemoryStore.List(ctx, filter, assetFilterFn, assetSortFn)
	if err != nil {
		return nil, err
	}
	return lo.Map(items, func(a *asset.Asset, _ int) *asset.Asset {
		return copyAsset(a)
	}), nil
}

func (s *InMemoryAssetStore) Count(ctx context.Context, filter *types.AssetFilter) (int, error) {
	return s.InMemoryStore.Count(ctx, filter, assetFilterFn)
}

func (s *InMemoryAssetStore) Update(ctx context.Context, a *asset.Asset) error {
	if err := s.InMemoryStore.Update(ctx, a.ID, copyAsset(a)); err != nil {
		return ierr.NewError("asset not found").
			WithHint("Asset does not exist").
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (s *InMemoryAssetStore) Delete(ctx context.Context, id string) error {
	if err := s.InMemoryStore.Delete(ctx, id); err != nil {
		return ierr.NewError("asset not found").
			WithHint("Asset does not exist").
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func assetFilterFn(ctx context.Context, a *asset.Asset, filter interface{}) bool {
	f, ok := filter.(*types.AssetFilter)
	if !ok {
		return true
	}
	if a.AgencyID != types.GetAgencyID(ctx) {
		return false
	}
	if a.Status != f.GetStatus() {
		return false
	}
	if f.ClientID != "" && a.ClientID != f.ClientID {
		return false
	}
	if f.AssetType != nil && a.AssetType != *f.AssetType {
		return false
	}
	if f.RenewingDays != nil && !a.IsRenewingWithin(*f.RenewingDays, time.Now().UTC()) {
		return false
	}
	return true
}

func assetSortFn(i, j *asset.Asset) bool {
	return i.CreatedAt.After(j.CreatedAt)
}
