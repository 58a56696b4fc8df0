package asset

import (
	"context"

	"github.com/agencyhub/agencyhub/internal/types"
)

// Repository defines the interface for digital asset data access
type Repository interface {
	Create(ctx context.Context, asset *Asset) error
	Get(ctx context.Context, id string) (*Asset, error)
	List(ctx context.Context, filter *types.AssetFilter) ([]*Asset, error)
	Count(ctx context.Context, filter *types.AssetFilter) (int, error)
	Update(ctx context.Context, asset *Asset) error
	Delete(ctx context.Context, id string) error
}
