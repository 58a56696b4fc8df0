package product

import (
	"context"

	"github.com/agencyhub/agencyhub/internal/types"
)

// Repository defines the interface for product catalog data access.
// Delete is a hard delete with no referential check against quotes; quote
// line items snapshot product data and tolerate dangling product IDs.
type Repository interface {
	Create(ctx context.Context, product *Product) error
	Get(ctx context.Context, id string) (*Product, error)
	List(ctx context.Context, filter *types.ProductFilter) ([]*Product, error)
	Count(ctx context.Context, filter *types.ProductFilter) (int, error)
	Update(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id string) error
}
