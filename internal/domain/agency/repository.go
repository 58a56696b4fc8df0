package agency

import (
	"context"
)

// Repository defines the interface for agency data access
type Repository interface {
	Create(ctx context.Context, agency *Agency) error
	Get(ctx context.Context, id string) (*Agency, error)
	GetBySlug(ctx context.Context, slug string) (*Agency, error)
	Update(ctx context.Context, agency *Agency) error
}
