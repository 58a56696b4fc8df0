package lead

import (
	"context"

	"github.com/agencyhub/agencyhub/internal/types"
)

// Repository defines the interface for lead data access
type Repository interface {
	Create(ctx context.Context, lead *Lead) error
	Get(ctx context.Context, id string) (*Lead, error)
	List(ctx context.Context, filter *types.LeadFilter) ([]*Lead, error)
	Count(ctx context.Context, filter *types.LeadFilter) (int, error)
	Update(ctx context.Context, lead *Lead) error
	Delete(ctx context.Context, id string) error
}
