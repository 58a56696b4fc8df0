package project

import (
	"context"

	"github.com/agencyhub/agencyhub/internal/types"
)

// Repository defines the interface for project data access. GetByQuoteID
// is the idempotency check for the quote-approval handoff: it returns
// ErrNotFound when no project has been created from the quote yet.
type Repository interface {
	Create(ctx context.Context, project *Project) error
	Get(ctx context.Context, id string) (*Project, error)
	GetByQuoteID(ctx context.Context, quoteID string) (*Project, error)
	List(ctx context.Context, filter *types.ProjectFilter) ([]*Project, error)
	Count(ctx context.Context, filter *types.ProjectFilter) (int, error)
	Update(ctx context.Context, project *Project) error
	Delete(ctx context.Context, id string) error
}
