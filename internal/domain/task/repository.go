package task

import (
	"context"

	"github.com/agencyhub/agencyhub/internal/types"
)

// Repository defines the interface for task data access. CreateBulk exists
// for quote approval, which seeds every task of every line item's product
// inside one transaction.
type Repository interface {
	Create(ctx context.Context, task *Task) error
	CreateBulk(ctx context.Context, tasks []*Task) error
	Get(ctx context.Context, id string) (*Task, error)
	List(ctx context.Context, filter *types.TaskFilter) ([]*Task, error)
	Count(ctx context.Context, filter *types.TaskFilter) (int, error)
	Update(ctx context.Context, task *Task) error
	Delete(ctx context.Context, id string) error
}
