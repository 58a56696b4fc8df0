package testutil

import (
	"context"

	"github.com/agencyhub/agencyhub/internal/domain/task"
	ierr "github.com/agencyhub/agencyhub/internal/errors"
	"github.com/agencyhub/agencyhub/internal/types"
	"github.com/samber/lo"
)

// InMemoryTaskStore implements task.Repository
type InMemoryTaskStore struct {
	*InMemoryStore[*task.Task]
}

// NewInMemoryTaskStore creates a new in-memory task store
func NewInMemoryTaskStore() *InMemoryTaskStore {
	return &InMemoryTaskStore{
		InMemoryStore: NewInMemoryStore[*task.Task](),
	}
}

func copyTask(t *task.Task) *task.Task {
	if t == nil {
		return nil
	}
	out := *t
	if t.ProjectID != nil {
		projectID := *t.ProjectID
		out.ProjectID = &projectID
	}
	if t.ClientID != nil {
		clientID := *t.ClientID
		out.ClientID = &clientID
	}
	if t.DueDate != nil {
		dueDate := *t.DueDate
		out.DueDate = &dueDate
	}
	if t.SourceProductID != nil {
		sourceProductID := *t.SourceProductID
		out.SourceProductID = &sourceProductID
	}
	if t.TemplateIndex != nil {
		templateIndex := *t.TemplateIndex
		out.TemplateIndex = &templateIndex
	}
	out.Tags = append(types.Tags{}, t.Tags...)
	return &out
}

func (s *InMemoryTaskStore) Create(ctx context.Context, t *task.Task) error {
	if err := s.InMemoryStore.Create(ctx, t.ID, copyTask(t)); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create task").
			Mark(ierr.ErrAlreadyExists)
	}
	return nil
}

func (s *InMemoryTaskStore) CreateBulk(ctx context.Context, tasks []*task.Task) error {
	for _, t := range tasks {
		if err := s.Create(ctx, t); err != nil {
			return err
		}
	}
	return nil
}

func (s *InMemoryTaskStore) Get(ctx context.Context, id string) (*task.Task, error) {
	t, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, ierr.NewError("task not found").
			WithHint("Task does not exist").
			Mark(ierr.ErrNotFound)
	}
	return copyTask(t), nil
}

func (s *InMemoryTaskStore) List(ctx context.Context, filter *types.TaskFilter) ([]*task.Task, error) {
	items, err := s.InMemoryStore.List(ctx, filter, taskFilterFn, taskSortFn)
	if err != nil {
		return nil, err
	}
	return lo.Map(items, func(t *task.Task, _ int) *task.Task {
		return copyTask(t)
	}), nil
}

func (s *InMemoryTaskStore) Count(ctx context.Context, filter *types.TaskFilter) (int, error) {
	return s.InMemoryStore.Count(ctx, filter, taskFilterFn)
}

func (s *InMemoryTaskStore) Update(ctx context.Context, t *task.Task) error {
	if err := s.InMemoryStore.Update(ctx, t.ID, copyTask(t)); err != nil {
		return ierr.NewError("task not found").
			WithHint("Task does not exist").
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (s *InMemoryTaskStore) Delete(ctx context.Context, id string) error {
	if err := s.InMemoryStore.Delete(ctx, id); err != nil {
		return ierr.NewError("task not found").
			WithHint("Task does not exist").
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func taskFilterFn(ctx context.Context, t *task.Task, filter interface{}) bool {
	f, ok := filter.(*types.TaskFilter)
	if !ok {
		return true
	}
	if t.AgencyID != types.GetAgencyID(ctx) {
		return false
	}
	if t.Status != f.GetStatus() {
		return false
	}
	if f.ProjectID != "" && (t.ProjectID == nil || *t.ProjectID != f.ProjectID) {
		return false
	}
	if f.ClientID != "" && (t.ClientID == nil || *t.ClientID != f.ClientID) {
		return false
	}
	if f.TaskStatus != nil && t.TaskStatus != *f.TaskStatus {
		return false
	}
	if f.Priority != nil && t.Priority != *f.Priority {
		return false
	}
	if f.AssignedTo != "" && t.AssignedTo != f.AssignedTo {
		return false
	}
	if f.SourceProductID != "" && (t.SourceProductID == nil || *t.SourceProductID != f.SourceProductID) {
		return false
	}
	return true
}

func taskSortFn(i, j *task.Task) bool {
	return i.CreatedAt.After(j.CreatedAt)
}
