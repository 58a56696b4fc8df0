package testutil

import (
	"context"

	"github.com/agencyhub/agencyhub/internal/domain/project"
	ierr "github.com/agencyhub/agencyhub/internal/errors"
	"github.com/agencyhub/agencyhub/internal/types"
	"github.com/samber/lo"
)

// InMemoryProjectStore implements project.Repository
type InMemoryProjectStore struct {
	*InMemoryStore[*project.Project]
}

// NewInMemoryProjectStore creates a new in-memory project store
func NewInMemoryProjectStore() *InMemoryProjectStore {
	return &InMemoryProjectStore{
		InMemoryStore: NewInMemoryStore[*project.Project](),
	}
}

func copyProject(p *project.Project) *project.Project {
	if p == nil {
		return nil
	}
	out := *p
	if p.QuoteID != nil {
		quoteID := *p.QuoteID
		out.QuoteID = &quoteID
	}
	if p.StartDate != nil {
		startDate := *p.StartDate
		out.StartDate = &startDate
	}
	if p.EndDate != nil {
		endDate := *p.EndDate
		out.EndDate = &endDate
	}
	return &out
}

func (s *InMemoryProjectStore) Create(ctx context.Context, p *project.Project) error {
	if err := s.InMemoryStore.Create(ctx, p.ID, copyProject(p)); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create project").
			Mark(ierr.ErrAlreadyExists)
	}
	return nil
}

func (s *InMemoryProjectStore) Get(ctx context.Context, id string) (*project.Project, error) {
	p, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, ierr.NewError("project not found").
			WithHint("Project does not exist").
			Mark(ierr.ErrNotFound)
	}
	return copyProject(p), nil
}

func (s *InMemoryProjectStore) GetByQuoteID(ctx context.Context, quoteID string) (*project.Project, error) {
	filterFn := func(ctx context.Context, p *project.Project, _ interface{}) bool {
		return p.QuoteID != nil && *p.QuoteID == quoteID &&
			p.AgencyID == types.GetAgencyID(ctx) &&
			p.Status != types.StatusDeleted
	}

	projects, err := s.InMemoryStore.List(ctx, nil, filterFn, nil)
	if err != nil {
		return nil, err
	}
	if len(projects) == 0 {
		return nil, ierr.NewError("project not found for quote").
			WithHint("No project has been created from this quote").
			Mark(ierr.ErrNotFound)
	}
	return copyProject(projects[0]), nil
}

func (s *InMemoryProjectStore) List(ctx context.Context, filter *types.ProjectFilter) ([]*project.Project, error) {
	items, err := s.InMemoryStore.List(ctx, filter, projectFilterFn, projectSortFn)
	if err != nil {
		return nil, err
	}
	return lo.Map(items, func(p *project.Project, _ int) *project.Project {
		return copyProject(p)
	}), nil
}

func (s *InMemoryProjectStore) Count(ctx context.Context, filter *types.ProjectFilter) (int, error) {
	return s.InMemoryStore.Count(ctx, filter, projectFilterFn)
}

func (s *InMemoryProjectStore) Update(ctx context.Context, p *project.Project) error {
	if err := s.InMemoryStore.Update(ctx, p.ID, copyProject(p)); err != nil {
		return ierr.NewError("project not found").
			WithHint("Project does not exist").
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (s *InMemoryProjectStore) Delete(ctx context.Context, id string) error {
	if err := s.InMemoryStore.Delete(ctx, id); err != nil {
		return ierr.NewError("project not found").
			WithHint("Project does not exist").
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func projectFilterFn(ctx context.Context, p *project.Project, filter interface{}) bool {
	f, ok := filter.(*types.ProjectFilter)
	if !ok {
		return true
	}
	if p.AgencyID != types.GetAgencyID(ctx) {
		return false
	}
	if p.Status != f.GetStatus() {
		return false
	}
	if f.ClientID != "" && p.ClientID != f.ClientID {
		return false
	}
	if f.ProjectStatus != nil && p.ProjectStatus != *f.ProjectStatus {
		return false
	}
	if f.Priority != nil && p.Priority != *f.Priority {
		return false
	}
	if f.AssignedTo != "" && p.AssignedTo != f.AssignedTo {
		return false
	}
	return true
}

func projectSortFn(i, j *project.Project) bool {
	return i.CreatedAt.After(j.CreatedAt)
}
