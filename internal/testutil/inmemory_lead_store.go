package testutil

import (
	"context"
	"strings"

	"github.com/agencyhub/agencyhub/internal/domain/lead"
	ierr "github.com/agencyhub/agencyhub/internal/errors"
	"github.com/agencyhub/agencyhub/internal/types"
	"github.com/samber/lo"
)

// InMemoryLeadStore implements lead.Repository
type InMemoryLeadStore struct {
	*InMemoryStore[*lead.Lead]
}

// NewInMemoryLeadStore creates a new in-memory lead store
func NewInMemoryLeadStore() *InMemoryLeadStore {
	return &InMemoryLeadStore{
		InMemoryStore: NewInMemoryStore[*lead.Lead](),
	}
}

func copyLead(l *lead.Lead) *lead.Lead {
	if l == nil {
		return nil
	}
	out := *l
	out.Fields = lo.Assign(types.Metadata{}, l.Fields)
	if l.ClientID != nil {
		clientID := *l.ClientID
		out.ClientID = &clientID
	}
	return &out
}

func (s *InMemoryLeadStore) Create(ctx context.Context, l *lead.Lead) error {
	if err := s.InMemoryStore.Create(ctx, l.ID, copyLead(l)); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create lead").
			Mark(ierr.ErrAlreadyExists)
	}
	return nil
}

func (s *InMemoryLeadStore) Get(ctx context.Context, id string) (*lead.Lead, error) {
	l, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, ierr.NewError("lead not found").
			WithHint("Lead does not exist").
			Mark(ierr.ErrNotFound)
	}
	return copyLead(l), nil
}

func (s *InMemoryLeadStore) List(ctx context.Context, filter *types.LeadFilter) ([]*lead.Lead, error) {
	items, err := s.InMemoryStore.List(ctx, filter, leadFilterFn, leadSortFn)
	if err != nil {
		return nil, err
	}
	return lo.Map(items, func(l *lead.Lead, _ int) *lead.Lead {
		return copyLead(l)
	}), nil
}

func (s *InMemoryLeadStore) Count(ctx context.Context, filter *types.LeadFilter) (int, error) {
	return s.InMemoryStore.Count(ctx, filter, leadFilterFn)
}

func (s *InMemoryLeadStore) Update(ctx context.Context, l *lead.Lead) error {
	if err := s.InMemoryStore.Update(ctx, l.ID, copyLead(l)); err != nil {
		return ierr.NewError("lead not found").
			WithHint("Lead does not exist").
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (s *InMemoryLeadStore) Delete(ctx context.Context, id string) error {
	if err := s.InMemoryStore.Delete(ctx, id); err != nil {
		return ierr.NewError("lead not found").
			WithHint("Lead does not exist").
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func leadFilterFn(ctx context.Context, l *lead.Lead, filter interface{}) bool {
	f, ok := filter.(*types.LeadFilter)
	if !ok {
		return true
	}
	if l.AgencyID != types.GetAgencyID(ctx) {
		return false
	}
	if l.Status != f.GetStatus() {
		return false
	}
	if f.LeadStatus != nil && l.LeadStatus != *f.LeadStatus {
		return false
	}
	if f.Platform != "" && l.Platform != f.Platform {
		return false
	}
	if f.Priority != nil && l.Priority != *f.Priority {
		return false
	}
	if f.AssignedTo != "" && l.AssignedTo != f.AssignedTo {
		return false
	}
	if f.Search != "" {
		search := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(l.ContactName), search) &&
			!strings.Contains(strings.ToLower(l.Email), search) &&
			!strings.Contains(strings.ToLower(l.Phone), search) {
			return false
		}
	}
	return true
}

func leadSortFn(i, j *lead.Lead) bool {
	return i.CreatedAt.After(j.CreatedAt)
}
