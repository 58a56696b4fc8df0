package testutil

import (
	"context"
	"strings"

	"github.com/agencyhub/agencyhub/internal/domain/client"
	ierr "github.com/agencyhub/agencyhub/internal/errors"
	"github.com/agencyhub/agencyhub/internal/types"
	"github.com/samber/lo"
)

// InMemoryClientStore implements client.Repository
type InMemoryClientStore struct {
	*InMemoryStore[*client.Client]
}

// NewInMemoryClientStore creates a new in-memory client store
func NewInMemoryClientStore() *InMemoryClientStore {
	return &InMemoryClientStore{
		InMemoryStore: NewInMemoryStore[*client.Client](),
	}
}

func copyClient(c *client.Client) *client.Client {
	if c == nil {
		return nil
	}
	out := *c
	out.CustomFields = lo.Assign(types.Metadata{}, c.CustomFields)
	return &out
}

func (s *InMemoryClientStore) Create(ctx context.Context, c *client.Client) error {
	if err := s.InMemoryStore.Create(ctx, c.ID, copyClient(c)); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create client").
			Mark(ierr.ErrAlreadyExists)
	}
	return nil
}

func (s *InMemoryClientStore) Get(ctx context.Context, id string) (*client.Client, error) {
	c, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, ierr.NewError("client not found").
			WithHint("Client does not exist").
			Mark(ierr.ErrNotFound)
	}
	return copyClient(c), nil
}

func (s *InMemoryClientStore) List(ctx context.Context, filter *types.ClientFilter) ([]*client.Client, error) {
	items, err := s.InMemoryStore.List(ctx, filter, clientFilterFn, clientSortFn)
	if err != nil {
		return nil, err
	}
	return lo.Map(items, func(c *client.Client, _ int) *client.Client {
		return copyClient(c)
	}), nil
}

func (s *InMemoryClientStore) Count(ctx context.Context, filter *types.ClientFilter) (int, error) {
	return s.InMemoryStore.Count(ctx, filter, clientFilterFn)
}

func (s *InMemoryClientStore) Update(ctx context.Context, c *client.Client) error {
	if err := s.InMemoryStore.Update(ctx, c.ID, copyClient(c)); err != nil {
		return ierr.NewError("client not found").
			WithHint("Client does not exist").
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (s *InMemoryClientStore) Delete(ctx context.Context, id string) error {
	if err := s.InMemoryStore.Delete(ctx, id); err != nil {
		return ierr.NewError("client not found").
			WithHint("Client does not exist").
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func clientFilterFn(ctx context.Context, c *client.Client, filter interface{}) bool {
	f, ok := filter.(*types.ClientFilter)
	if !ok {
		return true
	}
	if c.AgencyID != types.GetAgencyID(ctx) {
		return false
	}
	if c.Status != f.GetStatus() {
		return false
	}
	if f.ClientStatus != nil && c.ClientStatus != *f.ClientStatus {
		return false
	}
	if f.Industry != "" && c.Industry != f.Industry {
		return false
	}
	if f.Search != "" {
		search := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(c.Name), search) &&
			!strings.Contains(strings.ToLower(c.ContactName), search) &&
			!strings.Contains(strings.ToLower(c.Email), search) {
			return false
		}
	}
	if len(f.ClientIDs) > 0 && !lo.Contains(f.ClientIDs, c.ID) {
		return false
	}
	return true
}

func clientSortFn(i, j *client.Client) bool {
	return i.CreatedAt.After(j.CreatedAt)
}
