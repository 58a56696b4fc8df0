package testutil

import (
	"context"

	"github.com/agencyhub/agencyhub/internal/domain/agency"
	ierr "github.com/agencyhub/agencyhub/internal/errors"
)

// InMemoryAgencyStore implements agency.Repository
type InMemoryAgencyStore struct {
	*InMemoryStore[*agency.Agency]
}

// NewInMemoryAgencyStore creates a new in-memory agency store
func NewInMemoryAgencyStore() *InMemoryAgencyStore {
	return &InMemoryAgencyStore{
		InMemoryStore: NewInMemoryStore[*agency.Agency](),
	}
}

func copyAgency(a *agency.Agency) *agency.Agency {
	if a == nil {
		return nil
	}
	out := *a
	return &out
}

func (s *InMemoryAgencyStore) Create(ctx context.Context, a *agency.Agency) error {
	if err := s.InMemoryStore.Create(ctx, a.ID, copyAgency(a)); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create agency").
			Mark(ierr.ErrAlreadyExists)
	}
	return nil
}

func (s *InMemoryAgencyStore) Get(ctx context.Context, id string) (*agency.Agency, error) {
	a, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, ierr.NewError("agency not found").
			WithHint("Agency does not exist").
			Mark(ierr.ErrNotFound)
	}
	return copyAgency(a), nil
}

func (s *InMemoryAgencyStore) GetBySlug(ctx context.Context, slug string) (*agency.Agency, error) {
	filterFn := func(ctx context.Context, a *agency.Agency, _ interface{}) bool {
		return a.Slug == slug
	}

	agencies, err := s.InMemoryStore.List(ctx, nil, filterFn, nil)
	if err != nil {
		return nil, err
	}
	if len(agencies) == 0 {
		return nil, ierr.NewError("agency not found").
			WithHint("Agency does not exist").
			Mark(ierr.ErrNotFound)
	}
	return copyAgency(agencies[0]), nil
}

func (s *InMemoryAgencyStore) Update(ctx context.Context, a *agency.Agency) error {
	if err := s.InMemoryStore.Update(ctx, a.ID, copyAgency(a)); err != nil {
		return ierr.NewError("agency not found").
			WithHint("Agency does not exist").
			Mark(ierr.ErrNotFound)
	}
	return nil
}
