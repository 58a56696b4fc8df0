package testutil

import (
	"context"

	"github.com/agencyhub/agencyhub/internal/domain/user"
	ierr "github.com/agencyhub/agencyhub/internal/errors"
	"github.com/agencyhub/agencyhub/internal/types"
	"github.com/samber/lo"
)

// InMemoryUserStore implements user.Repository
type InMemoryUserStore struct {
	*InMemoryStore[*user.User]
}

// NewInMemoryUserStore creates a new in-memory user store
func NewInMemoryUserStore() *InMemoryUserStore {
	return &InMemoryUserStore{
		InMemoryStore: NewInMemoryStore[*user.User](),
	}
}

func copyUser(u *user.User) *user.User {
	if u == nil {
		return nil
	}
	out := *u
	return &out
}

func (s *InMemoryUserStore) Create(ctx context.Context, u *user.User) error {
	if err := s.InMemoryStore.Create(ctx, u.ID, copyUser(u)); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create user").
			Mark(ierr.ErrAlreadyExists)
	}
	return nil
}

func (s *InMemoryUserStore) Get(ctx context.Context, id string) (*user.User, error) {
	u, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, ierr.NewError("user not found").
			WithHint("User does not exist").
			Mark(ierr.ErrNotFound)
	}
	return copyUser(u), nil
}

func (s *InMemoryUserStore) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	filterFn := func(ctx context.Context, u *user.User, _ interface{}) bool {
		return u.Email == email && u.AgencyID == types.GetAgencyID(ctx)
	}

	users, err := s.InMemoryStore.List(ctx, nil, filterFn, nil)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, ierr.NewError("user not found").
			WithHint("User does not exist").
			Mark(ierr.ErrNotFound)
	}
	return copyUser(users[0]), nil
}

func (s *InMemoryUserStore) List(ctx context.Context, filter *types.UserFilter) ([]*user.User, error) {
	items, err := s.InMemoryStore.List(ctx, filter, userFilterFn, userSortFn)
	if err != nil {
		return nil, err
	}
	return lo.Map(items, func(u *user.User, _ int) *user.User {
		return copyUser(u)
	}), nil
}

func (s *InMemoryUserStore) Count(ctx context.Context, filter *types.UserFilter) (int, error) {
	return s.InMemoryStore.Count(ctx, filter, userFilterFn)
}

func (s *InMemoryUserStore) Update(ctx context.Context, u *user.User) error {
	if err := s.InMemoryStore.Update(ctx, u.ID, copyUser(u)); err != nil {
		return ierr.NewError("user not found").
			WithHint("User does not exist").
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (s *InMemoryUserStore) Delete(ctx context.Context, id string) error {
	if err := s.InMemoryStore.Delete(ctx, id); err != nil {
		return ierr.NewError("user not found").
			WithHint("User does not exist").
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func userFilterFn(ctx context.Context, u *user.User, filter interface{}) bool {
	f, ok := filter.(*types.UserFilter)
	if !ok {
		return true
	}
	if u.AgencyID != types.GetAgencyID(ctx) {
		return false
	}
	if u.Status != f.GetStatus() {
		return false
	}
	if f.Role != nil && u.Role != *f.Role {
		return false
	}
	return true
}

func userSortFn(i, j *user.User) bool {
	return i.CreatedAt.After(j.CreatedAt)
}
