package types

import (
	ierr "github.com/agencyhub/agencyhub/internal/errors"
	"github.com/samber/lo"
)

// UserRole controls what a user can do within their agency
type UserRole string

const (
	UserRoleOwner  UserRole = "owner"
	UserRoleAdmin  UserRole = "admin"
	UserRoleMember UserRole = "member"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) Validate() error {
	allowed := []UserRole{
		UserRoleOwner,
		UserRoleAdmin,
		UserRoleMember,
	}
	if !lo.Contains(allowed, r) {
		return ierr.NewError("invalid user role").
			WithHint("Please provide a valid user role").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// UserFilter represents filters for user queries
type UserFilter struct {
	*QueryFilter
	Role *UserRole `json:"role,omitempty" form:"role"`
}

// NewUserFilter creates a new UserFilter with default values
func NewUserFilter() *UserFilter {
	return &UserFilter{
		QueryFilter: NewDefaultQueryFilter(),
	}
}

// Validate validates the user filter
func (f *UserFilter) Validate() error {
	if err := f.QueryFilter.Validate(); err != nil {
		return err
	}
	if f.Role != nil {
		if err := f.Role.Validate(); err != nil {
			return err
		}
	}
	return nil
}
