package types

import (
	ierr "github.com/agencyhub/agencyhub/internal/errors"
	"github.com/samber/lo"
)

// ClientStatus represents the business relationship with a client
type ClientStatus string

const (
	ClientStatusActive   ClientStatus = "active"
	ClientStatusInactive ClientStatus = "inactive"
	ClientStatusPending  ClientStatus = "pending"
)

func (s ClientStatus) String() string {
	return string(s)
}

func (s ClientStatus) Validate() error {
	allowed := []ClientStatus{
		ClientStatusActive,
		ClientStatusInactive,
		ClientStatusPending,
	}
	if !lo.Contains(allowed, s) {
		return ierr.NewError("invalid client status").
			WithHint("Please provide a valid client status").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// ClientFilter represents filters for client queries
type ClientFilter struct {
	*QueryFilter
	ClientStatus *ClientStatus `json:"client_status,omitempty" form:"client_status"`
	Industry     string        `json:"industry,omitempty" form:"industry"`
	Search       string        `json:"search,omitempty" form:"search"`
	ClientIDs    []string      `json:"client_ids,omitempty" form:"client_ids"`
}

// NewClientFilter creates a new ClientFilter with default values
func NewClientFilter() *ClientFilter {
	return &ClientFilter{
		QueryFilter: NewDefaultQueryFilter(),
	}
}

// Validate validates the client filter
func (f *ClientFilter) Validate() error {
	if err := f.QueryFilter.Validate(); err != nil {
		return err
	}
	if f.ClientStatus != nil {
		if err := f.ClientStatus.Validate(); err != nil {
			return err
		}
	}
	return nil
}
