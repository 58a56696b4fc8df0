package asset

import (
	"strings"
	"time"

	ierr "github.com/agencyhub/agencyhub/internal/errors"
	"github.com/agencyhub/agencyhub/internal/types"
)

// Asset is a digital asset the agency manages on a client's behalf, such
// as a domain registration, hosting plan, mailbox, or software license.
type Asset struct {
	// ID is the unique identifier for the asset
	ID string `db:"id" json:"id"`

	// ClientID references the owning client
	ClientID string `db:"client_id" json:"client_id"`

	// AssetType classifies the asset
	AssetType types.AssetType `db:"asset_type" json:"asset_type"`

	// Name identifies the asset, e.g. the domain name or plan name
	Name string `db:"name" json:"name"`

	// Provider is where the asset is registered or hosted
	Provider string `db:"provider" json:"provider"`

	// Cost is the renewal cost in minor currency units
	Cost types.Money `db:"cost" json:"cost"`

	// RenewalDate is when the asset next comes up for renewal
	RenewalDate *time.Time `db:"renewal_date" json:"renewal_date,omitempty"`

	// AutoRenew indicates the provider renews the asset automatically
	AutoRenew bool `db:"auto_renew" json:"auto_renew"`

	// Notes holds credentials pointers, account hints, and other context
	Notes string `db:"notes" json:"notes"`

	types.BaseModel
}

// Validate checks the invariants that must hold before persisting
func (a *Asset) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return ierr.NewError("asset name is required").
			WithHint("Asset name must not be empty").
			Mark(ierr.ErrValidation)
	}
	if a.ClientID == "" {
		return ierr.NewError("asset client is required").
			WithHint("An asset must reference a client").
			Mark(ierr.ErrValidation)
	}
	if err := a.AssetType.Validate(); err != nil {
		return err
	}
	if a.Cost.IsNegative() {
		return ierr.NewError("asset cost must not be negative").
			WithHint("Cost must be zero or positive").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// IsRenewingWithin reports whether the asset's renewal date falls inside
// the next given number of days. Assets without a renewal date never match.
func (a *Asset) IsRenewingWithin(days int, now time.Time) bool {
	if a.RenewalDate == nil {
		return false
	}
	cutoff := now.AddDate(0, 0, days)
	return !a.RenewalDate.Before(now) && !a.RenewalDate.After(cutoff)
}
