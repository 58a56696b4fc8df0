package types

import (
	ierr "github.com/agencyhub/agencyhub/internal/errors"
	"github.com/samber/lo"
)

// AssetType categorizes a digital asset managed for a client
type AssetType string

const (
	AssetTypeDomain  AssetType = "domain"
	AssetTypeHosting AssetType = "hosting"
	AssetTypeEmail   AssetType = "email"
	AssetTypeLicense AssetType = "license"
)

func (t AssetType) String() string {
	return string(t)
}

func (t AssetType) Validate() error {
	allowed := []AssetType{
		AssetTypeDomain,
		AssetTypeHosting,
		AssetTypeEmail,
		AssetTypeLicense,
	}
	if !lo.Contains(allowed, t) {
		return ierr.NewError("invalid asset type").
			WithHint("Please provide a valid asset type").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// AssetFilter represents filters for digital asset queries
type AssetFilter struct {
	*QueryFilter
	ClientID     string     `json:"client_id,omitempty" form:"client_id"`
	AssetType    *AssetType `json:"asset_type,omitempty" form:"asset_type"`
	RenewingDays *int       `json:"renewing_days,omitempty" form:"renewing_days"`
}

// NewAssetFilter creates a new AssetFilter with default values
func NewAssetFilter() *AssetFilter {
	return &AssetFilter{
		QueryFilter: NewDefaultQueryFilter(),
	}
}

// Validate validates the asset filter
func (f *AssetFilter) Validate() error {
	if err := f.QueryFilter.Validate(); err != nil {
		return err
	}
	if f.AssetType != nil {
		if err := f.AssetType.Validate(); err != nil {
			return err
		}
	}
	if f.RenewingDays != nil && *f.RenewingDays < 0 {
		return ierr.NewError("renewing_days must not be negative").
			WithHint("Please provide a non-negative renewal window").
			Mark(ierr.ErrValidation)
	}
	return nil
}
