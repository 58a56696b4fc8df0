package dto

import (
	"context"
	"time"

	"github.com/agencyhub/agencyhub/internal/domain/asset"
	"github.com/agencyhub/agencyhub/internal/types"
)

type CreateAssetRequest struct {
	ClientID  string          `json:"client_id" validate:"required"`
	AssetType types.AssetType `json:"asset_type" validate:"required"`
	Name      string          `json:"name" validate:"required,max=255"`
	Provider  string          `json:"provider" validate:"omitempty,max=255"`
	// Cost is in minor currency units (agorot), matching responses
	Cost        types.Money `json:"cost" validate:"omitempty,gte=0"`
	RenewalDate *time.Time  `json:"renewal_date"`
	AutoRenew   bool        `json:"auto_renew"`
	Notes       string      `json:"notes"`
}

type UpdateAssetRequest struct {
	AssetType   *types.AssetType `json:"asset_type"`
	Name        *string          `json:"name" validate:"omitempty,max=255"`
	Provider    *string          `json:"provider" validate:"omitempty,max=255"`
	Cost        *types.Money     `json:"cost" validate:"omitempty,gte=0"`
	RenewalDate *time.Time       `json:"renewal_date"`
	AutoRenew   *bool            `json:"auto_renew"`
	Notes       *string          `json:"notes"`
}

type AssetResponse struct {
	*asset.Asset
}

// ListAssetsResponse represents the response for listing assets
type ListAssetsResponse = types.ListResponse[*AssetResponse]

func (r *CreateAssetRequest) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}
	return r.AssetType.Validate()
}

func (r *CreateAssetRequest) ToAsset(ctx context.Context) *asset.Asset {
	return &asset.Asset{
		ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_ASSET),
		ClientID:    r.ClientID,
		AssetType:   r.AssetType,
		Name:        r.Name,
		Provider:    r.Provider,
		Cost:        r.Cost,
		RenewalDate: r.RenewalDate,
		AutoRenew:   r.AutoRenew,
		Notes:       r.Notes,
		BaseModel:   types.GetDefaultBaseModel(ctx),
	}
}

func (r *UpdateAssetRequest) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}
	if r.AssetType != nil {
		return r.AssetType.Validate()
	}
	return nil
}
