package service

import (
	"context"

	"github.com/agencyhub/agencyhub/internal/api/dto"
	"github.com/agencyhub/agencyhub/internal/domain/asset"
	ierr "github.com/agencyhub/agencyhub/internal/errors"
	"github.com/agencyhub/agencyhub/internal/types"
	"github.com/samber/lo"
)

// AssetService tracks the digital assets managed for clients: domains,
// hosting, mailboxes, and licenses with their renewal dates
type AssetService interface {
	CreateAsset(ctx context.Context, req dto.CreateAssetRequest) (*dto.AssetResponse, error)
	GetAsset(ctx context.Context, id string) (*dto.AssetResponse, error)
	ListAssets(ctx context.Context, filter *types.AssetFilter) (*dto.ListAssetsResponse, error)
	UpdateAsset(ctx context.Context, id string, req dto.UpdateAssetRequest) (*dto.AssetResponse, error)
	DeleteAsset(ctx context.Context, id string) error
}

type assetService struct {
	ServiceParams
}

func NewAssetService(params ServiceParams) AssetService {
	return &assetService{
		ServiceParams: params,
	}
}

func (s *assetService) CreateAsset(ctx context.Context, req dto.CreateAssetRequest) (*dto.AssetResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.ClientRepo.Get(ctx, req.ClientID); err != nil {
		return nil, err
	}

	a := req.ToAsset(ctx)
	if err := a.Validate(); err != nil {
		return nil, err
	}

	if err := s.AssetRepo.Create(ctx, a); err != nil {
		return nil, err
	}

	return &dto.AssetResponse{Asset: a}, nil
}

func (s *assetService) GetAsset(ctx context.Context, id string) (*dto.AssetResponse, error) {
	if id == "" {
		return nil, ierr.NewError("asset id is required").
			WithHint("Asset ID is required").
			Mark(ierr.ErrValidation)
	}

	a, err := s.AssetRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return &dto.AssetResponse{Asset: a}, nil
}

// ListAssets returns assets matching the filter. Setting RenewingDays
// narrows the result to assets whose renewal falls within that many days,
// which drives the upcoming-renewals view.
func (s *assetService) ListAssets(ctx context.Context, filter *types.AssetFilter) (*dto.ListAssetsResponse, error) {
	if filter == nil {
		filter = types.NewAssetFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	assets, err := s.AssetRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	count, err := s.AssetRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := lo.Map(assets, func(a *asset.Asset, _ int) *dto.AssetResponse {
		return &dto.AssetResponse{Asset: a}
	})

	resp := types.NewListResponse(items, count, filter.GetLimit(), filter.GetOffset())
	return &resp, nil
}

func (s *assetService) UpdateAsset(ctx context.Context, id string, req dto.UpdateAssetRequest) (*dto.AssetResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	a, err := s.AssetRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.AssetType != nil {
		a.AssetType = *req.AssetType
	}
	if req.Name != nil {
		a.Name = *req.Name
	}
	if req.Provider != nil {
		a.Provider = *req.Provider
	}
	if req.Cost != nil {
		a.Cost = *req.Cost
	}
	if req.RenewalDate != nil {
		a.RenewalDate = req.RenewalDate
	}
	if req.AutoRenew != nil {
		a.AutoRenew = *req.AutoRenew
	}
	if req.Notes != nil {
		a.Notes = *req.Notes
	}

	if err := a.Validate(); err != nil {
		return nil, err
	}

	if err := s.AssetRepo.Update(ctx, a); err != nil {
		return nil, err
	}

	return &dto.AssetResponse{Asset: a}, nil
}

func (s *assetService) DeleteAsset(ctx context.Context, id string) error {
	if id == "" {
		return ierr.NewError("asset id is required").
			WithHint("Asset ID is required").
			Mark(ierr.ErrValidation)
	}

	if _, err := s.AssetRepo.Get(ctx, id); err != nil {
		return err
	}

	return s.AssetRepo.Delete(ctx, id)
}
