package service

import (
	"testing"
	"time"

	"github.com/agencyhub/agencyhub/internal/api/dto"
	"github.com/agencyhub/agencyhub/internal/domain/client"
	ierr "github.com/agencyhub/agencyhub/internal/errors"
	"github.com/agencyhub/agencyhub/internal/testutil"
	"github.com/agencyhub/agencyhub/internal/types"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
)

type AssetServiceSuite struct {
	testutil.BaseServiceTestSuite
	service  AssetService
	testData struct {
		client *client.Client
	}
}

func TestAssetService(t *testing.T) {
	suite.Run(t, new(AssetServiceSuite))
}

func (s *AssetServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewAssetService(ServiceParams{
		Logger:     s.GetLogger(),
		Config:     s.GetConfig(),
		DB:         s.GetDB(),
		Cache:      s.GetCache(),
		AssetRepo:  s.GetStores().AssetRepo,
		ClientRepo: s.GetStores().ClientRepo,
	})

	s.testData.client = &client.Client{
		ID:           "client_1",
		Name:         "Acme Retail",
		ClientStatus: types.ClientStatusActive,
		BaseModel:    types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().ClientRepo.Create(s.GetContext(), s.testData.client))
}

func (s *AssetServiceSuite) createAsset(name string, assetType types.AssetType, renewal *time.Time) *dto.AssetResponse {
	resp, err := s.service.CreateAsset(s.GetContext(), dto.CreateAssetRequest{
		ClientID:    s.testData.client.ID,
		AssetType:   assetType,
		Name:        name,
		Provider:    "Namecheap",
		Cost:        types.Money(1500),
		RenewalDate: renewal,
	})
	s.Require().NoError(err)
	return resp
}

func (s *AssetServiceSuite) TestCreateAsset() {
	resp := s.createAsset("acme.example", types.AssetTypeDomain, nil)
	s.Equal(types.Money(1500), resp.Cost)
	s.Equal(types.AssetTypeDomain, resp.AssetType)
}

func (s *AssetServiceSuite) TestCreateAssetUnknownClient() {
	_, err := s.service.CreateAsset(s.GetContext(), dto.CreateAssetRequest{
		ClientID:  "client_missing",
		AssetType: types.AssetTypeDomain,
		Name:      "orphan.example",
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *AssetServiceSuite) TestListUpcomingRenewals() {
	soon := time.Now().UTC().AddDate(0, 0, 10)
	later := time.Now().UTC().AddDate(0, 0, 90)

	s.createAsset("acme.example", types.AssetTypeDomain, &soon)
	s.createAsset("acme-hosting", types.AssetTypeHosting, &later)
	s.createAsset("no-renewal", types.AssetTypeLicense, nil)

	filter := types.NewAssetFilter()
	filter.RenewingDays = lo.ToPtr(30)

	resp, err := s.service.ListAssets(s.GetContext(), filter)
	s.NoError(err)
	s.Len(resp.Items, 1)
	s.Equal("acme.example", resp.Items[0].Name)
}

func (s *AssetServiceSuite) TestUpdateAsset() {
	created := s.createAsset("acme.example", types.AssetTypeDomain, nil)

	updated, err := s.service.UpdateAsset(s.GetContext(), created.ID, dto.UpdateAssetRequest{
		Cost:      lo.ToPtr(types.Money(1999)),
		AutoRenew: lo.ToPtr(true),
	})
	s.NoError(err)
	s.Equal(types.Money(1999), updated.Cost)
	s.True(updated.AutoRenew)
}

func (s *AssetServiceSuite) TestDeleteAsset() {
	created := s.createAsset("acme.example", types.AssetTypeDomain, nil)

	s.NoError(s.service.DeleteAsset(s.GetContext(), created.ID))

	_, err := s.service.GetAsset(s.GetContext(), created.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}
