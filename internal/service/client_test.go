package service

import (
	"testing"

	"github.com/agencyhub/agencyhub/internal/api/dto"
	ierr "github.com/agencyhub/agencyhub/internal/errors"
	"github.com/agencyhub/agencyhub/internal/testutil"
	"github.com/agencyhub/agencyhub/internal/types"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
)

type ClientServiceSuite struct {
	testutil.BaseServiceTestSuite
	service ClientService
}

func TestClientService(t *testing.T) {
	suite.Run(t, new(ClientServiceSuite))
}

func (s *ClientServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewClientService(ServiceParams{
		Logger:     s.GetLogger(),
		Config:     s.GetConfig(),
		DB:         s.GetDB(),
		Cache:      s.GetCache(),
		ClientRepo: s.GetStores().ClientRepo,
	})
}

func (s *ClientServiceSuite) createClient(name, industry string) *dto.ClientResponse {
	resp, err := s.service.CreateClient(s.GetContext(), dto.CreateClientRequest{
		Name:        name,
		ContactName: "Noa Levi",
		Email:       "noa@acme.example",
		Industry:    industry,
		CustomFields: map[string]string{
			"billing_ref": "B-102",
		},
	})
	s.Require().NoError(err)
	return resp
}

func (s *ClientServiceSuite) TestCreateClient() {
	resp := s.createClient("Acme Retail", "retail")
	s.NotEmpty(resp.ID)
	s.Equal(types.ClientStatusActive, resp.ClientStatus)
	s.Equal("B-102", resp.CustomFields["billing_ref"])
}

func (s *ClientServiceSuite) TestCreateClientWithoutName() {
	_, err := s.service.CreateClient(s.GetContext(), dto.CreateClientRequest{
		Email: "nameless@acme.example",
	})
	s.Error(err)
}

func (s *ClientServiceSuite) TestGetClientReadsThroughCache() {
	created := s.createClient("Acme Retail", "retail")

	// Prime the cache
	got, err := s.service.GetClient(s.GetContext(), created.ID)
	s.NoError(err)
	s.Equal("Acme Retail", got.Name)

	// A direct repository write is invisible until the service invalidates
	raw, err := s.GetStores().ClientRepo.Get(s.GetContext(), created.ID)
	s.NoError(err)
	raw.Name = "Renamed Behind The Cache"
	s.NoError(s.GetStores().ClientRepo.Update(s.GetContext(), raw))

	got, err = s.service.GetClient(s.GetContext(), created.ID)
	s.NoError(err)
	s.Equal("Acme Retail", got.Name)

	// A service-level update invalidates and the new name shows up
	_, err = s.service.UpdateClient(s.GetContext(), created.ID, dto.UpdateClientRequest{
		Notes: lo.ToPtr("vip"),
	})
	s.NoError(err)

	got, err = s.service.GetClient(s.GetContext(), created.ID)
	s.NoError(err)
	s.Equal("Renamed Behind The Cache", got.Name)
}

func (s *ClientServiceSuite) TestListClientsFilters() {
	s.createClient("Acme Retail", "retail")
	s.createClient("Bolt Logistics", "logistics")
	s.createClient("Cargo Retail", "retail")

	filter := types.NewClientFilter()
	filter.Industry = "retail"

	resp, err := s.service.ListClients(s.GetContext(), filter)
	s.NoError(err)
	s.Len(resp.Items, 2)
	s.Equal(2, resp.Pagination.Total)

	filter = types.NewClientFilter()
	filter.Search = "bolt"

	resp, err = s.service.ListClients(s.GetContext(), filter)
	s.NoError(err)
	s.Len(resp.Items, 1)
	s.Equal("Bolt Logistics", resp.Items[0].Name)
}

func (s *ClientServiceSuite) TestUpdateClientStatus() {
	created := s.createClient("Acme Retail", "retail")

	updated, err := s.service.UpdateClient(s.GetContext(), created.ID, dto.UpdateClientRequest{
		ClientStatus: lo.ToPtr(types.ClientStatusInactive),
	})
	s.NoError(err)
	s.Equal(types.ClientStatusInactive, updated.ClientStatus)
}

func (s *ClientServiceSuite) TestDeleteClient() {
	created := s.createClient("Acme Retail", "retail")

	s.NoError(s.service.DeleteClient(s.GetContext(), created.ID))

	_, err := s.service.GetClient(s.GetContext(), created.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}
