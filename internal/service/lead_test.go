package service

import (
	"strings"
	"testing"

	"github.com/agencyhub/agencyhub/internal/api/dto"
	"github.com/agencyhub/agencyhub/internal/domain/lead"
	ierr "github.com/agencyhub/agencyhub/internal/errors"
	"github.com/agencyhub/agencyhub/internal/testutil"
	"github.com/agencyhub/agencyhub/internal/types"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
)

type LeadServiceSuite struct {
	testutil.BaseServiceTestSuite
	service LeadService
}

func TestLeadService(t *testing.T) {
	suite.Run(t, new(LeadServiceSuite))
}

func (s *LeadServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewLeadService(ServiceParams{
		Logger:     s.GetLogger(),
		Config:     s.GetConfig(),
		DB:         s.GetDB(),
		Cache:      s.GetCache(),
		LeadRepo:   s.GetStores().LeadRepo,
		ClientRepo: s.GetStores().ClientRepo,
	})
}

func (s *LeadServiceSuite) createLead(req dto.CreateLeadRequest) *lead.Lead {
	resp, err := s.service.CreateLead(s.GetContext(), req)
	s.Require().NoError(err)
	return resp.Lead
}

func (s *LeadServiceSuite) TestCreateLead() {
	l := s.createLead(dto.CreateLeadRequest{
		Platform:    "facebook",
		ContactName: "Dana Cohen",
		Email:       "dana@example.com",
		Value:       types.Money(150000),
	})

	s.Equal(types.LeadStatusNew, l.LeadStatus)
	s.Equal(types.PriorityMedium, l.Priority)
	s.Equal(types.Money(150000), l.Value)
}

func (s *LeadServiceSuite) TestCreateLeadWithoutContactInfo() {
	_, err := s.service.CreateLead(s.GetContext(), dto.CreateLeadRequest{
		Platform: "google",
		Notes:    "no way to reach this one",
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *LeadServiceSuite) TestIngestLead() {
	resp, err := s.service.IngestLead(s.GetContext(), "facebook", dto.IngestLeadRequest{
		ExternalID:  "fb-lead-9",
		ContactName: "Avi Mizrahi",
		Email:       "avi@example.com",
		Fields:      map[string]string{"campaign": "summer"},
	})
	s.NoError(err)
	s.Equal("facebook", resp.Platform)
	s.Equal("fb-lead-9", resp.ExternalID)
	s.Equal(types.LeadStatusNew, resp.LeadStatus)
	s.Equal("summer", resp.Fields["campaign"])
}

func (s *LeadServiceSuite) TestIngestLeadWithoutContactInfo() {
	_, err := s.service.IngestLead(s.GetContext(), "facebook", dto.IngestLeadRequest{
		ExternalID: "fb-lead-10",
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *LeadServiceSuite) TestUpdateLeadStatusTransitions() {
	l := s.createLead(dto.CreateLeadRequest{ContactName: "Dana Cohen"})

	// Forward moves, including stage skips, are allowed
	resp, err := s.service.UpdateLead(s.GetContext(), l.ID, dto.UpdateLeadRequest{
		LeadStatus: lo.ToPtr(types.LeadStatusQualified),
	})
	s.NoError(err)
	s.Equal(types.LeadStatusQualified, resp.LeadStatus)

	// Moving backwards is not
	_, err = s.service.UpdateLead(s.GetContext(), l.ID, dto.UpdateLeadRequest{
		LeadStatus: lo.ToPtr(types.LeadStatusContacted),
	})
	s.Error(err)
	s.True(ierr.IsConflict(err))

	// Losing a lead is allowed from any non-terminal stage, then it is frozen
	resp, err = s.service.UpdateLead(s.GetContext(), l.ID, dto.UpdateLeadRequest{
		LeadStatus: lo.ToPtr(types.LeadStatusLost),
	})
	s.NoError(err)
	s.Equal(types.LeadStatusLost, resp.LeadStatus)

	_, err = s.service.UpdateLead(s.GetContext(), l.ID, dto.UpdateLeadRequest{
		LeadStatus: lo.ToPtr(types.LeadStatusNew),
	})
	s.Error(err)
	s.True(ierr.IsConflict(err))
}

func (s *LeadServiceSuite) TestConvertLead() {
	l := s.createLead(dto.CreateLeadRequest{
		ContactName: "Dana Cohen",
		Email:       "dana@example.com",
		Phone:       "050-1234567",
		Notes:       "met at the conference",
		Value:       types.Money(200000),
	})

	_, err := s.service.UpdateLead(s.GetContext(), l.ID, dto.UpdateLeadRequest{
		LeadStatus: lo.ToPtr(types.LeadStatusQualified),
	})
	s.NoError(err)

	resp, err := s.service.ConvertLead(s.GetContext(), l.ID, dto.ConvertLeadRequest{
		Industry: "retail",
	})
	s.NoError(err)

	s.Equal(types.LeadStatusWon, resp.Lead.LeadStatus)
	s.Require().NotNil(resp.Lead.ClientID)
	s.Equal(resp.Client.ID, *resp.Lead.ClientID)

	// Client carries the lead's contact details; name falls back to the
	// contact name when no override is given
	s.Equal("Dana Cohen", resp.Client.Name)
	s.Equal("dana@example.com", resp.Client.Email)
	s.Equal("050-1234567", resp.Client.Phone)
	s.Equal("retail", resp.Client.Industry)
	s.Equal("met at the conference", resp.Client.Notes)
	s.Equal(types.ClientStatusActive, resp.Client.ClientStatus)

	// The lead row stays queryable after conversion
	got, err := s.service.GetLead(s.GetContext(), l.ID)
	s.NoError(err)
	s.Equal(types.LeadStatusWon, got.LeadStatus)
}

func (s *LeadServiceSuite) TestConvertLeadTwiceConflicts() {
	l := s.createLead(dto.CreateLeadRequest{ContactName: "Dana Cohen"})

	_, err := s.service.ConvertLead(s.GetContext(), l.ID, dto.ConvertLeadRequest{})
	s.NoError(err)

	_, err = s.service.ConvertLead(s.GetContext(), l.ID, dto.ConvertLeadRequest{})
	s.Error(err)
	s.True(ierr.IsConflict(err))

	// Exactly one client was created
	count, err := s.GetStores().ClientRepo.Count(s.GetContext(), types.NewClientFilter())
	s.NoError(err)
	s.Equal(1, count)
}

func (s *LeadServiceSuite) TestConvertLostLeadConflicts() {
	l := s.createLead(dto.CreateLeadRequest{ContactName: "Dana Cohen"})

	_, err := s.service.UpdateLead(s.GetContext(), l.ID, dto.UpdateLeadRequest{
		LeadStatus: lo.ToPtr(types.LeadStatusLost),
	})
	s.NoError(err)

	_, err = s.service.ConvertLead(s.GetContext(), l.ID, dto.ConvertLeadRequest{})
	s.Error(err)
	s.True(ierr.IsConflict(err))
}

func (s *LeadServiceSuite) TestConvertLeadWithNameOverride() {
	l := s.createLead(dto.CreateLeadRequest{
		Email: "info@nameless.example",
	})

	resp, err := s.service.ConvertLead(s.GetContext(), l.ID, dto.ConvertLeadRequest{
		ClientName: "Nameless Ltd",
	})
	s.NoError(err)
	s.Equal("Nameless Ltd", resp.Client.Name)
}

func (s *LeadServiceSuite) TestConvertLeadRejectsOverlongOverride() {
	l := s.createLead(dto.CreateLeadRequest{ContactName: "Dana Cohen"})

	_, err := s.service.ConvertLead(s.GetContext(), l.ID, dto.ConvertLeadRequest{
		ClientName: strings.Repeat("x", 300),
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))

	// The lead is untouched and no client was created
	got, err := s.service.GetLead(s.GetContext(), l.ID)
	s.NoError(err)
	s.Equal(types.LeadStatusNew, got.LeadStatus)
	count, err := s.GetStores().ClientRepo.Count(s.GetContext(), types.NewClientFilter())
	s.NoError(err)
	s.Zero(count)
}

func (s *LeadServiceSuite) TestConvertLeadWithoutAnyName() {
	l := s.createLead(dto.CreateLeadRequest{
		Email: "info@nameless.example",
	})

	_, err := s.service.ConvertLead(s.GetContext(), l.ID, dto.ConvertLeadRequest{})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *LeadServiceSuite) TestListLeadsFiltersCombine() {
	s.createLead(dto.CreateLeadRequest{ContactName: "Dana Cohen", Platform: "facebook", Priority: types.PriorityHigh})
	s.createLead(dto.CreateLeadRequest{ContactName: "Avi Mizrahi", Platform: "facebook"})
	s.createLead(dto.CreateLeadRequest{ContactName: "Tamar Peretz", Platform: "google", Priority: types.PriorityHigh})

	filter := types.NewLeadFilter()
	filter.Platform = "facebook"
	filter.Priority = lo.ToPtr(types.PriorityHigh)

	resp, err := s.service.ListLeads(s.GetContext(), filter)
	s.NoError(err)
	s.Equal(1, resp.Pagination.Total)
	s.Len(resp.Items, 1)
	s.Equal("Dana Cohen", resp.Items[0].ContactName)
}

func (s *LeadServiceSuite) TestListLeadsSearchIsCaseInsensitive() {
	s.createLead(dto.CreateLeadRequest{ContactName: "Dana Cohen", Email: "dana@example.com"})
	s.createLead(dto.CreateLeadRequest{ContactName: "Avi Mizrahi"})

	filter := types.NewLeadFilter()
	filter.Search = "DANA"

	resp, err := s.service.ListLeads(s.GetContext(), filter)
	s.NoError(err)
	s.Len(resp.Items, 1)
	s.Equal("Dana Cohen", resp.Items[0].ContactName)
}

func (s *LeadServiceSuite) TestGetLeadStats() {
	s.createLead(dto.CreateLeadRequest{ContactName: "A", Value: types.Money(10000)})
	s.createLead(dto.CreateLeadRequest{ContactName: "B", Value: types.Money(25000)})
	l := s.createLead(dto.CreateLeadRequest{ContactName: "C", Value: types.Money(5000)})

	_, err := s.service.UpdateLead(s.GetContext(), l.ID, dto.UpdateLeadRequest{
		LeadStatus: lo.ToPtr(types.LeadStatusQualified),
	})
	s.NoError(err)

	stats, err := s.service.GetLeadStats(s.GetContext())
	s.NoError(err)
	s.Equal(3, stats.Total)
	s.Equal(2, stats.ByStatus[types.LeadStatusNew])
	s.Equal(1, stats.ByStatus[types.LeadStatusQualified])
	s.Equal(types.Money(40000), stats.TotalValue)
}
