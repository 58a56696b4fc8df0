package service

import (
	"testing"

	"github.com/agencyhub/agencyhub/internal/api/dto"
	"github.com/agencyhub/agencyhub/internal/domain/client"
	ierr "github.com/agencyhub/agencyhub/internal/errors"
	"github.com/agencyhub/agencyhub/internal/testutil"
	"github.com/agencyhub/agencyhub/internal/types"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
)

type ProjectServiceSuite struct {
	testutil.BaseServiceTestSuite
	service  ProjectService
	testData struct {
		client *client.Client
	}
}

func TestProjectService(t *testing.T) {
	suite.Run(t, new(ProjectServiceSuite))
}

func (s *ProjectServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewProjectService(ServiceParams{
		Logger:      s.GetLogger(),
		Config:      s.GetConfig(),
		DB:          s.GetDB(),
		Cache:       s.GetCache(),
		ProjectRepo: s.GetStores().ProjectRepo,
		ClientRepo:  s.GetStores().ClientRepo,
	})

	s.testData.client = &client.Client{
		ID:           "client_1",
		Name:         "Acme Retail",
		ClientStatus: types.ClientStatusActive,
		BaseModel:    types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().ClientRepo.Create(s.GetContext(), s.testData.client))
}

func (s *ProjectServiceSuite) TestCreateProject() {
	resp, err := s.service.CreateProject(s.GetContext(), dto.CreateProjectRequest{
		ClientID: s.testData.client.ID,
		Name:     "Website relaunch",
		Budget:   types.Money(1200000),
	})
	s.NoError(err)
	s.Equal(types.ProjectStatusPlanning, resp.ProjectStatus)
	s.Equal(types.Money(1200000), resp.Budget)
}

func (s *ProjectServiceSuite) TestCreateProjectUnknownClient() {
	_, err := s.service.CreateProject(s.GetContext(), dto.CreateProjectRequest{
		ClientID: "client_missing",
		Name:     "Orphan project",
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *ProjectServiceSuite) TestListProjectsByClient() {
	for _, name := range []string{"Website relaunch", "SEO retainer"} {
		_, err := s.service.CreateProject(s.GetContext(), dto.CreateProjectRequest{
			ClientID: s.testData.client.ID,
			Name:     name,
		})
		s.Require().NoError(err)
	}

	filter := types.NewProjectFilter()
	filter.ClientID = s.testData.client.ID

	resp, err := s.service.ListProjects(s.GetContext(), filter)
	s.NoError(err)
	s.Len(resp.Items, 2)
	s.Equal(2, resp.Pagination.Total)
}

func (s *ProjectServiceSuite) TestUpdateProjectStatus() {
	created, err := s.service.CreateProject(s.GetContext(), dto.CreateProjectRequest{
		ClientID: s.testData.client.ID,
		Name:     "Website relaunch",
	})
	s.Require().NoError(err)

	updated, err := s.service.UpdateProject(s.GetContext(), created.ID, dto.UpdateProjectRequest{
		ProjectStatus: lo.ToPtr(types.ProjectStatusInProgress),
	})
	s.NoError(err)
	s.Equal(types.ProjectStatusInProgress, updated.ProjectStatus)
}

func (s *ProjectServiceSuite) TestDeleteProject() {
	created, err := s.service.CreateProject(s.GetContext(), dto.CreateProjectRequest{
		ClientID: s.testData.client.ID,
		Name:     "Website relaunch",
	})
	s.Require().NoError(err)

	s.NoError(s.service.DeleteProject(s.GetContext(), created.ID))

	_, err = s.service.GetProject(s.GetContext(), created.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}
