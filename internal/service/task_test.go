package service

import (
	"testing"

	"github.com/agencyhub/agencyhub/internal/api/dto"
	"github.com/agencyhub/agencyhub/internal/domain/client"
	"github.com/agencyhub/agencyhub/internal/domain/project"
	ierr "github.com/agencyhub/agencyhub/internal/errors"
	"github.com/agencyhub/agencyhub/internal/testutil"
	"github.com/agencyhub/agencyhub/internal/types"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
)

type TaskServiceSuite struct {
	testutil.BaseServiceTestSuite
	service  TaskService
	testData struct {
		client  *client.Client
		project *project.Project
	}
}

func TestTaskService(t *testing.T) {
	suite.Run(t, new(TaskServiceSuite))
}

func (s *TaskServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewTaskService(ServiceParams{
		Logger:      s.GetLogger(),
		Config:      s.GetConfig(),
		DB:          s.GetDB(),
		Cache:       s.GetCache(),
		TaskRepo:    s.GetStores().TaskRepo,
		ProjectRepo: s.GetStores().ProjectRepo,
		ClientRepo:  s.GetStores().ClientRepo,
	})
	s.setupTestData()
}

func (s *TaskServiceSuite) setupTestData() {
	s.testData.client = &client.Client{
		ID:           "client_1",
		Name:         "Acme Retail",
		ClientStatus: types.ClientStatusActive,
		BaseModel:    types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().ClientRepo.Create(s.GetContext(), s.testData.client))

	s.testData.project = &project.Project{
		ID:            "proj_1",
		ClientID:      s.testData.client.ID,
		Name:          "Website Redesign",
		ProjectStatus: types.ProjectStatusPlanning,
		Priority:      types.PriorityMedium,
		BaseModel:     types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().ProjectRepo.Create(s.GetContext(), s.testData.project))
}

func (s *TaskServiceSuite) TestCreateTask() {
	resp, err := s.service.CreateTask(s.GetContext(), dto.CreateTaskRequest{
		ProjectID: lo.ToPtr(s.testData.project.ID),
		Title:     "Write brief",
		Tags:      []string{"content"},
	})
	s.NoError(err)
	s.Equal(types.TaskStatusNew, resp.TaskStatus)
	s.Equal(types.PriorityMedium, resp.Priority)
	s.Equal(s.testData.project.ID, *resp.ProjectID)
}

func (s *TaskServiceSuite) TestCreateTaskUnknownProject() {
	_, err := s.service.CreateTask(s.GetContext(), dto.CreateTaskRequest{
		ProjectID: lo.ToPtr("proj_missing"),
		Title:     "Orphan",
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *TaskServiceSuite) TestCreateStandaloneTask() {
	resp, err := s.service.CreateTask(s.GetContext(), dto.CreateTaskRequest{
		Title: "Call the accountant",
	})
	s.NoError(err)
	s.Nil(resp.ProjectID)
	s.Nil(resp.ClientID)
}

func (s *TaskServiceSuite) TestUpdateTaskStatusWorkflow() {
	created, err := s.service.CreateTask(s.GetContext(), dto.CreateTaskRequest{
		Title: "Build homepage",
	})
	s.NoError(err)

	// A new task cannot jump straight to completed
	_, err = s.service.UpdateTaskStatus(s.GetContext(), created.ID, dto.UpdateTaskStatusRequest{
		TaskStatus: types.TaskStatusCompleted,
	})
	s.Error(err)
	s.True(ierr.IsConflict(err))

	inProgress, err := s.service.UpdateTaskStatus(s.GetContext(), created.ID, dto.UpdateTaskStatusRequest{
		TaskStatus: types.TaskStatusInProgress,
	})
	s.NoError(err)
	s.Equal(types.TaskStatusInProgress, inProgress.TaskStatus)

	completed, err := s.service.UpdateTaskStatus(s.GetContext(), created.ID, dto.UpdateTaskStatusRequest{
		TaskStatus: types.TaskStatusCompleted,
	})
	s.NoError(err)
	s.Equal(types.TaskStatusCompleted, completed.TaskStatus)

	// Completed is terminal
	_, err = s.service.UpdateTaskStatus(s.GetContext(), created.ID, dto.UpdateTaskStatusRequest{
		TaskStatus: types.TaskStatusInProgress,
	})
	s.Error(err)
	s.True(ierr.IsConflict(err))
}

func (s *TaskServiceSuite) TestUpdateTaskStatusSameStatusIsNoop() {
	created, err := s.service.CreateTask(s.GetContext(), dto.CreateTaskRequest{
		Title: "Idempotent",
	})
	s.NoError(err)

	resp, err := s.service.UpdateTaskStatus(s.GetContext(), created.ID, dto.UpdateTaskStatusRequest{
		TaskStatus: types.TaskStatusNew,
	})
	s.NoError(err)
	s.Equal(types.TaskStatusNew, resp.TaskStatus)
}

func (s *TaskServiceSuite) TestCancelTask() {
	created, err := s.service.CreateTask(s.GetContext(), dto.CreateTaskRequest{
		Title: "Doomed",
	})
	s.NoError(err)

	cancelled, err := s.service.UpdateTaskStatus(s.GetContext(), created.ID, dto.UpdateTaskStatusRequest{
		TaskStatus: types.TaskStatusCancelled,
	})
	s.NoError(err)
	s.Equal(types.TaskStatusCancelled, cancelled.TaskStatus)
}

func (s *TaskServiceSuite) TestUpdateTaskHours() {
	created, err := s.service.CreateTask(s.GetContext(), dto.CreateTaskRequest{
		Title:          "Estimate me",
		EstimatedHours: 8,
	})
	s.NoError(err)

	updated, err := s.service.UpdateTask(s.GetContext(), created.ID, dto.UpdateTaskRequest{
		ActualHours: lo.ToPtr(9.5),
	})
	s.NoError(err)
	s.Equal(8.0, updated.EstimatedHours)
	s.Equal(9.5, updated.ActualHours)
}

func (s *TaskServiceSuite) TestListTasksByProject() {
	for _, title := range []string{"One", "Two"} {
		_, err := s.service.CreateTask(s.GetContext(), dto.CreateTaskRequest{
			ProjectID: lo.ToPtr(s.testData.project.ID),
			Title:     title,
		})
		s.NoError(err)
	}
	_, err := s.service.CreateTask(s.GetContext(), dto.CreateTaskRequest{
		Title: "Standalone",
	})
	s.NoError(err)

	filter := types.NewTaskFilter()
	filter.ProjectID = s.testData.project.ID

	resp, err := s.service.ListTasks(s.GetContext(), filter)
	s.NoError(err)
	s.Equal(2, resp.Pagination.Total)
	s.Len(resp.Items, 2)
}
