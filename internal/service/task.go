package service

import (
	"context"

	"github.com/agencyhub/agencyhub/internal/api/dto"
	"github.com/agencyhub/agencyhub/internal/domain/task"
	ierr "github.com/agencyhub/agencyhub/internal/errors"
	"github.com/agencyhub/agencyhub/internal/types"
	"github.com/samber/lo"
)

// TaskService handles work item operations
type TaskService interface {
	CreateTask(ctx context.Context, req dto.CreateTaskRequest) (*dto.TaskResponse, error)
	GetTask(ctx context.Context, id string) (*dto.TaskResponse, error)
	ListTasks(ctx context.Context, filter *types.TaskFilter) (*dto.ListTasksResponse, error)
	UpdateTask(ctx context.Context, id string, req dto.UpdateTaskRequest) (*dto.TaskResponse, error)
	UpdateTaskStatus(ctx context.Context, id string, req dto.UpdateTaskStatusRequest) (*dto.TaskResponse, error)
	DeleteTask(ctx context.Context, id string) error
}

type taskService struct {
	ServiceParams
}

func NewTaskService(params ServiceParams) TaskService {
	return &taskService{
		ServiceParams: params,
	}
}

func (s *taskService) CreateTask(ctx context.Context, req dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if req.ProjectID != nil {
		if _, err := s.ProjectRepo.Get(ctx, *req.ProjectID); err != nil {
			return nil, err
		}
	}
	if req.ClientID != nil {
		if _, err := s.ClientRepo.Get(ctx, *req.ClientID); err != nil {
			return nil, err
		}
	}

	t := req.ToTask(ctx)
	if err := t.Validate(); err != nil {
		return nil, err
	}

	if err := s.TaskRepo.Create(ctx, t); err != nil {
		return nil, err
	}

	return &dto.TaskResponse{Task: t}, nil
}

func (s *taskService) GetTask(ctx context.Context, id string) (*dto.TaskResponse, error) {
	if id == "" {
		return nil, ierr.NewError("task id is required").
			WithHint("Task ID is required").
			Mark(ierr.ErrValidation)
	}

	t, err := s.TaskRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return &dto.TaskResponse{Task: t}, nil
}

func (s *taskService) ListTasks(ctx context.Context, filter *types.TaskFilter) (*dto.ListTasksResponse, error) {
	if filter == nil {
		filter = types.NewTaskFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	tasks, err := s.TaskRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	count, err := s.TaskRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := lo.Map(tasks, func(t *task.Task, _ int) *dto.TaskResponse {
		return &dto.TaskResponse{Task: t}
	})

	resp := types.NewListResponse(items, count, filter.GetLimit(), filter.GetOffset())
	return &resp, nil
}

func (s *taskService) UpdateTask(ctx context.Context, id string, req dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	t, err := s.TaskRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.ProjectID != nil {
		if _, err := s.ProjectRepo.Get(ctx, *req.ProjectID); err != nil {
			return nil, err
		}
		t.ProjectID = req.ProjectID
	}
	if req.ClientID != nil {
		if _, err := s.ClientRepo.Get(ctx, *req.ClientID); err != nil {
			return nil, err
		}
		t.ClientID = req.ClientID
	}
	if req.Title != nil {
		t.Title = *req.Title
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.Priority != nil {
		t.Priority = *req.Priority
	}
	if req.AssignedTo != nil {
		t.AssignedTo = *req.AssignedTo
	}
	if req.DueDate != nil {
		t.DueDate = req.DueDate
	}
	if req.EstimatedHours != nil {
		t.EstimatedHours = *req.EstimatedHours
	}
	if req.ActualHours != nil {
		t.ActualHours = *req.ActualHours
	}
	if req.Tags != nil {
		t.Tags = types.Tags(req.Tags)
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}

	if err := s.TaskRepo.Update(ctx, t); err != nil {
		return nil, err
	}

	return &dto.TaskResponse{Task: t}, nil
}

// UpdateTaskStatus moves the task through its workflow; transitions outside
// the allowed graph are rejected
func (s *taskService) UpdateTaskStatus(ctx context.Context, id string, req dto.UpdateTaskStatusRequest) (*dto.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	t, err := s.TaskRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.TaskStatus == t.TaskStatus {
		return &dto.TaskResponse{Task: t}, nil
	}

	if !t.TaskStatus.CanTransitionTo(req.TaskStatus) {
		return nil, ierr.NewError("invalid task status transition").
			WithHint("The task cannot move to the requested status").
			WithReportableDetails(map[string]any{
				"from": t.TaskStatus,
				"to":   req.TaskStatus,
			}).
			Mark(ierr.ErrConflict)
	}

	t.TaskStatus = req.TaskStatus
	if err := s.TaskRepo.Update(ctx, t); err != nil {
		return nil, err
	}

	return &dto.TaskResponse{Task: t}, nil
}

func (s *taskService) DeleteTask(ctx context.Context, id string) error {
	if id == "" {
		return ierr.NewError("task id is required").
			WithHint("Task ID is required").
			Mark(ierr.ErrValidation)
	}

	if _, err := s.TaskRepo.Get(ctx, id); err != nil {
		return err
	}

	return s.TaskRepo.Delete(ctx, id)
}
