package dto

import (
	"context"
	"time"

	"github.com/agencyhub/agencyhub/internal/domain/task"
	"github.com/agencyhub/agencyhub/internal/types"
)

type CreateTaskRequest struct {
	ProjectID      *string          `json:"project_id"`
	ClientID       *string          `json:"client_id"`
	Title          string           `json:"title" validate:"required,max=255"`
	Description    string           `json:"description"`
	Priority       types.Priority   `json:"priority" validate:"omitempty"`
	AssignedTo     string           `json:"assigned_to"`
	DueDate        *time.Time       `json:"due_date"`
	EstimatedHours float64          `json:"estimated_hours" validate:"omitempty,gte=0"`
	Tags           []string         `json:"tags,omitempty"`
	Status         types.TaskStatus `json:"task_status" validate:"omitempty"`
}

type UpdateTaskRequest struct {
	ProjectID      *string         `json:"project_id"`
	ClientID       *string         `json:"client_id"`
	Title          *string         `json:"title" validate:"omitempty,max=255"`
	Description    *string         `json:"description"`
	Priority       *types.Priority `json:"priority"`
	AssignedTo     *string         `json:"assigned_to"`
	DueDate        *time.Time      `json:"due_date"`
	EstimatedHours *float64        `json:"estimated_hours" validate:"omitempty,gte=0"`
	ActualHours    *float64        `json:"actual_hours" validate:"omitempty,gte=0"`
	Tags           []string        `json:"tags,omitempty"`
}

// UpdateTaskStatusRequest moves a task through its workflow
type UpdateTaskStatusRequest struct {
	TaskStatus types.TaskStatus `json:"task_status" validate:"required"`
}

type TaskResponse struct {
	*task.Task
}

// ListTasksResponse represents the response for listing tasks
type ListTasksResponse = types.ListResponse[*TaskResponse]

func (r *CreateTaskRequest) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}
	if r.Priority != "" {
		if err := r.Priority.Validate(); err != nil {
			return err
		}
	}
	if r.Status != "" {
		return r.Status.Validate()
	}
	return nil
}

func (r *CreateTaskRequest) ToTask(ctx context.Context) *task.Task {
	priority := r.Priority
	if priority == "" {
		priority = types.PriorityMedium
	}
	status := r.Status
	if status == "" {
		status = types.TaskStatusNew
	}
	return &task.Task{
		ID:             types.GenerateUUIDWithPrefix(types.UUID_PREFIX_TASK),
		ProjectID:      r.ProjectID,
		ClientID:       r.ClientID,
		Title:          r.Title,
		Description:    r.Description,
		TaskStatus:     status,
		Priority:       priority,
		AssignedTo:     r.AssignedTo,
		DueDate:        r.DueDate,
		EstimatedHours: r.EstimatedHours,
		Tags:           types.Tags(r.Tags),
		BaseModel:      types.GetDefaultBaseModel(ctx),
	}
}

func (r *UpdateTaskRequest) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}
	if r.Priority != nil {
		return r.Priority.Validate()
	}
	return nil
}

func (r *UpdateTaskStatusRequest) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}
	return r.TaskStatus.Validate()
}
