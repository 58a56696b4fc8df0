package types

import (
	ierr "github.com/agencyhub/agencyhub/internal/errors"
	"github.com/samber/lo"
)

// TaskStatus represents the state of a unit of work
type TaskStatus string

const (
	TaskStatusNew        TaskStatus = "new"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusCancelled  TaskStatus = "cancelled"
)

func (s TaskStatus) String() string {
	return string(s)
}

func (s TaskStatus) Validate() error {
	allowed := []TaskStatus{
		TaskStatusNew,
		TaskStatusInProgress,
		TaskStatusCompleted,
		TaskStatusCancelled,
	}
	if !lo.Contains(allowed, s) {
		return ierr.NewError("invalid task status").
			WithHint("Please provide a valid task status").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// taskStatusTransitions is the allowed transition graph for tasks.
// Completed and cancelled are terminal.
var taskStatusTransitions = map[TaskStatus][]TaskStatus{
	TaskStatusNew: {
		TaskStatusInProgress,
		TaskStatusCancelled,
	},
	TaskStatusInProgress: {
		TaskStatusCompleted,
		TaskStatusCancelled,
	},
}

// CanTransitionTo reports whether moving from s to target is allowed
func (s TaskStatus) CanTransitionTo(target TaskStatus) bool {
	return lo.Contains(taskStatusTransitions[s], target)
}

// TaskFilter represents filters for task queries
type TaskFilter struct {
	*QueryFilter
	ProjectID       string      `json:"project_id,omitempty" form:"project_id"`
	ClientID        string      `json:"client_id,omitempty" form:"client_id"`
	TaskStatus      *TaskStatus `json:"task_status,omitempty" form:"task_status"`
	Priority        *Priority   `json:"priority,omitempty" form:"priority"`
	AssignedTo      string      `json:"assigned_to,omitempty" form:"assigned_to"`
	SourceProductID string      `json:"source_product_id,omitempty" form:"source_product_id"`
}

// NewTaskFilter creates a new TaskFilter with default values
func NewTaskFilter() *TaskFilter {
	return &TaskFilter{
		QueryFilter: NewDefaultQueryFilter(),
	}
}

// NewNoLimitTaskFilter creates a new TaskFilter with no pagination limits
func NewNoLimitTaskFilter() *TaskFilter {
	return &TaskFilter{
		QueryFilter: NewNoLimitQueryFilter(),
	}
}

// Validate validates the task filter
func (f *TaskFilter) Validate() error {
	if err := f.QueryFilter.Validate(); err != nil {
		return err
	}
	if f.TaskStatus != nil {
		if err := f.TaskStatus.Validate(); err != nil {
			return err
		}
	}
	if f.Priority != nil {
		if err := f.Priority.Validate(); err != nil {
			return err
		}
	}
	return nil
}
