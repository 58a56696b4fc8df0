package task

import (
	"strings"
	"time"

	ierr "github.com/agencyhub/agencyhub/internal/errors"
	"github.com/agencyhub/agencyhub/internal/types"
)

// Task is an actionable work item. Tasks can stand alone, belong to a
// project, or belong directly to a client. Tasks seeded from a product's
// predefined templates during quote approval carry SourceProductID and
// TemplateIndex so reruns can detect work that already exists.
type Task struct {
	// ID is the unique identifier for the task
	ID string `db:"id" json:"id"`

	// ProjectID references the owning project, if any
	ProjectID *string `db:"project_id" json:"project_id,omitempty"`

	// ClientID references the client the task is for, if any
	ClientID *string `db:"client_id" json:"client_id,omitempty"`

	// Title is the short summary of the work
	Title string `db:"title" json:"title"`

	// Description describes the work in detail
	Description string `db:"description" json:"description"`

	// TaskStatus is the workflow state of the task
	TaskStatus types.TaskStatus `db:"task_status" json:"task_status"`

	// Priority ranks the task
	Priority types.Priority `db:"priority" json:"priority"`

	// AssignedTo is the user responsible for the task
	AssignedTo string `db:"assigned_to" json:"assigned_to"`

	// DueDate is when the task should be done
	DueDate *time.Time `db:"due_date" json:"due_date,omitempty"`

	// EstimatedHours is the planned effort
	EstimatedHours float64 `db:"estimated_hours" json:"estimated_hours"`

	// ActualHours is the logged effort
	ActualHours float64 `db:"actual_hours" json:"actual_hours"`

	// Tags are free-form labels
	Tags types.Tags `db:"tags" json:"tags"`

	// SourceProductID is set when the task was seeded from a product template
	SourceProductID *string `db:"source_product_id" json:"source_product_id,omitempty"`

	// TemplateIndex is the position of the originating template within the
	// product's predefined task list
	TemplateIndex *int `db:"template_index" json:"template_index,omitempty"`

	types.BaseModel
}

// Validate checks the invariants that must hold before persisting
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return ierr.NewError("task title is required").
			WithHint("Task title must not be empty").
			Mark(ierr.ErrValidation)
	}
	if err := t.TaskStatus.Validate(); err != nil {
		return err
	}
	if err := t.Priority.Validate(); err != nil {
		return err
	}
	if t.EstimatedHours < 0 || t.ActualHours < 0 {
		return ierr.NewError("task hours must not be negative").
			WithHint("Estimated and actual hours must be zero or positive").
			Mark(ierr.ErrValidation)
	}
	return nil
}
