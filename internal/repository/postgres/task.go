package postgres

import (
	"context"
	"time"

	"github.com/agencyhub/agencyhub/internal/domain/task"
	ierr "github.com/agencyhub/agencyhub/internal/errors"
	"github.com/agencyhub/agencyhub/internal/logger"
	"github.com/agencyhub/agencyhub/internal/postgres"
	"github.com/agencyhub/agencyhub/internal/types"
	"github.com/jmoiron/sqlx"
)

type taskRepository struct {
	db     *postgres.Client
	logger *logger.Logger
}

func NewTaskRepository(db *postgres.Client, logger *logger.Logger) task.Repository {
	return &taskRepository{db: db, logger: logger}
}

const taskInsertQuery = `
	INSERT INTO tasks (
		id, project_id, client_id, title, description, task_status, priority,
		assigned_to, due_date, estimated_hours, actual_hours, tags,
		source_product_id, template_index,
		agency_id, status, created_at, updated_at, created_by, updated_by
	) VALUES (
		:id, :project_id, :client_id, :title, :description, :task_status, :priority,
		:assigned_to, :due_date, :estimated_hours, :actual_hours, :tags,
		:source_product_id, :template_index,
		:agency_id, :status, :created_at, :updated_at, :created_by, :updated_by
	)`

func (r *taskRepository) Create(ctx context.Context, t *task.Task) error {
	r.logger.Debugw("creating task", "task_id", t.ID, "agency_id", t.AgencyID)

	_, err := sqlx.NamedExecContext(ctx, r.db.Querier(ctx), taskInsertQuery, t)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create task").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

// CreateBulk inserts all tasks in one transaction. Used by quote approval,
// which seeds project tasks from product templates.
func (r *taskRepository) CreateBulk(ctx context.Context, tasks []*task.Task) error {
	if len(tasks) == 0 {
		return nil
	}
	return r.db.WithTx(ctx, func(ctx context.Context) error {
		for _, t := range tasks {
			if _, err := sqlx.NamedExecContext(ctx, r.db.Querier(ctx), taskInsertQuery, t); err != nil {
				return ierr.WithError(err).
					WithHint("Failed to create tasks").
					Mark(ierr.ErrDatabase)
			}
		}
		return nil
	})
}

func (r *taskRepository) Get(ctx context.Context, id string) (*task.Task, error) {
	var t task.Task
	rows, err := sqlx.NamedQueryContext(ctx, r.db.Querier(ctx),
		"SELECT * FROM tasks WHERE id = :id AND agency_id = :agency_id AND status != :deleted",
		map[string]interface{}{
			"id":        id,
			"agency_id": types.GetAgencyID(ctx),
			"deleted":   string(types.StatusDeleted),
		})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to get task").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ierr.NewError("task not found").
			WithHint("Task does not exist").
			WithReportableDetails(map[string]any{"task_id": id}).
			Mark(ierr.ErrNotFound)
	}

	if err := rows.StructScan(&t); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to scan task").
			Mark(ierr.ErrDatabase)
	}
	return &t, nil
}

func (r *taskRepository) buildConditions(ctx context.Context, filter *types.TaskFilter, args map[string]interface{}) string {
	query := " WHERE agency_id = :agency_id AND status = :row_status"
	args["agency_id"] = types.GetAgencyID(ctx)
	args["row_status"] = string(filter.GetStatus())

	if filter.ProjectID != "" {
		query += " AND project_id = :project_id"
		args["project_id"] = filter.ProjectID
	}
	if filter.ClientID != "" {
		query += " AND client_id = :client_id"
		args["client_id"] = filter.ClientID
	}
	if filter.TaskStatus != nil {
		query += " AND task_status = :task_status"
		args["task_status"] = string(*filter.TaskStatus)
	}
	if filter.Priority != nil {
		query += " AND priority = :priority"
		args["priority"] = string(*filter.Priority)
	}
	if filter.AssignedTo != "" {
		query += " AND assigned_to = :assigned_to"
		args["assigned_to"] = filter.AssignedTo
	}
	if filter.SourceProductID != "" {
		query += " AND source_product_id = :source_product_id"
		args["source_product_id"] = filter.SourceProductID
	}
	return query
}

func (r *taskRepository) List(ctx context.Context, filter *types.TaskFilter) ([]*task.Task, error) {
	args := map[string]interface{}{}
	query := "SELECT * FROM tasks" + r.buildConditions(ctx, filter, args)
	query += orderClause(filter.GetSort(), filter.GetOrder(), map[string]bool{
		"created_at": true, "title": true, "task_status": true, "priority": true, "due_date": true,
	})
	query = paginate(query, args, filter)

	rows, err := sqlx.NamedQueryContext(ctx, r.db.Querier(ctx), query, args)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list tasks").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var tasks []*task.Task
	for rows.Next() {
		var t task.Task
		if err := rows.StructScan(&t); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to scan task").
				Mark(ierr.ErrDatabase)
		}
		tasks = append(tasks, &t)
	}
	return tasks, nil
}

func (r *taskRepository) Count(ctx context.Context, filter *types.TaskFilter) (int, error) {
	args := map[string]interface{}{}
	query := "SELECT COUNT(*) FROM tasks" + r.buildConditions(ctx, filter, args)

	rows, err := sqlx.NamedQueryContext(ctx, r.db.Querier(ctx), query, args)
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count tasks").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var count int
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			return 0, ierr.WithError(err).
				WithHint("Failed to scan task count").
				Mark(ierr.ErrDatabase)
		}
	}
	return count, nil
}

func (r *taskRepository) Update(ctx context.Context, t *task.Task) error {
	query := `
		UPDATE tasks SET
			project_id = :project_id,
			client_id = :client_id,
			title = :title,
			description = :description,
			task_status = :task_status,
			priority = :priority,
			assigned_to = :assigned_to,
			due_date = :due_date,
			estimated_hours = :estimated_hours,
			actual_hours = :actual_hours,
			tags = :tags,
			updated_at = :updated_at,
			updated_by = :updated_by
		WHERE id = :id AND agency_id = :agency_id`

	r.logger.Debugw("updating task", "task_id", t.ID, "agency_id", t.AgencyID)

	_, err := sqlx.NamedExecContext(ctx, r.db.Querier(ctx), query, t)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update task").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *taskRepository) Delete(ctx context.Context, id string) error {
	query := `
		UPDATE tasks SET
			status = :status,
			updated_at = :updated_at,
			updated_by = :updated_by
		WHERE id = :id AND agency_id = :agency_id`

	r.logger.Debugw("deleting task", "task_id", id, "agency_id", types.GetAgencyID(ctx))

	_, err := sqlx.NamedExecContext(ctx, r.db.Querier(ctx), query, map[string]interface{}{
		"id":         id,
		"agency_id":  types.GetAgencyID(ctx),
		"status":     string(types.StatusDeleted),
		"updated_by": types.GetUserID(ctx),
		"updated_at": time.Now().UTC(),
	})
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete task").
			Mark(ierr.ErrDatabase)
	}
	return nil
}
