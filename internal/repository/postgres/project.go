package postgres

import (
	"context"
	"time"

	"github.com/agencyhub/agencyhub/internal/domain/project"
	ierr "github.com/agencyhub/agencyhub/internal/errors"
	"github.com/agencyhub/agencyhub/internal/logger"
	"github.com/agencyhub/agencyhub/internal/postgres"
	"github.com/agencyhub/agencyhub/internal/types"
	"github.com/jmoiron/sqlx"
)

type projectRepository struct {
	db     *postgres.Client
	logger *logger.Logger
}

func NewProjectRepository(db *postgres.Client, logger *logger.Logger) project.Repository {
	return &projectRepository{db: db, logger: logger}
}

func (r *projectRepository) Create(ctx context.Context, p *project.Project) error {
	query := `
		INSERT INTO projects (
			id, client_id, quote_id, name, description, project_status, priority,
			start_date, end_date, budget, assigned_to,
			agency_id, status, created_at, updated_at, created_by, updated_by
		) VALUES (
			:id, :client_id, :quote_id, :name, :description, :project_status, :priority,
			:start_date, :end_date, :budget, :assigned_to,
			:agency_id, :status, :created_at, :updated_at, :created_by, :updated_by
		)`

	r.logger.Debugw("creating project", "project_id", p.ID, "client_id", p.ClientID, "agency_id", p.AgencyID)

	_, err := sqlx.NamedExecContext(ctx, r.db.Querier(ctx), query, p)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create project").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *projectRepository) Get(ctx context.Context, id string) (*project.Project, error) {
	var p project.Project
	rows, err := sqlx.NamedQueryContext(ctx, r.db.Querier(ctx),
		"SELECT * FROM projects WHERE id = :id AND agency_id = :agency_id AND status != :deleted",
		map[string]interface{}{
			"id":        id,
			"agency_id": types.GetAgencyID(ctx),
			"deleted":   string(types.StatusDeleted),
		})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to get project").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ierr.NewError("project not found").
			WithHint("Project does not exist").
			WithReportableDetails(map[string]any{"project_id": id}).
			Mark(ierr.ErrNotFound)
	}

	if err := rows.StructScan(&p); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to scan project").
			Mark(ierr.ErrDatabase)
	}
	return &p, nil
}

func (r *projectRepository) GetByQuoteID(ctx context.Context, quoteID string) (*project.Project, error) {
	var p project.Project
	rows, err := sqlx.NamedQueryContext(ctx, r.db.Querier(ctx),
		"SELECT * FROM projects WHERE quote_id = :quote_id AND agency_id = :agency_id AND status != :deleted",
		map[string]interface{}{
			"quote_id":  quoteID,
			"agency_id": types.GetAgencyID(ctx),
			"deleted":   string(types.StatusDeleted),
		})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to get project by quote").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ierr.NewError("project not found for quote").
			WithHint("No project has been created from this quote").
			WithReportableDetails(map[string]any{"quote_id": quoteID}).
			Mark(ierr.ErrNotFound)
	}

	if err := rows.StructScan(&p); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to scan project").
			Mark(ierr.ErrDatabase)
	}
	return &p, nil
}

func (r *projectRepository) buildConditions(ctx context.Context, filter *types.ProjectFilter, args map[string]interface{}) string {
	query := " WHERE agency_id = :agency_id AND status = :row_status"
	args["agency_id"] = types.GetAgencyID(ctx)
	args["row_status"] = string(filter.GetStatus())

	if filter.ClientID != "" {
		query += " AND client_id = :client_id"
		args["client_id"] = filter.ClientID
	}
	if filter.ProjectStatus != nil {
		query += " AND project_status = :project_status"
		args["project_status"] = string(*filter.ProjectStatus)
	}
	if filter.Priority != nil {
		query += " AND priority = :priority"
		args["priority"] = string(*filter.Priority)
	}
	if filter.AssignedTo != "" {
		query += " AND assigned_to = :assigned_to"
		args["assigned_to"] = filter.AssignedTo
	}
	return query
}

func (r *projectRepository) List(ctx context.Context, filter *types.ProjectFilter) ([]*project.Project, error) {
	args := map[string]interface{}{}
	query := "SELECT * FROM projects" + r.buildConditions(ctx, filter, args)
	query += orderClause(filter.GetSort(), filter.GetOrder(), map[string]bool{
		"created_at": true, "name": true, "project_status": true, "priority": true, "start_date": true,
	})
	query = paginate(query, args, filter)

	rows, err := sqlx.NamedQueryContext(ctx, r.db.Querier(ctx), query, args)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list projects").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var projects []*project.Project
	for rows.Next() {
		var p project.Project
		if err := rows.StructScan(&p); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to scan project").
				Mark(ierr.ErrDatabase)
		}
		projects = append(projects, &p)
	}
	return projects, nil
}

func (r *projectRepository) Count(ctx context.Context, filter *types.ProjectFilter) (int, error) {
	args := map[string]interface{}{}
	query := "SELECT COUNT(*) FROM projects" + r.buildConditions(ctx, filter, args)

	rows, err := sqlx.NamedQueryContext(ctx, r.db.Querier(ctx), query, args)
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count projects").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var count int
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			return 0, ierr.WithError(err).
				WithHint("Failed to scan project count").
				Mark(ierr.ErrDatabase)
		}
	}
	return count, nil
}

func (r *projectRepository) Update(ctx context.Context, p *project.Project) error {
	query := `
		UPDATE projects SET
			name = :name,
			description = :description,
			project_status = :project_status,
			priority = :priority,
			start_date = :start_date,
			end_date = :end_date,
			budget = :budget,
			assigned_to = :assigned_to,
			updated_at = :updated_at,
			updated_by = :updated_by
		WHERE id = :id AND agency_id = :agency_id`

	r.logger.Debugw("updating project", "project_id", p.ID, "agency_id", p.AgencyID)

	_, err := sqlx.NamedExecContext(ctx, r.db.Querier(ctx), query, p)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update project").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *projectRepository) Delete(ctx context.Context, id string) error {
	query := `
		UPDATE projects SET
			status = :status,
			updated_at = :updated_at,
			updated_by = :updated_by
		WHERE id = :id AND agency_id = :agency_id`

	r.logger.Debugw("deleting project", "project_id", id, "agency_id", types.GetAgencyID(ctx))

	_, err := sqlx.NamedExecContext(ctx, r.db.Querier(ctx), query, map[string]interface{}{
		"id":         id,
		"agency_id":  types.GetAgencyID(ctx),
		"status":     string(types.StatusDeleted),
		"updated_by": types.GetUserID(ctx),
		"updated_at": time.Now().UTC(),
	})
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete project").
			Mark(ierr.ErrDatabase)
	}
	return nil
}
