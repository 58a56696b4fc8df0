package postgres

import (
	"context"
	"time"

	"github.com/agencyhub/agencyhub/internal/domain/lead"
	ierr "github.com/agencyhub/agencyhub/internal/errors"
	"github.com/agencyhub/agencyhub/internal/logger"
	"github.com/agencyhub/agencyhub/internal/postgres"
	"github.com/agencyhub/agencyhub/internal/types"
	"github.com/jmoiron/sqlx"
)

type leadRepository struct {
	db     *postgres.Client
	logger *logger.Logger
}

func NewLeadRepository(db *postgres.Client, logger *logger.Logger) lead.Repository {
	return &leadRepository{db: db, logger: logger}
}

func (r *leadRepository) Create(ctx context.Context, l *lead.Lead) error {
	query := `
		INSERT INTO leads (
			id, platform, external_id, contact_name, email, phone, fields,
			lead_status, priority, value, assigned_to, notes, client_id,
			agency_id, status, created_at, updated_at, created_by, updated_by
		) VALUES (
			:id, :platform, :external_id, :contact_name, :email, :phone, :fields,
			:lead_status, :priority, :value, :assigned_to, :notes, :client_id,
			:agency_id, :status, :created_at, :updated_at, :created_by, :updated_by
		)`

	r.logger.Debugw("creating lead", "lead_id", l.ID, "platform", l.Platform, "agency_id", l.AgencyID)

	_, err := sqlx.NamedExecContext(ctx, r.db.Querier(ctx), query, l)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create lead").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *leadRepository) Get(ctx context.Context, id string) (*lead.Lead, error) {
	var l lead.Lead
	rows, err := sqlx.NamedQueryContext(ctx, r.db.Querier(ctx),
		"SELECT * FROM leads WHERE id = :id AND agency_id = :agency_id AND status != :deleted",
		map[string]interface{}{
			"id":        id,
			"agency_id": types.GetAgencyID(ctx),
			"deleted":   string(types.StatusDeleted),
		})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to get lead").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ierr.NewError("lead not found").
			WithHint("Lead does not exist").
			WithReportableDetails(map[string]any{"lead_id": id}).
			Mark(ierr.ErrNotFound)
	}

	if err := rows.StructScan(&l); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to scan lead").
			Mark(ierr.ErrDatabase)
	}
	return &l, nil
}

func (r *leadRepository) buildConditions(ctx context.Context, filter *types.LeadFilter, args map[string]interface{}) string {
	query := " WHERE agency_id = :agency_id AND status = :row_status"
	args["agency_id"] = types.GetAgencyID(ctx)
	args["row_status"] = string(filter.GetStatus())

	if filter.LeadStatus != nil {
		query += " AND lead_status = :lead_status"
		args["lead_status"] = string(*filter.LeadStatus)
	}
	if filter.Platform != "" {
		query += " AND platform = :platform"
		args["platform"] = filter.Platform
	}
	if filter.Priority != nil {
		query += " AND priority = :priority"
		args["priority"] = string(*filter.Priority)
	}
	if filter.AssignedTo != "" {
		query += " AND assigned_to = :assigned_to"
		args["assigned_to"] = filter.AssignedTo
	}
	if filter.Search != "" {
		query += " AND (contact_name ILIKE :search OR email ILIKE :search OR phone ILIKE :search)"
		args["search"] = "%" + filter.Search + "%"
	}
	return query
}

func (r *leadRepository) List(ctx context.Context, filter *types.LeadFilter) ([]*lead.Lead, error) {
	args := map[string]interface{}{}
	query := "SELECT * FROM leads" + r.buildConditions(ctx, filter, args)
	query += orderClause(filter.GetSort(), filter.GetOrder(), map[string]bool{
		"created_at": true, "contact_name": true, "lead_status": true, "priority": true, "value": true,
	})
	query = paginate(query, args, filter)

	rows, err := sqlx.NamedQueryContext(ctx, r.db.Querier(ctx), query, args)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list leads").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var leads []*lead.Lead
	for rows.Next() {
		var l lead.Lead
		if err := rows.StructScan(&l); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to scan lead").
				Mark(ierr.ErrDatabase)
		}
		leads = append(leads, &l)
	}
	return leads, nil
}

func (r *leadRepository) Count(ctx context.Context, filter *types.LeadFilter) (int, error) {
	args := map[string]interface{}{}
	query := "SELECT COUNT(*) FROM leads" + r.buildConditions(ctx, filter, args)

	rows, err := sqlx.NamedQueryContext(ctx, r.db.Querier(ctx), query, args)
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count leads").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var count int
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			return 0, ierr.WithError(err).
				WithHint("Failed to scan lead count").
				Mark(ierr.ErrDatabase)
		}
	}
	return count, nil
}

func (r *leadRepository) Update(ctx context.Context, l *lead.Lead) error {
	query := `
		UPDATE leads SET
			contact_name = :contact_name,
			email = :email,
			phone = :phone,
			fields = :fields,
			lead_status = :lead_status,
			priority = :priority,
			value = :value,
			assigned_to = :assigned_to,
			notes = :notes,
			client_id = :client_id,
			updated_at = :updated_at,
			updated_by = :updated_by
		WHERE id = :id AND agency_id = :agency_id`

	r.logger.Debugw("updating lead", "lead_id", l.ID, "agency_id", l.AgencyID)

	_, err := sqlx.NamedExecContext(ctx, r.db.Querier(ctx), query, l)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update lead").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *leadRepository) Delete(ctx context.Context, id string) error {
	query := `
		UPDATE leads SET
			status = :status,
			updated_at = :updated_at,
			updated_by = :updated_by
		WHERE id = :id AND agency_id = :agency_id`

	r.logger.Debugw("deleting lead", "lead_id", id, "agency_id", types.GetAgencyID(ctx))

	_, err := sqlx.NamedExecContext(ctx, r.db.Querier(ctx), query, map[string]interface{}{
		"id":         id,
		"agency_id":  types.GetAgencyID(ctx),
		"status":     string(types.StatusDeleted),
		"updated_by": types.GetUserID(ctx),
		"updated_at": time.Now().UTC(),
	})
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete lead").
			Mark(ierr.ErrDatabase)
	}
	return nil
}
