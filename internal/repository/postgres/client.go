package postgres

import (
	"context"
	"time"

	"github.com/agencyhub/agencyhub/internal/domain/client"
	ierr "github.com/agencyhub/agencyhub/internal/errors"
	"github.com/agencyhub/agencyhub/internal/logger"
	"github.com/agencyhub/agencyhub/internal/postgres"
	"github.com/agencyhub/agencyhub/internal/types"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type clientRepository struct {
	db     *postgres.Client
	logger *logger.Logger
}

func NewClientRepository(db *postgres.Client, logger *logger.Logger) client.Repository {
	return &clientRepository{db: db, logger: logger}
}

func (r *clientRepository) Create(ctx context.Context, c *client.Client) error {
	query := `
		INSERT INTO clients (
			id, name, contact_name, email, phone, industry, client_status, notes, custom_fields,
			agency_id, status, created_at, updated_at, created_by, updated_by
		) VALUES (
			:id, :name, :contact_name, :email, :phone, :industry, :client_status, :notes, :custom_fields,
			:agency_id, :status, :created_at, :updated_at, :created_by, :updated_by
		)`

	r.logger.Debugw("creating client", "client_id", c.ID, "agency_id", c.AgencyID)

	_, err := sqlx.NamedExecContext(ctx, r.db.Querier(ctx), query, c)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create client").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *clientRepository) Get(ctx context.Context, id string) (*client.Client, error) {
	var c client.Client
	rows, err := sqlx.NamedQueryContext(ctx, r.db.Querier(ctx),
		"SELECT * FROM clients WHERE id = :id AND agency_id = :agency_id AND status != :deleted",
		map[string]interface{}{
			"id":        id,
			"agency_id": types.GetAgencyID(ctx),
			"deleted":   string(types.StatusDeleted),
		})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to get client").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ierr.NewError("client not found").
			WithHint("Client does not exist").
			WithReportableDetails(map[string]any{"client_id": id}).
			Mark(ierr.ErrNotFound)
	}

	if err := rows.StructScan(&c); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to scan client").
			Mark(ierr.ErrDatabase)
	}
	return &c, nil
}

func (r *clientRepository) buildConditions(ctx context.Context, filter *types.ClientFilter, args map[string]interface{}) string {
	query := " WHERE agency_id = :agency_id AND status = :row_status"
	args["agency_id"] = types.GetAgencyID(ctx)
	args["row_status"] = string(filter.GetStatus())

	if filter.ClientStatus != nil {
		query += " AND client_status = :client_status"
		args["client_status"] = string(*filter.ClientStatus)
	}
	if filter.Industry != "" {
		query += " AND industry = :industry"
		args["industry"] = filter.Industry
	}
	if filter.Search != "" {
		query += " AND (name ILIKE :search OR contact_name ILIKE :search OR email ILIKE :search)"
		args["search"] = "%" + filter.Search + "%"
	}
	if len(filter.ClientIDs) > 0 {
		// named queries do not expand slices; bind a postgres array instead
		query += " AND id = ANY(:client_ids)"
		args["client_ids"] = pq.StringArray(filter.ClientIDs)
	}
	return query
}

func (r *clientRepository) List(ctx context.Context, filter *types.ClientFilter) ([]*client.Client, error) {
	args := map[string]interface{}{}
	query := "SELECT * FROM clients" + r.buildConditions(ctx, filter, args)
	query += orderClause(filter.GetSort(), filter.GetOrder(), map[string]bool{
		"created_at": true, "name": true, "industry": true, "client_status": true,
	})
	query = paginate(query, args, filter)

	rows, err := sqlx.NamedQueryContext(ctx, r.db.Querier(ctx), query, args)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list clients").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var clients []*client.Client
	for rows.Next() {
		var c client.Client
		if err := rows.StructScan(&c); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to scan client").
				Mark(ierr.ErrDatabase)
		}
		clients = append(clients, &c)
	}
	return clients, nil
}

func (r *clientRepository) Count(ctx context.Context, filter *types.ClientFilter) (int, error) {
	args := map[string]interface{}{}
	query := "SELECT COUNT(*) FROM clients" + r.buildConditions(ctx, filter, args)

	rows, err := sqlx.NamedQueryContext(ctx, r.db.Querier(ctx), query, args)
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count clients").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var count int
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			return 0, ierr.WithError(err).
				WithHint("Failed to scan client count").
				Mark(ierr.ErrDatabase)
		}
	}
	return count, nil
}

func (r *clientRepository) Update(ctx context.Context, c *client.Client) error {
	query := `
		UPDATE clients SET
			name = :name,
			contact_name = :contact_name,
			email = :email,
			phone = :phone,
			industry = :industry,
			client_status = :client_status,
			notes = :notes,
			custom_fields = :custom_fields,
			updated_at = :updated_at,
			updated_by = :updated_by
		WHERE id = :id AND agency_id = :agency_id`

	r.logger.Debugw("updating client", "client_id", c.ID, "agency_id", c.AgencyID)

	_, err := sqlx.NamedExecContext(ctx, r.db.Querier(ctx), query, c)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update client").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *clientRepository) Delete(ctx context.Context, id string) error {
	query := `
		UPDATE clients SET
			status = :status,
			updated_at = :updated_at,
			updated_by = :updated_by
		WHERE id = :id AND agency_id = :agency_id`

	r.logger.Debugw("deleting client", "client_id", id, "agency_id", types.GetAgencyID(ctx))

	_, err := sqlx.NamedExecContext(ctx, r.db.Querier(ctx), query, map[string]interface{}{
		"id":         id,
		"agency_id":  types.GetAgencyID(ctx),
		"status":     string(types.StatusDeleted),
		"updated_by": types.GetUserID(ctx),
		"updated_at": time.Now().UTC(),
	})
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete client").
			Mark(ierr.ErrDatabase)
	}
	return nil
}
