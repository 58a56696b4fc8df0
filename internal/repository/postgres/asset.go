package postgres

import (
	"context"
	"time"

	"github.com/agencyhub/agencyhub/internal/domain/asset"
	ierr "github.com/agencyhub/agencyhub/internal/errors"
	"github.com/agencyhub/agencyhub/internal/logger"
	"github.com/agencyhub/agencyhub/internal/postgres"
	"github.com/agencyhub/agencyhub/internal/types"
	"github.com/jmoiron/sqlx"
)

type assetRepository struct {
	db     *postgres.Client
	logger *logger.Logger
}

func NewAssetRepository(db *postgres.Client, logger *logger.Logger) asset.Repository {
	return &assetRepository{db: db, logger: logger}
}

func (r *assetRepository) Create(ctx context.Context, a *asset.Asset) error {
	query := `
		INSERT INTO assets (
			id, client_id, asset_type, name, provider, cost, renewal_date, auto_renew, notes,
			agency_id, status, created_at, updated_at, created_by, updated_by
		) VALUES (
			:id, :client_id, :asset_type, :name, :provider, :cost, :renewal_date, :auto_renew, :notes,
			:agency_id, :status, :created_at, :updated_at, :created_by, :updated_by
		)`

	r.logger.Debugw("creating asset", "asset_id", a.ID, "client_id", a.ClientID, "agency_id", a.AgencyID)

	_, err := sqlx.NamedExecContext(ctx, r.db.Querier(ctx), query, a)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create asset").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *assetRepository) Get(ctx context.Context, id string) (*asset.Asset, error) {
	var a asset.Asset
	rows, err := sqlx.NamedQueryContext(ctx, r.db.Querier(ctx),
		"SELECT * FROM assets WHERE id = :id AND agency_id = :agency_id AND status != :deleted",
		map[string]interface{}{
			"id":        id,
			"agency_id": types.GetAgencyID(ctx),
			"deleted":   string(types.StatusDeleted),
		})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to get asset").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ierr.NewError("asset not found").
			WithHint("Asset does not exist").
			WithReportableDetails(map[string]any{"asset_id": id}).
			Mark(ierr.ErrNotFound)
	}

	if err := rows.StructScan(&a); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to scan asset").
			Mark(ierr.ErrDatabase)
	}
	return &a, nil
}

func (r *assetRepository) buildConditions(ctx context.Context, filter *types.AssetFilter, args map[string]interface{}) string {
	query := " WHERE agency_id = :agency_id AND status = :row_status"
	args["agency_id"] = types.GetAgencyID(ctx)
	args["row_status"] = string(filter.GetStatus())

	if filter.ClientID != "" {
		query += " AND client_id = :client_id"
		args["client_id"] = filter.ClientID
	}
	if filter.AssetType != nil {
		query += " AND asset_type = :asset_type"
		args["asset_type"] = string(*filter.AssetType)
	}
	if filter.RenewingDays != nil {
		query += " AND renewal_date IS NOT NULL AND renewal_date >= :renew_from AND renewal_date <= :renew_to"
		now := time.Now().UTC()
		args["renew_from"] = now
		args["renew_to"] = now.AddDate(0, 0, *filter.RenewingDays)
	}
	return query
}

func (r *assetRepository) List(ctx context.Context, filter *types.AssetFilter) ([]*asset.Asset, error) {
	args := map[string]interface{}{}
	query := "SELECT * FROM assets" + r.buildConditions(ctx, filter, args)
	query += orderClause(filter.GetSort(), filter.GetOrder(), map[string]bool{
		"created_at": true, "name": true, "asset_type": true, "renewal_date": true, "cost": true,
	})
	query = paginate(query, args, filter)

	rows, err := sqlx.NamedQueryContext(ctx, r.db.Querier(ctx), query, args)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list assets").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var assets []*asset.Asset
	for rows.Next() {
		var a asset.Asset
		if err := rows.StructScan(&a); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to scan asset").
				Mark(ierr.ErrDatabase)
		}
		assets = append(assets, &a)
	}
	return assets, nil
}

func (r *assetRepository) Count(ctx context.Context, filter *types.AssetFilter) (int, error) {
	args := map[string]interface{}{}
	query := "SELECT COUNT(*) FROM assets" + r.buildConditions(ctx, filter, args)

	rows, err := sqlx.NamedQueryContext(ctx, r.db.Querier(ctx), query, args)
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count assets").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var count int
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			return 0, ierr.WithError(err).
				WithHint("Failed to scan asset count").
				Mark(ierr.ErrDatabase)
		}
	}
	return count, nil
}

func (r *assetRepository) Update(ctx context.Context, a *asset.Asset) error {
	query := `
		UPDATE assets SET
			asset_type = :asset_type,
			name = :name,
			provider = :provider,
			cost = :cost,
			renewal_date = :renewal_date,
			auto_renew = :auto_renew,
			notes = :notes,
			updated_at = :updated_at,
			updated_by = :updated_by
		WHERE id = :id AND agency_id = :agency_id`

	r.logger.Debugw("updating asset", "asset_id", a.ID, "agency_id", a.AgencyID)

	_, err := sqlx.NamedExecContext(ctx, r.db.Querier(ctx), query, a)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update asset").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *assetRepository) Delete(ctx context.Context, id string) error {
	query := `
		UPDATE assets SET
			status = :status,
			updated_at = :updated_at,
			updated_by = :updated_by
		WHERE id = :id AND agency_id = :agency_id`

	r.logger.Debugw("deleting asset", "asset_id", id, "agency_id", types.GetAgencyID(ctx))

	_, err := sqlx.NamedExecContext(ctx, r.db.Querier(ctx), query, map[string]interface{}{
		"id":         id,
		"agency_id":  types.GetAgencyID(ctx),
		"status":     string(types.StatusDeleted),
		"updated_by": types.GetUserID(ctx),
		"updated_at": time.Now().UTC(),
	})
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete asset").
			Mark(ierr.ErrDatabase)
	}
	return nil
}
