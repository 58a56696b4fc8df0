package postgres

import (
	"context"

	"github.com/agencyhub/agencyhub/internal/domain/agency"
	ierr "github.com/agencyhub/agencyhub/internal/errors"
	"github.com/agencyhub/agencyhub/internal/logger"
	"github.com/agencyhub/agencyhub/internal/postgres"
	"github.com/agencyhub/agencyhub/internal/types"
	"github.com/jmoiron/sqlx"
)

type agencyRepository struct {
	db     *postgres.Client
	logger *logger.Logger
}

func NewAgencyRepository(db *postgres.Client, logger *logger.Logger) agency.Repository {
	return &agencyRepository{db: db, logger: logger}
}

func (r *agencyRepository) Create(ctx context.Context, a *agency.Agency) error {
	query := `
		INSERT INTO agencies (
			id, name, slug, contact_email, contact_phone, website, logo_url,
			agency_id, status, created_at, updated_at, created_by, updated_by
		) VALUES (
			:id, :name, :slug, :contact_email, :contact_phone, :website, :logo_url,
			:agency_id, :status, :created_at, :updated_at, :created_by, :updated_by
		)`

	r.logger.Debugw("creating agency", "agency_id", a.ID, "slug", a.Slug)

	_, err := sqlx.NamedExecContext(ctx, r.db.Querier(ctx), query, a)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create agency").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *agencyRepository) Get(ctx context.Context, id string) (*agency.Agency, error) {
	var a agency.Agency
	rows, err := sqlx.NamedQueryContext(ctx, r.db.Querier(ctx),
		"SELECT * FROM agencies WHERE id = :id AND status != :deleted",
		map[string]interface{}{
			"id":      id,
			"deleted": string(types.StatusDeleted),
		})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to get agency").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ierr.NewError("agency not found").
			WithHint("Agency does not exist").
			WithReportableDetails(map[string]any{"agency_id": id}).
			Mark(ierr.ErrNotFound)
	}

	if err := rows.StructScan(&a); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to scan agency").
			Mark(ierr.ErrDatabase)
	}
	return &a, nil
}

func (r *agencyRepository) GetBySlug(ctx context.Context, slug string) (*agency.Agency, error) {
	var a agency.Agency
	rows, err := sqlx.NamedQueryContext(ctx, r.db.Querier(ctx),
		"SELECT * FROM agencies WHERE slug = :slug AND status != :deleted",
		map[string]interface{}{
			"slug":    slug,
			"deleted": string(types.StatusDeleted),
		})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to get agency").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ierr.NewError("agency not found").
			WithHint("Agency does not exist").
			WithReportableDetails(map[string]any{"slug": slug}).
			Mark(ierr.ErrNotFound)
	}

	if err := rows.StructScan(&a); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to scan agency").
			Mark(ierr.ErrDatabase)
	}
	return &a, nil
}

func (r *agencyRepository) Update(ctx context.Context, a *agency.Agency) error {
	query := `
		UPDATE agencies SET
			name = :name,
			slug = :slug,
			contact_email = :contact_email,
			contact_phone = :contact_phone,
			website = :website,
			logo_url = :logo_url,
			updated_at = :updated_at,
			updated_by = :updated_by
		WHERE id = :id`

	r.logger.Debugw("updating agency", "agency_id", a.ID)

	_, err := sqlx.NamedExecContext(ctx, r.db.Querier(ctx), query, a)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update agency").
			Mark(ierr.ErrDatabase)
	}
	return nil
}
