package postgres

import (
	"context"

	"github.com/agencyhub/agencyhub/internal/domain/product"
	ierr "github.com/agencyhub/agencyhub/internal/errors"
	"github.com/agencyhub/agencyhub/internal/logger"
	"github.com/agencyhub/agencyhub/internal/postgres"
	"github.com/agencyhub/agencyhub/internal/types"
	"github.com/jmoiron/sqlx"
)

type productRepository struct {
	db     *postgres.Client
	logger *logger.Logger
}

func NewProductRepository(db *postgres.Client, logger *logger.Logger) product.Repository {
	return &productRepository{db: db, logger: logger}
}

func (r *productRepository) Create(ctx context.Context, p *product.Product) error {
	query := `
		INSERT INTO products (
			id, name, description, category, price, unit, is_active, predefined_tasks,
			agency_id, status, created_at, updated_at, created_by, updated_by
		) VALUES (
			:id, :name, :description, :category, :price, :unit, :is_active, :predefined_tasks,
			:agency_id, :status, :created_at, :updated_at, :created_by, :updated_by
		)`

	r.logger.Debugw("creating product", "product_id", p.ID, "agency_id", p.AgencyID)

	_, err := sqlx.NamedExecContext(ctx, r.db.Querier(ctx), query, p)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create product").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *productRepository) Get(ctx context.Context, id string) (*product.Product, error) {
	var p product.Product
	rows, err := sqlx.NamedQueryContext(ctx, r.db.Querier(ctx),
		"SELECT * FROM products WHERE id = :id AND agency_id = :agency_id",
		map[string]interface{}{
			"id":        id,
			"agency_id": types.GetAgencyID(ctx),
		})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to get product").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ierr.NewError("product not found").
			WithHint("Product does not exist").
			WithReportableDetails(map[string]any{"product_id": id}).
			Mark(ierr.ErrNotFound)
	}

	if err := rows.StructScan(&p); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to scan product").
			Mark(ierr.ErrDatabase)
	}
	return &p, nil
}

func (r *productRepository) buildConditions(ctx context.Context, filter *types.ProductFilter, args map[string]interface{}) string {
	query := " WHERE agency_id = :agency_id"
	args["agency_id"] = types.GetAgencyID(ctx)

	if filter.Category != "" {
		query += " AND category = :category"
		args["category"] = filter.Category
	}
	if filter.IsActive != nil {
		query += " AND is_active = :is_active"
		args["is_active"] = *filter.IsActive
	}
	if filter.Search != "" {
		query += " AND (name ILIKE :search OR description ILIKE :search)"
		args["search"] = "%" + filter.Search + "%"
	}
	return query
}

func (r *productRepository) List(ctx context.Context, filter *types.ProductFilter) ([]*product.Product, error) {
	args := map[string]interface{}{}
	query := "SELECT * FROM products" + r.buildConditions(ctx, filter, args)
	query += orderClause(filter.GetSort(), filter.GetOrder(), map[string]bool{
		"created_at": true, "name": true, "category": true, "price": true,
	})
	query = paginate(query, args, filter)

	rows, err := sqlx.NamedQueryContext(ctx, r.db.Querier(ctx), query, args)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list products").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var products []*product.Product
	for rows.Next() {
		var p product.Product
		if err := rows.StructScan(&p); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to scan product").
				Mark(ierr.ErrDatabase)
		}
		products = append(products, &p)
	}
	return products, nil
}

func (r *productRepository) Count(ctx context.Context, filter *types.ProductFilter) (int, error) {
	args := map[string]interface{}{}
	query := "SELECT COUNT(*) FROM products" + r.buildConditions(ctx, filter, args)

	rows, err := sqlx.NamedQueryContext(ctx, r.db.Querier(ctx), query, args)
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count products").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var count int
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			return 0, ierr.WithError(err).
				WithHint("Failed to scan product count").
				Mark(ierr.ErrDatabase)
		}
	}
	return count, nil
}

func (r *productRepository) Update(ctx context.Context, p *product.Product) error {
	query := `
		UPDATE products SET
			name = :name,
			description = :description,
			category = :category,
			price = :price,
			unit = :unit,
			is_active = :is_active,
			predefined_tasks = :predefined_tasks,
			updated_at = :updated_at,
			updated_by = :updated_by
		WHERE id = :id AND agency_id = :agency_id`

	r.logger.Debugw("updating product", "product_id", p.ID, "agency_id", p.AgencyID)

	_, err := sqlx.NamedExecContext(ctx, r.db.Querier(ctx), query, p)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update product").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

// Delete removes the product row entirely. Quote line items keep their own
// snapshot of product data, so existing quotes are unaffected.
func (r *productRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM products WHERE id = :id AND agency_id = :agency_id`

	r.logger.Debugw("deleting product", "product_id", id, "agency_id", types.GetAgencyID(ctx))

	_, err := sqlx.NamedExecContext(ctx, r.db.Querier(ctx), query, map[string]interface{}{
		"id":        id,
		"agency_id": types.GetAgencyID(ctx),
	})
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete product").
			Mark(ierr.ErrDatabase)
	}
	return nil
}
