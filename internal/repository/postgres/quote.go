package postgres

import (
	"context"
	"time"

	"github.com/agencyhub/agencyhub/internal/domain/quote"
	ierr "github.com/agencyhub/agencyhub/internal/errors"
	"github.com/agencyhub/agencyhub/internal/logger"
	"github.com/agencyhub/agencyhub/internal/postgres"
	"github.com/agencyhub/agencyhub/internal/types"
	"github.com/jmoiron/sqlx"
)

type quoteRepository struct {
	db     *postgres.Client
	logger *logger.Logger
}

func NewQuoteRepository(db *postgres.Client, logger *logger.Logger) quote.Repository {
	return &quoteRepository{db: db, logger: logger}
}

// Create persists the quote and its line items in one transaction
func (r *quoteRepository) Create(ctx context.Context, q *quote.Quote) error {
	return r.db.WithTx(ctx, func(ctx context.Context) error {
		query := `
			INSERT INTO quotes (
				id, quote_number, client_id, title, description, valid_until, quote_status,
				subtotal, vat_amount, total, notes, sender_email, email_message, sent_at, approved_at,
				agency_id, status, created_at, updated_at, created_by, updated_by
			) VALUES (
				:id, :quote_number, :client_id, :title, :description, :valid_until, :quote_status,
				:subtotal, :vat_amount, :total, :notes, :sender_email, :email_message, :sent_at, :approved_at,
				:agency_id, :status, :created_at, :updated_at, :created_by, :updated_by
			)`

		r.logger.Debugw("creating quote", "quote_id", q.ID, "quote_number", q.QuoteNumber, "agency_id", q.AgencyID)

		if _, err := sqlx.NamedExecContext(ctx, r.db.Querier(ctx), query, q); err != nil {
			return ierr.WithError(err).
				WithHint("Failed to create quote").
				Mark(ierr.ErrDatabase)
		}

		return r.insertLineItems(ctx, q.LineItems)
	})
}

func (r *quoteRepository) insertLineItems(ctx context.Context, items []*quote.LineItem) error {
	query := `
		INSERT INTO quote_line_items (
			id, quote_id, product_id, name, description, quantity, unit_price, price_type, total,
			agency_id, status, created_at, updated_at, created_by, updated_by
		) VALUES (
			:id, :quote_id, :product_id, :name, :description, :quantity, :unit_price, :price_type, :total,
			:agency_id, :status, :created_at, :updated_at, :created_by, :updated_by
		)`

	for _, li := range items {
		if _, err := sqlx.NamedExecContext(ctx, r.db.Querier(ctx), query, li); err != nil {
			return ierr.WithError(err).
				WithHint("Failed to create quote line item").
				Mark(ierr.ErrDatabase)
		}
	}
	return nil
}

func (r *quoteRepository) loadLineItems(ctx context.Context, quoteID string) ([]*quote.LineItem, error) {
	rows, err := sqlx.NamedQueryContext(ctx, r.db.Querier(ctx),
		"SELECT * FROM quote_line_items WHERE quote_id = :quote_id AND status != :deleted ORDER BY created_at ASC, id ASC",
		map[string]interface{}{
			"quote_id": quoteID,
			"deleted":  string(types.StatusDeleted),
		})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to load quote line items").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var items []*quote.LineItem
	for rows.Next() {
		var li quote.LineItem
		if err := rows.StructScan(&li); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to scan quote line item").
				Mark(ierr.ErrDatabase)
		}
		items = append(items, &li)
	}
	return items, nil
}

func (r *quoteRepository) Get(ctx context.Context, id string) (*quote.Quote, error) {
	var q quote.Quote
	rows, err := sqlx.NamedQueryContext(ctx, r.db.Querier(ctx),
		"SELECT * FROM quotes WHERE id = :id AND agency_id = :agency_id AND status != :deleted",
		map[string]interface{}{
			"id":        id,
			"agency_id": types.GetAgencyID(ctx),
			"deleted":   string(types.StatusDeleted),
		})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to get quote").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ierr.NewError("quote not found").
			WithHint("Quote does not exist").
			WithReportableDetails(map[string]any{"quote_id": id}).
			Mark(ierr.ErrNotFound)
	}

	if err := rows.StructScan(&q); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to scan quote").
			Mark(ierr.ErrDatabase)
	}
	rows.Close()

	items, err := r.loadLineItems(ctx, q.ID)
	if err != nil {
		return nil, err
	}
	q.LineItems = items
	return &q, nil
}

func (r *quoteRepository) buildConditions(ctx context.Context, filter *types.QuoteFilter, args map[string]interface{}) string {
	query := " WHERE agency_id = :agency_id AND status = :row_status"
	args["agency_id"] = types.GetAgencyID(ctx)
	args["row_status"] = string(filter.GetStatus())

	if filter.ClientID != "" {
		query += " AND client_id = :client_id"
		args["client_id"] = filter.ClientID
	}
	if filter.QuoteStatus != nil {
		query += " AND quote_status = :quote_status"
		args["quote_status"] = string(*filter.QuoteStatus)
	}
	if filter.Search != "" {
		query += " AND (title ILIKE :search OR quote_number ILIKE :search)"
		args["search"] = "%" + filter.Search + "%"
	}
	return query
}

func (r *quoteRepository) List(ctx context.Context, filter *types.QuoteFilter) ([]*quote.Quote, error) {
	args := map[string]interface{}{}
	query := "SELECT * FROM quotes" + r.buildConditions(ctx, filter, args)
	query += orderClause(filter.GetSort(), filter.GetOrder(), map[string]bool{
		"created_at": true, "quote_number": true, "quote_status": true, "total": true, "valid_until": true,
	})
	query = paginate(query, args, filter)

	rows, err := sqlx.NamedQueryContext(ctx, r.db.Querier(ctx), query, args)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list quotes").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var quotes []*quote.Quote
	for rows.Next() {
		var q quote.Quote
		if err := rows.StructScan(&q); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to scan quote").
				Mark(ierr.ErrDatabase)
		}
		quotes = append(quotes, &q)
	}
	rows.Close()

	for _, q := range quotes {
		items, err := r.loadLineItems(ctx, q.ID)
		if err != nil {
			return nil, err
		}
		q.LineItems = items
	}
	return quotes, nil
}

func (r *quoteRepository) Count(ctx context.Context, filter *types.QuoteFilter) (int, error) {
	args := map[string]interface{}{}
	query := "SELECT COUNT(*) FROM quotes" + r.buildConditions(ctx, filter, args)

	rows, err := sqlx.NamedQueryContext(ctx, r.db.Querier(ctx), query, args)
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count quotes").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var count int
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			return 0, ierr.WithError(err).
				WithHint("Failed to scan quote count").
				Mark(ierr.ErrDatabase)
		}
	}
	return count, nil
}

func (r *quoteRepository) Update(ctx context.Context, q *quote.Quote) error {
	query := `
		UPDATE quotes SET
			title = :title,
			description = :description,
			valid_until = :valid_until,
			quote_status = :quote_status,
			subtotal = :subtotal,
			vat_amount = :vat_amount,
			total = :total,
			notes = :notes,
			sender_email = :sender_email,
			email_message = :email_message,
			sent_at = :sent_at,
			approved_at = :approved_at,
			updated_at = :updated_at,
			updated_by = :updated_by
		WHERE id = :id AND agency_id = :agency_id`

	r.logger.Debugw("updating quote", "quote_id", q.ID, "agency_id", q.AgencyID)

	_, err := sqlx.NamedExecContext(ctx, r.db.Querier(ctx), query, q)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update quote").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

// ReplaceLineItems swaps the quote's line items for a new set in one
// transaction. Used by draft edits, where items are resubmitted wholesale.
func (r *quoteRepository) ReplaceLineItems(ctx context.Context, quoteID string, items []*quote.LineItem) error {
	return r.db.WithTx(ctx, func(ctx context.Context) error {
		query := `DELETE FROM quote_line_items WHERE quote_id = :quote_id AND agency_id = :agency_id`

		_, err := sqlx.NamedExecContext(ctx, r.db.Querier(ctx), query, map[string]interface{}{
			"quote_id":  quoteID,
			"agency_id": types.GetAgencyID(ctx),
		})
		if err != nil {
			return ierr.WithError(err).
				WithHint("Failed to replace quote line items").
				Mark(ierr.ErrDatabase)
		}

		return r.insertLineItems(ctx, items)
	})
}

func (r *quoteRepository) Delete(ctx context.Context, id string) error {
	query := `
		UPDATE quotes SET
			status = :status,
			updated_at = :updated_at,
			updated_by = :updated_by
		WHERE id = :id AND agency_id = :agency_id`

	r.logger.Debugw("deleting quote", "quote_id", id, "agency_id", types.GetAgencyID(ctx))

	_, err := sqlx.NamedExecContext(ctx, r.db.Querier(ctx), query, map[string]interface{}{
		"id":         id,
		"agency_id":  types.GetAgencyID(ctx),
		"status":     string(types.StatusDeleted),
		"updated_by": types.GetUserID(ctx),
		"updated_at": time.Now().UTC(),
	})
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete quote").
			Mark(ierr.ErrDatabase)
	}
	return nil
}
