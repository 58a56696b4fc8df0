package postgres

import (
	"context"
	"time"

	"github.com/agencyhub/agencyhub/internal/domain/user"
	ierr "github.com/agencyhub/agencyhub/internal/errors"
	"github.com/agencyhub/agencyhub/internal/logger"
	"github.com/agencyhub/agencyhub/internal/postgres"
	"github.com/agencyhub/agencyhub/internal/types"
	"github.com/jmoiron/sqlx"
)

type userRepository struct {
	db     *postgres.Client
	logger *logger.Logger
}

func NewUserRepository(db *postgres.Client, logger *logger.Logger) user.Repository {
	return &userRepository{db: db, logger: logger}
}

func (r *userRepository) Create(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (
			id, name, email, role,
			agency_id, status, created_at, updated_at, created_by, updated_by
		) VALUES (
			:id, :name, :email, :role,
			:agency_id, :status, :created_at, :updated_at, :created_by, :updated_by
		)`

	r.logger.Debugw("creating user", "user_id", u.ID, "agency_id", u.AgencyID)

	_, err := sqlx.NamedExecContext(ctx, r.db.Querier(ctx), query, u)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create user").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *userRepository) Get(ctx context.Context, id string) (*user.User, error) {
	var u user.User
	rows, err := sqlx.NamedQueryContext(ctx, r.db.Querier(ctx),
		"SELECT * FROM users WHERE id = :id AND agency_id = :agency_id AND status != :deleted",
		map[string]interface{}{
			"id":        id,
			"agency_id": types.GetAgencyID(ctx),
			"deleted":   string(types.StatusDeleted),
		})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to get user").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ierr.NewError("user not found").
			WithHint("User does not exist").
			WithReportableDetails(map[string]any{"user_id": id}).
			Mark(ierr.ErrNotFound)
	}

	if err := rows.StructScan(&u); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to scan user").
			Mark(ierr.ErrDatabase)
	}
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var u user.User
	rows, err := sqlx.NamedQueryContext(ctx, r.db.Querier(ctx),
		"SELECT * FROM users WHERE email = :email AND agency_id = :agency_id AND status != :deleted",
		map[string]interface{}{
			"email":     email,
			"agency_id": types.GetAgencyID(ctx),
			"deleted":   string(types.StatusDeleted),
		})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to get user").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ierr.NewError("user not found").
			WithHint("User does not exist").
			WithReportableDetails(map[string]any{"email": email}).
			Mark(ierr.ErrNotFound)
	}

	if err := rows.StructScan(&u); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to scan user").
			Mark(ierr.ErrDatabase)
	}
	return &u, nil
}

func (r *userRepository) buildConditions(ctx context.Context, filter *types.UserFilter, args map[string]interface{}) string {
	query := " WHERE agency_id = :agency_id AND status = :row_status"
	args["agency_id"] = types.GetAgencyID(ctx)
	args["row_status"] = string(filter.GetStatus())

	if filter != nil && filter.Role != nil {
		query += " AND role = :role"
		args["role"] = string(*filter.Role)
	}
	return query
}

func (r *userRepository) List(ctx context.Context, filter *types.UserFilter) ([]*user.User, error) {
	args := map[string]interface{}{}
	query := "SELECT * FROM users" + r.buildConditions(ctx, filter, args)
	query += orderClause(filter.GetSort(), filter.GetOrder(), map[string]bool{
		"created_at": true, "name": true, "email": true,
	})
	query = paginate(query, args, filter)

	rows, err := sqlx.NamedQueryContext(ctx, r.db.Querier(ctx), query, args)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list users").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var users []*user.User
	for rows.Next() {
		var u user.User
		if err := rows.StructScan(&u); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to scan user").
				Mark(ierr.ErrDatabase)
		}
		users = append(users, &u)
	}
	return users, nil
}

func (r *userRepository) Count(ctx context.Context, filter *types.UserFilter) (int, error) {
	args := map[string]interface{}{}
	query := "SELECT COUNT(*) FROM users" + r.buildConditions(ctx, filter, args)

	rows, err := sqlx.NamedQueryContext(ctx, r.db.Querier(ctx), query, args)
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count users").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var count int
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			return 0, ierr.WithError(err).
				WithHint("Failed to scan user count").
				Mark(ierr.ErrDatabase)
		}
	}
	return count, nil
}

func (r *userRepository) Update(ctx context.Context, u *user.User) error {
	query := `
		UPDATE users SET
			name = :name,
			email = :email,
			role = :role,
			updated_at = :updated_at,
			updated_by = :updated_by
		WHERE id = :id AND agency_id = :agency_id`

	r.logger.Debugw("updating user", "user_id", u.ID, "agency_id", u.AgencyID)

	_, err := sqlx.NamedExecContext(ctx, r.db.Querier(ctx), query, u)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update user").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	query := `
		UPDATE users SET
			status = :status,
			updated_at = :updated_at,
			updated_by = :updated_by
		WHERE id = :id AND agency_id = :agency_id`

	r.logger.Debugw("deleting user", "user_id", id, "agency_id", types.GetAgencyID(ctx))

	_, err := sqlx.NamedExecContext(ctx, r.db.Querier(ctx), query, map[string]interface{}{
		"id":         id,
		"agency_id":  types.GetAgencyID(ctx),
		"status":     string(types.StatusDeleted),
		"updated_by": types.GetUserID(ctx),
		"updated_at": time.Now().UTC(),
	})
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete user").
			Mark(ierr.ErrDatabase)
	}
	return nil
}
