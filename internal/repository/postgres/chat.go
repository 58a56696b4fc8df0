package postgres

import (
	"context"
	"time"

	"github.com/agencyhub/agencyhub/internal/domain/chat"
	ierr "github.com/agencyhub/agencyhub/internal/errors"
	"github.com/agencyhub/agencyhub/internal/logger"
	"github.com/agencyhub/agencyhub/internal/postgres"
	"github.com/agencyhub/agencyhub/internal/types"
	"github.com/jmoiron/sqlx"
)

type conversationRepository struct {
	db     *postgres.Client
	logger *logger.Logger
}

func NewConversationRepository(db *postgres.Client, logger *logger.Logger) chat.Repository {
	return &conversationRepository{db: db, logger: logger}
}

func (r *conversationRepository) Create(ctx context.Context, c *chat.Conversation) error {
	query := `
		INSERT INTO conversations (
			id, title, participant_ids,
			agency_id, status, created_at, updated_at, created_by, updated_by
		) VALUES (
			:id, :title, :participant_ids,
			:agency_id, :status, :created_at, :updated_at, :created_by, :updated_by
		)`

	r.logger.Debugw("creating conversation", "conversation_id", c.ID, "agency_id", c.AgencyID)

	_, err := sqlx.NamedExecContext(ctx, r.db.Querier(ctx), query, c)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create conversation").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *conversationRepository) Get(ctx context.Context, id string) (*chat.Conversation, error) {
	var c chat.Conversation
	rows, err := sqlx.NamedQueryContext(ctx, r.db.Querier(ctx),
		"SELECT * FROM conversations WHERE id = :id AND agency_id = :agency_id AND status != :deleted",
		map[string]interface{}{
			"id":        id,
			"agency_id": types.GetAgencyID(ctx),
			"deleted":   string(types.StatusDeleted),
		})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to get conversation").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ierr.NewError("conversation not found").
			WithHint("Conversation does not exist").
			WithReportableDetails(map[string]any{"conversation_id": id}).
			Mark(ierr.ErrNotFound)
	}

	if err := rows.StructScan(&c); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to scan conversation").
			Mark(ierr.ErrDatabase)
	}
	return &c, nil
}

func (r *conversationRepository) buildConditions(ctx context.Context, filter *types.ConversationFilter, args map[string]interface{}) string {
	query := " WHERE agency_id = :agency_id AND status = :row_status"
	args["agency_id"] = types.GetAgencyID(ctx)
	args["row_status"] = string(filter.GetStatus())

	if filter.ParticipantID != "" {
		// participant_ids is a jsonb array of user ids
		query += " AND participant_ids @> :participant"
		args["participant"] = `["` + filter.ParticipantID + `"]`
	}
	return query
}

func (r *conversationRepository) List(ctx context.Context, filter *types.ConversationFilter) ([]*chat.Conversation, error) {
	args := map[string]interface{}{}
	query := "SELECT * FROM conversations" + r.buildConditions(ctx, filter, args)
	query += orderClause(filter.GetSort(), filter.GetOrder(), map[string]bool{
		"created_at": true, "title": true, "updated_at": true,
	})
	query = paginate(query, args, filter)

	rows, err := sqlx.NamedQueryContext(ctx, r.db.Querier(ctx), query, args)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list conversations").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var conversations []*chat.Conversation
	for rows.Next() {
		var c chat.Conversation
		if err := rows.StructScan(&c); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to scan conversation").
				Mark(ierr.ErrDatabase)
		}
		conversations = append(conversations, &c)
	}
	return conversations, nil
}

func (r *conversationRepository) Count(ctx context.Context, filter *types.ConversationFilter) (int, error) {
	args := map[string]interface{}{}
	query := "SELECT COUNT(*) FROM conversations" + r.buildConditions(ctx, filter, args)

	rows, err := sqlx.NamedQueryContext(ctx, r.db.Querier(ctx), query, args)
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count conversations").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var count int
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			return 0, ierr.WithError(err).
				WithHint("Failed to scan conversation count").
				Mark(ierr.ErrDatabase)
		}
	}
	return count, nil
}

func (r *conversationRepository) Update(ctx context.Context, c *chat.Conversation) error {
	query := `
		UPDATE conversations SET
			title = :title,
			participant_ids = :participant_ids,
			updated_at = :updated_at,
			updated_by = :updated_by
		WHERE id = :id AND agency_id = :agency_id`

	r.logger.Debugw("updating conversation", "conversation_id", c.ID, "agency_id", c.AgencyID)

	_, err := sqlx.NamedExecContext(ctx, r.db.Querier(ctx), query, c)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update conversation").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *conversationRepository) Delete(ctx context.Context, id string) error {
	query := `
		UPDATE conversations SET
			status = :status,
			updated_at = :updated_at,
			updated_by = :updated_by
		WHERE id = :id AND agency_id = :agency_id`

	r.logger.Debugw("deleting conversation", "conversation_id", id, "agency_id", types.GetAgencyID(ctx))

	_, err := sqlx.NamedExecContext(ctx, r.db.Querier(ctx), query, map[string]interface{}{
		"id":         id,
		"agency_id":  types.GetAgencyID(ctx),
		"status":     string(types.StatusDeleted),
		"updated_by": types.GetUserID(ctx),
		"updated_at": time.Now().UTC(),
	})
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete conversation").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

type messageRepository struct {
	db     *postgres.Client
	logger *logger.Logger
}

func NewMessageRepository(db *postgres.Client, logger *logger.Logger) chat.MessageRepository {
	return &messageRepository{db: db, logger: logger}
}

func (r *messageRepository) Create(ctx context.Context, m *chat.Message) error {
	query := `
		INSERT INTO messages (
			id, conversation_id, sender_id, body,
			agency_id, status, created_at, updated_at, created_by, updated_by
		) VALUES (
			:id, :conversation_id, :sender_id, :body,
			:agency_id, :status, :created_at, :updated_at, :created_by, :updated_by
		)`

	r.logger.Debugw("creating message", "message_id", m.ID, "conversation_id", m.ConversationID)

	_, err := sqlx.NamedExecContext(ctx, r.db.Querier(ctx), query, m)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create message").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *messageRepository) buildConditions(ctx context.Context, filter *types.MessageFilter, args map[string]interface{}) string {
	query := " WHERE agency_id = :agency_id AND status = :row_status"
	args["agency_id"] = types.GetAgencyID(ctx)
	args["row_status"] = string(filter.GetStatus())

	if filter.ConversationID != "" {
		query += " AND conversation_id = :conversation_id"
		args["conversation_id"] = filter.ConversationID
	}
	return query
}

func (r *messageRepository) List(ctx context.Context, filter *types.MessageFilter) ([]*chat.Message, error) {
	args := map[string]interface{}{}
	query := "SELECT * FROM messages" + r.buildConditions(ctx, filter, args)
	query += orderClause(filter.GetSort(), filter.GetOrder(), map[string]bool{
		"created_at": true,
	})
	query = paginate(query, args, filter)

	rows, err := sqlx.NamedQueryContext(ctx, r.db.Querier(ctx), query, args)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list messages").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var messages []*chat.Message
	for rows.Next() {
		var m chat.Message
		if err := rows.StructScan(&m); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to scan message").
				Mark(ierr.ErrDatabase)
		}
		messages = append(messages, &m)
	}
	return messages, nil
}

func (r *messageRepository) Count(ctx context.Context, filter *types.MessageFilter) (int, error) {
	args := map[string]interface{}{}
	query := "SELECT COUNT(*) FROM messages" + r.buildConditions(ctx, filter, args)

	rows, err := sqlx.NamedQueryContext(ctx, r.db.Querier(ctx), query, args)
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count messages").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var count int
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			return 0, ierr.WithError(err).
				WithHint("Failed to scan message count").
				Mark(ierr.ErrDatabase)
		}
	}
	return count, nil
}
