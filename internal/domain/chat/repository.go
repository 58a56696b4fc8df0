package chat

import (
	"context"

	"github.com/agencyhub/agencyhub/internal/types"
)

// Repository defines the interface for conversation data access
type Repository interface {
	Create(ctx context.Context, conversation *Conversation) error
	Get(ctx context.Context, id string) (*Conversation, error)
	List(ctx context.Context, filter *types.ConversationFilter) ([]*Conversation, error)
	Count(ctx context.Context, filter *types.ConversationFilter) (int, error)
	Update(ctx context.Context, conversation *Conversation) error
	Delete(ctx context.Context, id string) error
}

// MessageRepository defines the interface for message data access.
// Messages are append-only; there is no update or delete.
type MessageRepository interface {
	Create(ctx context.Context, message *Message) error
	List(ctx context.Context, filter *types.MessageFilter) ([]*Message, error)
	Count(ctx context.Context, filter *types.MessageFilter) (int, error)
}
