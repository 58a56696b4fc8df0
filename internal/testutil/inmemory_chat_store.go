package testutil

import (
	"context"

	"github.com/agencyhub/agencyhub/internal/domain/chat"
	ierr "github.com/agencyhub/agencyhub/internal/errors"
	"github.com/agencyhub/agencyhub/internal/types"
	"github.com/samber/lo"
)

// InMemoryConversationStore implements chat.Repository
type InMemoryConversationStore struct {
	*InMemoryStore[*chat.Conversation]
}

// NewInMemoryConversationStore creates a new in-memory conversation store
func NewInMemoryConversationStore() *InMemoryConversationStore {
	return &InMemoryConversationStore{
		InMemoryStore: NewInMemoryStore[*chat.Conversation](),
	}
}

func copyConversation(c *chat.Conversation) *chat.Conversation {
	if c == nil {
		return nil
	}
	out := *c
	out.ParticipantIDs = append(types.StringList{}, c.ParticipantIDs...)
	return &out
}

func (s *InMemoryConversationStore) Create(ctx context.Context, c *chat.Conversation) error {
	if err := s.InMemoryStore.Create(ctx, c.ID, copyConversation(c)); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create conversation").
			Mark(ierr.ErrAlreadyExists)
	}
	return nil
}

func (s *InMemoryConversationStore) Get(ctx context.Context, id string) (*chat.Conversation, error) {
	c, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, ierr.NewError("conversation not found").
			WithHint("Conversation does not exist").
			Mark(ierr.ErrNotFound)
	}
	return copyConversation(c), nil
}

func (s *InMemoryConversationStore) List(ctx context.Context, filter *types.ConversationFilter) ([]*chat.Conversation, error) {
	items, err := s.InMemoryStore.List(ctx, filter, conversationFilterFn, conversationSortFn)
	if err != nil {
		return nil, err
	}
	return lo.Map(items, func(c *chat.Conversation, _ int) *chat.Conversation {
		return copyConversation(c)
	}), nil
}

func (s *InMemoryConversationStore) Count(ctx context.Context, filter *types.ConversationFilter) (int, error) {
	return s.InMemoryStore.Count(ctx, filter, conversationFilterFn)
}

func (s *InMemoryConversationStore) Update(ctx context.Context, c *chat.Conversation) error {
	if err := s.InMemoryStore.Update(ctx, c.ID, copyConversation(c)); err != nil {
		return ierr.NewError("conversation not found").
			WithHint("Conversation does not exist").
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (s *InMemoryConversationStore) Delete(ctx context.Context, id string) error {
	if err := s.InMemoryStore.Delete(ctx, id); err != nil {
		return ierr.NewError("conversation not found").
			WithHint("Conversation does not exist").
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func conversationFilterFn(ctx context.Context, c *chat.Conversation, filter interface{}) bool {
	f, ok := filter.(*types.ConversationFilter)
	if !ok {
		return true
	}
	if c.AgencyID != types.GetAgencyID(ctx) {
		return false
	}
	if c.Status != f.GetStatus() {
		return false
	}
	if f.ParticipantID != "" && !c.HasParticipant(f.ParticipantID) {
		return false
	}
	return true
}

func conversationSortFn(i, j *chat.Conversation) bool {
	return i.CreatedAt.After(j.CreatedAt)
}

// InMemoryMessageStore implements chat.MessageRepository
type InMemoryMessageStore struct {
	*InMemoryStore[*chat.Message]
}

// NewInMemoryMessageStore creates a new in-memory message store
func NewInMemoryMessageStore() *InMemoryMessageStore {
	return &InMemoryMessageStore{
		InMemoryStore: NewInMemoryStore[*chat.Message](),
	}
}

func copyMessage(m *chat.Message) *chat.Message {
	if m == nil {
		return nil
	}
	out := *m
	return &out
}

func (s *InMemoryMessageStore) Create(ctx context.Context, m *chat.Message) error {
	if err := s.InMemoryStore.Create(ctx, m.ID, copyMessage(m)); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create message").
			Mark(ierr.ErrAlreadyExists)
	}
	return nil
}

func (s *InMemoryMessageStore) List(ctx context.Context, filter *types.MessageFilter) ([]*chat.Message, error) {
	items, err := s.InMemoryStore.List(ctx, filter, messageFilterFn, messageSortFn)
	if err != nil {
		return nil, err
	}
	return lo.Map(items, func(m *chat.Message, _ int) *chat.Message {
		return copyMessage(m)
	}), nil
}

func (s *InMemoryMessageStore) Count(ctx context.Context, filter *types.MessageFilter) (int, error) {
	return s.InMemoryStore.Count(ctx, filter, messageFilterFn)
}

func messageFilterFn(ctx context.Context, m *chat.Message, filter interface{}) bool {
	f, ok := filter.(*types.MessageFilter)
	if !ok {
		return true
	}
	if m.AgencyID != types.GetAgencyID(ctx) {
		return false
	}
	if m.Status != f.GetStatus() {
		return false
	}
	if f.ConversationID != "" && m.ConversationID != f.ConversationID {
		return false
	}
	return true
}

// messages read oldest first
func messageSortFn(i, j *chat.Message) bool {
	return i.CreatedAt.Before(j.CreatedAt)
}
