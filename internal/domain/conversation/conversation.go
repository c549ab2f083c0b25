package conversation

import (
	"context"
	"time"

	"jan-chat/internal/domain/message"
)

// ConversationStatus is the lifecycle state of a stored conversation.
type ConversationStatus string

const (
	ConversationStatusActive   ConversationStatus = "active"
	ConversationStatusArchived ConversationStatus = "archived"
	ConversationStatusDeleted  ConversationStatus = "deleted"
)

// VisibleStatuses are the statuses returned by listings.
var VisibleStatuses = []ConversationStatus{ConversationStatusActive, ConversationStatusArchived}

// Conversation is a server-held chat.
type Conversation struct {
	ID        uint
	PublicID  string
	UserKey   string
	Title     string
	Messages  []message.Message
	Status    ConversationStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ToMessageConversation converts to the shape exchanged with clients.
func (c *Conversation) ToMessageConversation() message.Conversation {
	return message.Conversation{
		ID:       c.PublicID,
		Title:    c.Title,
		Messages: message.Clone(c.Messages),
		UserKey:  c.UserKey,
	}
}

// ConversationFilter narrows repository queries. Nil fields are ignored.
type ConversationFilter struct {
	PublicID *string
	UserKey  *string
	Statuses []ConversationStatus
}

// ConversationRepository persists conversations.
type ConversationRepository interface {
	Create(ctx context.Context, conv *Conversation) error
	FindByFilter(ctx context.Context, filter ConversationFilter) ([]*Conversation, error)
	UpdateStatusByFilter(ctx context.Context, filter ConversationFilter, status ConversationStatus) (int64, error)
}
