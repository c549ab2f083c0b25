package dbschema

import (
	"time"

	"jan-chat/internal/domain/conversation"
	"jan-chat/internal/domain/message"
	"jan-chat/internal/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(Conversation{})
}

// Conversation represents the database schema for conversations
type Conversation struct {
	ID        uint                            `gorm:"primaryKey"`
	PublicID  string                          `gorm:"type:varchar(50);uniqueIndex;not null"`
	UserKey   string                          `gorm:"type:varchar(128);index:idx_conversation_user_status;not null"`
	Title     string                          `gorm:"type:varchar(256);not null"`
	Status    conversation.ConversationStatus `gorm:"type:varchar(20);index:idx_conversation_user_status;not null;default:'active'"`
	Messages  []message.Message               `gorm:"type:jsonb;serializer:json;not null"`
	CreatedAt time.Time                       `gorm:"autoCreateTime"`
	UpdatedAt time.Time                       `gorm:"autoUpdateTime"`
}

func (Conversation) TableName() string {
	return database.SchemaName + ".conversations"
}

func NewSchemaConversation(c *conversation.Conversation) *Conversation {
	return &Conversation{
		ID:        c.ID,
		PublicID:  c.PublicID,
		UserKey:   c.UserKey,
		Title:     c.Title,
		Status:    c.Status,
		Messages:  message.Clone(c.Messages),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// EtoD converts entity (database schema) to domain model.
func (e *Conversation) EtoD() *conversation.Conversation {
	return &conversation.Conversation{
		ID:        e.ID,
		PublicID:  e.PublicID,
		UserKey:   e.UserKey,
		Title:     e.Title,
		Status:    e.Status,
		Messages:  e.Messages,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
