package conversation_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"jan-chat/internal/domain/conversation"
	"jan-chat/internal/domain/message"
	"jan-chat/internal/utils/platformerrors"
)

// mockConversationRepository keeps conversations in memory.
type mockConversationRepository struct {
	items     []*conversation.Conversation
	updateErr error
}

func (m *mockConversationRepository) Create(ctx context.Context, conv *conversation.Conversation) error {
	conv.ID = uint(len(m.items) + 1)
	m.items = append(m.items, conv)
	return nil
}

func (m *mockConversationRepository) FindByFilter(ctx context.Context, filter conversation.ConversationFilter) ([]*conversation.Conversation, error) {
	var out []*conversation.Conversation
	for i := len(m.items) - 1; i >= 0; i-- {
		if matches(m.items[i], filter) {
			out = append(out, m.items[i])
		}
	}
	return out, nil
}

func (m *mockConversationRepository) UpdateStatusByFilter(ctx context.Context, filter conversation.ConversationFilter, status conversation.ConversationStatus) (int64, error) {
	if m.updateErr != nil {
		return 0, m.updateErr
	}
	var n int64
	for _, c := range m.items {
		if matches(c, filter) {
			c.Status = status
			n++
		}
	}
	return n, nil
}

func matches(c *conversation.Conversation, f conversation.ConversationFilter) bool {
	if f.PublicID != nil && c.PublicID != *f.PublicID {
		return false
	}
	if f.UserKey != nil && c.UserKey != *f.UserKey {
		return false
	}
	if len(f.Statuses) == 0 {
		return true
	}
	for _, s := range f.Statuses {
		if c.Status == s {
			return true
		}
	}
	return false
}

func hello() []message.Message {
	return []message.Message{
		{Role: message.RoleSystem, Content: "preamble"},
		{Role: message.RoleUser, Content: "Hi"},
	}
}

func TestSaveAndList(t *testing.T) {
	ctx := context.Background()
	repo := &mockConversationRepository{}
	svc := conversation.NewConversationService(repo, zerolog.Nop())

	first, err := svc.SaveConversation(ctx, "u1", "  ", hello())
	if err != nil {
		t.Fatalf("SaveConversation: %v", err)
	}
	if first.Title != message.DefaultTitle {
		t.Errorf("blank title should default, got %q", first.Title)
	}
	if !strings.HasPrefix(first.PublicID, "conv_") {
		t.Errorf("unexpected public id %q", first.PublicID)
	}
	second, _ := svc.SaveConversation(ctx, "u1", "Trip Planning", hello())
	_, _ = svc.SaveConversation(ctx, "u2", "Someone Else", hello())

	list, err := svc.ListConversations(ctx, "u1")
	if err != nil {
		t.Fatalf("ListConversations: %v", err)
	}
	if len(list) != 2 || list[0].PublicID != second.PublicID {
		t.Errorf("expected newest first for u1, got %+v", list)
	}
}

func TestSaveConversation_Validation(t *testing.T) {
	ctx := context.Background()
	svc := conversation.NewConversationService(&mockConversationRepository{}, zerolog.Nop())

	tests := []struct {
		name     string
		userKey  string
		messages []message.Message
	}{
		{name: "missing user", userKey: "", messages: hello()},
		{name: "no messages", userKey: "u1", messages: nil},
		{name: "invalid message", userKey: "u1", messages: []message.Message{{Role: "robot", Content: "x"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SaveConversation(ctx, tt.userKey, "t", tt.messages)
			if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestDeleteConversation(t *testing.T) {
	ctx := context.Background()
	repo := &mockConversationRepository{}
	svc := conversation.NewConversationService(repo, zerolog.Nop())
	conv, _ := svc.SaveConversation(ctx, "u1", "Keep", hello())

	if err := svc.DeleteConversation(ctx, "u2", conv.PublicID); !platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound) {
		t.Errorf("other users cannot delete, got %v", err)
	}
	if err := svc.DeleteConversation(ctx, "u1", conv.PublicID); err != nil {
		t.Fatalf("DeleteConversation: %v", err)
	}
	if err := svc.DeleteConversation(ctx, "u1", conv.PublicID); !platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound) {
		t.Errorf("second delete should be not found, got %v", err)
	}
	list, _ := svc.ListConversations(ctx, "u1")
	if len(list) != 0 {
		t.Errorf("deleted conversations must not be listed")
	}
}

func TestBulkOperations(t *testing.T) {
	ctx := context.Background()
	repo := &mockConversationRepository{}
	svc := conversation.NewConversationService(repo, zerolog.Nop())
	for i := 0; i < 3; i++ {
		_, _ = svc.SaveConversation(ctx, "u1", "c", hello())
	}

	archived, err := svc.ArchiveAllConversations(ctx, "u1")
	if err != nil || archived != 3 {
		t.Fatalf("ArchiveAll = %d, %v", archived, err)
	}
	list, _ := svc.ListConversations(ctx, "u1")
	if len(list) != 3 {
		t.Errorf("archived conversations stay listed, got %d", len(list))
	}

	deleted, err := svc.DeleteAllConversations(ctx, "u1")
	if err != nil || deleted != 3 {
		t.Fatalf("DeleteAll = %d, %v", deleted, err)
	}

	repo.updateErr = errors.New("db down")
	if _, err := svc.ArchiveAllConversations(ctx, "u1"); err == nil {
		t.Errorf("expected repository error to surface")
	}
}
