package session

import (
	"context"
	"strings"
	"testing"

	"jan-chat/internal/domain/message"
)

func TestStart_SinglePreamble(t *testing.T) {
	s := NewStore("u1")
	_ = s.Append(context.Background(), message.Message{Role: message.RoleUser, Content: "old"})

	s.Start()

	msgs := s.Messages()
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message after Start, got %d", len(msgs))
	}
	if msgs[0].Role != message.RoleSystem || msgs[0].Content != Preamble {
		t.Errorf("unexpected first message: %+v", msgs[0])
	}
	if !strings.Contains(Preamble, message.DownloadMarker) || !strings.Contains(Preamble, message.NoReferences) {
		t.Errorf("preamble must mention the download token and %q", message.NoReferences)
	}
}

func TestEnsureSystemPreamble(t *testing.T) {
	tests := []struct {
		name    string
		initial []message.Message
		wantLen int
	}{
		{name: "empty list", initial: nil, wantLen: 1},
		{name: "user first", initial: []message.Message{{Role: message.RoleUser, Content: "Hi"}}, wantLen: 2},
		{name: "assistant first", initial: []message.Message{{Role: message.RoleAssistant, Content: "Hello"}, {Role: message.RoleUser, Content: "Hi"}}, wantLen: 3},
		{name: "already system", initial: []message.Message{{Role: message.RoleSystem, Content: "custom"}, {Role: message.RoleUser, Content: "Hi"}}, wantLen: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore("u1")
			s.Replace(message.Conversation{Messages: tt.initial})

			s.EnsureSystemPreamble()

			msgs := s.Messages()
			if len(msgs) != tt.wantLen {
				t.Fatalf("len = %d, want %d", len(msgs), tt.wantLen)
			}
			if msgs[0].Role != message.RoleSystem {
				t.Errorf("element 0 role = %s, want system", msgs[0].Role)
			}
		})
	}
}

func TestMount_RunsPreambleOnce(t *testing.T) {
	ctx := context.Background()
	s := NewStore("u1")
	s.Replace(message.Conversation{Messages: []message.Message{{Role: message.RoleUser, Content: "Hi"}}})

	s.Mount()
	if s.State() != StateMounted {
		t.Fatalf("expected mounted state")
	}
	if s.PreambleRuns() != 1 {
		t.Fatalf("expected 1 preamble run after mount, got %d", s.PreambleRuns())
	}

	for _, text := range []string{"one", "two", "three"} {
		if err := s.Append(ctx, message.Message{Role: message.RoleUser, Content: text}); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}
	s.Mount()
	s.Replace(message.Conversation{Messages: []message.Message{{Role: message.RoleUser, Content: "loaded"}}})

	if s.PreambleRuns() != 1 {
		t.Errorf("preamble re-fired on mutation: runs = %d", s.PreambleRuns())
	}
	if got := s.Messages(); got[0].Role != message.RoleUser {
		t.Errorf("mutation must not insert a preamble while mounted, first role = %s", got[0].Role)
	}

	s.Unmount()
	s.Mount()
	if s.PreambleRuns() != 2 {
		t.Errorf("expected a second run after remount, got %d", s.PreambleRuns())
	}
	if got := s.Messages(); got[0].Role != message.RoleSystem {
		t.Errorf("remount should restore the preamble")
	}
}

func TestAppend_Validation(t *testing.T) {
	ctx := context.Background()
	s := NewStore("u1")
	s.Start()

	if err := s.Append(ctx, message.Message{Role: message.RoleUser}); err == nil {
		t.Errorf("expected error for missing content")
	}
	if err := s.Append(ctx, message.Message{Content: "no role"}); err == nil {
		t.Errorf("expected error for missing role")
	}
	if err := s.Append(ctx, message.Message{Role: message.RoleUser, Content: "Hi"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	msgs := s.Messages()
	if len(msgs) != 2 || msgs[1].Content != "Hi" {
		t.Errorf("unexpected messages: %+v", msgs)
	}
	if !s.HasUserContent() {
		t.Errorf("expected user content")
	}
}

func TestReplaceAndClear(t *testing.T) {
	s := NewStore("u1")
	s.Replace(message.Conversation{ID: "conv_1", Title: "", UserKey: "someone-else", Messages: []message.Message{{Role: message.RoleUser, Content: "Hi"}}})

	conv := s.Conversation()
	if conv.ID != "conv_1" || conv.Title != message.DefaultTitle || conv.UserKey != "u1" {
		t.Errorf("unexpected conversation: %+v", conv)
	}

	s.Clear()
	if len(s.Messages()) != 0 || s.Conversation().ID != "" {
		t.Errorf("Clear should empty the conversation")
	}
	if s.HasUserContent() {
		t.Errorf("cleared store has no user content")
	}
}
