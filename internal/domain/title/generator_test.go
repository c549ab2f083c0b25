package title

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"jan-chat/internal/domain/message"
)

// MockCompleter records the outbound request.
type MockCompleter struct {
	CompleteFunc func(ctx context.Context, messages []message.Message) (string, error)
	Calls        [][]message.Message
}

func (m *MockCompleter) Complete(ctx context.Context, messages []message.Message) (string, error) {
	m.Calls = append(m.Calls, messages)
	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, messages)
	}
	return "", nil
}

func conversationOf(n int) []message.Message {
	msgs := make([]message.Message, n)
	for i := range msgs {
		role := message.RoleUser
		if i%2 == 1 {
			role = message.RoleAssistant
		}
		msgs[i] = message.Message{Role: role, Content: fmt.Sprintf("message %d", i)}
	}
	return msgs
}

func TestGenerate_FallbackOnFailure(t *testing.T) {
	mock := &MockCompleter{
		CompleteFunc: func(ctx context.Context, messages []message.Message) (string, error) {
			return "", errors.New("connection refused")
		},
	}
	gen := NewGenerator(mock, zerolog.Nop())

	if got := gen.Generate(context.Background(), conversationOf(3)); got != message.DefaultTitle {
		t.Errorf("Generate() = %q, want %q", got, message.DefaultTitle)
	}
}

func TestGenerate_FallbackOnEmptyTitle(t *testing.T) {
	mock := &MockCompleter{
		CompleteFunc: func(ctx context.Context, messages []message.Message) (string, error) {
			return ` "" `, nil
		},
	}
	gen := NewGenerator(mock, zerolog.Nop())

	if got := gen.Generate(context.Background(), conversationOf(2)); got != message.DefaultTitle {
		t.Errorf("Generate() = %q, want %q", got, message.DefaultTitle)
	}
}

func TestGenerate_TrimsTitle(t *testing.T) {
	mock := &MockCompleter{
		CompleteFunc: func(ctx context.Context, messages []message.Message) (string, error) {
			return "  \"Planning a Kyoto Trip\"\n", nil
		},
	}
	gen := NewGenerator(mock, zerolog.Nop())

	if got := gen.Generate(context.Background(), conversationOf(4)); got != "Planning a Kyoto Trip" {
		t.Errorf("Generate() = %q", got)
	}
}

func TestGenerate_WindowSize(t *testing.T) {
	tests := []struct {
		name    string
		input   int
		wantLen int
	}{
		{name: "empty", input: 0, wantLen: 2},
		{name: "short", input: 3, wantLen: 5},
		{name: "exactly ten", input: 10, wantLen: 12},
		{name: "long", input: 25, wantLen: 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &MockCompleter{
				CompleteFunc: func(ctx context.Context, messages []message.Message) (string, error) {
					return "Some Title", nil
				},
			}
			gen := NewGenerator(mock, zerolog.Nop())
			input := conversationOf(tt.input)

			gen.Generate(context.Background(), input)

			if len(mock.Calls) != 1 {
				t.Fatalf("expected a single request, got %d", len(mock.Calls))
			}
			sent := mock.Calls[0]
			if len(sent) != tt.wantLen {
				t.Fatalf("request has %d messages, want %d", len(sent), tt.wantLen)
			}
			if tt.input > 0 {
				first := tt.input - min(tt.input, WindowSize)
				if sent[0].Content != input[first].Content {
					t.Errorf("window starts with %q, want %q", sent[0].Content, input[first].Content)
				}
				if sent[len(sent)-3].Content != input[tt.input-1].Content {
					t.Errorf("window must end with the newest message")
				}
			}
			if sent[len(sent)-2].Role != message.RoleSystem || sent[len(sent)-2].Content != SystemInstruction {
				t.Errorf("second to last message must be the system instruction")
			}
			if sent[len(sent)-1].Role != message.RoleUser {
				t.Errorf("last message must be the user instruction")
			}
		})
	}
}
