package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"resty.dev/v3"

	"jan-chat/internal/domain/message"
	"jan-chat/internal/utils/platformerrors"
)

func TestCompleter_Complete(t *testing.T) {
	var got openai.ChatCompletionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"c1","choices":[{"index":0,"message":{"role":"assistant","content":"Hi there"}}],"usage":{"prompt_tokens":3,"completion_tokens":2}}`))
	}))
	defer server.Close()

	client := NewChatCompletionClient(resty.New(), "test", server.URL+"/v1/", "sk-test")
	completer := NewCompleter(client, "gpt-test", 0.5, 0)

	reply, err := completer.Complete(context.Background(), []message.Message{
		{Role: message.RoleSystem, Content: "preamble"},
		{Role: message.RoleUser, Content: "Hello"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Hi there", reply)
	assert.Equal(t, "gpt-test", got.Model)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, got.Messages[0].Role)
	assert.Equal(t, "Hello", got.Messages[1].Content)
}

func TestCompleter_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limited","type":"rate_limit"}}`))
	}))
	defer server.Close()

	completer := NewCompleter(NewChatCompletionClient(resty.New(), "test", server.URL, ""), "gpt-test", 0, 0)

	_, err := completer.Complete(context.Background(), []message.Message{{Role: message.RoleUser, Content: "Hello"}})
	require.Error(t, err)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeExternal))
	assert.True(t, strings.Contains(err.Error(), "rate limited"), err.Error())
}

func TestCompleter_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"c1","choices":[]}`))
	}))
	defer server.Close()

	completer := NewCompleter(NewChatCompletionClient(resty.New(), "test", server.URL, ""), "gpt-test", 0, 0)

	_, err := completer.Complete(context.Background(), []message.Message{{Role: message.RoleUser, Content: "Hello"}})
	assert.Error(t, err)
}
