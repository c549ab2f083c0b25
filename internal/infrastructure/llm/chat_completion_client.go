package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/tidwall/gjson"
	"go.opentelemetry.io/otel/attribute"
	"resty.dev/v3"

	"jan-chat/internal/domain/message"
	"jan-chat/internal/infrastructure/metrics"
	"jan-chat/internal/infrastructure/observability"
	"jan-chat/internal/utils/platformerrors"
)

const tracerName = "chat-api/llm"

// ChatCompletionClient talks to any OpenAI compatible /chat/completions endpoint.
type ChatCompletionClient struct {
	client  *resty.Client
	baseURL string
	apiKey  string
	name    string
}

func NewChatCompletionClient(client *resty.Client, name, baseURL, apiKey string) *ChatCompletionClient {
	return &ChatCompletionClient{
		client:  client,
		baseURL: normalizeBaseURL(baseURL),
		apiKey:  strings.TrimSpace(apiKey),
		name:    name,
	}
}

func (c *ChatCompletionClient) CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (*openai.ChatCompletionResponse, error) {
	var respBody openai.ChatCompletionResponse
	resp, err := c.prepareRequest(ctx).
		SetBody(request).
		SetResult(&respBody).
		Post(c.endpoint("/chat/completions"))
	if err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeExternal,
			"chat completion request failed", err, "2b3c4d5e-6f7a-4b8c-9d0e-1f2a3b4c5d6e")
	}
	if resp.IsError() {
		return nil, c.errorFromResponse(ctx, resp, "chat completion request failed")
	}
	return &respBody, nil
}

func (c *ChatCompletionClient) prepareRequest(ctx context.Context) *resty.Request {
	req := c.client.R().SetContext(ctx)
	req.SetHeader("Content-Type", "application/json")
	if c.apiKey != "" {
		req.SetHeader("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	}
	return req
}

func (c *ChatCompletionClient) endpoint(path string) string {
	if c.baseURL == "" {
		return path
	}
	if strings.HasPrefix(path, "/") {
		return c.baseURL + path
	}
	return c.baseURL + "/" + path
}

// errorFromResponse surfaces the provider's error.message when the body has one.
func (c *ChatCompletionClient) errorFromResponse(ctx context.Context, resp *resty.Response, msg string) error {
	body := strings.TrimSpace(resp.String())
	detail := body
	if gjson.Valid(body) {
		if m := gjson.Get(body, "error.message"); m.Exists() && m.String() != "" {
			detail = m.String()
		}
	}
	if detail == "" {
		detail = fmt.Sprintf("status %d", resp.StatusCode())
	}
	return platformerrors.NewErrorWithContext(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeExternal,
		fmt.Sprintf("%s: %s", msg, detail), nil, "a1f46e0d-4017-4411-ac05-987946c3066d",
		map[string]any{"client": c.name, "status": resp.StatusCode()})
}

func normalizeBaseURL(base string) string {
	return strings.TrimRight(strings.TrimSpace(base), "/")
}

// Completer binds a model and sampling settings to the client and satisfies
// the completer interfaces of the chat and title services.
type Completer struct {
	client      *ChatCompletionClient
	model       string
	temperature float32
	maxTokens   int
}

func NewCompleter(client *ChatCompletionClient, model string, temperature float32, maxTokens int) *Completer {
	return &Completer{client: client, model: model, temperature: temperature, maxTokens: maxTokens}
}

func (m *Completer) Model() string { return m.model }

// Complete returns the first choice's content.
func (m *Completer) Complete(ctx context.Context, messages []message.Message) (string, error) {
	ctx, span := observability.StartSpan(ctx, tracerName, "llm.complete")
	defer span.End()
	observability.AddSpanAttributes(ctx,
		attribute.String("llm.model", m.model),
		attribute.Int("llm.messages", len(messages)),
	)

	req := openai.ChatCompletionRequest{
		Model:       m.model,
		Messages:    toOpenAIMessages(messages),
		Temperature: m.temperature,
		MaxTokens:   m.maxTokens,
	}

	start := time.Now()
	resp, err := m.client.CreateChatCompletion(ctx, req)
	metrics.RecordLLMCall(m.model, err == nil, time.Since(start).Seconds())
	if err != nil {
		observability.RecordError(ctx, err)
		return "", err
	}
	metrics.RecordTokens(m.model, resp.Usage.PromptTokens, resp.Usage.CompletionTokens)

	if len(resp.Choices) == 0 {
		err := platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeExternal,
			"model returned no choices", nil, "3c4d5e6f-7a8b-4c9d-0e1f-2a3b4c5d6e7f")
		observability.RecordError(ctx, err)
		return "", err
	}
	return resp.Choices[0].Message.Content, nil
}

func toOpenAIMessages(messages []message.Message) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, msg := range messages {
		out = append(out, openai.ChatCompletionMessage{
			Role:    toOpenAIRole(msg.Role),
			Content: msg.Content,
		})
	}
	return out
}

func toOpenAIRole(role message.Role) string {
	switch role {
	case message.RoleSystem:
		return openai.ChatMessageRoleSystem
	case message.RoleAssistant:
		return openai.ChatMessageRoleAssistant
	default:
		return openai.ChatMessageRoleUser
	}
}
