package chatapi

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"resty.dev/v3"

	"jan-chat/internal/domain/history"
	"jan-chat/internal/domain/message"
	"jan-chat/internal/utils/httpclients"
	"jan-chat/internal/utils/platformerrors"
)

// ChatRequest is the body of POST /chat.
type ChatRequest struct {
	UserMessage    string            `json:"userMessage"`
	Messages       []message.Message `json:"messages,omitempty"`
	AIMood         string            `json:"aiMood,omitempty"`
	AIInstructions string            `json:"aiInstructions,omitempty"`
}

// UploadedFile is what POST /upload returns for a stored file.
type UploadedFile struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ContactRequest is the body of POST /contact.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

type uploadResponse struct {
	Message string       `json:"message"`
	File    UploadedFile `json:"file"`
}

type titleRequest struct {
	Messages []message.Message `json:"messages"`
}

type titleResponse struct {
	Title string `json:"title"`
}

type chatsResponse struct {
	Chats []message.Conversation `json:"chats"`
}

type saveChatRequest struct {
	UserKey  string            `json:"userKey"`
	Title    string            `json:"title"`
	Messages []message.Message `json:"messages"`
}

type saveChatResponse struct {
	ID string `json:"id"`
}

type deleteChatRequest struct {
	UserKey string `json:"userKey"`
	ChatID  string `json:"chatId"`
}

type userKeyRequest struct {
	UserKey string `json:"userKey"`
}

type countResponse struct {
	Message string `json:"message"`
	Count   int64  `json:"count"`
}

// Client calls the chat API server.
type Client struct {
	client  *resty.Client
	baseURL string
}

var (
	_ history.Remote      = (*Client)(nil)
	_ history.TitleSource = (*Client)(nil)
)

func NewClient(baseURL string, timeout time.Duration) *Client {
	client := httpclients.NewClient("chat-api")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return newClient(client, baseURL)
}

func newClient(client *resty.Client, baseURL string) *Client {
	return &Client{client: client, baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/")}
}

// SendChat posts one user turn and returns the raw assistant reply.
func (c *Client) SendChat(ctx context.Context, req ChatRequest) (string, error) {
	var out chatResponse
	if err := c.post(ctx, "/chat", req, &out); err != nil {
		return "", err
	}
	return out.Reply, nil
}

// Upload sends one file as multipart field "file".
func (c *Client) Upload(ctx context.Context, userKey, filename string, data []byte) (UploadedFile, error) {
	var out uploadResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetMultipartField("file", filename, "", bytes.NewReader(data)).
		SetFormData(map[string]string{"userKey": userKey}).
		SetResult(&out).
		Post(c.url("/upload"))
	if err := c.check(ctx, resp, err, "/upload"); err != nil {
		return UploadedFile{}, err
	}
	return out.File, nil
}

// GenerateTitle implements history.TitleSource.
func (c *Client) GenerateTitle(ctx context.Context, messages []message.Message) (string, error) {
	var out titleResponse
	if err := c.post(ctx, "/generateChatTitle", titleRequest{Messages: messages}, &out); err != nil {
		return "", err
	}
	return out.Title, nil
}

// ListChats implements history.Remote.
func (c *Client) ListChats(ctx context.Context, userKey string) ([]message.Conversation, error) {
	var out chatsResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("userKey", userKey).
		SetResult(&out).
		Get(c.url("/chats"))
	if err := c.check(ctx, resp, err, "/chats"); err != nil {
		return nil, err
	}
	return out.Chats, nil
}

// SaveChat implements history.Remote.
func (c *Client) SaveChat(ctx context.Context, conv message.Conversation) (string, error) {
	var out saveChatResponse
	req := saveChatRequest{UserKey: conv.UserKey, Title: conv.Title, Messages: conv.Messages}
	if err := c.post(ctx, "/saveChat", req, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

// DeleteChat implements history.Remote.
func (c *Client) DeleteChat(ctx context.Context, userKey, chatID string) error {
	return c.post(ctx, "/deleteChat", deleteChatRequest{UserKey: userKey, ChatID: chatID}, nil)
}

// ArchiveAllChats implements history.Remote.
func (c *Client) ArchiveAllChats(ctx context.Context, userKey string) (int64, error) {
	var out countResponse
	if err := c.post(ctx, "/archiveAllChats", userKeyRequest{UserKey: userKey}, &out); err != nil {
		return 0, err
	}
	return out.Count, nil
}

// DeleteAllChats implements history.Remote.
func (c *Client) DeleteAllChats(ctx context.Context, userKey string) (int64, error) {
	var out countResponse
	if err := c.post(ctx, "/deleteAllChats", userKeyRequest{UserKey: userKey}, &out); err != nil {
		return 0, err
	}
	return out.Count, nil
}

// Contact submits the contact form.
func (c *Client) Contact(ctx context.Context, req ContactRequest) error {
	return c.post(ctx, "/contact", req, nil)
}

func (c *Client) post(ctx context.Context, path string, body, result any) error {
	req := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
	if result != nil {
		req.SetResult(result)
	}
	resp, err := req.Post(c.url(path))
	return c.check(ctx, resp, err, path)
}

func (c *Client) url(path string) string {
	return c.baseURL + path
}

// check turns transport failures and non-2xx responses into platform errors,
// keeping the server's error text when it sent one.
func (c *Client) check(ctx context.Context, resp *resty.Response, err error, path string) error {
	if err != nil {
		return platformerrors.NewError(ctx, platformerrors.LayerClient, platformerrors.ErrorTypeExternal,
			fmt.Sprintf("request %s failed", path), err, "4d5e6f7a-8b9c-4d0e-1f2a-3b4c5d6e7f8a")
	}
	if !resp.IsError() {
		return nil
	}

	detail := serverMessage(resp.String())
	if detail == "" {
		detail = resp.Status()
	}
	errType := platformerrors.ErrorTypeExternal
	switch resp.StatusCode() {
	case 400:
		errType = platformerrors.ErrorTypeValidation
	case 404:
		errType = platformerrors.ErrorTypeNotFound
	case 413:
		errType = platformerrors.ErrorTypePayloadTooBig
	}
	return platformerrors.NewErrorWithContext(ctx, platformerrors.LayerClient, errType, detail, nil,
		"5e6f7a8b-9c0d-4e1f-2a3b-4c5d6e7f8a9b", map[string]any{"path": path, "status": resp.StatusCode()})
}

func serverMessage(body string) string {
	body = strings.TrimSpace(body)
	if !gjson.Valid(body) {
		return body
	}
	for _, key := range []string{"message", "error"} {
		if v := gjson.Get(body, key); v.Type == gjson.String && v.String() != "" {
			return v.String()
		}
	}
	return ""
}
