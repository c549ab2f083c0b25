package conversationhandler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jan-chat/internal/domain/conversation"
	"jan-chat/internal/domain/message"
)

// memoryRepository is an in-memory conversation store used to drive the real service.
type memoryRepository struct {
	convs []*conversation.Conversation
}

func (r *memoryRepository) Create(ctx context.Context, conv *conversation.Conversation) error {
	conv.ID = uint(len(r.convs) + 1)
	conv.CreatedAt = time.Now().Add(time.Duration(len(r.convs)) * time.Second)
	r.convs = append(r.convs, conv)
	return nil
}

func (r *memoryRepository) FindByFilter(ctx context.Context, f conversation.ConversationFilter) ([]*conversation.Conversation, error) {
	var out []*conversation.Conversation
	for i := len(r.convs) - 1; i >= 0; i-- {
		if matches(r.convs[i], f) {
			out = append(out, r.convs[i])
		}
	}
	return out, nil
}

func (r *memoryRepository) UpdateStatusByFilter(ctx context.Context, f conversation.ConversationFilter, status conversation.ConversationStatus) (int64, error) {
	var n int64
	for _, c := range r.convs {
		if matches(c, f) {
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

func do(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := conversation.NewConversationService(&memoryRepository{}, zerolog.Nop())
	h := NewConversationHandler(svc)

	router := gin.New()
	router.GET("/chats", h.ListChats)
	router.POST("/saveChat", h.SaveChat)
	router.POST("/deleteChat", h.DeleteChat)
	router.POST("/archiveAllChats", h.ArchiveAllChats)
	router.POST("/deleteAllChats", h.DeleteAllChats)
	return router
}

func TestConversationLifecycle(t *testing.T) {
	router := newRouter()

	w := do(t, router, http.MethodPost, "/saveChat", `{"userKey":"u1","title":"First","messages":[{"role":"user","content":"hi"}]}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var saved struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &saved))
	require.NotEmpty(t, saved.ID)

	w = do(t, router, http.MethodPost, "/saveChat", `{"userKey":"u1","title":"Second","messages":[{"role":"user","content":"again"}]}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, router, http.MethodGet, "/chats?userKey=u1", "")
	require.Equal(t, http.StatusOK, w.Code)
	var listed struct {
		Chats []message.Conversation `json:"chats"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed.Chats, 2)
	assert.Equal(t, "Second", listed.Chats[0].Title)

	w = do(t, router, http.MethodPost, "/deleteChat", `{"userKey":"u1","chatId":"`+saved.ID+`"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, router, http.MethodPost, "/deleteChat", `{"userKey":"u1","chatId":"`+saved.ID+`"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, router, http.MethodPost, "/archiveAllChats", `{"userKey":"u1"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":1`)

	w = do(t, router, http.MethodPost, "/deleteAllChats", `{"userKey":"u1"}`)
	assert.Contains(t, w.Body.String(), "Deleted 1 chats")

	w = do(t, router, http.MethodGet, "/chats?userKey=u1", "")
	assert.JSONEq(t, `{"chats":[]}`, w.Body.String())
}

func TestConversationValidation(t *testing.T) {
	router := newRouter()

	tests := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{name: "list without user", method: http.MethodGet, path: "/chats"},
		{name: "save without user", method: http.MethodPost, path: "/saveChat", body: `{"title":"x"}`},
		{name: "delete bad json", method: http.MethodPost, path: "/deleteChat", body: `{`},
		{name: "archive without user", method: http.MethodPost, path: "/archiveAllChats", body: `{}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, router, tt.method, tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		})
	}
}
