package chathandler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"jan-chat/internal/domain/chat"
	"jan-chat/internal/utils/platformerrors"
)

type mockReplier struct {
	ReplyFunc func(ctx context.Context, req chat.ReplyRequest) (string, error)
}

func (m *mockReplier) Reply(ctx context.Context, req chat.ReplyRequest) (string, error) {
	return m.ReplyFunc(ctx, req)
}

func TestChatHandler_Chat(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		body       string
		replier    *mockReplier
		wantStatus int
		wantKey    string
		wantValue  string
	}{
		{
			name: "reply",
			body: `{"userMessage":"hi","aiMood":"calm","messages":[{"role":"user","content":"earlier"}]}`,
			replier: &mockReplier{ReplyFunc: func(ctx context.Context, req chat.ReplyRequest) (string, error) {
				if req.AIMood != "calm" || len(req.History) != 1 {
					return "", errors.New("unexpected request")
				}
				return "hello", nil
			}},
			wantStatus: http.StatusOK,
			wantKey:    "reply",
			wantValue:  "hello",
		},
		{
			name:       "malformed body",
			body:       `{"userMessage":`,
			replier:    &mockReplier{},
			wantStatus: http.StatusBadRequest,
			wantKey:    "error",
			wantValue:  "Invalid request body",
		},
		{
			name: "missing message",
			body: `{"userMessage":""}`,
			replier: &mockReplier{ReplyFunc: func(ctx context.Context, req chat.ReplyRequest) (string, error) {
				return "", platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
					"userMessage is required", nil, "test")
			}},
			wantStatus: http.StatusBadRequest,
			wantKey:    "error",
			wantValue:  "userMessage is required",
		},
		{
			name: "model failure",
			body: `{"userMessage":"hi"}`,
			replier: &mockReplier{ReplyFunc: func(ctx context.Context, req chat.ReplyRequest) (string, error) {
				return "", errors.New("upstream 503")
			}},
			wantStatus: http.StatusInternalServerError,
			wantKey:    "error",
			wantValue:  replyFailedMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewChatHandler(tt.replier, zerolog.Nop())
			router := gin.New()
			router.POST("/chat", h.Chat)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (%s)", w.Code, tt.wantStatus, w.Body.String())
			}
			var body map[string]string
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body[tt.wantKey] != tt.wantValue {
				t.Errorf("%s = %q, want %q", tt.wantKey, body[tt.wantKey], tt.wantValue)
			}
			if len(body) != 1 {
				t.Errorf("expected a single field, got %v", body)
			}
		})
	}
}
