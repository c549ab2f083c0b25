package conversationhandler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"jan-chat/internal/domain/conversation"
	"jan-chat/internal/domain/message"
	"jan-chat/internal/infrastructure/metrics"
	"jan-chat/internal/interfaces/httpserver/requests"
	"jan-chat/internal/interfaces/httpserver/responses"
	"jan-chat/internal/utils/platformerrors"
)

type ConversationService interface {
	ListConversations(ctx context.Context, userKey string) ([]*conversation.Conversation, error)
	SaveConversation(ctx context.Context, userKey, title string, messages []message.Message) (*conversation.Conversation, error)
	DeleteConversation(ctx context.Context, userKey, publicID string) error
	ArchiveAllConversations(ctx context.Context, userKey string) (int64, error)
	DeleteAllConversations(ctx context.Context, userKey string) (int64, error)
}

type ConversationHandler struct {
	service ConversationService
}

func NewConversationHandler(service ConversationService) *ConversationHandler {
	return &ConversationHandler{service: service}
}

// ListChats godoc
// @Summary      List chats
// @Description  Returns the user's active and archived chats, newest first.
// @Tags         chats
// @Produce      json
// @Param        userKey  query     string  true  "User key"
// @Success      200      {object}  responses.ChatsResponse
// @Failure      400      {object}  responses.ErrorResponse
// @Router       /chats [get]
func (h *ConversationHandler) ListChats(c *gin.Context) {
	convs, err := h.service.ListConversations(c.Request.Context(), c.Query("userKey"))
	metrics.RecordConversationOp("list", err == nil)
	if err != nil {
		responses.HandleError(c, err, "failed to list chats")
		return
	}
	c.JSON(http.StatusOK, responses.NewChatsResponse(convs))
}

// SaveChat godoc
// @Summary      Save a chat
// @Description  Stores a conversation and returns its id.
// @Tags         chats
// @Accept       json
// @Produce      json
// @Param        request  body      requests.SaveChatRequest  true  "Conversation"
// @Success      200      {object}  responses.SaveChatResponse
// @Failure      400      {object}  responses.ErrorResponse
// @Router       /saveChat [post]
func (h *ConversationHandler) SaveChat(c *gin.Context) {
	var req requests.SaveChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "invalid request body", "3d4e5f6a-7b8c-4d9e-0f1a-2b3c4d5e6f7a")
		return
	}

	conv, err := h.service.SaveConversation(c.Request.Context(), req.UserKey, req.Title, req.Messages)
	metrics.RecordConversationOp("save", err == nil)
	if err != nil {
		responses.HandleError(c, err, "failed to save chat")
		return
	}
	c.JSON(http.StatusOK, responses.SaveChatResponse{ID: conv.PublicID})
}

// DeleteChat godoc
// @Summary      Delete a chat
// @Tags         chats
// @Accept       json
// @Produce      json
// @Param        request  body      requests.DeleteChatRequest  true  "Chat to delete"
// @Success      200      {object}  responses.MessageResponse
// @Failure      400      {object}  responses.ErrorResponse
// @Failure      404      {object}  responses.ErrorResponse
// @Router       /deleteChat [post]
func (h *ConversationHandler) DeleteChat(c *gin.Context) {
	var req requests.DeleteChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "invalid request body", "4e5f6a7b-8c9d-4e0f-1a2b-3c4d5e6f7a8b")
		return
	}

	err := h.service.DeleteConversation(c.Request.Context(), req.UserKey, req.ChatID)
	metrics.RecordConversationOp("delete", err == nil)
	if err != nil {
		responses.HandleError(c, err, "failed to delete chat")
		return
	}
	c.JSON(http.StatusOK, responses.MessageResponse{Message: "Chat deleted successfully"})
}

// ArchiveAllChats godoc
// @Summary      Archive all chats
// @Tags         chats
// @Accept       json
// @Produce      json
// @Param        request  body      requests.UserKeyRequest  true  "User"
// @Success      200      {object}  responses.CountResponse
// @Failure      400      {object}  responses.ErrorResponse
// @Router       /archiveAllChats [post]
func (h *ConversationHandler) ArchiveAllChats(c *gin.Context) {
	h.bulk(c, "archive_all", "Archived %d chats", h.service.ArchiveAllConversations)
}

// DeleteAllChats godoc
// @Summary      Delete all chats
// @Tags         chats
// @Accept       json
// @Produce      json
// @Param        request  body      requests.UserKeyRequest  true  "User"
// @Success      200      {object}  responses.CountResponse
// @Failure      400      {object}  responses.ErrorResponse
// @Router       /deleteAllChats [post]
func (h *ConversationHandler) DeleteAllChats(c *gin.Context) {
	h.bulk(c, "delete_all", "Deleted %d chats", h.service.DeleteAllConversations)
}

func (h *ConversationHandler) bulk(c *gin.Context, op, format string, fn func(context.Context, string) (int64, error)) {
	var req requests.UserKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "invalid request body", "5f6a7b8c-9d0e-4f1a-2b3c-4d5e6f7a8b9c")
		return
	}

	count, err := fn(c.Request.Context(), req.UserKey)
	metrics.RecordConversationOp(op, err == nil)
	if err != nil {
		responses.HandleError(c, err, "failed to update chats")
		return
	}
	c.JSON(http.StatusOK, responses.CountResponse{Message: fmt.Sprintf(format, count), Count: count})
}
