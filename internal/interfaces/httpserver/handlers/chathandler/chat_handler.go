package chathandler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"jan-chat/internal/domain/chat"
	"jan-chat/internal/interfaces/httpserver/requests"
	"jan-chat/internal/interfaces/httpserver/responses"
	"jan-chat/internal/utils/platformerrors"
)

const replyFailedMessage = "Failed to get a reply from the assistant"

// Replier produces the assistant reply for one user turn.
type Replier interface {
	Reply(ctx context.Context, req chat.ReplyRequest) (string, error)
}

type ChatHandler struct {
	replier Replier
	log     zerolog.Logger
}

func NewChatHandler(replier Replier, log zerolog.Logger) *ChatHandler {
	return &ChatHandler{replier: replier, log: log.With().Str("component", "chat-handler").Logger()}
}

// Chat godoc
// @Summary      Send a chat message
// @Description  Forwards the user turn with the conversation history and persona to the language model.
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        request  body      requests.ChatRequest  true  "Chat request"
// @Success      200      {object}  responses.ChatResponse
// @Failure      400      {object}  responses.SimpleError
// @Failure      500      {object}  responses.SimpleError
// @Router       /chat [post]
func (h *ChatHandler) Chat(c *gin.Context) {
	var req requests.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, responses.SimpleError{Error: "Invalid request body"})
		return
	}

	reply, err := h.replier.Reply(c.Request.Context(), chat.ReplyRequest{
		UserMessage:    req.UserMessage,
		History:        req.Messages,
		AIMood:         req.AIMood,
		AIInstructions: req.AIInstructions,
	})
	if err != nil {
		_ = c.Error(err)
		var perr *platformerrors.PlatformError
		if errors.As(err, &perr) && perr.GetErrorType() == platformerrors.ErrorTypeValidation {
			c.AbortWithStatusJSON(http.StatusBadRequest, responses.SimpleError{Error: perr.Message})
			return
		}
		h.log.Error().Err(err).Msg("chat reply failed")
		c.AbortWithStatusJSON(http.StatusInternalServerError, responses.SimpleError{Error: replyFailedMessage})
		return
	}

	c.JSON(http.StatusOK, responses.ChatResponse{Reply: reply})
}
