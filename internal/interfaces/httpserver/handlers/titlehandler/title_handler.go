package titlehandler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"jan-chat/internal/domain/message"
	"jan-chat/internal/infrastructure/metrics"
	"jan-chat/internal/interfaces/httpserver/requests"
	"jan-chat/internal/interfaces/httpserver/responses"
	"jan-chat/internal/utils/platformerrors"
)

type TitleGenerator interface {
	Generate(ctx context.Context, messages []message.Message) string
}

type TitleHandler struct {
	generator TitleGenerator
}

func NewTitleHandler(generator TitleGenerator) *TitleHandler {
	return &TitleHandler{generator: generator}
}

// GenerateChatTitle godoc
// @Summary      Generate a chat title
// @Description  Summarises the last messages into a short title. Falls back to "Untitled Chat".
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        request  body      requests.TitleRequest  true  "Conversation messages"
// @Success      200      {object}  responses.TitleResponse
// @Failure      400      {object}  responses.ErrorResponse
// @Router       /generateChatTitle [post]
func (h *TitleHandler) GenerateChatTitle(c *gin.Context) {
	var req requests.TitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "invalid request body", "7d8e9f0a-1b2c-4d3e-4f5a-6b7c8d9e0f1a")
		return
	}

	title := message.DefaultTitle
	if len(req.Messages) > 0 {
		title = h.generator.Generate(c.Request.Context(), req.Messages)
	}
	metrics.RecordTitle(title == message.DefaultTitle)
	c.JSON(http.StatusOK, responses.TitleResponse{Title: title})
}
