package contacthandler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"jan-chat/internal/domain/contact"
	"jan-chat/internal/infrastructure/metrics"
	"jan-chat/internal/interfaces/httpserver/requests"
	"jan-chat/internal/interfaces/httpserver/responses"
	"jan-chat/internal/utils/platformerrors"
)

type Submitter interface {
	Submit(ctx context.Context, in contact.Submission) (*contact.Submission, error)
}

type ContactHandler struct {
	submitter Submitter
}

func NewContactHandler(submitter Submitter) *ContactHandler {
	return &ContactHandler{submitter: submitter}
}

// Contact godoc
// @Summary      Submit the contact form
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        request  body      requests.ContactRequest  true  "Contact form"
// @Success      200      {object}  responses.MessageResponse
// @Failure      400      {object}  responses.ErrorResponse
// @Router       /contact [post]
func (h *ContactHandler) Contact(c *gin.Context) {
	var req requests.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "invalid request body", "6a7b8c9d-0e1f-4a2b-3c4d-5e6f7a8b9c0d")
		return
	}

	_, err := h.submitter.Submit(c.Request.Context(), contact.Submission{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	metrics.RecordContactSubmission(err == nil)
	if err != nil {
		responses.HandleError(c, err, "failed to submit contact form")
		return
	}
	c.JSON(http.StatusOK, responses.MessageResponse{Message: "Thanks for reaching out. We will get back to you soon."})
}
