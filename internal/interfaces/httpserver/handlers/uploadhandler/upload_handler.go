package uploadhandler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"jan-chat/internal/domain/upload"
	"jan-chat/internal/infrastructure/metrics"
	"jan-chat/internal/interfaces/httpserver/responses"
	"jan-chat/internal/utils/platformerrors"
)

// multipartOverhead is the slack allowed on top of the file limit for form
// boundaries and the other fields.
const multipartOverhead = 1 << 20

type Uploader interface {
	Upload(ctx context.Context, req upload.UploadRequest) (*upload.Result, error)
}

// Downloader reads stored files back for the local file route.
type Downloader interface {
	Download(ctx context.Context, key string) (io.ReadCloser, string, error)
}

type UploadHandler struct {
	uploader   Uploader
	downloader Downloader
	maxBytes   int64
	log        zerolog.Logger
}

func NewUploadHandler(uploader Uploader, downloader Downloader, maxBytes int64, log zerolog.Logger) *UploadHandler {
	return &UploadHandler{
		uploader:   uploader,
		downloader: downloader,
		maxBytes:   maxBytes,
		log:        log.With().Str("component", "upload-handler").Logger(),
	}
}

// Upload godoc
// @Summary      Upload a file
// @Description  Stores one multipart file and returns a link to it.
// @Tags         files
// @Accept       multipart/form-data
// @Produce      json
// @Param        file     formData  file    true   "File to upload"
// @Param        userKey  formData  string  false  "Uploading user"
// @Success      200      {object}  responses.UploadResponse
// @Failure      400      {object}  responses.ErrorResponse
// @Failure      413      {object}  responses.ErrorResponse
// @Failure      502      {object}  responses.ErrorResponse
// @Router       /upload [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	if h.maxBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes+multipartOverhead)
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			responses.HandleNewError(c, platformerrors.ErrorTypePayloadTooBig, "file is too large", "8e9f0a1b-2c3d-4e4f-5a6b-7c8d9e0f1a2b")
			return
		}
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "file is required", "9f0a1b2c-3d4e-4f5a-6b7c-8d9e0f1a2b3c")
		return
	}
	defer file.Close()

	limit := h.maxBytes
	if limit <= 0 {
		limit = header.Size
	}
	data, err := io.ReadAll(io.LimitReader(file, limit+1))
	if err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "failed to read file", "0a1b2c3d-4e5f-4a6b-7c8d-9e0f1a2b3c4d")
		return
	}

	result, err := h.uploader.Upload(c.Request.Context(), upload.UploadRequest{
		Filename: header.Filename,
		Data:     data,
		UserKey:  strings.TrimSpace(c.PostForm("userKey")),
	})
	if err != nil {
		metrics.RecordUpload(header.Header.Get("Content-Type"), false, int64(len(data)))
		h.log.Warn().Err(err).Str("filename", header.Filename).Msg("upload failed")
		responses.HandleError(c, err, "upload failed")
		return
	}
	metrics.RecordUpload(result.File.MimeType, true, result.File.Bytes)

	c.JSON(http.StatusOK, responses.UploadResponse{
		Message: "File uploaded successfully",
		File: responses.UploadedFile{
			Name: result.File.Filename,
			URL:  result.URL,
		},
	})
}

// Serve godoc
// @Summary      Download a stored file
// @Description  Streams a file kept by the local storage backend.
// @Tags         files
// @Produce      octet-stream
// @Param        key  path  string  true  "Storage key"
// @Success      200  "binary data"
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /files/{key} [get]
func (h *UploadHandler) Serve(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("key"), "/")
	if key == "" {
		responses.HandleNewError(c, platformerrors.ErrorTypeNotFound, "file not found", "1b2c3d4e-5f6a-4b7c-8d9e-0f1a2b3c4d5e")
		return
	}

	body, contentType, err := h.downloader.Download(c.Request.Context(), key)
	if err != nil {
		h.log.Debug().Err(err).Str("key", key).Msg("file lookup failed")
		responses.HandleNewError(c, platformerrors.ErrorTypeNotFound, "file not found", "2c3d4e5f-6a7b-4c8d-9e0f-1a2b3c4d5e6f")
		return
	}
	defer body.Close()

	c.DataFromReader(http.StatusOK, -1, contentType, body, nil)
}
