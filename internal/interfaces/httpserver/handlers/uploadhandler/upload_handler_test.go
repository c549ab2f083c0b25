package uploadhandler

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jan-chat/internal/domain/upload"
	"jan-chat/internal/utils/platformerrors"
)

type mockUploader struct {
	UploadFunc func(ctx context.Context, req upload.UploadRequest) (*upload.Result, error)
	last       upload.UploadRequest
}

func (m *mockUploader) Upload(ctx context.Context, req upload.UploadRequest) (*upload.Result, error) {
	m.last = req
	return m.UploadFunc(ctx, req)
}

type mapDownloader map[string]string

func (d mapDownloader) Download(ctx context.Context, key string) (io.ReadCloser, string, error) {
	body, ok := d[key]
	if !ok {
		return nil, "", errors.New("missing")
	}
	return io.NopCloser(strings.NewReader(body)), "text/plain", nil
}

func multipartBody(t *testing.T, field, filename, content string, extra map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range extra {
		require.NoError(t, w.WriteField(k, v))
	}
	if field != "" {
		part, err := w.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func newRouter(h *UploadHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/upload", h.Upload)
	router.GET("/files/*key", h.Serve)
	return router
}

func TestUpload_Success(t *testing.T) {
	uploader := &mockUploader{UploadFunc: func(ctx context.Context, req upload.UploadRequest) (*upload.Result, error) {
		return &upload.Result{
			File: &upload.FileObject{Filename: req.Filename, MimeType: "text/plain", Bytes: int64(len(req.Data))},
			URL:  "https://blob.example/uploads/file_1.txt",
		}, nil
	}}
	router := newRouter(NewUploadHandler(uploader, mapDownloader{}, 1024, zerolog.Nop()))

	body, contentType := multipartBody(t, "file", "notes.txt", "hello", map[string]string{"userKey": " u1 "})
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"url":"https://blob.example/uploads/file_1.txt"`)
	assert.Contains(t, w.Body.String(), `"name":"notes.txt"`)
	assert.Equal(t, "u1", uploader.last.UserKey)
	assert.Equal(t, "hello", string(uploader.last.Data))
}

func TestUpload_Failures(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		err      error
		wantCode int
	}{
		{name: "missing file", field: "", wantCode: http.StatusBadRequest},
		{name: "wrong field", field: "document", wantCode: http.StatusBadRequest},
		{
			name:     "unsupported type",
			field:    "file",
			err:      platformerrors.NewError(context.Background(), platformerrors.LayerDomain, platformerrors.ErrorTypeValidation, "unsupported file type", nil, "test"),
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "storage down",
			field:    "file",
			err:      platformerrors.NewError(context.Background(), platformerrors.LayerDomain, platformerrors.ErrorTypeExternal, "store file", nil, "test"),
			wantCode: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uploader := &mockUploader{UploadFunc: func(ctx context.Context, req upload.UploadRequest) (*upload.Result, error) {
				return nil, tt.err
			}}
			router := newRouter(NewUploadHandler(uploader, mapDownloader{}, 1024, zerolog.Nop()))

			body, contentType := multipartBody(t, tt.field, "a.bin", "data", nil)
			req := httptest.NewRequest(http.MethodPost, "/upload", body)
			req.Header.Set("Content-Type", contentType)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code, w.Body.String())
		})
	}
}

func TestUpload_TooLarge(t *testing.T) {
	uploader := &mockUploader{UploadFunc: func(ctx context.Context, req upload.UploadRequest) (*upload.Result, error) {
		t.Fatal("uploader must not be called")
		return nil, nil
	}}
	h := NewUploadHandler(uploader, mapDownloader{}, 8, zerolog.Nop())
	router := newRouter(h)

	body, contentType := multipartBody(t, "file", "big.txt", strings.Repeat("x", 2*multipartOverhead), nil)
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code, w.Body.String())
}

func TestServe(t *testing.T) {
	router := newRouter(NewUploadHandler(&mockUploader{}, mapDownloader{"uploads/a.txt": "content"}, 0, zerolog.Nop()))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/files/uploads/a.txt", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "content", w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/files/uploads/missing.txt", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
