package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jan-chat/internal/config"
)

func TestLocalStorage_UploadURLDownload(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{LocalStoragePath: t.TempDir(), LocalStorageBaseURL: "http://localhost:8080/files/"}

	store, err := NewLocalStorage(cfg, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, "local", store.Provider())

	body := "hello attachment"
	require.NoError(t, store.Upload(ctx, "uploads/file_1.txt", strings.NewReader(body), int64(len(body)), "text/plain"))

	url, err := store.URL(ctx, "uploads/file_1.txt")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/files/uploads/file_1.txt", url)

	rc, contentType, err := store.Download(ctx, "uploads/file_1.txt")
	require.NoError(t, err)
	defer rc.Close()
	data, _ := io.ReadAll(rc)
	assert.Equal(t, body, string(data))
	assert.True(t, strings.HasPrefix(contentType, "text/plain"))

	assert.NoError(t, store.Health(ctx))
}

func TestLocalStorage_RejectsEscapingKeys(t *testing.T) {
	store, err := NewLocalStorage(&config.Config{LocalStoragePath: t.TempDir()}, zerolog.Nop())
	require.NoError(t, err)

	err = store.Upload(context.Background(), "../outside.txt", strings.NewReader("x"), 1, "text/plain")
	assert.ErrorIs(t, err, errInvalidKey)
}

func TestLocalStorage_Disabled(t *testing.T) {
	store, err := NewLocalStorage(&config.Config{}, zerolog.Nop())
	require.NoError(t, err)

	_, err = store.URL(context.Background(), "k")
	assert.ErrorIs(t, err, errLocalStorageDisabled)
	assert.NoError(t, store.Health(context.Background()))
}

func TestS3Storage_DisabledWithoutCredentials(t *testing.T) {
	store, err := NewS3Storage(context.Background(), &config.Config{S3Region: "us-west-2"}, zerolog.Nop())
	require.NoError(t, err)

	err = store.Upload(context.Background(), "k", strings.NewReader("x"), 1, "text/plain")
	assert.ErrorIs(t, err, errStorageDisabled)
	assert.NoError(t, store.Health(context.Background()))
}
