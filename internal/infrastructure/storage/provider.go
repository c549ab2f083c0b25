package storage

import (
	"context"
	"io"

	"github.com/rs/zerolog"

	"jan-chat/internal/config"
	"jan-chat/internal/domain/upload"
)

// Backend is the blob store used by the upload service plus the operations
// the HTTP server needs for file serving and readiness.
type Backend interface {
	upload.Storage
	Download(ctx context.Context, key string) (io.ReadCloser, string, error)
	Health(ctx context.Context) error
}

var (
	_ Backend = (*S3Storage)(nil)
	_ Backend = (*LocalStorage)(nil)
)

// NewBackend picks the configured storage backend.
func NewBackend(ctx context.Context, cfg *config.Config, log zerolog.Logger) (Backend, error) {
	if cfg.IsLocalStorage() {
		log.Info().Msg("using local filesystem storage backend")
		return NewLocalStorage(cfg, log)
	}
	log.Info().Msg("using S3 storage backend")
	return NewS3Storage(ctx, cfg, log)
}
