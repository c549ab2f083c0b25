package upload

import (
	"bytes"
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog"

	"jan-chat/internal/utils/idgen"
	"jan-chat/internal/utils/platformerrors"
)

var allowedMIMEs = []string{
	"image/jpeg",
	"image/png",
	"image/webp",
	"image/gif",
	"image/bmp",
	"image/svg+xml",
	"application/pdf",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"application/msword",
	"text/plain",
	"text/markdown",
	"text/csv",
}

// Repository defines persistence operations needed by the service.
type Repository interface {
	FindByHash(ctx context.Context, hash string) (*FileObject, error)
	Create(ctx context.Context, obj *FileObject) error
}

// Storage defines blob storage operations.
type Storage interface {
	Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	URL(ctx context.Context, key string) (string, error)
	Provider() string
}

// Service stores uploaded files and hands back a URL for them.
type Service struct {
	repo     Repository
	storage  Storage
	maxBytes int64
	log      zerolog.Logger
}

func NewService(repo Repository, storage Storage, maxBytes int64, log zerolog.Logger) *Service {
	return &Service{
		repo:     repo,
		storage:  storage,
		maxBytes: maxBytes,
		log:      log.With().Str("component", "upload-service").Logger(),
	}
}

// Upload validates, deduplicates and stores req.
func (s *Service) Upload(ctx context.Context, req UploadRequest) (*Result, error) {
	size := int64(len(req.Data))
	if size == 0 {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"file is empty", nil, "a7b8c9d0-e1f2-4a3b-8c4d-5e6f7a8b9c0d")
	}
	if s.maxBytes > 0 && size > s.maxBytes {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypePayloadTooBig,
			fmt.Sprintf("file exceeds max size of %d bytes", s.maxBytes), nil, "b8c9d0e1-f2a3-4b4c-9d5e-6f7a8b9c0d1e")
	}

	detected := mimetype.Detect(req.Data)
	mimeType, ok := allowed(detected)
	if !ok {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			fmt.Sprintf("unsupported file type %s", detected.String()), nil, "c9d0e1f2-a3b4-4c5d-8e6f-7a8b9c0d1e2f")
	}

	sum := sha256.Sum256(req.Data)
	hash := fmt.Sprintf("%x", sum[:])

	existing, err := s.repo.FindByHash(ctx, hash)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		url, err := s.storage.URL(ctx, existing.StorageKey)
		if err != nil {
			return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "resolve file url")
		}
		if name := cleanFilename(req.Filename); name != "" {
			existing.Filename = name
		}
		return &Result{File: existing, URL: url, Deduped: true}, nil
	}

	id := idgen.New(idgen.PrefixFile)
	key := fmt.Sprintf("uploads/%s%s", id, detected.Extension())

	if err := s.storage.Upload(ctx, key, bytes.NewReader(req.Data), size, mimeType); err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeExternal,
			"store file", err, "d0e1f2a3-b4c5-4d6e-9f7a-8b9c0d1e2f3a")
	}

	filename := cleanFilename(req.Filename)
	if filename == "" {
		filename = id + detected.Extension()
	}
	obj := &FileObject{
		ID:              id,
		Filename:        filename,
		StorageProvider: s.storage.Provider(),
		StorageKey:      key,
		MimeType:        mimeType,
		Bytes:           size,
		Sha256:          hash,
		UploadedBy:      req.UserKey,
	}
	if err := s.repo.Create(ctx, obj); err != nil {
		return nil, err
	}

	url, err := s.storage.URL(ctx, key)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "resolve file url")
	}

	s.log.Info().Str("file_id", id).Str("mime", mimeType).Int64("bytes", size).Msg("file uploaded")
	return &Result{File: obj, URL: url}, nil
}

func allowed(detected *mimetype.MIME) (string, bool) {
	for _, m := range allowedMIMEs {
		if detected.Is(m) {
			return m, true
		}
	}
	return "", false
}

func cleanFilename(name string) string {
	name = strings.ReplaceAll(strings.TrimSpace(name), "\\", "/")
	name = path.Base(name)
	if name == "." || name == "/" {
		return ""
	}
	return name
}
