package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"

	"jan-chat/internal/config"
	"jan-chat/internal/infrastructure/metrics"
)

const providerS3 = "s3"

var errStorageDisabled = errors.New("upload storage backend is not configured; set UPLOAD_S3_* to enable uploads")

// S3Storage handles uploads to S3-compatible storage and hands out presigned links.
type S3Storage struct {
	bucket    string
	ttl       time.Duration
	client    *s3.Client
	uploader  *manager.Uploader
	presigner *s3.PresignClient
	log       zerolog.Logger
	disabled  bool
}

func NewS3Storage(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*S3Storage, error) {
	logger := log.With().Str("component", "s3-storage").Logger()
	storage := &S3Storage{
		bucket: strings.TrimSpace(cfg.S3Bucket),
		ttl:    cfg.S3PresignTTL,
		log:    logger,
	}

	if storage.bucket == "" || cfg.S3AccessKeyID == "" || cfg.S3SecretKey == "" {
		logger.Warn().Msg("UPLOAD_S3_BUCKET or credentials are not set; uploads will be disabled until configured")
		storage.disabled = true
		return storage, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.S3AccessKeyID, cfg.S3SecretKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	storage.client = s3.NewFromConfig(awsCfg, clientOptions(cfg.S3Endpoint, cfg.S3UsePathStyle))
	storage.uploader = manager.NewUploader(storage.client)

	// Links handed to browsers may need a different host than the one the
	// server reaches the bucket on.
	presignEndpoint := cfg.S3Endpoint
	if cfg.S3PublicEndpoint != "" {
		presignEndpoint = cfg.S3PublicEndpoint
	}
	storage.presigner = s3.NewPresignClient(s3.NewFromConfig(awsCfg, clientOptions(presignEndpoint, cfg.S3UsePathStyle)))
	return storage, nil
}

func clientOptions(endpoint string, pathStyle bool) func(*s3.Options) {
	return func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
		o.UsePathStyle = pathStyle
	}
}

func (s *S3Storage) ensureEnabled() error {
	if s.disabled {
		return errStorageDisabled
	}
	return nil
}

func (s *S3Storage) Provider() string { return providerS3 }

func (s *S3Storage) Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	if err := s.ensureEnabled(); err != nil {
		return err
	}
	start := time.Now()
	_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	metrics.RecordStorageOperation(providerS3, "upload", err == nil, time.Since(start).Seconds())
	if err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("s3 upload failed")
		return err
	}
	return nil
}

// URL returns a presigned GET link valid for the configured TTL.
func (s *S3Storage) URL(ctx context.Context, key string) (string, error) {
	if err := s.ensureEnabled(); err != nil {
		return "", err
	}
	start := time.Now()
	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.ttl))
	metrics.RecordStorageOperation(providerS3, "presign", err == nil, time.Since(start).Seconds())
	if err != nil {
		return "", err
	}
	return req.URL, nil
}

func (s *S3Storage) Download(ctx context.Context, key string) (io.ReadCloser, string, error) {
	if err := s.ensureEnabled(); err != nil {
		return nil, "", err
	}
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, "", err
	}
	return out.Body, aws.ToString(out.ContentType), nil
}

// Health performs a HeadBucket request.
func (s *S3Storage) Health(ctx context.Context) error {
	if s.disabled {
		return nil
	}
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(s.bucket)})
	return err
}
