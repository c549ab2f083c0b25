package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds the environment driven configuration for the chat API service.
type Config struct {
	// Service Configuration
	ServiceName      string        `env:"SERVICE_NAME" envDefault:"chat-api"`
	ServiceNamespace string        `env:"SERVICE_NAMESPACE" envDefault:"jan"`
	Environment      string        `env:"ENVIRONMENT" envDefault:"development"`
	HTTPPort         int           `env:"CHAT_API_PORT" envDefault:"8080"`
	LogLevel         string        `env:"CHAT_LOG_LEVEL" envDefault:"info"`
	LogFormat        string        `env:"CHAT_LOG_FORMAT" envDefault:"console"`
	OTLPEndpoint     string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:""`
	OTLPHeaders      string        `env:"OTEL_EXPORTER_OTLP_HEADERS" envDefault:""`
	ShutdownTimeout  time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	EnableSwagger    bool          `env:"ENABLE_SWAGGER" envDefault:"true"`
	CORSOrigins      []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://localhost:5173"`
	PprofAddr        string        `env:"PPROF_ADDR" envDefault:""`

	// Database
	DatabaseURL    string        `env:"DATABASE_URL,notEmpty"`
	DBMaxIdleConns int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	DBMaxOpenConns int           `env:"DB_MAX_OPEN_CONNS" envDefault:"15"`
	DBConnLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"30m"`
	AutoMigrate    bool          `env:"DB_AUTO_MIGRATE" envDefault:"true"`

	// Language model provider (OpenAI compatible)
	LLMBaseURL     string        `env:"LLM_BASE_URL" envDefault:"https://api.openai.com/v1"`
	LLMAPIKey      string        `env:"LLM_API_KEY"`
	LLMModel       string        `env:"LLM_MODEL" envDefault:"gpt-4o-mini"`
	LLMTitleModel  string        `env:"LLM_TITLE_MODEL"`
	LLMTemperature float32       `env:"LLM_TEMPERATURE" envDefault:"0.7"`
	LLMTimeout     time.Duration `env:"LLM_TIMEOUT" envDefault:"120s"`

	// Storage Backend Selection
	StorageBackend string `env:"UPLOAD_STORAGE_BACKEND" envDefault:"s3"` // Options: "s3" or "local"

	// Local Storage Configuration
	LocalStoragePath    string `env:"UPLOAD_LOCAL_STORAGE_PATH"`
	LocalStorageBaseURL string `env:"UPLOAD_LOCAL_STORAGE_BASE_URL"`

	// S3 Storage Configuration
	S3Endpoint       string        `env:"UPLOAD_S3_ENDPOINT"`
	S3PublicEndpoint string        `env:"UPLOAD_S3_PUBLIC_ENDPOINT"`
	S3Region         string        `env:"UPLOAD_S3_REGION" envDefault:"us-west-2"`
	S3Bucket         string        `env:"UPLOAD_S3_BUCKET"`
	S3AccessKeyID    string        `env:"UPLOAD_S3_ACCESS_KEY_ID"`
	S3SecretKey      string        `env:"UPLOAD_S3_SECRET_ACCESS_KEY"`
	S3UsePathStyle   bool          `env:"UPLOAD_S3_USE_PATH_STYLE" envDefault:"true"`
	S3PresignTTL     time.Duration `env:"UPLOAD_S3_PRESIGN_TTL" envDefault:"168h"`

	// Upload limits
	MaxUploadBytes int64 `env:"UPLOAD_MAX_BYTES" envDefault:"20971520"`
}

// Load parses environment variables into Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) normalize() error {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	c.LLMBaseURL = strings.TrimRight(strings.TrimSpace(c.LLMBaseURL), "/")
	c.S3Bucket = strings.TrimSpace(c.S3Bucket)
	c.S3AccessKeyID = strings.TrimSpace(c.S3AccessKeyID)
	c.S3SecretKey = strings.TrimSpace(c.S3SecretKey)
	c.S3Endpoint = strings.TrimSpace(c.S3Endpoint)
	c.S3PublicEndpoint = strings.TrimSpace(c.S3PublicEndpoint)
	if c.MaxUploadBytes <= 0 {
		c.MaxUploadBytes = 20 * 1024 * 1024
	}
	if strings.TrimSpace(c.LLMTitleModel) == "" {
		c.LLMTitleModel = c.LLMModel
	}
	if c.LLMBaseURL == "" {
		return fmt.Errorf("LLM_BASE_URL must not be empty")
	}
	if c.IsLocalStorage() && strings.TrimSpace(c.LocalStoragePath) == "" {
		return fmt.Errorf("UPLOAD_LOCAL_STORAGE_PATH is required when UPLOAD_STORAGE_BACKEND is local")
	}
	return nil
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

// IsLocalStorage returns true if local storage backend is configured.
func (c *Config) IsLocalStorage() bool {
	return strings.ToLower(strings.TrimSpace(c.StorageBackend)) == "local"
}

// IsProduction reports whether gin should run in release mode.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}
