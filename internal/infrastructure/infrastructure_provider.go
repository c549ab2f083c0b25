package infrastructure

import (
	"context"

	"github.com/google/wire"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"jan-chat/internal/config"
	"jan-chat/internal/domain/chat"
	"jan-chat/internal/domain/title"
	"jan-chat/internal/domain/upload"
	"jan-chat/internal/infrastructure/database"
	"jan-chat/internal/infrastructure/database/repository"
	"jan-chat/internal/infrastructure/llm"
	"jan-chat/internal/infrastructure/logger"
	"jan-chat/internal/infrastructure/storage"
	"jan-chat/internal/utils/httpclients"
)

// titleMaxTokens bounds title completions; titles are a handful of words.
const titleMaxTokens = 32

// ProvideConfig loads and provides the application configuration
func ProvideConfig() (*config.Config, error) {
	return config.Load()
}

// ProvideLogger builds the service logger from config.
func ProvideLogger(cfg *config.Config) (zerolog.Logger, error) {
	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return zerolog.Logger{}, err
	}
	return log.With().Str("service", cfg.ServiceName).Logger(), nil
}

// ProvideDatabase provides a database connection
func ProvideDatabase(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*gorm.DB, error) {
	db, err := database.Connect(database.Config{
		DatabaseURL: cfg.DatabaseURL,
		MaxIdle:     cfg.DBMaxIdleConns,
		MaxOpen:     cfg.DBMaxOpenConns,
		MaxLifetime: cfg.DBConnLifetime,
		LogLevel:    database.GormLogLevel(cfg.LogLevel),
	}, log)
	if err != nil {
		return nil, err
	}

	if cfg.AutoMigrate {
		log.Info().Msg("Running database migrations...")
		if err := database.AutoMigrate(ctx, db, log); err != nil {
			log.Error().Err(err).Msg("Failed to run database migrations")
			return nil, err
		}
	}
	return db, nil
}

// ProvideChatCompletionClient builds the outbound LLM client.
func ProvideChatCompletionClient(cfg *config.Config) *llm.ChatCompletionClient {
	client := httpclients.NewClient("llm")
	client.SetTimeout(cfg.LLMTimeout)
	return llm.NewChatCompletionClient(client, "llm", cfg.LLMBaseURL, cfg.LLMAPIKey)
}

// ProvideChatCompleter binds the chat model.
func ProvideChatCompleter(cfg *config.Config, client *llm.ChatCompletionClient) chat.Completer {
	return llm.NewCompleter(client, cfg.LLMModel, cfg.LLMTemperature, 0)
}

// ProvideTitleCompleter binds the title model with low temperature.
func ProvideTitleCompleter(cfg *config.Config, client *llm.ChatCompletionClient) title.Completer {
	return llm.NewCompleter(client, cfg.LLMTitleModel, 0.2, titleMaxTokens)
}

// ProvideUploadStorage exposes the storage backend to the upload service.
func ProvideUploadStorage(backend storage.Backend) upload.Storage {
	return backend
}

// InfrastructureProvider provides all infrastructure dependencies
var InfrastructureProvider = wire.NewSet(
	// Config
	ProvideConfig,

	// Logger
	ProvideLogger,

	// Database
	ProvideDatabase,

	// Repositories
	repository.RepositoryProvider,

	// Blob storage
	storage.NewBackend,
	ProvideUploadStorage,

	// Language model
	ProvideChatCompletionClient,
	ProvideChatCompleter,
	ProvideTitleCompleter,
)
