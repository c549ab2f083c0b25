package domain

import (
	"github.com/google/wire"
	"github.com/rs/zerolog"

	"jan-chat/internal/config"
	"jan-chat/internal/domain/chat"
	"jan-chat/internal/domain/contact"
	"jan-chat/internal/domain/conversation"
	"jan-chat/internal/domain/title"
	"jan-chat/internal/domain/upload"
)

// ServiceProvider provides all domain services
var ServiceProvider = wire.NewSet(
	// Conversation domain
	conversation.NewConversationService,

	// Chat and titles
	chat.NewService,
	title.NewGenerator,

	// Uploads
	ProvideUploadService,

	// Contact form
	contact.NewService,
)

func ProvideUploadService(repo upload.Repository, storage upload.Storage, cfg *config.Config, log zerolog.Logger) *upload.Service {
	return upload.NewService(repo, storage, cfg.MaxUploadBytes, log)
}
