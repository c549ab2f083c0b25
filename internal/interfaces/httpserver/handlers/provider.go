package handlers

import (
	"github.com/google/wire"
	"github.com/rs/zerolog"

	"jan-chat/internal/config"
	"jan-chat/internal/domain/chat"
	"jan-chat/internal/domain/contact"
	"jan-chat/internal/domain/conversation"
	"jan-chat/internal/domain/title"
	"jan-chat/internal/domain/upload"
	"jan-chat/internal/infrastructure/storage"
	"jan-chat/internal/interfaces/httpserver/handlers/chathandler"
	"jan-chat/internal/interfaces/httpserver/handlers/contacthandler"
	"jan-chat/internal/interfaces/httpserver/handlers/conversationhandler"
	"jan-chat/internal/interfaces/httpserver/handlers/titlehandler"
	"jan-chat/internal/interfaces/httpserver/handlers/uploadhandler"
)

// Provider wires HTTP handlers.
type Provider struct {
	Chat         *chathandler.ChatHandler
	Title        *titlehandler.TitleHandler
	Upload       *uploadhandler.UploadHandler
	Conversation *conversationhandler.ConversationHandler
	Contact      *contacthandler.ContactHandler
}

func NewProvider(
	cfg *config.Config,
	chatService *chat.Service,
	titleGenerator *title.Generator,
	uploadService *upload.Service,
	backend storage.Backend,
	conversationService *conversation.ConversationService,
	contactService *contact.Service,
	log zerolog.Logger,
) *Provider {
	return &Provider{
		Chat:         chathandler.NewChatHandler(chatService, log),
		Title:        titlehandler.NewTitleHandler(titleGenerator),
		Upload:       uploadhandler.NewUploadHandler(uploadService, backend, cfg.MaxUploadBytes, log),
		Conversation: conversationhandler.NewConversationHandler(conversationService),
		Contact:      contacthandler.NewContactHandler(contactService),
	}
}

// HandlerProvider provides the HTTP handler set.
var HandlerProvider = wire.NewSet(NewProvider)
