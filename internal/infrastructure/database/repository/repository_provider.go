package repository

import (
	"github.com/google/wire"

	"jan-chat/internal/infrastructure/database/repository/contactrepo"
	"jan-chat/internal/infrastructure/database/repository/conversationrepo"
	"jan-chat/internal/infrastructure/database/repository/uploadrepo"
)

var RepositoryProvider = wire.NewSet(
	conversationrepo.NewConversationGormRepository,
	uploadrepo.NewRepository,
	contactrepo.NewContactGormRepository,
)
