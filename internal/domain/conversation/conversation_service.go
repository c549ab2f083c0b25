package conversation

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"jan-chat/internal/domain/message"
	"jan-chat/internal/utils/idgen"
	"jan-chat/internal/utils/platformerrors"
	"jan-chat/internal/utils/stringutils"
)

const maxTitleLength = 256

// ConversationService handles the chat history of users.
type ConversationService struct {
	repo ConversationRepository
	log  zerolog.Logger
}

func NewConversationService(repo ConversationRepository, log zerolog.Logger) *ConversationService {
	return &ConversationService{
		repo: repo,
		log:  log.With().Str("component", "conversation-service").Logger(),
	}
}

// ListConversations returns the visible conversations of userKey, newest first.
func (s *ConversationService) ListConversations(ctx context.Context, userKey string) ([]*Conversation, error) {
	if err := validateUserKey(ctx, userKey); err != nil {
		return nil, err
	}
	convs, err := s.repo.FindByFilter(ctx, ConversationFilter{
		UserKey:  &userKey,
		Statuses: VisibleStatuses,
	})
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "list conversations")
	}
	return convs, nil
}

// SaveConversation stores a finished conversation under a new public id.
func (s *ConversationService) SaveConversation(ctx context.Context, userKey, title string, messages []message.Message) (*Conversation, error) {
	if err := validateUserKey(ctx, userKey); err != nil {
		return nil, err
	}
	if len(messages) == 0 {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"conversation has no messages", nil, "4e1b3f0a-5c2d-4f6e-8a7b-9c0d1e2f3a4b")
	}
	for _, m := range messages {
		if err := m.Validate(ctx); err != nil {
			return nil, err
		}
	}

	title = strings.TrimSpace(title)
	if title == "" {
		title = message.DefaultTitle
	}

	conv := &Conversation{
		PublicID: idgen.New(idgen.PrefixConversation),
		UserKey:  userKey,
		Title:    stringutils.TruncateTitle(title, maxTitleLength),
		Messages: message.Clone(messages),
		Status:   ConversationStatusActive,
	}
	if err := s.repo.Create(ctx, conv); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "save conversation")
	}
	s.log.Info().Str("conversation_id", conv.PublicID).Int("messages", len(messages)).Msg("conversation saved")
	return conv, nil
}

// DeleteConversation soft-deletes one conversation of userKey.
func (s *ConversationService) DeleteConversation(ctx context.Context, userKey, publicID string) error {
	if err := validateUserKey(ctx, userKey); err != nil {
		return err
	}
	publicID = strings.TrimSpace(publicID)
	if publicID == "" {
		return platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"chat id is required", nil, "0b9c8d7e-6f5a-4b3c-9d2e-1f0a9b8c7d6e")
	}

	affected, err := s.repo.UpdateStatusByFilter(ctx, ConversationFilter{
		PublicID: &publicID,
		UserKey:  &userKey,
		Statuses: VisibleStatuses,
	}, ConversationStatusDeleted)
	if err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "delete conversation")
	}
	if affected == 0 {
		return platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeNotFound,
			"conversation not found", nil, "9f4a2c1e-3b7d-4e8f-a0c6-5d2b1e9f7a3c")
	}
	return nil
}

// ArchiveAllConversations archives every active conversation of userKey.
func (s *ConversationService) ArchiveAllConversations(ctx context.Context, userKey string) (int64, error) {
	if err := validateUserKey(ctx, userKey); err != nil {
		return 0, err
	}
	affected, err := s.repo.UpdateStatusByFilter(ctx, ConversationFilter{
		UserKey:  &userKey,
		Statuses: []ConversationStatus{ConversationStatusActive},
	}, ConversationStatusArchived)
	if err != nil {
		return 0, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "archive conversations")
	}
	return affected, nil
}

// DeleteAllConversations soft-deletes every visible conversation of userKey.
func (s *ConversationService) DeleteAllConversations(ctx context.Context, userKey string) (int64, error) {
	if err := validateUserKey(ctx, userKey); err != nil {
		return 0, err
	}
	affected, err := s.repo.UpdateStatusByFilter(ctx, ConversationFilter{
		UserKey:  &userKey,
		Statuses: VisibleStatuses,
	}, ConversationStatusDeleted)
	if err != nil {
		return 0, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "delete conversations")
	}
	return affected, nil
}

func validateUserKey(ctx context.Context, userKey string) error {
	if strings.TrimSpace(userKey) == "" {
		return platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"userKey is required", nil, "7c6b5a49-3828-4716-a5f4-e3d2c1b0a998")
	}
	return nil
}
