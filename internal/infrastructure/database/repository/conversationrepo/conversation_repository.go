package conversationrepo

import (
	"context"

	"gorm.io/gorm"

	"jan-chat/internal/domain/conversation"
	"jan-chat/internal/infrastructure/database/dbschema"
	"jan-chat/internal/utils/platformerrors"
)

type ConversationGormRepository struct {
	db *gorm.DB
}

var _ conversation.ConversationRepository = (*ConversationGormRepository)(nil)

func NewConversationGormRepository(db *gorm.DB) conversation.ConversationRepository {
	return &ConversationGormRepository{db: db}
}

// Create implements conversation.ConversationRepository.
func (repo *ConversationGormRepository) Create(ctx context.Context, conv *conversation.Conversation) error {
	model := dbschema.NewSchemaConversation(conv)
	if err := repo.db.WithContext(ctx).Create(model).Error; err != nil {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError,
			"failed to create conversation", err, "3f4a5b6c-7d8e-4f9a-0b1c-2d3e4f5a6b7c")
	}
	conv.ID = model.ID
	conv.CreatedAt = model.CreatedAt
	conv.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByFilter implements conversation.ConversationRepository. Rows come back
// newest first.
func (repo *ConversationGormRepository) FindByFilter(ctx context.Context, filter conversation.ConversationFilter) ([]*conversation.Conversation, error) {
	var rows []dbschema.Conversation
	err := applyFilter(repo.db.WithContext(ctx), filter).
		Order("created_at DESC").
		Order("id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError,
			"failed to find conversations", err, "4a5b6c7d-8e9f-4a0b-1c2d-3e4f5a6b7c8d")
	}

	result := make([]*conversation.Conversation, 0, len(rows))
	for i := range rows {
		result = append(result, rows[i].EtoD())
	}
	return result, nil
}

// UpdateStatusByFilter implements conversation.ConversationRepository.
func (repo *ConversationGormRepository) UpdateStatusByFilter(ctx context.Context, filter conversation.ConversationFilter, status conversation.ConversationStatus) (int64, error) {
	res := applyFilter(repo.db.WithContext(ctx).Model(&dbschema.Conversation{}), filter).
		Update("status", status)
	if res.Error != nil {
		return 0, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError,
			"failed to update conversation status", res.Error, "5b6c7d8e-9f0a-4b1c-2d3e-4f5a6b7c8d9e")
	}
	return res.RowsAffected, nil
}

func applyFilter(sql *gorm.DB, filter conversation.ConversationFilter) *gorm.DB {
	if filter.PublicID != nil {
		sql = sql.Where("public_id = ?", *filter.PublicID)
	}
	if filter.UserKey != nil {
		sql = sql.Where("user_key = ?", *filter.UserKey)
	}
	if len(filter.Statuses) > 0 {
		sql = sql.Where("status IN ?", filter.Statuses)
	}
	return sql
}
