package contactrepo

import (
	"context"

	"gorm.io/gorm"

	"jan-chat/internal/domain/contact"
	"jan-chat/internal/infrastructure/database/dbschema"
	"jan-chat/internal/utils/platformerrors"
)

type ContactGormRepository struct {
	db *gorm.DB
}

func NewContactGormRepository(db *gorm.DB) contact.Repository {
	return &ContactGormRepository{db: db}
}

func (r *ContactGormRepository) Create(ctx context.Context, s *contact.Submission) error {
	entity := dbschema.NewSchemaContactSubmission(s)
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError,
			"failed to store contact submission", err, "6c7d8e9f-0a1b-4c2d-3e4f-5a6b7c8d9e0f")
	}
	s.ID = entity.ID
	s.CreatedAt = entity.CreatedAt
	return nil
}
