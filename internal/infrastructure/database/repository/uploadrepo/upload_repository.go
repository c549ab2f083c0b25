package uploadrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"jan-chat/internal/domain/upload"
	"jan-chat/internal/infrastructure/database/dbschema"
	"jan-chat/internal/utils/platformerrors"
)

// Repository handles uploaded file persistence.
type Repository struct {
	db *gorm.DB
}

var _ upload.Repository = (*Repository)(nil)

func NewRepository(db *gorm.DB) upload.Repository {
	return &Repository{db: db}
}

// FindByHash returns nil without error when nothing matches.
func (r *Repository) FindByHash(ctx context.Context, hash string) (*upload.FileObject, error) {
	var entity dbschema.UploadedFile
	err := r.db.WithContext(ctx).Where("sha256 = ?", hash).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to find upload by hash",
			err,
			"7a8f3d2e-4b1c-4a9e-8f7d-2c3e4f5a6b7c",
		)
	}
	return entity.EtoD(), nil
}

func (r *Repository) Create(ctx context.Context, obj *upload.FileObject) error {
	entity := dbschema.NewSchemaUploadedFile(obj)
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to create upload record",
			err,
			"9b2e4f5a-6c7d-4e8f-9a0b-1c2d3e4f5a6b",
		)
	}
	obj.CreatedAt = entity.CreatedAt
	return nil
}
