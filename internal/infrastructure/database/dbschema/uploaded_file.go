package dbschema

import (
	"time"

	"jan-chat/internal/domain/upload"
	"jan-chat/internal/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(UploadedFile{})
}

// UploadedFile represents the persisted upload metadata.
type UploadedFile struct {
	ID              string    `gorm:"type:varchar(40);primaryKey"`
	Filename        string    `gorm:"type:varchar(255);not null"`
	StorageProvider string    `gorm:"type:varchar(32);not null"`
	StorageKey      string    `gorm:"type:varchar(255);not null"`
	MimeType        string    `gorm:"type:varchar(128);not null"`
	Bytes           int64     `gorm:"not null"`
	Sha256          string    `gorm:"type:char(64);uniqueIndex;not null"`
	UploadedBy      string    `gorm:"type:varchar(128)"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
}

func (UploadedFile) TableName() string {
	return database.SchemaName + ".uploaded_files"
}

func NewSchemaUploadedFile(f *upload.FileObject) *UploadedFile {
	return &UploadedFile{
		ID:              f.ID,
		Filename:        f.Filename,
		StorageProvider: f.StorageProvider,
		StorageKey:      f.StorageKey,
		MimeType:        f.MimeType,
		Bytes:           f.Bytes,
		Sha256:          f.Sha256,
		UploadedBy:      f.UploadedBy,
	}
}

func (e *UploadedFile) EtoD() *upload.FileObject {
	return &upload.FileObject{
		ID:              e.ID,
		Filename:        e.Filename,
		StorageProvider: e.StorageProvider,
		StorageKey:      e.StorageKey,
		MimeType:        e.MimeType,
		Bytes:           e.Bytes,
		Sha256:          e.Sha256,
		UploadedBy:      e.UploadedBy,
		CreatedAt:       e.CreatedAt,
	}
}
