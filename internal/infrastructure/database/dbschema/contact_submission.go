package dbschema

import (
	"time"

	"jan-chat/internal/domain/contact"
	"jan-chat/internal/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(ContactSubmission{})
}

type ContactSubmission struct {
	ID        uint      `gorm:"primaryKey"`
	PublicID  string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	Name      string    `gorm:"type:varchar(200);not null"`
	Email     string    `gorm:"type:varchar(320);not null"`
	Message   string    `gorm:"type:text;not null"`
	UserKey   string    `gorm:"type:varchar(128)"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (ContactSubmission) TableName() string {
	return database.SchemaName + ".contact_submissions"
}

func NewSchemaContactSubmission(s *contact.Submission) *ContactSubmission {
	return &ContactSubmission{
		ID:       s.ID,
		PublicID: s.PublicID,
		Name:     s.Name,
		Email:    s.Email,
		Message:  s.Message,
		UserKey:  s.UserKey,
	}
}
