package filestore

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StoredFile keeps one uploaded attendance export. The report text is
// stored verbatim; xlsx uploads are converted to the comma-row form
// before storage so the parser only ever sees one format.
type StoredFile struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FileName   string    `gorm:"column:file_name;type:varchar(255);not null"`
	FileData   string    `gorm:"column:file_data;type:text;not null"`
	UploadedBy string    `gorm:"column:uploaded_by;type:varchar(100)"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (StoredFile) TableName() string {
	return "attendance_files"
}
