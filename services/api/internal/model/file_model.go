package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FileModel struct {
	ID            string    `gorm:"type:varchar(36);primary_key" json:"id"`
	Title         string    `gorm:"type:varchar(255);not null" json:"title"`
	Description   string    `gorm:"type:text" json:"description"`
	FileType      string    `gorm:"type:varchar(50)" json:"file_type"`
	URL           string    `gorm:"type:varchar(500);not null" json:"url"`
	StorageKey    string    `gorm:"type:varchar(500)" json:"-"`
	MimeType      string    `gorm:"type:varchar(100)" json:"mime_type"`
	Size          int64     `gorm:"default:0" json:"size"`
	DownloadCount int64     `gorm:"not null;default:0" json:"download_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (FileModel) TableName() string {
	return "files"
}

func (f *FileModel) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	return nil
}
