package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type TemplateModel struct {
	ID          string         `gorm:"type:varchar(36);primary_key" json:"id"`
	Name        string         `gorm:"type:varchar(255);not null" json:"name"`
	Slug        string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`
	Category    string         `gorm:"type:varchar(20);not null;index" json:"category"`
	Description string         `gorm:"type:text" json:"description"`
	PreviewURL  string         `gorm:"type:varchar(500)" json:"preview_url"`
	Layout      datatypes.JSON `json:"layout"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (TemplateModel) TableName() string {
	return "templates"
}

func (t *TemplateModel) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}
