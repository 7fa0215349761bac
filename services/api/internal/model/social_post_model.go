package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SocialPostModel struct {
	ID        string                      `gorm:"type:varchar(36);primary_key" json:"id"`
	ProductID string                      `gorm:"type:varchar(36);not null;index" json:"product_id"`
	UserID    string                      `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Platform  string                      `gorm:"type:varchar(20);not null" json:"platform"`
	Content   string                      `gorm:"type:text;not null" json:"content"`
	Hashtags  datatypes.JSONSlice[string] `gorm:"not null" json:"hashtags"`
	Tone      string                      `gorm:"type:varchar(20)" json:"tone"`
	Objective string                      `gorm:"type:varchar(20)" json:"objective"`
	IsEdited  bool                        `gorm:"not null;default:false" json:"is_edited"`
	CreatedAt time.Time                   `json:"created_at"`
	UpdatedAt time.Time                   `json:"updated_at"`
}

func (SocialPostModel) TableName() string {
	return "social_posts"
}

func (s *SocialPostModel) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	if s.Hashtags == nil {
		s.Hashtags = datatypes.JSONSlice[string]{}
	}
	return nil
}
