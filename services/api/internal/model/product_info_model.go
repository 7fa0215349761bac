package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductInfoModel struct {
	ID                string    `gorm:"type:varchar(36);primary_key" json:"id"`
	UserID            string    `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Name              string    `gorm:"type:varchar(255);not null" json:"name"`
	Goal              string    `gorm:"type:varchar(255)" json:"goal"`
	Price             string    `gorm:"type:varchar(100)" json:"price"`
	Audience          string    `gorm:"type:text" json:"audience"`
	AwarenessLevel    string    `gorm:"type:varchar(100)" json:"awareness_level"`
	Problems          string    `gorm:"type:text" json:"problems"`
	Solution          string    `gorm:"type:text" json:"solution"`
	Benefits          string    `gorm:"type:text" json:"benefits"`
	USP               string    `gorm:"column:usp;type:text" json:"usp"`
	Testimonials      string    `gorm:"type:text" json:"testimonials"`
	Features          string    `gorm:"type:text" json:"features"`
	Guarantee         string    `gorm:"type:text" json:"guarantee"`
	CTA               string    `gorm:"column:cta;type:varchar(255)" json:"cta"`
	Tone              string    `gorm:"type:varchar(100)" json:"tone"`
	References        string    `gorm:"column:references_text;type:text" json:"references"`
	MainKeyword       string    `gorm:"type:varchar(255)" json:"main_keyword"`
	SecondaryKeywords string    `gorm:"type:text" json:"secondary_keywords"`
	Location          string    `gorm:"type:varchar(255)" json:"location"`
	Brand             string    `gorm:"type:varchar(255)" json:"brand"`
	PrimaryColor      string    `gorm:"type:varchar(20)" json:"primary_color"`
	SecondaryColor    string    `gorm:"type:varchar(20)" json:"secondary_color"`
	AccentColor       string    `gorm:"type:varchar(20)" json:"accent_color"`
	BackgroundColor   string    `gorm:"type:varchar(20)" json:"background_color"`
	TextColor         string    `gorm:"type:varchar(20)" json:"text_color"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (ProductInfoModel) TableName() string {
	return "product_infos"
}

func (p *ProductInfoModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
