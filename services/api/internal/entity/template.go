package entity

import (
	"encoding/json"
	"time"
)

type TemplateCategory string

const (
	TemplateCategoryLanding TemplateCategory = "landing"
	TemplateCategorySocial  TemplateCategory = "social"
)

// Template is a static layout from the catalog. Layout is opaque to the
// server; the web client merges generated JSON into it.
type Template struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Slug        string           `json:"slug"`
	Category    TemplateCategory `json:"category"`
	Description string           `json:"description"`
	PreviewURL  string           `json:"preview_url"`
	Layout      json.RawMessage  `json:"layout" swaggertype:"object"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

func (c TemplateCategory) Valid() bool {
	return c == TemplateCategoryLanding || c == TemplateCategorySocial
}
