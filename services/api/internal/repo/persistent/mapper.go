package persistent

import (
	"encoding/json"

	"brand-sell/services/api/internal/entity"
	"brand-sell/services/api/internal/model"

	"gorm.io/datatypes"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Password:  m.Password,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:        e.ID,
		Name:      e.Name,
		Email:     e.Email,
		Password:  e.Password,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToProductInfoEntity(m *model.ProductInfoModel) *entity.ProductInfo {
	if m == nil {
		return nil
	}

	return &entity.ProductInfo{
		ID:                m.ID,
		UserID:            m.UserID,
		Name:              m.Name,
		Goal:              m.Goal,
		Price:             m.Price,
		Audience:          m.Audience,
		AwarenessLevel:    m.AwarenessLevel,
		Problems:          m.Problems,
		Solution:          m.Solution,
		Benefits:          m.Benefits,
		USP:               m.USP,
		Testimonials:      m.Testimonials,
		Features:          m.Features,
		Guarantee:         m.Guarantee,
		CTA:               m.CTA,
		Tone:              m.Tone,
		References:        m.References,
		MainKeyword:       m.MainKeyword,
		SecondaryKeywords: m.SecondaryKeywords,
		Location:          m.Location,
		Brand:             m.Brand,
		PrimaryColor:      m.PrimaryColor,
		SecondaryColor:    m.SecondaryColor,
		AccentColor:       m.AccentColor,
		BackgroundColor:   m.BackgroundColor,
		TextColor:         m.TextColor,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func ToProductInfoModel(e *entity.ProductInfo) *model.ProductInfoModel {
	if e == nil {
		return nil
	}

	return &model.ProductInfoModel{
		ID:                e.ID,
		UserID:            e.UserID,
		Name:              e.Name,
		Goal:              e.Goal,
		Price:             e.Price,
		Audience:          e.Audience,
		AwarenessLevel:    e.AwarenessLevel,
		Problems:          e.Problems,
		Solution:          e.Solution,
		Benefits:          e.Benefits,
		USP:               e.USP,
		Testimonials:      e.Testimonials,
		Features:          e.Features,
		Guarantee:         e.Guarantee,
		CTA:               e.CTA,
		Tone:              e.Tone,
		References:        e.References,
		MainKeyword:       e.MainKeyword,
		SecondaryKeywords: e.SecondaryKeywords,
		Location:          e.Location,
		Brand:             e.Brand,
		PrimaryColor:      e.PrimaryColor,
		SecondaryColor:    e.SecondaryColor,
		AccentColor:       e.AccentColor,
		BackgroundColor:   e.BackgroundColor,
		TextColor:         e.TextColor,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}

func ToSocialPostEntity(m *model.SocialPostModel) *entity.SocialPost {
	if m == nil {
		return nil
	}

	hashtags := []string(m.Hashtags)
	if hashtags == nil {
		hashtags = []string{}
	}

	return &entity.SocialPost{
		ID:        m.ID,
		ProductID: m.ProductID,
		UserID:    m.UserID,
		Platform:  entity.Platform(m.Platform),
		Content:   m.Content,
		Hashtags:  hashtags,
		Tone:      entity.PostTone(m.Tone),
		Objective: entity.Objective(m.Objective),
		IsEdited:  m.IsEdited,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToSocialPostModel(e *entity.SocialPost) *model.SocialPostModel {
	if e == nil {
		return nil
	}

	hashtags := datatypes.JSONSlice[string]{}
	if e.Hashtags != nil {
		hashtags = datatypes.JSONSlice[string](e.Hashtags)
	}

	return &model.SocialPostModel{
		ID:        e.ID,
		ProductID: e.ProductID,
		UserID:    e.UserID,
		Platform:  string(e.Platform),
		Content:   e.Content,
		Hashtags:  hashtags,
		Tone:      string(e.Tone),
		Objective: string(e.Objective),
		IsEdited:  e.IsEdited,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToFileEntity(m *model.FileModel) *entity.File {
	if m == nil {
		return nil
	}

	return &entity.File{
		ID:            m.ID,
		Title:         m.Title,
		Description:   m.Description,
		FileType:      m.FileType,
		URL:           m.URL,
		StorageKey:    m.StorageKey,
		MimeType:      m.MimeType,
		Size:          m.Size,
		DownloadCount: m.DownloadCount,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func ToFileModel(e *entity.File) *model.FileModel {
	if e == nil {
		return nil
	}

	return &model.FileModel{
		ID:            e.ID,
		Title:         e.Title,
		Description:   e.Description,
		FileType:      e.FileType,
		URL:           e.URL,
		StorageKey:    e.StorageKey,
		MimeType:      e.MimeType,
		Size:          e.Size,
		DownloadCount: e.DownloadCount,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func ToTemplateEntity(m *model.TemplateModel) *entity.Template {
	if m == nil {
		return nil
	}

	return &entity.Template{
		ID:          m.ID,
		Name:        m.Name,
		Slug:        m.Slug,
		Category:    entity.TemplateCategory(m.Category),
		Description: m.Description,
		PreviewURL:  m.PreviewURL,
		Layout:      json.RawMessage(m.Layout),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToTemplateModel(e *entity.Template) *model.TemplateModel {
	if e == nil {
		return nil
	}

	layout := datatypes.JSON(e.Layout)
	if len(layout) == 0 {
		layout = datatypes.JSON("{}")
	}

	return &model.TemplateModel{
		ID:          e.ID,
		Name:        e.Name,
		Slug:        e.Slug,
		Category:    string(e.Category),
		Description: e.Description,
		PreviewURL:  e.PreviewURL,
		Layout:      layout,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
