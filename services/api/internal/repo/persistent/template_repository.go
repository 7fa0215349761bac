package persistent

import (
	"errors"

	"brand-sell/services/api/internal/entity"
	"brand-sell/services/api/internal/model"

	"gorm.io/gorm"
)

type TemplateRepository interface {
	Create(template *entity.Template) error
	Upsert(template *entity.Template) error
	GetByID(id string) (*entity.Template, error)
	List(category entity.TemplateCategory) ([]*entity.Template, error)
}

type templateRepository struct {
	db *gorm.DB
}

func NewTemplateRepository(db *gorm.DB) TemplateRepository {
	return &templateRepository{db: db}
}

func (r *templateRepository) Create(template *entity.Template) error {
	templateModel := ToTemplateModel(template)
	if err := r.db.Create(templateModel).Error; err != nil {
		return translateWrite(r.db, err)
	}
	*template = *ToTemplateEntity(templateModel)
	return nil
}

// Upsert inserts the template or overwrites the row that already has its slug.
func (r *templateRepository) Upsert(template *entity.Template) error {
	templateModel := ToTemplateModel(template)

	var existing model.TemplateModel
	err := r.db.Where("slug = ?", templateModel.Slug).First(&existing).Error
	switch {
	case err == nil:
		templateModel.ID = existing.ID
		templateModel.CreatedAt = existing.CreatedAt
		err = r.db.Save(templateModel).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		err = r.db.Create(templateModel).Error
	}
	if err != nil {
		return translateWrite(r.db, err)
	}

	*template = *ToTemplateEntity(templateModel)
	return nil
}

func (r *templateRepository) GetByID(id string) (*entity.Template, error) {
	var templateModel model.TemplateModel
	if err := r.db.Where("id = ?", id).First(&templateModel).Error; err != nil {
		return nil, translate(err)
	}
	return ToTemplateEntity(&templateModel), nil
}

// List returns the catalog ordered by name. An empty category matches all.
func (r *templateRepository) List(category entity.TemplateCategory) ([]*entity.Template, error) {
	var templateModels []model.TemplateModel
	query := r.db.Order("name ASC")
	if category != "" {
		query = query.Where("category = ?", string(category))
	}
	if err := query.Find(&templateModels).Error; err != nil {
		return nil, err
	}

	templates := make([]*entity.Template, len(templateModels))
	for i := range templateModels {
		templates[i] = ToTemplateEntity(&templateModels[i])
	}
	return templates, nil
}
