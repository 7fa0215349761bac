package usecase

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"brand-sell/pkg/logger"
	"brand-sell/services/api/internal/entity"
	"brand-sell/services/api/internal/repo/persistent"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

type TemplateUseCase interface {
	List(category entity.TemplateCategory) ([]*entity.Template, error)
	Get(id string) (*entity.Template, error)
	Create(template *entity.Template) (*entity.Template, error)
}

type templateUseCase struct {
	templateRepo persistent.TemplateRepository
	logger       *logger.Logger
}

func NewTemplateUseCase(templateRepo persistent.TemplateRepository, logger *logger.Logger) TemplateUseCase {
	return &templateUseCase{
		templateRepo: templateRepo,
		logger:       logger,
	}
}

func (uc *templateUseCase) List(category entity.TemplateCategory) ([]*entity.Template, error) {
	if category != "" && !category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, category)
	}
	return uc.templateRepo.List(category)
}

func (uc *templateUseCase) Get(id string) (*entity.Template, error) {
	template, err := uc.templateRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return template, nil
}

func (uc *templateUseCase) Create(template *entity.Template) (*entity.Template, error) {
	template.ID = ""
	if template.Category == "" {
		template.Category = entity.TemplateCategoryLanding
	}
	if !template.Category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, template.Category)
	}
	derived := template.Slug == ""
	if derived {
		template.Slug = slugify(template.Name)
	}
	if template.Slug == "" {
		return nil, fmt.Errorf("%w: name or slug is required", ErrInvalidInput)
	}
	if len(template.Layout) > 0 && !json.Valid(template.Layout) {
		return nil, fmt.Errorf("%w: layout must be valid JSON", ErrInvalidInput)
	}

	base := template.Slug
	err := uc.templateRepo.Create(template)
	if derived && errors.Is(err, persistent.ErrDuplicate) {
		// Another template already uses this name; keep the name, vary the slug.
		template.Slug = base + "-" + uuid.New().String()[:8]
		err = uc.templateRepo.Create(template)
	}
	if err != nil {
		if errors.Is(err, persistent.ErrDuplicate) {
			return nil, fmt.Errorf("%w: %q", ErrSlugTaken, template.Slug)
		}
		uc.logger.Error("Failed to create template: %v", err)
		return nil, fmt.Errorf("failed to create template: %w", err)
	}
	return template, nil
}

// slugify lowercases name, folds accents ("Modèle" -> "modele") and joins the
// remaining letters and digits with dashes. Letters without a Latin form are kept.
func slugify(name string) string {
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(stripMarks, name)
	if err != nil {
		folded = name
	}

	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(folded)) {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
