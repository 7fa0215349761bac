package persistent

import (
	"brand-sell/services/api/internal/entity"
	"brand-sell/services/api/internal/model"

	"gorm.io/gorm"
)

type SocialPostRepository interface {
	Create(post *entity.SocialPost) error
	GetByID(id string) (*entity.SocialPost, error)
	ListByUser(userID, productID string) ([]*entity.SocialPost, error)
	Update(post *entity.SocialPost) error
	Delete(id string) error
}

type socialPostRepository struct {
	db *gorm.DB
}

func NewSocialPostRepository(db *gorm.DB) SocialPostRepository {
	return &socialPostRepository{db: db}
}

func (r *socialPostRepository) Create(post *entity.SocialPost) error {
	postModel := ToSocialPostModel(post)
	if err := r.db.Create(postModel).Error; err != nil {
		return err
	}
	*post = *ToSocialPostEntity(postModel)
	return nil
}

func (r *socialPostRepository) GetByID(id string) (*entity.SocialPost, error) {
	var postModel model.SocialPostModel
	if err := r.db.Where("id = ?", id).First(&postModel).Error; err != nil {
		return nil, translate(err)
	}
	return ToSocialPostEntity(&postModel), nil
}

// ListByUser returns the caller's saved posts, newest first. An empty productID
// matches every product.
func (r *socialPostRepository) ListByUser(userID, productID string) ([]*entity.SocialPost, error) {
	var postModels []model.SocialPostModel
	query := r.db.Where("user_id = ?", userID).Order("created_at DESC")
	if productID != "" {
		query = query.Where("product_id = ?", productID)
	}
	if err := query.Find(&postModels).Error; err != nil {
		return nil, err
	}

	posts := make([]*entity.SocialPost, len(postModels))
	for i := range postModels {
		posts[i] = ToSocialPostEntity(&postModels[i])
	}
	return posts, nil
}

// Update writes the editable columns only.
func (r *socialPostRepository) Update(post *entity.SocialPost) error {
	postModel := ToSocialPostModel(post)
	result := r.db.Model(&model.SocialPostModel{}).Where("id = ?", post.ID).Updates(map[string]interface{}{
		"content":   postModel.Content,
		"hashtags":  postModel.Hashtags,
		"is_edited": postModel.IsEdited,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *socialPostRepository) Delete(id string) error {
	result := r.db.Delete(&model.SocialPostModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
