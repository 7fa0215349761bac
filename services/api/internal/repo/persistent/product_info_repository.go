package persistent

import (
	"brand-sell/services/api/internal/entity"
	"brand-sell/services/api/internal/model"

	"gorm.io/gorm"
)

type ProductInfoRepository interface {
	Create(product *entity.ProductInfo) error
	GetByID(id string) (*entity.ProductInfo, error)
	ListByUser(userID string) ([]*entity.ProductInfo, error)
}

type productInfoRepository struct {
	db *gorm.DB
}

func NewProductInfoRepository(db *gorm.DB) ProductInfoRepository {
	return &productInfoRepository{db: db}
}

func (r *productInfoRepository) Create(product *entity.ProductInfo) error {
	productModel := ToProductInfoModel(product)
	if err := r.db.Create(productModel).Error; err != nil {
		return err
	}
	*product = *ToProductInfoEntity(productModel)
	return nil
}

func (r *productInfoRepository) GetByID(id string) (*entity.ProductInfo, error) {
	var productModel model.ProductInfoModel
	if err := r.db.Where("id = ?", id).First(&productModel).Error; err != nil {
		return nil, translate(err)
	}
	return ToProductInfoEntity(&productModel), nil
}

func (r *productInfoRepository) ListByUser(userID string) ([]*entity.ProductInfo, error) {
	var productModels []model.ProductInfoModel
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&productModels).Error; err != nil {
		return nil, err
	}

	products := make([]*entity.ProductInfo, len(productModels))
	for i := range productModels {
		products[i] = ToProductInfoEntity(&productModels[i])
	}
	return products, nil
}
