package usecase

import (
	"errors"
	"fmt"

	"brand-sell/pkg/logger"
	"brand-sell/services/api/internal/entity"
	"brand-sell/services/api/internal/prompt"
	"brand-sell/services/api/internal/repo/persistent"
)

type ProductUseCase interface {
	// Create stores the product and returns it with the landing prompt of the
	// requested version.
	Create(userID string, product *entity.ProductInfo, version prompt.Version) (*entity.ProductInfo, string, error)
	Get(productID string) (*entity.ProductInfo, error)
	ListByUser(userID string) ([]*entity.ProductInfo, error)
	GeneratePrompt(version prompt.Version, productID string) (string, error)
}

type productUseCase struct {
	productRepo persistent.ProductInfoRepository
	logger      *logger.Logger
}

func NewProductUseCase(productRepo persistent.ProductInfoRepository, logger *logger.Logger) ProductUseCase {
	return &productUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

func (uc *productUseCase) Create(userID string, product *entity.ProductInfo, version prompt.Version) (*entity.ProductInfo, string, error) {
	product.ID = ""
	product.UserID = userID

	// Compose before saving so an incomplete form or bad version stores nothing.
	if _, err := prompt.Landing(version, product); err != nil {
		return nil, "", err
	}

	if err := uc.productRepo.Create(product); err != nil {
		uc.logger.Error("Failed to create product info: %v", err)
		return nil, "", fmt.Errorf("failed to create product info: %w", err)
	}

	generated, err := prompt.Landing(version, product)
	if err != nil {
		return nil, "", err
	}
	return product, generated, nil
}

func (uc *productUseCase) Get(productID string) (*entity.ProductInfo, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return product, nil
}

func (uc *productUseCase) ListByUser(userID string) ([]*entity.ProductInfo, error) {
	return uc.productRepo.ListByUser(userID)
}

func (uc *productUseCase) GeneratePrompt(version prompt.Version, productID string) (string, error) {
	product, err := uc.Get(productID)
	if err != nil {
		return "", err
	}
	return prompt.Landing(version, product)
}
