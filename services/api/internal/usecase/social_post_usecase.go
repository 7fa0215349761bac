package usecase

import (
	"errors"
	"fmt"
	"strings"

	"brand-sell/pkg/logger"
	"brand-sell/services/api/internal/entity"
	"brand-sell/services/api/internal/prompt"
	"brand-sell/services/api/internal/repo/persistent"
)

// SavePost is a generated post the user chose to keep. A nil Hashtags slice
// means "take them from the content".
type SavePost struct {
	ProductID string
	Platform  entity.Platform
	Content   string
	Hashtags  []string
	Tone      entity.PostTone
	Objective entity.Objective
}

// EditPost carries the fields of a manual edit; nil fields are left alone.
type EditPost struct {
	Content  *string
	Hashtags []string
}

type SocialPostUseCase interface {
	ComposePrompt(userID, productID string, opts entity.PostOptions) (string, error)
	Save(userID string, input SavePost) (*entity.SocialPost, error)
	List(userID, productID string) ([]*entity.SocialPost, error)
	Edit(userID, postID string, input EditPost) (*entity.SocialPost, error)
	Delete(userID, postID string) error
}

type socialPostUseCase struct {
	postRepo    persistent.SocialPostRepository
	productRepo persistent.ProductInfoRepository
	logger      *logger.Logger
}

func NewSocialPostUseCase(
	postRepo persistent.SocialPostRepository,
	productRepo persistent.ProductInfoRepository,
	logger *logger.Logger,
) SocialPostUseCase {
	return &socialPostUseCase{
		postRepo:    postRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

func (uc *socialPostUseCase) ComposePrompt(userID, productID string, opts entity.PostOptions) (string, error) {
	if err := prompt.ValidateOptions(opts); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	product, err := uc.ownedProduct(userID, productID)
	if err != nil {
		return "", err
	}
	return prompt.Social(prompt.PostProductFrom(product), opts)
}

func (uc *socialPostUseCase) Save(userID string, input SavePost) (*entity.SocialPost, error) {
	if strings.TrimSpace(input.Content) == "" {
		return nil, fmt.Errorf("%w: content is required", ErrInvalidInput)
	}
	if !input.Platform.Valid() {
		return nil, fmt.Errorf("%w: unknown platform %q", ErrInvalidInput, input.Platform)
	}
	if input.Tone != "" && !input.Tone.Valid() {
		return nil, fmt.Errorf("%w: unknown tone %q", ErrInvalidInput, input.Tone)
	}
	if input.Objective != "" && !input.Objective.Valid() {
		return nil, fmt.Errorf("%w: unknown objective %q", ErrInvalidInput, input.Objective)
	}

	if _, err := uc.ownedProduct(userID, input.ProductID); err != nil {
		return nil, err
	}

	hashtags := prompt.NormalizeHashtags(input.Hashtags)
	if input.Hashtags == nil {
		hashtags = prompt.ExtractHashtags(input.Content)
	}

	post := &entity.SocialPost{
		ProductID: input.ProductID,
		UserID:    userID,
		Platform:  input.Platform,
		Content:   input.Content,
		Hashtags:  hashtags,
		Tone:      input.Tone,
		Objective: input.Objective,
	}
	if err := uc.postRepo.Create(post); err != nil {
		uc.logger.Error("Failed to save social post: %v", err)
		return nil, fmt.Errorf("failed to save social post: %w", err)
	}
	return post, nil
}

func (uc *socialPostUseCase) List(userID, productID string) ([]*entity.SocialPost, error) {
	return uc.postRepo.ListByUser(userID, productID)
}

// Edit is the only path that sets IsEdited.
func (uc *socialPostUseCase) Edit(userID, postID string, input EditPost) (*entity.SocialPost, error) {
	if input.Content == nil && input.Hashtags == nil {
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}
	if input.Content != nil && strings.TrimSpace(*input.Content) == "" {
		return nil, fmt.Errorf("%w: content cannot be empty", ErrInvalidInput)
	}

	post, err := uc.ownedPost(userID, postID)
	if err != nil {
		return nil, err
	}

	if input.Content != nil {
		post.Content = *input.Content
	}
	if input.Hashtags != nil {
		post.Hashtags = prompt.NormalizeHashtags(input.Hashtags)
	}
	post.IsEdited = true

	if err := uc.postRepo.Update(post); err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, ErrNotFound
		}
		uc.logger.Error("Failed to update social post %s: %v", postID, err)
		return nil, fmt.Errorf("failed to update social post: %w", err)
	}
	return post, nil
}

func (uc *socialPostUseCase) Delete(userID, postID string) error {
	if _, err := uc.ownedPost(userID, postID); err != nil {
		return err
	}

	if err := uc.postRepo.Delete(postID); err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return ErrNotFound
		}
		uc.logger.Error("Failed to delete social post %s: %v", postID, err)
		return fmt.Errorf("failed to delete social post: %w", err)
	}
	return nil
}

func (uc *socialPostUseCase) ownedProduct(userID, productID string) (*entity.ProductInfo, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if product.UserID != userID {
		return nil, ErrForbidden
	}
	return product, nil
}

func (uc *socialPostUseCase) ownedPost(userID, postID string) (*entity.SocialPost, error) {
	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if post.UserID != userID {
		return nil, ErrForbidden
	}
	return post, nil
}
