package http

import (
	"context"
	"encoding/json"
	"time"

	"brand-sell/services/api/internal/entity"
	"brand-sell/services/api/internal/prompt"
	"brand-sell/services/api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) Register(name, email, password string) (*entity.User, string, error) {
	args := m.Called(name, email, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*entity.User), args.String(1), args.Error(2)
}

func (m *MockAuthUseCase) Login(email, password string) (*entity.User, string, error) {
	args := m.Called(email, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*entity.User), args.String(1), args.Error(2)
}

func (m *MockAuthUseCase) GetUser(userID string) (*entity.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockAuthUseCase) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	args := m.Called(ctx, tokenID, expiresAt)
	return args.Error(0)
}

func (m *MockAuthUseCase) DeleteAccount(ctx context.Context, userID, tokenID string, expiresAt time.Time) error {
	args := m.Called(ctx, userID, tokenID, expiresAt)
	return args.Error(0)
}

var _ usecase.AuthUseCase = (*MockAuthUseCase)(nil)

type MockProductUseCase struct {
	mock.Mock
}

func (m *MockProductUseCase) Create(userID string, product *entity.ProductInfo, version prompt.Version) (*entity.ProductInfo, string, error) {
	args := m.Called(userID, product, version)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*entity.ProductInfo), args.String(1), args.Error(2)
}

func (m *MockProductUseCase) Get(productID string) (*entity.ProductInfo, error) {
	args := m.Called(productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ProductInfo), args.Error(1)
}

func (m *MockProductUseCase) ListByUser(userID string) ([]*entity.ProductInfo, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.ProductInfo), args.Error(1)
}

func (m *MockProductUseCase) GeneratePrompt(version prompt.Version, productID string) (string, error) {
	args := m.Called(version, productID)
	return args.String(0), args.Error(1)
}

var _ usecase.ProductUseCase = (*MockProductUseCase)(nil)

type MockFileUseCase struct {
	mock.Mock
}

func (m *MockFileUseCase) List() ([]*entity.File, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.File), args.Error(1)
}

func (m *MockFileUseCase) Upload(ctx context.Context, upload usecase.Upload) (*entity.File, error) {
	args := m.Called(ctx, upload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.File), args.Error(1)
}

func (m *MockFileUseCase) CreateLink(file *entity.File) (*entity.File, error) {
	args := m.Called(file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.File), args.Error(1)
}

func (m *MockFileUseCase) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFileUseCase) IncrementDownload(id string) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

var _ usecase.FileUseCase = (*MockFileUseCase)(nil)

type MockTemplateUseCase struct {
	mock.Mock
}

func (m *MockTemplateUseCase) List(category entity.TemplateCategory) ([]*entity.Template, error) {
	args := m.Called(category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Template), args.Error(1)
}

func (m *MockTemplateUseCase) Get(id string) (*entity.Template, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Template), args.Error(1)
}

func (m *MockTemplateUseCase) Create(template *entity.Template) (*entity.Template, error) {
	args := m.Called(template)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Template), args.Error(1)
}

var _ usecase.TemplateUseCase = (*MockTemplateUseCase)(nil)

type MockGenerationUseCase struct {
	mock.Mock
}

func (m *MockGenerationUseCase) Generate(ctx context.Context, userID, prompt string) (json.RawMessage, error) {
	args := m.Called(ctx, userID, prompt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

var _ usecase.GenerationUseCase = (*MockGenerationUseCase)(nil)

type MockSocialPostUseCase struct {
	mock.Mock
}

func (m *MockSocialPostUseCase) ComposePrompt(userID, productID string, opts entity.PostOptions) (string, error) {
	args := m.Called(userID, productID, opts)
	return args.String(0), args.Error(1)
}

func (m *MockSocialPostUseCase) Save(userID string, input usecase.SavePost) (*entity.SocialPost, error) {
	args := m.Called(userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SocialPost), args.Error(1)
}

func (m *MockSocialPostUseCase) List(userID, productID string) ([]*entity.SocialPost, error) {
	args := m.Called(userID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.SocialPost), args.Error(1)
}

func (m *MockSocialPostUseCase) Edit(userID, postID string, input usecase.EditPost) (*entity.SocialPost, error) {
	args := m.Called(userID, postID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SocialPost), args.Error(1)
}

func (m *MockSocialPostUseCase) Delete(userID, postID string) error {
	args := m.Called(userID, postID)
	return args.Error(0)
}

var _ usecase.SocialPostUseCase = (*MockSocialPostUseCase)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// asUser runs handler as if the auth middleware had accepted a token of userID.
func asUser(userID string, handler gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("token_id", "jti-"+userID)
		c.Set("token_expires_at", time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC))
		handler(c)
	}
}
