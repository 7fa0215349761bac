package usecase

import (
	"context"
	"encoding/json"
	"io"
	"testing"
	"time"

	"brand-sell/pkg/logger"
	"brand-sell/services/api/internal/entity"
	"brand-sell/services/api/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, string, error) {
	args := m.Called(ctx, key, body, contentType)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockStorage) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

var _ Storage = (*MockStorage)(nil)

type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, prompt string) (json.RawMessage, error) {
	args := m.Called(ctx, prompt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

var _ Generator = (*MockGenerator)(nil)

type MockRevoker struct {
	mock.Mock
}

func (m *MockRevoker) Enabled() bool {
	return m.Called().Bool(0)
}

func (m *MockRevoker) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	args := m.Called(ctx, tokenID, expiresAt)
	return args.Error(0)
}

var _ TokenRevoker = (*MockRevoker)(nil)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.New().String() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent), TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(model.All()...))
	return db
}

func quietLogger() *logger.Logger {
	return logger.NewWithWriter(io.Discard, io.Discard)
}

func completeProduct() *entity.ProductInfo {
	return &entity.ProductInfo{
		Name:           "CRM Pro",
		Goal:           "obtenir des leads",
		Price:          "49",
		Audience:       "PME",
		AwarenessLevel: "conscient du problème",
		Problems:       "suivi client difficile",
		Solution:       "CRM centralisé",
		Benefits:       "gain de temps",
		USP:            "IA intégrée",
		Features:       "automatisation",
		CTA:            "Essai gratuit",
		Tone:           "professionnelle",
		MainKeyword:    "CRM PME",
	}
}
