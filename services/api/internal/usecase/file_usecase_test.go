package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"brand-sell/services/api/internal/entity"
	"brand-sell/services/api/internal/repo/persistent"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFile_UploadStoresRecord(t *testing.T) {
	storage := new(MockStorage)
	storage.On("Upload", mock.Anything, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "files/") && strings.HasSuffix(key, ".pdf")
	}), mock.Anything, "application/pdf").Return("https://cdn.test/guide.pdf", "files/guide.pdf", nil)

	uc := NewFileUseCase(persistent.NewFileRepository(newTestDB(t)), storage, quietLogger())

	file, err := uc.Upload(context.Background(), Upload{
		Filename:    "Brand Guide.PDF",
		ContentType: "application/pdf",
		Size:        42,
		Body:        strings.NewReader("%PDF"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Brand Guide", file.Title)
	assert.Equal(t, "pdf", file.FileType)
	assert.Equal(t, "https://cdn.test/guide.pdf", file.URL)
	assert.Equal(t, "files/guide.pdf", file.StorageKey)
	assert.Equal(t, int64(42), file.Size)
	storage.AssertExpectations(t)
}

func TestFile_UploadWithoutStorage(t *testing.T) {
	uc := NewFileUseCase(persistent.NewFileRepository(newTestDB(t)), nil, quietLogger())

	_, err := uc.Upload(context.Background(), Upload{Filename: "a.png", Body: strings.NewReader("x")})
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}

func TestFile_UploadFailure(t *testing.T) {
	storage := new(MockStorage)
	storage.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("", "", errors.New("bucket gone"))

	uc := NewFileUseCase(persistent.NewFileRepository(newTestDB(t)), storage, quietLogger())

	_, err := uc.Upload(context.Background(), Upload{Filename: "a.png", Body: strings.NewReader("x")})
	assert.Error(t, err)

	files, err := uc.List()
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestFile_DeleteTwice(t *testing.T) {
	storage := new(MockStorage)
	storage.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("https://cdn.test/a.png", "files/a.png", nil)
	storage.On("Delete", mock.Anything, "files/a.png").Return(errors.New("already gone"))

	uc := NewFileUseCase(persistent.NewFileRepository(newTestDB(t)), storage, quietLogger())

	file, err := uc.Upload(context.Background(), Upload{Filename: "a.png", Body: strings.NewReader("x")})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), file.ID))

	files, err := uc.List()
	require.NoError(t, err)
	assert.Empty(t, files)

	assert.ErrorIs(t, uc.Delete(context.Background(), file.ID), ErrNotFound)
	storage.AssertNumberOfCalls(t, "Delete", 1)
}

func TestFile_CreateLinkAndIncrement(t *testing.T) {
	uc := NewFileUseCase(persistent.NewFileRepository(newTestDB(t)), nil, quietLogger())

	_, err := uc.CreateLink(&entity.File{Title: "No URL"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	file, err := uc.CreateLink(&entity.File{Title: "Kit", URL: "https://example.com/kit.zip", DownloadCount: 99})
	require.NoError(t, err)
	assert.Zero(t, file.DownloadCount)

	count, err := uc.IncrementDownload(file.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	_, err = uc.IncrementDownload("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
