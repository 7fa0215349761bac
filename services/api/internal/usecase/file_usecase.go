package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"

	"brand-sell/pkg/logger"
	"brand-sell/services/api/internal/entity"
	"brand-sell/services/api/internal/repo/persistent"

	"github.com/google/uuid"
)

// Storage keeps uploaded file bodies. Upload returns the public URL and the
// key Delete expects.
type Storage interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, string, error)
	Delete(ctx context.Context, key string) error
}

// Upload describes a file body sent through POST /files.
type Upload struct {
	Title       string
	Description string
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

type FileUseCase interface {
	List() ([]*entity.File, error)
	Upload(ctx context.Context, upload Upload) (*entity.File, error)
	CreateLink(file *entity.File) (*entity.File, error)
	Delete(ctx context.Context, id string) error
	IncrementDownload(id string) (int64, error)
}

type fileUseCase struct {
	fileRepo persistent.FileRepository
	storage  Storage
	logger   *logger.Logger
}

// NewFileUseCase accepts a nil storage; uploads then fail with
// ErrStorageUnavailable while link records keep working.
func NewFileUseCase(fileRepo persistent.FileRepository, storage Storage, logger *logger.Logger) FileUseCase {
	return &fileUseCase{
		fileRepo: fileRepo,
		storage:  storage,
		logger:   logger,
	}
}

func (uc *fileUseCase) List() ([]*entity.File, error) {
	return uc.fileRepo.List()
}

func (uc *fileUseCase) Upload(ctx context.Context, upload Upload) (*entity.File, error) {
	if uc.storage == nil {
		return nil, ErrStorageUnavailable
	}

	rawExt := filepath.Ext(upload.Filename)
	ext := strings.ToLower(rawExt)
	contentType := upload.ContentType
	if contentType == "" {
		contentType = mime.TypeByExtension(ext)
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	title := strings.TrimSpace(upload.Title)
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(upload.Filename), rawExt)
	}

	fileKey := fmt.Sprintf("files/%s%s", uuid.New().String(), ext)
	url, storageKey, err := uc.storage.Upload(ctx, fileKey, upload.Body, contentType)
	if err != nil {
		uc.logger.Error("Failed to upload file: %v", err)
		return nil, fmt.Errorf("failed to upload file: %w", err)
	}

	file := &entity.File{
		Title:       title,
		Description: upload.Description,
		FileType:    strings.TrimPrefix(ext, "."),
		URL:         url,
		StorageKey:  storageKey,
		MimeType:    contentType,
		Size:        upload.Size,
	}
	if err := uc.fileRepo.Create(file); err != nil {
		uc.logger.Error("Failed to create file record: %v", err)
		if delErr := uc.storage.Delete(ctx, storageKey); delErr != nil {
			uc.logger.Warn("Orphaned upload %s: %v", storageKey, delErr)
		}
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	return file, nil
}

// CreateLink records a file that already lives at an external URL.
func (uc *fileUseCase) CreateLink(file *entity.File) (*entity.File, error) {
	if strings.TrimSpace(file.Title) == "" || strings.TrimSpace(file.URL) == "" {
		return nil, fmt.Errorf("%w: title and url are required", ErrInvalidInput)
	}

	file.ID = ""
	file.StorageKey = ""
	file.DownloadCount = 0
	if err := uc.fileRepo.Create(file); err != nil {
		uc.logger.Error("Failed to create file record: %v", err)
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	return file, nil
}

// Delete removes the record first. The stored object is removed best effort.
func (uc *fileUseCase) Delete(ctx context.Context, id string) error {
	file, err := uc.fileRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := uc.fileRepo.Delete(id); err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return ErrNotFound
		}
		uc.logger.Error("Failed to delete file %s: %v", id, err)
		return fmt.Errorf("failed to delete file: %w", err)
	}

	if file.StorageKey != "" && uc.storage != nil {
		if err := uc.storage.Delete(ctx, file.StorageKey); err != nil {
			uc.logger.Warn("File %s deleted but object %s remains: %v", id, file.StorageKey, err)
		}
	}
	return nil
}

func (uc *fileUseCase) IncrementDownload(id string) (int64, error) {
	count, err := uc.fileRepo.IncrementDownloads(id)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return 0, ErrNotFound
		}
		uc.logger.Error("Failed to increment downloads of %s: %v", id, err)
		return 0, fmt.Errorf("failed to increment downloads: %w", err)
	}
	return count, nil
}
