package persistent

import (
	"brand-sell/services/api/internal/entity"
	"brand-sell/services/api/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FileRepository interface {
	Create(file *entity.File) error
	GetByID(id string) (*entity.File, error)
	List() ([]*entity.File, error)
	Delete(id string) error
	IncrementDownloads(id string) (int64, error)
}

type fileRepository struct {
	db *gorm.DB
}

func NewFileRepository(db *gorm.DB) FileRepository {
	return &fileRepository{db: db}
}

func (r *fileRepository) Create(file *entity.File) error {
	fileModel := ToFileModel(file)
	if err := r.db.Create(fileModel).Error; err != nil {
		return err
	}
	*file = *ToFileEntity(fileModel)
	return nil
}

func (r *fileRepository) GetByID(id string) (*entity.File, error) {
	var fileModel model.FileModel
	if err := r.db.Where("id = ?", id).First(&fileModel).Error; err != nil {
		return nil, translate(err)
	}
	return ToFileEntity(&fileModel), nil
}

func (r *fileRepository) List() ([]*entity.File, error) {
	var fileModels []model.FileModel
	if err := r.db.Order("created_at DESC").Find(&fileModels).Error; err != nil {
		return nil, err
	}

	files := make([]*entity.File, len(fileModels))
	for i := range fileModels {
		files[i] = ToFileEntity(&fileModels[i])
	}
	return files, nil
}

func (r *fileRepository) Delete(id string) error {
	result := r.db.Delete(&model.FileModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// IncrementDownloads bumps download_count in a single UPDATE so concurrent
// downloads never overwrite each other, then reads the stored value back.
func (r *fileRepository) IncrementDownloads(id string) (int64, error) {
	result := r.db.Model(&model.FileModel{}).Where("id = ?", id).
		UpdateColumn("download_count", clause.Expr{SQL: "download_count + ?", Vars: []interface{}{1}})
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, ErrNotFound
	}

	var count int64
	if err := r.db.Model(&model.FileModel{}).Where("id = ?", id).Select("download_count").Scan(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
