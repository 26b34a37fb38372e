package repository

import (
	"errors"

	"github.com/bkpsdm/portal-api/internal/models"

	"gorm.io/gorm"
)

// DownloadRepository download-center data access interface
type DownloadRepository interface {
	List(filter DownloadListFilter) ([]models.Download, int64, error)
	GetByID(id uint) (*models.Download, error)
	GetByIDIncrementHits(id uint) (*models.Download, error)
	Create(download *models.Download) error
	Update(download *models.Download) error
	Delete(id uint) error
}

// GormDownloadRepository GORM implementation
type GormDownloadRepository struct {
	db *gorm.DB
}

// NewDownloadRepository creates the download repository
func NewDownloadRepository(db *gorm.DB) *GormDownloadRepository {
	return &GormDownloadRepository{db: db}
}

// List lists downloadable documents
func (r *GormDownloadRepository) List(filter DownloadListFilter) ([]models.Download, int64, error) {
	var items []models.Download
	query := r.db.Model(&models.Download{})

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyLimitOffset(query.Order("upload_date DESC"), filter.Limit, filter.Offset)

	if err := query.Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// GetByID fetches a document without touching the hit counter
func (r *GormDownloadRepository) GetByID(id uint) (*models.Download, error) {
	var download models.Download
	if err := r.db.First(&download, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &download, nil
}

// GetByIDIncrementHits fetches a document and bumps hits by one atomically
func (r *GormDownloadRepository) GetByIDIncrementHits(id uint) (*models.Download, error) {
	result := r.db.Model(&models.Download{}).
		Where("id = ?", id).
		UpdateColumn("hits", gorm.Expr("hits + 1"))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return r.GetByID(id)
}

// Create inserts a document
func (r *GormDownloadRepository) Create(download *models.Download) error {
	return r.db.Create(download).Error
}

// Update persists a document. The hit counter is skipped so a stale struct
// cannot roll back increments accrued since it was loaded.
func (r *GormDownloadRepository) Update(download *models.Download) error {
	return r.db.Omit("hits").Save(download).Error
}

// Delete removes a document
func (r *GormDownloadRepository) Delete(id uint) error {
	return r.db.Delete(&models.Download{}, id).Error
}
