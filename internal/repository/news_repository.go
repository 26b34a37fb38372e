package repository

import (
	"errors"

	"github.com/bkpsdm/portal-api/internal/models"

	"gorm.io/gorm"
)

// NewsRepository news data access interface
type NewsRepository interface {
	List(filter NewsListFilter) ([]models.News, int64, error)
	GetByID(id uint) (*models.News, error)
	GetByIDIncrementView(id uint) (*models.News, error)
	Create(news *models.News) error
	Update(news *models.News) error
	Delete(id uint) error
}

// GormNewsRepository GORM implementation
type GormNewsRepository struct {
	db *gorm.DB
}

// NewNewsRepository creates the news repository
func NewNewsRepository(db *gorm.DB) *GormNewsRepository {
	return &GormNewsRepository{db: db}
}

// List lists news articles
func (r *GormNewsRepository) List(filter NewsListFilter) ([]models.News, int64, error) {
	var items []models.News
	query := r.db.Model(&models.News{})

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.OnlyPublished {
		query = query.Where("status = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	orderBy := filter.OrderBy
	if orderBy == "" {
		orderBy = "publish_date DESC"
	}
	query = applyLimitOffset(query.Order(orderBy), filter.Limit, filter.Offset)

	if err := query.Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// GetByID fetches a news article without touching the view counter
func (r *GormNewsRepository) GetByID(id uint) (*models.News, error) {
	var news models.News
	if err := r.db.First(&news, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &news, nil
}

// GetByIDIncrementView fetches a news article and bumps view_count by one.
// The increment is a single UPDATE so concurrent readers cannot lose counts.
func (r *GormNewsRepository) GetByIDIncrementView(id uint) (*models.News, error) {
	result := r.db.Model(&models.News{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1"))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return r.GetByID(id)
}

// Create inserts a news article
func (r *GormNewsRepository) Create(news *models.News) error {
	return r.db.Create(news).Error
}

// Update persists a news article. The view counter is skipped so a stale
// struct cannot roll back increments accrued since it was loaded.
func (r *GormNewsRepository) Update(news *models.News) error {
	return r.db.Omit("view_count").Save(news).Error
}

// Delete removes a news article
func (r *GormNewsRepository) Delete(id uint) error {
	return r.db.Delete(&models.News{}, id).Error
}
