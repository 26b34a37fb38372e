package repository

import (
	"errors"
	"time"

	"github.com/bkpsdm/portal-api/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StaticContentUpdate optional fields for a keyed upsert
type StaticContentUpdate struct {
	Title     *string
	Content   *string
	ImagePath *string
	HasImage  bool // ImagePath may legitimately be nil (clear the image)
}

// StaticContentRepository static page content data access interface
type StaticContentRepository interface {
	GetByKey(key string) (*models.StaticContent, error)
	List() ([]models.StaticContent, error)
	Upsert(key string, update StaticContentUpdate) (*models.StaticContent, error)
}

// GormStaticContentRepository GORM implementation
type GormStaticContentRepository struct {
	db *gorm.DB
}

// NewStaticContentRepository creates the static content repository
func NewStaticContentRepository(db *gorm.DB) *GormStaticContentRepository {
	return &GormStaticContentRepository{db: db}
}

// GetByKey fetches one content record by its stable key
func (r *GormStaticContentRepository) GetByKey(key string) (*models.StaticContent, error) {
	var content models.StaticContent
	if err := r.db.Where("key = ?", key).First(&content).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &content, nil
}

// List fetches all content records
func (r *GormStaticContentRepository) List() ([]models.StaticContent, error) {
	var items []models.StaticContent
	if err := r.db.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Upsert creates the record on first write (empty-string defaults for unset
// required fields) or patches only the given fields. A single INSERT ... ON
// CONFLICT statement keeps concurrent writers from racing the existence check.
func (r *GormStaticContentRepository) Upsert(key string, update StaticContentUpdate) (*models.StaticContent, error) {
	record := models.StaticContent{Key: key}
	assignments := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if update.Title != nil {
		record.Title = *update.Title
		assignments["title"] = *update.Title
	}
	if update.Content != nil {
		record.Content = *update.Content
		assignments["content"] = *update.Content
	}
	if update.HasImage {
		record.ImagePath = update.ImagePath
		assignments["image_path"] = update.ImagePath
	}

	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.Assignments(assignments),
	}).Create(&record).Error
	if err != nil {
		return nil, err
	}
	return r.GetByKey(key)
}
