package repository

import (
	"errors"
	"time"

	"github.com/bkpsdm/portal-api/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WebsiteConfigRepository site configuration data access interface
type WebsiteConfigRepository interface {
	GetByKey(key string) (*models.WebsiteConfig, error)
	List() ([]models.WebsiteConfig, error)
	Upsert(key, value string) (*models.WebsiteConfig, error)
}

// GormWebsiteConfigRepository GORM implementation
type GormWebsiteConfigRepository struct {
	db *gorm.DB
}

// NewWebsiteConfigRepository creates the website config repository
func NewWebsiteConfigRepository(db *gorm.DB) *GormWebsiteConfigRepository {
	return &GormWebsiteConfigRepository{db: db}
}

// GetByKey fetches one config entry
func (r *GormWebsiteConfigRepository) GetByKey(key string) (*models.WebsiteConfig, error) {
	var config models.WebsiteConfig
	if err := r.db.Where("key = ?", key).First(&config).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &config, nil
}

// List fetches all config entries
func (r *GormWebsiteConfigRepository) List() ([]models.WebsiteConfig, error) {
	var items []models.WebsiteConfig
	if err := r.db.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Upsert writes a config value, materializing the key on first write
func (r *GormWebsiteConfigRepository) Upsert(key, value string) (*models.WebsiteConfig, error) {
	record := models.WebsiteConfig{Key: key, Value: value}
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"value":      value,
			"updated_at": time.Now(),
		}),
	}).Create(&record).Error
	if err != nil {
		return nil, err
	}
	return r.GetByKey(key)
}
