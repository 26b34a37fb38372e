package repository

import (
	"errors"

	"github.com/bkpsdm/portal-api/internal/models"

	"gorm.io/gorm"
)

// AnnouncementRepository announcement data access interface
type AnnouncementRepository interface {
	List(filter AnnouncementListFilter) ([]models.Announcement, int64, error)
	GetByID(id uint) (*models.Announcement, error)
	Create(announcement *models.Announcement) error
	Update(announcement *models.Announcement) error
	Delete(id uint) error
}

// GormAnnouncementRepository GORM implementation
type GormAnnouncementRepository struct {
	db *gorm.DB
}

// NewAnnouncementRepository creates the announcement repository
func NewAnnouncementRepository(db *gorm.DB) *GormAnnouncementRepository {
	return &GormAnnouncementRepository{db: db}
}

// List lists announcements
func (r *GormAnnouncementRepository) List(filter AnnouncementListFilter) ([]models.Announcement, int64, error) {
	var items []models.Announcement
	query := r.db.Model(&models.Announcement{})

	if filter.OnlyActive {
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

// GetByID fetches an announcement
func (r *GormAnnouncementRepository) GetByID(id uint) (*models.Announcement, error) {
	var announcement models.Announcement
	if err := r.db.First(&announcement, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &announcement, nil
}

// Create inserts an announcement
func (r *GormAnnouncementRepository) Create(announcement *models.Announcement) error {
	return r.db.Create(announcement).Error
}

// Update persists an announcement
func (r *GormAnnouncementRepository) Update(announcement *models.Announcement) error {
	return r.db.Save(announcement).Error
}

// Delete removes an announcement
func (r *GormAnnouncementRepository) Delete(id uint) error {
	return r.db.Delete(&models.Announcement{}, id).Error
}
