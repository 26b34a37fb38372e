package repository

import (
	"errors"
	"time"

	"github.com/bkpsdm/portal-api/internal/models"

	"gorm.io/gorm"
)

// EventRepository agenda data access interface
type EventRepository interface {
	List(filter EventListFilter) ([]models.Event, int64, error)
	GetByID(id uint) (*models.Event, error)
	Create(event *models.Event) error
	Update(event *models.Event) error
	Delete(id uint) error
}

// GormEventRepository GORM implementation
type GormEventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates the event repository
func NewEventRepository(db *gorm.DB) *GormEventRepository {
	return &GormEventRepository{db: db}
}

// List lists events. UpcomingOnly keeps events starting today or later, where
// "today" begins at local midnight so an event starting today is included.
func (r *GormEventRepository) List(filter EventListFilter) ([]models.Event, int64, error) {
	var items []models.Event
	query := r.db.Model(&models.Event{})

	if filter.UpcomingOnly {
		now := time.Now()
		startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		query = query.Where("start_date >= ?", startOfDay)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	orderBy := filter.OrderBy
	if orderBy == "" {
		orderBy = "start_date ASC"
	}
	query = applyLimitOffset(query.Order(orderBy), filter.Limit, filter.Offset)

	if err := query.Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// GetByID fetches an event
func (r *GormEventRepository) GetByID(id uint) (*models.Event, error) {
	var event models.Event
	if err := r.db.First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}

// Create inserts an event
func (r *GormEventRepository) Create(event *models.Event) error {
	return r.db.Create(event).Error
}

// Update persists an event
func (r *GormEventRepository) Update(event *models.Event) error {
	return r.db.Save(event).Error
}

// Delete removes an event
func (r *GormEventRepository) Delete(id uint) error {
	return r.db.Delete(&models.Event{}, id).Error
}
