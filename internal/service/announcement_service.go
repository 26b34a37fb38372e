package service

import (
	"time"

	"github.com/bkpsdm/portal-api/internal/constants"
	"github.com/bkpsdm/portal-api/internal/models"
	"github.com/bkpsdm/portal-api/internal/repository"
)

// AnnouncementService pengumuman business service
type AnnouncementService struct {
	repo repository.AnnouncementRepository
}

// NewAnnouncementService creates the announcement service
func NewAnnouncementService(repo repository.AnnouncementRepository) *AnnouncementService {
	return &AnnouncementService{repo: repo}
}

// CreateAnnouncementInput create payload
type CreateAnnouncementInput struct {
	Title          string
	Description    string
	PublishDate    string
	AttachmentFile *string
	Status         *bool
}

// UpdateAnnouncementInput partial update payload; nil fields stay untouched
type UpdateAnnouncementInput struct {
	Title             *string
	Description       *string
	PublishDate       *string
	AttachmentFile    *string
	HasAttachmentFile bool
	Status            *bool
}

// IsEmpty reports whether the payload carries no updatable field
func (in UpdateAnnouncementInput) IsEmpty() bool {
	return in.Title == nil && in.Description == nil && in.PublishDate == nil &&
		!in.HasAttachmentFile && in.Status == nil
}

// Create validates and inserts an announcement. Status defaults to active.
func (s *AnnouncementService) Create(input CreateAnnouncementInput) (*models.Announcement, error) {
	if err := validateRequired("title", input.Title); err != nil {
		return nil, err
	}
	if err := validateRequired("description", input.Description); err != nil {
		return nil, err
	}
	publishDate, err := parseDate("publish_date", input.PublishDate)
	if err != nil {
		return nil, err
	}

	status := true
	if input.Status != nil {
		status = *input.Status
	}

	announcement := models.Announcement{
		Title:          input.Title,
		Description:    input.Description,
		PublishDate:    publishDate,
		AttachmentFile: input.AttachmentFile,
		Status:         status,
	}
	if err := s.repo.Create(&announcement); err != nil {
		return nil, err
	}
	return &announcement, nil
}

// ListActive lists active announcements for the public site, newest publish
// date first
func (s *AnnouncementService) ListActive(limit, offset int) ([]models.Announcement, error) {
	if limit <= 0 {
		limit = constants.DefaultAnnouncementLimit
	}
	items, _, err := s.repo.List(repository.AnnouncementListFilter{
		OnlyActive: true,
		Limit:      limit,
		Offset:     offset,
	})
	return items, err
}

// ListAll lists every announcement for the backoffice, newest created first
func (s *AnnouncementService) ListAll(limit, offset int) ([]models.Announcement, int64, error) {
	return s.repo.List(repository.AnnouncementListFilter{
		Limit:   limit,
		Offset:  offset,
		OrderBy: "created_at DESC",
	})
}

// GetByID fetches one announcement
func (s *AnnouncementService) GetByID(id uint) (*models.Announcement, error) {
	announcement, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if announcement == nil {
		return nil, ErrNotFound
	}
	return announcement, nil
}

// Update applies only the provided fields. An empty payload on an existing
// record returns the record unchanged.
func (s *AnnouncementService) Update(id uint, input UpdateAnnouncementInput) (*models.Announcement, error) {
	if input.Title != nil {
		if err := validateRequired("title", *input.Title); err != nil {
			return nil, err
		}
	}
	if input.Description != nil {
		if err := validateRequired("description", *input.Description); err != nil {
			return nil, err
		}
	}
	var publishDate *time.Time
	if input.PublishDate != nil {
		parsed, err := parseDate("publish_date", *input.PublishDate)
		if err != nil {
			return nil, err
		}
		publishDate = &parsed
	}

	announcement, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if announcement == nil {
		return nil, ErrNotFound
	}
	if input.IsEmpty() {
		return announcement, nil
	}

	if input.Title != nil {
		announcement.Title = *input.Title
	}
	if input.Description != nil {
		announcement.Description = *input.Description
	}
	if publishDate != nil {
		announcement.PublishDate = *publishDate
	}
	if input.HasAttachmentFile {
		announcement.AttachmentFile = input.AttachmentFile
	}
	if input.Status != nil {
		announcement.Status = *input.Status
	}

	if err := s.repo.Update(announcement); err != nil {
		return nil, err
	}
	return announcement, nil
}

// Delete removes an announcement
func (s *AnnouncementService) Delete(id uint) error {
	announcement, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if announcement == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}
