package service

import (
	"github.com/bkpsdm/portal-api/internal/models"
	"github.com/bkpsdm/portal-api/internal/repository"
)

// StaticContentService fixed-key page content business service
type StaticContentService struct {
	repo repository.StaticContentRepository
}

// NewStaticContentService creates the static content service
func NewStaticContentService(repo repository.StaticContentRepository) *StaticContentService {
	return &StaticContentService{repo: repo}
}

// UpdateStaticContentInput keyed upsert payload; nil fields stay untouched
type UpdateStaticContentInput struct {
	Title     *string
	Content   *string
	ImagePath *string
	HasImage  bool
}

// GetByKey fetches one content record
func (s *StaticContentService) GetByKey(key string) (*models.StaticContent, error) {
	if err := validateRequired("key", key); err != nil {
		return nil, err
	}
	content, err := s.repo.GetByKey(key)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, ErrNotFound
	}
	return content, nil
}

// List fetches all content records
func (s *StaticContentService) List() ([]models.StaticContent, error) {
	return s.repo.List()
}

// Upsert writes content under a key, creating the record on first write
func (s *StaticContentService) Upsert(key string, input UpdateStaticContentInput) (*models.StaticContent, error) {
	if err := validateRequired("key", key); err != nil {
		return nil, err
	}
	return s.repo.Upsert(key, repository.StaticContentUpdate{
		Title:     input.Title,
		Content:   input.Content,
		ImagePath: input.ImagePath,
		HasImage:  input.HasImage,
	})
}
