package service

import (
	"github.com/bkpsdm/portal-api/internal/models"
	"github.com/bkpsdm/portal-api/internal/repository"
)

// WebsiteConfigService site configuration business service
type WebsiteConfigService struct {
	repo repository.WebsiteConfigRepository
}

// NewWebsiteConfigService creates the website config service
func NewWebsiteConfigService(repo repository.WebsiteConfigRepository) *WebsiteConfigService {
	return &WebsiteConfigService{repo: repo}
}

// GetByKey fetches one config entry
func (s *WebsiteConfigService) GetByKey(key string) (*models.WebsiteConfig, error) {
	if err := validateRequired("key", key); err != nil {
		return nil, err
	}
	config, err := s.repo.GetByKey(key)
	if err != nil {
		return nil, err
	}
	if config == nil {
		return nil, ErrNotFound
	}
	return config, nil
}

// List fetches all config entries
func (s *WebsiteConfigService) List() ([]models.WebsiteConfig, error) {
	return s.repo.List()
}

// Set writes a config value, materializing the key on first write
func (s *WebsiteConfigService) Set(key, value string) (*models.WebsiteConfig, error) {
	if err := validateRequired("key", key); err != nil {
		return nil, err
	}
	return s.repo.Upsert(key, value)
}
