package service

import (
	"time"

	"github.com/bkpsdm/portal-api/internal/constants"
	"github.com/bkpsdm/portal-api/internal/models"
	"github.com/bkpsdm/portal-api/internal/repository"
)

// DownloadService download-center business service
type DownloadService struct {
	repo repository.DownloadRepository
}

// NewDownloadService creates the download service
func NewDownloadService(repo repository.DownloadRepository) *DownloadService {
	return &DownloadService{repo: repo}
}

// CreateDownloadInput create payload
type CreateDownloadInput struct {
	DocumentName string
	Publisher    string
	Category     string
	FilePath     string
	Description  string
}

// UpdateDownloadInput partial update payload; nil fields stay untouched
type UpdateDownloadInput struct {
	DocumentName *string
	Publisher    *string
	Category     *string
	FilePath     *string
	Description  *string
}

// IsEmpty reports whether the payload carries no updatable field
func (in UpdateDownloadInput) IsEmpty() bool {
	return in.DocumentName == nil && in.Publisher == nil && in.Category == nil &&
		in.FilePath == nil && in.Description == nil
}

// Create validates and inserts a document. Upload date is stamped at creation
// and the hit counter starts at zero.
func (s *DownloadService) Create(input CreateDownloadInput) (*models.Download, error) {
	if err := validateRequired("document_name", input.DocumentName); err != nil {
		return nil, err
	}
	if err := validateRequired("publisher", input.Publisher); err != nil {
		return nil, err
	}
	if err := validateEnum("category", input.Category, constants.DownloadCategories); err != nil {
		return nil, err
	}
	if err := validateRequired("file_path", input.FilePath); err != nil {
		return nil, err
	}
	if err := validateRequired("description", input.Description); err != nil {
		return nil, err
	}

	download := models.Download{
		DocumentName: input.DocumentName,
		Publisher:    input.Publisher,
		Category:     input.Category,
		Hits:         0,
		FilePath:     input.FilePath,
		UploadDate:   time.Now(),
		Description:  input.Description,
	}
	if err := s.repo.Create(&download); err != nil {
		return nil, err
	}
	return &download, nil
}

// List lists documents filtered by category, newest upload first
func (s *DownloadService) List(category string, limit, offset int) ([]models.Download, int64, error) {
	if category != "" {
		if err := validateEnum("category", category, constants.DownloadCategories); err != nil {
			return nil, 0, err
		}
	}
	if limit <= 0 {
		limit = constants.DefaultDownloadLimit
	}
	return s.repo.List(repository.DownloadListFilter{
		Category: category,
		Limit:    limit,
		Offset:   offset,
	})
}

// GetByID fetches one document without touching the hit counter
func (s *DownloadService) GetByID(id uint) (*models.Download, error) {
	download, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if download == nil {
		return nil, ErrNotFound
	}
	return download, nil
}

// RecordHit counts one retrieval of a document and returns the fresh record
func (s *DownloadService) RecordHit(id uint) (*models.Download, error) {
	download, err := s.repo.GetByIDIncrementHits(id)
	if err != nil {
		return nil, err
	}
	if download == nil {
		return nil, ErrNotFound
	}
	return download, nil
}

// Update applies only the provided fields. An empty payload on an existing
// record returns the record unchanged.
func (s *DownloadService) Update(id uint, input UpdateDownloadInput) (*models.Download, error) {
	if input.DocumentName != nil {
		if err := validateRequired("document_name", *input.DocumentName); err != nil {
			return nil, err
		}
	}
	if input.Publisher != nil {
		if err := validateRequired("publisher", *input.Publisher); err != nil {
			return nil, err
		}
	}
	if input.Category != nil {
		if err := validateEnum("category", *input.Category, constants.DownloadCategories); err != nil {
			return nil, err
		}
	}
	if input.FilePath != nil {
		if err := validateRequired("file_path", *input.FilePath); err != nil {
			return nil, err
		}
	}
	if input.Description != nil {
		if err := validateRequired("description", *input.Description); err != nil {
			return nil, err
		}
	}

	download, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if download == nil {
		return nil, ErrNotFound
	}
	if input.IsEmpty() {
		return download, nil
	}

	if input.DocumentName != nil {
		download.DocumentName = *input.DocumentName
	}
	if input.Publisher != nil {
		download.Publisher = *input.Publisher
	}
	if input.Category != nil {
		download.Category = *input.Category
	}
	if input.FilePath != nil {
		download.FilePath = *input.FilePath
	}
	if input.Description != nil {
		download.Description = *input.Description
	}

	if err := s.repo.Update(download); err != nil {
		return nil, err
	}
	return download, nil
}

// Delete removes a document
func (s *DownloadService) Delete(id uint) error {
	download, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if download == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}
