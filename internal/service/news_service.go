package service

import (
	"time"

	"github.com/bkpsdm/portal-api/internal/constants"
	"github.com/bkpsdm/portal-api/internal/models"
	"github.com/bkpsdm/portal-api/internal/repository"
)

// NewsService berita business service
type NewsService struct {
	repo repository.NewsRepository
}

// NewNewsService creates the news service
func NewNewsService(repo repository.NewsRepository) *NewsService {
	return &NewsService{repo: repo}
}

// CreateNewsInput create payload
type CreateNewsInput struct {
	Title         string
	Content       string
	PublishDate   string
	Author        string
	Category      string
	FeaturedImage *string
	Status        *bool
}

// UpdateNewsInput partial update payload; nil fields stay untouched
type UpdateNewsInput struct {
	Title            *string
	Content          *string
	PublishDate      *string
	Author           *string
	Category         *string
	FeaturedImage    *string
	HasFeaturedImage bool
	Status           *bool
}

// IsEmpty reports whether the payload carries no updatable field
func (in UpdateNewsInput) IsEmpty() bool {
	return in.Title == nil && in.Content == nil && in.PublishDate == nil &&
		in.Author == nil && in.Category == nil && !in.HasFeaturedImage && in.Status == nil
}

// Create validates and inserts an article. Status defaults to draft,
// view_count always starts at zero.
func (s *NewsService) Create(input CreateNewsInput) (*models.News, error) {
	if err := validateRequired("title", input.Title); err != nil {
		return nil, err
	}
	if err := validateRequired("content", input.Content); err != nil {
		return nil, err
	}
	if err := validateRequired("author", input.Author); err != nil {
		return nil, err
	}
	if err := validateEnum("category", input.Category, constants.NewsCategories); err != nil {
		return nil, err
	}
	publishDate, err := parseDate("publish_date", input.PublishDate)
	if err != nil {
		return nil, err
	}

	status := false
	if input.Status != nil {
		status = *input.Status
	}

	news := models.News{
		Title:         input.Title,
		Content:       input.Content,
		PublishDate:   publishDate,
		Author:        input.Author,
		Category:      input.Category,
		FeaturedImage: input.FeaturedImage,
		Status:        status,
		ViewCount:     0,
	}
	if err := s.repo.Create(&news); err != nil {
		return nil, err
	}
	return &news, nil
}

// List lists articles filtered by category/status, newest publish date first
func (s *NewsService) List(category string, status *bool, limit, offset int) ([]models.News, int64, error) {
	if category != "" {
		if err := validateEnum("category", category, constants.NewsCategories); err != nil {
			return nil, 0, err
		}
	}
	return s.repo.List(repository.NewsListFilter{
		Category: category,
		Status:   status,
		Limit:    limit,
		Offset:   offset,
	})
}

// GetByID fetches one article, counting the view
func (s *NewsService) GetByID(id uint) (*models.News, error) {
	news, err := s.repo.GetByIDIncrementView(id)
	if err != nil {
		return nil, err
	}
	if news == nil {
		return nil, ErrNotFound
	}
	return news, nil
}

// Popular lists articles by view count, most read first
func (s *NewsService) Popular(limit int) ([]models.News, error) {
	if limit <= 0 {
		limit = constants.DefaultPopularNewsLimit
	}
	items, _, err := s.repo.List(repository.NewsListFilter{
		Limit:   limit,
		OrderBy: "view_count DESC",
	})
	return items, err
}

// Latest lists published articles, newest publish date first
func (s *NewsService) Latest(limit int) ([]models.News, error) {
	if limit <= 0 {
		limit = constants.DefaultLatestNewsLimit
	}
	items, _, err := s.repo.List(repository.NewsListFilter{
		OnlyPublished: true,
		Limit:         limit,
	})
	return items, err
}

// Update applies only the provided fields and refreshes updated_at. An empty
// payload on an existing record returns the record unchanged; only a missing
// id yields ErrNotFound.
func (s *NewsService) Update(id uint, input UpdateNewsInput) (*models.News, error) {
	if input.Title != nil {
		if err := validateRequired("title", *input.Title); err != nil {
			return nil, err
		}
	}
	if input.Content != nil {
		if err := validateRequired("content", *input.Content); err != nil {
			return nil, err
		}
	}
	if input.Author != nil {
		if err := validateRequired("author", *input.Author); err != nil {
			return nil, err
		}
	}
	if input.Category != nil {
		if err := validateEnum("category", *input.Category, constants.NewsCategories); err != nil {
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

	news, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if news == nil {
		return nil, ErrNotFound
	}
	if input.IsEmpty() {
		return news, nil
	}

	if input.Title != nil {
		news.Title = *input.Title
	}
	if input.Content != nil {
		news.Content = *input.Content
	}
	if publishDate != nil {
		news.PublishDate = *publishDate
	}
	if input.Author != nil {
		news.Author = *input.Author
	}
	if input.Category != nil {
		news.Category = *input.Category
	}
	if input.HasFeaturedImage {
		news.FeaturedImage = input.FeaturedImage
	}
	if input.Status != nil {
		news.Status = *input.Status
	}

	if err := s.repo.Update(news); err != nil {
		return nil, err
	}
	return news, nil
}

// Delete removes an article
func (s *NewsService) Delete(id uint) error {
	news, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if news == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}
