package admin

import (
	handlershared "github.com/bkpsdm/portal-api/internal/http/handlers/shared"
	"github.com/bkpsdm/portal-api/internal/http/response"
	"github.com/bkpsdm/portal-api/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateNewsRequest create article payload
type CreateNewsRequest struct {
	Title         string  `json:"title"`
	Content       string  `json:"content"`
	PublishDate   string  `json:"publish_date"`
	Author        string  `json:"author"`
	Category      string  `json:"category"`
	FeaturedImage *string `json:"featured_image"`
	Status        *bool   `json:"status"`
}

// UpdateNewsRequest partial update payload
type UpdateNewsRequest struct {
	Title         *string `json:"title"`
	Content       *string `json:"content"`
	PublishDate   *string `json:"publish_date"`
	Author        *string `json:"author"`
	Category      *string `json:"category"`
	FeaturedImage *string `json:"featured_image"`
	Status        *bool   `json:"status"`
}

// CreateNews creates an article
func (h *Handler) CreateNews(c *gin.Context) {
	var req CreateNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	news, err := h.NewsService.Create(service.CreateNewsInput{
		Title:         req.Title,
		Content:       req.Content,
		PublishDate:   req.PublishDate,
		Author:        req.Author,
		Category:      req.Category,
		FeaturedImage: req.FeaturedImage,
		Status:        req.Status,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, news)
}

// UpdateNews partially updates an article
func (h *Handler) UpdateNews(c *gin.Context) {
	id, ok := handlershared.ParseIDParam(c)
	if !ok {
		return
	}

	var req UpdateNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	news, err := h.NewsService.Update(id, service.UpdateNewsInput{
		Title:            req.Title,
		Content:          req.Content,
		PublishDate:      req.PublishDate,
		Author:           req.Author,
		Category:         req.Category,
		FeaturedImage:    req.FeaturedImage,
		HasFeaturedImage: req.FeaturedImage != nil,
		Status:           req.Status,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, news)
}

// DeleteNews removes an article
func (h *Handler) DeleteNews(c *gin.Context) {
	id, ok := handlershared.ParseIDParam(c)
	if !ok {
		return
	}

	if err := h.NewsService.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}

	response.SuccessWithMsg(c, "deleted", nil)
}
