package admin

import (
	"github.com/bkpsdm/portal-api/internal/http/response"
	"github.com/bkpsdm/portal-api/internal/service"

	"github.com/gin-gonic/gin"
)

// UpdateStaticContentRequest keyed upsert payload
type UpdateStaticContentRequest struct {
	Key       string  `json:"key" binding:"required"`
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	ImagePath *string `json:"image_path"`
}

// UpdateWebsiteConfigRequest keyed config write payload
type UpdateWebsiteConfigRequest struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value"`
}

// UpdateStaticContent writes static page content, creating the key on first
// write
func (h *Handler) UpdateStaticContent(c *gin.Context) {
	var req UpdateStaticContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "key is required", err)
		return
	}

	content, err := h.StaticContentService.Upsert(req.Key, service.UpdateStaticContentInput{
		Title:     req.Title,
		Content:   req.Content,
		ImagePath: req.ImagePath,
		HasImage:  req.ImagePath != nil,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, content)
}

// UpdateWebsiteConfig writes a site configuration value, creating the key on
// first write
func (h *Handler) UpdateWebsiteConfig(c *gin.Context) {
	var req UpdateWebsiteConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "key is required", err)
		return
	}

	config, err := h.WebsiteConfigService.Set(req.Key, req.Value)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, config)
}
