package public

import (
	"github.com/bkpsdm/portal-api/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetStaticContent lists all static page content
func (h *Handler) GetStaticContent(c *gin.Context) {
	items, err := h.StaticContentService.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, items)
}

// GetStaticContentByKey fetches static page content by its stable key
func (h *Handler) GetStaticContentByKey(c *gin.Context) {
	content, err := h.StaticContentService.GetByKey(c.Param("key"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, content)
}

// GetWebsiteConfig lists all site configuration entries
func (h *Handler) GetWebsiteConfig(c *gin.Context) {
	items, err := h.WebsiteConfigService.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, items)
}

// GetWebsiteConfigByKey fetches one site configuration entry
func (h *Handler) GetWebsiteConfigByKey(c *gin.Context) {
	config, err := h.WebsiteConfigService.GetByKey(c.Param("key"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, config)
}
