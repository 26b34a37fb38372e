package public

import (
	"strconv"

	handlershared "github.com/bkpsdm/portal-api/internal/http/handlers/shared"
	"github.com/bkpsdm/portal-api/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetNews lists articles, optionally filtered by category and published flag
func (h *Handler) GetNews(c *gin.Context) {
	category := c.Query("category")
	var status *bool
	if raw := c.Query("status"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			respondError(c, response.CodeBadRequest, "status: must be a boolean", nil)
			return
		}
		status = &parsed
	}
	limit, offset := handlershared.ParseLimitOffset(c, 0)

	items, total, err := h.NewsService.List(category, status, limit, offset)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, gin.H{
		"items": items,
		"total": total,
	})
}

// GetNewsByID fetches one article, counting the view
func (h *Handler) GetNewsByID(c *gin.Context) {
	id, ok := handlershared.ParseIDParam(c)
	if !ok {
		return
	}

	news, err := h.NewsService.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, news)
}

// GetPopularNews lists the most read articles
func (h *Handler) GetPopularNews(c *gin.Context) {
	limit, _ := handlershared.ParseLimitOffset(c, 0)

	items, err := h.NewsService.Popular(limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, items)
}

// GetLatestNews lists the newest published articles
func (h *Handler) GetLatestNews(c *gin.Context) {
	limit, _ := handlershared.ParseLimitOffset(c, 0)

	items, err := h.NewsService.Latest(limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, items)
}
