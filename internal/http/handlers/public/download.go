package public

import (
	handlershared "github.com/bkpsdm/portal-api/internal/http/handlers/shared"
	"github.com/bkpsdm/portal-api/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetDownloads lists documents, optionally filtered by category
func (h *Handler) GetDownloads(c *gin.Context) {
	category := c.Query("category")
	limit, offset := handlershared.ParseLimitOffset(c, 0)

	items, total, err := h.DownloadService.List(category, limit, offset)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, gin.H{
		"items": items,
		"total": total,
	})
}

// GetDownloadByID fetches one document, counting the hit
func (h *Handler) GetDownloadByID(c *gin.Context) {
	id, ok := handlershared.ParseIDParam(c)
	if !ok {
		return
	}

	download, err := h.DownloadService.RecordHit(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, download)
}
