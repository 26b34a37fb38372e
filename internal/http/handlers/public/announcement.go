package public

import (
	handlershared "github.com/bkpsdm/portal-api/internal/http/handlers/shared"
	"github.com/bkpsdm/portal-api/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetAnnouncements lists active announcements, newest publish date first
func (h *Handler) GetAnnouncements(c *gin.Context) {
	limit, offset := handlershared.ParseLimitOffset(c, 0)

	items, err := h.AnnouncementService.ListActive(limit, offset)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, items)
}

// GetAnnouncementByID fetches one announcement
func (h *Handler) GetAnnouncementByID(c *gin.Context) {
	id, ok := handlershared.ParseIDParam(c)
	if !ok {
		return
	}

	announcement, err := h.AnnouncementService.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, announcement)
}
