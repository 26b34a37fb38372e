package public

import (
	handlershared "github.com/bkpsdm/portal-api/internal/http/handlers/shared"
	"github.com/bkpsdm/portal-api/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetEvents lists events, earliest start first
func (h *Handler) GetEvents(c *gin.Context) {
	limit, offset := handlershared.ParseLimitOffset(c, 0)

	items, total, err := h.EventService.List(limit, offset)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, gin.H{
		"items": items,
		"total": total,
	})
}

// GetUpcomingEvents lists events starting today or later
func (h *Handler) GetUpcomingEvents(c *gin.Context) {
	limit, _ := handlershared.ParseLimitOffset(c, 0)

	items, err := h.EventService.Upcoming(limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, items)
}

// GetEventByID fetches one event
func (h *Handler) GetEventByID(c *gin.Context) {
	id, ok := handlershared.ParseIDParam(c)
	if !ok {
		return
	}

	event, err := h.EventService.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, event)
}
