package admin

import (
	handlershared "github.com/bkpsdm/portal-api/internal/http/handlers/shared"
	"github.com/bkpsdm/portal-api/internal/http/response"
	"github.com/bkpsdm/portal-api/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateEventRequest create event payload
type CreateEventRequest struct {
	EventName   string `json:"event_name"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Organizer   string `json:"organizer"`
}

// UpdateEventRequest partial update payload
type UpdateEventRequest struct {
	EventName   *string `json:"event_name"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Time        *string `json:"time"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
	Organizer   *string `json:"organizer"`
}

// CreateEvent creates an event
func (h *Handler) CreateEvent(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	event, err := h.EventService.Create(service.CreateEventInput{
		EventName:   req.EventName,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Time:        req.Time,
		Location:    req.Location,
		Description: req.Description,
		Organizer:   req.Organizer,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, event)
}

// UpdateEvent partially updates an event
func (h *Handler) UpdateEvent(c *gin.Context) {
	id, ok := handlershared.ParseIDParam(c)
	if !ok {
		return
	}

	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	event, err := h.EventService.Update(id, service.UpdateEventInput{
		EventName:   req.EventName,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Time:        req.Time,
		Location:    req.Location,
		Description: req.Description,
		Organizer:   req.Organizer,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, event)
}

// DeleteEvent removes an event
func (h *Handler) DeleteEvent(c *gin.Context) {
	id, ok := handlershared.ParseIDParam(c)
	if !ok {
		return
	}

	if err := h.EventService.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}

	response.SuccessWithMsg(c, "deleted", nil)
}
