package admin

import (
	handlershared "github.com/bkpsdm/portal-api/internal/http/handlers/shared"
	"github.com/bkpsdm/portal-api/internal/http/response"
	"github.com/bkpsdm/portal-api/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateAnnouncementRequest create announcement payload
type CreateAnnouncementRequest struct {
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	PublishDate    string  `json:"publish_date"`
	AttachmentFile *string `json:"attachment_file"`
	Status         *bool   `json:"status"`
}

// UpdateAnnouncementRequest partial update payload
type UpdateAnnouncementRequest struct {
	Title          *string `json:"title"`
	Description    *string `json:"description"`
	PublishDate    *string `json:"publish_date"`
	AttachmentFile *string `json:"attachment_file"`
	Status         *bool   `json:"status"`
}

// GetAllAnnouncements lists every announcement, newest created first
func (h *Handler) GetAllAnnouncements(c *gin.Context) {
	limit, offset := handlershared.ParseLimitOffset(c, 0)

	items, total, err := h.AnnouncementService.ListAll(limit, offset)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, gin.H{
		"items": items,
		"total": total,
	})
}

// CreateAnnouncement creates an announcement
func (h *Handler) CreateAnnouncement(c *gin.Context) {
	var req CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	announcement, err := h.AnnouncementService.Create(service.CreateAnnouncementInput{
		Title:          req.Title,
		Description:    req.Description,
		PublishDate:    req.PublishDate,
		AttachmentFile: req.AttachmentFile,
		Status:         req.Status,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, announcement)
}

// UpdateAnnouncement partially updates an announcement
func (h *Handler) UpdateAnnouncement(c *gin.Context) {
	id, ok := handlershared.ParseIDParam(c)
	if !ok {
		return
	}

	var req UpdateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	announcement, err := h.AnnouncementService.Update(id, service.UpdateAnnouncementInput{
		Title:             req.Title,
		Description:       req.Description,
		PublishDate:       req.PublishDate,
		AttachmentFile:    req.AttachmentFile,
		HasAttachmentFile: req.AttachmentFile != nil,
		Status:            req.Status,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, announcement)
}

// DeleteAnnouncement removes an announcement
func (h *Handler) DeleteAnnouncement(c *gin.Context) {
	id, ok := handlershared.ParseIDParam(c)
	if !ok {
		return
	}

	if err := h.AnnouncementService.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}

	response.SuccessWithMsg(c, "deleted", nil)
}
