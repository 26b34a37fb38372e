package admin

import (
	handlershared "github.com/bkpsdm/portal-api/internal/http/handlers/shared"
	"github.com/bkpsdm/portal-api/internal/http/response"
	"github.com/bkpsdm/portal-api/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateDownloadRequest create document payload
type CreateDownloadRequest struct {
	DocumentName string `json:"document_name"`
	Publisher    string `json:"publisher"`
	Category     string `json:"category"`
	FilePath     string `json:"file_path"`
	Description  string `json:"description"`
}

// UpdateDownloadRequest partial update payload
type UpdateDownloadRequest struct {
	DocumentName *string `json:"document_name"`
	Publisher    *string `json:"publisher"`
	Category     *string `json:"category"`
	FilePath     *string `json:"file_path"`
	Description  *string `json:"description"`
}

// CreateDownload creates a document
func (h *Handler) CreateDownload(c *gin.Context) {
	var req CreateDownloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	download, err := h.DownloadService.Create(service.CreateDownloadInput{
		DocumentName: req.DocumentName,
		Publisher:    req.Publisher,
		Category:     req.Category,
		FilePath:     req.FilePath,
		Description:  req.Description,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, download)
}

// UpdateDownload partially updates a document
func (h *Handler) UpdateDownload(c *gin.Context) {
	id, ok := handlershared.ParseIDParam(c)
	if !ok {
		return
	}

	var req UpdateDownloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	download, err := h.DownloadService.Update(id, service.UpdateDownloadInput{
		DocumentName: req.DocumentName,
		Publisher:    req.Publisher,
		Category:     req.Category,
		FilePath:     req.FilePath,
		Description:  req.Description,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, download)
}

// DeleteDownload removes a document
func (h *Handler) DeleteDownload(c *gin.Context) {
	id, ok := handlershared.ParseIDParam(c)
	if !ok {
		return
	}

	if err := h.DownloadService.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}

	response.SuccessWithMsg(c, "deleted", nil)
}
