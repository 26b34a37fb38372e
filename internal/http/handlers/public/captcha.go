package public

import (
	"github.com/bkpsdm/portal-api/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetImageCaptcha generates an image captcha challenge
func (h *Handler) GetImageCaptcha(c *gin.Context) {
	challenge, err := h.CaptchaService.GenerateImageChallenge()
	if err != nil {
		respondError(c, response.CodeInternal, "captcha generation failed", err)
		return
	}

	response.Success(c, gin.H{
		"captcha_id":   challenge.CaptchaID,
		"image_base64": challenge.ImageBase64,
	})
}
