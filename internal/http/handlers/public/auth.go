package public

import (
	"time"

	"github.com/bkpsdm/portal-api/internal/http/response"

	"github.com/gin-gonic/gin"
)

// LoginRequest login payload
type LoginRequest struct {
	Username    string `json:"username" binding:"required"`
	Password    string `json:"password" binding:"required"`
	CaptchaID   string `json:"captcha_id"`
	CaptchaCode string `json:"captcha_code"`
}

// LoginResponse login result
type LoginResponse struct {
	Token     string      `json:"token"`
	User      interface{} `json:"user"`
	ExpiresAt string      `json:"expires_at"`
}

// Login verifies credentials and issues a JWT
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "username and password are required", err)
		return
	}

	if err := h.CaptchaService.Verify(req.CaptchaID, req.CaptchaCode); err != nil {
		respondServiceError(c, err)
		return
	}

	user, token, expiresAt, err := h.AuthService.Login(req.Username, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, LoginResponse{
		Token:     token,
		User:      user,
		ExpiresAt: expiresAt.Format(time.RFC3339),
	})
}

// Me returns the authenticated account
func (h *Handler) Me(c *gin.Context) {
	value, exists := c.Get("user_id")
	if !exists {
		response.Unauthorized(c, "unauthorized")
		return
	}
	userID, ok := value.(uint)
	if !ok {
		response.Unauthorized(c, "unauthorized")
		return
	}

	user, err := h.UserService.GetByID(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, user)
}
