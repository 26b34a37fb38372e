package admin

import (
	handlershared "github.com/bkpsdm/portal-api/internal/http/handlers/shared"
	"github.com/bkpsdm/portal-api/internal/http/response"
	"github.com/bkpsdm/portal-api/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateUserRequest create account payload
type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	IsActive *bool  `json:"is_active"`
}

// UpdateUserRequest partial update payload
type UpdateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
	IsActive *bool   `json:"is_active"`
}

// GetUsers lists accounts, password hashes scrubbed
func (h *Handler) GetUsers(c *gin.Context) {
	limit, offset := handlershared.ParseLimitOffset(c, 0)

	items, total, err := h.UserService.List(limit, offset)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, gin.H{
		"items": items,
		"total": total,
	})
}

// GetUserByID fetches one account, password hash scrubbed
func (h *Handler) GetUserByID(c *gin.Context) {
	id, ok := handlershared.ParseIDParam(c)
	if !ok {
		return
	}

	user, err := h.UserService.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, user)
}

// GetUserByUsername fetches one account with the password hash included, for
// the credential verification path
func (h *Handler) GetUserByUsername(c *gin.Context) {
	user, err := h.UserService.GetByUsername(c.Param("username"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, user)
}

// CreateUser creates an account
func (h *Handler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	user, err := h.UserService.Create(service.CreateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		IsActive: req.IsActive,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, user)
}

// UpdateUser partially updates an account
func (h *Handler) UpdateUser(c *gin.Context) {
	id, ok := handlershared.ParseIDParam(c)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	user, err := h.UserService.Update(id, service.UpdateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		IsActive: req.IsActive,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, user)
}

// DeleteUser removes an account. The last active admin cannot be deleted.
func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := handlershared.ParseIDParam(c)
	if !ok {
		return
	}

	if err := h.UserService.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}

	response.SuccessWithMsg(c, "deleted", nil)
}
