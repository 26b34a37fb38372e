package shared

import (
	"errors"

	"github.com/bkpsdm/portal-api/internal/http/response"
	"github.com/bkpsdm/portal-api/internal/logger"
	"github.com/bkpsdm/portal-api/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLog provides a logger carrying the request_id
func RequestLog(c *gin.Context) *zap.SugaredLogger {
	if c == nil {
		return logger.S()
	}
	if requestID, ok := c.Get("request_id"); ok {
		if id, ok := requestID.(string); ok && id != "" {
			return logger.SW("request_id", id)
		}
	}
	return logger.S()
}

// RespondError writes an error response, logging the original error if any
func RespondError(c *gin.Context, code int, msg string, err error) {
	appErr := response.WrapError(code, msg, err)
	if err != nil {
		RequestLog(c).Errorw("handler_error",
			"code", appErr.Code,
			"message", appErr.Message,
			"error", err,
		)
	}
	response.Error(c, appErr.Code, appErr.Message)
}

// RespondServiceError maps service-layer errors onto response codes.
// Validation failures carry the field message, constraint violations conflict,
// everything unexpected is logged and surfaced as a generic internal failure.
func RespondServiceError(c *gin.Context, err error) {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		RespondError(c, response.CodeBadRequest, validationErr.Error(), nil)
		return
	}
	var constraintErr *service.ConstraintError
	if errors.As(err, &constraintErr) {
		RespondError(c, response.CodeConflict, constraintErr.Message, nil)
		return
	}
	switch {
	case errors.Is(err, service.ErrNotFound):
		RespondError(c, response.CodeNotFound, "record not found", nil)
	case errors.Is(err, service.ErrLastActiveAdmin):
		RespondError(c, response.CodeForbidden, "cannot remove the last active admin", nil)
	case errors.Is(err, service.ErrInvalidCredentials):
		RespondError(c, response.CodeUnauthorized, "invalid username or password", nil)
	case errors.Is(err, service.ErrAccountInactive):
		RespondError(c, response.CodeForbidden, "account is inactive", nil)
	case errors.Is(err, service.ErrCaptchaInvalid):
		RespondError(c, response.CodeBadRequest, "captcha verification failed", nil)
	default:
		RespondError(c, response.CodeInternal, "internal error", err)
	}
}
