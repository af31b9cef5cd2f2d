package response

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domainerrors "club-site.backend/internal/domain/errors"
	"club-site.backend/pkg/logger"
	"club-site.backend/pkg/validation"
)

// exposeDetails adds the underlying error text to 5xx bodies; it is off in
// production.
var exposeDetails = true

// SetExposeDetails toggles debug detail in error bodies.
func SetExposeDetails(on bool) {
	exposeDetails = on
}

// ExposeDetails reports whether debug detail is enabled.
func ExposeDetails() bool {
	return exposeDetails
}

// Success sends {success:true, data}. data is always present, null included.
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

// SuccessWithMessage sends {success:true, data, message}.
func SuccessWithMessage(c *gin.Context, status int, data interface{}, message string) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
		"message": message,
	})
}

// Message sends {success:true, message} with no data.
func Message(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": true,
		"message": message,
	})
}

// Error sends {success:false, error}. Unknown errors become a 500 and never
// leak their text unless detail exposure is on.
func Error(c *gin.Context, err error) {
	appErr := FromError(err)
	body := gin.H{
		"success": false,
		"error":   appErr.Message,
	}
	if appErr.Status >= http.StatusInternalServerError {
		logger.Error(c.Request.Context(), "Request failed",
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", appErr.Status),
			zap.Error(err),
		)
		if exposeDetails && appErr.Err != nil {
			body["stack"] = appErr.Err.Error()
		}
	}
	c.AbortWithStatusJSON(appErr.Status, body)
}

// ErrorWithStatus sends an error envelope with an explicit status and message.
func ErrorWithStatus(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"success": false,
		"error":   message,
	})
}

// FromError maps err onto the public error taxonomy.
func FromError(err error) *domainerrors.AppError {
	if appErr, ok := domainerrors.As(err); ok {
		return appErr
	}
	var verr *validation.Error
	if errors.As(err, &verr) {
		return domainerrors.BadRequest(verr.Error())
	}
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, domainerrors.ErrTimeout):
		return domainerrors.Timeout()
	case errors.Is(err, domainerrors.ErrNotFound):
		return domainerrors.NotFound("Resource not found")
	case errors.Is(err, domainerrors.ErrConflict):
		return domainerrors.Conflict("Duplicate field value entered")
	case errors.Is(err, domainerrors.ErrRateLimited):
		return domainerrors.RateLimited("Too many submissions, please try again later")
	case errors.Is(err, domainerrors.ErrInvalidCredentials):
		return domainerrors.InvalidCredentials()
	case errors.Is(err, domainerrors.ErrUnauthorized):
		return domainerrors.Unauthorized("Not authorized to access this route")
	case errors.Is(err, domainerrors.ErrInvalidInput):
		return domainerrors.BadRequest(err.Error())
	default:
		return domainerrors.InternalError(err)
	}
}
