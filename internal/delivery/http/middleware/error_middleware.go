package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"belle-detente-backend/internal/delivery/http/response"
	"belle-detente-backend/pkg/apperror"
	"belle-detente-backend/pkg/logger"
)

// ErrorHandler renders errors appended to the gin context through the
// standard envelope. Internal error detail never reaches the client; it is
// logged here for operator diagnosis.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Err != nil {
				logger.Log.Error("request failed",
					"status", appErr.Code,
					"path", c.FullPath(),
					"error", appErr.Err,
				)
			}
			response.Error(c, appErr.Code, appErr.Message, nil)
			return
		}

		logger.Log.Error("unhandled request error", "path", c.FullPath(), "error", err)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
