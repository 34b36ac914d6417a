package middleware

import (
	"errors"
	"net/http"

	"dailywage-backend/internal/delivery/http/response"
	"dailywage-backend/pkg/apperror"
	"dailywage-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			appErr = apperror.Internal(err)
		}

		if appErr.Code >= http.StatusInternalServerError {
			// Never expose internal error details to clients
			logger.Log.Error("request failed",
				"request_id", requestIDOf(c),
				"method", c.Request.Method,
				"path", c.FullPath(),
				"error", err,
			)
		}

		var detail interface{}
		if appErr.Field != "" {
			detail = gin.H{"field": appErr.Field}
		}
		response.Error(c, appErr.Code, appErr.Message, detail)
	}
}
