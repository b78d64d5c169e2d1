package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"collab-filter/internal/api/errors"
)

// ErrorHandler recovers panics and turns them into JSON API errors.
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		requestID := c.GetString(RequestIDKey)

		var apiErr *errors.APIError

		switch err := recovered.(type) {
		case *errors.APIError:
			apiErr = err
		case error:
			logger.Error("Internal server error",
				zap.Error(err),
				zap.String("request_id", requestID),
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method),
			)
			apiErr = errors.NewInternalError("Internal server error")
		default:
			logger.Error("Unknown panic occurred",
				zap.Any("recovered", recovered),
				zap.String("request_id", requestID),
			)
			apiErr = errors.NewInternalError("Internal server error")
		}

		apiErr.RequestID = requestID
		c.AbortWithStatusJSON(apiErr.HTTPStatus(), apiErr)
	})
}

// retryAfterSeconds is sent with 503 responses.
const retryAfterSeconds = "5"

// HandleError writes err as a JSON API error and aborts the request.
// Engine errors are mapped by errors.FromEngine.
func HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	apiErr := errors.FromEngine(err)
	apiErr.RequestID = c.GetString(RequestIDKey)
	switch apiErr.Kind {
	case errors.KindInternal:
		c.Error(err)
	case errors.KindServiceUnavailable:
		c.Header("Retry-After", retryAfterSeconds)
	}
	c.AbortWithStatusJSON(apiErr.HTTPStatus(), apiErr)
}
