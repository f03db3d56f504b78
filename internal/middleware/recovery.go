package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kooply/label-service/internal/domain/dto"
	"github.com/kooply/label-service/internal/logger"
)

// Recovery returns a middleware that recovers from panics and responds 500.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log := logger.Logger()
				log.Error().
					Str("request_id", GetRequestID(c)).
					Interface("panic", err).
					Msg("PANIC recovered")

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Error:   dto.ErrCodeInternal,
					Message: "An unexpected error occurred",
				})
			}
		}()
		c.Next()
	}
}
