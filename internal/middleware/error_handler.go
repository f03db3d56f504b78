package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kooply/label-service/internal/domain/dto"
	"github.com/kooply/label-service/internal/i18n"
	"github.com/kooply/label-service/internal/logger"
)

// ErrorHandler returns a middleware that logs gin context errors and, when
// no response has been written yet, answers with a generic 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last()
		requestID := GetRequestID(c)

		log := logger.Logger()
		log.Error().
			Str("request_id", requestID).
			Str("error", err.Error()).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Request error")

		if !c.Writer.Written() {
			locale := i18n.GetLocale(c)
			message := i18n.GetTranslator().Translate(i18n.ErrKeyInternalError, locale)
			c.JSON(http.StatusInternalServerError, dto.NewError(dto.ErrCodeInternal, message).WithRequestID(requestID))
		}
	}
}
