package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kooply/label-service/internal/domain/dto"
	"github.com/kooply/label-service/internal/i18n"
	"github.com/kooply/label-service/internal/middleware"
)

// ResponseBuilder assembles the standard success/error envelopes with the
// request ID and translated messages filled in.
type ResponseBuilder struct {
	c *gin.Context
}

// NewResponseBuilder creates a response builder for the given context.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

// Success sends a wrapped response with the given status code.
func (b *ResponseBuilder) Success(statusCode int, data interface{}) {
	b.c.JSON(statusCode, dto.SuccessResponse{
		Data:      data,
		RequestID: middleware.GetRequestID(b.c),
		Timestamp: time.Now(),
	})
}

// SuccessOK sends a 200 OK response with the given data.
func (b *ResponseBuilder) SuccessOK(data interface{}) {
	b.Success(http.StatusOK, data)
}

// SuccessCreated sends a 201 Created response with the given data.
func (b *ResponseBuilder) SuccessCreated(data interface{}) {
	b.Success(http.StatusCreated, data)
}

// Error sends a translated error response for the given message key and
// records err on the context for the error-handler middleware to log.
func (b *ResponseBuilder) Error(statusCode int, messageKey string, err error) {
	locale := i18n.GetLocale(b.c)
	message := i18n.GetTranslator().Translate(messageKey, locale)
	b.errorOut(statusCode, message, err)
}

// ErrorWithMessage sends an error response with a literal message.
func (b *ResponseBuilder) ErrorWithMessage(statusCode int, message string, err error) {
	b.errorOut(statusCode, message, err)
}

func (b *ResponseBuilder) errorOut(statusCode int, message string, err error) {
	if err != nil {
		_ = b.c.Error(err)
	}
	resp := dto.NewError(dto.ErrCodeFromStatus(statusCode), message).
		WithRequestID(middleware.GetRequestID(b.c))
	b.c.AbortWithStatusJSON(statusCode, resp)
}

// Validator is implemented by requests that validate themselves.
type Validator interface {
	Validate() error
}

// BindAndValidate binds the JSON body into T and runs its validation.
func BindAndValidate[T any](c *gin.Context) (*T, error) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}
	if v, ok := any(&req).(Validator); ok {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}
	return &req, nil
}
