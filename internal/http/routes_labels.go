package http

import (
	"github.com/gin-gonic/gin"
)

// LabelRoutes handles label route registration.
type LabelRoutes struct {
	handler *LabelHandler
}

// NewLabelRoutes creates a new LabelRoutes instance.
func NewLabelRoutes(handler *LabelHandler) *LabelRoutes {
	return &LabelRoutes{handler: handler}
}

// RegisterRoutes registers the label endpoints on the API group.
//
// The static routes (decode, export) are declared before the :id
// parameter routes so gin resolves them first.
func (r *LabelRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	labels := rg.Group("/labels")

	labels.POST("/batches", r.handler.GenerateBatch)
	labels.POST("/decode", r.handler.DecodeLabel)
	labels.GET("/export", r.handler.ExportLabels)
	labels.GET("", r.handler.ListLabels)
	labels.GET("/:id", r.handler.GetLabel)
	labels.GET("/:id/payloads", r.handler.GetPayloads)
	labels.PATCH("/:id/status", r.handler.TransitionLabel)
}
