// Package http provides the gin HTTP layer of the label service.
package http

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kooply/label-service/internal/circuitbreaker"
	"github.com/kooply/label-service/internal/codec"
	"github.com/kooply/label-service/internal/domain/dto"
	"github.com/kooply/label-service/internal/domain/model"
	"github.com/kooply/label-service/internal/i18n"
	"github.com/kooply/label-service/internal/middleware"
	"github.com/kooply/label-service/internal/repository"
	"github.com/kooply/label-service/internal/service"
)

// LabelHandler provides HTTP handlers for label generation and lifecycle.
type LabelHandler struct {
	labels service.LabelService
	export *service.ExportService
	now    func() time.Time
}

// NewLabelHandler creates a new LabelHandler.
func NewLabelHandler(labels service.LabelService, export *service.ExportService) *LabelHandler {
	return &LabelHandler{
		labels: labels,
		export: export,
		now:    time.Now,
	}
}

// GenerateBatch handles POST /api/labels/batches.
//
// @Summary      Generate a batch of pack labels
// @Description  Reserves a contiguous serial range for the requested prefix bucket and returns the encoded labels. The whole batch succeeds or fails; a range that would overflow the serial capacity is rejected before any label is created.
// @Tags         Labels
// @Accept       json
// @Produce      json
// @Param        request body dto.GenerateBatchRequest true "Batch parameters"
// @Success      201 {object} dto.SuccessResponse "Generated batch"
// @Failure      400 {object} dto.ErrorResponse "Invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      422 {object} dto.ErrorResponse "Serial capacity exhausted"
// @Failure      503 {object} dto.ErrorResponse "Storage unavailable"
// @Security     BearerAuth
// @Router       /api/labels/batches [post]
func (h *LabelHandler) GenerateBatch(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BindAndValidate[dto.GenerateBatchRequest](c)
	if err != nil {
		var vErr *dto.ValidationError
		if errors.As(err, &vErr) {
			builder.ErrorWithMessage(http.StatusBadRequest, vErr.Error(), err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	batch, err := h.labels.GenerateBatch(c.Request.Context(), service.GenerateBatchInput{
		Supplier:      req.Supplier[0],
		PackagingType: req.PackagingType[0],
		Size:          req.Size[0],
		At:            req.At(h.now()),
		Count:         req.Count,
		Actor:         middleware.OperatorID(c),
	})
	if err != nil {
		h.writeLabelError(builder, err)
		return
	}

	builder.SuccessCreated(batch)
}

// GetLabel handles GET /api/labels/:id.
//
// @Summary      Fetch a label
// @Description  Returns the label document, including its lifecycle history.
// @Tags         Labels
// @Produce      json
// @Param        id path string true "Full 11-character pack label"
// @Success      200 {object} dto.SuccessResponse
// @Failure      400 {object} dto.ErrorResponse "Malformed label"
// @Failure      404 {object} dto.ErrorResponse "Unknown label"
// @Security     BearerAuth
// @Router       /api/labels/{id} [get]
func (h *LabelHandler) GetLabel(c *gin.Context) {
	builder := NewResponseBuilder(c)

	label, err := h.labels.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeLabelError(builder, err)
		return
	}
	builder.SuccessOK(label)
}

// DecodeLabel handles POST /api/labels/decode.
//
// @Summary      Decode a label string
// @Description  Splits a scanned label into its components and recovers the sequence counter. Pure computation, no database access.
// @Tags         Labels
// @Accept       json
// @Produce      json
// @Param        request body dto.DecodeLabelRequest true "Label to decode"
// @Success      200 {object} dto.SuccessResponse
// @Failure      400 {object} dto.ErrorResponse "Malformed label"
// @Router       /api/labels/decode [post]
func (h *LabelHandler) DecodeLabel(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BindAndValidate[dto.DecodeLabelRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	parts, err := h.labels.Decode(req.LabelID)
	if err != nil {
		h.writeLabelError(builder, err)
		return
	}
	builder.SuccessOK(parts)
}

// TransitionLabel handles PATCH /api/labels/:id/status.
//
// @Summary      Move a label through its lifecycle
// @Description  Applies one lifecycle transition (produced → grouped → shipped → returned, lost from any non-terminal state). Disallowed transitions answer 409 and write nothing.
// @Tags         Labels
// @Accept       json
// @Produce      json
// @Param        id path string true "Full pack label"
// @Param        request body dto.TransitionRequest true "Target status"
// @Success      200 {object} dto.SuccessResponse
// @Failure      400 {object} dto.ErrorResponse "Invalid input"
// @Failure      404 {object} dto.ErrorResponse "Unknown label"
// @Failure      409 {object} dto.ErrorResponse "Transition not allowed"
// @Security     BearerAuth
// @Router       /api/labels/{id}/status [patch]
func (h *LabelHandler) TransitionLabel(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BindAndValidate[dto.TransitionRequest](c)
	if err != nil {
		var vErr *dto.ValidationError
		if errors.As(err, &vErr) {
			builder.ErrorWithMessage(http.StatusBadRequest, vErr.Error(), err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	label, err := h.labels.Transition(c.Request.Context(), c.Param("id"), req.Status, middleware.OperatorID(c))
	if err != nil {
		h.writeLabelError(builder, err)
		return
	}
	builder.SuccessOK(label)
}

// ListLabels handles GET /api/labels.
//
// @Summary      List labels
// @Description  Lists labels filtered by prefix bucket, batch and status, ordered by sequence.
// @Tags         Labels
// @Produce      json
// @Param        prefix   query string false "Prefix bucket (6 characters)"
// @Param        batch_id query string false "Batch ID"
// @Param        status   query string false "Lifecycle status"
// @Param        limit    query int    false "Page size (max 500)"
// @Param        offset   query int    false "Page offset"
// @Success      200 {object} dto.SuccessResponse
// @Security     BearerAuth
// @Router       /api/labels [get]
func (h *LabelHandler) ListLabels(c *gin.Context) {
	builder := NewResponseBuilder(c)

	filter, ok := h.bindFilter(c, builder)
	if !ok {
		return
	}

	labels, err := h.labels.List(c.Request.Context(), filter)
	if err != nil {
		h.writeLabelError(builder, err)
		return
	}
	builder.SuccessOK(labels)
}

// ExportLabels handles GET /api/labels/export.
//
// @Summary      Export labels as CSV
// @Description  Streams the two-column bulk export (Pack ID, Tracking URL) for the filtered label set.
// @Tags         Labels
// @Produce      text/csv
// @Param        prefix   query string false "Prefix bucket"
// @Param        batch_id query string false "Batch ID"
// @Param        status   query string false "Lifecycle status"
// @Success      200 {string} string "CSV payload"
// @Security     BearerAuth
// @Router       /api/labels/export [get]
func (h *LabelHandler) ExportLabels(c *gin.Context) {
	builder := NewResponseBuilder(c)

	filter, ok := h.bindFilter(c, builder)
	if !ok {
		return
	}

	labels, err := h.labels.List(c.Request.Context(), filter)
	if err != nil {
		h.writeLabelError(builder, err)
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="pack-labels.csv"`)
	c.Status(http.StatusOK)
	if err := h.export.WriteCSV(c.Writer, labels); err != nil {
		_ = c.Error(err)
	}
}

// GetPayloads handles GET /api/labels/:id/payloads.
//
// @Summary      Rendering payloads for a label
// @Description  Returns the strings embedded verbatim into the QR code and the Code128 barcode for a label. The label must exist.
// @Tags         Labels
// @Produce      json
// @Param        id path string true "Full pack label"
// @Success      200 {object} dto.SuccessResponse
// @Failure      404 {object} dto.ErrorResponse "Unknown label"
// @Security     BearerAuth
// @Router       /api/labels/{id}/payloads [get]
func (h *LabelHandler) GetPayloads(c *gin.Context) {
	builder := NewResponseBuilder(c)

	label, err := h.labels.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeLabelError(builder, err)
		return
	}
	builder.SuccessOK(h.export.Payloads(label.LabelID))
}

// bindFilter reads the list/export query parameters.
func (h *LabelHandler) bindFilter(c *gin.Context, builder *ResponseBuilder) (repository.LabelFilter, bool) {
	var query struct {
		Prefix  string `form:"prefix"`
		BatchID string `form:"batch_id"`
		Status  string `form:"status"`
		Limit   int64  `form:"limit"`
		Offset  int64  `form:"offset"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return repository.LabelFilter{}, false
	}

	status := model.LabelStatus(query.Status)
	if query.Status != "" && !status.Valid() {
		builder.ErrorWithMessage(http.StatusBadRequest, fmt.Sprintf("status: unknown lifecycle status %q", query.Status), nil)
		return repository.LabelFilter{}, false
	}

	return repository.LabelFilter{
		Prefix:  query.Prefix,
		BatchID: query.BatchID,
		Status:  status,
		Limit:   query.Limit,
		Offset:  query.Offset,
	}, true
}

// writeLabelError maps domain errors onto HTTP responses.
func (h *LabelHandler) writeLabelError(builder *ResponseBuilder, err error) {
	var invalidSerial *codec.InvalidSerialError
	var invalidCategory *codec.InvalidCategoryCodeError

	switch {
	case errors.Is(err, codec.ErrSerialOutOfRange):
		builder.Error(http.StatusUnprocessableEntity, i18n.ErrKeySerialCapacity, err)
	case errors.As(err, &invalidSerial):
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidLabel, err)
	case errors.As(err, &invalidCategory):
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidCategory, err)
	case errors.Is(err, service.ErrLabelNotFound):
		builder.Error(http.StatusNotFound, i18n.ErrKeyLabelNotFound, err)
	case errors.Is(err, service.ErrInvalidTransition):
		builder.Error(http.StatusConflict, i18n.ErrKeyInvalidTransition, err)
	case errors.Is(err, circuitbreaker.ErrCircuitOpen),
		errors.Is(err, service.ErrRepositoryNotConfigured),
		errors.Is(err, service.ErrAllocatorNotConfigured):
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyInternalError, err)
	default:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}
