// Package dto defines Data Transfer Objects for HTTP request and response
// handling. DTOs decouple the HTTP layer from the domain model and carry
// binding validation for API communication.
package dto

import (
	"time"

	"github.com/kooply/label-service/internal/domain/model"
)

// maxBatchCount caps a single generation request. Larger print runs are
// split by the caller; this bound keeps request latency and response size
// sane, not the serial space (that check belongs to the codec).
const maxBatchCount = 10000

// GenerateBatchRequest is the JSON body for batch label generation.
//
// @Description Request to generate a batch of pack labels for one prefix bucket
// @Example {"supplier": "B", "packaging_type": "M", "size": "2", "count": 3}
type GenerateBatchRequest struct {
	// Supplier is the single-character supplier code.
	Supplier string `json:"supplier" binding:"required,len=1" example:"B"`
	// PackagingType is the single-character packaging type code.
	PackagingType string `json:"packaging_type" binding:"required,len=1" example:"M"`
	// Size is the single-character size class code.
	Size string `json:"size" binding:"required,len=1" example:"2"`
	// Count is the number of labels to generate, 1..10000.
	Count int `json:"count" binding:"required,gt=0" example:"3" minimum:"1" maximum:"10000"`
	// Date overrides the month/year encoded in the prefix; defaults to now.
	Date *time.Time `json:"date,omitempty" example:"2026-01-15T00:00:00Z"`
} // @name GenerateBatchRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrInvalidCount is returned when count is out of bounds.
	ErrInvalidCount = &ValidationError{Field: "count", Message: "must be between 1 and 10000"}
	// ErrInvalidCategory is returned when a category code is not one character.
	ErrInvalidCategory = &ValidationError{Field: "supplier/packaging_type/size", Message: "must each be exactly one character"}
)

// Validate performs custom validation on the request.
func (r *GenerateBatchRequest) Validate() error {
	if len(r.Supplier) != 1 || len(r.PackagingType) != 1 || len(r.Size) != 1 {
		return ErrInvalidCategory
	}
	if r.Count <= 0 || r.Count > maxBatchCount {
		return ErrInvalidCount
	}
	return nil
}

// At returns the effective date for prefix encoding.
func (r *GenerateBatchRequest) At(now time.Time) time.Time {
	if r.Date != nil {
		return *r.Date
	}
	return now
}

// DecodeLabelRequest is the JSON body for decoding a label string.
//
// @Description Request to decode a pack label into its components
type DecodeLabelRequest struct {
	// LabelID is the full 11-character pack label.
	LabelID string `json:"label_id" binding:"required" example:"KBM2b100042"`
} // @name DecodeLabelRequest

// TransitionRequest is the JSON body for a lifecycle transition.
//
// @Description Request to move a label to its next lifecycle status
type TransitionRequest struct {
	// Status is the target lifecycle status.
	Status model.LabelStatus `json:"status" binding:"required" example:"shipped"`
} // @name TransitionRequest

// Validate checks the target status is a known lifecycle state.
func (r *TransitionRequest) Validate() error {
	if !r.Status.Valid() {
		return &ValidationError{Field: "status", Message: "unknown lifecycle status"}
	}
	return nil
}
