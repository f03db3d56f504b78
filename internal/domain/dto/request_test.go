package dto

import (
	"testing"
	"time"

	"github.com/kooply/label-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
)

func TestGenerateBatchRequestValidate(t *testing.T) {
	valid := GenerateBatchRequest{Supplier: "B", PackagingType: "M", Size: "2", Count: 3}

	tests := []struct {
		name    string
		mutate  func(*GenerateBatchRequest)
		wantErr *ValidationError
	}{
		{name: "valid request", mutate: func(r *GenerateBatchRequest) {}},
		{name: "zero count", mutate: func(r *GenerateBatchRequest) { r.Count = 0 }, wantErr: ErrInvalidCount},
		{name: "negative count", mutate: func(r *GenerateBatchRequest) { r.Count = -5 }, wantErr: ErrInvalidCount},
		{name: "count over cap", mutate: func(r *GenerateBatchRequest) { r.Count = 10001 }, wantErr: ErrInvalidCount},
		{name: "multi-char supplier", mutate: func(r *GenerateBatchRequest) { r.Supplier = "BB" }, wantErr: ErrInvalidCategory},
		{name: "empty size", mutate: func(r *GenerateBatchRequest) { r.Size = "" }, wantErr: ErrInvalidCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			err := req.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.wantErr, err)
		})
	}
}

func TestGenerateBatchRequestAt(t *testing.T) {
	now := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	override := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)

	req := GenerateBatchRequest{}
	assert.Equal(t, now, req.At(now))

	req.Date = &override
	assert.Equal(t, override, req.At(now))
}

func TestTransitionRequestValidate(t *testing.T) {
	assert.NoError(t, (&TransitionRequest{Status: model.StatusShipped}).Validate())
	assert.Error(t, (&TransitionRequest{Status: "recycled"}).Validate())
	assert.Error(t, (&TransitionRequest{}).Validate())
}

func TestErrCodeFromStatus(t *testing.T) {
	assert.Equal(t, ErrCodeInvalidRequest, ErrCodeFromStatus(400))
	assert.Equal(t, ErrCodeUnauthorized, ErrCodeFromStatus(401))
	assert.Equal(t, ErrCodeNotFound, ErrCodeFromStatus(404))
	assert.Equal(t, ErrCodeConflict, ErrCodeFromStatus(409))
	assert.Equal(t, ErrCodeUnprocessable, ErrCodeFromStatus(422))
	assert.Equal(t, ErrCodeRateLimit, ErrCodeFromStatus(429))
	assert.Equal(t, ErrCodeInternal, ErrCodeFromStatus(500))
}
