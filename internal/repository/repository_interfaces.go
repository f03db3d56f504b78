// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"github.com/kooply/label-service/internal/domain/model"
)

// LabelFilter narrows label listings. Zero values mean "no constraint".
type LabelFilter struct {
	Prefix  string
	BatchID string
	Status  model.LabelStatus
	Limit   int64
	Offset  int64
}

// LabelRepositoryInterface defines the interface for label persistence.
type LabelRepositoryInterface interface {
	// InsertMany persists a freshly generated batch. The unique index on
	// label_id makes a duplicate batch fail as a whole.
	InsertMany(ctx context.Context, labels []model.Label) error
	// FindByLabelID returns the label or nil when absent.
	FindByLabelID(ctx context.Context, labelID string) (*model.Label, error)
	// UpdateStatus applies a lifecycle transition guarded by the expected
	// current status (compare-and-set). Returns nil when the guard failed.
	UpdateStatus(ctx context.Context, labelID string, expected model.LabelStatus, change model.StatusChange) (*model.Label, error)
	// List returns labels matching the filter, ordered by sequence.
	List(ctx context.Context, filter LabelFilter) ([]model.Label, error)
}

// SerialCounterRepositoryInterface defines the transactional serial
// allocator backed by the database. It satisfies service.SerialAllocator.
type SerialCounterRepositoryInterface interface {
	Reserve(ctx context.Context, prefix string, count int64) (int64, error)
	// Peek returns the next unallocated serial for a bucket without
	// reserving anything.
	Peek(ctx context.Context, prefix string) (int64, error)
}
