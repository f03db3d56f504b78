// Package service implements the business operations of the label service.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kooply/label-service/internal/codec"
	"github.com/kooply/label-service/internal/domain/model"
	"github.com/kooply/label-service/internal/metrics"
	"github.com/kooply/label-service/internal/repository"
	"github.com/kooply/label-service/internal/service/cache"
)

var (
	// ErrLabelNotFound is returned when a label does not exist.
	ErrLabelNotFound = errors.New("label not found")
	// ErrInvalidTransition is returned for a disallowed lifecycle move.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrRepositoryNotConfigured is returned when persistence is not wired.
	ErrRepositoryNotConfigured = errors.New("label repository not configured")
)

// GenerateBatchInput describes one batch generation request.
type GenerateBatchInput struct {
	Supplier      byte
	PackagingType byte
	Size          byte
	At            time.Time
	Count         int
	Actor         string
}

// LabelService defines label generation and lifecycle operations.
type LabelService interface {
	// GenerateBatch reserves a serial range, encodes the labels and
	// persists them. Either every label in the batch is created or none.
	GenerateBatch(ctx context.Context, in GenerateBatchInput) (*model.LabelBatch, error)
	// Get fetches one label by its full label string.
	Get(ctx context.Context, labelID string) (*model.Label, error)
	// Decode splits a label string into its parts. Pure, no persistence.
	Decode(labelID string) (*model.LabelParts, error)
	// Transition moves a label to the next lifecycle state.
	Transition(ctx context.Context, labelID string, next model.LabelStatus, actor string) (*model.Label, error)
	// List returns labels matching the filter.
	List(ctx context.Context, filter repository.LabelFilter) ([]model.Label, error)
}

// LabelServiceImpl implements LabelService on top of a SerialAllocator and a
// label repository.
type LabelServiceImpl struct {
	allocator SerialAllocator
	labels    repository.LabelRepositoryInterface
	cache     cache.Cache
	now       func() time.Time
}

// LabelOption configures a LabelServiceImpl.
type LabelOption func(*LabelServiceImpl)

// WithClock injects a clock, for tests.
func WithClock(now func() time.Time) LabelOption {
	return func(s *LabelServiceImpl) {
		s.now = now
	}
}

// WithCache puts a read cache in front of label lookups. Transitions made
// through this service keep the cache coherent; writes from elsewhere are
// visible after the cache TTL.
func WithCache(capacity int, ttl time.Duration) LabelOption {
	return func(s *LabelServiceImpl) {
		s.cache = NewShardedCache(capacity, ttl, 16)
	}
}

// NewLabelService creates a LabelService. The repository may be nil, in
// which case generation still works (labels are returned, not persisted) so
// the service degrades instead of failing when the database is down.
func NewLabelService(allocator SerialAllocator, labels repository.LabelRepositoryInterface, opts ...LabelOption) *LabelServiceImpl {
	s := &LabelServiceImpl{
		allocator: allocator,
		labels:    labels,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateBatch implements LabelService.
//
// Overflow is checked twice: once against the requested count before any
// allocation, and again against the range the allocator actually returned.
// Both checks abort the whole batch before a single label exists.
func (s *LabelServiceImpl) GenerateBatch(ctx context.Context, in GenerateBatchInput) (*model.LabelBatch, error) {
	if s.allocator == nil {
		return nil, ErrAllocatorNotConfigured
	}
	if in.Count <= 0 {
		return nil, fmt.Errorf("%w: batch count %d must be positive", codec.ErrSerialOutOfRange, in.Count)
	}
	if int64(in.Count) > codec.SerialCapacity {
		return nil, fmt.Errorf("%w: batch count %d exceeds serial capacity %d", codec.ErrSerialOutOfRange, in.Count, codec.SerialCapacity)
	}

	prefix, err := codec.BuildPrefix(in.Supplier, in.PackagingType, in.Size, in.At)
	if err != nil {
		return nil, err
	}

	start, err := s.allocator.Reserve(ctx, prefix, int64(in.Count))
	if err != nil {
		metrics.RecordAllocation(prefix, "error")
		return nil, err
	}
	metrics.RecordAllocation(prefix, "success")

	serials, err := codec.SerialRange(start, int64(in.Count))
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	batchID := uuid.New().String()
	initial := model.StatusChange{Status: model.StatusProduced, Actor: in.Actor, Timestamp: now}

	labels := make([]model.Label, in.Count)
	for i, serial := range serials {
		labels[i] = model.Label{
			LabelID:       codec.ComposeLabelID(prefix, serial),
			Prefix:        prefix,
			Serial:        serial,
			Sequence:      start + int64(i),
			Supplier:      string(in.Supplier),
			PackagingType: string(in.PackagingType),
			Size:          string(in.Size),
			BatchID:       batchID,
			Status:        model.StatusProduced,
			History:       []model.StatusChange{initial},
			CreatedAt:     now,
			UpdatedAt:     now,
		}
	}

	if s.labels != nil {
		if err := s.labels.InsertMany(ctx, labels); err != nil {
			return nil, err
		}
	}

	metrics.RecordBatchGeneration(in.Count, "success")
	return &model.LabelBatch{
		BatchID:     batchID,
		Prefix:      prefix,
		StartSerial: start,
		Count:       in.Count,
		Labels:      labels,
		CreatedAt:   now,
	}, nil
}

// Get implements LabelService.
func (s *LabelServiceImpl) Get(ctx context.Context, labelID string) (*model.Label, error) {
	if s.labels == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if _, _, err := codec.SplitLabelID(labelID); err != nil {
		return nil, err
	}
	if s.cache != nil {
		if cached, ok := s.cache.Get(labelID); ok {
			return &cached, nil
		}
	}
	label, err := s.labels.FindByLabelID(ctx, labelID)
	if err != nil {
		return nil, err
	}
	if label == nil {
		return nil, ErrLabelNotFound
	}
	if s.cache != nil {
		s.cache.Set(labelID, *label)
	}
	return label, nil
}

// Decode implements LabelService.
func (s *LabelServiceImpl) Decode(labelID string) (*model.LabelParts, error) {
	prefix, serial, err := codec.SplitLabelID(labelID)
	if err != nil {
		return nil, err
	}
	sequence, err := codec.DecodeSerial(serial)
	if err != nil {
		return nil, err
	}
	return &model.LabelParts{
		LabelID:       labelID,
		Prefix:        prefix,
		Supplier:      string(prefix[1]),
		PackagingType: string(prefix[2]),
		Size:          string(prefix[3]),
		MonthCode:     string(prefix[4]),
		YearCode:      string(prefix[5]),
		Serial:        serial,
		Sequence:      sequence,
	}, nil
}

// Transition implements LabelService.
func (s *LabelServiceImpl) Transition(ctx context.Context, labelID string, next model.LabelStatus, actor string) (*model.Label, error) {
	if s.labels == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if !next.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, next)
	}

	label, err := s.Get(ctx, labelID)
	if err != nil {
		return nil, err
	}
	if !label.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, label.Status, next)
	}

	change := model.StatusChange{Status: next, Actor: actor, Timestamp: s.now().UTC()}
	updated, err := s.labels.UpdateStatus(ctx, labelID, label.Status, change)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		// Concurrent transition won the compare-and-set.
		if s.cache != nil {
			s.cache.Invalidate(labelID)
		}
		return nil, fmt.Errorf("%w: label %s changed state concurrently", ErrInvalidTransition, labelID)
	}
	if s.cache != nil {
		s.cache.Set(labelID, *updated)
	}
	metrics.RecordStatusTransition(string(label.Status), string(next))
	return updated, nil
}

// List implements LabelService.
func (s *LabelServiceImpl) List(ctx context.Context, filter repository.LabelFilter) ([]model.Label, error) {
	if s.labels == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.labels.List(ctx, filter)
}
