// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"

	"github.com/kooply/label-service/internal/circuitbreaker"
	"github.com/kooply/label-service/internal/domain/model"
)

// LabelRepositoryWithCircuitBreaker wraps LabelRepository with circuit
// breaker protection.
type LabelRepositoryWithCircuitBreaker struct {
	repo           *LabelRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLabelRepositoryWithCircuitBreaker creates a new wrapper.
func NewLabelRepositoryWithCircuitBreaker(repo *LabelRepository, cb *circuitbreaker.CircuitBreaker) *LabelRepositoryWithCircuitBreaker {
	return &LabelRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// InsertMany persists a batch with circuit breaker protection.
func (r *LabelRepositoryWithCircuitBreaker) InsertMany(ctx context.Context, labels []model.Label) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.InsertMany(ctx, labels)
	})
}

// FindByLabelID fetches a label with circuit breaker protection.
func (r *LabelRepositoryWithCircuitBreaker) FindByLabelID(ctx context.Context, labelID string) (*model.Label, error) {
	var result *model.Label
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.FindByLabelID(ctx, labelID)
		return cbErr
	})
	return result, err
}

// UpdateStatus applies a transition with circuit breaker protection.
func (r *LabelRepositoryWithCircuitBreaker) UpdateStatus(ctx context.Context, labelID string, expected model.LabelStatus, change model.StatusChange) (*model.Label, error) {
	var result *model.Label
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.UpdateStatus(ctx, labelID, expected, change)
		return cbErr
	})
	return result, err
}

// List queries labels with circuit breaker protection.
func (r *LabelRepositoryWithCircuitBreaker) List(ctx context.Context, filter LabelFilter) ([]model.Label, error) {
	var result []model.Label
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx, filter)
		return cbErr
	})
	return result, err
}

// SerialCounterRepositoryWithCircuitBreaker wraps SerialCounterRepository
// with circuit breaker protection. Reserve failures while the circuit is
// open surface immediately; a batch request must never fall back to a
// non-transactional counter.
type SerialCounterRepositoryWithCircuitBreaker struct {
	repo           *SerialCounterRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewSerialCounterRepositoryWithCircuitBreaker creates a new wrapper.
func NewSerialCounterRepositoryWithCircuitBreaker(repo *SerialCounterRepository, cb *circuitbreaker.CircuitBreaker) *SerialCounterRepositoryWithCircuitBreaker {
	return &SerialCounterRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Reserve reserves a range with circuit breaker protection.
func (r *SerialCounterRepositoryWithCircuitBreaker) Reserve(ctx context.Context, prefix string, count int64) (int64, error) {
	var start int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		start, cbErr = r.repo.Reserve(ctx, prefix, count)
		return cbErr
	})
	return start, err
}

// Peek reads a counter with circuit breaker protection.
func (r *SerialCounterRepositoryWithCircuitBreaker) Peek(ctx context.Context, prefix string) (int64, error) {
	var next int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		next, cbErr = r.repo.Peek(ctx, prefix)
		return cbErr
	})
	return next, err
}
