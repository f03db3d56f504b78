package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/kooply/label-service/internal/codec"
)

// ErrAllocatorNotConfigured is returned when no serial allocator is wired.
var ErrAllocatorNotConfigured = errors.New("serial allocator not configured")

// SerialAllocator hands out contiguous serial ranges per prefix bucket.
//
// Implementations must be strictly increasing per prefix: a reserved range is
// never handed out twice, even across process restarts. The codec never
// allocates; it only formats what an allocator returns, so any transactional
// counter (database sequence, distributed counter, in-memory for tests) can
// be plugged in here.
type SerialAllocator interface {
	// Reserve returns the start of a contiguous range of count serials for
	// the given prefix bucket. The caller owns [start, start+count).
	Reserve(ctx context.Context, prefix string, count int64) (int64, error)
}

// MemoryAllocator is an in-process SerialAllocator. It backs tests and
// database-less deployments; counters reset on restart, so it must not be
// used where labels outlive the process.
type MemoryAllocator struct {
	mu   sync.Mutex
	next map[string]int64
}

// NewMemoryAllocator creates an empty in-memory allocator.
func NewMemoryAllocator() *MemoryAllocator {
	return &MemoryAllocator{next: make(map[string]int64)}
}

// Reserve implements SerialAllocator.
func (a *MemoryAllocator) Reserve(_ context.Context, prefix string, count int64) (int64, error) {
	if count <= 0 {
		return 0, fmt.Errorf("%w: count %d must be positive", codec.ErrSerialOutOfRange, count)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	start := a.next[prefix]
	if count-1 > codec.MaxSerial-start {
		return 0, fmt.Errorf("%w: bucket %s exhausted at %d", codec.ErrSerialOutOfRange, prefix, start)
	}
	a.next[prefix] = start + count
	return start, nil
}

// Seed positions a bucket's counter, for tests that need a specific start.
func (a *MemoryAllocator) Seed(prefix string, next int64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.next[prefix] = next
}
