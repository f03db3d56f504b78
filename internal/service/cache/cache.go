// Package cache defines the label cache contract.
package cache

import "github.com/kooply/label-service/internal/domain/model"

// Cache defines the interface for label cache operations. Keys are full
// label strings.
type Cache interface {
	Get(labelID string) (model.Label, bool)
	Set(labelID string, value model.Label)
	Invalidate(labelID string)
	Clear()
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics interface {
	Cache
	Metrics() Metrics
}
