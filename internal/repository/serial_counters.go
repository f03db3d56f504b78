package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kooply/label-service/internal/codec"
)

// serialCounter is one counter document, one per prefix bucket. next is the
// first unallocated serial for that bucket.
type serialCounter struct {
	Prefix string `bson:"prefix"`
	Next   int64  `bson:"next"`
}

// SerialCounterRepository is the database-backed serial allocator. A single
// atomic $inc per reservation gives strictly increasing, never-reused ranges
// across any number of concurrent callers and process restarts.
type SerialCounterRepository struct {
	collection *mongo.Collection
}

// NewSerialCounterRepository creates a new serial counter repository.
func NewSerialCounterRepository(db *MongoDB) *SerialCounterRepository {
	return &SerialCounterRepository{collection: db.SerialCounters}
}

// Reserve implements SerialCounterRepositoryInterface.
//
// If the bucket overflows, the counter has already been advanced past the
// capacity; the burned range is unusable either way, and never reusing a
// serial matters more than counter density.
func (r *SerialCounterRepository) Reserve(ctx context.Context, prefix string, count int64) (int64, error) {
	if count <= 0 {
		return 0, fmt.Errorf("%w: count %d must be positive", codec.ErrSerialOutOfRange, count)
	}

	filter := bson.M{"prefix": prefix}
	update := bson.M{"$inc": bson.M{"next": count}}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter serialCounter
	if err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&counter); err != nil {
		return 0, err
	}

	start := counter.Next - count
	if start > codec.MaxSerial || count-1 > codec.MaxSerial-start {
		return 0, fmt.Errorf("%w: bucket %s exhausted (next=%d, requested=%d)", codec.ErrSerialOutOfRange, prefix, start, count)
	}
	return start, nil
}

// Peek implements SerialCounterRepositoryInterface.
func (r *SerialCounterRepository) Peek(ctx context.Context, prefix string) (int64, error) {
	var counter serialCounter
	err := r.collection.FindOne(ctx, bson.M{"prefix": prefix}).Decode(&counter)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return counter.Next, nil
}
