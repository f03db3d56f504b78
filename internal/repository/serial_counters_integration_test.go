//go:build integration

package repository

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/kooply/label-service/internal/codec"
	"github.com/kooply/label-service/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCounterRepo(t *testing.T) *SerialCounterRepository {
	t.Helper()

	db, err := NewMongoDB(testutil.GetSharedContainerURI(), testutil.SanitizeDBName(t.Name()))
	require.NoError(t, err)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = db.Database.Drop(ctx)
		_ = db.Close(ctx)
	})

	return NewSerialCounterRepository(db)
}

func TestSerialCounterRepository_Reserve(t *testing.T) {
	repo := setupCounterRepo(t)
	ctx := context.Background()

	start, err := repo.Reserve(ctx, "KBM2b1", 10)
	require.NoError(t, err)
	assert.Equal(t, int64(0), start)

	start, err = repo.Reserve(ctx, "KBM2b1", 5)
	require.NoError(t, err)
	assert.Equal(t, int64(10), start)

	next, err := repo.Peek(ctx, "KBM2b1")
	require.NoError(t, err)
	assert.Equal(t, int64(15), next)

	// Independent bucket starts at zero.
	start, err = repo.Reserve(ctx, "KWS4pb", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), start)
}

func TestSerialCounterRepository_PeekUnknownBucket(t *testing.T) {
	repo := setupCounterRepo(t)

	next, err := repo.Peek(context.Background(), "KBM2b1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), next)
}

func TestSerialCounterRepository_RejectsNonPositiveCount(t *testing.T) {
	repo := setupCounterRepo(t)

	for _, count := range []int64{0, -3} {
		_, err := repo.Reserve(context.Background(), "KBM2b1", count)
		assert.ErrorIs(t, err, codec.ErrSerialOutOfRange)
	}
}

func TestSerialCounterRepository_ConcurrentReservationsDisjoint(t *testing.T) {
	repo := setupCounterRepo(t)

	const workers = 10
	const perWorker = int64(100)

	starts := make([]int64, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			start, err := repo.Reserve(context.Background(), "KBM2b1", perWorker)
			require.NoError(t, err)
			starts[i] = start
		}(i)
	}
	wg.Wait()

	sort.Slice(starts, func(i, j int) bool { return starts[i] < starts[j] })
	for i, start := range starts {
		assert.Equal(t, int64(i)*perWorker, start, "ranges must be contiguous and disjoint")
	}
}
