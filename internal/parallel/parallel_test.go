package parallel_test

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strand-ml/strand/internal/parallel"
)

func TestForSequential(t *testing.T) {
	var visited [100]bool
	parallel.For(100, func(i int) { visited[i] = true }, parallel.Sequential())
	for i, v := range visited {
		require.True(t, v, "index %d not visited", i)
	}
}

func TestForParallelCoversAllIndices(t *testing.T) {
	const n = 100_000
	cfg := parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 1024}

	var count atomic.Int64
	visited := make([]int32, n)
	parallel.For(n, func(i int) {
		atomic.AddInt32(&visited[i], 1)
		count.Add(1)
	}, cfg)

	assert.Equal(t, int64(n), count.Load())
	for i, v := range visited {
		require.EqualValues(t, 1, v, "index %d visited %d times", i, v)
	}
}

func TestForSmallNStaysSequential(t *testing.T) {
	// Below MinChunkSize the loop runs inline, so ordering is deterministic.
	cfg := parallel.Config{Enabled: true, NumWorkers: 8, MinChunkSize: 64}
	var order []int
	parallel.For(10, func(i int) { order = append(order, i) }, cfg)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, order)
}

func TestForZeroIterations(t *testing.T) {
	called := false
	parallel.For(0, func(int) { called = true }, parallel.DefaultConfig())
	assert.False(t, called)
}

func TestForReraisesWorkerPanic(t *testing.T) {
	cfg := parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 16}

	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic to propagate to caller")
		assert.Equal(t, "worker failure", r)
	}()
	parallel.For(1000, func(i int) {
		if i == 777 {
			panic("worker failure")
		}
	}, cfg)
	t.Fatal("unreachable")
}

func TestDefaultConfig(t *testing.T) {
	cfg := parallel.DefaultConfig()
	assert.Positive(t, cfg.NumWorkers)
	assert.Positive(t, cfg.MinChunkSize)
}
