package par_test

import (
	"sync/atomic"
	"testing"

	"github.com/katalvlaran/ligra/par"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForVisitsEveryIndexExactlyOnce(t *testing.T) {
	const n = 10_000
	seen := make([]int32, n)
	par.For(n, func(i int) {
		atomic.AddInt32(&seen[i], 1)
	})
	for i, c := range seen {
		require.Equalf(t, int32(1), c, "index %d visited %d times", i, c)
	}
}

func TestForSmallRangeRunsSequentially(t *testing.T) {
	var order []int
	par.For(5, func(i int) {
		order = append(order, i)
	})
	assert.Len(t, order, 5)
}

func TestForEmptyRangeNoOp(t *testing.T) {
	called := false
	par.For(0, func(i int) { called = true })
	assert.False(t, called)
}

func TestPoolForRespectsWorkerCount(t *testing.T) {
	pool := par.NewPool(4)
	assert.Equal(t, 4, pool.Workers())

	var total int64
	pool.For(1000, func(i int) {
		atomic.AddInt64(&total, 1)
	})
	assert.Equal(t, int64(1000), total)
}
