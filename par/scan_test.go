package par_test

import (
	"testing"

	"github.com/katalvlaran/ligra/par"
	"github.com/stretchr/testify/assert"
)

func TestPrefixSumExclusive(t *testing.T) {
	a := []int64{3, 1, 4, 1, 5, 9, 2, 6}
	sum, total := par.PrefixSum(a)
	assert.Equal(t, []int64{0, 3, 4, 8, 9, 14, 23, 25}, sum)
	assert.Equal(t, int64(31), total)
}

func TestPrefixSumEmpty(t *testing.T) {
	sum, total := par.PrefixSum(nil)
	assert.Empty(t, sum)
	assert.Equal(t, int64(0), total)
}

func TestPrefixSumLarge(t *testing.T) {
	const n = 100_000
	a := make([]int64, n)
	for i := range a {
		a[i] = 1
	}
	sum, total := par.PrefixSum(a)
	assert.Equal(t, int64(n), total)
	for i, v := range sum {
		assert.Equal(t, int64(i), v)
	}
}

func TestPackGathersSetIndices(t *testing.T) {
	flags := []bool{false, true, false, true, true, false}
	got := par.Pack(flags)
	assert.Equal(t, []int32{1, 3, 4}, got)
}

func TestPackByGathersValues(t *testing.T) {
	values := []string{"a", "b", "c", "d"}
	flags := []bool{true, false, true, false}
	got := par.PackBy(values, flags)
	assert.Equal(t, []string{"a", "c"}, got)
}

func TestReduceSum(t *testing.T) {
	a := []int{1, 2, 3, 4, 5}
	got := par.Reduce(a, 0, func(x, y int) int { return x + y })
	assert.Equal(t, 15, got)
}

func TestReduceEmpty(t *testing.T) {
	got := par.Reduce([]int(nil), 42, func(x, y int) int { return x + y })
	assert.Equal(t, 42, got)
}
