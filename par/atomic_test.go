package par_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/ligra/par"
	"github.com/stretchr/testify/assert"
)

func TestCAS32(t *testing.T) {
	var v uint32 = 5
	assert.True(t, par.CAS32(&v, 5, 7))
	assert.Equal(t, uint32(7), v)
	assert.False(t, par.CAS32(&v, 5, 9))
	assert.Equal(t, uint32(7), v)
}

func TestWriteMinUint32ConcurrentConvergesToTrueMinimum(t *testing.T) {
	var v uint32 = 1 << 30
	var wg sync.WaitGroup
	for i := uint32(0); i < 1000; i++ {
		wg.Add(1)
		go func(candidate uint32) {
			defer wg.Done()
			par.WriteMinUint32(&v, candidate)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, uint32(0), v)
}

func TestWriteAddFloat64ConcurrentSumsExactly(t *testing.T) {
	var total float64
	var wg sync.WaitGroup
	for i := 0; i < 1000; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			par.WriteAddFloat64(&total, 1.0)
		}()
	}
	wg.Wait()
	assert.Equal(t, float64(1000), total)
}

func TestWriteOrUint64MergesBits(t *testing.T) {
	var bits uint64
	changed := par.WriteOrUint64(&bits, 0b101)
	assert.True(t, changed)
	assert.Equal(t, uint64(0b101), bits)

	changed = par.WriteOrUint64(&bits, 0b101)
	assert.False(t, changed)

	changed = par.WriteOrUint64(&bits, 0b010)
	assert.True(t, changed)
	assert.Equal(t, uint64(0b111), bits)
}
