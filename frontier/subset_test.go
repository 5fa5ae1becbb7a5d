package frontier_test

import (
	"testing"

	"github.com/katalvlaran/ligra/frontier"
	"github.com/stretchr/testify/assert"
)

func TestFromSingleton(t *testing.T) {
	s := frontier.FromSingleton(10, 4)
	assert.True(t, s.IsSparse())
	assert.Equal(t, 1, s.Size())
	assert.True(t, s.Contains(4))
	assert.False(t, s.Contains(5))
}

func TestFromSparseAndToDense(t *testing.T) {
	s := frontier.FromSparse(5, []uint32{1, 3})
	assert.Equal(t, 2, s.Size())
	dense := s.ToDense()
	assert.Equal(t, []bool{false, true, false, true, false}, dense)
	assert.True(t, s.IsDense())
}

func TestFromDenseAndToSparse(t *testing.T) {
	s := frontier.FromDense(5, []bool{false, true, false, true, true})
	assert.Equal(t, 3, s.Size())
	ids := s.ToSparse()
	assert.Equal(t, []uint32{1, 3, 4}, ids)
}

func TestFromAll(t *testing.T) {
	s := frontier.FromAll(6)
	assert.Equal(t, 6, s.Size())
	assert.False(t, s.IsEmpty())
	for v := uint32(0); v < 6; v++ {
		assert.True(t, s.Contains(v))
	}
}

func TestEmptySparseIsEmpty(t *testing.T) {
	s := frontier.FromSparse(5, nil)
	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0, s.Size())
}

func TestToSparseIdempotent(t *testing.T) {
	s := frontier.FromDense(4, []bool{true, false, true, false})
	first := s.ToSparse()
	second := s.ToSparse()
	assert.Equal(t, first, second)
}

func TestRelease(t *testing.T) {
	s := frontier.FromSingleton(10, 0)
	s.Release()
	assert.Equal(t, 0, s.Size())
	assert.False(t, s.IsDense())
	assert.False(t, s.IsSparse())
}
