package vertexmap_test

import (
	"sort"
	"sync"
	"testing"

	"github.com/katalvlaran/ligra/frontier"
	"github.com/katalvlaran/ligra/vertexmap"
	"github.com/stretchr/testify/assert"
)

func TestMapVisitsEverySparseMember(t *testing.T) {
	f := frontier.FromSparse(10, []uint32{1, 3, 7})
	var mu sync.Mutex
	var visited []uint32
	vertexmap.Map(f, func(v uint32) {
		mu.Lock()
		visited = append(visited, v)
		mu.Unlock()
	})
	sort.Slice(visited, func(i, j int) bool { return visited[i] < visited[j] })
	assert.Equal(t, []uint32{1, 3, 7}, visited)
}

func TestMapVisitsEveryDenseMember(t *testing.T) {
	f := frontier.FromDense(5, []bool{true, false, true, false, false})
	var mu sync.Mutex
	var visited []uint32
	vertexmap.Map(f, func(v uint32) {
		mu.Lock()
		visited = append(visited, v)
		mu.Unlock()
	})
	sort.Slice(visited, func(i, j int) bool { return visited[i] < visited[j] })
	assert.Equal(t, []uint32{0, 2}, visited)
}

func TestFilterSparse(t *testing.T) {
	f := frontier.FromSparse(10, []uint32{1, 2, 3, 4})
	out := vertexmap.Filter(f, func(v uint32) bool { return v%2 == 0 })
	ids := out.ToSparse()
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	assert.Equal(t, []uint32{2, 4}, ids)
}

func TestFilterDense(t *testing.T) {
	f := frontier.FromAll(5)
	out := vertexmap.Filter(f, func(v uint32) bool { return v < 2 })
	assert.Equal(t, 2, out.Size())
	assert.True(t, out.Contains(0))
	assert.True(t, out.Contains(1))
	assert.False(t, out.Contains(2))
}
