package edgemap_test

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/ligra/edgemap"
	"github.com/katalvlaran/ligra/frontier"
	"github.com/katalvlaran/ligra/graph"
)

func ExampleMap() {
	b := graph.NewBuilder(4)
	b.AddEdge(0, 1)
	b.AddEdge(0, 2)
	b.AddEdge(2, 3)
	g, err := b.Build()
	if err != nil {
		panic(err)
	}

	uf := newBFSUF(4)
	uf.parents[0] = 0
	out := edgemap.Map(g, frontier.FromSingleton(4, 0), nil, uf, 1000, 0)

	ids := out.ToSparse()
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	fmt.Println(ids)
	// Output: [1 2]
}
