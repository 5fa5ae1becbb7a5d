package graph_test

import (
	"fmt"

	"github.com/katalvlaran/ligra/graph"
)

func ExampleBuilder() {
	b := graph.NewBuilder(3)
	b.AddEdge(0, 1)
	b.AddEdge(1, 2)
	b.AddEdge(2, 0)
	g, err := b.Build()
	if err != nil {
		panic(err)
	}
	fmt.Println(g.N(), g.M())
	// Output: 3 3
}
