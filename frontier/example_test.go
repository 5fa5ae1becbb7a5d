package frontier_test

import (
	"fmt"

	"github.com/katalvlaran/ligra/frontier"
)

func ExampleSubset_ToDense() {
	s := frontier.FromSparse(5, []uint32{1, 3})
	fmt.Println(s.ToDense())
	// Output: [false true false true false]
}
