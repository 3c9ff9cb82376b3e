package csr_test

import (
	"fmt"

	"github.com/katalvlaran/ktruss/csr"
)

// ExampleBuild demonstrates building the index for a small graph and
// querying sorted neighbor ranges.
//
// Graph:
//
//	0───1
//	│ ╲ │╲
//	│  ╲│ 3
//	└───2╱
func ExampleBuild() {
	edges := []csr.Edge{{U: 0, V: 1}, {U: 0, V: 2}, {U: 1, V: 2}, {U: 1, V: 3}, {U: 2, V: 3}}
	idx, _ := csr.Build(4, edges)

	for u := 0; u < idx.NumNodes(); u++ {
		nbrs, _ := idx.NeighborRange(u)
		fmt.Printf("node %d: %v\n", u, nbrs)
	}

	id, _ := idx.EdgeID(3, 1)
	fmt.Println("edge {1,3} is input edge", id)

	// Output:
	// node 0: [1 2]
	// node 1: [0 2 3]
	// node 2: [0 1 3]
	// node 3: [1 2]
	// edge {1,3} is input edge 3
}
