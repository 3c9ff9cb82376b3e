package truss_test

import (
	"testing"

	"github.com/katalvlaran/ktruss/csr"
	"github.com/stretchr/testify/require"
)

// diamond is the 4-node, 5-edge fixture:
//
//	0───1
//	│ ╲ │╲
//	│  ╲│ 3
//	└───2╱
//
// Triangles {0,1,2} and {1,2,3}; edge {1,2} lies in both.
var diamond = []csr.Edge{{U: 0, V: 1}, {U: 0, V: 2}, {U: 1, V: 2}, {U: 1, V: 3}, {U: 2, V: 3}}

// mustIndex builds a csr.Index or fails the test.
func mustIndex(t *testing.T, numNodes int, edges []csr.Edge) *csr.Index {
	t.Helper()
	idx, err := csr.Build(numNodes, edges)
	require.NoError(t, err, "csr.Build")
	return idx
}

// edgeSet normalizes an edge list into a canonical set for order-free
// comparison.
func edgeSet(edges []csr.Edge) map[csr.Edge]bool {
	set := make(map[csr.Edge]bool, len(edges))
	for _, e := range edges {
		set[e.Canonical()] = true
	}
	return set
}

// supportByEdge pairs each canonical edge with its support value.
func supportByEdge(edges []csr.Edge, support []int) map[csr.Edge]int {
	m := make(map[csr.Edge]int, len(edges))
	for i, e := range edges {
		m[e.Canonical()] = support[i]
	}
	return m
}
