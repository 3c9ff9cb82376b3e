// SPDX-License-Identifier: MIT
// Package: ktruss/builder
//
// impl_path.go — Path(n) and Cycle(n) constructors.
//
// Contract:
//   - Path:  n ≥ 1 (else ErrTooFewVertices); edges {i, i+1} for i in 0..n-2.
//   - Cycle: n ≥ 3 (else ErrTooFewVertices); path edges plus the closing
//     edge {0, n-1}. n < 3 would degenerate into a loop or a multi-edge.
//
// Determinism: stable enumeration order, i ascending; closing edge last.
// Complexity: O(n) time and space.
package builder

import (
	"fmt"

	"github.com/katalvlaran/ktruss/csr"
)

const (
	methodPath  = "Path"
	methodCycle = "Cycle"

	minPathVertices  = 1
	minCycleVertices = 3
)

// Path returns the edge list of the path graph P_n over vertices 0..n-1.
// A single vertex is a valid (edgeless, triangle-free) path.
func Path(n int) ([]csr.Edge, error) {
	if n < minPathVertices {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w",
			methodPath, n, minPathVertices, ErrTooFewVertices)
	}

	edges := make([]csr.Edge, 0, n-1)
	for i := 0; i < n-1; i++ {
		edges = append(edges, csr.Edge{U: i, V: i + 1})
	}

	return edges, nil
}

// Cycle returns the edge list of the cycle graph C_n over vertices 0..n-1.
func Cycle(n int) ([]csr.Edge, error) {
	if n < minCycleVertices {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w",
			methodCycle, n, minCycleVertices, ErrTooFewVertices)
	}

	edges := make([]csr.Edge, 0, n)
	for i := 0; i < n-1; i++ {
		edges = append(edges, csr.Edge{U: i, V: i + 1})
	}
	edges = append(edges, csr.Edge{U: 0, V: n - 1})

	return edges, nil
}
