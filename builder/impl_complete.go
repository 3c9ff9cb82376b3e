// SPDX-License-Identifier: MIT
// Package: ktruss/builder
//
// impl_complete.go — Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Emits every unordered pair {i,j}, i < j: n·(n-1)/2 edges.
//
// K_n is the canonical n-truss: every edge lies in exactly n-2 triangles,
// which makes Complete the reference fixture for peeling tests.
//
// Determinism: stable enumeration order, i ascending, then j ascending.
// Complexity: O(n²) time and space.
package builder

import (
	"fmt"

	"github.com/katalvlaran/ktruss/csr"
)

const (
	methodComplete      = "Complete"
	minCompleteVertices = 1
)

// Complete returns the edge list of the complete graph K_n over vertices
// 0..n-1.
func Complete(n int) ([]csr.Edge, error) {
	if n < minCompleteVertices {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w",
			methodComplete, n, minCompleteVertices, ErrTooFewVertices)
	}

	edges := make([]csr.Edge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, csr.Edge{U: i, V: j})
		}
	}

	return edges, nil
}
