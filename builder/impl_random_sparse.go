// SPDX-License-Identifier: MIT
// Package: ktruss/builder
//
// impl_random_sparse.go — RandomSparse(n, p, rng) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like generator: include each unordered pair {i,j}, i<j,
//     independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource);
//     p ∈ {0,1} is deterministic and accepts a nil rng.
//
// Determinism:
//   - Stable trial order: for each i asc, j asc with j > i, so a fixed
//     seed reproduces the same edge set.
//
// Complexity: O(n²) Bernoulli trials, O(E) output.
package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/ktruss/csr"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse samples an Erdős–Rényi-like simple graph over vertices
// 0..n-1 with independent edge probability p.
func RandomSparse(n int, p float64, rng *rand.Rand) ([]csr.Edge, error) {
	if n < minRandomSparseVertices {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w",
			methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
	}
	if p < probMin || p > probMax {
		return nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
	}
	if rng == nil && p > probMin && p < probMax {
		return nil, fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
	}

	var edges []csr.Edge
	if p == probMax {
		return Complete(n)
	}
	if p == probMin {
		return edges, nil
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() <= p {
				edges = append(edges, csr.Edge{U: i, V: j})
			}
		}
	}

	return edges, nil
}
