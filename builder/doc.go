// SPDX-License-Identifier: MIT
// Package: ktruss/builder
//
// Package builder provides deterministic edge-list constructors for the
// csr/truss packages: canonical topologies (Path, Cycle, Complete) and an
// Erdős–Rényi-like random sampler (RandomSparse).
//
// Every constructor returns edges over the implicit vertex set 0..n-1,
// with endpoints ordered u < v and a stable, documented enumeration
// order, so a fixed seed always reproduces the same graph. Outputs
// satisfy the csr.Build preconditions by construction: no self-loops, no
// duplicates, all endpoints in range.
//
// Error policy follows the library convention: only package-level
// sentinels are exposed, callers branch with errors.Is, implementations
// attach context with %w. Constructors never panic at runtime.
package builder
