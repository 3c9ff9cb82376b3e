// Package ktruss discovers k-truss subgraphs of static, undirected,
// simple graphs: the maximal edge-induced subgraph in which every edge
// participates in at least k-2 triangles formed entirely of edges still
// present in the subgraph.
//
// 🚀 What is ktruss?
//
//	A small, focused library that brings together:
//		• csr/       — immutable CSR adjacency index (sorted neighbor lists,
//		  O(log deg) neighbor→edge lookup)
//		• truss/     — per-edge support computation and the iterative
//		  peeling fixed point, with barrier-synchronized parallel rounds
//		• builder/   — deterministic edge-list constructors (paths, cycles,
//		  complete graphs, Erdős–Rényi samples) for tests and benchmarks
//		• gonumconv/ — converters to and from gonum/graph for callers that
//		  already live in the gonum ecosystem
//
// ✨ Why choose ktruss?
//
//   - Correct peeling – support is maintained reactively under cascading
//     removals, so every surviving edge reflects only triangles among
//     surviving edges
//   - Deterministic – results are independent of edge enumeration order
//     and of the number of workers
//   - Minimal API – build an index once, peel at any k, repeat
//
// Quick ASCII example (the diamond below is a 4-truss minus one edge;
// peeling at k=4 removes everything, peeling at k=3 keeps all five edges):
//
//	    0───1
//	    │ ╲ │╲
//	    │  ╲│ 3
//	    └───2╱
//
// Start with csr.Build, then truss.KTruss. See each package's doc.go for
// algorithm outlines, complexity and error contracts.
//
//	go get github.com/katalvlaran/ktruss
package ktruss
