// Package csr provides an immutable compressed sparse row (CSR) adjacency
// index over a static, undirected, simple graph.
//
// The index is built once from a node count and an edge list, and is
// read-only thereafter. For every node it stores the ascending,
// duplicate-free list of neighbor ids in one flat array, addressed by a
// per-node offset table. A parallel array maps each adjacency slot back to
// the position of the edge that produced it in the input edge list, so
// algorithms that keep per-edge state (support counts, liveness flags)
// can translate a neighbor into its edge slot with a single binary search
// instead of a hash lookup.
//
// # Construction
//
//	idx, err := csr.Build(numNodes, edges)
//
// Build validates eagerly and constructs nothing on failure:
//
//   - every endpoint must lie in [0, numNodes)
//   - self-loops are rejected
//   - duplicate edges are rejected, in either orientation
//
// # Queries
//
//	nbrs, err := idx.NeighborRange(u)   // sorted neighbors of u
//	nbrs, ids, err := idx.IncidentEdges(u)
//	id, err := idx.EdgeID(u, v)         // edge-list position of {u,v}
//
// Returned slices are views into the index's internal arrays; callers must
// treat them as read-only.
//
// Complexity: Build is O(V + E·log d) where d is the maximum degree
// (per-node sort of neighbor ranges); NeighborRange and IncidentEdges are
// O(1); EdgeID and Degree are O(log d) and O(1).
//
// # Errors
//
//	ErrInvalidGraph — malformed input to Build (range, loop, duplicate).
//	ErrInvalidNode  — lookup with an out-of-range node id.
//	ErrEdgeNotFound — EdgeID on a pair that is not an edge.
package csr
