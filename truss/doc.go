// Package truss computes k-truss subgraphs over a csr.Index: the maximal
// edge-induced subgraph in which every edge participates in at least k-2
// triangles formed entirely of edges still present in the subgraph.
//
// The engine owns the per-edge mutable state (support count, liveness
// stamp), computes initial support by triangle counting, and drives the
// iterative peeling loop to its fixed point.
//
// # Algorithm Outline
//
//  1. Initial support. For every edge {u,v}, support = |N(u) ∩ N(v)|,
//     computed by a two-pointer merge of the sorted neighbor ranges,
//     skipping v in u's range and u in v's range. Fully parallel across
//     edges: the index is read-only and each edge writes only its own
//     slot.
//  2. Peeling rounds. The work set starts as every edge with
//     support < k-2. Each round runs three barrier-separated phases:
//     - mark: every work-set edge is stamped removed at this round;
//     - propagate: for each removed edge {u,v} and each common neighbor w
//     whose triangle {u,v,w} was intact at round start, the surviving
//     edges among {u,w},{v,w} are decremented once. When several edges
//     of one triangle fall in the same round, the smallest-id one owns
//     the propagation, so concurrent removals never double-count.
//     Decrements are atomic; removals are parallel across the work set.
//     - collect: only edges touched by a decrement are re-checked against
//     the threshold; those now below it form the next work set.
//  3. Fixed point. Iteration stops when a round removes nothing —
//     guaranteed, since support is non-negative and the alive edge count
//     strictly decreases every round that does work.
//
// An edge moves Alive → Removed at most once and never back; the
// adjacency index is never mutated (liveness lives in the engine, and
// neighbor lookups are filtered by it at use time).
//
// Complexity:
//
//	Support = O(Σ_{u,v}∈E (deg u + deg v))
//	Peeling = O(Σ removed (deg u + deg v)) across all rounds
//	Memory  = O(E)
//
// # API
//
//	eng, err := truss.NewEngine(idx, edges)
//	sup, err := eng.InitialSupport()
//	res, err := eng.Peel(4)
//
// Peel operates on a private copy of the cached initial support, so one
// engine can peel at several k values; results are independent of edge
// enumeration order and of the worker count. The one-shot wrapper
//
//	res, err := truss.KTruss(idx, edges, k)
//
// builds an engine and peels in a single call.
//
// # Errors
//
//	ErrNilIndex        — nil index passed to NewEngine.
//	ErrEdgeMismatch    — edge list is not the list the index was built from.
//	ErrInvalidK        — Peel with k < 2.
//	ErrOptionViolation — invalid Option value (e.g. WithWorkers(0)).
//	context.Canceled / context.DeadlineExceeded — if the Option context ends.
package truss
