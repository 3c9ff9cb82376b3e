// Package gonumconv converts between this library's edge lists and the
// gonum graph types, so callers that already model their graphs with
// gonum.org/v1/gonum/graph can feed them to csr.Build / truss.KTruss and
// carry the surviving truss back into the gonum ecosystem.
//
// # Conventions
//
// This library addresses nodes densely as ints in [0, numNodes); gonum
// uses sparse int64 ids. FromGonum therefore requires non-negative node
// ids and reports numNodes as the largest id plus one — isolated nodes
// below that id are implied. ToGonum materializes every node in
// [0, numNodes), including isolated ones, so round trips preserve the
// node count.
//
// FromGonum enumerates deterministically (nodes ascending, neighbors
// ascending), so the resulting edge list — and everything the truss
// engine derives from it — is reproducible for a given graph.
//
// # Errors
//
//	ErrNegativeNodeID — FromGonum on a graph with a negative node id.
//	csr.ErrInvalidGraph — ToGonum input failing the csr.Build preconditions.
package gonumconv
