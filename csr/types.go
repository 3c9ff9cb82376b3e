// Package csr defines the Edge value type and sentinel errors for the
// adjacency index.
package csr

import "errors"

// Sentinel errors for index construction and lookup.
var (
	// ErrInvalidGraph indicates malformed Build input: a non-positive node
	// count, an endpoint outside [0, numNodes), a self-loop, or a duplicate
	// edge (in either orientation).
	ErrInvalidGraph = errors.New("csr: invalid graph")

	// ErrInvalidNode indicates a lookup with a node id outside [0, NumNodes).
	ErrInvalidNode = errors.New("csr: node id out of range")

	// ErrEdgeNotFound indicates EdgeID was asked about a pair of nodes that
	// is not connected by an edge.
	ErrEdgeNotFound = errors.New("csr: edge not found")
)

// Edge is an unordered pair of distinct node ids. The zero value is not a
// valid edge (it is a self-loop on node 0).
type Edge struct {
	U, V int
}

// Canonical returns the edge with its endpoints ordered ascending.
// {3,1}.Canonical() == {1,3}. Useful for set-style comparison of edge
// lists that may differ in endpoint orientation.
func (e Edge) Canonical() Edge {
	if e.U > e.V {
		return Edge{U: e.V, V: e.U}
	}
	return e
}

// Other returns the endpoint of e that is not node u.
// The caller is responsible for u being one of the endpoints.
func (e Edge) Other(u int) int {
	if e.U == u {
		return e.V
	}
	return e.U
}
