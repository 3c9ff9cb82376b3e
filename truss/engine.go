package truss

import (
	"fmt"

	"github.com/katalvlaran/ktruss/csr"
)

// Engine owns the per-edge state for k-truss computation: the immutable
// adjacency index, the edge list it was built from, and the cached initial
// support vector. An Engine is reusable — Peel never consumes it — but it
// is not safe for concurrent use by multiple goroutines.
type Engine struct {
	idx   *csr.Index
	edges []csr.Edge
	opts  Options

	// base is the initial support vector over the full graph, computed on
	// first use and reused by every Peel call.
	base []int32
}

// NewEngine validates inputs and constructs an engine.
//
// The edge list must be exactly the list the index was built from, in the
// same enumeration order; the engine relies on the index's slot→edge-id
// mapping to address its support and liveness arrays. Any divergence is
// reported as ErrEdgeMismatch. Validation is eager and the engine carries
// no partial state on failure.
func NewEngine(idx *csr.Index, edges []csr.Edge, opts ...Option) (*Engine, error) {
	if idx == nil {
		return nil, ErrNilIndex
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if len(edges) != idx.NumEdges() {
		return nil, fmt.Errorf("%w: %d edges given, index built from %d",
			ErrEdgeMismatch, len(edges), idx.NumEdges())
	}
	for i, e := range edges {
		id, err := idx.EdgeID(e.U, e.V)
		if err != nil {
			return nil, fmt.Errorf("%w: edge %d {%d,%d}: %v", ErrEdgeMismatch, i, e.U, e.V, err)
		}
		if id != i {
			return nil, fmt.Errorf("%w: edge {%d,%d} is at position %d, index says %d",
				ErrEdgeMismatch, e.U, e.V, i, id)
		}
	}

	return &Engine{idx: idx, edges: edges, opts: o}, nil
}

// KTruss builds an engine over idx/edges and peels at k in one call.
// See NewEngine and (*Engine).Peel for the individual contracts.
func KTruss(idx *csr.Index, edges []csr.Edge, k int, opts ...Option) (*Result, error) {
	eng, err := NewEngine(idx, edges, opts...)
	if err != nil {
		return nil, err
	}
	return eng.Peel(k)
}
