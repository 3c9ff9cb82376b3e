package csr

import (
	"fmt"
	"sort"
)

// Index is the immutable CSR adjacency structure.
//
// neighbors[offsets[u]:offsets[u+1]] is the ascending neighbor list of u;
// edgeIDs is aligned with neighbors and holds, per slot, the position in
// the Build edge list of the edge that produced that slot. Each undirected
// edge therefore occupies exactly two slots, one per endpoint, both
// carrying the same edge id.
type Index struct {
	numNodes  int
	offsets   []int
	neighbors []int
	edgeIDs   []int
}

// Build constructs the CSR index for numNodes nodes and the given edge
// list. The input is validated eagerly; on any violation Build returns
// ErrInvalidGraph (wrapped with detail) and no partially built index.
//
// Time: O(V + E·log d), Memory: O(V + E).
func Build(numNodes int, edges []Edge) (*Index, error) {
	if numNodes <= 0 {
		return nil, fmt.Errorf("%w: numNodes=%d, want > 0", ErrInvalidGraph, numNodes)
	}

	// First pass: validate endpoints and count degrees.
	degree := make([]int, numNodes)
	for i, e := range edges {
		if e.U < 0 || e.U >= numNodes || e.V < 0 || e.V >= numNodes {
			return nil, fmt.Errorf("%w: edge %d endpoints {%d,%d} outside [0,%d)",
				ErrInvalidGraph, i, e.U, e.V, numNodes)
		}
		if e.U == e.V {
			return nil, fmt.Errorf("%w: edge %d is a self-loop on node %d",
				ErrInvalidGraph, i, e.U)
		}
		degree[e.U]++
		degree[e.V]++
	}

	// Prefix-sum degrees into offsets.
	offsets := make([]int, numNodes+1)
	for u := 0; u < numNodes; u++ {
		offsets[u+1] = offsets[u] + degree[u]
	}

	// Second pass: scatter both directions of every edge.
	neighbors := make([]int, 2*len(edges))
	edgeIDs := make([]int, 2*len(edges))
	cursor := make([]int, numNodes)
	copy(cursor, offsets[:numNodes])
	for i, e := range edges {
		neighbors[cursor[e.U]], edgeIDs[cursor[e.U]] = e.V, i
		cursor[e.U]++
		neighbors[cursor[e.V]], edgeIDs[cursor[e.V]] = e.U, i
		cursor[e.V]++
	}

	// Sort each node's range ascending (edge ids travel with their slots),
	// then reject duplicates, which sorting has made adjacent. A pair given
	// twice in opposite orientations still collides here.
	for u := 0; u < numNodes; u++ {
		lo, hi := offsets[u], offsets[u+1]
		sort.Sort(&rangeSorter{nbr: neighbors[lo:hi], ids: edgeIDs[lo:hi]})
		for s := lo + 1; s < hi; s++ {
			if neighbors[s] == neighbors[s-1] {
				return nil, fmt.Errorf("%w: duplicate edge {%d,%d}",
					ErrInvalidGraph, u, neighbors[s])
			}
		}
	}

	return &Index{
		numNodes:  numNodes,
		offsets:   offsets,
		neighbors: neighbors,
		edgeIDs:   edgeIDs,
	}, nil
}

// NumNodes reports the number of nodes the index was built over.
func (ix *Index) NumNodes() int { return ix.numNodes }

// NumEdges reports the number of undirected edges the index was built from.
func (ix *Index) NumEdges() int { return len(ix.neighbors) / 2 }

// Degree reports the number of neighbors of u, or ErrInvalidNode.
func (ix *Index) Degree(u int) (int, error) {
	if u < 0 || u >= ix.numNodes {
		return 0, fmt.Errorf("%w: %d", ErrInvalidNode, u)
	}
	return ix.offsets[u+1] - ix.offsets[u], nil
}

// NeighborRange returns the ascending neighbor list of u as a read-only
// view, or ErrInvalidNode for an out-of-range id.
func (ix *Index) NeighborRange(u int) ([]int, error) {
	if u < 0 || u >= ix.numNodes {
		return nil, fmt.Errorf("%w: %d", ErrInvalidNode, u)
	}
	return ix.neighbors[ix.offsets[u]:ix.offsets[u+1]], nil
}

// IncidentEdges returns u's ascending neighbor list together with the
// aligned edge-list positions: ids[i] is the Build position of the edge
// {u, nbrs[i]}. Both slices are read-only views.
func (ix *Index) IncidentEdges(u int) (nbrs, ids []int, err error) {
	if u < 0 || u >= ix.numNodes {
		return nil, nil, fmt.Errorf("%w: %d", ErrInvalidNode, u)
	}
	lo, hi := ix.offsets[u], ix.offsets[u+1]
	return ix.neighbors[lo:hi], ix.edgeIDs[lo:hi], nil
}

// EdgeID returns the Build edge-list position of the edge {u,v}.
// Returns ErrInvalidNode for out-of-range ids and ErrEdgeNotFound when the
// pair is not connected. Time: O(log deg(u)).
func (ix *Index) EdgeID(u, v int) (int, error) {
	if u < 0 || u >= ix.numNodes {
		return 0, fmt.Errorf("%w: %d", ErrInvalidNode, u)
	}
	if v < 0 || v >= ix.numNodes {
		return 0, fmt.Errorf("%w: %d", ErrInvalidNode, v)
	}
	lo, hi := ix.offsets[u], ix.offsets[u+1]
	s := lo + sort.SearchInts(ix.neighbors[lo:hi], v)
	if s == hi || ix.neighbors[s] != v {
		return 0, fmt.Errorf("%w: {%d,%d}", ErrEdgeNotFound, u, v)
	}
	return ix.edgeIDs[s], nil
}

// rangeSorter sorts one node's adjacency range by neighbor id, keeping the
// aligned edge-id slots in lockstep.
type rangeSorter struct {
	nbr []int
	ids []int
}

func (r *rangeSorter) Len() int           { return len(r.nbr) }
func (r *rangeSorter) Less(i, j int) bool { return r.nbr[i] < r.nbr[j] }
func (r *rangeSorter) Swap(i, j int) {
	r.nbr[i], r.nbr[j] = r.nbr[j], r.nbr[i]
	r.ids[i], r.ids[j] = r.ids[j], r.ids[i]
}
