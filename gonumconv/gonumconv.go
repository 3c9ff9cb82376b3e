package gonumconv

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/ktruss/csr"
	"github.com/katalvlaran/ktruss/truss"
)

// ErrNegativeNodeID indicates a gonum graph carries a node id below zero,
// which cannot be mapped onto the dense [0, numNodes) id space.
var ErrNegativeNodeID = errors.New("gonumconv: negative node id")

// FromGonum extracts (numNodes, edges) from an undirected gonum graph,
// ready for csr.Build. Edges are enumerated deterministically: endpoint
// pairs (u,v) with u < v, sorted by u then v.
//
// Self-loops and duplicate edges cannot occur in a gonum simple graph,
// but nothing here depends on that: any violation is surfaced later by
// csr.Build.
func FromGonum(g graph.Undirected) (numNodes int, edges []csr.Edge, err error) {
	var ids []int64
	it := g.Nodes()
	for it.Next() {
		id := it.Node().ID()
		if id < 0 {
			return 0, nil, fmt.Errorf("%w: %d", ErrNegativeNodeID, id)
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return 0, nil, nil
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	numNodes = int(ids[len(ids)-1]) + 1

	for _, uid := range ids {
		var nbrs []int64
		from := g.From(uid)
		for from.Next() {
			if vid := from.Node().ID(); vid > uid {
				nbrs = append(nbrs, vid)
			}
		}
		sort.Slice(nbrs, func(i, j int) bool { return nbrs[i] < nbrs[j] })
		for _, vid := range nbrs {
			edges = append(edges, csr.Edge{U: int(uid), V: int(vid)})
		}
	}

	return numNodes, edges, nil
}

// ToGonum materializes (numNodes, edges) as a gonum simple undirected
// graph, including isolated nodes. The input is validated against the
// csr.Build preconditions first, so the conversion either fully succeeds
// or returns csr.ErrInvalidGraph without a partial graph.
func ToGonum(numNodes int, edges []csr.Edge) (*simple.UndirectedGraph, error) {
	if _, err := csr.Build(numNodes, edges); err != nil {
		return nil, err
	}

	g := simple.NewUndirectedGraph()
	for u := 0; u < numNodes; u++ {
		g.AddNode(simple.Node(u))
	}
	for _, e := range edges {
		g.SetEdge(simple.Edge{F: simple.Node(e.U), T: simple.Node(e.V)})
	}

	return g, nil
}

// TrussSubgraph materializes a peeling result as a gonum graph over the
// original node set (nodes that lost all their edges remain, isolated).
func TrussSubgraph(numNodes int, res *truss.Result) (*simple.UndirectedGraph, error) {
	return ToGonum(numNodes, res.Edges)
}
