package truss

import "context"

// InitialSupport computes the support vector over the full graph: for each
// edge {u,v}, the size of N(u) ∩ N(v), i.e. the number of triangles the
// edge lies in when every edge is alive. The vector is computed once,
// cached on the engine, and returned as a copy.
//
// The computation is parallel across edges (see Options.Workers); every
// worker reads only the immutable index and writes only its own edges'
// slots, so the outcome is identical to sequential evaluation.
//
// Time: O(Σ_{u,v}∈E (deg u + deg v)). Memory: O(E).
func (e *Engine) InitialSupport() ([]int, error) {
	if err := e.ensureSupport(); err != nil {
		return nil, err
	}
	out := make([]int, len(e.base))
	for i, s := range e.base {
		out[i] = int(s)
	}
	return out, nil
}

// ensureSupport fills e.base on first use.
func (e *Engine) ensureSupport() error {
	if e.base != nil {
		return nil
	}
	base := make([]int32, len(e.edges))

	err := parallelFor(e.opts.Ctx, len(e.edges), e.opts.Workers,
		func(ctx context.Context, _, lo, hi int) error {
			for i := lo; i < hi; i++ {
				// cancellation check (once per edge)
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}

				ed := e.edges[i]
				nu, _ := e.idx.NeighborRange(ed.U)
				nv, _ := e.idx.NeighborRange(ed.V)
				base[i] = int32(commonNeighbors(nu, nv, ed.U, ed.V))
			}
			return nil
		})
	if err != nil {
		return err
	}

	e.base = base
	return nil
}

// commonNeighbors merges the two sorted neighbor ranges of an edge {u,v}
// and counts shared entries. v is skipped while scanning u's range and u
// while scanning v's range: an edge is never its own triangle partner.
func commonNeighbors(nu, nv []int, u, v int) int {
	i, j, count := 0, 0, 0
	for i < len(nu) && j < len(nv) {
		if nu[i] == v {
			i++
			continue
		}
		if nv[j] == u {
			j++
			continue
		}
		switch {
		case nu[i] < nv[j]:
			i++
		case nu[i] > nv[j]:
			j++
		default:
			count++
			i++
			j++
		}
	}
	return count
}
